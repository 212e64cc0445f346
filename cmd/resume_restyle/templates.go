package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-restyle/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [name]",
	Short: "List the template catalog, or print one template",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(_ *cobra.Command, args []string) error {
	store := templates.NewStore()

	if len(args) == 1 {
		content, err := store.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Print(content)
		return nil
	}

	for _, info := range store.List() {
		kind := "custom"
		if info.Builtin {
			kind = "builtin"
		}
		fmt.Printf("%-20s %s\n", info.Name, kind)
	}
	return nil
}

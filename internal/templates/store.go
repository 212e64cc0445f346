// Package templates manages the resume template catalog: a set of built-in
// HTML templates embedded at compile time plus user-registered ones.
package templates

import (
	"embed"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"
)

//go:embed builtin/*.html
var builtinFiles embed.FS

// TemplateNotFoundError indicates the requested template is not in the
// catalog.
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Name)
}

// InvalidTemplateNameError indicates a registration name the catalog
// rejects.
type InvalidTemplateNameError struct {
	Name string
}

func (e *InvalidTemplateNameError) Error() string {
	return fmt.Sprintf("invalid template name %q: use lowercase letters, digits, hyphens and underscores", e.Name)
}

var templateNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// Info describes one catalog entry.
type Info struct {
	Name    string `json:"name"`
	Builtin bool   `json:"builtin"`
}

// Store is a concurrency-safe template catalog. Built-ins are read from
// the embedded filesystem; custom templates shadow a built-in of the same
// name.
type Store struct {
	mu     sync.RWMutex
	custom map[string]string
}

// NewStore returns a catalog holding only the built-in templates.
func NewStore() *Store {
	return &Store{custom: make(map[string]string)}
}

// List returns the catalog entries sorted by name.
func (s *Store) List() []Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var infos []Info
	for name := range s.custom {
		seen[name] = true
		infos = append(infos, Info{Name: name})
	}
	for _, name := range builtinNames() {
		if !seen[name] {
			infos = append(infos, Info{Name: name, Builtin: true})
		}
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Get returns the markup of the named template.
func (s *Store) Get(name string) (string, error) {
	s.mu.RLock()
	content, ok := s.custom[name]
	s.mu.RUnlock()
	if ok {
		return content, nil
	}

	data, err := builtinFiles.ReadFile(path.Join("builtin", name+".html"))
	if err != nil {
		return "", &TemplateNotFoundError{Name: name}
	}
	return string(data), nil
}

// Put registers a custom template, replacing any previous one of the same
// name.
func (s *Store) Put(name, content string) error {
	if !templateNameRe.MatchString(name) {
		return &InvalidTemplateNameError{Name: name}
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("template %q has no content", name)
	}

	s.mu.Lock()
	s.custom[name] = content
	s.mu.Unlock()
	return nil
}

// Delete removes a custom template. Built-ins cannot be deleted.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.custom[name]; !ok {
		return &TemplateNotFoundError{Name: name}
	}
	delete(s.custom, name)
	return nil
}

func builtinNames() []string {
	entries, err := builtinFiles.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".html"))
	}
	return names
}

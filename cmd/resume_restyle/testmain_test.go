package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

func TestMain(m *testing.M) {
	// A missing .env is fine; CI supplies nothing.
	_ = godotenv.Load()

	os.Exit(m.Run())
}

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// credentials commonly live in a local .env during development
	_ = godotenv.Load()

	var root = &cobra.Command{Use: "newsmind"}
	root.AddCommand(serveCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

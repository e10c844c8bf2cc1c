// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Rutero.
//
// Usage:
//
//	go run . [flags]
//	./rutero [flags]
//
// This launches the Rutero CLI. See --help for options.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rutero-app/rutero/buildvars"
	"github.com/rutero-app/rutero/ui/cli"
)

func main() {
	if os.Getenv("RUTERO_SHOW_VERSION") == "1" {
		fmt.Fprintf(os.Stderr, "Rutero version: %s\n", buildvars.VersionOrDefault("dev"))
	}

	if err := cli.Execute(); err != nil {
		log.Printf("Rutero CLI error: %v", err)
		os.Exit(1)
	}
}

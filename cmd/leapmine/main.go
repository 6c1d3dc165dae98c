// Package main provides the leapmine CLI entrypoint.
package main

import (
	"os"

	"github.com/leapstack-labs/leapmine/internal/cli"

	// Register source adapters.
	_ "github.com/leapstack-labs/leapmine/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/leapmine/pkg/adapters/postgres"
	_ "github.com/leapstack-labs/leapmine/pkg/adapters/sqlite"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the rentalctl command.
package main

import (
	"os"

	"car-rental-system/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

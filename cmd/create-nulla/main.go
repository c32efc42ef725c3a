// Package main is the entry point for create-nulla.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nullaframework/create-nulla/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	rootCmd.SetArgs(cmd.NormalizeArgs(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}

// Package main provides the uplove CLI, a thin surface over the validated
// persistence layer in internal/sqlite.
package main

import (
	"fmt"
	"os"

	"github.com/uplove-app/uplove/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error for the process exit status: caller-correctable
// failures (bad input, missing id) are user errors, everything else is a
// system error.
func exitCode(err error) int {
	if types.IsValidation(err) || types.IsNotFound(err) {
		return exitUserError
	}
	return exitSysError
}

// Package cmd implements the gtleap applets.
package cmd

import (
	"fmt"
	"os"
)

// MainDispatcher is called if run as "gtleap <subcommand>"
func MainDispatcher(args []string) int {
	ret := 0
	if len(args) == 0 {
		_, _ = fmt.Println("Available applets: gtaiconv,gtailocal,gtaileap")
		ret = 1
		return ret
	}

	switch args[0] {
	case "gtaiconv":
		ret = GTAIConvRun(args[1:])
	case "gtailocal":
		ret = GTAILocalRun(args[1:])
	case "gtaileap":
		ret = GTAILeapRun(args[1:])

	default:
		_, _ = fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		ret = 1
	}
	return ret
}

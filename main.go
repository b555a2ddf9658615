package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/karasz/gtleap/cmd"
)

func main() {
	_, calledAs := filepath.Split(os.Args[0])
	args := os.Args[1:]
	res := 0
	switch calledAs {
	case "gtleap":
		res = cmd.MainDispatcher(args)
	case "gtaiconv":
		res = cmd.GTAIConvRun(args)
	case "gtailocal":
		res = cmd.GTAILocalRun(args)
	case "gtaileap":
		res = cmd.GTAILeapRun(args)
	default:
		fmt.Println("Called as ", calledAs, ". I don't recognize that name")
		res = 111
	}
	os.Exit(res)
}

package main

import (
	"os"

	"github.com/babylonchain/chainkit/cmd/chaind/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := cmd.Execute(rootCmd); err != nil {
		rootCmd.PrintErrln("failure when running app:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/go-i2p/go-pkcrypto/cmd/pkcrypto/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.OutOrStderr(), err)
		os.Exit(1)
	}
}

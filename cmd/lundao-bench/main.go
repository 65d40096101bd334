// Command lundao-bench evaluates and compares decision strategies over seeded
// sandbox games.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

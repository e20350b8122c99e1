package main

import (
	"fmt"
	"os"

	"rds-pfd/rock-share/base/logger"
)

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"miguel.build/cfurl/internal/cli"
	"miguel.build/cfurl/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cfurl: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}
}

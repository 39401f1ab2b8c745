package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nrminor/dotlint/internal/adapters/inbound/cli"
	"github.com/nrminor/dotlint/internal/domain"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Issue counts were already reported in the summary; only fatal
		// run errors still need a message.
		if !errors.Is(err, domain.ErrIssuesFound) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

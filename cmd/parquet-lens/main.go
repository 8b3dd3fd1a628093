// Command parquet-lens inspects the byte layout of Parquet files.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/parquet-lens/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

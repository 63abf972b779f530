// Command seqkit prints lazy sequences and queries JSON documents.
package main

import (
	"fmt"
	"os"

	"github.com/kbukum/seqkit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/petomalina/IFJ15/cmd/ifj15/cmd"
	"github.com/petomalina/IFJ15/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(errors.CodeOf(err)))
	}
}

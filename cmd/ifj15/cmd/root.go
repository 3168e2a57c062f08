package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ifj15",
	Short: "IFJ15 interpreter",
	Long: `ifj15 is a tree-walking interpreter for the IFJ15 language,
a small C++-flavoured imperative scripting language with:
  - Typed variables (int, double, string, bool) with auto inference
  - User-defined functions with typed parameters and return values
  - Block-structured scoping with function isolation
  - if/else and for control flow, cin/cout I/O
  - Built-in string functions (concat, length, substr, sort, find)

Execution starts in a function named main. The process exit code
reports the error category: 0 on success, 1-9 for lexical, syntax,
semantic and runtime errors, 99 for internal errors.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

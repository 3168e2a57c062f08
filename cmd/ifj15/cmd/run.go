package cmd

import (
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/petomalina/IFJ15/internal/ast"
	ifjerrors "github.com/petomalina/IFJ15/internal/errors"
	"github.com/petomalina/IFJ15/internal/interp"
	"github.com/petomalina/IFJ15/internal/lexer"
	"github.com/petomalina/IFJ15/internal/parser"
)

var dumpAST bool

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run an IFJ15 source file",
	Long: `Execute an IFJ15 program from a source file.

Program output goes to stdout, cin reads stdin, and diagnostics go to
stderr. The process exits with the error category code.

Examples:
  # Run a script
  ifj15 run script.ifj

  # Run with AST dump (for debugging)
  ifj15 run --dump-ast script.ifj`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
}

func runScript(_ *cobra.Command, args []string) error {
	program, err := parseFile(args[0])
	if err != nil {
		return err
	}

	if dumpAST {
		fmt.Fprintln(os.Stderr, "AST:")
		fmt.Fprintln(os.Stderr, program.String())
	}

	return interp.New(os.Stdout).Run(program)
}

// parseFile reads, lexes and parses a source file. Parse errors are all
// reported on stderr; the returned error carries the first error's
// taxonomy code so it becomes the exit status.
func parseFile(filename string) (*ast.Program, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to read file %s", filename)
	}

	p := parser.New(lexer.New(string(content)))
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, perr := range errs {
			fmt.Fprintln(os.Stderr, perr.Error())
		}
		return nil, ifjerrors.Newf(errs[0].Code, "parsing failed with %d error(s)", len(errs))
	}

	return prog, nil
}

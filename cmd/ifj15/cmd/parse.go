package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse an IFJ15 source file and print its AST",
	Long: `Parse a source file and print the reconstructed program form of the
AST. This is a debugging aid for the front end; nothing is executed.`,
	Args: cobra.ExactArgs(1),
	RunE: parseOnly,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parseOnly(_ *cobra.Command, args []string) error {
	program, err := parseFile(args[0])
	if err != nil {
		return err
	}

	fmt.Println(program.String())
	return nil
}

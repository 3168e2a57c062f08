package cmd

import (
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/petomalina/IFJ15/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize an IFJ15 source file",
	Long: `Tokenize a source file and print the token stream, one token per
line with its position. This is a debugging aid for the front end.`,
	Args: cobra.ExactArgs(1),
	RunE: lexFile,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func lexFile(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", args[0])
	}

	l := lexer.New(string(content))
	for {
		tok := l.NextToken()
		fmt.Printf("%d:%d\t%s\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Literal)
		if tok.Type == lexer.EOF || tok.Type == lexer.ILLEGAL {
			break
		}
	}

	return nil
}

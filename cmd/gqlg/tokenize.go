package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gqlgrammar/internal/diagfmt"
	"gqlgrammar/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.graphql",
	Short: "Tokenize a GraphQL source file",
	Long:  `Tokenize breaks a GraphQL source file into tokens with their leading trivia`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|table)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	result, err := driver.Tokenize(args[0], st.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		opts := diagfmt.PrettyOpts{Color: st.useColor, ShowNotes: true, Max: st.maxDiagnostics}
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, opts); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	case "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	case "table":
		err = diagfmt.FormatTokensTable(out, result.Tokens, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/diagfmt"
	"gqlgrammar/internal/driver"
	"gqlgrammar/internal/parser"
	"gqlgrammar/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.graphql|dir",
	Short: "Parse a GraphQL value, type, arguments or directives",
	Long: `Parse runs one grammar production over a file, or over every *.graphql
and *.gql file of a directory, and prints the resulting node.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("production", "", "grammar production ("+strings.Join(parser.Productions(), "|")+")")
	parseCmd.Flags().String("text", "", "text policy of the parsed nodes (borrowed|owned)")
	parseCmd.Flags().String("format", "", "output format (pretty|tree|json|msgpack)")
	parseCmd.Flags().Int("max-depth", 0, "maximum list/object/type nesting")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directories (0=auto)")
	parseCmd.Flags().Bool("timings", false, "print lex/parse timings to stderr")
}

// parseFlags overrides config values with the parse flags that were set.
func parseFlags(cmd *cobra.Command, st *settings) (jobs int, err error) {
	flags := cmd.Flags()
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"production", &st.cfg.Parse.Production},
		{"text", &st.cfg.Parse.Text},
		{"format", &st.cfg.Output.Format},
	} {
		if !flags.Changed(f.name) {
			continue
		}
		if *f.dst, err = flags.GetString(f.name); err != nil {
			return 0, fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
	}
	if flags.Changed("max-depth") {
		if st.cfg.Parse.MaxDepth, err = flags.GetInt("max-depth"); err != nil {
			return 0, fmt.Errorf("failed to get max-depth flag: %w", err)
		}
	}
	if jobs, err = flags.GetInt("jobs"); err != nil {
		return 0, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	return jobs, st.cfg.Validate()
}

func buildRequest(st settings) (driver.Request, error) {
	prod, ok := parser.ParseProduction(st.cfg.Parse.Production)
	if !ok {
		return driver.Request{}, fmt.Errorf("unknown production %q", st.cfg.Parse.Production)
	}
	policy, err := driver.ParseTextPolicy(st.cfg.Parse.Text)
	if err != nil {
		return driver.Request{}, err
	}
	return driver.Request{
		Production:     prod,
		Text:           policy,
		MaxDepth:       st.cfg.Parse.MaxDepth,
		MaxDiagnostics: st.maxDiagnostics,
	}, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	jobs, err := parseFlags(cmd, &st)
	if err != nil {
		return err
	}
	req, err := buildRequest(st)
	if err != nil {
		return err
	}
	tracer, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	req.Tracer = tracer
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()
	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", target, err)
	}

	prettyOpts := diagfmt.PrettyOpts{Color: st.useColor, ShowNotes: true, Max: st.maxDiagnostics}
	out := cmd.OutOrStdout()
	if !info.IsDir() {
		res, err := driver.Parse(target, req)
		if err != nil {
			return err
		}
		if timings {
			fmt.Fprint(cmd.ErrOrStderr(), res.Timing.Summary(res.File.Path))
		}
		return report(cmd, res.FileSet, res.Bag, res.Node, st.cfg.Output.Format, prettyOpts, out, "")
	}

	fileSet, results, err := driver.ParseDir(cmd.Context(), target, req, jobs)
	if err != nil {
		return err
	}
	failed := false
	for _, r := range results {
		header := fileSet.Get(r.FileID).FormatPath("relative", fileSet.BaseDir())
		if timings && len(r.Timing.Phases) > 0 {
			fmt.Fprint(cmd.ErrOrStderr(), r.Timing.Summary(header))
		}
		if err := report(cmd, fileSet, r.Bag, r.Node, st.cfg.Output.Format, prettyOpts, out, header); err != nil {
			if !errors.Is(err, errDiagnostics) {
				return err
			}
			failed = true
		}
	}
	if failed {
		return errDiagnostics
	}
	return nil
}

// report prints the diagnostics of one file to stderr and its node, if
// any, to out. header is printed before the node for directory runs.
func report(cmd *cobra.Command, fs *source.FileSet, bag *diag.Bag, node any, format string, opts diagfmt.PrettyOpts, out io.Writer, header string) error {
	if bag.Len() > 0 {
		bag.Sort()
		bag.Dedup()
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, opts); err != nil {
			return err
		}
	}
	if node != nil {
		if header != "" && format != "msgpack" {
			if _, err := fmt.Fprintf(out, "== %s\n", header); err != nil {
				return err
			}
		}
		if err := writeNode(out, node, fs, format); err != nil {
			return err
		}
	}
	if bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}

func writeNode(w io.Writer, node any, fs *source.FileSet, format string) error {
	switch format {
	case "pretty":
		return diagfmt.FormatNodePretty(w, node, fs)
	case "tree":
		return diagfmt.FormatNodeTree(w, node, fs)
	case "json":
		return diagfmt.FormatNodeJSON(w, node)
	case "msgpack":
		return diagfmt.FormatNodeMsgpack(w, node)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

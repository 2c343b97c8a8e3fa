package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tsplib"
)

// options carries the resolved flag values into run.
type options struct {
	format  string
	verbose bool
	tour    bool
}

const (
	formatText = "text"
	formatYAML = "yaml"
)

// newRootCmd wires the flags through a private viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "tspinfo FILE...",
		Short:        "Summarize TSPLIB instances",
		Long:         "tspinfo reads TSPLIB files and prints name, type and graph statistics for each.",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, options{
				format:  v.GetString("format"),
				verbose: v.GetBool("verbose"),
				tour:    v.GetBool("tour"),
			})
		},
	}

	cmd.Flags().StringP("format", "f", formatText, "Output format: text or yaml")
	cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	cmd.Flags().BoolP("tour", "t", false, "Compute a tour and report its cost")

	_ = v.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = v.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	_ = v.BindPFlag("tour", cmd.Flags().Lookup("tour"))

	v.SetEnvPrefix("TSPINFO")
	v.AutomaticEnv()

	return cmd
}

// run reads every file and writes one summary per file to out.
// Progress goes to errOut when verbose is set.
func run(out, errOut io.Writer, files []string, opts options) error {
	if opts.format != formatText && opts.format != formatYAML {
		return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatText, formatYAML)
	}

	summaries := make([]summary, 0, len(files))
	for _, file := range files {
		if opts.verbose {
			fmt.Fprintf(errOut, "reading %s\n", file)
		}
		content, err := tsplib.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		s, err := summarize(file, content)
		if err != nil {
			return fmt.Errorf("summarizing %s: %w", file, err)
		}
		if opts.verbose {
			fmt.Fprintf(errOut, "%s: %d vertices, %d edges\n", file, s.Order, s.Size)
		}
		if opts.tour {
			if err = s.solve(content.Graph); err != nil {
				return fmt.Errorf("touring %s: %w", file, err)
			}
			if opts.verbose && s.TourCost != nil {
				fmt.Fprintf(errOut, "%s: %s tour of cost %d\n", file, s.TourMethod, *s.TourCost)
			}
		}
		summaries = append(summaries, s)
	}

	if opts.format == formatYAML {
		return writeYAML(out, summaries)
	}

	return writeText(out, summaries)
}

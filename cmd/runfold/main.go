// Command runfold prints running folds of a sequence of numbers, or of the
// display widths of a text's line-break segments.
//
// Usage:
//
//	runfold [flags] [file]
//
// Input is read from file, or from stdin if file is missing or "-".
// Every flag may also be set by an environment variable RUNFOLD_<FLAG>,
// e.g. RUNFOLD_OP=max or RUNFOLD_NO_COLOR=true.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	conf := viper.New()
	cmd := &cobra.Command{
		Use:   "runfold [file]",
		Short: "Print running sums, products, minima or maxima",
		Long: `runfold reads whitespace-separated numbers and prints the running fold
of them, one row per input element.

With --text, the input is split into line-break segments and the fold runs
over their display widths. With --html, the fold runs over the widths of the
text nodes of an HTML fragment. Operation "fill" fills lines of --width en
first-fit.

Examples:
  # Running sum of numbers
  echo 1 2 3 | runfold

  # Final maximum only
  runfold --op max --last numbers.txt

  # Where does a text wrap at 40 columns?
  runfold --text --op fill --width 40 README.md`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFrom(conf)
			setupTracing(opts.trace)
			input := "-"
			if len(args) > 0 {
				input = args[0]
			}
			return run(cmd, input, opts)
		},
	}
	flags := cmd.Flags()
	flags.String("op", "sum", "fold operation: sum, product, min, max or fill")
	flags.String("seed", "", "seed value overriding the operation's default")
	flags.Bool("last", false, "print the final value only")
	flags.Bool("text", false, "fold over display widths of line-break segments")
	flags.Bool("html", false, "fold over display widths of HTML text nodes")
	flags.Int("width", 65, "line width in en for operation fill")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("trace", "error", "trace level: error, info or debug")
	conf.SetEnvPrefix("RUNFOLD")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()
	if err := conf.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("runfold: cannot bind flags: %v", err))
	}
	return cmd
}

// options are the effective settings of a run, from flags or environment.
type options struct {
	op      string
	seed    string
	last    bool
	text    bool
	html    bool
	width   int
	noColor bool
	trace   string
}

func optionsFrom(conf *viper.Viper) options {
	return options{
		op:      strings.ToLower(conf.GetString("op")),
		seed:    conf.GetString("seed"),
		last:    conf.GetBool("last"),
		text:    conf.GetBool("text"),
		html:    conf.GetBool("html"),
		width:   conf.GetInt("width"),
		noColor: conf.GetBool("no-color"),
		trace:   conf.GetString("trace"),
	}
}

func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	switch strings.ToLower(level) {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}

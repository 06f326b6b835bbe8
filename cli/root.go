// Package cli provides the command-line interface for pcalc.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"go.creack.net/pcalc/interp"
	"go.creack.net/pcalc/parser"
)

// Version information (set at build time).
var (
	Version = "0.1.0"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		given   []string
	)

	cmd := &cobra.Command{
		Use:   "pcalc [expression ...]",
		Short: "pcalc - an interactive Pratt-parsing calculator",
		Long: `pcalc evaluates arithmetic expressions: numbers, variables, parentheses,
prefix signs, + - * / ^, postfix factorial (!), and variable assignment (=).

With arguments, each one is evaluated as an expression in a single session
and the results are printed. Without arguments, an interactive shell starts.`,
		Example: `  # One-shot evaluation
  pcalc "3 + 4 * 2"

  # Several expressions share one session
  pcalc "a = 3" "a + 4"

  # Pre-defined variables
  pcalc --given tau=6.28 "tau / 2"`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			setupLogger(cfg.Verbose)

			session := interp.New()
			for _, def := range given {
				if err := defineVar(session, def); err != nil {
					return err
				}
			}
			if len(args) > 0 {
				return runOnce(cmd, cfg, session, args)
			}
			return runREPL(cmd, cfg, session)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: ./pcalc.yaml)")
	cmd.Flags().String("prompt", ">> ", "interactive prompt")
	cmd.Flags().String("history", "", "history file (default: ~/.pcalc_history)")
	cmd.Flags().String("format", "%g", "result formatting verb")
	cmd.Flags().Bool("echo", false, "print parse trees before results")
	cmd.Flags().Bool("banner", true, "print the welcome banner")
	cmd.Flags().BoolP("verbose", "v", false, "verbose logging")
	cmd.Flags().StringArrayVar(&given, "given", nil, "name=value variable definition (any number of times)")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func setupLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// defineVar applies a --given name=value definition. The definition itself
// runs through the pipeline, so values may be expressions.
func defineVar(session *interp.Interpreter, def string) error {
	if !strings.Contains(def, "=") {
		return fmt.Errorf(`variable definitions must be "name=value", not %q`, def)
	}
	if _, err := session.Interpret(def); err != nil {
		return fmt.Errorf("setting %q: %w", def, err)
	}
	return nil
}

// runOnce evaluates each argument as one expression, all in the same
// session, and prints each result.
func runOnce(cmd *cobra.Command, cfg *Config, session *interp.Interpreter, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		expr, err := parser.ParseString(arg)
		if err != nil {
			return err
		}
		if cfg.Echo {
			fmt.Fprintf(out, "%s : ", expr.Dump())
		}
		v, err := session.Eval(expr)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, cfg.Format+"\n", v)
	}
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"go.creack.net/pcalc/interp"
	"go.creack.net/pcalc/parser"
)

// runREPL reads expressions line by line until EOF or interrupt. Each line
// goes through the full pipeline against the shared session.
func runREPL(cmd *cobra.Command, cfg *Config, session *interp.Interpreter) error {
	completer := readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".vars"),
		readline.PcItem(".reset"),
		readline.PcItem(".tree"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
		readline.PcItemDynamic(func(string) []string { return session.Vars() }),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptStyle.Render(cfg.Prompt),
		HistoryFile:     cfg.History,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("initialize line editor: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	if cfg.Banner {
		printBanner(out)
	}

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			fmt.Fprintln(out, "Quitting...")
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(out, session, cfg, line); quit {
				return nil
			}
			continue
		}

		evalLine(out, session, cfg, line)
	}
}

// evalLine runs one input line through the pipeline and prints the result
// or the error. Malformed-tree faults are evaluator defects, not user
// mistakes, and are logged as such.
func evalLine(out io.Writer, session *interp.Interpreter, cfg *Config, line string) {
	expr, err := parser.ParseString(line)
	if err != nil {
		fmt.Fprintln(out, errorStyle.Render("Interpreter Error: "+err.Error()))
		return
	}
	if cfg.Echo {
		fmt.Fprintln(out, treeStyle.Render(expr.Dump()))
	}
	v, err := session.Eval(expr)
	if err != nil {
		var terr *interp.TreeError
		if errors.As(err, &terr) {
			slog.Error("evaluator defect", "node", terr.Node, "input", line)
		}
		fmt.Fprintln(out, errorStyle.Render("Interpreter Error: "+err.Error()))
		return
	}
	fmt.Fprintln(out, resultStyle.Render(fmt.Sprintf(cfg.Format, v)))
}

// handleDotCommand dispatches a REPL command. Reports whether the REPL
// should quit.
func handleDotCommand(out io.Writer, session *interp.Interpreter, cfg *Config, line string) bool {
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		fmt.Fprintln(out, "Quitting...")
		return true

	case ".help":
		printREPLHelp(out)

	case ".vars":
		names := session.Vars()
		if len(names) == 0 {
			fmt.Fprintln(out, "no variables assigned")
			break
		}
		for _, name := range names {
			v, _ := session.Lookup(name)
			fmt.Fprintf(out, "%s = "+cfg.Format+"\n", name, v)
		}

	case ".reset":
		session.Reset()

	case ".tree":
		arg := strings.TrimSpace(strings.TrimPrefix(line, parts[0]))
		if arg == "" {
			fmt.Fprintln(out, "Usage: .tree <expression>")
			break
		}
		expr, err := parser.ParseString(arg)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("Interpreter Error: "+err.Error()))
			break
		}
		fmt.Fprintln(out, treeStyle.Render(expr.Dump()))

	default:
		fmt.Fprintf(out, "unknown command %q, try .help\n", parts[0])
	}
	return false
}

func printBanner(out io.Writer) {
	fmt.Fprintln(out, bannerStyle.Render(`Welcome to pcalc!
Input is parsed with precedence climbing and evaluated by walking the tree.
Supported: + - * / ^ (binary), + - (prefix), ! (factorial), parentheses,
and variable assignment (try "myvariable = 3").`))
	fmt.Fprintln(out, versionStyle.Render("Version "+Version))
}

func printREPLHelp(out io.Writer) {
	fmt.Fprintln(out, `Commands:
  .help              Show this help
  .vars              List assigned variables
  .reset             Drop all variables
  .tree <expression> Print the parse tree without evaluating
  .quit, .exit       Leave the shell`)
}

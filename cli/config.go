package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds the host shell settings. The core pipeline has no
// configuration surface of its own.
type Config struct {
	Prompt  string
	History string
	Format  string
	Banner  bool
	Echo    bool
	Verbose bool
}

// findConfigFile finds the config file to use.
// Priority: explicit path > pcalc.yaml > pcalc.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"pcalc.yaml", "pcalc.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pcalc_history"
	}
	return filepath.Join(home, ".pcalc_history")
}

// loadConfig merges, in order of precedence: defaults, the optional yaml
// config file, PCALC_* environment variables, then changed CLI flags.
func loadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"prompt":  ">> ",
		"history": defaultHistoryFile(),
		"format":  "%g",
		"banner":  true,
		"echo":    false,
		"verbose": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("PCALC_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PCALC_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	return &Config{
		Prompt:  k.String("prompt"),
		History: k.String("history"),
		Format:  k.String("format"),
		Banner:  k.Bool("banner"),
		Echo:    k.Bool("echo"),
		Verbose: k.Bool("verbose"),
	}, nil
}

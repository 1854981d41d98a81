// internal/cli/root.go
//
// Command wiring. The bare command casts and interprets (same as the
// divine subcommand); cast is the scripting surface that emits the raw
// result as JSON and never talks to the model.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingrea/yarrow/internal/config"
	"github.com/kingrea/yarrow/internal/divination"
)

// RootOptions holds the persistent flags shared by every command. Zero
// values mean "use config.yaml".
type RootOptions struct {
	URL     string
	Model   string
	Spread  float64
	Seed    int64
	Plain   bool
	Concise bool
	Stream  bool
}

// NewRootCommand builds the yarrow command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "yarrow [question]",
		Short: "大衍筮法起卦，并请本地模型解卦",
		Long: `yarrow simulates the Dayan yarrow-stalk method in the terminal:
three changes per line, six lines per hexagram, then the finished casting
is narrated while a local Ollama model writes the reading.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDivine(cmd, opts, args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.URL, "url", "", "Ollama base URL (overrides config)")
	flags.StringVar(&opts.Model, "model", "", "model name (overrides config)")
	flags.Float64Var(&opts.Spread, "spread", 0, "hand-split standard deviation (overrides config)")
	flags.Int64Var(&opts.Seed, "seed", 0, "seed the random source for a reproducible casting")
	flags.BoolVar(&opts.Plain, "plain", false, "write the narration to stdout without the TUI")
	flags.BoolVar(&opts.Stream, "stream", false, "with --plain, print the reading as the model writes it")
	flags.BoolVar(&opts.Concise, "concise", true, "two-part answer only; --concise=false asks for advice too")

	cmd.AddCommand(
		newDivineCommand(opts),
		newCastCommand(opts),
		newVersionCommand(version),
	)
	return cmd
}

// loadConfig reads config.yaml and applies any explicitly set flags on
// top, so the file stays the default and the flag wins when given.
func loadConfig(cmd *cobra.Command, opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("url") {
		cfg.Settings.OllamaURL = opts.URL
	}
	if cmd.Flags().Changed("model") {
		cfg.Settings.Model = opts.Model
	}
	if cmd.Flags().Changed("spread") {
		if opts.Spread <= 0 {
			return nil, fmt.Errorf("cli: --spread must be positive")
		}
		cfg.Settings.SplitSpread = opts.Spread
	}
	if cmd.Flags().Changed("concise") {
		cfg.Settings.Concise = opts.Concise
	}
	return cfg, nil
}

// engineOptions translates config and flags into engine construction.
func engineOptions(cmd *cobra.Command, cfg *config.Config, opts *RootOptions) []divination.Option {
	engOpts := []divination.Option{divination.WithSpread(cfg.Settings.SplitSpread)}
	if cmd.Flags().Changed("seed") {
		engOpts = append(engOpts, divination.WithSeed(opts.Seed))
	}
	return engOpts
}

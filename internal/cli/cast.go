// internal/cli/cast.go
//
// cast runs the engine only and prints the result as JSON: the same
// schema the interpreter and renderer consume, exposed for scripting.
// It reads no config and touches no network.

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingrea/yarrow/internal/divination"
)

func newCastCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cast",
		Short: "只起卦，输出 JSON 结果",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engOpts := []divination.Option{}
			if cmd.Flags().Changed("spread") {
				if opts.Spread <= 0 {
					return fmt.Errorf("cli: --spread must be positive")
				}
				engOpts = append(engOpts, divination.WithSpread(opts.Spread))
			}
			if cmd.Flags().Changed("seed") {
				engOpts = append(engOpts, divination.WithSeed(opts.Seed))
			}
			res := divination.New(engOpts...).Run()

			data, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return fmt.Errorf("cli: encode result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

// internal/cli/divine.go
//
// The full flow: probe the daemon, cast, then narrate the casting while
// the interpretation request runs in the background. The engine finishes
// before either consumer starts; narration and the model request share
// nothing but the immutable result.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingrea/yarrow/internal/divination"
	"github.com/kingrea/yarrow/internal/hexagrams"
	"github.com/kingrea/yarrow/internal/logging"
	"github.com/kingrea/yarrow/internal/markdown"
	"github.com/kingrea/yarrow/internal/ollama"
	"github.com/kingrea/yarrow/internal/prompt"
	"github.com/kingrea/yarrow/internal/tui"
)

func newDivineCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "divine [question]",
		Short: "起卦并请模型解卦",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDivine(cmd, opts, args)
		},
	}
}

func runDivine(cmd *cobra.Command, opts *RootOptions, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogsDir())
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.Printf("divine: question=%q model=%s", question, cfg.Settings.Model)

	ctx := cmd.Context()
	client := ollama.New(cfg.Settings.OllamaURL, cfg.Settings.Model, cfg.Timeout())
	if err := client.Ping(ctx); err != nil {
		logger.Errorf("ping: %v", err)
		return fmt.Errorf("无法连接 Ollama 服务（%s），请确认其正在运行: %w", cfg.Settings.OllamaURL, err)
	}

	// The casting is instant; everything after it only replays the record.
	res := divination.New(engineOptions(cmd, cfg, opts)...).Run()
	interp, err := hexagrams.Interpret(res)
	if err != nil {
		logger.Errorf("interpret: %v", err)
		return err
	}
	logger.Printf("cast: 本卦=%s(%d) 变爻=%v", interp.Original.Name, interp.Original.Number, res.Hexagram.ChangingLines)

	user, system := prompt.Build(question, interp, cfg.Settings.Concise)
	frames := tui.BuildScript(res, interp)

	if opts.Plain && opts.Stream {
		// Streaming prints raw model output as it arrives, so the
		// narration has to finish before the request starts.
		out := cmd.OutOrStdout()
		if err := tui.WritePlain(out, frames); err != nil {
			return err
		}
		fmt.Fprintln(out)
		err := client.Stream(ctx, user, system, func(chunk string) error {
			_, werr := fmt.Fprint(out, chunk)
			return werr
		})
		if err != nil {
			logger.Errorf("stream: %v", err)
			return fmt.Errorf("解卦失败: %w", err)
		}
		fmt.Fprintln(out)
		return nil
	}

	readingCh := make(chan tui.Reading, 1)
	go func() {
		text, err := client.Generate(ctx, user, system)
		if err != nil {
			logger.Errorf("generate: %v", err)
			readingCh <- tui.Reading{Err: err}
			return
		}
		readingCh <- tui.Reading{Text: strings.TrimSpace(markdown.Clean(text))}
	}()

	if opts.Plain {
		out := cmd.OutOrStdout()
		if err := tui.WritePlain(out, frames); err != nil {
			return err
		}
		reading := <-readingCh
		if reading.Err != nil {
			return fmt.Errorf("解卦失败: %w", reading.Err)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, reading.Text)
		return nil
	}
	return tui.Run(frames, readingCh)
}

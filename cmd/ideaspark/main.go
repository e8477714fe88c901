package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shouni/idea-spark-kit/pkg/config"
	"github.com/shouni/idea-spark-kit/pkg/domain"
	"github.com/shouni/idea-spark-kit/pkg/generator"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	flagModel       string
	flagAPIKey      string
	flagTimeout     time.Duration
	flagOutput      string
	flagJSON        bool
	flagCompress    bool
	flagRevealDelay time.Duration
	flagVerbose     bool
)

// App は CLI の入出力と依存関係をまとめたものです。テストから差し替えられます。
type App struct {
	Out          io.Writer
	Err          io.Writer
	LoadConfig   func() (*config.Config, error)
	NewGenerator func(ctx context.Context, cfg *config.Config) (generator.IdeaGenerator, error)
	Sleep        func(time.Duration)
	WriteFile    func(name string, data []byte, perm os.FileMode) error
}

func DefaultApp() *App {
	return &App{
		Out:        os.Stdout,
		Err:        os.Stderr,
		LoadConfig: func() (*config.Config, error) { return config.Load() },
		NewGenerator: func(ctx context.Context, cfg *config.Config) (generator.IdeaGenerator, error) {
			client, err := generator.NewGeminiClient(ctx, cfg.APIKey)
			if err != nil {
				return nil, err
			}
			return generator.NewIdeaSparker(client, generator.SparkerConfig{
				Model:           cfg.Model,
				CompressImage:   cfg.CompressImage,
				CompressQuality: cfg.CompressQuality,
				Seed:            cfg.Seed,
			})
		},
		Sleep:     time.Sleep,
		WriteFile: os.WriteFile,
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := DefaultApp()
	return newRootCmd(app).Execute()
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ideaspark [topic]",
		Short: "Spark a creative idea and a synthwave illustration from a topic",
		Long: `ideaspark sends a topic to Gemini and returns one idea (title and description)
together with a retro-futuristic illustration.

Examples:
  ideaspark "community art project"
  ideaspark -o idea.png "museum night market"
  ideaspark --json "urban garden festival"`,
		Args:          cobra.ExactArgs(1),
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpark(cmd, args, app)
		},
	}

	cmd.Flags().StringVarP(&flagModel, "model", "m", "", "Gemini model (defaults to IDEASPARK_MODEL)")
	cmd.Flags().StringVar(&flagAPIKey, "api-key", "", "API key (defaults to IDEASPARK_API_KEY or GEMINI_API_KEY)")
	cmd.Flags().DurationVarP(&flagTimeout, "timeout", "t", 0, "deadline for the generation call (defaults to IDEASPARK_TIMEOUT)")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write the generated image to this file")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&flagCompress, "compress", false, "re-encode the image as JPEG before embedding")
	cmd.Flags().DurationVar(&flagRevealDelay, "reveal-delay", 20*time.Millisecond, "per-character delay when revealing the description (0 disables)")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print diagnostic logs to stderr")

	return cmd
}

func runSpark(cmd *cobra.Command, args []string, app *App) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	level := slog.LevelError
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(app.Err, &slog.HandlerOptions{Level: level})))

	topic := args[0]
	if strings.TrimSpace(topic) == "" {
		return fmt.Errorf("topic must not be empty")
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if cfg.APIKey == "" {
		return fmt.Errorf("API key required: set IDEASPARK_API_KEY or GEMINI_API_KEY, or use --api-key")
	}

	gen, err := app.NewGenerator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	if cfg.Timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, cfg.Timeout)
		defer cancelTimeout()
	}

	if !flagJSON {
		fmt.Fprintln(app.Out, "IGNITING...")
	}

	result, err := gen.GenerateIdea(ctx, topic)
	if err != nil {
		// 詳細はログにのみ残し、利用者には汎用メッセージを表示する
		slog.ErrorContext(ctx, "アイデア生成に失敗しました", "error", err)
		return errors.New(generator.UserMessage)
	}

	if flagOutput != "" {
		img, err := result.DecodeImage()
		if err != nil {
			return err
		}
		if err := app.WriteFile(flagOutput, img.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write image: %w", err)
		}
	}

	if flagJSON {
		enc := json.NewEncoder(app.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	reveal(app, result)
	return nil
}

// applyFlags は明示的に指定されたフラグで設定を上書きします。
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Model = flagModel
	}
	if flags.Changed("api-key") {
		cfg.APIKey = flagAPIKey
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if flags.Changed("compress") {
		cfg.CompressImage = flagCompress
	}
}

// reveal は画像、タイトル、説明の順に表示し、説明は1文字ずつ出力します。
func reveal(app *App, result *domain.IdeaResult) {
	if flagOutput != "" {
		fmt.Fprintf(app.Out, "Image: %s\n", flagOutput)
	} else {
		fmt.Fprintf(app.Out, "Image: %d bytes (data URI)\n", len(result.ImageURL))
	}
	fmt.Fprintf(app.Out, "\n%s\n\n", result.Title)

	for _, r := range result.Description {
		fmt.Fprint(app.Out, string(r))
		if flagRevealDelay > 0 {
			app.Sleep(flagRevealDelay)
		}
	}
	fmt.Fprintln(app.Out)
}

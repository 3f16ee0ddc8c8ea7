package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-extractor/internal/ai"
	"github.com/spigell/resume-extractor/internal/ai/gemini"
	"github.com/spigell/resume-extractor/internal/ai/openai"
	"github.com/spigell/resume-extractor/internal/batch"
	"github.com/spigell/resume-extractor/internal/export"
	"github.com/spigell/resume-extractor/internal/logger"
	"github.com/spigell/resume-extractor/internal/pdftext"
	"github.com/spigell/resume-extractor/internal/resume"
	"github.com/spigell/resume-extractor/internal/secrets"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var errDeclined = errors.New("run declined")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Extract every PDF resume in the input directory into a table",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("dir", "", "directory with PDF resumes (default "+defaultInputDir+")")
	runCmd.Flags().StringP("output", "o", "", "output file, .csv or .xlsx (default "+defaultOutputFile+")")
	runCmd.Flags().Float64("delay", 0, "pause in seconds before every batch of 10 resumes")
	runCmd.Flags().Int("max-log-length", 0, "maximum prompt/response preview length in debug logs")
	runCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before calling the AI backend")

	viper.BindPFlag("input.dir", runCmd.Flags().Lookup("dir"))
	viper.BindPFlag("output.file", runCmd.Flags().Lookup("output"))
	viper.BindPFlag("batch.delay-seconds", runCmd.Flags().Lookup("delay"))
	viper.BindPFlag("ai.max-log-length", runCmd.Flags().Lookup("max-log-length"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	baseLogger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer baseLogger.Sync()

	logger := logger.ForRun(baseLogger)

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil || config.AI == nil || config.Input == nil || config.Output == nil || config.Batch == nil {
		logger.Fatal("config is required")
	}

	logger.Info("starting the resume-extractor", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	backend, err := ai.ParseBackend(config.AI.Backend)
	if err != nil {
		logger.Fatal("selecting ai backend", zap.Error(err))
	}

	generator, err := newGenerator(ctx, backend, config.AI)
	if err != nil {
		logger.Fatal("building ai backend",
			zap.String("backend", string(backend)),
			zap.Error(err),
		)
	}

	invoker := ai.NewInvoker(backend, generator, logger, config.AI.MaxLogLength)

	orchestrator := batch.New(&batch.Config{
		Dir:   config.Input.Dir,
		Delay: time.Duration(config.Batch.DelaySeconds * float64(time.Second)),
		Size:  batch.DefaultSize,
	}, pdftext.New(logger), invoker, logger)

	names, err := orchestrator.Documents()
	if err != nil {
		logger.Fatal("listing resumes", zap.Error(err))
	}

	if len(names) == 0 {
		logger.Info("exiting", zap.String("reason", "no pdf resumes found"), zap.String("dir", config.Input.Dir))
		return
	}

	logger.Info("found resumes", zap.Int("count", len(names)), zap.String("dir", config.Input.Dir))

	if err := confirm(cmd, len(names), backend); err != nil {
		if errors.Is(err, errDeclined) {
			logger.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
		logger.Fatal("exiting", zap.Error(err))
	}

	records := orchestrator.Process(ctx, names)

	if err := export.Write(config.Output.File, records); err != nil {
		logger.Fatal("saving results", zap.Error(err))
	}

	logger.Info("data extraction complete",
		zap.String("output", config.Output.File),
		zap.Int("records", len(records)),
		zap.Int("placeholders", countPlaceholders(records)),
	)
}

func confirm(cmd *cobra.Command, count int, backend ai.Backend) error {
	if flag := cmd.Flag("auto-approve"); flag != nil && flag.Value.String() == "true" {
		return nil
	}

	prompt := promptui.Select{
		Label: fmt.Sprintf("Send %d resumes to the %s backend?", count, backend),
		Items: []string{PromptYes, PromptNo},
	}

	_, action, err := prompt.Run()
	if err != nil {
		return err
	}

	if action != PromptYes {
		return errDeclined
	}

	return nil
}

func newGenerator(ctx context.Context, backend ai.Backend, cfg *AIConfig) (ai.Generator, error) {
	switch backend {
	case ai.BackendGoogle:
		if cfg.Gemini == nil {
			return nil, errors.New("gemini configuration is required for the google backend")
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name:  "google api key",
			Value: cfg.Gemini.APIKey,
			File:  cfg.Gemini.APIKeyFile,
		})
		if err != nil {
			return nil, fmt.Errorf("%w (set GOOGLE_API_KEY in the environment or .env file, or use another backend)", err)
		}

		return gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	case ai.BackendOpenAI:
		if cfg.OpenAI == nil {
			return nil, errors.New("openai configuration is required for the openai backend")
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name:  "openai api key",
			Value: cfg.OpenAI.APIKey,
			File:  cfg.OpenAI.APIKeyFile,
		})
		if err != nil {
			return nil, fmt.Errorf("%w (set OpenAI_KEY in the environment or .env file, or use another backend)", err)
		}

		return openai.NewGenerator(apiKey, openai.Config{
			Model:       cfg.OpenAI.Model,
			MaxTokens:   cfg.OpenAI.MaxTokens,
			Temperature: &cfg.OpenAI.Temperature,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ai.ErrUnknownBackend, backend)
	}
}

func countPlaceholders(records []resume.Record) int {
	count := 0
	for _, record := range records {
		if record.Email == resume.NotAvailable && record.Name == resume.UnableToProcess(record.File) {
			count++
		}
	}
	return count
}

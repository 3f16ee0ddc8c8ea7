package cmd

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/resume-extractor/internal/ai"
	"github.com/spigell/resume-extractor/internal/batch"
)

const (
	app = "resume-extractor"

	defaultInputDir   = "resumes"
	defaultOutputFile = "resumes_extracted_data.csv"
)

type Config struct {
	Input  *InputConfig  `mapstructure:"input"`
	Output *OutputConfig `mapstructure:"output"`
	Batch  *BatchConfig  `mapstructure:"batch"`
	AI     *AIConfig     `mapstructure:"ai"`
}

type InputConfig struct {
	Dir string `mapstructure:"dir"`
}

type OutputConfig struct {
	File string `mapstructure:"file"`
}

type BatchConfig struct {
	DelaySeconds float64 `mapstructure:"delay-seconds"`
}

type AIConfig struct {
	Backend      string        `mapstructure:"backend"`
	MaxLogLength int           `mapstructure:"max-log-length"`
	Gemini       *GeminiConfig `mapstructure:"gemini"`
	OpenAI       *OpenAIConfig `mapstructure:"openai"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key" json:"-"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api-key" json:"-"`
	APIKeyFile  string  `mapstructure:"api-key-file"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int64   `mapstructure:"max-tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// envBindings maps config keys to the environment variable names used in .env files.
var envBindings = map[string]string{
	"ai.backend":             "AImodel",
	"ai.gemini.api-key":      "GOOGLE_API_KEY",
	"ai.gemini.api-key-file": "GOOGLE_API_KEY_FILE",
	"ai.openai.api-key":      "OpenAI_KEY",
	"ai.openai.api-key-file": "OPENAI_API_KEY_FILE",
	"input.dir":              "FOLDER_DIR",
	"batch.delay-seconds":    "BATCH_DELAY_IN_SECONDS",
	"output.file":            "EXTRACTED_DATA_FILENAME",
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-extractor pulls contact, education and work history out of PDF resumes with a generative AI model",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	setDefaults()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is "+app+".yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func setDefaults() {
	viper.SetDefault("ai.backend", string(ai.BackendGoogle))
	viper.SetDefault("ai.max-log-length", 200)
	viper.SetDefault("ai.gemini.model", "gemini-2.5-pro")
	viper.SetDefault("ai.openai.model", "gpt-3.5-turbo")
	viper.SetDefault("ai.openai.max-tokens", 500)
	viper.SetDefault("ai.openai.temperature", 0.5)
	viper.SetDefault("input.dir", defaultInputDir)
	viper.SetDefault("output.file", defaultOutputFile)
	viper.SetDefault("batch.delay-seconds", batch.DefaultDelay.Seconds())
}

func initConfig() {
	// Config needed only for run command. Other commands skip initialization.
	if runCmd.CalledAs() == "" {
		return
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("loading .env file: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app)
	viper.SetConfigType("yaml")

	// The default config file is optional, everything can come from the environment.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

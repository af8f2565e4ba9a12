package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the question answering service
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Search    SearchConfig    `mapstructure:"search"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Answer    AnswerConfig    `mapstructure:"answer"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// SearchConfig contains news search provider settings. A provider with an
// empty credential is skipped when the aggregator is built.
type SearchConfig struct {
	SerperAPIKey   string        `mapstructure:"serper_api_key"`
	NewsAPIKey     string        `mapstructure:"newsapi_api_key"`
	NewsDataAPIKey string        `mapstructure:"newsdata_api_key"`
	SearxURL       string        `mapstructure:"searx_url"`
	MaxResults     int           `mapstructure:"max_results"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// LLMConfig contains text generation provider settings
type LLMConfig struct {
	GroqAPIKey  string        `mapstructure:"groq_api_key"`
	GroqModel   string        `mapstructure:"groq_model"`
	HFAPIKey    string        `mapstructure:"hf_api_key"`
	HFModel     string        `mapstructure:"hf_model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// AnswerConfig controls context assembly and answer post-formatting
type AnswerConfig struct {
	MaxCharsPerSource int    `mapstructure:"max_chars_per_source"`
	MinLines          int    `mapstructure:"min_lines"`
	FillerLine        string `mapstructure:"filler_line"`
}

// TelemetryConfig contains monitoring settings
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DefaultFillerLine pads short answers up to the minimum line count.
const DefaultFillerLine = "OUTLOOK • Additional context may update as outlets refine their reports within the next news cycle."

func (s SearchConfig) Validate() error {
	if s.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be > 0, got %d", s.MaxResults)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("search.timeout must be > 0")
	}
	return nil
}

func (l LLMConfig) Validate() error {
	if l.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0, got %d", l.MaxTokens)
	}
	if l.Temperature < 0 || l.Temperature > 1 {
		return fmt.Errorf("llm.temperature must be in [0,1], got %.2f", l.Temperature)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be > 0")
	}
	return nil
}

// Normalize applies defaults for unset answer formatting values.
func (a AnswerConfig) Normalize() AnswerConfig {
	if a.MaxCharsPerSource <= 0 {
		a.MaxCharsPerSource = 800
	}
	if a.MinLines <= 0 {
		a.MinLines = 6
	}
	if strings.TrimSpace(a.FillerLine) == "" {
		a.FillerLine = DefaultFillerLine
	}
	return a
}

// legacyEnvAliases maps config keys onto the environment variable names the
// service historically honored, in addition to the NEWSMIND_* forms.
var legacyEnvAliases = map[string]string{
	"server.address":              "PORT",
	"search.serper_api_key":       "SERPER_API_KEY",
	"search.newsapi_api_key":      "NEWSAPI_API_KEY",
	"search.newsdata_api_key":     "NEWSDATA_API_KEY",
	"search.searx_url":            "SEARXNG_URL",
	"search.max_results":          "MAX_SOURCE_LINKS",
	"llm.groq_api_key":            "GROQ_API_KEY",
	"llm.groq_model":              "GROQ_MODEL",
	"llm.hf_api_key":              "HUGGINGFACE_API_KEY",
	"llm.hf_model":                "HF_TEXT_MODEL",
	"llm.max_tokens":              "SUMMARY_MAX_TOKENS",
	"llm.temperature":             "SUMMARY_TEMPERATURE",
	"answer.max_chars_per_source": "MAX_CHARS_PER_SOURCE",
}

// LoadConfig reads configuration from an optional config file and the
// environment. Every key has a default; a missing config file is fine.
func LoadConfig(path string) *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")

	v.SetDefault("server.address", ":5000")
	v.SetDefault("search.max_results", 5)
	v.SetDefault("search.timeout", 20*time.Second)
	v.SetDefault("llm.groq_model", "llama-3.1-8b-instant")
	v.SetDefault("llm.hf_model", "google/flan-t5-base")
	v.SetDefault("llm.max_tokens", 320)
	v.SetDefault("llm.temperature", 0.4)
	v.SetDefault("llm.timeout", 60*time.Second)
	v.SetDefault("answer.max_chars_per_source", 800)
	v.SetDefault("answer.min_lines", 6)
	v.SetDefault("answer.filler_line", DefaultFillerLine)
	v.SetDefault("telemetry.enabled", true)

	if path == "" {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("NEWSMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, alias := range legacyEnvAliases {
		_ = v.BindEnv(key, "NEWSMIND_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), alias)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	// PORT is historically a bare port number
	if addr := config.Server.Address; addr != "" && !strings.Contains(addr, ":") {
		config.Server.Address = ":" + addr
	}

	config.Answer = config.Answer.Normalize()

	if err := config.Search.Validate(); err != nil {
		panic(err)
	}
	if err := config.LLM.Validate(); err != nil {
		panic(err)
	}

	return &config
}

package config

import (
	"errors"
	"fmt"
	"time"

	"go-simpler.org/env"
)

// Settings are the per-request presentation switches shown as checkboxes on
// the page.
type Settings struct {
	ShowSuggestions  bool `json:"show_suggestions" env:"SHOW_POSITIVE_SUGGESTIONS" default:"true"`
	EnableAnimations bool `json:"enable_animations" env:"ENABLE_ANIMATIONS" default:"true"`
	EnableAudio      bool `json:"enable_audio" env:"ENABLE_AUDIO" default:"true"`
}

func DefaultSettings() Settings {
	return Settings{ShowSuggestions: true, EnableAnimations: true, EnableAudio: true}
}

type Config struct {
	AppEnv   string `env:"APP_ENV" default:"dev"`
	Port     string `env:"PORT" default:"8080"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	WordNetDir  string `env:"WORDNET_DIR" default:"./data/wordnet/dict"`
	LexiconFile string `env:"LEXICON_FILE"`

	ValkeyAddress   string        `env:"VALKEY_INIT_ADDRESS"`
	ValkeyPassword  string        `env:"VALKEY_PASSWORD"`
	ValkeyTLS       bool          `env:"VALKEY_TLS" default:"false"`
	AntonymCacheTTL time.Duration `env:"ANTONYM_CACHE_TTL" default:"24h"`

	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	SpeechModel   string        `env:"SPEECH_MODEL" default:"tts-1"`
	SpeechVoice   string        `env:"SPEECH_VOICE" default:"alloy"`
	SpeechTimeout time.Duration `env:"SPEECH_TIMEOUT" default:"20s"`

	KafkaBroker string `env:"KAFKA_BROKER"`
	KafkaTopic  string `env:"KAFKA_TOPIC" default:"positivizer.analyses"`

	HealthcheckInterval time.Duration `env:"HEALTHCHECK_INTERVAL" default:"15s"`

	Settings Settings
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Port == "" {
		return errors.New("PORT is required")
	}

	durations := map[string]time.Duration{
		"ANTONYM_CACHE_TTL":    cfg.AntonymCacheTTL,
		"SPEECH_TIMEOUT":       cfg.SpeechTimeout,
		"HEALTHCHECK_INTERVAL": cfg.HealthcheckInterval,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}

	return nil
}

func (c *Config) SpeechEnabled() bool { return c.OpenAIAPIKey != "" }

func (c *Config) CacheEnabled() bool { return c.ValkeyAddress != "" }

func (c *Config) EventsEnabled() bool { return c.KafkaBroker != "" }

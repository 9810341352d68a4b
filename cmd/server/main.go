package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/positivizer/config"
	"github.com/spacesedan/positivizer/internal/analyzer"
	"github.com/spacesedan/positivizer/internal/cache"
	"github.com/spacesedan/positivizer/internal/clients"
	"github.com/spacesedan/positivizer/internal/clients/kafka_client"
	"github.com/spacesedan/positivizer/internal/lexicon"
	"github.com/spacesedan/positivizer/internal/logging"
	"github.com/spacesedan/positivizer/internal/metrics"
	"github.com/spacesedan/positivizer/internal/monitoring"
	"github.com/spacesedan/positivizer/internal/positivizer"
	"github.com/spacesedan/positivizer/internal/sentiment"
	"github.com/spacesedan/positivizer/internal/server"
	"github.com/spacesedan/positivizer/internal/speech"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := metrics.NewRegistry()
	m := metrics.New(reg)
	monitor := monitoring.NewMonitor(cfg.HealthcheckInterval, m)

	source, err := lexicon.OpenSource(cfg.WordNetDir, cfg.LexiconFile)
	if err != nil {
		slog.Error("[Main] Failed to open antonym source", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer source.Close()

	var antonyms positivizer.AntonymSource = source
	if cfg.CacheEnabled() {
		vc, err := clients.NewValkeyClient(clients.ValkeyConfig{
			Address:  cfg.ValkeyAddress,
			Password: cfg.ValkeyPassword,
			TLS:      cfg.ValkeyTLS,
		})
		if err != nil {
			slog.Warn("[Main] Valkey unavailable, antonym cache disabled",
				slog.String("error", err.Error()))
		} else {
			defer vc.Close()
			antonyms = cache.NewAntonymCache(source, vc, cfg.AntonymCacheTTL, m)
			monitor.Register("cache", vc.Ping)
		}
	}

	var speaker speech.Speaker = speech.Disabled{}
	speechProbe := func(context.Context) error { return speech.ErrUnavailable }
	if cfg.SpeechEnabled() {
		api := clients.NewOpenAISpeechService(cfg.OpenAIAPIKey, cfg.SpeechTimeout)
		breaker := speech.NewBreakerSpeaker(
			speech.NewOpenAISpeaker(api, cfg.SpeechModel, cfg.SpeechVoice),
			speech.DefaultBreakerSettings(),
		)
		speaker = breaker
		speechProbe = breaker.Probe
	} else {
		slog.Info("[Main] OPENAI_API_KEY not set, audio feedback disabled")
	}
	narrator := speech.NewNarrator(speaker, monitor.Register("speech", speechProbe), m)

	opts := []analyzer.Option{analyzer.WithMetrics(m)}
	if cfg.EventsEnabled() {
		producer, err := kafka_client.NewEventProducer(kafka_client.KafkaConfig{
			Broker: cfg.KafkaBroker,
			Topic:  cfg.KafkaTopic,
		}, m)
		if err != nil {
			slog.Warn("[Main] Kafka unavailable, analysis events disabled",
				slog.String("error", err.Error()))
		} else {
			defer producer.Close()
			opts = append(opts, analyzer.WithSink(producer))
		}
	}

	svc := analyzer.NewService(sentiment.NewVADERScorer(), positivizer.New(antonyms), narrator, opts...)

	srv, err := server.NewServer(server.Options{
		Port:     cfg.Port,
		Settings: cfg.Settings,
		Analyzer: svc,
		Health:   monitor,
		Metrics:  m,
		Gatherer: reg,
	})
	if err != nil {
		slog.Error("[Main] Failed to build server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	monitor.Start(ctx)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case <-ctx.Done():
		slog.Info("[Main] Shutdown signal received, cleaning up...")
	case err := <-errCh:
		if err != nil {
			slog.Error("[Main] Server stopped", slog.String("error", err.Error()))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Server shutdown error", slog.String("error", err.Error()))
	}
}

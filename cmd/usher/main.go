// Usher is a voice-assistant daemon: it interprets spoken or typed
// command utterances (play music, control the volume) and executes the
// best-matching service action, replying in words.
//
// Usage:
//
//	usher [flags]
//	usher --config /path/to/usher.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/usherd/usher/docs"
	"github.com/usherd/usher/internal/config"
	"github.com/usherd/usher/internal/dispatch"
	"github.com/usherd/usher/internal/health"
	"github.com/usherd/usher/internal/media"
	"github.com/usherd/usher/internal/player"
	"github.com/usherd/usher/internal/service"
	"github.com/usherd/usher/internal/transport"
	grpctransport "github.com/usherd/usher/internal/transport/grpc"
	httptransport "github.com/usherd/usher/internal/transport/http"
	mqtttransport "github.com/usherd/usher/internal/transport/mqtt"
	"github.com/usherd/usher/internal/tts"
	"github.com/usherd/usher/internal/tts/piper"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/usher.local.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("usher %s\n", version)
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging.
	config.SetupLogging(cfg.Logging)
	slog.Info("usher starting", "version", version)
	docs.SwaggerInfo.Version = version

	// Create root context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Build the media index in the background; services answer with a
	// transient "not ready" until it is published.
	index := &media.AsyncIndex{}
	index.StartBuild(cfg.Music.Dir)

	// Command services, probed in order for every utterance.
	audio := player.NewLocal(cfg.Music.Volume)
	services := []service.Service{
		service.NewMusic(cfg.Music.Platform, audio, index),
		service.NewVolume(audio),
	}

	// Initialize TTS if enabled.
	var synthesizer tts.Synthesizer
	if cfg.TTS.Enabled {
		switch cfg.TTS.Backend {
		case "piper":
			synthesizer = piper.New(cfg.TTS.Piper)
			slog.Info("using piper TTS", "endpoint", cfg.TTS.Piper.Endpoint)
		default:
			slog.Error("unknown tts backend", "backend", cfg.TTS.Backend)
			os.Exit(1)
		}
		defer synthesizer.Close()
	}

	// Initialize enabled transports.
	var transports []transport.Transport

	if cfg.Transports.GRPC.Enabled {
		transports = append(transports, grpctransport.New(cfg.Transports.GRPC.Port))
	}
	if cfg.Transports.HTTP.Enabled {
		transports = append(transports, httptransport.New(cfg.Transports.HTTP.Port))
	}
	if cfg.Transports.MQTT.Enabled {
		transports = append(transports, mqtttransport.New(cfg.Transports.MQTT.Broker, cfg.Transports.MQTT.Topic))
	}

	if len(transports) == 0 {
		slog.Error("no transports enabled; enable at least one in config")
		os.Exit(1)
	}

	// Create the dispatcher.
	dispatcher := dispatch.New(services, synthesizer)

	// Start health check server. The media index is a readiness check:
	// the daemon serves traffic before the index finishes, but /readyz
	// only goes green once lookups can succeed.
	healthServer := health.New(cfg.Server.HealthPort,
		health.Check{Name: "media_index", Probe: index.Ready})
	go func() {
		if err := healthServer.ListenAndServe(ctx); err != nil {
			slog.Error("health server failed", "error", err)
		}
	}()

	// Start all transports.
	var wg sync.WaitGroup
	for _, t := range transports {
		wg.Add(1)
		go func(t transport.Transport) {
			defer wg.Done()
			slog.Info("starting transport", "name", t.Name())
			if err := t.Listen(ctx, dispatcher.Handle); err != nil {
				slog.Error("transport failed", "name", t.Name(), "error", err)
			}
		}(t)
	}

	// Mark as ready once all transports are started.
	healthServer.SetReady(true)
	slog.Info("usher ready",
		"transports", len(transports),
		"platform", cfg.Music.Platform,
		"health_port", cfg.Server.HealthPort)

	// Block until shutdown signal.
	<-ctx.Done()
	slog.Info("shutdown signal received, draining...")

	// Close all transports gracefully.
	for _, t := range transports {
		if err := t.Close(); err != nil {
			slog.Error("transport close error", "name", t.Name(), "error", err)
		}
	}

	wg.Wait()
	slog.Info("usher stopped")
}

// Package config handles loading and validating the usher configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for the usher daemon.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Transports TransportsConfig `mapstructure:"transports"`
	Music      MusicConfig      `mapstructure:"music"`
	TTS        TTSConfig        `mapstructure:"tts"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig holds the health check server settings.
type ServerConfig struct {
	HealthPort int `mapstructure:"health_port"`
}

// TransportsConfig holds the configuration for each transport layer.
type TransportsConfig struct {
	GRPC GRPCConfig `mapstructure:"grpc"`
	HTTP HTTPConfig `mapstructure:"http"`
	MQTT MQTTConfig `mapstructure:"mqtt"`
}

// GRPCConfig configures the gRPC transport.
type GRPCConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// HTTPConfig configures the HTTP/WebSocket transport.
type HTTPConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// MQTTConfig configures the MQTT transport.
type MQTTConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Broker  string `mapstructure:"broker"`
	Topic   string `mapstructure:"topic"`
}

// MusicConfig configures the local music service.
type MusicConfig struct {
	// Platform is the spoken platform name the grammar answers to, as
	// in "play desire by bob marley on <platform>".
	Platform string `mapstructure:"platform"`

	// Dir is the root of the artist/album/track music tree.
	Dir string `mapstructure:"dir"`

	// Volume is the initial output level, 0 to 11.
	Volume int `mapstructure:"volume"`
}

// TTSConfig selects and configures the text-to-speech backend.
type TTSConfig struct {
	Enabled bool        `mapstructure:"enabled"`
	Backend string      `mapstructure:"backend"` // "piper"
	Piper   PiperConfig `mapstructure:"piper"`
}

// PiperConfig holds Piper TTS settings (Wyoming protocol).
type PiperConfig struct {
	Endpoint string `mapstructure:"endpoint"` // Wyoming TCP endpoint (host:port)
	Voice    string `mapstructure:"voice"`    // Piper voice model name
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// Load reads the configuration from file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the standard
// search order applies: ./usher.yaml, ./configs/usher.yaml, /etc/usher/usher.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.health_port", 8081)
	v.SetDefault("transports.grpc.enabled", true)
	v.SetDefault("transports.grpc.port", 50051)
	v.SetDefault("transports.http.enabled", true)
	v.SetDefault("transports.http.port", 8080)
	v.SetDefault("transports.mqtt.enabled", false)
	v.SetDefault("transports.mqtt.broker", "tcp://localhost:1883")
	v.SetDefault("transports.mqtt.topic", "usher/utterance")
	v.SetDefault("music.platform", "Local")
	v.SetDefault("music.dir", "")
	v.SetDefault("music.volume", 5)
	v.SetDefault("tts.enabled", false)
	v.SetDefault("tts.backend", "piper")
	v.SetDefault("tts.piper.endpoint", "localhost:10200")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("usher")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/usher")
	}

	// Environment variables: USHER_MUSIC_DIR, USHER_TRANSPORTS_HTTP_PORT, etc.
	v.SetEnvPrefix("USHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional; env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Resolve env var references (e.g., "${USHER_MUSIC}") so the same
	// config file works across hosts with different mount points.
	cfg.Music.Dir = resolveEnvRef(cfg.Music.Dir)

	if cfg.Music.Dir == "" {
		return nil, fmt.Errorf("music.dir must be set")
	}

	return &cfg, nil
}

// resolveEnvRef replaces "${VAR_NAME}" patterns with the corresponding env var value.
func resolveEnvRef(val string) string {
	if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
		envKey := val[2 : len(val)-1]
		if envVal := os.Getenv(envKey); envVal != "" {
			return envVal
		}
	}
	return val
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

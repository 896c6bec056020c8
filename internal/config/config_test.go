package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "usher.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "music:\n  dir: /srv/music\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HealthPort)
	assert.True(t, cfg.Transports.HTTP.Enabled)
	assert.Equal(t, 8080, cfg.Transports.HTTP.Port)
	assert.True(t, cfg.Transports.GRPC.Enabled)
	assert.False(t, cfg.Transports.MQTT.Enabled)
	assert.Equal(t, "Local", cfg.Music.Platform)
	assert.Equal(t, "/srv/music", cfg.Music.Dir)
	assert.Equal(t, 5, cfg.Music.Volume)
	assert.False(t, cfg.TTS.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
music:
  dir: /mnt/tunes
  platform: Attic
  volume: 8
transports:
  http:
    port: 9090
  mqtt:
    enabled: true
    broker: tcp://broker:1883
tts:
  enabled: true
  piper:
    endpoint: piper:10200
    voice: en_GB-alba-medium
logging:
  level: debug
  format: text
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Attic", cfg.Music.Platform)
	assert.Equal(t, 8, cfg.Music.Volume)
	assert.Equal(t, 9090, cfg.Transports.HTTP.Port)
	assert.True(t, cfg.Transports.MQTT.Enabled)
	assert.Equal(t, "tcp://broker:1883", cfg.Transports.MQTT.Broker)
	assert.Equal(t, "usher/utterance", cfg.Transports.MQTT.Topic)
	assert.True(t, cfg.TTS.Enabled)
	assert.Equal(t, "en_GB-alba-medium", cfg.TTS.Piper.Voice)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRequiresMusicDir(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: info\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "music.dir")
}

func TestLoadResolvesEnvRefs(t *testing.T) {
	t.Setenv("USHER_TEST_MUSIC_ROOT", "/data/music")
	path := writeConfig(t, "music:\n  dir: ${USHER_TEST_MUSIC_ROOT}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/music", cfg.Music.Dir)
}

func TestResolveEnvRef(t *testing.T) {
	t.Setenv("USHER_TEST_REF", "resolved")

	assert.Equal(t, "resolved", resolveEnvRef("${USHER_TEST_REF}"))
	assert.Equal(t, "plain", resolveEnvRef("plain"))
	assert.Equal(t, "${USHER_TEST_UNSET}", resolveEnvRef("${USHER_TEST_UNSET}"))
}

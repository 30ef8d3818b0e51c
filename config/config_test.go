package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "knowledge-base", cfg.KB.Path)
	assert.False(t, cfg.KB.Watch.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.KB.Watch.GetDebounceDelay())
	assert.Empty(t, cfg.NATS.URL)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KB.Path = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.KB.Patterns = nil
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.KB.Watch.DebounceDelay = "soon"
	assert.Error(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aifr.yaml")
	data := `
knowledge_base:
  path: /srv/aifr/kb
  patterns:
    - "**/*.jsonld"
  watch:
    enabled: true
    debounce_delay: 2s
nats:
  url: nats://localhost:4222
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/aifr/kb", cfg.KB.Path)
	assert.Equal(t, []string{"**/*.jsonld"}, cfg.KB.Patterns)
	assert.True(t, cfg.KB.Watch.Enabled)
	assert.Equal(t, 2*time.Second, cfg.KB.Watch.GetDebounceDelay())
	assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	overlay := &Config{
		KB:   KBConfig{Path: "/custom/kb"},
		NATS: NATSConfig{URL: "nats://nats:4222"},
	}

	base.Merge(overlay)
	assert.Equal(t, "/custom/kb", base.KB.Path)
	assert.Equal(t, []string{"*.jsonld"}, base.KB.Patterns, "unset fields keep defaults")
	assert.Equal(t, "nats://nats:4222", base.NATS.URL)

	base.Merge(nil)
	assert.Equal(t, "/custom/kb", base.KB.Path)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recap.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
default_format = "markdown"

preset "org-report" {
  chain       = "orgs:repos:collaborators"
  format      = "html"
  description = true
}

preset "limits" {
  chain = "owners:ratelimit"
}
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.DefaultFormat)
	require.Len(t, cfg.Presets, 2)

	p, err := cfg.Preset("org-report")
	require.NoError(t, err)
	assert.Equal(t, "orgs:repos:collaborators", p.Chain)
	assert.Equal(t, "html", p.Format)
	assert.True(t, p.Description)

	_, err = cfg.Preset("nope")
	assert.ErrorContains(t, err, `no preset "nope"`)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	assert.Error(t, err)
}

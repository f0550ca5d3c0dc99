package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/oracle"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.User)
	assert.Equal(t, "other", cfg.PaymentMethod)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, "finance", cfg.Store.Dataset)
	assert.Equal(t, "transactions", cfg.Store.Table)
	assert.Equal(t, oracle.DefaultModel, cfg.Gemini.Model)
}

func TestLoadFromFile(t *testing.T) {
	content := `user: amanda
payment_method: debit
vocabulary_file: /etc/planilha/vocabulary.yaml
store:
  backend: bigquery
  project: my-project
  dataset: money
gemini:
  model: gemini-2.5-pro
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "amanda", cfg.User)
	assert.Equal(t, "debit", cfg.PaymentMethod)
	assert.Equal(t, "/etc/planilha/vocabulary.yaml", cfg.VocabularyFile)
	assert.Equal(t, "bigquery", cfg.Store.Backend)
	assert.Equal(t, "my-project", cfg.Store.Project)
	assert.Equal(t, "money", cfg.Store.Dataset)
	assert.Equal(t, "transactions", cfg.Store.Table, "defaults still apply to omitted keys")
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
}

func TestLoadBigQueryRequiresProject(t *testing.T) {
	content := `store:
  backend: bigquery
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

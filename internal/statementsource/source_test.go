package statementsource

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromStdin(t *testing.T) {
	stdin := strings.NewReader("26/12 40 Depósito\n")

	got, err := Load(context.Background(), "-", stdin)
	require.NoError(t, err)
	assert.Equal(t, "26/12 40 Depósito\n", got)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.txt")
	require.NoError(t, os.WriteFile(path, []byte("26/12 -5.7 BaitaSuper"), 0o644))

	got, err := Load(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, "26/12 -5.7 BaitaSuper", got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), nil)
	require.Error(t, err)
}

func TestSplitGCSURI(t *testing.T) {
	tests := []struct {
		uri     string
		bucket  string
		object  string
		wantErr bool
	}{
		{uri: "gs://bucket/statement.txt", bucket: "bucket", object: "statement.txt"},
		{uri: "gs://bucket/2025/12/statement.txt", bucket: "bucket", object: "2025/12/statement.txt"},
		{uri: "gs://bucket", wantErr: true},
		{uri: "gs://bucket/", wantErr: true},
		{uri: "gs:///object", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, object, err := splitGCSURI(tt.uri)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.object, object)
		})
	}
}

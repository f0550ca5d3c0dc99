// Package statementsource loads raw statement text for the import pipeline.
package statementsource

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
)

// Load reads statement text from src: "-" means stdin, a "gs://" URI is
// downloaded from Cloud Storage, anything else is a local file path.
func Load(ctx context.Context, src string, stdin io.Reader) (string, error) {
	switch {
	case src == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("Load: reading stdin: %w", err)
		}
		return string(data), nil
	case strings.HasPrefix(src, "gs://"):
		bucket, object, err := splitGCSURI(src)
		if err != nil {
			return "", err
		}
		data, err := downloadObject(ctx, bucket, object)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(src)
		if err != nil {
			return "", fmt.Errorf("Load: reading file: %w", err)
		}
		return string(data), nil
	}
}

// splitGCSURI splits "gs://bucket/path/to/object" into bucket and object.
func splitGCSURI(uri string) (bucket, object string, err error) {
	trimmed := strings.TrimPrefix(uri, "gs://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("splitGCSURI: invalid GCS URI %q", uri)
	}
	return parts[0], parts[1], nil
}

// downloadObject fetches the object bytes from Cloud Storage.
func downloadObject(ctx context.Context, bucket, object string) ([]byte, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("downloadObject: create storage client: %w", err)
	}
	defer client.Close()

	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("downloadObject: open object reader: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("downloadObject: read object: %w", err)
	}
	return data, nil
}

package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("schema loader: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema loader: read %s: %w", path, err)
	}
	return data, nil
}

package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

func loadFromFS(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("schema loader: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("schema loader: fs path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(filesystem, name)
	if err != nil {
		return nil, fmt.Errorf("schema loader: read %s: %w", name, err)
	}
	return data, nil
}

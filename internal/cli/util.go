package cli

import (
	"fmt"
	"path/filepath"
)

func absAll(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve path %s: %w", path, err)
		}
		out = append(out, abs)
	}
	return out, nil
}

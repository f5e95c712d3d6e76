package configsource

import (
	"fmt"
	"os"

	"github.com/zhulik/eagerbind/pkg/tree"
)

// ParseFile reads a JSON or YAML document. A missing file yields an error matching
// fs.ErrNotExist.
func ParseFile(path string) (*tree.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	obj, err := tree.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}

	return obj, nil
}

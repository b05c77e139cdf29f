package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidName is returned for cache names that cannot address a blob.
var ErrInvalidName = errors.New("invalid cache name")

// checkName rejects names that are empty or would escape the storage root.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

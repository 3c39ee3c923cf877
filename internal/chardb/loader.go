package chardb

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed data/characters.yaml
var bundledAsset []byte

// Loader is one strategy for obtaining the character database.
type Loader interface {
	// Name identifies the strategy in logs and errors.
	Name() string
	// Load returns the database, or an error if this tier is unavailable.
	Load() (*DB, error)
}

// Load tries each loader in order and returns the first database obtained,
// along with the name of the loader that produced it.
func Load(loaders ...Loader) (*DB, string, error) {
	var errs []error
	for _, l := range loaders {
		db, err := l.Load()
		if err == nil {
			return db, l.Name(), nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", l.Name(), err))
	}
	return nil, "", fmt.Errorf("all database loaders failed: %v", errs)
}

// DefaultLoaders returns the standard loader chain for a config
// directory: sqlite cache, user YAML override, bundled asset, builtin
// defaults. The builtin tier never fails.
func DefaultLoaders(configDir string) []Loader {
	return []Loader{
		&CacheLoader{Path: CachePath(configDir)},
		&FileLoader{Path: filepath.Join(configDir, "characters.yaml")},
		&AssetLoader{},
		&BuiltinLoader{},
	}
}

// FileLoader reads a user-supplied characters.yaml.
type FileLoader struct {
	Path string
}

func (l *FileLoader) Name() string { return "file:" + l.Path }

func (l *FileLoader) Load() (*DB, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("reading character file: %w", err)
	}
	return parseYAML(data)
}

// AssetLoader parses the bundled character database shipped with the
// binary.
type AssetLoader struct{}

func (l *AssetLoader) Name() string { return "bundled asset" }

func (l *AssetLoader) Load() (*DB, error) {
	return parseYAML(bundledAsset)
}

// BuiltinLoader returns the hardcoded minimal defaults. Last tier of the
// chain; it cannot fail.
type BuiltinLoader struct{}

func (l *BuiltinLoader) Name() string { return "builtin defaults" }

func (l *BuiltinLoader) Load() (*DB, error) {
	return builtinDB(), nil
}

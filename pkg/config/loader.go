package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Format is the structured-text syntax of a configuration file.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFor picks the format from a file name's extension.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatUnknown
	}
}

// Loader reads the first existing candidate file from a directory.
type Loader struct {
	fs         types.FS
	candidates []string
}

// NewLoader creates a loader trying candidates in order.
func NewLoader(fs types.FS, candidates []string) *Loader {
	return &Loader{fs: fs, candidates: candidates}
}

// Load finds, reads and parses the configuration in dir. It returns the path
// of the file that was used.
func (l *Loader) Load(dir string) (*Configuration, string, error) {
	logger := logging.GetLogger("config")

	path, err := l.find(dir)
	if err != nil {
		return nil, "", err
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, errors.ErrConfigLoad, "failed to read configuration %s", path).
			WithDetail("path", path)
	}

	cfg, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, "", errors.Wrapf(err, errors.ErrConfigParse, "invalid configuration %s", path).
			WithDetail("path", path)
	}

	logger.Debug().
		Str("path", path).
		Int("groups", len(cfg.Groups())).
		Int("files", cfg.Len()).
		Msg("Configuration loaded")

	return cfg, path, nil
}

func (l *Loader) find(dir string) (string, error) {
	for _, name := range l.candidates {
		path := filepath.Join(dir, name)
		info, err := l.fs.Stat(path)
		if err == nil {
			if info.IsDir() {
				return "", errors.Newf(errors.ErrConfigLoad, "configuration %s is a directory", path).
					WithDetail("path", path)
			}
			return path, nil
		}
		if !os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat configuration %s", path).
				WithDetail("path", path)
		}
	}

	return "", errors.Newf(errors.ErrConfigNotFound, "no configuration file found in %s (looked for %s)",
		dir, strings.Join(l.candidates, ", ")).
		WithDetail("dir", dir)
}

// Parse decodes data in the given format into a validated Configuration.
func Parse(data []byte, format Format) (*Configuration, error) {
	var (
		cfg *Configuration
		err error
	)

	switch format {
	case FormatJSON:
		cfg, err = parseJSON(data)
	case FormatYAML:
		cfg, err = parseYAML(data)
	case FormatTOML:
		cfg, err = parseTOML(data)
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported configuration format %s", format)
	}
	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			err = errors.Wrapf(err, errors.ErrConfigParse, "malformed %s", format)
		}
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Package settings loads dotlink's own build-time settings.
//
// Defaults are embedded in the binary. The environment may only override the
// log table: the configuration file names are fixed at build time.
package settings

import (
	"strings"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "DOTLINK_"

// Settings is the decoded settings tree.
type Settings struct {
	Config ConfigSettings `koanf:"config"`
	Output OutputSettings `koanf:"output"`
	Log    LogSettings    `koanf:"log"`
}

type ConfigSettings struct {
	Candidates []string `koanf:"candidates"`
}

type OutputSettings struct {
	Arrow string `koanf:"arrow"`
}

type LogSettings struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

// Load reads the embedded defaults and overlays DOTLINK_LOG_* variables.
func Load() (*Settings, error) {
	return load(defaultSettings)
}

func load(defaults []byte) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaults}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettings, "failed to load default settings")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettings, "failed to load settings from environment")
	}

	var s Settings
	if err := k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettings, "failed to decode settings")
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// envKey maps DOTLINK_LOG_LEVEL to log.level. Variables outside the log
// table map to "" and are dropped by the provider.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if !strings.HasPrefix(key, "log_") {
		return ""
	}
	return "log." + strings.TrimPrefix(key, "log_")
}

func (s *Settings) validate() error {
	if len(s.Config.Candidates) == 0 {
		return errors.New(errors.ErrSettings, "config.candidates must list at least one file name")
	}
	for _, name := range s.Config.Candidates {
		if strings.TrimSpace(name) == "" {
			return errors.New(errors.ErrSettings, "config.candidates contains an empty file name")
		}
	}
	if s.Output.Arrow == "" {
		return errors.New(errors.ErrSettings, "output.arrow must not be empty")
	}
	return nil
}

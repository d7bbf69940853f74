package eyeconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrConfigLoad wraps malformed configuration files. A missing file is not an
// error; the compiled defaults apply.
var ErrConfigLoad = errors.New("config load")

// base is the pre-merge starting point: screen and render defaults filled in,
// the [eye] table deliberately empty so Resolve can tell a persisted per-unit
// override apart from "nothing on disk".
func base() Config {
	return Config{Screen: Default().Screen, Render: Default().Render}
}

// Load reads a TOML configuration file over the compiled defaults. Tables
// absent from the file keep their default values; a missing file yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := base()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return base(), nil
		}
		return base(), fmt.Errorf("%w: %s: %v", ErrConfigLoad, path, err)
	}
	return cfg, nil
}

// LoadBytes parses TOML configuration data over the compiled defaults.
func LoadBytes(data []byte) (Config, error) {
	cfg := base()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return base(), fmt.Errorf("%w: %v", ErrConfigLoad, err)
	}
	return cfg, nil
}

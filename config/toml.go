package config

import (
	"github.com/BurntSushi/toml"
)

// loadToml decodes a TOML file over cfg. Keys that do not map onto the
// configuration are rejected.
func (cfg *Config) loadToml(path string) (err error) {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		err = ErrConfigKey(undecoded[0].String())
		return
	}

	return
}

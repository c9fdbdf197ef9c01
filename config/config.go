// Package config loads the run configuration of the virtual machine from
// TOML or Starlark files.
//
// A TOML configuration:
//
//	image = "count.bin"
//	max_steps = 100000
//	flag_policy = "sticky"
//
// The same in Starlark, where the VM defines (MEMORY_SIZE, CMD_HALT, ...)
// are predeclared:
//
//	image = "count.bin"
//	max_steps = MEMORY_SIZE * 16
//	flag_policy = "sticky"
package config

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/ezrec/regvm/cpu"
	"github.com/ezrec/regvm/emulator"
)

var log = commonlog.GetLogger("regvm.config")

// Config is the run configuration.
type Config struct {
	Image      string `toml:"image"`       // Program image file. Empty runs the reference program.
	MemorySize uint32 `toml:"memory_size"` // Memory size in bytes.
	MaxSteps   int    `toml:"max_steps"`   // Instruction limit, zero for none.
	FlagPolicy string `toml:"flag_policy"` // "sticky" or "clear".
	Verbose    bool   `toml:"verbose"`     // Instruction trace.
	Locale     string `toml:"locale"`      // Message language, empty for the system locale.
	Snapshot   string `toml:"snapshot"`    // CBOR snapshot output file.
}

// Default returns the default configuration.
func Default() (cfg *Config) {
	cfg = &Config{
		MemorySize: emulator.MEMORY_SIZE,
		FlagPolicy: cpu.FLAG_STICKY.String(),
	}

	return
}

// Load reads a configuration file over the defaults. The format is chosen
// by extension; defines are predeclared for Starlark files.
func Load(path string, defines iter.Seq2[string, string]) (cfg *Config, err error) {
	cfg = Default()

	defer func() {
		if err != nil {
			err = &ErrConfig{Path: path, Err: err}
		}
	}()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		err = cfg.loadToml(path)
	case ".star":
		err = cfg.loadStarlark(path, defines)
	default:
		err = ErrConfigFormat(ext)
	}
	if err != nil {
		return
	}

	err = cfg.Validate()
	if err != nil {
		return
	}

	log.Debugf("config: %v: %+v", path, *cfg)

	return
}

// Validate checks the configuration values.
func (cfg *Config) Validate() (err error) {
	if cfg.MemorySize == 0 {
		err = ErrConfigType{Key: "memory_size", Want: f("positive")}
		return
	}

	if cfg.MaxSteps < 0 {
		err = ErrConfigType{Key: "max_steps", Want: f("zero or positive")}
		return
	}

	_, err = cfg.Policy()
	return
}

// Policy returns the comparison flag policy.
func (cfg *Config) Policy() (policy cpu.CodeFlagPolicy, err error) {
	return cpu.ParseFlagPolicy(cfg.FlagPolicy)
}

// Apply configures an emulator.
func (cfg *Config) Apply(emu *emulator.Emulator) (err error) {
	policy, err := cfg.Policy()
	if err != nil {
		return
	}

	emu.Verbose = cfg.Verbose
	emu.MaxSteps = cfg.MaxSteps
	emu.Cpu.FlagPolicy = policy

	return
}

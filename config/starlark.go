package config

import (
	"iter"
	"math"
	"os"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// starlarkSetters maps the global names of a Starlark configuration onto
// the configuration fields.
var starlarkSetters = map[string]func(cfg *Config, key string, value starlark.Value) error{
	"image": func(cfg *Config, key string, value starlark.Value) (err error) {
		cfg.Image, err = starlarkString(key, value)
		return
	},
	"memory_size": func(cfg *Config, key string, value starlark.Value) (err error) {
		size, err := starlarkInt(key, value, 1, math.MaxUint32)
		cfg.MemorySize = uint32(size)
		return
	},
	"max_steps": func(cfg *Config, key string, value starlark.Value) (err error) {
		steps, err := starlarkInt(key, value, 0, math.MaxInt)
		cfg.MaxSteps = int(steps)
		return
	},
	"flag_policy": func(cfg *Config, key string, value starlark.Value) (err error) {
		cfg.FlagPolicy, err = starlarkString(key, value)
		return
	},
	"verbose": func(cfg *Config, key string, value starlark.Value) (err error) {
		b, ok := value.(starlark.Bool)
		if !ok {
			err = ErrConfigType{Key: key, Want: f("a bool")}
			return
		}
		cfg.Verbose = bool(b)
		return
	},
	"locale": func(cfg *Config, key string, value starlark.Value) (err error) {
		cfg.Locale, err = starlarkString(key, value)
		return
	},
	"snapshot": func(cfg *Config, key string, value starlark.Value) (err error) {
		cfg.Snapshot, err = starlarkString(key, value)
		return
	},
}

func starlarkString(key string, value starlark.Value) (str string, err error) {
	str, ok := starlark.AsString(value)
	if !ok {
		err = ErrConfigType{Key: key, Want: f("a string")}
	}
	return
}

func starlarkInt(key string, value starlark.Value, lo int64, hi int64) (i int64, err error) {
	st_int, ok := value.(starlark.Int)
	if ok {
		i, ok = st_int.Int64()
	}
	if !ok || i < lo || i > hi {
		err = ErrConfigType{Key: key, Want: f("an integer from %v to %v", lo, hi)}
	}
	return
}

// loadStarlark executes a Starlark file and copies its globals over cfg.
// Globals starting with '_' are private to the file.
func (cfg *Config) loadStarlark(path string, defines iter.Seq2[string, string]) (err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	pred := starlark.StringDict{}
	if defines != nil {
		for key, str := range defines {
			value, perr := strconv.ParseInt(str, 0, 64)
			if perr != nil {
				pred[key] = starlark.String(str)
				continue
			}
			pred[key] = starlark.MakeInt64(value)
		}
	}

	thread := &starlark.Thread{
		Name: path,
		Print: func(_ *starlark.Thread, msg string) {
			log.Infof("%v: %v", path, msg)
		},
	}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, path, src, pred)
	if err != nil {
		return
	}

	for _, key := range globals.Keys() {
		if strings.HasPrefix(key, "_") {
			continue
		}
		setter, ok := starlarkSetters[key]
		if !ok {
			err = ErrConfigKey(key)
			return
		}
		err = setter(cfg, key, globals[key])
		if err != nil {
			return
		}
	}

	return
}

package config

import (
	"github.com/ezrec/regvm/translate"
)

var f = translate.From

// ErrConfigKey is a configuration key that is not known.
type ErrConfigKey string

func (err ErrConfigKey) Error() string {
	return f("unknown configuration key '%v'", string(err))
}

// ErrConfigType is a configuration value of the wrong type.
type ErrConfigType struct {
	Key  string
	Want string
}

func (err ErrConfigType) Error() string {
	return f("configuration key '%v' must be %v", err.Key, err.Want)
}

// ErrConfigFormat is a configuration file extension that is not supported.
type ErrConfigFormat string

func (err ErrConfigFormat) Error() string {
	return f("'%v' is not a configuration format (.toml, .star)", string(err))
}

// ErrConfig locates an error in a configuration file.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

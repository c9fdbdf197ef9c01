package emulator

import (
	"errors"

	"github.com/ezrec/regvm/translate"
)

var f = translate.From

var (
	ErrStepLimit = errors.New(f("step limit reached"))
)

// ErrRuntime indicates the step at which a run stopped with an error.
type ErrRuntime struct {
	Step int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("step %v %v", err.Step, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrSnapshot is a snapshot that could not be decoded.
type ErrSnapshot struct {
	Err error
}

func (err *ErrSnapshot) Error() string {
	return f("snapshot: %v", err.Err)
}

func (err *ErrSnapshot) Unwrap() error {
	return err.Err
}

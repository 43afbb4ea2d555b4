package pipeline

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNoOutput    = errors.New(f("stage produced no output"))
	ErrPhasesEmpty = errors.New(f("no phases"))
	ErrProgramNil  = errors.New(f("no program"))
)

// ErrStage indicates the pipeline stage of a runtime error.
type ErrStage struct {
	Stage int
	Err   error
}

func (err *ErrStage) Error() string {
	return f("stage %d %v", err.Stage, err.Err)
}

func (err *ErrStage) Unwrap() error {
	return err.Err
}

// Package errors provides the structured frame errors used by the
// visualizations. A failed frame is reported and skipped; the next tick
// renders from scratch.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidFrequency is returned when a wave frequency is zero, negative or NaN.
	ErrInvalidFrequency = stderrors.New("invalid frequency")
	// ErrDegenerateGeometry is returned when the drawing surface has no area.
	ErrDegenerateGeometry = stderrors.New("degenerate geometry")
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindInvalidFrequency indicates a wave frequency <= 0.
	KindInvalidFrequency
	// KindDegenerateGeometry indicates a view width or height <= 0.
	KindDegenerateGeometry
	// KindRender indicates a backend drawing failure.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindInvalidFrequency:
		return "invalid_frequency"
	case KindDegenerateGeometry:
		return "degenerate_geometry"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a structured error raised while building or drawing a frame.
type Error struct {
	// Op is the operation that failed (e.g., "wave.Sample").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "game.Draw").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// InvalidFrequency returns an *Error wrapping ErrInvalidFrequency.
func InvalidFrequency(op string, frequency float64) error {
	return &Error{
		Op:   op,
		Kind: KindInvalidFrequency,
		Err:  fmt.Errorf("%w: %g", ErrInvalidFrequency, frequency),
	}
}

// DegenerateGeometry returns an *Error wrapping ErrDegenerateGeometry.
func DegenerateGeometry(op string, width, height float64) error {
	return &Error{
		Op:   op,
		Kind: KindDegenerateGeometry,
		Err:  fmt.Errorf("%w: %gx%g", ErrDegenerateGeometry, width, height),
	}
}

// Wrap attaches an operation name to err. Errors that are already *Error
// are returned unchanged.
func Wrap(op string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return err
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

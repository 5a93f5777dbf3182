package errors

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogHandler is a Handler that writes to a zerolog logger.
type LogHandler struct {
	// Logger overrides the global zerolog logger when non-nil.
	Logger *zerolog.Logger
	// Verbose adds stack traces to panic reports.
	Verbose bool
}

func (h *LogHandler) logger() *zerolog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return &log.Logger
}

// HandleError logs a frame error. Degenerate geometry is expected while a
// window is being resized and is logged at debug level.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	ev := h.logger().Warn()
	if err.Kind == KindDegenerateGeometry {
		ev = h.logger().Debug()
	}
	ev.Err(err.Err).
		Str("op", err.Op).
		Stringer("kind", err.Kind).
		Msg("frame dropped")
}

// HandlePanic logs a recovered panic.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().
		Str("op", err.Op).
		Interface("value", err.Value)
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("panic recovered")
}

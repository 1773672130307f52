package errmsg

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avreline/boundary/pkg/validate"
)

// Tracker receives validation failures for telemetry. Implementations must
// be fire-and-forget: a Track call is not allowed to block the validation
// path, and a panicking tracker is recovered so it never masks the original
// failure.
type Tracker interface {
	Track(ctx context.Context, verr *validate.Error)
}

// Notifier routes a formatted message toward a user-visible channel (toast,
// banner, flash). Same fire-and-forget rules as Tracker.
type Notifier interface {
	Notify(ctx context.Context, msg Formatted)
}

// Handler converts errors into user-safe messages while logging the full
// technical detail. The logger is injected rather than ambient so tests can
// assert on emitted records. The zero value is not usable; use NewHandler.
type Handler struct {
	log      *slog.Logger
	tracker  Tracker
	notifier Notifier
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the structured logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithTracker attaches a telemetry sink for validation failures.
func WithTracker(t Tracker) Option {
	return func(h *Handler) { h.tracker = t }
}

// WithNotifier attaches a user-visible message channel.
func WithNotifier(n Notifier) Option {
	return func(h *Handler) { h.notifier = n }
}

// NewHandler creates a Handler. Without options it logs through
// slog.Default and has no tracker or notifier.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{log: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleValidation logs the failure with full technical detail tagged by
// scope and a generated event id, reports it to the tracker, conditionally
// routes the formatted message to the notifier, and returns the formatted
// message either way.
func (h *Handler) HandleValidation(ctx context.Context, verr *validate.Error, scope string, notify bool) Formatted {
	msg := Format(verr)

	h.log.ErrorContext(ctx, "validation failed",
		slog.String("scope", scope),
		slog.String("event_id", uuid.NewString()),
		slog.String("kind", string(verr.Kind)),
		slog.String("field", verr.Field),
		slog.String("error", verr.Message),
		slog.Any("received", verr.Received))

	h.track(ctx, verr)
	if notify {
		h.notify(ctx, msg)
	}
	return msg
}

// HandleAny handles an arbitrary error. Validation errors are detected with
// errors.As so the discrimination survives wrapping; everything else gets a
// fixed generic message with its own text as technical detail.
func (h *Handler) HandleAny(ctx context.Context, err error, scope string) Formatted {
	if verr, ok := validate.AsValidationError(err); ok {
		return h.HandleValidation(ctx, verr, scope, true)
	}

	h.log.ErrorContext(ctx, "unexpected error",
		slog.String("scope", scope),
		slog.String("event_id", uuid.NewString()),
		slog.Any("error", err))

	return Formatted{
		Message:          msgGeneric,
		Severity:         SeverityError,
		TechnicalDetails: err.Error(),
	}
}

func (h *Handler) track(ctx context.Context, verr *validate.Error) {
	if h.tracker == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			h.log.WarnContext(ctx, "telemetry tracker panicked", slog.Any("panic", r))
		}
	}()
	h.tracker.Track(ctx, verr)
}

func (h *Handler) notify(ctx context.Context, msg Formatted) {
	if h.notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			h.log.WarnContext(ctx, "notifier panicked", slog.Any("panic", r))
		}
	}()
	h.notifier.Notify(ctx, msg)
}

package validate

import "log/slog"

// Validator validates raw API payloads against the known entity shapes.
// Strict methods return the normalized entity or a tagged *Error; Safe
// methods never fail and degrade to nil or an empty slice, logging what they
// dropped. The zero value is not usable; use New.
//
// All methods are stateless and safe for concurrent use.
type Validator struct {
	log *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used by the safe and default-substituting
// paths. Nil loggers are ignored for safety.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// New creates a Validator. Without options it logs through slog.Default.
func New(opts ...Option) *Validator {
	v := &Validator{log: slog.Default()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// UserTierOrDefault validates a raw tier value, substituting the documented
// default when the data is missing or unusable. The substitution is logged
// at warning level so degraded upstream data stays visible.
func (v *Validator) UserTierOrDefault(raw any) UserTier {
	tier, err := UserTierValue(raw)
	if err != nil {
		v.log.Warn("substituting default user tier",
			slog.Any("received", raw),
			slog.String("default", string(DefaultUserTier)))
		return DefaultUserTier
	}
	return tier
}

// UserStatusOrDefault validates a raw account status, substituting the
// documented default when the data is missing or unusable.
func (v *Validator) UserStatusOrDefault(raw any) UserStatus {
	status, err := UserStatusValue(raw)
	if err != nil {
		v.log.Warn("substituting default user status",
			slog.Any("received", raw),
			slog.String("default", string(DefaultUserStatus)))
		return DefaultUserStatus
	}
	return status
}

// PostStatusOrDefault validates a raw publishing status, substituting the
// documented default when the data is missing or unusable.
func (v *Validator) PostStatusOrDefault(raw any) PostStatus {
	status, err := PostStatusValue(raw)
	if err != nil {
		v.log.Warn("substituting default post status",
			slog.Any("received", raw),
			slog.String("default", string(DefaultPostStatus)))
		return DefaultPostStatus
	}
	return status
}

func (v *Validator) logInvalid(entity string, err error) {
	if verr, ok := AsValidationError(err); ok {
		v.log.Error("invalid "+entity+" payload",
			slog.String("kind", string(verr.Kind)),
			slog.String("field", verr.Field),
			slog.String("error", verr.Message),
			slog.Any("received", verr.Received))
		return
	}
	v.log.Error("invalid "+entity+" payload", slog.Any("error", err))
}

// strictBatch validates every element of a raw array payload, aborting on
// the first failure. The failing index is logged before the error is
// returned so batch aborts can be traced to the offending element.
func (v *Validator) strictBatch(entity string, data any, validate func(any) (map[string]any, error)) ([]map[string]any, error) {
	items, ok := data.([]any)
	if !ok {
		return nil, newArrayError(entity, data)
	}
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		validated, err := validate(item)
		if err != nil {
			v.log.Error("aborting "+entity+" batch",
				slog.Int("index", i),
				slog.Any("error", err))
			return nil, err
		}
		out = append(out, validated)
	}
	return out, nil
}

// safeBatch validates every element of a raw array payload, skipping invalid
// elements with a warning. A non-array payload degrades to an empty slice.
// Never fails; len(result) <= len(input) and order is preserved.
func (v *Validator) safeBatch(entity string, data any, validate func(any) map[string]any) []map[string]any {
	items, ok := data.([]any)
	if !ok {
		v.log.Error(entity+" payload is not an array", slog.Any("received", data))
		return []map[string]any{}
	}
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		validated := validate(item)
		if validated == nil {
			v.log.Warn("skipping invalid "+entity+" element", slog.Int("index", i))
			continue
		}
		out = append(out, validated)
	}
	return out
}

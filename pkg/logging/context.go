package logging

import (
	"context"
	"log/slog"
)

type ctxKey int

const (
	actionUIDKey ctxKey = iota
	ruleUIDKey
	requestIDKey
)

// WithActionUID returns a context with the action type UID set.
func WithActionUID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, actionUIDKey, uid)
}

// WithRuleUID returns a context with the invoking rule UID set.
func WithRuleUID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, ruleUIDKey, uid)
}

// WithRequestID returns a context with the request ID set.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// ActionUID extracts the action type UID from the context, or "" if absent.
func ActionUID(ctx context.Context) string {
	v, _ := ctx.Value(actionUIDKey).(string)
	return v
}

// RuleUID extracts the rule UID from the context, or "" if absent.
func RuleUID(ctx context.Context) string {
	v, _ := ctx.Value(ruleUIDKey).(string)
	return v
}

// RequestID extracts the request ID from the context, or "" if absent.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// WithIDs sets all three correlation IDs on the context at once.
func WithIDs(ctx context.Context, actionUID, ruleUID, requestID string) context.Context {
	ctx = WithActionUID(ctx, actionUID)
	ctx = WithRuleUID(ctx, ruleUID)
	ctx = WithRequestID(ctx, requestID)
	return ctx
}

// LogWith returns a logger enriched with correlation IDs from the context.
// Only non-empty values are added as attributes.
func LogWith(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if uid := ActionUID(ctx); uid != "" {
		logger = logger.With(slog.String("action_uid", uid))
	}
	if uid := RuleUID(ctx); uid != "" {
		logger = logger.With(slog.String("rule_uid", uid))
	}
	if id := RequestID(ctx); id != "" {
		logger = logger.With(slog.String("request_id", id))
	}
	return logger
}

// CorrelationHandler wraps an slog.Handler, automatically injecting
// correlation IDs from the context into every log record.
// Use with slog.New(NewCorrelationHandler(inner)) so callers can use
// logger.InfoContext(ctx, ...) and IDs appear automatically.
type CorrelationHandler struct {
	inner slog.Handler
}

// NewCorrelationHandler wraps the given handler with automatic correlation ID injection.
func NewCorrelationHandler(inner slog.Handler) *CorrelationHandler {
	return &CorrelationHandler{inner: inner}
}

func (h *CorrelationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *CorrelationHandler) Handle(ctx context.Context, r slog.Record) error {
	if v := ActionUID(ctx); v != "" {
		r.AddAttrs(slog.String("action_uid", v))
	}
	if v := RuleUID(ctx); v != "" {
		r.AddAttrs(slog.String("rule_uid", v))
	}
	if v := RequestID(ctx); v != "" {
		r.AddAttrs(slog.String("request_id", v))
	}
	return h.inner.Handle(ctx, r)
}

func (h *CorrelationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CorrelationHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *CorrelationHandler) WithGroup(name string) slog.Handler {
	return &CorrelationHandler{inner: h.inner.WithGroup(name)}
}

// Package coerce converts loosely-typed wire arguments into the native
// values an action's declared input types require.
//
// Wire values are what a JSON decoder produces: nil, bool, float64, string,
// or anything else passed through untouched. The engine never constructs
// wire values, it only inspects and converts them.
package coerce

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/argonathq/actionargs/pkg/argtype"
	"github.com/argonathq/actionargs/pkg/logging"
	"github.com/argonathq/actionargs/pkg/schema"
)

// Coercer converts raw wire values into typed action arguments. It is
// stateless apart from the diagnostic logger and safe for concurrent use.
type Coercer struct {
	logger *slog.Logger
}

// New creates a Coercer. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Coercer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coercer{logger: logger}
}

// One converts a single raw argument into the native value required by the
// input's declared type. A nil raw value yields (nil, nil): the argument is
// absent and the caller must omit it. A (declared type, raw kind) pairing
// with no conversion rule passes the raw value through unchanged.
func (c *Coercer) One(input schema.Input, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	tag := argtype.Classify(input.Type)
	switch v := raw.(type) {
	case float64:
		return fromNumber(tag, v), nil
	case string:
		return fromString(input, tag, v)
	}
	return raw, nil
}

// All maps a caller-supplied argument set onto the action's declared inputs.
// Best effort: arguments that are absent, null, or whose coercion fails are
// omitted from the result (failures are logged, never returned), and
// arguments not declared by the action are dropped.
func (c *Coercer) All(ctx context.Context, actionUID string, inputs []schema.Input, args map[string]any) map[string]any {
	if actionUID != "" {
		ctx = logging.WithActionUID(ctx, actionUID)
	}
	logger := logging.LogWith(ctx, c.logger)

	out := make(map[string]any, len(inputs))
	for _, input := range inputs {
		raw, ok := args[input.Name]
		if !ok {
			continue
		}
		v, err := c.One(input, raw)
		if err != nil {
			logger.Warn("converting input argument failed, argument ignored",
				slog.String("input", input.Name),
				slog.Any("value", raw),
				slog.String("declared_type", input.Type),
				slog.String("error", err.Error()))
			continue
		}
		if v == nil {
			continue
		}
		out[input.Name] = v
	}
	return out
}

// ForAction is the action-level entry point: it coerces the caller-supplied
// arguments against the action's declared input signature.
func (c *Coercer) ForAction(ctx context.Context, action schema.ActionType, args map[string]any) map[string]any {
	return c.All(ctx, action.UID, action.Inputs, args)
}

// fromNumber narrows a wire number (float64 after JSON decoding, even when
// the caller wrote an integer literal) to the declared numeric kind.
// Integral targets truncate toward zero and saturate at the target width.
func fromNumber(tag argtype.Tag, v float64) any {
	switch tag {
	case argtype.TagByte:
		return int8(clampInt(v, math.MinInt8, math.MaxInt8))
	case argtype.TagShort:
		return int16(clampInt(v, math.MinInt16, math.MaxInt16))
	case argtype.TagInt:
		return int32(clampInt(v, math.MinInt32, math.MaxInt32))
	case argtype.TagLong:
		return clampInt(v, math.MinInt64, math.MaxInt64)
	case argtype.TagFloat:
		return float32(v)
	case argtype.TagDecimal:
		return decimal.NewFromFloat(v)
	case argtype.TagQuantity:
		return argtype.Quantity{Value: decimal.NewFromFloat(v)}
	}
	return v
}

// clampInt truncates a wire float toward zero, saturating at the target
// width's bounds. Out-of-range conversions are implementation-defined in Go,
// so they are pinned here; NaN maps to zero.
func clampInt(v float64, lo, hi int64) int64 {
	if math.IsNaN(v) {
		return 0
	}
	if v >= float64(hi) {
		return hi
	}
	if v <= float64(lo) {
		return lo
	}
	return int64(v)
}

// fromString parses a wire string per the declared type's grammar. Declared
// types without a string grammar (String itself, unknown identifiers) keep
// the string as is.
func fromString(input schema.Input, tag argtype.Tag, v string) (any, error) {
	switch tag {
	case argtype.TagBool:
		if strings.EqualFold(v, "true") {
			return true, nil
		}
		if strings.EqualFold(v, "false") {
			return false, nil
		}
		return nil, invalidLiteral(input, v, nil)
	case argtype.TagByte:
		n, err := strconv.ParseInt(v, 10, 8)
		if err != nil {
			return nil, invalidLiteral(input, v, err)
		}
		return int8(n), nil
	case argtype.TagShort:
		n, err := strconv.ParseInt(v, 10, 16)
		if err != nil {
			return nil, invalidLiteral(input, v, err)
		}
		return int16(n), nil
	case argtype.TagInt:
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return nil, invalidLiteral(input, v, err)
		}
		return int32(n), nil
	case argtype.TagLong:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, invalidLiteral(input, v, err)
		}
		return n, nil
	case argtype.TagFloat:
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return nil, invalidLiteral(input, v, err)
		}
		return float32(f), nil
	case argtype.TagDouble:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, invalidLiteral(input, v, err)
		}
		return f, nil
	case argtype.TagDecimal:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, invalidLiteral(input, v, err)
		}
		return d, nil
	case argtype.TagDate:
		// Accepted format is 2007-12-03.
		d, err := civil.ParseDate(v)
		if err != nil {
			return nil, invalidLiteral(input, v, err)
		}
		return d, nil
	case argtype.TagTime:
		// Accepted format is 10:15:30.
		t, err := civil.ParseTime(v)
		if err != nil {
			return nil, invalidLiteral(input, v, err)
		}
		return t, nil
	case argtype.TagDateTime:
		// Accepted format is 2007-12-03T10:15:30.
		dt, err := civil.ParseDateTime(v)
		if err != nil {
			return nil, invalidLiteral(input, v, err)
		}
		return dt, nil
	case argtype.TagZonedDateTime:
		// Accepted format is 2007-12-03T10:15:30+01:00[Europe/Paris].
		t, err := argtype.ParseZoned(v)
		if err != nil {
			return nil, invalidLiteral(input, v, err)
		}
		return t, nil
	case argtype.TagQuantity:
		q, err := argtype.ParseQuantity(v)
		if err != nil {
			return nil, invalidLiteral(input, v, err)
		}
		return q, nil
	}
	return v, nil
}

func invalidLiteral(input schema.Input, raw any, cause error) error {
	return schema.NewErrorf(schema.ErrCodeInvalidLiteral,
		"cannot convert %v into %s", raw, input.Type).
		WithInput(input.Name).
		WithCause(cause)
}

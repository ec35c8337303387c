package describe

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/argonathq/actionargs/pkg/schema"
)

// JSONSchema renders a derived parameter list as a JSON Schema
// (draft 2020-12) object document, for configuration tooling that consumes
// schemas rather than parameter descriptors.
func JSONSchema(title string, params []schema.Parameter) ([]byte, error) {
	properties := make(map[string]any, len(params))
	required := make([]string, 0, len(params))

	for _, p := range params {
		prop := map[string]any{"type": schemaType(p.Type)}
		if p.Label != "" {
			prop["title"] = p.Label
		}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if format := schemaFormat(p.Context); format != "" {
			prop["format"] = format
		}
		if p.Default != "" {
			if def, ok := schemaDefault(p.Type, p.Default); ok {
				prop["default"] = def
			}
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	doc := map[string]any{
		"$schema":    "https://json-schema.org/draft/2020-12/schema",
		"type":       "object",
		"properties": properties,
	}
	if title != "" {
		doc["title"] = title
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return json.Marshal(doc)
}

func schemaType(t schema.ParameterType) string {
	switch t {
	case schema.ParameterBoolean:
		return "boolean"
	case schema.ParameterInteger:
		return "integer"
	case schema.ParameterDecimal:
		return "number"
	}
	return "string"
}

func schemaFormat(context string) string {
	switch context {
	case schema.ContextDate:
		return "date"
	case schema.ContextTime:
		return "time"
	case schema.ContextDateTime:
		return "date-time"
	}
	return ""
}

// schemaDefault converts the textual default into the JSON type matching the
// parameter category, so the rendered default validates against the
// property's own type. Unparseable defaults are dropped.
func schemaDefault(t schema.ParameterType, text string) (any, bool) {
	switch t {
	case schema.ParameterBoolean:
		b, err := strconv.ParseBool(text)
		return b, err == nil
	case schema.ParameterInteger:
		n, err := strconv.ParseInt(text, 10, 64)
		return n, err == nil
	case schema.ParameterDecimal:
		f, err := strconv.ParseFloat(text, 64)
		return f, err == nil
	}
	return text, true
}

// Validator checks raw argument maps against rendered parameter schemas
// before coercion. Compiled schemas are cached; safe for concurrent use.
type Validator struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

// NewValidator creates an empty Validator.
func NewValidator() *Validator {
	return &Validator{cache: make(map[string]*jsonschema.Schema)}
}

// ValidateArguments validates a raw argument map against a schema previously
// produced by JSONSchema. It reports violations without mutating or coercing
// the arguments; an empty schema means no validation.
func (v *Validator) ValidateArguments(args map[string]any, schemaBytes []byte) error {
	if args == nil {
		return schema.NewError(schema.ErrCodeValidation, "arguments map is nil")
	}
	if len(schemaBytes) == 0 {
		return nil
	}

	compiled, err := v.getOrCompile(schemaBytes)
	if err != nil {
		return schema.NewError(schema.ErrCodeValidation, "invalid parameter schema").WithCause(err)
	}

	// Convert arguments to a JSON-compatible value (json.Number for numbers).
	doc, err := toJSONValue(args)
	if err != nil {
		return schema.NewError(schema.ErrCodeValidation, "failed to serialize arguments").WithCause(err)
	}

	if err := compiled.Validate(doc); err != nil {
		return toArgError(err)
	}
	return nil
}

// getOrCompile returns a cached compiled schema or compiles and caches a new one.
func (v *Validator) getOrCompile(schemaBytes []byte) (*jsonschema.Schema, error) {
	key := string(schemaBytes)

	v.mu.RLock()
	if cached, ok := v.cache[key]; ok {
		v.mu.RUnlock()
		return cached, nil
	}
	v.mu.RUnlock()

	v.mu.Lock()
	defer v.mu.Unlock()

	// Double-check after acquiring write lock.
	if cached, ok := v.cache[key]; ok {
		return cached, nil
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(key))
	if err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	// Each rendered schema gets a unique URL to avoid collisions in the compiler.
	url := fmt.Sprintf("actionargs://parameter-schema/%d", len(v.cache))

	c := jsonschema.NewCompiler()
	c.AssertFormat()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	v.cache[key] = compiled
	return compiled, nil
}

// toJSONValue round-trips a Go value through JSON encoding/decoding so that
// numeric values become json.Number (required by the jsonschema library).
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(strings.NewReader(string(b)))
}

// toArgError converts a jsonschema.ValidationError into an ArgError with
// one message per violated constraint.
func toArgError(err error) *schema.ArgError {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return schema.NewError(schema.ErrCodeValidation, err.Error())
	}

	violations := collectViolations(verr)
	if len(violations) == 0 {
		return schema.NewError(schema.ErrCodeValidation, verr.Error())
	}

	if len(violations) == 1 {
		return schema.NewError(schema.ErrCodeValidation, violations[0]).
			WithDetails(map[string]any{"violations": violations})
	}

	msg := fmt.Sprintf("validation failed with %d errors", len(violations))
	return schema.NewError(schema.ErrCodeValidation, msg).
		WithDetails(map[string]any{"violations": violations})
}

// collectViolations walks a ValidationError tree and collects leaf error
// messages with their instance locations.
func collectViolations(verr *jsonschema.ValidationError) []string {
	if len(verr.Causes) == 0 {
		loc := "/"
		if len(verr.InstanceLocation) > 0 {
			loc = "/" + strings.Join(verr.InstanceLocation, "/")
		}
		return []string{fmt.Sprintf("%s: %s", loc, verr.Error())}
	}

	var violations []string
	for _, cause := range verr.Causes {
		violations = append(violations, collectViolations(cause)...)
	}
	return violations
}

// Package describe derives abstract, UI-facing parameter descriptors from
// an action's declared input signature, and can render a derived signature
// as a JSON Schema document for configuration tooling.
package describe

import (
	"errors"

	"github.com/argonathq/actionargs/pkg/argtype"
	"github.com/argonathq/actionargs/pkg/schema"
)

// One derives the parameter descriptor for a single input. It returns an
// ErrCodeUnsupportedType error when the input's declared type has no entry
// in the descriptor table.
//
// The derived parameter is required when the type is intrinsically required
// or the input was authored as required. The default is the authored default
// when non-empty, otherwise the type's intrinsic default when it has one.
func One(input schema.Input) (*schema.Parameter, error) {
	info, ok := argtype.Lookup(input.Type)
	if !ok {
		return nil, schema.NewErrorf(schema.ErrCodeUnsupportedType,
			"declared type %s has no parameter representation", input.Type).
			WithInput(input.Name)
	}

	p := &schema.Parameter{
		Name:        input.Name,
		Type:        info.Category,
		Label:       input.Label,
		Description: input.Description,
		Required:    info.Required || input.Required,
		Context:     info.Context,
	}
	switch {
	case input.DefaultValue != "":
		p.Default = input.DefaultValue
	case info.Default != "":
		p.Default = info.Default
	}
	return p, nil
}

// ForAction derives the full parameter list for an action's input signature.
// The same all-or-nothing contract as Batch applies.
func ForAction(action schema.ActionType) ([]schema.Parameter, error) {
	params, err := Batch(action.Inputs)
	if err != nil {
		var argErr *schema.ArgError
		if errors.As(err, &argErr) {
			return nil, argErr.WithAction(action.UID)
		}
		return nil, err
	}
	return params, nil
}

// ActionSchema derives an action's parameters and renders them as a JSON
// Schema document in one step. The action label, when present, becomes the
// schema title.
func ActionSchema(action schema.ActionType) ([]byte, error) {
	params, err := ForAction(action)
	if err != nil {
		return nil, err
	}
	title := action.Label
	if title == "" {
		title = action.UID
	}
	return JSONSchema(title, params)
}

// Batch derives descriptors for a whole input signature, in order.
// All or nothing: a single unsupported input makes the entire signature
// unrepresentable, so the caller never sees a partial parameter list.
// An empty signature yields an empty, non-nil slice.
func Batch(inputs []schema.Input) ([]schema.Parameter, error) {
	params := make([]schema.Parameter, 0, len(inputs))
	for _, input := range inputs {
		p, err := One(input)
		if err != nil {
			return nil, err
		}
		params = append(params, *p)
	}
	return params, nil
}

package schema

// ParameterType enumerates the UI-facing categories a derived parameter
// can have.
type ParameterType string

const (
	ParameterBoolean ParameterType = "boolean"
	ParameterInteger ParameterType = "integer"
	ParameterDecimal ParameterType = "decimal"
	ParameterText    ParameterType = "text"
)

// Context hints for text parameters backed by temporal types.
const (
	ContextDate     = "date"
	ContextTime     = "time"
	ContextDateTime = "datetime"
)

// Parameter is the abstract, UI-facing description of one action input,
// consumable by generic configuration tooling.
type Parameter struct {
	Name        string        `json:"name"`
	Type        ParameterType `json:"type"`
	Label       string        `json:"label,omitempty"`
	Description string        `json:"description,omitempty"`
	Required    bool          `json:"required"`
	Context     string        `json:"context,omitempty"`
	Default     string        `json:"default,omitempty"`
}

package schema

// Input describes one formal parameter of an action: its name, its declared
// type identifier and the authoring metadata attached to it.
type Input struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Label        string `json:"label,omitempty"`
	Description  string `json:"description,omitempty"`
	Required     bool   `json:"required,omitempty"`
	DefaultValue string `json:"default_value,omitempty"`
}

// ActionType is the action metadata consumed from the invocation
// orchestrator: a unique action identifier plus the ordered input signature.
// The orchestrator owns registration and handler lifecycle; this module only
// reads the signature.
type ActionType struct {
	UID         string  `json:"uid"`
	Label       string  `json:"label,omitempty"`
	Description string  `json:"description,omitempty"`
	Inputs      []Input `json:"inputs"`
}

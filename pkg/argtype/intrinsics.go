package argtype

import "github.com/argonathq/actionargs/pkg/schema"

// Info is the descriptor-table row for a supported declared type: the
// UI category plus the intrinsic properties the type itself contributes to
// a derived parameter.
type Info struct {
	Tag      Tag
	Category schema.ParameterType
	Context  string
	Default  string
	Required bool
}

// Lookup returns the descriptor row for a declared-type identifier.
// ok is false when the identifier has no UI representation: unknown
// identifiers, but also Decimal, which has a coercion rule yet no entry in
// the descriptor table.
func Lookup(declared string) (Info, bool) {
	e, ok := typeTable[declared]
	if !ok {
		return Info{Tag: TagUnsupported}, false
	}

	info := Info{Tag: e.tag}
	switch e.tag {
	case TagBool:
		info.Category = schema.ParameterBoolean
		if e.primitive {
			info.Default = "false"
			info.Required = true
		}
	case TagByte, TagShort, TagInt, TagLong:
		info.Category = schema.ParameterInteger
		if e.primitive {
			info.Default = "0"
			info.Required = true
		}
	case TagFloat, TagDouble:
		info.Category = schema.ParameterDecimal
		if e.primitive {
			info.Default = "0"
			info.Required = true
		}
	case TagString, TagQuantity:
		info.Category = schema.ParameterText
	case TagDate:
		info.Category = schema.ParameterText
		info.Context = schema.ContextDate
	case TagTime:
		info.Category = schema.ParameterText
		info.Context = schema.ContextTime
	case TagDateTime, TagZonedDateTime:
		info.Category = schema.ParameterText
		info.Context = schema.ContextDateTime
	default:
		return Info{Tag: e.tag}, false
	}
	return info, true
}

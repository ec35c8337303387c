// Package argtype defines the closed set of declared input types understood
// by the action input bridge, and the static descriptor table that drives
// both value coercion and parameter derivation.
package argtype

// Tag identifies the value kind a declared input type resolves to.
type Tag int

const (
	TagUnsupported Tag = iota
	TagBool
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagDecimal
	TagString
	TagDate
	TagTime
	TagDateTime
	TagZonedDateTime
	TagQuantity
)

var tagNames = map[Tag]string{
	TagUnsupported:   "Unsupported",
	TagBool:          "Bool",
	TagByte:          "Byte",
	TagShort:         "Short",
	TagInt:           "Int",
	TagLong:          "Long",
	TagFloat:         "Float",
	TagDouble:        "Double",
	TagDecimal:       "Decimal",
	TagString:        "String",
	TagDate:          "Date",
	TagTime:          "Time",
	TagDateTime:      "DateTime",
	TagZonedDateTime: "ZonedDateTime",
	TagQuantity:      "Quantity",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "Unsupported"
}

// entry is one row of the declared-type table. Primitive (unboxed)
// identifiers are distinct from their boxed counterparts because a primitive
// slot cannot represent absence: it carries an intrinsic default and is
// intrinsically required. Coercion does not distinguish the two.
type entry struct {
	tag       Tag
	primitive bool
}

var typeTable = map[string]entry{
	"boolean": {TagBool, true},
	"byte":    {TagByte, true},
	"short":   {TagShort, true},
	"int":     {TagInt, true},
	"long":    {TagLong, true},
	"float":   {TagFloat, true},
	"double":  {TagDouble, true},

	"Boolean": {TagBool, false},
	"Byte":    {TagByte, false},
	"Short":   {TagShort, false},
	"Integer": {TagInt, false},
	"Long":    {TagLong, false},
	"Float":   {TagFloat, false},
	"Double":  {TagDouble, false},

	"String":        {TagString, false},
	"Decimal":       {TagDecimal, false},
	"LocalDate":     {TagDate, false},
	"LocalTime":     {TagTime, false},
	"LocalDateTime": {TagDateTime, false},
	"ZonedDateTime": {TagZonedDateTime, false},
	"Quantity":      {TagQuantity, false},
}

// Classify maps a declared-type identifier to its Tag. It is total and pure:
// unknown identifiers yield TagUnsupported.
func Classify(declared string) Tag {
	if e, ok := typeTable[declared]; ok {
		return e.tag
	}
	return TagUnsupported
}

package argtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argonathq/actionargs/pkg/schema"
)

func TestClassify_AllIdentifiers(t *testing.T) {
	cases := map[string]Tag{
		"boolean":       TagBool,
		"byte":          TagByte,
		"short":         TagShort,
		"int":           TagInt,
		"long":          TagLong,
		"float":         TagFloat,
		"double":        TagDouble,
		"Boolean":       TagBool,
		"Byte":          TagByte,
		"Short":         TagShort,
		"Integer":       TagInt,
		"Long":          TagLong,
		"Float":         TagFloat,
		"Double":        TagDouble,
		"String":        TagString,
		"Decimal":       TagDecimal,
		"LocalDate":     TagDate,
		"LocalTime":     TagTime,
		"LocalDateTime": TagDateTime,
		"ZonedDateTime": TagZonedDateTime,
		"Quantity":      TagQuantity,
	}
	for declared, want := range cases {
		assert.Equal(t, want, Classify(declared), "identifier %s", declared)
	}
}

func TestClassify_UnknownIsUnsupported(t *testing.T) {
	assert.Equal(t, TagUnsupported, Classify("Color"))
	assert.Equal(t, TagUnsupported, Classify(""))
	assert.Equal(t, TagUnsupported, Classify("integer"))
	assert.Equal(t, TagUnsupported, Classify("INT"))
}

func TestClassify_Stable(t *testing.T) {
	for _, declared := range []string{"int", "Integer", "Quantity", "Color"} {
		first := Classify(declared)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Classify(declared))
		}
	}
}

func TestLookup_PrimitiveIntrinsics(t *testing.T) {
	info, ok := Lookup("int")
	require.True(t, ok)
	assert.Equal(t, TagInt, info.Tag)
	assert.Equal(t, schema.ParameterInteger, info.Category)
	assert.Equal(t, "0", info.Default)
	assert.True(t, info.Required)
	assert.Empty(t, info.Context)

	info, ok = Lookup("boolean")
	require.True(t, ok)
	assert.Equal(t, schema.ParameterBoolean, info.Category)
	assert.Equal(t, "false", info.Default)
	assert.True(t, info.Required)

	info, ok = Lookup("double")
	require.True(t, ok)
	assert.Equal(t, schema.ParameterDecimal, info.Category)
	assert.Equal(t, "0", info.Default)
	assert.True(t, info.Required)
}

func TestLookup_BoxedHasNoIntrinsics(t *testing.T) {
	for _, declared := range []string{"Boolean", "Byte", "Short", "Integer", "Long", "Float", "Double"} {
		info, ok := Lookup(declared)
		require.True(t, ok, "identifier %s", declared)
		assert.Empty(t, info.Default, "identifier %s", declared)
		assert.False(t, info.Required, "identifier %s", declared)
	}
}

func TestLookup_TemporalContexts(t *testing.T) {
	cases := map[string]string{
		"LocalDate":     schema.ContextDate,
		"LocalTime":     schema.ContextTime,
		"LocalDateTime": schema.ContextDateTime,
		"ZonedDateTime": schema.ContextDateTime,
	}
	for declared, context := range cases {
		info, ok := Lookup(declared)
		require.True(t, ok, "identifier %s", declared)
		assert.Equal(t, schema.ParameterText, info.Category)
		assert.Equal(t, context, info.Context, "identifier %s", declared)
	}
}

func TestLookup_QuantityIsPlainText(t *testing.T) {
	info, ok := Lookup("Quantity")
	require.True(t, ok)
	assert.Equal(t, schema.ParameterText, info.Category)
	assert.Empty(t, info.Context)
	assert.Empty(t, info.Default)
	assert.False(t, info.Required)
}

func TestLookup_DecimalHasNoParameterRepresentation(t *testing.T) {
	// Decimal is coercible but has no row in the descriptor table.
	info, ok := Lookup("Decimal")
	assert.False(t, ok)
	assert.Equal(t, TagDecimal, info.Tag)
}

func TestLookup_Unknown(t *testing.T) {
	info, ok := Lookup("Color")
	assert.False(t, ok)
	assert.Equal(t, TagUnsupported, info.Tag)
}

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCodecs is a map of codec name to factory function
var testCodecs = map[string]func() ICodec{
	"JSON":       func() ICodec { return NewJSONCodec(false) },
	"JSONPretty": func() ICodec { return NewJSONCodec(true) },
	"YAML":       NewYAMLCodec,
}

// testRecordSets creates a set of record sets with different contents
func testRecordSets() []map[string]string {
	return []map[string]string{
		// Empty record set
		{},

		// Typical application state
		{
			"WindowWidth": "1024",
			"LastUser":    "alice",
		},

		// Values that look like other types
		{
			"negative": "-42",
			"float":    "3.14",
			"bool":     "true",
			"null":     "null",
			"empty":    "",
		},

		// Keys differing only by case and unusual characters
		{
			"Key":          "upper",
			"key":          "lower",
			"with space":   "a b c",
			"quote\"key":   "value with \"quotes\"",
			"unicode-ключ": "значение ✓",
			"multi":        "line1\nline2",
		},
	}
}

// TestCodecRoundTrip tests that record sets survive an encode/decode cycle
func TestCodecRoundTrip(t *testing.T) {
	for name, factory := range testCodecs {
		t.Run(name, func(t *testing.T) {
			c := factory()

			for i, records := range testRecordSets() {
				data, err := c.Encode(records)
				require.NoError(t, err, "record set %d", i)

				result, err := c.Decode(data)
				require.NoError(t, err, "record set %d", i)
				assert.Equal(t, records, result, "record set %d doesn't match after round trip", i)
			}
		})
	}
}

// TestCodecEmptyInput tests that empty and null input decode to an empty map
func TestCodecEmptyInput(t *testing.T) {
	for name, factory := range testCodecs {
		t.Run(name, func(t *testing.T) {
			c := factory()

			for _, input := range []string{"", "   ", "\n\t\n", "null"} {
				result, err := c.Decode([]byte(input))
				require.NoError(t, err, "input %q", input)
				require.NotNil(t, result, "input %q", input)
				assert.Empty(t, result, "input %q", input)
			}
		})
	}
}

// TestCodecEncodeNil tests that a nil map is encoded as an empty record set
func TestCodecEncodeNil(t *testing.T) {
	for name, factory := range testCodecs {
		t.Run(name, func(t *testing.T) {
			c := factory()

			data, err := c.Encode(nil)
			require.NoError(t, err)

			result, err := c.Decode(data)
			require.NoError(t, err)
			assert.Empty(t, result)
		})
	}
}

func TestJSONFormat(t *testing.T) {
	data, err := NewJSONCodec(false).Encode(map[string]string{
		"WindowWidth": "1024",
		"LastUser":    "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"LastUser":"alice","WindowWidth":"1024"}`, string(data))

	data, err = NewJSONCodec(true).Encode(map[string]string{"a": "1"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": \"1\"\n}", string(data))
}

func TestJSONRejectsInvalidShapes(t *testing.T) {
	c := NewJSONCodec(false)

	for _, input := range []string{
		"this is not json",
		`{"a":`,
		`["a","b"]`,
		`{"a":{"b":"c"}}`,
		`{"a":["b"]}`,
		`{"a":"b","c":[]}`,
		`"just a string"`,
		`42`,
		`{"a":"b"} trailing`,
		`{"a":"b"}{"c":"d"}`,
	} {
		_, err := c.Decode([]byte(input))
		assert.Error(t, err, "input %q", input)
	}
}

// TestJSONScalarValues tests that numbers, booleans and null are read as strings
// so hand-edited files keep all their keys
func TestJSONScalarValues(t *testing.T) {
	result, err := NewJSONCodec(false).Decode([]byte(`{
		"WindowWidth": 1024,
		"Negative": -7,
		"Ratio": 1.50,
		"Big": 12345678901234567890,
		"Enabled": true,
		"Disabled": false,
		"Missing": null,
		"LastUser": "alice"
	}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"WindowWidth": "1024",
		"Negative":    "-7",
		"Ratio":       "1.50",
		"Big":         "12345678901234567890",
		"Enabled":     "true",
		"Disabled":    "false",
		"Missing":     "",
		"LastUser":    "alice",
	}, result)
}

func TestYAMLRejectsInvalidShapes(t *testing.T) {
	c := NewYAMLCodec()

	for _, input := range []string{
		"this is not a mapping",
		"- a\n- b\n",
		"a:\n  b: c\n",
		"a: [1, 2]\n",
	} {
		_, err := c.Decode([]byte(input))
		assert.Error(t, err, "input %q", input)
	}
}

func TestNew(t *testing.T) {
	c, err := New("json", false)
	require.NoError(t, err)
	assert.IsType(t, &jsonCodecImpl{}, c)

	c, err = New("", true)
	require.NoError(t, err)
	assert.True(t, c.(*jsonCodecImpl).pretty)

	c, err = New("yaml", false)
	require.NoError(t, err)
	assert.IsType(t, &yamlCodecImpl{}, c)

	_, err = New("gob", false)
	assert.Error(t, err)
}

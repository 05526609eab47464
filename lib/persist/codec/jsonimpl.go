package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// NewJSONCodec creates a new codec writing the record set as a flat json object.
// If pretty is set, the output is indented with two spaces.
func NewJSONCodec(pretty bool) ICodec {
	return &jsonCodecImpl{pretty: pretty}
}

// jsonCodecImpl implements the ICodec interface using json encoding
type jsonCodecImpl struct {
	pretty bool
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.ICodec)
// --------------------------------------------------------------------------

func (j *jsonCodecImpl) Encode(records map[string]string) ([]byte, error) {
	if records == nil {
		records = map[string]string{}
	}
	if j.pretty {
		return json.MarshalIndent(records, "", "  ")
	}
	return json.Marshal(records)
}

func (j *jsonCodecImpl) Decode(b []byte) (map[string]string, error) {
	records := make(map[string]string)
	if len(bytes.TrimSpace(b)) == 0 {
		return records, nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after the json object")
	}

	// "null" leaves raw nil
	for k, v := range raw {
		s, err := scalarString(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		records[k] = s
	}
	return records, nil
}

// scalarString converts a decoded json scalar into its string form.
// Numbers keep their literal text, booleans become "true"/"false" and null becomes "".
func scalarString(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}

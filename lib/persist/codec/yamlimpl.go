package codec

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// NewYAMLCodec creates a new codec writing the record set as a flat yaml mapping.
// Values are always written as strings, numbers are quoted.
func NewYAMLCodec() ICodec {
	return &yamlCodecImpl{}
}

// yamlCodecImpl implements the ICodec interface using yaml encoding
type yamlCodecImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.ICodec)
// --------------------------------------------------------------------------

func (y *yamlCodecImpl) Encode(records map[string]string) ([]byte, error) {
	if records == nil {
		records = map[string]string{}
	}
	return yaml.Marshal(records)
}

func (y *yamlCodecImpl) Decode(b []byte) (map[string]string, error) {
	records := make(map[string]string)
	if len(bytes.TrimSpace(b)) == 0 {
		return records, nil
	}
	if err := yaml.Unmarshal(b, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = make(map[string]string)
	}
	return records, nil
}

package codec

import "fmt"

// New returns the codec registered under name (json, yaml).
// pretty is only honored by the json codec.
func New(name string, pretty bool) (ICodec, error) {
	switch name {
	case "json", "":
		return NewJSONCodec(pretty), nil
	case "yaml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("invalid codec %s", name)
	}
}

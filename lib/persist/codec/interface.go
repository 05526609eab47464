package codec

// ICodec is the interface for all record set encoders.
// A record set is a flat mapping of string keys to string values.
type ICodec interface {
	// Encode serializes the record set into a byte array
	Encode(records map[string]string) ([]byte, error)
	// Decode deserializes a byte array into a record set.
	// Empty input (or input holding only whitespace or null) yields an empty, non-nil map.
	Decode(b []byte) (map[string]string, error)
}

// Package codec provides the encoders that turn a record set (a flat mapping of
// string keys to string values) into the bytes of the backing file and back.
//
// Key Components:
//
//   - ICodec: Core interface that all codec implementations must satisfy.
//
//   - jsonCodecImpl: Writes the record set as a single json object, e.g.
//     {"LastUser":"alice","WindowWidth":"1024"}. This is the default format.
//     Keys are written in sorted order; optional two-space indentation.
//
//   - yamlCodecImpl: Writes the record set as a flat yaml mapping. Numeric looking
//     values are quoted so they are read back as strings.
//
// Decoding is strict about the shape: nested objects, arrays, syntax errors and data
// after the top level object are rejected with an error. Scalar values that are not
// strings are kept as text: numbers with their literal digits (1024 -> "1024"),
// booleans as "true"/"false" and null as "". Empty input and null decode to an empty map.
// Callers decide how to treat a decode error (the file store treats it as an
// empty record set).
//
// Thread Safety:
//
//	All codec implementations are stateless and safe for concurrent use.
package codec

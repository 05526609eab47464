package persist

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// IStore is the interface for a small persistent key–value store holding string values.
// Data-format problems never surface as errors: a missing key or an unreadable record set
// degrade to the documented fallback values. The returned error is reserved for faults of
// the environment (filesystem, permissions, ...) and for keys or values that are not valid
// UTF-8. It is always of type *Error.
type IStore interface {
	// GetValue returns the value stored for key, or "" if the key is absent
	// or the stored record set cannot be parsed.
	GetValue(key string) (value string, err error)
	// GetIntValue returns the value stored for key parsed as a base-10 integer.
	// It returns 0 if the key is absent, empty or not a valid integer.
	GetIntValue(key string) (value int, err error)
	// SetValue inserts or overwrites the value for key and persists the complete record set.
	// Keys and values must be valid UTF-8, otherwise an *Error with RetCInvalidValue is returned.
	SetValue(key string, value string) (err error)
	// SetIntValue stores the decimal representation of value under key.
	SetIntValue(key string, value int) (err error)
	// SetValues inserts or overwrites all given pairs with a single rewrite of the record set.
	// If any pair is rejected, none of them is stored.
	SetValues(values map[string]string) (err error)
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) (err error)
	// Has reports whether a value is stored for key.
	Has(key string) (loaded bool, err error)
	// Keys returns all stored keys in ascending order.
	Keys() (keys []string, err error)
	// All returns a copy of the complete record set.
	All() (records map[string]string, err error)
}

// StoreFactory creates a new store. It is used by the conformance tests
// to obtain fresh instances of an implementation.
type StoreFactory func() IStore

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode),
// an error message and optionally the underlying cause.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
	Err  error   // The wrapped cause, may be nil.
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("PersistError (code %s): %s: %v", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("PersistError (code %s): %s", e.Code, e.Msg)
}

// Unwrap returns the wrapped cause so errors.Is and errors.As see through *Error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// WrapError creates a new Error with the given code and message wrapping err.
func WrapError(code RetCode, msg string, err error) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
		Err:  err,
	}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess       RetCode = iota // 0: Operation executed successfully.
	RetCInternalError                // 1: Operation failed due to an internal error.
	RetCIOError                      // 2: Reading or writing the backing file failed.
	RetCInvalidConfig                // 3: The store configuration is invalid.
	RetCInvalidValue                 // 4: A key or value can not be stored unchanged.
)

func (c RetCode) String() string {
	switch c {
	case RetCSuccess:
		return "Success"
	case RetCInternalError:
		return "InternalError"
	case RetCIOError:
		return "IOError"
	case RetCInvalidConfig:
		return "InvalidConfig"
	case RetCInvalidValue:
		return "InvalidValue"
	default:
		return "Unknown"
	}
}

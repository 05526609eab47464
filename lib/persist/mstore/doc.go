// Package mstore implements the persist.IStore interface without any backing file.
// Values live in a concurrent map (xsync.MapOf) and are lost when the process exits.
//
// The memory store follows the same contract as the file store: absent keys read as ""
// and 0, integers are stored in their decimal form and keys or values that are not valid
// UTF-8 are rejected. No other errors are returned.
// It is meant for tests of components that take a persist.IStore, so they do not need
// to touch the local application data directory.
//
// Usage Example:
//
//	s := mstore.NewMemoryStore()
//	_ = s.SetIntValue("WindowWidth", 1024)
//	width, _ := s.GetIntValue("WindowWidth")
//
// Thread Safety:
//
//	All operations are safe for concurrent use. SetValues is not atomic: a concurrent
//	reader may observe some of the new values before all of them are stored.
package mstore

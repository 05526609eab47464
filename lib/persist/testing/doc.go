// Package testing provides a standardised test suite for implementations
// of the persist.IStore interface.
//
// The suite checks the contract every store must fulfil: fallback values for
// absent keys, string and integer round trips, overwrites, deletes and key listing.
// Properties that depend on a backing medium (surviving a restart, corrupt file
// recovery) are tested by the implementation itself.
//
// Example usage:
//
//	func Test(t *testing.T) {
//		persisttesting.RunStoreTests(t, "MyStore", func() persist.IStore {
//			return NewMyStore()
//		})
//	}
package testing

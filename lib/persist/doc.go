// Package persist provides a minimal interface for persisting small amounts of
// application state (window sizes, last user, counters, ...) as string values under
// string keys, so they can be read back at the next program start.
//
// The package focuses on:
//   - A unified interface (IStore) for reading and writing string and integer values
//   - Explicit fallback values instead of errors for missing or unreadable data
//   - A small, validated configuration (Config) that determines the backing file path
//
// Key Components:
//
//   - IStore Interface: The core abstraction. Reads never fail because of the stored
//     data: an absent key yields "" (or 0 for integers), and a record set that cannot be
//     parsed is treated as empty. Errors are only returned for faults of the environment
//     such as missing permissions or a full disk.
//
//   - Error System: Errors are of type *Error and carry a RetCode (RetCIOError,
//     RetCInvalidConfig, ...). The underlying cause is available through errors.Unwrap.
//     Keys and values that are not valid UTF-8 are rejected with RetCInvalidValue
//     instead of being altered on the way to disk.
//
//   - Config: The backing file lives at <DataDir>/<AppName>/<FileName>. DataDir defaults
//     to the OS local application data directory, FileName to "Persistence.json" and an
//     empty AppName is replaced by the name of the running executable on first use.
//     AppName and FileName must be single path elements; names containing separators,
//     "." or ".." are rejected.
//
// Implementations:
//
//	- File Store (fstore): Keeps the record set as a single JSON object in a file.
//	  Every operation re-reads the file and every write rewrites it completely.
//	  Available in the "github.com/ValentinKolb/pKV/lib/persist/fstore" package.
//
//	- Memory Store (mstore): Keeps the record set in memory only. Useful as a
//	  drop-in replacement in tests of code that depends on IStore.
//	  Available in the "github.com/ValentinKolb/pKV/lib/persist/mstore" package.
//
// Keys are case sensitive: "Width" and "width" are two different entries.
package persist

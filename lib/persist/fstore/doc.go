// Package fstore implements the persist.IStore interface on top of a single file
// below the local application data directory. It is meant for small amounts of
// application state that should survive a restart of the program.
//
// Key Features:
//   - One flat json object per file, e.g. {"LastUser":"alice","WindowWidth":"1024"}
//   - Lazy creation of the directory and an empty file on first access
//   - Silent recovery from unreadable content (treated as an empty record set)
//   - Pluggable filesystem through afero.Fs (OS filesystem by default)
//
// Implementation Details:
//
//   - No Caching: Every operation reads the complete file. Every write encodes the
//     complete record set and overwrites the file in place (no temp file, no rename).
//     This keeps the file and the values of the store in sync at all times, at the
//     cost of a full rewrite per SetValue. Use SetValues to write several keys at once.
//
//   - Path Resolution: The file lives at <DataDir>/<AppName>/<FileName>. If no AppName
//     is configured, the name of the running executable is used and stored on the
//     Store, so the path stays fixed for the rest of its lifetime unless SetAppName is
//     called. Changing AppName or FileName does not move existing data.
//
//   - Error Handling: Content that cannot be decoded yields an empty record set and a
//     warning in the log; the next write replaces it. Filesystem faults are returned as
//     *persist.Error with code persist.RetCIOError.
//
// Thread Safety:
//
//	Within one process, all stores that resolve to the same file share a mutex, so
//	load-modify-write sequences never interleave. There is no locking across
//	processes: two programs writing the same file concurrently may lose updates
//	(last writer wins).
//
// Usage Example:
//
//	conf := persist.DefaultConfig()
//	conf.AppName = "MyTool"
//	s, err := fstore.NewStore(nil, conf)
//	if err != nil {
//		return err
//	}
//	if err := s.SetIntValue("WindowWidth", 1024); err != nil {
//		return err
//	}
//	width, err := s.GetIntValue("WindowWidth") // 1024, also after a restart
package fstore

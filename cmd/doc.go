// Package cmd implements the command-line interface for the pKV persistent
// key-value store. It provides a hierarchical command structure for reading and
// writing the values of an application from the shell.
//
// The package is organized into several subpackages:
//
//   - kv: Commands for key-value operations (get, set, del, keys, ...)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// Every flag can also be set with an environment variable PKV_<FLAG> (e.g.
// PKV_APP_NAME=MyTool), also read from .env and .env.local in the working directory.
//
// See pkv -help for a list of all commands.
package cmd

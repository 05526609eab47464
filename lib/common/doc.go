// Package common holds the infrastructure shared by the library and the cli:
// the logger factory plugged into dragonboats logger package and the process
// wide store metrics.
//
// Logging:
//
//	All packages obtain their logger with logger.GetLogger(name). InitLoggers installs
//	CreateLogger as factory and sets the level of every logger listed in LoggerNames.
//	Log lines are written to stderr in the format
//
//	  2025/01/02 15:04:05 WARN  | persist    | message
//
//	Without InitLoggers the loggers stay at dragonboats defaults.
//
// Metrics:
//
//	Counters and histograms are registered in the default VictoriaMetrics set and
//	can be exported with WriteMetrics.
package common

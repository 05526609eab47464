package common

import (
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// --------------------------------------------------------------------------
// Store metrics (process wide, shared by all store instances)
// --------------------------------------------------------------------------

var (
	// StoreReads counts record set loads
	StoreReads = metrics.NewCounter("pkv_store_reads_total")
	// StoreWrites counts full rewrites of a backing file
	StoreWrites = metrics.NewCounter("pkv_store_writes_total")
	// StoreRecovered counts loads where unreadable content was replaced by an empty record set
	StoreRecovered = metrics.NewCounter("pkv_store_recovered_total")
	// StoreIOErrors counts filesystem faults returned to callers
	StoreIOErrors = metrics.NewCounter("pkv_store_io_errors_total")
	// StoreRecords tracks the number of records per written record set
	StoreRecords = metrics.NewHistogram("pkv_store_records")
)

// WriteMetrics writes all metrics in prometheus text format to w
func WriteMetrics(w io.Writer) {
	metrics.WritePrometheus(w, false)
}

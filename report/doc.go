// Package report is the presentation side of a run: it consumes a finished
// analysis.Distribution plus the diagnostic triple (M, N, k) and renders it.
// Nothing here mutates its inputs.
//
//	WriteTable  console table: bitstring, percentage (2 decimals), verdict
//	WriteChart  standalone HTML bar chart (go-echarts)
//	Encode      JSON or YAML for other tools
package report

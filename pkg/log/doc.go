// Package log records test results as structured events.
//
// Every value a test step publishes, and every shared-data transfer it
// makes, is captured as an Event. This is separate from operational
// logging (slog): result capture provides a complete machine-readable
// record of a test run for datalogging and analysis.
//
// # Basic Usage
//
// Step contexts are given a Logger implementation:
//
//	// For development: log results to console via slog
//	ctx, _ := stepcontext.New(cfg, stepcontext.WithResultLogger(log.NewSlogAdapter(slog.Default())))
//
//	// For production: write to a binary result file
//	fl, _ := log.NewFileLogger("/var/log/stl/lot42.rlog")
//
//	// Both: use MultiLogger
//	results := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
// # Event Kinds
//
//   - Publish: one value of one pin at one site (ResultEvent)
//   - Share, Retrieve: shared global data moved through a store (ShareEvent)
//   - Error: a step operation that failed (ErrorEventData)
//
// # File Format
//
// Result files are a CBOR stream of events with the .rlog extension. The
// stl-results CLI tool provides viewing, filtering, export and statistics.
package log

// Package trace records what the formatter driver does: batch boundaries,
// per-file work and the passes inside each file.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	ponyfmt fmt --trace=- --trace-level=file src/
//
// # Tracers
//
//   - Nop: tracing disabled
//   - StreamTracer: writes every event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events in memory
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelBatch: one span per FormatPaths call
//   - LevelFile: plus one span per file
//   - LevelPass: plus lex/parse/render passes ("debug" is accepted too)
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file", trace.ParentFrom(ctx))
//	defer span.End("")
package trace

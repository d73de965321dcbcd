// Package store provides pluggable key-value persistence for suspended
// agent runs.
//
// The agent captures its full state at the human-review suspension point
// and persists it through an [Adapter]. Any process holding the same
// adapter (and the run key) can later resume the run; nothing else is held
// while a run is suspended.
//
// Two adapters are provided: [MemoryAdapter] for tests and single-process
// use, and [FileAdapter] which writes one JSON document per key so
// suspended runs survive a process restart.
package store

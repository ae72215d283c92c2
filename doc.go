// Package ringfile implements a fixed-capacity circular byte buffer that
// lives entirely on a backing file: all capacity is allocated on disk and
// only a small fixed-size scratch buffer is held in memory for transfers,
// so a ring far larger than available RAM is fine.
//
// The library is organised into several files for clarity:
//
//	options.go     – configuration struct & defaults
//	ring.go        – core type, constructors & backing-file abstraction
//	offset.go      – logical→physical translation & range splitting
//	io.go          – append/read logic & streaming to a sink
//	mmap.go        – optional memory-mapped backing file
//	meta.go        – sidecar meta file & resume-on-open
//	stats.go       – lightweight stats accessors
//	flush_close.go – flush & close helpers
//
// See the README for usage examples.
package ringfile

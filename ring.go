package ringfile

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrInvalidCapacity is returned when a ring is constructed with a
	// negative capacity.
	ErrInvalidCapacity = errors.New("ringfile: capacity must be non-negative")

	// ErrOutOfRange is returned when a logical offset falls outside the
	// currently valid range. Offsets are rejected, never clamped.
	ErrOutOfRange = errors.New("ringfile: offset out of range")

	// ErrShortRead reports a read that came up short inside a range
	// already validated against Count. It indicates broken offset
	// arithmetic, not a caller mistake.
	ErrShortRead = errors.New("ringfile: short read inside validated range")
)

// BackingFile is the random-access abstraction the ring operates on.
// *os.File satisfies it, as does any in-memory equivalent such as
// memfile.File. Positional ReadAt/WriteAt means the ring never disturbs
// a shared file position between interleaved reads and appends.
type BackingFile interface {
	io.ReaderAt
	io.WriterAt
	Truncate(size int64) error
}

// RingFile adalah circular byte buffer dengan kapasitas tetap yang
// disimpan sepenuhnya pada satu file.
//
// Logical offset 0 selalu menunjuk byte tertua yang masih tersimpan.
// The ring is single-owner: callers that share one across goroutines
// must serialize access themselves.
type RingFile struct {
	file     BackingFile
	capacity int64 // fixed file length in bytes
	count    int64 // valid bytes, saturates at capacity and never shrinks
	cursor   int64 // physical offset of the next write, always < capacity

	scratch []byte // fixed staging buffer for transfers, never grows

	owned    bool   // close the backing file on Close
	metaPath string // sidecar meta path, "" when not path-backed

	stats counters
}

// New membuat ring baru pada path dengan opsi default. File data dan
// sidecar meta dimiliki oleh ring dan ditutup lewat Close.
func New(path string, capacity int64) (*RingFile, error) {
	return NewWithOptions(path, capacity, DefaultOptions())
}

// NewWithOptions membuat ring pada path dengan opsi kustom.
//
// Without Options.Resume the construction is destructive: any existing
// content is truncated away. With Resume, a valid sidecar meta for the
// same capacity re-adopts the previous cursor and count instead.
func NewWithOptions(path string, capacity int64, opts Options) (*RingFile, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	opts = opts.withDefaults()

	if opts.Resume {
		if r, ok := resume(path, capacity, opts); ok {
			return r, nil
		}
	}

	f, err := openBacking(path, capacity, opts)
	if err != nil {
		return nil, fmt.Errorf("ringfile: open %s: %w", path, err)
	}
	r, err := NewFromFile(f, capacity, opts)
	if err != nil {
		if c, ok := f.(io.Closer); ok {
			c.Close()
		}
		return nil, err
	}
	r.owned = true
	r.metaPath = MetaPath(path)
	return r, nil
}

// NewFromFile wraps an already-open backing file. Construction is
// destructive: the file is truncated/extended to exactly capacity bytes
// and the write cursor starts at offset 0. The caller keeps ownership of
// the handle; Close will not close it.
func NewFromFile(f BackingFile, capacity int64, opts Options) (*RingFile, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	opts = opts.withDefaults()
	if err := f.Truncate(capacity); err != nil {
		return nil, fmt.Errorf("ringfile: truncate to %d: %w", capacity, err)
	}
	return &RingFile{
		file:     f,
		capacity: capacity,
		scratch:  make([]byte, opts.ScratchSize),
	}, nil
}

// openBacking picks the backing implementation for a path-based ring.
// Capacity-0 rings never map: an empty mapping is invalid.
func openBacking(path string, capacity int64, opts Options) (BackingFile, error) {
	if opts.UseMmap && capacity > 0 {
		return openMmapFile(path, capacity)
	}
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o666)
}

// Capacity mengembalikan kapasitas tetap ring dalam byte.
func (r *RingFile) Capacity() int64 { return r.capacity }

// Count mengembalikan jumlah byte valid saat ini (maksimal Capacity).
func (r *RingFile) Count() int64 { return r.count }

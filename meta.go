package ringfile

import (
	"encoding/binary"
	"fmt"
	"os"
)

// meta file layout: 24 bytes (little-endian)
// 0..7   : uint64 capacity
// 8..15  : uint64 write cursor
// 16..23 : uint64 logical count

const metaSize = 24

// Meta is the persisted bookkeeping snapshot of a ring.
type Meta struct {
	Capacity int64
	Cursor   int64
	Count    int64
}

// MetaPath returns the sidecar meta path for a ring data file.
func MetaPath(base string) string { return base + ".meta" }

func writeMetaFile(path string, m Meta) error {
	buf := make([]byte, metaSize)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(m.Capacity))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(m.Cursor))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(m.Count))
	return os.WriteFile(path, buf, 0o666)
}

// ReadMetaFile loads a sidecar meta file. Tools can use it to recover
// the capacity of an existing ring without opening the data file.
func ReadMetaFile(path string) (Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, err
	}
	if len(data) < metaSize {
		return Meta{}, fmt.Errorf("ringfile: meta file too small: %d bytes", len(data))
	}
	return Meta{
		Capacity: int64(binary.LittleEndian.Uint64(data[0:8])),
		Cursor:   int64(binary.LittleEndian.Uint64(data[8:16])),
		Count:    int64(binary.LittleEndian.Uint64(data[16:24])),
	}, nil
}

// Meta mengembalikan snapshot bookkeeping ring saat ini.
func (r *RingFile) Meta() Meta {
	return Meta{Capacity: r.capacity, Cursor: r.cursor, Count: r.count}
}

// resume membangun kembali ring dari file data yang ada beserta meta
// sidecar-nya. Any mismatch between the meta, the requested capacity and
// the data file falls back to fresh construction.
func resume(path string, capacity int64, opts Options) (*RingFile, bool) {
	m, err := ReadMetaFile(MetaPath(path))
	if err != nil {
		return nil, false
	}
	if m.Capacity != capacity || m.Count < 0 || m.Count > capacity {
		return nil, false
	}
	if m.Cursor < 0 || (capacity > 0 && m.Cursor >= capacity) || (capacity == 0 && m.Cursor != 0) {
		return nil, false
	}
	fi, err := os.Stat(path)
	if err != nil || fi.Size() != capacity {
		return nil, false
	}

	f, err := openBacking(path, capacity, opts)
	if err != nil {
		return nil, false
	}
	return &RingFile{
		file:     f,
		capacity: capacity,
		count:    m.Count,
		cursor:   m.Cursor,
		scratch:  make([]byte, opts.ScratchSize),
		owned:    true,
		metaPath: MetaPath(path),
	}, true
}

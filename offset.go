package ringfile

// physicalOffset menerjemahkan logical offset menjadi posisi fisik pada
// file. Before saturation the file has only ever been written forward,
// so logical and physical coincide. Once full, the byte at the write
// cursor is the oldest retained byte: logical 0 maps there and later
// offsets walk the ring forward, wrapping at capacity.
func (r *RingFile) physicalOffset(off int64) int64 {
	if r.count < r.capacity {
		return off
	}
	return (r.cursor + off) % r.capacity
}

// segment is one contiguous physical run within the backing file.
type segment struct {
	off int64
	n   int64
}

// segments membagi rentang fisik [start, start+n) menjadi maksimal dua
// bagian kontigu di sekitar batas akhir file: [start, capacity) lalu
// [0, sisa).
func (r *RingFile) segments(start, n int64) []segment {
	if n <= 0 {
		return nil
	}
	if start+n <= r.capacity {
		return []segment{{start, n}}
	}
	first := r.capacity - start
	return []segment{{start, first}, {0, n - first}}
}

package ringfile

import (
	"errors"
	"fmt"
	"io"
)

// Add menulis satu byte pada posisi cursor saat ini. Once the ring has
// saturated, each Add overwrites the oldest retained byte.
func (r *RingFile) Add(b byte) error {
	if r.capacity == 0 {
		return nil
	}
	r.scratch[0] = b
	if _, err := r.file.WriteAt(r.scratch[:1], r.cursor); err != nil {
		return fmt.Errorf("ringfile: write at %d: %w", r.cursor, err)
	}
	r.cursor++
	if r.cursor == r.capacity {
		r.cursor = 0
	}
	if r.count < r.capacity {
		r.count++
	}
	r.noteAppend(1)
	return nil
}

// Append menulis serangkaian byte pada posisi cursor saat ini, dipecah
// menjadi maksimal dua penulisan fisik di sekitar batas akhir file.
//
// len(p) boleh melebihi Capacity: only the trailing Capacity bytes can
// survive such a call, so the write is trimmed to them first. The result
// is byte-for-byte identical to appending every byte in order.
func (r *RingFile) Append(p []byte) error {
	n := int64(len(p))
	if r.capacity == 0 || n == 0 {
		return nil
	}
	q := p
	if n > r.capacity {
		q = p[n-r.capacity:]
	}
	written := int64(len(q))
	for _, seg := range r.segments(r.cursor, written) {
		if _, err := r.file.WriteAt(q[:seg.n], seg.off); err != nil {
			return fmt.Errorf("ringfile: write %d bytes at %d: %w", seg.n, seg.off, err)
		}
		q = q[seg.n:]
	}
	r.cursor = (r.cursor + written) % r.capacity
	r.count = min(r.count+n, r.capacity)
	r.noteAppend(n)
	return nil
}

// Get membaca satu byte pada logical offset. Offsets outside
// [0, Count()) are rejected with ErrOutOfRange, never clamped.
func (r *RingFile) Get(off int64) (byte, error) {
	if off < 0 || off >= r.count {
		return 0, fmt.Errorf("%w: get %d with %d valid bytes", ErrOutOfRange, off, r.count)
	}
	pos := r.physicalOffset(off)
	if _, err := r.file.ReadAt(r.scratch[:1], pos); err != nil {
		return 0, fmt.Errorf("ringfile: read at %d: %w", pos, err)
	}
	r.noteGet()
	return r.scratch[0], nil
}

// SendTo mengalirkan byte langsung dari file ke w tanpa memuat rentang
// tersebut ke memori; transfer dipompa melalui scratch buffer.
//
// The number of bytes sent is min(n, Count()), not min(n, Count()-off):
// the caller picks a starting offset within [0, Count()) and is expected
// to request a count that fits. A request that would run past Count is
// rejected upfront with ErrOutOfRange. n <= 0 sends nothing and performs
// no I/O regardless of off. Returns the number of bytes sent.
func (r *RingFile) SendTo(w io.Writer, off, n int64) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	actual := min(n, r.count)
	if actual == 0 {
		return 0, nil
	}
	if off < 0 || off >= r.count {
		return 0, fmt.Errorf("%w: send from %d with %d valid bytes", ErrOutOfRange, off, r.count)
	}
	if off+actual > r.count {
		return 0, fmt.Errorf("%w: send [%d,%d) with %d valid bytes", ErrOutOfRange, off, off+actual, r.count)
	}

	var sent int64
	for _, seg := range r.segments(r.physicalOffset(off), actual) {
		if err := r.stream(w, seg, &sent); err != nil {
			return sent, err
		}
	}
	r.noteSend(sent)
	return sent, nil
}

// stream pumps one contiguous physical run through the scratch buffer.
func (r *RingFile) stream(w io.Writer, seg segment, sent *int64) error {
	for seg.n > 0 {
		chunk := int64(len(r.scratch))
		if chunk > seg.n {
			chunk = seg.n
		}
		got, err := r.file.ReadAt(r.scratch[:chunk], seg.off)
		if int64(got) < chunk {
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("ringfile: read %d bytes at %d: %w", chunk, seg.off, err)
			}
			// The range was validated against Count; running out of
			// file here means the offset arithmetic is broken.
			return fmt.Errorf("%w: wanted %d bytes at %d, got %d", ErrShortRead, chunk, seg.off, got)
		}
		if _, err := w.Write(r.scratch[:chunk]); err != nil {
			return fmt.Errorf("ringfile: sink write: %w", err)
		}
		*sent += chunk
		seg.off += chunk
		seg.n -= chunk
	}
	return nil
}

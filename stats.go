package ringfile

import "sync/atomic"

// Stats menyimpan statistik operasi ring.
type Stats struct {
	Appends       uint64 // Add + Append calls
	BytesAppended uint64 // logical bytes appended (pre-trim)
	Gets          uint64
	Sends         uint64
	BytesSent     uint64
}

type counters struct {
	appends       uint64
	bytesAppended uint64
	gets          uint64
	sends         uint64
	bytesSent     uint64
}

func (r *RingFile) noteAppend(n int64) {
	atomic.AddUint64(&r.stats.appends, 1)
	atomic.AddUint64(&r.stats.bytesAppended, uint64(n))
}

func (r *RingFile) noteGet() { atomic.AddUint64(&r.stats.gets, 1) }

func (r *RingFile) noteSend(n int64) {
	atomic.AddUint64(&r.stats.sends, 1)
	atomic.AddUint64(&r.stats.bytesSent, uint64(n))
}

// GetStats mengambil snapshot statistik tanpa lock berat.
func (r *RingFile) GetStats() Stats {
	return Stats{
		Appends:       atomic.LoadUint64(&r.stats.appends),
		BytesAppended: atomic.LoadUint64(&r.stats.bytesAppended),
		Gets:          atomic.LoadUint64(&r.stats.gets),
		Sends:         atomic.LoadUint64(&r.stats.sends),
		BytesSent:     atomic.LoadUint64(&r.stats.bytesSent),
	}
}

// ResetStats mengatur ulang semua penghitung.
func (r *RingFile) ResetStats() {
	atomic.StoreUint64(&r.stats.appends, 0)
	atomic.StoreUint64(&r.stats.bytesAppended, 0)
	atomic.StoreUint64(&r.stats.gets, 0)
	atomic.StoreUint64(&r.stats.sends, 0)
	atomic.StoreUint64(&r.stats.bytesSent, 0)
}

package ringfile

// DefaultScratchSize is the size of the transfer scratch buffer when the
// caller does not pick one. It is deliberately independent of capacity.
const DefaultScratchSize = 32 << 10 // 32 KiB

// Options menyediakan opsi konfigurasi untuk RingFile.
//
//   - ScratchSize: ukuran buffer staging untuk streaming (0 = default)
//   - UseMmap:     aktifkan memory-mapping untuk akses data lebih cepat
//   - Resume:      lanjutkan ring yang sudah ada dari file meta sidecar
//
// Semua bidang bersifat opsi; nilai nol artinya gunakan default.
// Lihat DefaultOptions() untuk nilai bawaan.
type Options struct {
	ScratchSize int  // Scratch/staging buffer size in bytes (0 = DefaultScratchSize)
	UseMmap     bool // Memory-map the backing file (path-based constructors only)
	Resume      bool // Adopt cursor/count from the sidecar meta when valid
}

// DefaultOptions mengembalikan konfigurasi default yang digunakan New.
func DefaultOptions() Options {
	return Options{
		ScratchSize: DefaultScratchSize,
	}
}

func (o Options) withDefaults() Options {
	if o.ScratchSize <= 0 {
		o.ScratchSize = DefaultScratchSize
	}
	return o
}

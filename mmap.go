package ringfile

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// mmapFile memenuhi kontrak BackingFile melalui memory-mapping sehingga
// jalur baca/tulis cukup berupa copy memori tanpa syscall I/O. The
// mapping length is fixed at creation; Truncate only accepts that size.
type mmapFile struct {
	f    *os.File
	data []byte
}

func openMmapFile(path string, size int64) (*mmapFile, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o666)
	if err != nil {
		return nil, err
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, err
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &mmapFile{f: f, data: data}, nil
}

func (m *mmapFile) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(m.data)) {
		return 0, fmt.Errorf("mmap read offset %d outside mapping of %d", off, len(m.data))
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (m *mmapFile) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off+int64(len(p)) > int64(len(m.data)) {
		return 0, fmt.Errorf("mmap write [%d,%d) outside mapping of %d", off, off+int64(len(p)), len(m.data))
	}
	return copy(m.data[off:], p), nil
}

// Truncate hanya menerima ukuran mapping yang sudah ada; panjang file
// ring memang tetap sepanjang umurnya.
func (m *mmapFile) Truncate(size int64) error {
	if size != int64(len(m.data)) {
		return fmt.Errorf("mmap backing is fixed at %d bytes, cannot truncate to %d", len(m.data), size)
	}
	return nil
}

func (m *mmapFile) Sync() error { return unix.Msync(m.data, unix.MS_SYNC) }

func (m *mmapFile) Close() error {
	if err := unix.Munmap(m.data); err != nil {
		m.f.Close()
		return err
	}
	return m.f.Close()
}

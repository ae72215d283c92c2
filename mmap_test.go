package ringfile_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	ringfile "github.com/luhtfiimanal/go-ringfile"
)

func TestMmapBackingRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.data")

	opts := ringfile.DefaultOptions()
	opts.UseMmap = true
	opts.ScratchSize = 5

	r, err := ringfile.NewWithOptions(path, 32, opts)
	if err != nil {
		t.Fatalf("create mmap ring: %v", err)
	}

	p := make([]byte, 40) // oversized: forces trim + wrap in the mapping
	for i := range p {
		p[i] = byte(i)
	}
	if err := r.Append(p); err != nil {
		t.Fatalf("append: %v", err)
	}

	want := p[len(p)-32:]
	for i := range want {
		got, err := r.Get(int64(i))
		if err != nil || got != want[i] {
			t.Fatalf("get(%d) = %d, %v (want %d)", i, got, err, want[i])
		}
	}

	var sink bytes.Buffer
	sent, err := r.SendTo(&sink, 0, 32)
	if err != nil || sent != 32 {
		t.Fatalf("send: sent=%d err=%v", sent, err)
	}
	if !bytes.Equal(sink.Bytes(), want) {
		t.Fatalf("streamed bytes diverge from gets")
	}

	if err := r.Flush(); err != nil {
		t.Fatalf("flush (msync): %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// resume through the mapping as well
	opts.Resume = true
	reopened, err := ringfile.NewWithOptions(path, 32, opts)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if reopened.Count() != 32 {
		t.Fatalf("resume lost count, got %d", reopened.Count())
	}
	for i := range want {
		got, err := reopened.Get(int64(i))
		if err != nil || got != want[i] {
			t.Fatalf("get(%d) after resume = %d, %v (want %d)", i, got, err, want[i])
		}
	}
}

func TestMmapZeroCapacity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.data")

	opts := ringfile.DefaultOptions()
	opts.UseMmap = true // silently ignored: an empty mapping is invalid

	r, err := ringfile.NewWithOptions(path, 0, opts)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer r.Close()

	if err := r.Add(1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := r.Get(0); !errors.Is(err, ringfile.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

package ringfile_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dsnet/golib/memfile"
	ringfile "github.com/luhtfiimanal/go-ringfile"
)

func newRing(t *testing.T, capacity int64, scratch int) *ringfile.RingFile {
	t.Helper()
	opts := ringfile.DefaultOptions()
	opts.ScratchSize = scratch
	r, err := ringfile.NewFromFile(memfile.New(nil), capacity, opts)
	if err != nil {
		t.Fatalf("failed to create ring: %v", err)
	}
	return r
}

func TestSendZeroCount(t *testing.T) {
	r := newRing(t, 8, 4)
	if err := r.Append([]byte{1, 2, 3}); err != nil {
		t.Fatalf("append: %v", err)
	}
	// a zero request never does I/O, even with a nonsense offset
	for _, off := range []int64{-5, 0, 2, 99} {
		var sink bytes.Buffer
		sent, err := r.SendTo(&sink, off, 0)
		if err != nil || sent != 0 || sink.Len() != 0 {
			t.Fatalf("off %d: expected silent zero send, got sent=%d err=%v", off, sent, err)
		}
	}
}

func TestSendFromEmptyRing(t *testing.T) {
	r := newRing(t, 8, 4)
	var sink bytes.Buffer
	sent, err := r.SendTo(&sink, 3, 10)
	if err != nil || sent != 0 {
		t.Fatalf("empty ring: expected zero send, got sent=%d err=%v", sent, err)
	}
}

// The round-trip law: streaming must deliver exactly the bytes Get
// reports, for every valid offset/count pair. A 3-byte scratch buffer
// forces chunking inside and across wrap segments.
func TestStreamingMatchesGet(t *testing.T) {
	const capacity = 16
	r := newRing(t, capacity, 3)

	check := func(stage string) {
		count := r.Count()
		for off := int64(0); off < count; off++ {
			for n := int64(1); n <= count-off; n++ {
				var sink bytes.Buffer
				sent, err := r.SendTo(&sink, off, n)
				if err != nil {
					t.Fatalf("%s: send(%d,%d): %v", stage, off, n, err)
				}
				if sent != n {
					t.Fatalf("%s: send(%d,%d) sent %d", stage, off, n, sent)
				}
				got := sink.Bytes()
				for i := int64(0); i < n; i++ {
					want, err := r.Get(off + i)
					if err != nil {
						t.Fatalf("%s: get(%d): %v", stage, off+i, err)
					}
					if got[i] != want {
						t.Fatalf("%s: send(%d,%d)[%d] = %d, want %d", stage, off, n, i, got[i], want)
					}
				}
			}
		}
	}

	for i := 0; i < 10; i++ {
		if err := r.Add(byte(i)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	check("unsaturated")

	for i := 10; i < capacity+5; i++ {
		if err := r.Add(byte(i)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	check("saturated")
}

func TestSendCapsAtCount(t *testing.T) {
	r := newRing(t, 16, 4)
	if err := r.Append([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}); err != nil {
		t.Fatalf("append: %v", err)
	}
	var sink bytes.Buffer
	sent, err := r.SendTo(&sink, 0, 999)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if sent != 10 || sink.Len() != 10 {
		t.Fatalf("expected the whole 10 valid bytes, got %d", sent)
	}
}

func TestSendRejectsRangePastCount(t *testing.T) {
	r := newRing(t, 16, 4)
	for i := 0; i < 21; i++ { // saturate with a mid-file cursor
		if err := r.Add(byte(i)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	var sink bytes.Buffer
	if _, err := r.SendTo(&sink, 1, 16); !errors.Is(err, ringfile.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for range past count, got %v", err)
	}
	if _, err := r.SendTo(&sink, -1, 4); !errors.Is(err, ringfile.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for negative offset, got %v", err)
	}
	if _, err := r.SendTo(&sink, 16, 1); !errors.Is(err, ringfile.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for offset at count, got %v", err)
	}
	if sink.Len() != 0 {
		t.Fatalf("rejected sends must not emit bytes, got %d", sink.Len())
	}
}

type failingSink struct{ after int }

func (s *failingSink) Write(p []byte) (int, error) {
	if s.after <= 0 {
		return 0, errors.New("sink full")
	}
	s.after--
	return len(p), nil
}

func TestSendSinkFailure(t *testing.T) {
	r := newRing(t, 16, 4)
	for i := 0; i < 16; i++ {
		if err := r.Add(byte(i)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	sink := &failingSink{after: 1} // accept one 4-byte chunk, then fail
	sent, err := r.SendTo(sink, 0, 16)
	if err == nil {
		t.Fatalf("expected sink error")
	}
	if sent != 4 {
		t.Fatalf("expected 4 bytes sent before failure, got %d", sent)
	}
}

package ringfile

import (
	"fmt"
	"io"
)

type syncer interface {
	Sync() error
}

// Flush memaksa semua data tersimpan ke disk dan, untuk ring berbasis
// path, menulis ulang file meta sidecar.
func (r *RingFile) Flush() error {
	if s, ok := r.file.(syncer); ok {
		if err := s.Sync(); err != nil {
			return fmt.Errorf("ringfile: sync: %w", err)
		}
	}
	if r.metaPath != "" {
		if err := writeMetaFile(r.metaPath, r.Meta()); err != nil {
			return fmt.Errorf("ringfile: save meta: %w", err)
		}
	}
	return nil
}

// Close melakukan Flush lalu menutup file data bila ring yang membukanya.
// Rings built with NewFromFile leave closing to the caller.
func (r *RingFile) Close() error {
	err := r.Flush()
	if r.owned {
		if c, ok := r.file.(io.Closer); ok {
			if cerr := c.Close(); err == nil {
				err = cerr
			}
		}
	}
	return err
}

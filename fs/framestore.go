// Package fs provides file-based storage for frame metadata.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dexter-zone/nftmeta"
)

// DefaultDir is the output directory used when none is configured.
const DefaultDir = "metadata"

// FrameFilename returns the file name of the record for frame id.
func FrameFilename(id int) string {
	return fmt.Sprintf("frame_%d.json", id)
}

// FormatFrame serializes a frame record as indented JSON with keys in
// frame_id, name, attributes order. HTML characters are left unescaped
// and there is no trailing newline.
func FormatFrame(frame *nftmeta.FrameRecord) ([]byte, error) {
	rec := *frame
	if rec.Attributes == nil {
		rec.Attributes = []nftmeta.Trait{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&rec); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Ensure FrameStore implements nftmeta.FrameStore at compile time.
var _ nftmeta.FrameStore = (*FrameStore)(nil)

// FrameStore implements nftmeta.FrameStore with atomic update semantics.
// Records are saved to a temporary directory and moved into the output
// directory on Commit, so a failed export leaves the output untouched.
type FrameStore struct {
	baseDir string
	name    string

	// staged is set once this store has cleared the temp directory and
	// written to it. Files left there by an earlier, interrupted run are
	// never published.
	staged bool
}

// NewFrameStore creates a new FrameStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFrameStore(baseDir, name string) *FrameStore {
	return &FrameStore{
		baseDir: baseDir,
		name:    name,
	}
}

// NewFrameStoreForDir creates a FrameStore writing into dir.
func NewFrameStoreForDir(dir string) *FrameStore {
	dir = filepath.Clean(dir)
	return NewFrameStore(filepath.Dir(dir), filepath.Base(dir))
}

// Dir returns the final output directory.
func (s *FrameStore) Dir() string {
	return s.finalDir()
}

func (s *FrameStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FrameStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the record to the temporary directory.
func (s *FrameStore) Save(ctx context.Context, frame *nftmeta.FrameRecord) error {
	if frame == nil {
		return nftmeta.Errorf(nftmeta.EINVALID, "frame record required")
	}
	if frame.FrameID < 0 {
		return nftmeta.Errorf(nftmeta.EINVALID, "invalid frame id %d", frame.FrameID)
	}

	content, err := FormatFrame(frame)
	if err != nil {
		return err
	}

	if !s.staged {
		if err := os.RemoveAll(s.tempDir()); err != nil {
			return err
		}
		s.staged = true
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(s.tempDir(), FrameFilename(frame.FrameID)), content, 0644)
}

// Commit moves every saved record into the output directory, creating it
// if needed and replacing records with the same frame id.
func (s *FrameStore) Commit() error {
	if !s.staged {
		return nil
	}
	s.staged = false

	entries, err := os.ReadDir(s.tempDir())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.finalDir(), 0755); err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		src := filepath.Join(s.tempDir(), entry.Name())
		dst := filepath.Join(s.finalDir(), entry.Name())
		if err := os.Rename(src, dst); err != nil {
			return err
		}
	}

	return os.RemoveAll(s.tempDir())
}

// Abort discards every saved record.
func (s *FrameStore) Abort() error {
	s.staged = false
	return os.RemoveAll(s.tempDir())
}

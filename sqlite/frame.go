package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dexter-zone/nftmeta"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ nftmeta.FrameStore   = (*FrameStore)(nil)
	_ nftmeta.FrameHistory = (*FrameService)(nil)
)

// hashContent computes the xxHash of content and returns it as hex.
func hashContent(content []byte) string {
	b := binary.BigEndian.AppendUint64(nil, xxhash.Sum64(content))
	return hex.EncodeToString(b)
}

// FrameStore records one export run in the database. All frames saved
// through a store share an export ID and become visible together on Commit.
type FrameStore struct {
	db        *DB
	fileKey   string
	pageIndex int

	exportID   string
	exportedAt time.Time
	tx         *sql.Tx
}

// NewFrameStore creates a FrameStore for one export of a file page.
func NewFrameStore(db *DB, fileKey string, pageIndex int) *FrameStore {
	return &FrameStore{
		db:        db,
		fileKey:   fileKey,
		pageIndex: pageIndex,
		exportID:  uuid.New().String(),
	}
}

// ExportID returns the identifier shared by all frames of this export.
func (s *FrameStore) ExportID() string {
	return s.exportID
}

// Save inserts the frame inside the export's transaction, starting it on
// first use.
func (s *FrameStore) Save(ctx context.Context, frame *nftmeta.FrameRecord) error {
	if frame == nil {
		return nftmeta.Errorf(nftmeta.EINVALID, "frame record required")
	}

	if s.tx == nil {
		// The transaction outlives this call; only Commit or Abort end it.
		tx, err := s.db.BeginTx(context.WithoutCancel(ctx), nil)
		if err != nil {
			return fmt.Errorf("failed to begin export: %w", err)
		}
		s.tx = tx
		s.exportedAt = time.Now().UTC()
	}

	attrs := frame.Attributes
	if attrs == nil {
		attrs = []nftmeta.Trait{}
	}
	attributes, err := json.Marshal(attrs)
	if err != nil {
		return err
	}
	content, err := json.Marshal(nftmeta.FrameRecord{FrameID: frame.FrameID, Name: frame.Name, Attributes: attrs})
	if err != nil {
		return err
	}

	_, err = s.tx.ExecContext(ctx, `
		INSERT INTO frames (id, export_id, file_key, page_index, frame_id, name, attributes, content_hash, exported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), s.exportID, s.fileKey, s.pageIndex, frame.FrameID, frame.Name,
		string(attributes), hashContent(content), formatTimestamp(s.exportedAt))

	return err
}

// Commit makes all saved frames visible.
func (s *FrameStore) Commit() error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	return tx.Commit()
}

// Abort discards all saved frames.
func (s *FrameStore) Abort() error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	return tx.Rollback()
}

// FrameService implements nftmeta.FrameHistory using SQLite.
type FrameService struct {
	db *DB
}

// NewFrameService creates a new FrameService.
func NewFrameService(db *DB) *FrameService {
	return &FrameService{db: db}
}

// FindFrames retrieves exported frames matching the filter.
func (s *FrameService) FindFrames(ctx context.Context, filter nftmeta.FrameFilter) ([]*nftmeta.ExportedFrame, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, export_id, file_key, page_index, frame_id, name, attributes, content_hash, exported_at FROM frames WHERE 1=1")

	if filter.FileKey != nil {
		query.WriteString(" AND file_key = ?")
		args = append(args, *filter.FileKey)
	}
	if filter.ExportID != nil {
		query.WriteString(" AND export_id = ?")
		args = append(args, *filter.ExportID)
	}

	query.WriteString(" ORDER BY exported_at DESC, export_id, frame_id ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var frames []*nftmeta.ExportedFrame
	for rows.Next() {
		var f nftmeta.ExportedFrame
		var attributes, exportedAt string

		if err := rows.Scan(&f.ID, &f.ExportID, &f.FileKey, &f.PageIndex, &f.Frame.FrameID,
			&f.Frame.Name, &attributes, &f.ContentHash, &exportedAt); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(attributes), &f.Frame.Attributes); err != nil {
			return nil, fmt.Errorf("failed to decode attributes of frame %s: %w", f.ID, err)
		}

		if f.ExportedAt, err = parseTimestamp(exportedAt, "exported_at"); err != nil {
			return nil, err
		}

		frames = append(frames, &f)
	}

	return frames, rows.Err()
}

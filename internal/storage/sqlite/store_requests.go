package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/accessrequest"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/storage"
)

const accessRequestColumns = "id, requester_id, requester_name, area_name, justification, status, decided_by, created_at, updated_at"

func scanAccessRequest(scan func(dest ...any) error) (accessrequest.AccessRequest, error) {
	var r accessrequest.AccessRequest
	var status string
	var createdAt int64
	var updatedAt sql.NullInt64
	if err := scan(
		&r.ID,
		&r.RequesterID,
		&r.RequesterName,
		&r.AreaName,
		&r.Justification,
		&status,
		&r.DecidedBy,
		&createdAt,
		&updatedAt,
	); err != nil {
		return accessrequest.AccessRequest{}, err
	}
	r.Status = accessrequest.Status(status)
	r.CreatedAt = fromMillis(createdAt)
	if updatedAt.Valid {
		value := fromMillis(updatedAt.Int64)
		r.UpdatedAt = &value
	}
	return r, nil
}

// InsertAccessRequest persists a new access request. The partial unique
// index on pending rows turns a concurrent duplicate into
// storage.ErrDuplicatePending rather than a second live request.
func (s *Store) InsertAccessRequest(ctx context.Context, r accessrequest.AccessRequest) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("store is not initialized")
	}
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("access request id is required")
	}

	var updatedAt sql.NullInt64
	if r.UpdatedAt != nil {
		updatedAt = sql.NullInt64{Int64: toMillis(*r.UpdatedAt), Valid: true}
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO access_requests (id, requester_id, requester_name, area_name, justification, status, decided_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		r.ID,
		r.RequesterID,
		r.RequesterName,
		r.AreaName,
		r.Justification,
		string(r.Status),
		r.DecidedBy,
		toMillis(r.CreatedAt),
		updatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "access_requests.requester_id") {
			return storage.ErrDuplicatePending
		}
		return fmt.Errorf("insert access request: %w", err)
	}
	return nil
}

// GetAccessRequest loads an access request by ID.
func (s *Store) GetAccessRequest(ctx context.Context, requestID string) (accessrequest.AccessRequest, error) {
	if s == nil || s.sqlDB == nil {
		return accessrequest.AccessRequest{}, fmt.Errorf("store is not initialized")
	}
	if strings.TrimSpace(requestID) == "" {
		return accessrequest.AccessRequest{}, fmt.Errorf("access request id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT `+accessRequestColumns+`
FROM access_requests
WHERE id = ?
`, requestID)
	r, err := scanAccessRequest(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return accessrequest.AccessRequest{}, storage.ErrNotFound
	}
	if err != nil {
		return accessrequest.AccessRequest{}, fmt.Errorf("get access request: %w", err)
	}
	return r, nil
}

// FindPendingAccessRequest looks up the live request for a requester and
// area, if any.
func (s *Store) FindPendingAccessRequest(ctx context.Context, requesterID, areaName string) (accessrequest.AccessRequest, error) {
	if s == nil || s.sqlDB == nil {
		return accessrequest.AccessRequest{}, fmt.Errorf("store is not initialized")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT `+accessRequestColumns+`
FROM access_requests
WHERE requester_id = ? AND area_name = ? AND status = 'pending'
`, requesterID, areaName)
	r, err := scanAccessRequest(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return accessrequest.AccessRequest{}, storage.ErrNotFound
	}
	if err != nil {
		return accessrequest.AccessRequest{}, fmt.Errorf("find pending access request: %w", err)
	}
	return r, nil
}

// SettleAccessRequest moves a pending request to a terminal status in one
// conditional write. Of two concurrent deciders exactly one succeeds; the
// other observes storage.ErrAlreadyProcessed.
func (s *Store) SettleAccessRequest(ctx context.Context, requestID string, status accessrequest.Status, decidedBy string, decidedAt time.Time) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("store is not initialized")
	}
	if strings.TrimSpace(requestID) == "" {
		return fmt.Errorf("access request id is required")
	}
	if status != accessrequest.StatusApproved && status != accessrequest.StatusRejected {
		return fmt.Errorf("settle status must be terminal, got %q", status)
	}

	result, err := s.sqlDB.ExecContext(ctx, `
UPDATE access_requests
SET status = ?, decided_by = ?, updated_at = ?
WHERE id = ? AND status = 'pending'
`,
		string(status),
		decidedBy,
		toMillis(decidedAt),
		requestID,
	)
	if err != nil {
		return fmt.Errorf("settle access request: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("settle access request: %w", err)
	}
	if affected == 1 {
		return nil
	}

	var exists int
	row := s.sqlDB.QueryRowContext(ctx, `SELECT 1 FROM access_requests WHERE id = ?`, requestID)
	if err := row.Scan(&exists); errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	} else if err != nil {
		return fmt.Errorf("settle access request: %w", err)
	}
	return storage.ErrAlreadyProcessed
}

// ListAccessRequests returns all access requests, newest first.
func (s *Store) ListAccessRequests(ctx context.Context) ([]accessrequest.AccessRequest, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("store is not initialized")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT `+accessRequestColumns+`
FROM access_requests
ORDER BY created_at DESC, id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list access requests: %w", err)
	}
	defer rows.Close()

	var requests []accessrequest.AccessRequest
	for rows.Next() {
		r, err := scanAccessRequest(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan access request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list access requests: %w", err)
	}
	return requests, nil
}

package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/storage"
)

// AppendAuditEvent records one audit event. The trail is append-only; there
// is no update or delete path.
func (s *Store) AppendAuditEvent(ctx context.Context, event storage.AuditEvent) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("store is not initialized")
	}
	if strings.TrimSpace(event.ID) == "" {
		return fmt.Errorf("audit event id is required")
	}
	if strings.TrimSpace(event.Name) == "" {
		return fmt.Errorf("audit event name is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO audit_events (id, name, actor_id, subject_id, outcome, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`,
		event.ID,
		event.Name,
		event.ActorID,
		event.SubjectID,
		event.Outcome,
		toMillis(event.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

// ListAuditEvents returns up to limit audit events, newest first. A
// non-positive limit returns the full trail.
func (s *Store) ListAuditEvents(ctx context.Context, limit int) ([]storage.AuditEvent, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("store is not initialized")
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, name, actor_id, subject_id, outcome, created_at
FROM audit_events
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []storage.AuditEvent
	for rows.Next() {
		var event storage.AuditEvent
		var createdAt int64
		if err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.ActorID,
			&event.SubjectID,
			&event.Outcome,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.CreatedAt = fromMillis(createdAt)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	return events, nil
}

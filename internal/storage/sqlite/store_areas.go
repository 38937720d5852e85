package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/area"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/role"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/storage"
)

const areaColumns = "id, name, description, allowed_roles, active, created_at"

func scanArea(scan func(dest ...any) error) (area.Area, error) {
	var a area.Area
	var allowedRoles string
	var active int64
	var createdAt int64
	if err := scan(
		&a.ID,
		&a.Name,
		&a.Description,
		&allowedRoles,
		&active,
		&createdAt,
	); err != nil {
		return area.Area{}, err
	}
	set, err := role.ParseSet(allowedRoles)
	if err != nil {
		return area.Area{}, fmt.Errorf("stored allowed roles %q: %w", allowedRoles, err)
	}
	a.AllowedRoles = set
	a.Active = active != 0
	a.CreatedAt = fromMillis(createdAt)
	return a, nil
}

// PutArea inserts or replaces an area record keyed by ID.
func (s *Store) PutArea(ctx context.Context, a area.Area) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("store is not initialized")
	}
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("area id is required")
	}

	active := 0
	if a.Active {
		active = 1
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO areas (id, name, description, allowed_roles, active, created_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	description = excluded.description,
	allowed_roles = excluded.allowed_roles,
	active = excluded.active
`,
		a.ID,
		a.Name,
		a.Description,
		a.AllowedRoles.String(),
		active,
		toMillis(a.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err, "areas.name") {
			return storage.ErrAreaNameTaken
		}
		return fmt.Errorf("put area: %w", err)
	}
	return nil
}

// GetArea loads an area by ID.
func (s *Store) GetArea(ctx context.Context, areaID string) (area.Area, error) {
	if s == nil || s.sqlDB == nil {
		return area.Area{}, fmt.Errorf("store is not initialized")
	}
	if strings.TrimSpace(areaID) == "" {
		return area.Area{}, fmt.Errorf("area id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT `+areaColumns+`
FROM areas
WHERE id = ?
`, areaID)
	a, err := scanArea(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return area.Area{}, storage.ErrNotFound
	}
	if err != nil {
		return area.Area{}, fmt.Errorf("get area: %w", err)
	}
	return a, nil
}

// GetAreaByName loads an area by its unique name.
func (s *Store) GetAreaByName(ctx context.Context, name string) (area.Area, error) {
	if s == nil || s.sqlDB == nil {
		return area.Area{}, fmt.Errorf("store is not initialized")
	}
	if strings.TrimSpace(name) == "" {
		return area.Area{}, fmt.Errorf("area name is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT `+areaColumns+`
FROM areas
WHERE name = ?
`, name)
	a, err := scanArea(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return area.Area{}, storage.ErrNotFound
	}
	if err != nil {
		return area.Area{}, fmt.Errorf("get area by name: %w", err)
	}
	return a, nil
}

// ListAreas returns all areas ordered by name.
func (s *Store) ListAreas(ctx context.Context) ([]area.Area, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("store is not initialized")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT `+areaColumns+`
FROM areas
ORDER BY name ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()

	var areas []area.Area
	for rows.Next() {
		a, err := scanArea(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	return areas, nil
}

// DeleteArea removes an area by ID.
func (s *Store) DeleteArea(ctx context.Context, areaID string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("store is not initialized")
	}
	if strings.TrimSpace(areaID) == "" {
		return fmt.Errorf("area id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM areas WHERE id = ?`, areaID)
	if err != nil {
		return fmt.Errorf("delete area: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete area: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

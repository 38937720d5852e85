package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/account"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/role"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/storage"
)

const accountColumns = "id, email, password_hash, full_name, role, active, created_at, updated_at"

func scanAccount(scan func(dest ...any) error) (account.Account, error) {
	var a account.Account
	var roleValue string
	var active int64
	var createdAt int64
	var updatedAt int64
	if err := scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.FullName,
		&roleValue,
		&active,
		&createdAt,
		&updatedAt,
	); err != nil {
		return account.Account{}, err
	}
	a.Role = role.Role(roleValue)
	a.Active = active != 0
	a.CreatedAt = fromMillis(createdAt)
	a.UpdatedAt = fromMillis(updatedAt)
	return a, nil
}

// PutAccount inserts or replaces an account record keyed by ID.
func (s *Store) PutAccount(ctx context.Context, a account.Account) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("store is not initialized")
	}
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("account id is required")
	}

	active := 0
	if a.Active {
		active = 1
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO accounts (id, email, password_hash, full_name, role, active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	email = excluded.email,
	password_hash = excluded.password_hash,
	full_name = excluded.full_name,
	role = excluded.role,
	active = excluded.active,
	updated_at = excluded.updated_at
`,
		a.ID,
		a.Email,
		a.PasswordHash,
		a.FullName,
		string(a.Role),
		active,
		toMillis(a.CreatedAt),
		toMillis(a.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err, "accounts.email") {
			return storage.ErrEmailTaken
		}
		return fmt.Errorf("put account: %w", err)
	}
	return nil
}

// GetAccount loads an account by ID.
func (s *Store) GetAccount(ctx context.Context, accountID string) (account.Account, error) {
	if s == nil || s.sqlDB == nil {
		return account.Account{}, fmt.Errorf("store is not initialized")
	}
	if strings.TrimSpace(accountID) == "" {
		return account.Account{}, fmt.Errorf("account id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT `+accountColumns+`
FROM accounts
WHERE id = ?
`, accountID)
	a, err := scanAccount(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return account.Account{}, storage.ErrNotFound
	}
	if err != nil {
		return account.Account{}, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// GetAccountByEmail loads an account by its unique email.
func (s *Store) GetAccountByEmail(ctx context.Context, email string) (account.Account, error) {
	if s == nil || s.sqlDB == nil {
		return account.Account{}, fmt.Errorf("store is not initialized")
	}
	if strings.TrimSpace(email) == "" {
		return account.Account{}, fmt.Errorf("email is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT `+accountColumns+`
FROM accounts
WHERE email = ?
`, email)
	a, err := scanAccount(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return account.Account{}, storage.ErrNotFound
	}
	if err != nil {
		return account.Account{}, fmt.Errorf("get account by email: %w", err)
	}
	return a, nil
}

// ListAccounts returns all accounts ordered by creation time.
func (s *Store) ListAccounts(ctx context.Context) ([]account.Account, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("store is not initialized")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT `+accountColumns+`
FROM accounts
ORDER BY created_at ASC, id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []account.Account
	for rows.Next() {
		a, err := scanAccount(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// DeleteAccount removes an account by ID.
func (s *Store) DeleteAccount(ctx context.Context, accountID string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("store is not initialized")
	}
	if strings.TrimSpace(accountID) == "" {
		return fmt.Errorf("account id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, accountID)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

package account

import (
	"testing"
	"time"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/role"
	apperrors "github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/errors"
)

func TestCreateAccount(t *testing.T) {
	createdAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	got, err := Create(CreateInput{
		Email:        " Bruce@Wayne.com ",
		FullName:     " Bruce Wayne ",
		PasswordHash: "$2a$10$digest",
		Role:         role.Administrator,
	}, func() time.Time { return createdAt }, func() (string, error) { return "acct-1", nil })
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if got.ID != "acct-1" {
		t.Fatalf("id = %q, want %q", got.ID, "acct-1")
	}
	if got.Email != "bruce@wayne.com" {
		t.Fatalf("email = %q, want lowercase", got.Email)
	}
	if got.FullName != "Bruce Wayne" {
		t.Fatalf("full name = %q", got.FullName)
	}
	if !got.Active {
		t.Fatal("expected new account to be active")
	}
	if !got.CreatedAt.Equal(createdAt) || !got.UpdatedAt.Equal(createdAt) {
		t.Fatalf("timestamps = (%v, %v), want %v", got.CreatedAt, got.UpdatedAt, createdAt)
	}
}

func TestNormalizeCreateInputRejections(t *testing.T) {
	valid := CreateInput{
		Email:        "dick@grayson.com",
		FullName:     "Dick Grayson",
		PasswordHash: "$2a$10$digest",
		Role:         role.Manager,
	}

	cases := []struct {
		name   string
		mutate func(CreateInput) CreateInput
		want   apperrors.Code
	}{
		{"empty email", func(in CreateInput) CreateInput { in.Email = " "; return in }, apperrors.CodeInvalidInput},
		{"no at sign", func(in CreateInput) CreateInput { in.Email = "grayson"; return in }, apperrors.CodeInvalidInput},
		{"empty name", func(in CreateInput) CreateInput { in.FullName = ""; return in }, apperrors.CodeInvalidInput},
		{"empty hash", func(in CreateInput) CreateInput { in.PasswordHash = ""; return in }, apperrors.CodeInvalidInput},
		{"bad role", func(in CreateInput) CreateInput { in.Role = role.Role("root"); return in }, apperrors.CodeRoleInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeCreateInput(tc.mutate(valid))
			if !apperrors.IsCode(err, tc.want) {
				t.Fatalf("code = %v, want %v", apperrors.GetCode(err), tc.want)
			}
		})
	}
}

func TestSetActive(t *testing.T) {
	updatedAt := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)
	a := Account{ID: "acct-1", Active: true}

	got := SetActive(a, false, func() time.Time { return updatedAt })
	if got.Active {
		t.Fatal("expected account to be inactive")
	}
	if !got.UpdatedAt.Equal(updatedAt) {
		t.Fatalf("updated_at = %v, want %v", got.UpdatedAt, updatedAt)
	}
}

func TestChangeRole(t *testing.T) {
	updatedAt := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)
	a := Account{ID: "acct-1", Role: role.Basic}

	got, err := ChangeRole(a, role.Manager, func() time.Time { return updatedAt })
	if err != nil {
		t.Fatalf("change role: %v", err)
	}
	if got.Role != role.Manager {
		t.Fatalf("role = %q, want manager", got.Role)
	}

	if _, err := ChangeRole(a, role.Role("root"), nil); !apperrors.IsCode(err, apperrors.CodeRoleInvalid) {
		t.Fatalf("code = %v, want ROLE_INVALID", apperrors.GetCode(err))
	}
}

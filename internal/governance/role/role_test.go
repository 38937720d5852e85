package role

import (
	"errors"
	"testing"

	apperrors "github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/errors"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"basic", Basic, false},
		{"manager", Manager, false},
		{"administrator", Administrator, false},
		{" Administrator ", Administrator, false},
		{"MANAGER", Manager, false},
		{"", "", true},
		{"root", "", true},
		{"admin", "", true},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tc.in)
			}
			if !apperrors.IsCode(err, apperrors.CodeRoleInvalid) {
				t.Fatalf("Parse(%q): code = %v, want ROLE_INVALID", tc.in, apperrors.GetCode(err))
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAtLeastIsMonotonic(t *testing.T) {
	ordered := []Role{Basic, Manager, Administrator}
	for i, r := range ordered {
		for j, minimum := range ordered {
			want := i >= j
			if got := r.AtLeast(minimum); got != want {
				t.Fatalf("%s.AtLeast(%s) = %v, want %v", r, minimum, got, want)
			}
		}
	}
}

func TestAtLeastRejectsInvalidRoles(t *testing.T) {
	if Role("root").AtLeast(Basic) {
		t.Fatal("invalid role must never satisfy a tier check")
	}
	if Administrator.AtLeast(Role("root")) {
		t.Fatal("invalid minimum must never be satisfied")
	}
}

func TestParseSet(t *testing.T) {
	set, err := ParseSet("administrator, manager")
	if err != nil {
		t.Fatalf("parse set: %v", err)
	}
	if !set.Contains(Administrator) || !set.Contains(Manager) {
		t.Fatalf("unexpected membership: %v", set)
	}
	if set.Contains(Basic) {
		t.Fatal("basic must not be a member")
	}
	if got := set.String(); got != "administrator,manager" {
		t.Fatalf("String() = %q, want %q", got, "administrator,manager")
	}
}

func TestParseSetRejectsEmpty(t *testing.T) {
	for _, in := range []string{"", " , ", ","} {
		_, err := ParseSet(in)
		if !apperrors.IsCode(err, apperrors.CodeAreaNoAllowedRoles) {
			t.Fatalf("ParseSet(%q): code = %v, want AREA_NO_ALLOWED_ROLES", in, apperrors.GetCode(err))
		}
	}
}

func TestParseSetRejectsUnknownRole(t *testing.T) {
	_, err := ParseSet("manager,superuser")
	if !apperrors.IsCode(err, apperrors.CodeRoleInvalid) {
		t.Fatalf("code = %v, want ROLE_INVALID", apperrors.GetCode(err))
	}
}

func TestNewSetRejectsInvalid(t *testing.T) {
	if _, err := NewSet(); err == nil {
		t.Fatal("expected error for empty set")
	}
	if _, err := NewSet(Role("root")); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

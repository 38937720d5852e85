package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/accessrequest"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/credential"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/role"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/storage/sqlite"
)

func TestRunSeedsDemoData(t *testing.T) {
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "governance.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()
	verifier := credential.NewVerifier(4)

	if err := Run(ctx, store, verifier); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	accounts, err := store.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("ListAccounts() error = %v", err)
	}
	if len(accounts) != 3 {
		t.Fatalf("len(accounts) = %d, want 3", len(accounts))
	}

	bruce, err := store.GetAccountByEmail(ctx, "bruce@wayne.com")
	if err != nil {
		t.Fatalf("GetAccountByEmail() error = %v", err)
	}
	if bruce.Role != role.Administrator || !bruce.Active {
		t.Errorf("bruce = %+v", bruce)
	}
	if !verifier.Verify("batman123", bruce.PasswordHash) {
		t.Error("seeded password does not verify")
	}

	serverRoom, err := store.GetAreaByName(ctx, "Server Room")
	if err != nil {
		t.Fatalf("GetAreaByName() error = %v", err)
	}
	if !serverRoom.AllowedRoles.Contains(role.Administrator) || !serverRoom.AllowedRoles.Contains(role.Manager) {
		t.Errorf("AllowedRoles = %v", serverRoom.AllowedRoles)
	}
	if serverRoom.AllowedRoles.Contains(role.Basic) {
		t.Error("basic should not be allowed in the seeded area")
	}

	requests, err := store.ListAccessRequests(ctx)
	if err != nil {
		t.Fatalf("ListAccessRequests() error = %v", err)
	}
	if len(requests) != 1 || requests[0].Status != accessrequest.StatusPending {
		t.Fatalf("requests = %+v", requests)
	}
	if requests[0].RequesterName != "Damian Wayne" || requests[0].AreaName != "Server Room" {
		t.Errorf("seeded request = %+v", requests[0])
	}
}

func TestRunIsIdempotent(t *testing.T) {
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "governance.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()
	verifier := credential.NewVerifier(4)

	if err := Run(ctx, store, verifier); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if err := Run(ctx, store, verifier); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	accounts, err := store.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("ListAccounts() error = %v", err)
	}
	if len(accounts) != 3 {
		t.Errorf("len(accounts) = %d, want 3", len(accounts))
	}
	requests, err := store.ListAccessRequests(ctx)
	if err != nil {
		t.Fatalf("ListAccessRequests() error = %v", err)
	}
	if len(requests) != 1 {
		t.Errorf("len(requests) = %d, want 1", len(requests))
	}
}

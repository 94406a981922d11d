package internal

import (
	"context"
	"testing"
)

func TestMemStoreRegistrationLifecycle(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	rec, _ := ValidateRegistration(validInput())
	created, err := s.CreateRegistration(ctx, rec)
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != 1 || created.CreatedAt.IsZero() {
		t.Fatalf("id/createdAt not assigned: %+v", created)
	}

	// createdAt is immutable through updates
	created.City = "Казань"
	created.CreatedAt = created.CreatedAt.AddDate(1, 0, 0)
	updated, err := s.UpdateRegistration(ctx, created)
	if err != nil {
		t.Fatal(err)
	}
	stored, _ := s.GetRegistration(ctx, 1)
	if !stored.CreatedAt.Equal(updated.CreatedAt) {
		t.Fatal("update response and stored record disagree on createdAt")
	}
	if stored.City != "Казань" {
		t.Fatalf("update lost: %+v", stored)
	}

	if _, err := s.GetRegistration(ctx, 42); err != ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := s.UpdateRegistration(ctx, Registration{ID: 42}); err != ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := s.DeleteRegistration(ctx, 42); err != ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	if err := s.DeleteRegistration(ctx, 1); err != nil {
		t.Fatal(err)
	}
	regs, _ := s.ListRegistrations(ctx)
	if len(regs) != 0 {
		t.Fatalf("list not empty after delete: %d", len(regs))
	}
}

func TestMemStoreUserUpsert(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if _, err := s.GetUserByUsername(ctx, "admin"); err != ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := s.UpsertUser(ctx, "admin", "hash1"); err != nil {
		t.Fatal(err)
	}
	if err := s.UpsertUser(ctx, "admin", "hash2"); err != nil {
		t.Fatal(err)
	}
	u, err := s.GetUserByUsername(ctx, "admin")
	if err != nil {
		t.Fatal(err)
	}
	if u.PassHash != "hash2" {
		t.Fatalf("upsert did not replace hash: %q", u.PassHash)
	}
}

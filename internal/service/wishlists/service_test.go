package wishlists

import (
	"context"
	"errors"
	"testing"

	"github.com/covet-app/covet/internal/domain"
	"github.com/covet-app/covet/internal/store/storetest"
)

var (
	alice = domain.Actor{ID: "alice-id", Email: "alice@example.com", Username: "alice"}
	bob   = domain.Actor{ID: "bob-id", Email: "bob@example.com", Username: "bob"}
	carol = domain.Actor{ID: "carol-id", Email: "carol@example.com", Username: "carol"}
)

func newFixture(t *testing.T) (*Service, *storetest.Store) {
	t.Helper()
	st := storetest.New()
	return NewService(st.Wishlists()), st
}

func TestCreate(t *testing.T) {
	svc, _ := newFixture(t)

	w, err := svc.Create(context.Background(), alice, "Birthday", "gift ideas")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if w.ID == "" {
		t.Error("Create() returned empty id")
	}
	if w.CreatedBy != alice.ID || w.CreatedByUsername != alice.Username {
		t.Errorf("Create() owner = %v/%v, want alice", w.CreatedBy, w.CreatedByUsername)
	}
	if w.Members == nil || len(w.Members) != 0 {
		t.Errorf("Create() members = %v, want empty non-nil", w.Members)
	}
	if w.Products == nil || len(w.Products) != 0 {
		t.Errorf("Create() products = %v, want empty non-nil", w.Products)
	}
	if !w.IsMember(alice.ID) {
		t.Error("owner should count as a member")
	}
}

func TestCreateRequiresName(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.Create(context.Background(), alice, "   ", "desc")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Create() error = %v, want ErrValidation", err)
	}
}

func TestGetVisibility(t *testing.T) {
	svc, st := newFixture(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, alice, "Birthday", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := st.Wishlists().AddMembers(ctx, w.ID, alice.ID, []domain.UserSummary{{ID: bob.ID, Username: bob.Username}}); err != nil {
		t.Fatalf("AddMembers() error = %v", err)
	}

	tests := []struct {
		name    string
		caller  string
		wantErr error
	}{
		{name: "owner sees it", caller: alice.ID},
		{name: "member sees it", caller: bob.ID},
		{name: "outsider gets not found", caller: carol.ID, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Get(ctx, w.ID, tt.caller)
			if tt.wantErr == nil && err != nil {
				t.Errorf("Get() error = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Get() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestListForUser(t *testing.T) {
	svc, st := newFixture(t)
	ctx := context.Background()

	owned, err := svc.Create(ctx, alice, "Owned", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	joined, err := svc.Create(ctx, bob, "Joined", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := st.Wishlists().AddMembers(ctx, joined.ID, bob.ID, []domain.UserSummary{{ID: alice.ID, Username: alice.Username}}); err != nil {
		t.Fatalf("AddMembers() error = %v", err)
	}
	if _, err := svc.Create(ctx, carol, "Unrelated", ""); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	lists, err := svc.List(ctx, alice.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("List() returned %d wishlists, want 2", len(lists))
	}
	ids := map[string]bool{lists[0].ID: true, lists[1].ID: true}
	if !ids[owned.ID] || !ids[joined.ID] {
		t.Errorf("List() = %v, want owned and joined wishlists", ids)
	}
}

func TestUpdateMetadataOwnerOnly(t *testing.T) {
	svc, st := newFixture(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, alice, "Birthday", "old")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := st.Wishlists().AddMembers(ctx, w.ID, alice.ID, []domain.UserSummary{{ID: bob.ID, Username: bob.Username}}); err != nil {
		t.Fatalf("AddMembers() error = %v", err)
	}

	if err := svc.UpdateMetadata(ctx, w.ID, bob.ID, "Hijacked", "new"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("member UpdateMetadata() error = %v, want ErrNotFound", err)
	}
	got, err := svc.Get(ctx, w.ID, alice.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Birthday" {
		t.Errorf("denied update still changed the name to %q", got.Name)
	}

	if err := svc.UpdateMetadata(ctx, w.ID, alice.ID, "Renamed", "new"); err != nil {
		t.Fatalf("owner UpdateMetadata() error = %v", err)
	}
	got, err = svc.Get(ctx, w.ID, alice.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Renamed" || got.Description != "new" {
		t.Errorf("UpdateMetadata() = %q/%q, want Renamed/new", got.Name, got.Description)
	}
}

func TestUpdateMetadataRequiresName(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, alice, "Birthday", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := svc.UpdateMetadata(ctx, w.ID, alice.ID, "", "desc"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("UpdateMetadata() error = %v, want ErrValidation", err)
	}
}

func TestDeleteOwnerOnly(t *testing.T) {
	svc, st := newFixture(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, alice, "Birthday", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := st.Wishlists().AddMembers(ctx, w.ID, alice.ID, []domain.UserSummary{{ID: bob.ID, Username: bob.Username}}); err != nil {
		t.Fatalf("AddMembers() error = %v", err)
	}

	if err := svc.Delete(ctx, w.ID, bob.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("member Delete() error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Get(ctx, w.ID, alice.ID); err != nil {
		t.Fatalf("wishlist vanished after denied delete: %v", err)
	}

	if err := svc.Delete(ctx, w.ID, alice.ID); err != nil {
		t.Fatalf("owner Delete() error = %v", err)
	}
	if _, err := svc.Get(ctx, w.ID, alice.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/covet-app/covet/internal/domain"
	"github.com/covet-app/covet/internal/logger"
	"github.com/covet-app/covet/internal/service/auth"
	"github.com/covet-app/covet/internal/service/directory"
	"github.com/covet-app/covet/internal/service/membership"
	"github.com/covet-app/covet/internal/service/products"
	"github.com/covet-app/covet/internal/service/wishlists"
	"github.com/covet-app/covet/internal/store/storetest"
)

// TestCollaborationScenario walks the full lifecycle: three people sign up,
// one creates a wishlist, invites the others, products get added, edited and
// removed under the authorization rules.
func TestCollaborationScenario(t *testing.T) {
	ctx := context.Background()
	log := logger.New("error", false)
	st := storetest.New()

	authSvc := auth.NewService(st.Users(), "integration-secret", time.Hour, log)
	directorySvc := directory.NewService(st.Users(), nil, 10)
	wishlistsSvc := wishlists.NewService(st.Wishlists())
	membershipSvc := membership.NewService(st.Users(), st.Wishlists(), log)
	productsSvc := products.NewService(st.Wishlists())

	// Sign up three users and recover their identities through the token
	// path, exactly as the HTTP layer would.
	signup := func(email, username string) domain.Actor {
		t.Helper()
		if _, err := authSvc.Signup(ctx, email, username, "password123"); err != nil {
			t.Fatalf("Signup(%s) error = %v", username, err)
		}
		token, _, err := authSvc.Login(ctx, email, "password123")
		if err != nil {
			t.Fatalf("Login(%s) error = %v", username, err)
		}
		actor, err := authSvc.Verify(token)
		if err != nil {
			t.Fatalf("Verify(%s) error = %v", username, err)
		}
		return actor
	}

	alice := signup("alice@example.com", "alice")
	bob := signup("bob@example.com", "bob")
	carol := signup("carol@example.com", "carol")

	// Alice finds the others through the directory.
	found, err := directorySvc.Search(ctx, alice.ID, "example.com")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("Search() found %d users, want 2 (caller excluded)", len(found))
	}

	// Alice creates a wishlist and invites bob and carol.
	wl, err := wishlistsSvc.Create(ctx, alice, "Birthday", "gift ideas")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	res, err := membershipSvc.Invite(ctx, wl.ID, alice.ID, []string{bob.ID, carol.ID})
	if err != nil {
		t.Fatalf("Invite() error = %v", err)
	}
	if res.Message != "Successfully invited 2 user(s)" {
		t.Errorf("Invite() message = %q", res.Message)
	}

	// Re-inviting bob is a no-op, not a duplicate.
	if _, err := membershipSvc.Invite(ctx, wl.ID, alice.ID, []string{bob.ID}); !errors.Is(err, domain.ErrNoOp) {
		t.Errorf("re-Invite() error = %v, want ErrNoOp", err)
	}

	// Bob adds a product; carol may see it but not edit it.
	mug, err := productsSvc.Add(ctx, wl.ID, bob, products.Fields{Name: "Mug", ImageURL: "https://img/mug.png", Price: 12.5})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	seen, err := wishlistsSvc.Get(ctx, wl.ID, carol.ID)
	if err != nil {
		t.Fatalf("carol Get() error = %v", err)
	}
	if len(seen.Products) != 1 || seen.Products[0].AddedByUsername != "bob" {
		t.Errorf("carol sees products = %v, want bob's mug", seen.Products)
	}
	err = productsSvc.Edit(ctx, wl.ID, mug.ID, carol.ID, products.Fields{Name: "Mine now", Price: 1})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("carol Edit() error = %v, want ErrNotFound", err)
	}

	// The owner deletes bob's product.
	if err := productsSvc.Remove(ctx, wl.ID, mug.ID, alice.ID); err != nil {
		t.Fatalf("owner Remove() error = %v", err)
	}

	// Carol leaves; bob cannot be removed by carol, the owner removes him.
	if err := membershipSvc.Remove(ctx, wl.ID, carol.ID, carol.ID); err != nil {
		t.Fatalf("carol self-Remove() error = %v", err)
	}
	if _, err := wishlistsSvc.Get(ctx, wl.ID, carol.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("carol Get() after leaving error = %v, want ErrNotFound", err)
	}
	if err := membershipSvc.Remove(ctx, wl.ID, alice.ID, bob.ID); err != nil {
		t.Fatalf("owner Remove(bob) error = %v", err)
	}

	// Only alice remains.
	members, err := membershipSvc.ListMembers(ctx, wl.ID, alice.ID)
	if err != nil {
		t.Fatalf("ListMembers() error = %v", err)
	}
	if len(members) != 1 || members[0].ID != alice.ID {
		t.Errorf("ListMembers() = %v, want only alice", members)
	}
}

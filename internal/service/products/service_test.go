package products

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/covet-app/covet/internal/domain"
	"github.com/covet-app/covet/internal/store/storetest"
)

var (
	alice = domain.Actor{ID: "alice-id", Username: "alice"}
	bob   = domain.Actor{ID: "bob-id", Username: "bob"}
	carol = domain.Actor{ID: "carol-id", Username: "carol"}
)

// newFixture returns a service over a wishlist owned by alice with bob as
// member; carol stays an outsider.
func newFixture(t *testing.T) (*Service, *storetest.Store, string) {
	t.Helper()
	st := storetest.New()
	ctx := context.Background()

	now := time.Now().UTC()
	w := &domain.Wishlist{
		ID:                "wl-1",
		Name:              "Birthday",
		CreatedBy:         alice.ID,
		CreatedByUsername: alice.Username,
		Members:           []string{bob.ID},
		MemberUsernames:   []string{bob.Username},
		Products:          []domain.Product{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := st.Wishlists().Create(ctx, w); err != nil {
		t.Fatalf("seed wishlist: %v", err)
	}
	return NewService(st.Wishlists()), st, w.ID
}

func TestAdd(t *testing.T) {
	svc, st, wlID := newFixture(t)
	ctx := context.Background()

	p, err := svc.Add(ctx, wlID, bob, Fields{Name: "  Mug  ", ImageURL: "https://img/mug.png", Price: 12.5})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if p.ID == "" {
		t.Error("Add() returned empty product id")
	}
	if p.Name != "Mug" {
		t.Errorf("Add() name = %q, want trimmed %q", p.Name, "Mug")
	}
	if p.AddedBy != bob.ID || p.AddedByUsername != bob.Username {
		t.Errorf("Add() provenance = %v/%v, want bob", p.AddedBy, p.AddedByUsername)
	}
	if p.AddedAt.IsZero() {
		t.Error("Add() left AddedAt unset")
	}

	got, err := st.Wishlists().GetIfVisible(ctx, wlID, alice.ID)
	if err != nil {
		t.Fatalf("GetIfVisible() error = %v", err)
	}
	if len(got.Products) != 1 || got.Products[0].ID != p.ID {
		t.Errorf("wishlist products = %v, want the added product", got.Products)
	}
}

func TestAddByOutsider(t *testing.T) {
	svc, _, wlID := newFixture(t)

	_, err := svc.Add(context.Background(), wlID, carol, Fields{Name: "Mug", Price: 1})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Add() error = %v, want ErrNotFound", err)
	}
}

func TestAddValidation(t *testing.T) {
	svc, _, wlID := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		fields Fields
	}{
		{name: "empty name", fields: Fields{Name: "   ", Price: 1}},
		{name: "negative price", fields: Fields{Name: "Mug", Price: -0.01}},
		{name: "nan price", fields: Fields{Name: "Mug", Price: math.NaN()}},
		{name: "inf price", fields: Fields{Name: "Mug", Price: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Add(ctx, wlID, bob, tt.fields); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Add() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestEditAdderOnly(t *testing.T) {
	svc, st, wlID := newFixture(t)
	ctx := context.Background()

	p, err := svc.Add(ctx, wlID, bob, Fields{Name: "Mug", Price: 12.5})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// Not even the owner may edit another member's product.
	for _, caller := range []string{alice.ID, carol.ID} {
		if err := svc.Edit(ctx, wlID, p.ID, caller, Fields{Name: "Hijacked", Price: 1}); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Edit() by %s error = %v, want ErrNotFound", caller, err)
		}
	}

	if err := svc.Edit(ctx, wlID, p.ID, bob.ID, Fields{Name: "Big Mug", ImageURL: "https://img/big.png", Price: 15}); err != nil {
		t.Fatalf("adder Edit() error = %v", err)
	}

	got, err := st.Wishlists().GetIfVisible(ctx, wlID, alice.ID)
	if err != nil {
		t.Fatalf("GetIfVisible() error = %v", err)
	}
	edited := got.Products[0]
	if edited.Name != "Big Mug" || edited.ImageURL != "https://img/big.png" || edited.Price != 15 {
		t.Errorf("Edit() result = %+v", edited)
	}
	if edited.AddedBy != bob.ID || edited.ID != p.ID {
		t.Errorf("Edit() changed identity or provenance: %+v", edited)
	}
}

func TestEditUnknownProduct(t *testing.T) {
	svc, _, wlID := newFixture(t)

	err := svc.Edit(context.Background(), wlID, "ghost-product", bob.ID, Fields{Name: "Mug", Price: 1})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Edit() error = %v, want ErrNotFound", err)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name    string
		caller  string
		wantErr error
	}{
		{name: "adder removes own", caller: bob.ID},
		{name: "owner removes any", caller: alice.ID},
		{name: "other member denied", caller: "dave-id", wantErr: domain.ErrNotFound},
		{name: "outsider denied", caller: carol.ID, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st, wlID := newFixture(t)
			ctx := context.Background()

			// dave joins as a second non-adder member.
			if err := st.Wishlists().AddMembers(ctx, wlID, alice.ID, []domain.UserSummary{{ID: "dave-id", Username: "dave"}}); err != nil {
				t.Fatalf("AddMembers() error = %v", err)
			}

			p, err := svc.Add(ctx, wlID, bob, Fields{Name: "Mug", Price: 12.5})
			if err != nil {
				t.Fatalf("Add() error = %v", err)
			}

			err = svc.Remove(ctx, wlID, p.ID, tt.caller)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Remove() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Remove() error = %v", err)
			}

			got, err := st.Wishlists().GetIfVisible(ctx, wlID, alice.ID)
			if err != nil {
				t.Fatalf("GetIfVisible() error = %v", err)
			}
			if len(got.Products) != 0 {
				t.Errorf("product still present after Remove(): %v", got.Products)
			}
		})
	}
}

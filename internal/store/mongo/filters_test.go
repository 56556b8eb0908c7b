package mongo

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestVisibleTo(t *testing.T) {
	got := visibleTo("wl-1", "alice")
	want := bson.M{
		"_id": "wl-1",
		"$or": bson.A{
			bson.M{"created_by": "alice"},
			bson.M{"members": "alice"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visibleTo() = %v, want %v", got, want)
	}
}

func TestMemberRemovableBy(t *testing.T) {
	tests := []struct {
		name   string
		caller string
		target string
		want   bson.M
	}{
		{
			name:   "self removal must exclude the owner",
			caller: "bob",
			target: "bob",
			want: bson.M{
				"_id":        "wl-1",
				"created_by": bson.M{"$ne": "bob"},
				"members":    "bob",
			},
		},
		{
			name:   "owner removing another member",
			caller: "alice",
			target: "bob",
			want: bson.M{
				"_id":        "wl-1",
				"created_by": "alice",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := memberRemovableBy("wl-1", tt.caller, tt.target)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("memberRemovableBy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOwnerSelfRemovalMatchesNothing(t *testing.T) {
	// Owner "self-requesting" removal compiles to a filter that can never
	// match the owner's own document: created_by must both equal the
	// wishlist owner and not equal the target.
	f := memberRemovableBy("wl-1", "alice", "alice")
	ne, ok := f["created_by"].(bson.M)
	if !ok {
		t.Fatalf("expected $ne clause on created_by, got %v", f["created_by"])
	}
	if ne["$ne"] != "alice" {
		t.Errorf("filter should exclude documents owned by the target, got %v", ne)
	}
}

func TestProductEditableByBindsOneElement(t *testing.T) {
	got := productEditableBy("wl-1", "p-1", "bob")
	want := bson.M{
		"_id": "wl-1",
		"products": bson.M{"$elemMatch": bson.M{
			"_id":      "p-1",
			"added_by": "bob",
		}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("productEditableBy() = %v, want %v", got, want)
	}
}

func TestProductRemovableBy(t *testing.T) {
	got := productRemovableBy("wl-1", "p-1", "alice")
	want := bson.M{
		"_id":          "wl-1",
		"products._id": "p-1",
		"$or": bson.A{
			bson.M{"created_by": "alice"},
			bson.M{"products": bson.M{"$elemMatch": bson.M{
				"_id":      "p-1",
				"added_by": "alice",
			}}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("productRemovableBy() = %v, want %v", got, want)
	}
}

package domain

import "time"

// Product is an embedded child of exactly one Wishlist. AddedByUsername is a
// denormalized copy of the adder's username at insertion time and may go
// stale if the user renames.
type Product struct {
	ID              string    `bson:"_id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	ImageURL        string    `bson:"image_url" json:"imageUrl"`
	Price           float64   `bson:"price" json:"price"`
	AddedBy         string    `bson:"added_by" json:"addedBy"`
	AddedByUsername string    `bson:"added_by_username" json:"addedByUsername"`
	AddedAt         time.Time `bson:"added_at" json:"addedAt"`
}

// Wishlist is the aggregate root: one document holding the member arrays and
// the embedded products, updated only through single-document conditional
// writes.
//
// Members and MemberUsernames are parallel arrays: MemberUsernames[i] is the
// username of Members[i] at invitation time. The owner is implicitly a member
// and is never stored in Members.
type Wishlist struct {
	ID                string    `bson:"_id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Description       string    `bson:"description" json:"description"`
	CreatedBy         string    `bson:"created_by" json:"createdBy"`
	CreatedByUsername string    `bson:"created_by_username" json:"createdByUsername"`
	Members           []string  `bson:"members" json:"members"`
	MemberUsernames   []string  `bson:"member_usernames" json:"memberUsernames"`
	Products          []Product `bson:"products" json:"products"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsOwner reports whether userID owns the wishlist.
func (w *Wishlist) IsOwner(userID string) bool {
	return w.CreatedBy == userID
}

// IsMember reports whether userID may see the wishlist (owner or invited).
func (w *Wishlist) IsMember(userID string) bool {
	if w.CreatedBy == userID {
		return true
	}
	for _, id := range w.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// Product returns the embedded product with the given id, if present.
func (w *Wishlist) Product(productID string) (Product, bool) {
	for _, p := range w.Products {
		if p.ID == productID {
			return p, true
		}
	}
	return Product{}, false
}

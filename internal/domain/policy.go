package domain

// Authorization policy: pure decision functions over a fetched wishlist and a
// caller id. The mongo store compiles each of these into a filter evaluated
// atomically with the write itself, so a check here is never the only gate;
// the in-memory store evaluates them directly.

// CanView allows the owner and invited members.
func CanView(w *Wishlist, callerID string) bool {
	return w.IsMember(callerID)
}

// CanEditMetadata allows only the owner to rename or re-describe.
func CanEditMetadata(w *Wishlist, callerID string) bool {
	return w.IsOwner(callerID)
}

// CanDelete allows only the owner to destroy the wishlist.
func CanDelete(w *Wishlist, callerID string) bool {
	return w.IsOwner(callerID)
}

// CanInvite allows only the owner to grow the member set.
func CanInvite(w *Wishlist, callerID string) bool {
	return w.IsOwner(callerID)
}

// CanRemoveMember allows the owner to remove anyone but themselves, and a
// member to remove themselves. The owner can never be removed through this
// path, even by their own request.
func CanRemoveMember(w *Wishlist, callerID, targetID string) bool {
	if w.IsOwner(targetID) {
		return false
	}
	if w.IsOwner(callerID) {
		return true
	}
	return callerID == targetID && w.IsMember(callerID)
}

// CanAddProduct allows the owner and any member to append products.
func CanAddProduct(w *Wishlist, callerID string) bool {
	return w.IsMember(callerID)
}

// CanEditProduct allows only the user who added the product, owner included
// only when they are the adder.
func CanEditProduct(_ *Wishlist, callerID string, p Product) bool {
	return p.AddedBy == callerID
}

// CanDeleteProduct allows the owner and the product's adder.
func CanDeleteProduct(w *Wishlist, callerID string, p Product) bool {
	return w.IsOwner(callerID) || p.AddedBy == callerID
}

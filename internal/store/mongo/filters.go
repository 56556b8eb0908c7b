package mongo

import "go.mongodb.org/mongo-driver/bson"

// Each authorization policy function compiles to exactly one document filter.
// Putting the predicate in the filter makes the check and the mutation one
// atomic server-side step: a concurrent removal or ownership change between
// "check" and "act" cannot slip through, the write simply matches nothing.

// visibleTo compiles CanView: owner or member.
func visibleTo(id, callerID string) bson.M {
	return bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"created_by": callerID},
			bson.M{"members": callerID},
		},
	}
}

// ownedBy compiles CanEditMetadata / CanDelete / CanInvite.
func ownedBy(id, callerID string) bson.M {
	return bson.M{"_id": id, "created_by": callerID}
}

// memberRemovableBy compiles CanRemoveMember. The caller==target branch is
// resolved here, at compile time; the owner-is-never-removable clause stays
// in the filter so a racing ownership change is caught by the server.
func memberRemovableBy(id, callerID, targetID string) bson.M {
	if callerID == targetID {
		// Self-removal: caller must be a plain member, never the owner.
		return bson.M{
			"_id":        id,
			"created_by": bson.M{"$ne": targetID},
			"members":    callerID,
		}
	}
	// Owner removing someone else. created_by == caller != target already
	// implies the target is not the owner.
	return bson.M{
		"_id":        id,
		"created_by": callerID,
	}
}

// productEditableBy compiles CanEditProduct: the embedded product must exist
// and have been added by the caller. $elemMatch binds both conditions to the
// same array element.
func productEditableBy(id, productID, callerID string) bson.M {
	return bson.M{
		"_id": id,
		"products": bson.M{"$elemMatch": bson.M{
			"_id":      productID,
			"added_by": callerID,
		}},
	}
}

// productRemovableBy compiles CanDeleteProduct: the owner may remove any
// product, the adder their own. The product must exist either way, so
// removing an unknown id reports not-found instead of matching vacuously.
func productRemovableBy(id, productID, callerID string) bson.M {
	return bson.M{
		"_id":          id,
		"products._id": productID,
		"$or": bson.A{
			bson.M{"created_by": callerID},
			bson.M{"products": bson.M{"$elemMatch": bson.M{
				"_id":      productID,
				"added_by": callerID,
			}}},
		},
	}
}

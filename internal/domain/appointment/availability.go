package appointment

import (
	"context"

	"github.com/google/uuid"
)

// OverlapFinder answers whether a resource has a scheduled appointment
// intersecting the window, ignoring excludeID when given.
type OverlapFinder interface {
	HasOverlap(ctx context.Context, resource Resource, window Window, excludeID *int64) (bool, error)
}

// CheckAvailability runs the overlap check for the pet and, when present, the
// staff member. The first conflicting resource decides the returned error.
func CheckAvailability(ctx context.Context, finder OverlapFinder, petID int64, staffID *uuid.UUID, window Window, excludeID *int64) error {
	for _, r := range Resources(petID, staffID) {
		busy, err := finder.HasOverlap(ctx, r, window, excludeID)
		if err != nil {
			return err
		}
		if busy {
			return ConflictFor(r.Kind)
		}
	}
	return nil
}

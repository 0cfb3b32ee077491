package service

import (
	"fmt"

	"github.com/google/uuid"
)

// TeamSelector picks one of three listing modes: the zero value requests the
// first page of the caller's teams, AfterID requests the page strictly after
// that ID, and IDs requests an explicit bounded set. AfterID and IDs are
// mutually exclusive; the request-binding layer enforces that along with the
// page-size bound [1,100] and the explicit-set bound [1,32].
type TeamSelector struct {
	AfterID *uuid.UUID
	IDs     []uuid.UUID
}

// resolveTeamPage dispatches a selector into a uniform (ids, hasMore) pair.
// The explicit-set mode returns exactly the requested teams the user belongs
// to; hasMore is always false there since the result is not a page of an
// ordered scan.
func (s *TeamService) resolveTeamPage(userID uuid.UUID, selector TeamSelector, pageSize int) ([]uuid.UUID, bool, error) {
	if len(selector.IDs) > 0 {
		ids, err := s.teamRepo.ListIDsForUserAmong(userID, selector.IDs)
		if err != nil {
			return nil, false, fmt.Errorf("failed to resolve explicit team set: %w", err)
		}
		return ids, false, nil
	}

	ids, hasMore, err := s.teamRepo.ListIDsForUser(userID, selector.AfterID, pageSize)
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve team page: %w", err)
	}
	return ids, hasMore, nil
}

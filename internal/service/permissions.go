package service

import (
	"team-management-backend/internal/database/models"
	apperrors "team-management-backend/internal/errors"

	"github.com/google/uuid"
)

// findMember looks up a user's record in a membership snapshot
func findMember(snapshot []models.TeamMember, userID uuid.UUID) *models.TeamMember {
	for i := range snapshot {
		if snapshot[i].UserID == userID {
			return &snapshot[i]
		}
	}
	return nil
}

// checkPermission evaluates whether the acting user may perform an operation
// requiring the given capability, against a membership snapshot taken at the
// start of the request. A caller absent from the snapshot fails with
// ErrNoTeamMember; a member lacking the capability fails with an
// OperationDeniedError naming it. On success the member record is returned so
// callers can bound sub-permission grants against it.
//
// The snapshot is never re-read mid-request; concurrent permission changes
// during the request are not detected.
func checkPermission(snapshot []models.TeamMember, userID uuid.UUID, capability models.Capability) (*models.TeamMember, error) {
	member := findMember(snapshot, userID)
	if member == nil {
		return nil, apperrors.ErrNoTeamMember
	}
	if !member.Permissions.Contains(capability) {
		return nil, apperrors.NewOperationDeniedError(capability)
	}
	return member, nil
}

// requireMembership checks only that the acting user belongs to the team
func requireMembership(snapshot []models.TeamMember, userID uuid.UUID) (*models.TeamMember, error) {
	member := findMember(snapshot, userID)
	if member == nil {
		return nil, apperrors.ErrNoTeamMember
	}
	return member, nil
}

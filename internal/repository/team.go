package repository

import (
	"team-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetMany retrieves teams for a set of IDs, ordered by ID
func (r *TeamRepository) GetMany(ids []uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("id IN ?", ids).Order("id").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// SetAlive sets the liveness flag of a team
func (r *TeamRepository) SetAlive(id uuid.UUID, alive bool) error {
	return r.db.Model(&models.Team{}).Where("id = ?", id).Update("alive", alive).Error
}

// IsAlive reports whether a team exists and has not entered deletion
func (r *TeamRepository) IsAlive(id uuid.UUID) (bool, error) {
	var team models.Team
	err := r.db.Select("alive").First(&team, "id = ?", id).Error
	if err != nil {
		return false, err
	}
	return team.Alive, nil
}

// Delete deletes a team; team members and team conversations cascade
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}

// ListIDsForUser retrieves a page of team IDs the user belongs to, ordered by
// team ID. A non-nil afterID restricts the scan to IDs strictly greater. The
// hasMore flag is computed with a limit+1 probe so no extra count query runs.
func (r *TeamRepository) ListIDsForUser(userID uuid.UUID, afterID *uuid.UUID, limit int) ([]uuid.UUID, bool, error) {
	query := r.db.Model(&models.TeamMember{}).
		Where("user_id = ?", userID).
		Order("team_id").
		Limit(limit + 1)
	if afterID != nil {
		query = query.Where("team_id > ?", *afterID)
	}

	var ids []uuid.UUID
	if err := query.Pluck("team_id", &ids).Error; err != nil {
		return nil, false, err
	}

	hasMore := len(ids) > limit
	if hasMore {
		ids = ids[:limit]
	}
	return ids, hasMore, nil
}

// ListIDsForUserAmong retrieves, from a caller-supplied ID set, exactly those
// teams the user has a membership record in, ordered by team ID
func (r *TeamRepository) ListIDsForUserAmong(userID uuid.UUID, teamIDs []uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.TeamMember{}).
		Where("user_id = ? AND team_id IN ?", userID, teamIDs).
		Order("team_id").
		Pluck("team_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

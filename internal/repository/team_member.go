package repository

import (
	"team-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create creates a new team member
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// CreateMany creates several team members in one statement
func (r *TeamMemberRepository) CreateMany(members []models.TeamMember) error {
	if len(members) == 0 {
		return nil
	}
	return r.db.Create(&members).Error
}

// Get retrieves a member record by team and user
func (r *TeamMemberRepository) Get(teamID, userID uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByTeam retrieves all members of a team, ordered by user ID
func (r *TeamMemberRepository) ListByTeam(teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Where("team_id = ?", teamID).Order("user_id").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// UpdatePermissions replaces the permission set of a member
func (r *TeamMemberRepository) UpdatePermissions(teamID, userID uuid.UUID, permissions models.PermissionSet) error {
	result := r.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Update("permissions", permissions)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a member record
func (r *TeamMemberRepository) Delete(teamID, userID uuid.UUID) error {
	return r.db.Delete(&models.TeamMember{}, "team_id = ? AND user_id = ?", teamID, userID).Error
}

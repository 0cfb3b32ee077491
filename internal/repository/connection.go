package repository

import (
	"team-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConnectionRepository handles database operations for user connections
type ConnectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(db *gorm.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

// CountAcceptedFrom counts accepted edges from the given user towards the
// given set of users. A fully mutual pairing contributes one row per
// direction, so mutual connectivity with every user in others requires this
// count to equal len(others) for both orientations.
func (r *ConnectionRepository) CountAcceptedFrom(userID uuid.UUID, others []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Connection{}).
		Where("from_user_id = ? AND to_user_id IN ? AND status = ?", userID, others, models.ConnectionStatusAccepted).
		Count(&count).Error
	return count, err
}

// CountAcceptedTo counts accepted edges towards the given user from the given
// set of users
func (r *ConnectionRepository) CountAcceptedTo(userID uuid.UUID, others []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Connection{}).
		Where("from_user_id IN ? AND to_user_id = ? AND status = ?", others, userID, models.ConnectionStatusAccepted).
		Count(&count).Error
	return count, err
}

// Create inserts a connection edge
func (r *ConnectionRepository) Create(conn *models.Connection) error {
	return r.db.Create(conn).Error
}

package service

import (
	"fmt"

	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=connectivity.go -destination=../mocks/connectivity_mocks.go -package=mocks

// ConnectivityChecker verifies that the acting user is mutually connected to a
// set of other users before membership-affecting operations proceed
type ConnectivityChecker interface {
	EnsureConnected(userID uuid.UUID, others []uuid.UUID) error
}

// ConnectionService checks mutual connectivity against the connections table
type ConnectionService struct {
	connectionRepo repository.ConnectionRepositoryInterface
}

// NewConnectionService creates a new connection service
func NewConnectionService(connectionRepo repository.ConnectionRepositoryInterface) *ConnectionService {
	return &ConnectionService{connectionRepo: connectionRepo}
}

// EnsureConnected fails with ErrNotConnected unless every pair (userID, other)
// is accepted in both directions
func (s *ConnectionService) EnsureConnected(userID uuid.UUID, others []uuid.UUID) error {
	if len(others) == 0 {
		return nil
	}

	outgoing, err := s.connectionRepo.CountAcceptedFrom(userID, others)
	if err != nil {
		return fmt.Errorf("failed to check outgoing connections: %w", err)
	}
	incoming, err := s.connectionRepo.CountAcceptedTo(userID, others)
	if err != nil {
		return fmt.Errorf("failed to check incoming connections: %w", err)
	}

	if outgoing != int64(len(others)) || incoming != int64(len(others)) {
		return apperrors.ErrNotConnected
	}
	return nil
}

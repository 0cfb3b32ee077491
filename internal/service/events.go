package service

import (
	"context"
	"fmt"

	"team-management-backend/internal/database/models"
	"team-management-backend/internal/push"

	"github.com/google/uuid"
)

// teamRecipients maps a membership snapshot to a deduplicated recipient set,
// optionally excluding the acting user. The actor is reached through the
// direct per-connection response branch instead, so the broadcast branch must
// not echo to them.
func teamRecipients(members []models.TeamMember, exclude *uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(members))
	recipients := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		if exclude != nil && member.UserID == *exclude {
			continue
		}
		if _, dup := seen[member.UserID]; dup {
			continue
		}
		seen[member.UserID] = struct{}{}
		recipients = append(recipients, member.UserID)
	}
	return recipients
}

// nonTeamRecipients computes the conversation members who are not team
// members. Used when a conversation leaves its team: users who joined the
// conversation independently must still learn it disappeared.
func nonTeamRecipients(conversationMembers []uuid.UUID, teamMembers []models.TeamMember) []uuid.UUID {
	inTeam := make(map[uuid.UUID]struct{}, len(teamMembers))
	for _, member := range teamMembers {
		inTeam[member.UserID] = struct{}{}
	}

	seen := make(map[uuid.UUID]struct{}, len(conversationMembers))
	external := make([]uuid.UUID, 0, len(conversationMembers))
	for _, userID := range conversationMembers {
		if _, member := inTeam[userID]; member {
			continue
		}
		if _, dup := seen[userID]; dup {
			continue
		}
		seen[userID] = struct{}{}
		external = append(external, userID)
	}
	return external
}

// submit hands an operation's notifications to the delivery collaborator,
// tagging each with the originating connection. A single notification takes
// the single-event path; several go out as one batch so the delivery layer
// can order them without this core reasoning across separate calls.
func (s *TeamService) submit(ctx context.Context, actor Actor, notifications []push.Notification) error {
	kept := notifications[:0]
	for _, n := range notifications {
		if len(n.Recipients) == 0 {
			continue
		}
		n.Origin = actor.Connection
		kept = append(kept, n)
	}

	switch len(kept) {
	case 0:
		return nil
	case 1:
		if err := s.pusher.Deliver(ctx, kept[0]); err != nil {
			return fmt.Errorf("failed to deliver event: %w", err)
		}
	default:
		if err := s.pusher.DeliverBatch(ctx, kept); err != nil {
			return fmt.Errorf("failed to deliver event batch: %w", err)
		}
	}
	return nil
}

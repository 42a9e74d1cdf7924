package invitation

import "context"

// Repository persists invitations.
type Repository interface {
	// Create persists a new invitation.
	Create(ctx context.Context, inv *Invitation) error

	// Update persists changes to an existing invitation.
	Update(ctx context.Context, inv *Invitation) error

	// GetByToken retrieves an invitation by its token.
	GetByToken(ctx context.Context, token string) (*Invitation, error)
}

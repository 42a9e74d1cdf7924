package usecases

import (
	"context"
	"time"
)

// TransactionManager runs a function inside a database transaction.
// Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Mailer delivers invitation emails.
type Mailer interface {
	SendInvitation(to, tenantName, role, token string, expiresAt time.Time) error
}

package repository

import (
	"context"

	"astro-chat/internal/domain/account"
	"astro-chat/internal/domain/message"
	"astro-chat/internal/domain/profile"

	"github.com/google/uuid"
)

// AccountRepository persists account records.
type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (account.Account, error)
	GetByEmail(ctx context.Context, email string) (account.Account, error)
}

// ProfileRepository persists one profile per account.
type ProfileRepository interface {
	Create(ctx context.Context, p *profile.Profile) error
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (profile.Profile, error)
	Update(ctx context.Context, p profile.Profile) error
}

// MessageRepository persists chat messages between two accounts.
type MessageRepository interface {
	Create(ctx context.Context, m *message.Message) error
	GetBetweenAccounts(ctx context.Context, a, b uuid.UUID) ([]message.Message, error)
}

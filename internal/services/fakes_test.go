package services

import (
	"context"
	"sort"
	"sync"

	"astro-chat/internal/domain/account"
	"astro-chat/internal/domain/message"
	"astro-chat/internal/domain/profile"
	astro_errors "astro-chat/pkg/errors"

	"github.com/google/uuid"
)

// In-memory repository fakes mirroring the Postgres implementations'
// error contracts.

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]account.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]account.Account)}
}

func (r *fakeAccountRepo) Create(_ context.Context, a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return astro_errors.ErrAlreadyExists
		}
	}
	r.accounts[a.ID] = *a
	return nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id uuid.UUID) (account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return account.Account{}, astro_errors.ErrNotFound
	}
	return a, nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return account.Account{}, astro_errors.ErrNotFound
}

func (r *fakeAccountRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts)
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]profile.Profile // keyed by account id
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]profile.Profile)}
}

func (r *fakeProfileRepo) Create(_ context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.AccountID]; ok {
		return astro_errors.ErrAlreadyExists
	}
	r.profiles[p.AccountID] = *p
	return nil
}

func (r *fakeProfileRepo) GetByAccountID(_ context.Context, accountID uuid.UUID) (profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[accountID]
	if !ok {
		return profile.Profile{}, astro_errors.ErrNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.AccountID]; !ok {
		return astro_errors.ErrNotFound
	}
	r.profiles[p.AccountID] = p
	return nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []message.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Create(_ context.Context, m *message.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, *m)
	return nil
}

func (r *fakeMessageRepo) GetBetweenAccounts(_ context.Context, a, b uuid.UUID) ([]message.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []message.Message
	for _, m := range r.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *fakeMessageRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

type publishedEvent struct {
	routingKey string
	payload    any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) PublishNotification(_ context.Context, routingKey string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{routingKey: routingKey, payload: payload})
}

func (p *fakePublisher) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]publishedEvent, len(p.events))
	copy(out, p.events)
	return out
}

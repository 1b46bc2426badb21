package repository

import (
	"context"
	"errors"

	"astro-chat/internal/domain/account"
	astro_errors "astro-chat/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresAccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, a *account.Account) error {
	res := r.db.WithContext(ctx).Create(a)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return astro_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	var a account.Account
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Account{}, astro_errors.ErrNotFound
		}
		return account.Account{}, err
	}
	return a, nil
}

func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	var a account.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Account{}, astro_errors.ErrNotFound
		}
		return account.Account{}, err
	}
	return a, nil
}

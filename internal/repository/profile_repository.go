package repository

import (
	"context"
	"errors"

	"astro-chat/internal/domain/profile"
	astro_errors "astro-chat/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	res := r.db.WithContext(ctx).Create(p)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return astro_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresProfileRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (profile.Profile, error) {
	var p profile.Profile
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return profile.Profile{}, astro_errors.ErrNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Update(ctx context.Context, p profile.Profile) error {
	res := r.db.WithContext(ctx).Save(&p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return astro_errors.ErrNotFound
	}
	return nil
}

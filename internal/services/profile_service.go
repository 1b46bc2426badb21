package services

import (
	"context"
	"errors"
	"time"

	"astro-chat/internal/astrology"
	"astro-chat/internal/domain/profile"
	"astro-chat/internal/repository"
	astro_errors "astro-chat/pkg/errors"

	"github.com/google/uuid"
)

const birthdayLayout = "2006-01-02"

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

type CreateProfileInput struct {
	Name      string
	Gender    string
	Birthday  string
	Height    int
	Weight    int
	Interests []string
}

// UpdateProfileInput carries only the fields present in the request;
// nil means "leave unchanged".
type UpdateProfileInput struct {
	Name      *string
	Gender    *string
	Birthday  *string
	Height    *int
	Weight    *int
	Interests *[]string
}

// Create stores the one profile an account may have. Horoscope and
// zodiac are derived from the birthday once and persisted.
func (s *ProfileService) Create(ctx context.Context, accountID uuid.UUID, in CreateProfileInput) (profile.Profile, error) {
	if _, err := s.profileRepo.GetByAccountID(ctx, accountID); err == nil {
		return profile.Profile{}, astro_errors.ErrAlreadyExists
	} else if !errors.Is(err, astro_errors.ErrNotFound) {
		return profile.Profile{}, err
	}

	if !validGender(in.Gender) {
		return profile.Profile{}, astro_errors.ErrInvalidInput
	}

	birthday, err := parseBirthday(in.Birthday)
	if err != nil {
		return profile.Profile{}, err
	}

	horoscope, zodiac := astrology.ForDate(birthday)
	interests := in.Interests
	if interests == nil {
		interests = []string{}
	}

	now := time.Now()
	p := profile.Profile{
		ID:        uuid.New(),
		AccountID: accountID,
		Name:      in.Name,
		Gender:    in.Gender,
		Birthday:  birthday,
		Horoscope: horoscope,
		Zodiac:    zodiac,
		Height:    in.Height,
		Weight:    in.Weight,
		Interests: interests,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.profileRepo.Create(ctx, &p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func (s *ProfileService) Get(ctx context.Context, accountID uuid.UUID) (profile.Profile, error) {
	return s.profileRepo.GetByAccountID(ctx, accountID)
}

// Update applies only the supplied fields. A new birthday re-validates
// the date and recomputes both derived fields.
func (s *ProfileService) Update(ctx context.Context, accountID uuid.UUID, in UpdateProfileInput) (profile.Profile, error) {
	p, err := s.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return profile.Profile{}, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Gender != nil {
		if !validGender(*in.Gender) {
			return profile.Profile{}, astro_errors.ErrInvalidInput
		}
		p.Gender = *in.Gender
	}
	if in.Height != nil {
		p.Height = *in.Height
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.Interests != nil {
		p.Interests = *in.Interests
	}
	if in.Birthday != nil {
		birthday, err := parseBirthday(*in.Birthday)
		if err != nil {
			return profile.Profile{}, err
		}
		p.Birthday = birthday
		p.Horoscope, p.Zodiac = astrology.ForDate(birthday)
	}

	p.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func validGender(value string) bool {
	return value == profile.GenderMale || value == profile.GenderFemale
}

func parseBirthday(value string) (time.Time, error) {
	t, err := time.Parse(birthdayLayout, value)
	if err != nil {
		return time.Time{}, astro_errors.ErrInvalidInput
	}
	return t, nil
}

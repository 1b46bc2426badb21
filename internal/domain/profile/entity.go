package profile

import (
	"time"

	"github.com/google/uuid"
)

// Gender values accepted on profile create/update.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Profile represents the profiles table. One profile per account.
// Horoscope and Zodiac are derived from Birthday at write time and
// stored as plain columns, they are never recomputed on read.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	Gender    string    `gorm:"not null"`
	Birthday  time.Time `gorm:"not null"`
	Horoscope string
	Zodiac    string
	Height    int
	Weight    int
	Interests []string `gorm:"serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Profile) TableName() string {
	return "profiles"
}

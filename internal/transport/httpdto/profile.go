package httpdto

// CreateProfileRequest is used for POST /api/profile/createProfile
type CreateProfileRequest struct {
	Name      string   `json:"name" binding:"required"`
	Gender    string   `json:"gender" binding:"required,oneof=Male Female"`
	Birthday  string   `json:"birthday" binding:"required"` // YYYY-MM-DD
	Height    int      `json:"height" binding:"required,min=1,max=300"`
	Weight    int      `json:"weight" binding:"required,min=1,max=500"`
	Interests []string `json:"interests"`
}

// UpdateProfileRequest is used for PUT /api/profile/updateProfile.
// All fields are optional; absent fields stay untouched.
type UpdateProfileRequest struct {
	Name      *string   `json:"name,omitempty"`
	Gender    *string   `json:"gender,omitempty" binding:"omitempty,oneof=Male Female"`
	Birthday  *string   `json:"birthday,omitempty"`
	Height    *int      `json:"height,omitempty" binding:"omitempty,min=1,max=300"`
	Weight    *int      `json:"weight,omitempty" binding:"omitempty,min=1,max=500"`
	Interests *[]string `json:"interests,omitempty"`
}

// ProfileDTO represents a profile in API responses
type ProfileDTO struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userId"`
	Name      string   `json:"name"`
	Gender    string   `json:"gender"`
	Birthday  string   `json:"birthday"`
	Horoscope string   `json:"horoscope"`
	Zodiac    string   `json:"zodiac"`
	Height    int      `json:"height"`
	Weight    int      `json:"weight"`
	Interests []string `json:"interests"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

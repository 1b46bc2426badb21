package handler

import (
	"net/http"
	"time"

	"astro-chat/internal/domain/profile"
	"astro-chat/internal/services"
	"astro-chat/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile HTTP endpoints.
type ProfileHandler struct {
	service *services.ProfileService
}

func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Create handles POST /api/profile/createProfile.
func (h *ProfileHandler) Create(c *gin.Context) {
	identity, ok := services.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	var req httpdto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	p, err := h.service.Create(c.Request.Context(), identity.AccountID, services.CreateProfileInput{
		Name:      req.Name,
		Gender:    req.Gender,
		Birthday:  req.Birthday,
		Height:    req.Height,
		Weight:    req.Weight,
		Interests: req.Interests,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(toProfileDTO(p)))
}

// Get handles GET /api/profile/getProfile.
func (h *ProfileHandler) Get(c *gin.Context) {
	identity, ok := services.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	p, err := h.service.Get(c.Request.Context(), identity.AccountID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(toProfileDTO(p)))
}

// Update handles PUT /api/profile/updateProfile.
func (h *ProfileHandler) Update(c *gin.Context) {
	identity, ok := services.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	var req httpdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	p, err := h.service.Update(c.Request.Context(), identity.AccountID, services.UpdateProfileInput{
		Name:      req.Name,
		Gender:    req.Gender,
		Birthday:  req.Birthday,
		Height:    req.Height,
		Weight:    req.Weight,
		Interests: req.Interests,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(toProfileDTO(p)))
}

func toProfileDTO(p profile.Profile) httpdto.ProfileDTO {
	return httpdto.ProfileDTO{
		ID:        p.ID.String(),
		UserID:    p.AccountID.String(),
		Name:      p.Name,
		Gender:    p.Gender,
		Birthday:  p.Birthday.Format("2006-01-02"),
		Horoscope: p.Horoscope,
		Zodiac:    p.Zodiac,
		Height:    p.Height,
		Weight:    p.Weight,
		Interests: p.Interests,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

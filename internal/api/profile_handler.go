package api

import (
	"errors"
	"fmt"
	"net/http"

	"alcyxob/x3-tracker/internal/domain"
	"alcyxob/x3-tracker/internal/schedule"
	"alcyxob/x3-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- Request Structs ---

type SetStartDateRequest struct {
	StartDate string `json:"startDate" binding:"required"` // YYYY-MM-DD
}

type UpdateTimezoneRequest struct {
	Timezone string `json:"timezone" binding:"required"` // IANA name
}

type UpdateTierRequest struct {
	Tier domain.Tier `json:"tier" binding:"required,oneof=foundation momentum mastery"`
}

// currentUserID pulls the authenticated user's ObjectID out of the context.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	idStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return primitive.NilObjectID, false
	}
	return id, true
}

// --- Handler Methods ---

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "User not found"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load profile.")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// SetStartDate godoc
// @Summary Set the program start date (day 0)
// @Description Records the user's program start date. Can only be done once.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SetStartDateRequest true "Start date"
// @Success 200 {object} UserResponse
// @Failure 400 {object} gin.H "Malformed date"
// @Failure 409 {object} gin.H "Start date already set"
// @Router /profile/start-date [put]
func (h *ProfileHandler) SetStartDate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SetStartDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.profileService.SetStartDate(c.Request.Context(), userID, req.StartDate)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrMalformedDate):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrStartDateAlreadySet):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to set start date.")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateTimezone godoc
// @Summary Update the user's timezone
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateTimezoneRequest true "IANA timezone name"
// @Success 200 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid timezone"
// @Router /profile/timezone [put]
func (h *ProfileHandler) UpdateTimezone(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateTimezoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.profileService.UpdateTimezone(c.Request.Context(), userID, req.Timezone)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimezone) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update timezone.")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateTier godoc
// @Summary Change the user's subscription tier
// @Description Normally driven by the payment provider's webhook after checkout.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateTierRequest true "New tier"
// @Success 200 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid tier"
// @Router /profile/tier [put]
func (h *ProfileHandler) UpdateTier(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.profileService.UpdateTier(c.Request.Context(), userID, req.Tier)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTier) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update tier.")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"alcyxob/x3-tracker/internal/schedule"
	"alcyxob/x3-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Request Structs ---

type LogExerciseRequest struct {
	ExerciseName string `json:"exerciseName" binding:"required"`
	BandColor    string `json:"bandColor" binding:"required"`
	FullReps     int    `json:"fullReps" binding:"min=0"`
	PartialReps  int    `json:"partialReps" binding:"min=0"`
	Notes        string `json:"notes"`
	LocalDate    string `json:"localDate"` // optional YYYY-MM-DD, defaults to today
}

// abortWorkoutError maps the workout service sentinels shared by several
// handlers to HTTP statuses.
func abortWorkoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStartDateNotSet):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, schedule.ErrMalformedDate):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnknownExercise),
		errors.Is(err, service.ErrInvalidBand),
		errors.Is(err, service.ErrInvalidReps),
		errors.Is(err, service.ErrInvalidDateRange):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// --- Handler Methods ---

// GetToday godoc
// @Summary Get today's workout
// @Description Returns the completion-aware workout for the user's current day.
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} schedule.Result
// @Failure 409 {object} gin.H "Start date not set"
// @Router /workout/today [get]
func (h *WorkoutHandler) GetToday(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.workoutService.TodayWorkout(c.Request.Context(), userID)
	if err != nil {
		abortWorkoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCalendar godoc
// @Summary Get the workout calendar for a date range
// @Description Per-day schedule and completion statuses, inclusive of both endpoints.
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} service.CalendarDay
// @Failure 400 {object} gin.H "Malformed date or invalid range"
// @Router /calendar [get]
func (h *WorkoutHandler) GetCalendar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameters 'from' and 'to' are required (YYYY-MM-DD)")
		return
	}

	days, err := h.workoutService.Calendar(c.Request.Context(), userID, from, to)
	if err != nil {
		abortWorkoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, days)
}

// LogExercise godoc
// @Summary Record a completed exercise set
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body LogExerciseRequest true "Exercise set details"
// @Success 201 {object} domain.ExerciseEntry
// @Failure 400 {object} gin.H "Unknown exercise, invalid band, or negative reps"
// @Failure 409 {object} gin.H "Start date not set"
// @Router /exercises [post]
func (h *WorkoutHandler) LogExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req LogExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.workoutService.LogExercise(c.Request.Context(), userID, service.LogExerciseInput{
		ExerciseName: req.ExerciseName,
		BandColor:    req.BandColor,
		FullReps:     req.FullReps,
		PartialReps:  req.PartialReps,
		Notes:        req.Notes,
		LocalDate:    req.LocalDate,
	})
	if err != nil {
		abortWorkoutError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetExerciseHistory godoc
// @Summary Get logged sets for one exercise, newest first
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param name path string true "Exercise name (e.g. Chest Press)"
// @Param limit query int false "Max entries to return (0 = all)"
// @Success 200 {array} domain.ExerciseEntry
// @Failure 400 {object} gin.H "Unknown exercise"
// @Router /exercises/{name}/history [get]
func (h *WorkoutHandler) GetExerciseHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	exerciseName := c.Param("name")

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			abortWithError(c, http.StatusBadRequest, "Query parameter 'limit' must be a non-negative integer")
			return
		}
		limit = parsed
	}

	entries, err := h.workoutService.ExerciseHistory(c.Request.Context(), userID, exerciseName, limit)
	if err != nil {
		abortWorkoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

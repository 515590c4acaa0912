package api

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

type LogWorkoutRequest struct {
	ExerciseID   string       `json:"exerciseId"`
	ExerciseName string       `json:"exerciseName" binding:"required"`
	Sets         []domain.Set `json:"sets" binding:"required"`
	Date         string       `json:"date"`
}

// LogWorkout godoc
// @Summary Log a workout session
// @Description Sets with a blank reps or weight are dropped before saving.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body LogWorkoutRequest true "Session"
// @Success 201 {object} domain.WorkoutSession
// @Failure 400 {object} gin.H "No valid sets"
// @Router /workouts [post]
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}
	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	session, err := h.workoutService.LogWorkout(c.Request.Context(), userID, service.LogWorkoutInput{
		ExerciseID:   req.ExerciseID,
		ExerciseName: req.ExerciseName,
		Sets:         req.Sets,
		Date:         req.Date,
	})
	if err != nil {
		abortWithServiceError(c, err, "Failed to save workout.")
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetHistory godoc
// @Summary Get my workout history, newest first
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.SessionSummary
// @Router /workouts/history [get]
func (h *WorkoutHandler) GetHistory(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}
	history, err := h.workoutService.History(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve workout history.")
		return
	}
	c.JSON(http.StatusOK, history)
}

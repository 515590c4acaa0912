package api

import (
	"alcyxob/fittrack/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler serves the exercise catalog.
type ExerciseHandler struct {
	workoutService service.WorkoutService
}

func NewExerciseHandler(workoutService service.WorkoutService) *ExerciseHandler {
	return &ExerciseHandler{workoutService: workoutService}
}

// GetCatalog godoc
// @Summary List exercises
// @Description Returns the exercise catalog. When the exercise API is unavailable the built-in catalog is returned with source "fallback".
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param muscle query string false "Only exercises of this muscle group"
// @Success 200 {object} service.Catalog
// @Router /exercises [get]
func (h *ExerciseHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.workoutService.Catalog(c.Request.Context(), c.Query("muscle")))
}

// GetMuscleGroups godoc
// @Summary List the muscle groups of the catalog
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Router /exercises/muscles [get]
func (h *ExerciseHandler) GetMuscleGroups(c *gin.Context) {
	c.JSON(http.StatusOK, h.workoutService.MuscleGroups(c.Request.Context()))
}

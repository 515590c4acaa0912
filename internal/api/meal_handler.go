package api

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MealHandler struct {
	nutritionService service.NutritionService
	photoService     service.PhotoService
}

func NewMealHandler(nutritionService service.NutritionService, photoService service.PhotoService) *MealHandler {
	return &MealHandler{nutritionService: nutritionService, photoService: photoService}
}

type AddMealRequest struct {
	MealType domain.MealType `json:"mealType" binding:"required,oneof=Breakfast Lunch Dinner Snack"`
	Food     domain.FoodHint `json:"food"`
	Quantity float64         `json:"quantity" binding:"omitempty,gt=0"`
	Date     string          `json:"date"`
}

type PhotoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// SearchFood godoc
// @Summary Search the food database
// @Description Queries shorter than three characters and rate-limited searches return an empty list.
// @Tags Nutrition
// @Produce json
// @Security BearerAuth
// @Param q query string true "Free-text food query"
// @Success 200 {array} domain.FoodHint
// @Failure 502 {object} gin.H "Food database unavailable"
// @Router /foods/search [get]
func (h *MealHandler) SearchFood(c *gin.Context) {
	hints, err := h.nutritionService.SearchFood(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Error fetching food data")
		return
	}
	c.JSON(http.StatusOK, hints)
}

// AddMeal godoc
// @Summary Log a food under a meal
// @Tags Nutrition
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param meal body AddMealRequest true "Meal entry"
// @Success 201 {object} domain.MealLogEntry
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /meals [post]
func (h *MealHandler) AddMeal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}
	var req AddMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.nutritionService.AddMeal(c.Request.Context(), userID, service.AddMealInput{
		MealType: req.MealType,
		Food:     req.Food,
		Quantity: req.Quantity,
		Date:     req.Date,
	})
	if err != nil {
		abortWithServiceError(c, err, "Failed to add meal.")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetDailyLog godoc
// @Summary Get the meals logged on one day
// @Tags Nutrition
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {array} domain.MealLogEntry
// @Router /meals [get]
func (h *MealHandler) GetDailyLog(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}
	entries, err := h.nutritionService.DailyLog(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve meals.")
		return
	}
	if entries == nil {
		entries = []domain.MealLogEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// GetDashboard godoc
// @Summary Get the day's entries with calorie and macro totals
// @Tags Nutrition
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} service.DailyDashboard
// @Router /dashboard [get]
func (h *MealHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}
	dash, err := h.nutritionService.Dashboard(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		abortWithServiceError(c, err, "Failed to build dashboard.")
		return
	}
	if dash.Entries == nil {
		dash.Entries = []domain.MealLogEntry{}
	}
	c.JSON(http.StatusOK, dash)
}

// RequestPhotoUpload godoc
// @Summary Get a presigned URL to upload a meal photo
// @Tags Nutrition
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PhotoUploadRequest true "Photo content type"
// @Success 200 {object} service.UploadURLResponse
// @Failure 400 {object} gin.H "Not an image content type"
// @Router /meals/photos [post]
func (h *MealHandler) RequestPhotoUpload(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}
	var req PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	resp, err := h.photoService.RequestUploadURL(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		abortWithServiceError(c, err, "Failed to prepare photo upload.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPhotoURL godoc
// @Summary Get a presigned URL to view a meal photo
// @Tags Nutrition
// @Produce json
// @Security BearerAuth
// @Param key query string true "Object key returned by the upload request"
// @Success 200 {object} gin.H "downloadUrl"
// @Failure 403 {object} gin.H "Photo belongs to another user"
// @Router /meals/photos/url [get]
func (h *MealHandler) GetPhotoURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}
	key := c.Query("key")
	if key == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'key' is required.")
		return
	}

	url, err := h.photoService.DownloadURL(c.Request.Context(), userID, key)
	if err != nil {
		abortWithServiceError(c, err, "Failed to get photo URL.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": url})
}

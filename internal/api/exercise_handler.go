package api

import (
	"net/http"
	"time"

	"exercise-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the ingestion and log query dependencies.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	logService      service.LogService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, logService service.LogService) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
		logService:      logService,
	}
}

// --- DTOs ---

// AddExerciseRequest defines the expected form fields for logging an
// exercise. Field-level validation lives in the service so the error
// names the first offending field.
type AddExerciseRequest struct {
	UserID      string `form:"userId"`
	Description string `form:"description"`
	Duration    string `form:"duration"`
	Date        string `form:"date"`
}

// LogEntryResponse is a single exercise within a log result.
type LogEntryResponse struct {
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
}

// LogResponse is the DTO for a full log query result.
type LogResponse struct {
	UserID    string             `json:"userId"`
	Username  string             `json:"username"`
	Count     int                `json:"count"`
	Exercises []LogEntryResponse `json:"exercises"`
}

// MapLogToResponse converts a service.ExerciseLog to a LogResponse DTO.
func MapLogToResponse(log *service.ExerciseLog) LogResponse {
	entries := make([]LogEntryResponse, len(log.Exercises))
	for i, ex := range log.Exercises {
		entries[i] = LogEntryResponse{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        ex.Date,
		}
	}
	return LogResponse{
		UserID:    log.UserID,
		Username:  log.Username,
		Count:     log.Count,
		Exercises: entries,
	}
}

// --- Handler Methods ---

// AddExercise handles POST /api/exercise/add.
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "unable to parse form body")
		return
	}

	entry, err := h.exerciseService.AddExercise(
		c.Request.Context(),
		req.UserID,
		req.Description,
		req.Duration,
		req.Date,
	)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetLog handles GET /api/exercise/log.
func (h *ExerciseHandler) GetLog(c *gin.Context) {
	log, err := h.logService.GetLog(
		c.Request.Context(),
		c.Query("userId"),
		c.Query("from"),
		c.Query("to"),
		c.Query("limit"),
	)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapLogToResponse(log))
}

package api

import (
	"net/http"

	"exercise-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the exercise tracker endpoints onto the router.
func SetupRoutes(
	router *gin.Engine,
	userService service.UserService,
	exerciseService service.ExerciseService,
	logService service.LogService,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService, logService)

	router.Use(RequestID())

	// Landing page and assets, served next to the binary.
	router.StaticFile("/", "./views/index.html")
	router.Static("/public", "./public")

	apiGroup := router.Group("/api/exercise")
	{
		apiGroup.POST("/new-user", userHandler.CreateUser)
		apiGroup.GET("/users", userHandler.ListUsers)
		apiGroup.POST("/add", exerciseHandler.AddExercise)
		apiGroup.GET("/log", exerciseHandler.GetLog)
	}

	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "not found")
	})
}

package videoRoutes

import (
	controllers "fluently/controllers/video"
	"fluently/middleware"
	validators "fluently/validators/video"

	"github.com/gofiber/fiber/v2"
)

// SetupVideoRoutes sets up all video catalog and progress routes
func SetupVideoRoutes(app *fiber.App) {
	videoGroup := app.Group("/video")

	// Catalog (static paths before the :id routes)
	videoGroup.Get("/list", middleware.JWTMiddleware, validators.VideoList(), controllers.GetVideos)
	videoGroup.Get("/search", middleware.JWTMiddleware, validators.Search(), controllers.SearchVideos)
	videoGroup.Get("/categories", middleware.JWTMiddleware, controllers.GetCategories)
	videoGroup.Get("/stats", middleware.JWTMiddleware, controllers.GetUserStats)
	videoGroup.Get("/:id", middleware.JWTMiddleware, validators.VideoID(), controllers.GetVideoDetails)

	// Progress tracking
	videoGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.VideoID(), controllers.GetVideoProgress)
	videoGroup.Post("/:id/progress", middleware.JWTMiddleware, validators.UpdateProgress(), controllers.UpdateVideoProgress)
}

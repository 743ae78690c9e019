package main

import (
	"fluently/config"
	videoControllers "fluently/controllers/video"
	"fluently/database"
	authRoutes "fluently/routers/authRoutes"
	videoRoutes "fluently/routers/videoRoutes"
	"fluently/services"
	"fluently/utils"
	"fluently/vimeo"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db
	videoControllers.Init(services.NewVideoService(db), services.NewProgressService(db))

	// Scheduled catalog sync, when a Vimeo token is configured
	if config.AppConfig.VimeoAccessToken != "" {
		client := vimeo.NewClient(config.AppConfig.VimeoAPIURL, config.AppConfig.VimeoAccessToken, config.AppConfig.VimeoPageSize)
		utils.StartImportScheduler(services.NewVimeoImporter(db, client))
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	videoRoutes.SetupVideoRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

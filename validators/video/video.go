package videoValidator

import (
	"fluently/middleware"
	"fluently/models"
	"fluently/services"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// VideoList validates the optional catalog filters
func VideoList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(services.VideoFilters)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		// Validate Level
		switch reqData.Level {
		case "", "all", models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
		default:
			errors["level"] = "Level must be beginner, intermediate, advanced or all!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideoFilters", reqData)
		return c.Next()
	}
}

// VideoID validates the :id path parameter
func VideoID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video ID!", nil)
		}

		c.Locals("videoID", uint(id))
		return c.Next()
	}
}

// UpdateProgress validates the :id parameter and the progress body
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video ID!", nil)
		}

		reqData := new(struct {
			Progress *float64 `json:"progress"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Progress
		if reqData.Progress == nil {
			errors["progress"] = "Progress is required!"
		} else if *reqData.Progress < 0 || *reqData.Progress > 1 {
			errors["progress"] = "Progress must be between 0 and 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("videoID", uint(id))
		c.Locals("validatedProgress", *reqData.Progress)
		return c.Next()
	}
}

// Search validates the search query
func Search() fiber.Handler {
	return func(c *fiber.Ctx) error {
		term := strings.TrimSpace(c.Query("q"))

		if term == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"q": "Search term is required!",
			})
		}

		c.Locals("searchTerm", term)
		return c.Next()
	}
}

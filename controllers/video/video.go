package controllers

import (
	"fluently/middleware"
	"fluently/services"
	"fluently/vimeo"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetVideos lists published videos with the caller's progress merged in
func GetVideos(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	filters, ok := c.Locals("validatedVideoFilters").(*services.VideoFilters)
	if !ok {
		filters = &services.VideoFilters{}
	}

	videos, err := videoSvc.GetVideosWithProgress(userID, *filters)
	if err != nil {
		log.Printf("Error fetching videos: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch videos!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", fiber.Map{
		"videos": videos,
		"count":  len(videos),
	})
}

// GetVideoDetails returns one published video
func GetVideoDetails(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	videoID := c.Locals("videoID").(uint)

	video, err := videoSvc.GetVideo(videoID)
	if err != nil {
		log.Printf("Error fetching video %d: %v", videoID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch video!", nil)
	}
	if video == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video fetched successfully!", fiber.Map{
		"video":    video,
		"duration": vimeo.FormatDuration(video.Duration),
	})
}

// GetCategories returns the distinct categories of published videos
func GetCategories(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	categories, err := videoSvc.GetCategories()
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", fiber.Map{
		"categories": categories,
	})
}

// SearchVideos matches the query against title and description
func SearchVideos(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	term := c.Locals("searchTerm").(string)

	videos, err := videoSvc.SearchVideos(term)
	if err != nil {
		log.Printf("Error searching videos: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search videos!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", fiber.Map{
		"videos": videos,
		"count":  len(videos),
	})
}

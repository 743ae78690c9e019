package controllers

import (
	"fluently/middleware"
	"log"

	"github.com/gofiber/fiber/v2"
)

// UpdateVideoProgress records how much of a video the caller has watched
func UpdateVideoProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	videoID := c.Locals("videoID").(uint)
	progress := c.Locals("validatedProgress").(float64)

	// Only published videos accept progress updates
	video, err := videoSvc.GetVideo(videoID)
	if err != nil {
		log.Printf("Error fetching video %d: %v", videoID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}
	if video == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	record, err := progressSvc.UpdateProgress(userID, videoID, progress)
	if err != nil {
		log.Printf("Error updating progress for user %d video %d: %v", userID, videoID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", record)
}

// GetVideoProgress returns the caller's progress for one video
func GetVideoProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	videoID := c.Locals("videoID").(uint)

	record, err := progressSvc.GetProgress(userID, videoID)
	if err != nil {
		log.Printf("Error fetching progress for user %d video %d: %v", userID, videoID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", record)
}

// GetUserStats summarizes the caller's watching activity
func GetUserStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	stats, err := videoSvc.GetUserStats(userID)
	if err != nil {
		log.Printf("Error fetching stats for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", stats)
}

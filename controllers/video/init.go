package controllers

import "fluently/services"

var (
	videoSvc    *services.VideoService
	progressSvc *services.ProgressService
)

// Init wires the services into the video handlers. Called once from main
// after the database connection is up.
func Init(video *services.VideoService, progress *services.ProgressService) {
	videoSvc = video
	progressSvc = progress
}

package vimeo

import (
	"fmt"
	"strings"
)

// ExtractVideoID pulls the numeric id out of a Vimeo resource URI
// (format: /videos/123456789). Returns "" when the URI has no id.
func ExtractVideoID(uri string) string {
	_, id, found := strings.Cut(uri, "/videos/")
	if !found {
		return ""
	}
	return strings.TrimSuffix(id, "/")
}

// EmbedURL builds the player embed URL for a video id
func EmbedURL(videoID string) string {
	return fmt.Sprintf("https://player.vimeo.com/video/%s", videoID)
}

// SelectThumbnail picks the largest thumbnail candidate. Vimeo orders the
// candidates by ascending size, so the largest is the last one.
func SelectThumbnail(sizes []PictureSize) string {
	if len(sizes) == 0 {
		return ""
	}
	return sizes[len(sizes)-1].Link
}

// FormatDuration renders a duration in seconds as M:SS, or H:MM:SS for
// durations of an hour or more. A nil duration renders as "Unknown".
func FormatDuration(seconds *int) string {
	if seconds == nil {
		return "Unknown"
	}

	hours := *seconds / 3600
	minutes := (*seconds % 3600) / 60
	secs := *seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

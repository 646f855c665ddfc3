// ABOUTME: Media kind classification for workout media references.
// ABOUTME: Uses the file extension only; no content sniffing.
package models

import "strings"

// MediaKind selects how a media reference is rendered.
type MediaKind string

const (
	MediaNone  MediaKind = "none"
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

var videoExtensions = []string{".mp4", ".mov"}

// ClassifyMedia guesses the media kind of uri from its suffix.
// Unknown or missing extensions fall back to image.
func ClassifyMedia(uri string) MediaKind {
	if uri == "" {
		return MediaNone
	}
	lower := strings.ToLower(uri)
	for _, ext := range videoExtensions {
		if strings.HasSuffix(lower, ext) {
			return MediaVideo
		}
	}
	return MediaImage
}

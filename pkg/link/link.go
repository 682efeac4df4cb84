// Package link builds timestamped deep links into an externally hosted copy
// of a tape.
package link

import (
	"fmt"
	"regexp"
	"strings"

	"tableflip.dev/tapedeck/pkg/timecode"
)

var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([a-zA-Z0-9_-]{11})`),
}

// VideoID extracts the video identifier from the common YouTube URL shapes.
func VideoID(url string) (string, bool) {
	for _, p := range idPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Timestamped returns a link that starts playback at the given tape offset.
// A URL whose id cannot be extracted is returned unchanged.
func Timestamped(url, start string) string {
	if strings.TrimSpace(url) == "" {
		return url
	}
	id, ok := VideoID(url)
	if !ok {
		return url
	}
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s&t=%d", id, timecode.ParseSeconds(start))
}

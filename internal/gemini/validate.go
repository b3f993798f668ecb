package gemini

import "strings"

// Request-shape limits. The list caps and enumerations mirror what upstream
// accepts verbatim; do not "fix" them locally.
const (
	maxExcludeDomains  = 5
	maxContextURLs     = 20
	maxReferenceImages = 14
)

var validAspectRatios = map[string]bool{
	"1:1": true, "2:3": true, "3:2": true, "3:4": true, "4:3": true,
	"4:5": true, "5:4": true, "9:16": true, "16:9": true, "21:9": true,
}

var validResolutions = map[string]bool{
	"1K": true, "2K": true, "4K": true,
}

var validThinkingLevels = map[string]bool{
	"low": true, "medium": true, "high": true,
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalidInput("%s must not be empty", field)
	}
	return nil
}

func validateImageShape(aspectRatio, resolution string) error {
	if aspectRatio != "" && !validAspectRatios[aspectRatio] {
		return invalidInput("invalid aspect ratio %q", aspectRatio)
	}
	if resolution != "" && !validResolutions[resolution] {
		return invalidInput("invalid resolution %q, expected 1K, 2K or 4K", resolution)
	}
	return nil
}

func validateCoordinates(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return invalidInput("latitude and longitude must be provided together")
	}
	if lat == nil {
		return nil
	}
	if *lat < -90 || *lat > 90 {
		return invalidInput("latitude %v out of range [-90, 90]", *lat)
	}
	if *lng < -180 || *lng > 180 {
		return invalidInput("longitude %v out of range [-180, 180]", *lng)
	}
	return nil
}

package gemini

import (
	"path/filepath"
	"strings"
)

// mimeByExtension is the upload media-type table. Several structured-data
// and typed source-code extensions map to plain text on purpose: upstream
// acceptance defines correctness here, not semantic accuracy.
var mimeByExtension = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".md":   "text/plain",
	".html": "text/html",
	".htm":  "text/html",
	".css":  "text/css",
	".csv":  "text/csv",
	".rtf":  "text/rtf",

	".js":   "text/javascript",
	".py":   "text/x-python",
	".json": "text/plain",
	".xml":  "text/plain",
	".yaml": "text/plain",
	".yml":  "text/plain",
	".toml": "text/plain",
	".ts":   "text/plain",
	".go":   "text/plain",
	".java": "text/plain",
	".c":    "text/plain",
	".h":    "text/plain",
	".cpp":  "text/plain",
	".rs":   "text/plain",
	".sh":   "text/plain",

	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
	".heic": "image/heic",
	".heif": "image/heif",

	".mp3":  "audio/mp3",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".aac":  "audio/aac",

	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".webm": "video/webm",
}

const fallbackMIME = "text/plain"

// MIMEForPath infers the declared media type from the file name extension,
// defaulting to plain text for anything unrecognized.
func MIMEForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mime, ok := mimeByExtension[ext]; ok {
		return mime
	}
	return fallbackMIME
}

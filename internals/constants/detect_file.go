package constants

import (
	"path/filepath"
	"strings"
)

// Ekstensi foto yang boleh diupload (student/profile photo).
var allowedPhotoExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

func IsAllowedPhoto(filename string) bool {
	return allowedPhotoExt[strings.ToLower(filepath.Ext(filename))]
}

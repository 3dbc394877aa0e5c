package validator

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	httpRegex  = regexp.MustCompile(`(?i)^https?://.+`)
	extRegex   = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|pdf|mp4|avi|mov|mkv|webm)$`)
)

// rawUploadMarker flags an asset stored with the object store's raw resource type
const rawUploadMarker = "/raw/upload/"

// IsValidEmail checks if the email format is valid
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidAttachmentURL checks the invariant every stored file reference must hold:
// an absolute HTTP(S) URL that either ends in an allowed media extension or
// carries the raw-upload marker from the object store.
func IsValidAttachmentURL(url string) bool {
	url = strings.TrimSpace(url)
	if !httpRegex.MatchString(url) {
		return false
	}
	return extRegex.MatchString(url) || strings.Contains(url, rawUploadMarker)
}

// IsBlank reports whether the string is empty or whitespace only
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// InEnum reports whether value is one of the allowed enum members
func InEnum(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

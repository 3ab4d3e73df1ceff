package editor

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

// MaxPhotoBytes caps profile photos at 5 MiB. Larger images make the
// data-URI aggregate heavy and slow down export-time rasterization.
const MaxPhotoBytes = 5 << 20

// PhotoError reports a rejected photo upload. The previous photo, if any,
// stays in place.
type PhotoError struct {
	Reason string
}

func (e *PhotoError) Error() string {
	return fmt.Sprintf("photo rejected: %s", e.Reason)
}

// AttachPhoto encodes an uploaded image as a data URI on
// personalInfo.profilePhoto. Content is sniffed; only image types are
// accepted.
func AttachPhoto(cv types.CVData, data []byte) (types.CVData, error) {
	if len(data) == 0 {
		return cv, &PhotoError{Reason: "empty file"}
	}
	if len(data) > MaxPhotoBytes {
		return cv, &PhotoError{Reason: fmt.Sprintf("file exceeds %d bytes", MaxPhotoBytes)}
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return cv, &PhotoError{Reason: fmt.Sprintf("unsupported content type %s", contentType)}
	}

	uri := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	cv.PersonalInfo.ProfilePhoto = uri
	return cv, nil
}

// RemovePhoto clears the profile photo.
func RemovePhoto(cv types.CVData) types.CVData {
	cv.PersonalInfo.ProfilePhoto = ""
	return cv
}

package mediastore

import (
	"context"
	"io"
	"strings"
)

// Kind classifies uploadable content.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Store accepts binary content and returns a retrievable URL. The concrete
// store is an external collaborator; this backend only holds the URLs it
// hands back.
type Store interface {
	Upload(ctx context.Context, content io.Reader, kind Kind) (string, error)
}

// KindForContentType maps a declared MIME type to the upload kind. Non-media
// content is rejected before anything is sent upstream.
func KindForContentType(contentType string) (Kind, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return KindImage, true
	case strings.HasPrefix(contentType, "video/"):
		return KindVideo, true
	default:
		return "", false
	}
}

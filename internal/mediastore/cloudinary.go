package mediastore

import (
	"context"
	"io"

	"github.com/Divya-010704/TripTeller/internal/models"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStore implements Store on top of Cloudinary
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore creates a CloudinaryStore from a CLOUDINARY_URL style
// connection string.
func NewCloudinaryStore(url string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStore{cld: cld}, nil
}

// Upload streams the content to Cloudinary and returns the secure URL.
func (s *CloudinaryStore) Upload(ctx context.Context, content io.Reader, kind Kind) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, content, uploader.UploadParams{
		PublicID:     uuid.NewString(),
		ResourceType: string(kind),
	})
	if err != nil {
		return "", models.NewUpstreamError("media upload failed", err)
	}
	return resp.SecureURL, nil
}

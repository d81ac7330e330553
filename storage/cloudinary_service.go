package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	config "github.com/kamogelodev/student_fund/configs"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore holds proof-of-payment documents. Uploads go under a
// caller-chosen public ID and are viewed later through short-lived signed
// download URLs, so the raw assets are never exposed publicly.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	secret string
}

func NewCloudinaryStore() (*CloudinaryStore, error) {
	cloudinaryURL := config.Config("CLOUDINARY_URL")

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %v", err)
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Cloudinary URL: %v", err)
	}
	secret, _ := parsedURL.User.Password()

	return &CloudinaryStore{cld: cld, secret: secret}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, publicID string, file io.Reader) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicID,
		ResourceType: "auto",
	})
	if err != nil {
		return "", err
	}
	return resp.PublicID, nil
}

// SignedURL builds a signed download link for a stored document, valid for
// the given TTL.
func (s *CloudinaryStore) SignedURL(publicID string, ttl time.Duration) (string, error) {
	now := time.Now()

	params := url.Values{}
	params.Set("public_id", publicID)
	params.Set("timestamp", strconv.FormatInt(now.Unix(), 10))
	params.Set("expires_at", strconv.FormatInt(now.Add(ttl).Unix(), 10))

	signature, err := api.SignParameters(params, s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign download params: %v", err)
	}

	return fmt.Sprintf(
		"https://api.cloudinary.com/v1_1/%s/image/download?%s&api_key=%s&signature=%s",
		s.cld.Config.Cloud.CloudName, params.Encode(), s.cld.Config.Cloud.APIKey, signature,
	), nil
}

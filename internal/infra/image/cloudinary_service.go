// Package image contains the Cloudinary-backed implementation of hosted
// image storage for product photos.
package image

import (
	"context"
	"io"
	"path"
	"strings"

	"galassia/config"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/service"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
)

const defaultFolder = "galassia"

// cloudinaryService implements service.ImageService on Cloudinary.
type cloudinaryService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryService is the constructor for cloudinaryService. Without a
// Cloudinary URL the service is disabled and product writes keep the
// client-supplied image URL.
func NewCloudinaryService(cfg *config.Config) (service.ImageService, error) {
	svc := &cloudinaryService{folder: defaultFolder}

	if cfg.Cloudinary == nil || cfg.Cloudinary.URL == "" {
		return svc, nil
	}

	if cfg.Cloudinary.Folder != "" {
		svc.folder = cfg.Cloudinary.Folder
	}

	cld, err := cloudinary.NewFromURL(cfg.Cloudinary.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Cloudinary client")
	}
	svc.cld = cld

	return svc, nil
}

// Enabled reports whether a Cloudinary account is configured.
func (s *cloudinaryService) Enabled() bool {
	return s.cld != nil
}

// Upload stores the image under the configured folder and returns its public URL.
func (s *cloudinaryService) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	if s.cld == nil {
		return "", service.ErrImageStorageDisabled
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: s.folder,
	})
	if err != nil {
		return "", domainerrors.NewUpstreamError("cloudinary", errors.Wrapf(err, "failed to upload image %s", filename))
	}

	return result.SecureURL, nil
}

// Delete removes a previously uploaded image. URLs that do not point at the
// configured folder are ignored.
func (s *cloudinaryService) Delete(ctx context.Context, imageURL string) error {
	if s.cld == nil {
		return nil
	}

	publicID := s.publicIDFromURL(imageURL)
	if publicID == "" {
		return nil
	}

	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	}); err != nil {
		return domainerrors.NewUpstreamError("cloudinary", errors.Wrap(err, "failed to delete image"))
	}

	return nil
}

// publicIDFromURL extracts the Cloudinary public ID (folder/name without
// extension) from a delivery URL, or "" when the URL is not ours.
func (s *cloudinaryService) publicIDFromURL(imageURL string) string {
	marker := "/" + s.folder + "/"
	idx := strings.Index(imageURL, marker)
	if idx < 0 {
		return ""
	}

	name := imageURL[idx+len(marker):]
	if name == "" {
		return ""
	}

	name = strings.TrimSuffix(name, path.Ext(name))

	return s.folder + "/" + name
}

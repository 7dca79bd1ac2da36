package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/imaging"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/security"

	"github.com/google/uuid"
)

type MediaOptions struct {
	MaxUploadBytes int64
	MaxDimension   int // 0 disables downscaling
}

type mediaUsecase struct {
	mediaRepo domain.MediaRepository
	opts      MediaOptions
	now       func() time.Time
}

func NewMediaUsecase(mediaRepo domain.MediaRepository, opts MediaOptions) domain.MediaUsecase {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 5 << 20
	}
	return &mediaUsecase{
		mediaRepo: mediaRepo,
		opts:      opts,
		now:       time.Now,
	}
}

func (u *mediaUsecase) ValidateUploads(uploads []domain.Upload) error {
	for _, up := range uploads {
		res := security.ValidateImage(up.ContentType, up.Data, u.opts.MaxUploadBytes)
		if !res.Valid {
			name := sanitizeFilename(up.Filename)
			return apperror.BadRequest(fmt.Sprintf("%s: %s", name, upperFirst(res.Error)))
		}
	}
	return nil
}

func (u *mediaUsecase) Store(ctx context.Context, upload domain.Upload) (*domain.Media, error) {
	if err := u.ValidateUploads([]domain.Upload{upload}); err != nil {
		return nil, err
	}
	return u.store(ctx, upload)
}

func (u *mediaUsecase) StoreAll(ctx context.Context, uploads []domain.Upload) ([]string, error) {
	if err := u.ValidateUploads(uploads); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(uploads))
	for _, up := range uploads {
		media, err := u.store(ctx, up)
		if err != nil {
			// Roll back what this batch already wrote.
			u.DeleteQuietly(ctx, ids...)
			return nil, err
		}
		ids = append(ids, media.ID)
	}
	return ids, nil
}

func (u *mediaUsecase) store(ctx context.Context, upload domain.Upload) (*domain.Media, error) {
	contentType := security.NormalizeMIME(upload.ContentType)
	data := upload.Data

	resized, changed, err := imaging.Downscale(data, contentType, u.opts.MaxDimension)
	if err != nil {
		// Magic bytes matched but the image does not decode; keep the original bytes.
		logger.Log.Warn("Image downscale skipped", "filename", upload.Filename, "error", err)
	} else if changed {
		logger.Log.Debug("Image downscaled", "filename", upload.Filename, "from", len(data), "to", len(resized))
		data = resized
	}

	media := &domain.Media{
		ID:          uuid.NewString(),
		Filename:    sanitizeFilename(upload.Filename),
		ContentType: contentType,
		Data:        data,
		Size:        int64(len(data)),
		CreatedAt:   u.now().UTC(),
	}
	if err := u.mediaRepo.Create(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

func (u *mediaUsecase) Fetch(ctx context.Context, id string) (*domain.Media, error) {
	if err := validateID(id, "media"); err != nil {
		return nil, err
	}
	media, err := u.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "File not found")
	}
	return media, nil
}

func (u *mediaUsecase) Delete(ctx context.Context, id string) error {
	if err := validateID(id, "media"); err != nil {
		return err
	}
	if err := u.mediaRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "File not found")
	}
	return nil
}

func (u *mediaUsecase) DeleteQuietly(ctx context.Context, ids ...string) {
	for _, id := range ids {
		if id == "" {
			continue
		}
		if err := u.mediaRepo.Delete(ctx, id); err != nil {
			logger.Log.Warn("Media cleanup failed", "media_id", id, "error", err)
		}
	}
}

// sanitizeFilename keeps the base name and drops path and control characters.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" {
		return "upload"
	}
	return name
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

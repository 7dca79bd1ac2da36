package domain

import (
	"context"
	"time"
)

// MediaURLPrefix is the public route media payloads are served from.
const MediaURLPrefix = "/v1/media/"

// Media is a stored binary payload (images attached to posts and profiles).
type Media struct {
	ID          string    `json:"id" bson:"_id"`
	Filename    string    `json:"filename" bson:"filename"`
	ContentType string    `json:"contentType" bson:"contentType"`
	Data        []byte    `json:"-" bson:"data,omitempty"`
	Size        int64     `json:"size" bson:"size"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// Upload is a file received from a client that has not been persisted yet.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MediaURL builds the public URL for a media id.
func MediaURL(id string) string {
	if id == "" {
		return ""
	}
	return MediaURLPrefix + id
}

type MediaRepository interface {
	Create(ctx context.Context, media *Media) error
	GetByID(ctx context.Context, id string) (*Media, error)
	Delete(ctx context.Context, id string) error
}

type MediaUsecase interface {
	// ValidateUploads checks every upload without writing anything.
	ValidateUploads(uploads []Upload) error
	Store(ctx context.Context, upload Upload) (*Media, error)
	// StoreAll validates the whole batch first, then stores each upload in order.
	StoreAll(ctx context.Context, uploads []Upload) ([]string, error)
	Fetch(ctx context.Context, id string) (*Media, error)
	Delete(ctx context.Context, id string) error
	// DeleteQuietly removes media best-effort; failures are logged, never returned.
	DeleteQuietly(ctx context.Context, ids ...string)
}

package domain

import (
	"context"
	"slices"
	"time"
)

type Post struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	UserID      string    `json:"userId" bson:"user_id"`
	Images      []string  `json:"images" bson:"images"`
	ImageURL    string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	JobType     string    `json:"jobType,omitempty" bson:"jobType,omitempty"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	LikeCount   int       `json:"likeCount" bson:"likeCount"`
	LikedBy     []string  `json:"likedBy" bson:"likedBy"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SyncImageURL points ImageURL at the first attached image, or clears it.
func (p *Post) SyncImageURL() {
	if len(p.Images) == 0 {
		p.ImageURL = ""
		return
	}
	p.ImageURL = MediaURL(p.Images[0])
}

func (p *Post) IsLikedBy(userID string) bool {
	return slices.Contains(p.LikedBy, userID)
}

// ToggleLike adds or removes userID from LikedBy and reports whether the post
// is now liked by that user. LikeCount always equals len(LikedBy) afterwards.
func (p *Post) ToggleLike(userID string) bool {
	liked := !p.IsLikedBy(userID)
	if liked {
		p.LikedBy = append(p.LikedBy, userID)
	} else {
		p.LikedBy = slices.DeleteFunc(p.LikedBy, func(id string) bool { return id == userID })
	}
	p.LikeCount = len(p.LikedBy)
	return liked
}

type PostFilter struct {
	JobType  string
	Location string
	Search   string // case-insensitive substring of title or description
}

type CreatePostInput struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	UserID      string `validate:"required,uuid"`
	JobType     string
	Location    string
	Uploads     []Upload `validate:"-"`
}

// PostUpdate overwrites only the non-nil fields.
type PostUpdate struct {
	Title           *string
	Description     *string
	JobType         *string
	Location        *string
	DeleteOldImages bool
}

type PostPage struct {
	Posts       []Post `json:"posts"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	TotalPosts  int64  `json:"totalPosts"`
}

type LikeResult struct {
	Liked     bool   `json:"liked"`
	LikeCount int    `json:"likeCount"`
	Message   string `json:"message"`
}

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter PostFilter, limit, offset int) ([]Post, int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Post, error)
	// ListWall returns posts neither owned nor liked by userID.
	ListWall(ctx context.Context, userID string, limit, offset int) ([]Post, int64, error)
}

type PostUsecase interface {
	CreatePost(ctx context.Context, input CreatePostInput) (*Post, error)
	ListPosts(ctx context.Context, filter PostFilter, page Pagination) (*PostPage, error)
	GetPost(ctx context.Context, id string) (*Post, error)
	UpdatePost(ctx context.Context, id string, update PostUpdate, uploads []Upload) (*Post, error)
	DeletePost(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, postID, userID string) (*LikeResult, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Post, error)
	ListWall(ctx context.Context, userID string, page Pagination) (*PostPage, error)
}

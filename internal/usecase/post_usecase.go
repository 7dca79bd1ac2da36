package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type postUsecase struct {
	postRepo  domain.PostRepository
	mediaUC   domain.MediaUsecase
	validate  *validator.Validate
	maxImages int
	now       func() time.Time
}

func NewPostUsecase(postRepo domain.PostRepository, mediaUC domain.MediaUsecase, validate *validator.Validate, maxImages int) domain.PostUsecase {
	if maxImages <= 0 {
		maxImages = 5
	}
	return &postUsecase{
		postRepo:  postRepo,
		mediaUC:   mediaUC,
		validate:  validate,
		maxImages: maxImages,
		now:       time.Now,
	}
}

func (u *postUsecase) CreatePost(ctx context.Context, input domain.CreatePostInput) (*domain.Post, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if err := validateStruct(u.validate, input); err != nil {
		return nil, err
	}
	if len(input.Uploads) > u.maxImages {
		return nil, apperror.BadRequest(fmt.Sprintf("A post can have at most %d images", u.maxImages))
	}

	// Every file is validated before the first one is written.
	images, err := u.mediaUC.StoreAll(ctx, input.Uploads)
	if err != nil {
		return nil, err
	}

	now := u.now().UTC()
	post := &domain.Post{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		UserID:      input.UserID,
		Images:      images,
		JobType:     strings.TrimSpace(input.JobType),
		Location:    strings.TrimSpace(input.Location),
		LikedBy:     []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	post.SyncImageURL()

	if err := u.postRepo.Create(ctx, post); err != nil {
		u.mediaUC.DeleteQuietly(ctx, images...)
		return nil, internal(err)
	}
	return post, nil
}

func (u *postUsecase) ListPosts(ctx context.Context, filter domain.PostFilter, page domain.Pagination) (*domain.PostPage, error) {
	page = page.Normalize()
	filter.Search = strings.TrimSpace(filter.Search)

	posts, total, err := u.postRepo.List(ctx, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, internal(err)
	}
	return newPostPage(posts, total, page), nil
}

func (u *postUsecase) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	if err := validateID(id, "post"); err != nil {
		return nil, err
	}
	post, err := u.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Post not found")
	}
	return post, nil
}

func (u *postUsecase) UpdatePost(ctx context.Context, id string, update domain.PostUpdate, uploads []domain.Upload) (*domain.Post, error) {
	post, err := u.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	kept := len(post.Images)
	if update.DeleteOldImages {
		kept = 0
	}
	if kept+len(uploads) > u.maxImages {
		return nil, apperror.BadRequest(fmt.Sprintf("A post can have at most %d images", u.maxImages))
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, apperror.BadRequest("Title cannot be empty")
	}
	if update.Description != nil && strings.TrimSpace(*update.Description) == "" {
		return nil, apperror.BadRequest("Description cannot be empty")
	}
	if err := u.mediaUC.ValidateUploads(uploads); err != nil {
		return nil, err
	}

	var added []string
	if len(uploads) > 0 {
		if added, err = u.mediaUC.StoreAll(ctx, uploads); err != nil {
			return nil, err
		}
	}

	var replaced []string
	if update.DeleteOldImages {
		replaced = post.Images
		post.Images = []string{}
	}
	post.Images = append(post.Images, added...)

	if update.Title != nil {
		post.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		post.Description = strings.TrimSpace(*update.Description)
	}
	if update.JobType != nil {
		post.JobType = strings.TrimSpace(*update.JobType)
	}
	if update.Location != nil {
		post.Location = strings.TrimSpace(*update.Location)
	}
	post.SyncImageURL()
	post.UpdatedAt = u.now().UTC()

	if err := u.postRepo.Update(ctx, post); err != nil {
		u.mediaUC.DeleteQuietly(ctx, added...)
		return nil, notFoundOr(err, "Post not found")
	}
	// Old media go only once the post no longer references them.
	u.mediaUC.DeleteQuietly(ctx, replaced...)
	return post, nil
}

func (u *postUsecase) DeletePost(ctx context.Context, id string) error {
	post, err := u.GetPost(ctx, id)
	if err != nil {
		return err
	}

	u.mediaUC.DeleteQuietly(ctx, post.Images...)

	if err := u.postRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Post not found")
	}
	return nil
}

func (u *postUsecase) ToggleLike(ctx context.Context, postID, userID string) (*domain.LikeResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperror.BadRequest("userId required")
	}
	if err := validateID(userID, "user"); err != nil {
		return nil, err
	}

	post, err := u.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked := post.ToggleLike(userID)
	post.UpdatedAt = u.now().UTC()
	if err := u.postRepo.Update(ctx, post); err != nil {
		return nil, notFoundOr(err, "Post not found")
	}

	result := &domain.LikeResult{Liked: liked, LikeCount: post.LikeCount, Message: "Post unliked"}
	if liked {
		result.Message = "Post liked"
	}
	return result, nil
}

func (u *postUsecase) ListByOwner(ctx context.Context, ownerID string) ([]domain.Post, error) {
	if err := validateID(ownerID, "user"); err != nil {
		return nil, err
	}
	posts, err := u.postRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, internal(err)
	}
	return nonNilPosts(posts), nil
}

func (u *postUsecase) ListWall(ctx context.Context, userID string, page domain.Pagination) (*domain.PostPage, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperror.BadRequest("userId required")
	}
	if err := validateID(userID, "user"); err != nil {
		return nil, err
	}
	page = page.Normalize()

	posts, total, err := u.postRepo.ListWall(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, internal(err)
	}
	return newPostPage(posts, total, page), nil
}

func newPostPage(posts []domain.Post, total int64, page domain.Pagination) *domain.PostPage {
	return &domain.PostPage{
		Posts:       nonNilPosts(posts),
		CurrentPage: page.Page,
		TotalPages:  page.TotalPages(total),
		TotalPosts:  total,
	}
}

func nonNilPosts(posts []domain.Post) []domain.Post {
	if posts == nil {
		return []domain.Post{}
	}
	return posts
}

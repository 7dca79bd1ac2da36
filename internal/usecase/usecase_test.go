package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var gifData = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")

func gifUpload(name string) domain.Upload {
	return domain.Upload{Filename: name, ContentType: "image/gif", Data: bytes.Clone(gifData)}
}

func oversizedUpload() domain.Upload {
	data := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 6<<20)...)
	return domain.Upload{Filename: "big.jpg", ContentType: "image/jpeg", Data: data}
}

func newMediaUC(repo *MockMediaRepo) domain.MediaUsecase {
	return usecase.NewMediaUsecase(repo, usecase.MediaOptions{MaxUploadBytes: 5 << 20})
}

func TestMediaUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an oversized file without storing it", func(t *testing.T) {
		repo := new(MockMediaRepo)
		uc := newMediaUC(repo)

		_, err := uc.Store(ctx, oversizedUpload())
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
		assert.Contains(t, err.Error(), "Maximum size is 5MB")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should validate the whole batch before storing", func(t *testing.T) {
		repo := new(MockMediaRepo)
		uc := newMediaUC(repo)

		bad := domain.Upload{Filename: "doc.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.7")}
		_, err := uc.StoreAll(ctx, []domain.Upload{gifUpload("a.gif"), bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "doc.pdf")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should roll back stored media when a later write fails", func(t *testing.T) {
		repo := new(MockMediaRepo)
		uc := newMediaUC(repo)

		repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
		repo.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()

		_, err := uc.StoreAll(ctx, []domain.Upload{gifUpload("a.gif"), gifUpload("b.gif")})
		require.Error(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should map a missing media record to 404", func(t *testing.T) {
		repo := new(MockMediaRepo)
		uc := newMediaUC(repo)
		id := uuid.NewString()
		repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

		_, err := uc.Fetch(ctx, id)
		assert.Equal(t, http.StatusNotFound, apperror.Code(err))
	})

	t.Run("Should sanitize stored filenames", func(t *testing.T) {
		repo := new(MockMediaRepo)
		uc := newMediaUC(repo)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Media) bool {
			return m.Filename == "avatar.gif" && m.ContentType == "image/gif" && m.Size == int64(len(gifData))
		})).Return(nil)

		media, err := uc.Store(ctx, gifUpload("../../etc/avatar.gif"))
		require.NoError(t, err)
		assert.NotEmpty(t, media.ID)
	})
}

func TestPostUsecase(t *testing.T) {
	ctx := context.Background()
	validate := validation.New()
	ownerID := uuid.NewString()

	setup := func() (*MockPostRepo, *MockMediaRepo, domain.PostUsecase) {
		postRepo := new(MockPostRepo)
		mediaRepo := new(MockMediaRepo)
		return postRepo, mediaRepo, usecase.NewPostUsecase(postRepo, newMediaUC(mediaRepo), validate, 5)
	}

	t.Run("Should page through posts newest first", func(t *testing.T) {
		postRepo, _, uc := setup()
		posts := make([]domain.Post, 10)
		postRepo.On("List", mock.Anything, domain.PostFilter{}, 10, 0).Return(posts, int64(25), nil)

		page, err := uc.ListPosts(ctx, domain.PostFilter{}, domain.NewPagination("1", "10"))
		require.NoError(t, err)
		assert.Len(t, page.Posts, 10)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, int64(25), page.TotalPosts)
	})

	t.Run("Should return an empty page past the end", func(t *testing.T) {
		postRepo, _, uc := setup()
		postRepo.On("List", mock.Anything, domain.PostFilter{Search: "go"}, 10, 40).Return(nil, int64(25), nil)

		page, err := uc.ListPosts(ctx, domain.PostFilter{Search: "  go "}, domain.NewPagination("5", ""))
		require.NoError(t, err)
		assert.NotNil(t, page.Posts)
		assert.Empty(t, page.Posts)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("Should create a post with its images in order", func(t *testing.T) {
		postRepo, mediaRepo, uc := setup()
		mediaRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Twice()
		postRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		post, err := uc.CreatePost(ctx, domain.CreatePostInput{
			Title:       "Hiring Go devs",
			Description: "Remote friendly",
			UserID:      ownerID,
			Uploads:     []domain.Upload{gifUpload("a.gif"), gifUpload("b.gif")},
		})
		require.NoError(t, err)
		require.Len(t, post.Images, 2)
		assert.Equal(t, domain.MediaURL(post.Images[0]), post.ImageURL)
		assert.Equal(t, 0, post.LikeCount)
		assert.Empty(t, post.LikedBy)
		mediaRepo.AssertExpectations(t)
	})

	t.Run("Should reject an oversized image before writing anything", func(t *testing.T) {
		postRepo, mediaRepo, uc := setup()

		_, err := uc.CreatePost(ctx, domain.CreatePostInput{
			Title:       "Title",
			Description: "Body",
			UserID:      ownerID,
			Uploads:     []domain.Upload{gifUpload("ok.gif"), oversizedUpload()},
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
		mediaRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject more images than allowed", func(t *testing.T) {
		_, mediaRepo, uc := setup()
		uploads := make([]domain.Upload, 6)
		for i := range uploads {
			uploads[i] = gifUpload("x.gif")
		}

		_, err := uc.CreatePost(ctx, domain.CreatePostInput{Title: "T", Description: "D", UserID: ownerID, Uploads: uploads})
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
		mediaRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should require title and description", func(t *testing.T) {
		_, _, uc := setup()
		_, err := uc.CreatePost(ctx, domain.CreatePostInput{Title: "  ", Description: "D", UserID: ownerID})
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
	})

	t.Run("Should leave untouched fields alone on partial update", func(t *testing.T) {
		postRepo, mediaRepo, uc := setup()
		id := uuid.NewString()
		existing := &domain.Post{ID: id, Title: "Original", Description: "Old", UserID: ownerID, Images: []string{"m1", "m2"}}
		postRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
		postRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		desc := "New description"
		post, err := uc.UpdatePost(ctx, id, domain.PostUpdate{Description: &desc}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Original", post.Title)
		assert.Equal(t, "New description", post.Description)
		assert.Equal(t, []string{"m1", "m2"}, post.Images)
		mediaRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should replace images when deleteOldImages is set", func(t *testing.T) {
		postRepo, mediaRepo, uc := setup()
		id := uuid.NewString()
		existing := &domain.Post{ID: id, Title: "T", Description: "D", UserID: ownerID, Images: []string{"m1", "m2"}}
		postRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
		postRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		mediaRepo.On("Delete", mock.Anything, "m1").Return(nil)
		mediaRepo.On("Delete", mock.Anything, "m2").Return(errors.New("gone already"))
		mediaRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		post, err := uc.UpdatePost(ctx, id, domain.PostUpdate{DeleteOldImages: true}, []domain.Upload{gifUpload("new.gif")})
		require.NoError(t, err)
		require.Len(t, post.Images, 1)
		assert.NotContains(t, post.Images, "m1")
		assert.Equal(t, domain.MediaURL(post.Images[0]), post.ImageURL)
		mediaRepo.AssertExpectations(t)
	})

	t.Run("Should keep the old images when storing new ones fails", func(t *testing.T) {
		postRepo, mediaRepo, uc := setup()
		id := uuid.NewString()
		existing := &domain.Post{ID: id, Title: "T", Description: "D", UserID: ownerID, Images: []string{"m1", "m2"}}
		postRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
		mediaRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("store down")).Once()

		_, err := uc.UpdatePost(ctx, id, domain.PostUpdate{DeleteOldImages: true}, []domain.Upload{gifUpload("new.gif")})
		require.Error(t, err)
		mediaRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		postRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should drop new images and keep old ones when saving the post fails", func(t *testing.T) {
		postRepo, mediaRepo, uc := setup()
		id := uuid.NewString()
		existing := &domain.Post{ID: id, Title: "T", Description: "D", UserID: ownerID, Images: []string{"m1", "m2"}}
		postRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
		postRepo.On("Update", mock.Anything, mock.Anything).Return(errors.New("db down"))

		var stored string
		mediaRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.Media).ID
		}).Return(nil).Once()
		mediaRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.UpdatePost(ctx, id, domain.PostUpdate{DeleteOldImages: true}, []domain.Upload{gifUpload("new.gif")})
		assert.Equal(t, http.StatusInternalServerError, apperror.Code(err))
		mediaRepo.AssertNumberOfCalls(t, "Delete", 1)
		mediaRepo.AssertCalled(t, "Delete", mock.Anything, stored)
		mediaRepo.AssertNotCalled(t, "Delete", mock.Anything, "m1")
		mediaRepo.AssertNotCalled(t, "Delete", mock.Anything, "m2")
	})

	t.Run("Should delete every attached image with the post", func(t *testing.T) {
		postRepo, mediaRepo, uc := setup()
		id := uuid.NewString()
		postRepo.On("GetByID", mock.Anything, id).Return(&domain.Post{ID: id, Images: []string{"a", "b", "c"}}, nil)
		postRepo.On("Delete", mock.Anything, id).Return(nil)
		mediaRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)

		require.NoError(t, uc.DeletePost(ctx, id))
		mediaRepo.AssertNumberOfCalls(t, "Delete", 3)
		postRepo.AssertCalled(t, "Delete", mock.Anything, id)
	})

	t.Run("Should return 404 for a missing post", func(t *testing.T) {
		postRepo, _, uc := setup()
		id := uuid.NewString()
		postRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

		_, err := uc.GetPost(ctx, id)
		assert.Equal(t, http.StatusNotFound, apperror.Code(err))
	})

	t.Run("Should return 400 for a malformed post id", func(t *testing.T) {
		postRepo, _, uc := setup()
		_, err := uc.GetPost(ctx, "not-an-id")
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
		postRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should toggle a like on and off", func(t *testing.T) {
		postRepo, _, uc := setup()
		id := uuid.NewString()
		liker := uuid.NewString()
		post := &domain.Post{ID: id, UserID: ownerID, LikedBy: []string{}}
		postRepo.On("GetByID", mock.Anything, id).Return(post, nil)
		postRepo.On("Update", mock.Anything, post).Return(nil)

		res, err := uc.ToggleLike(ctx, id, liker)
		require.NoError(t, err)
		assert.True(t, res.Liked)
		assert.Equal(t, 1, res.LikeCount)
		assert.Equal(t, "Post liked", res.Message)

		res, err = uc.ToggleLike(ctx, id, liker)
		require.NoError(t, err)
		assert.False(t, res.Liked)
		assert.Equal(t, 0, res.LikeCount)
		assert.Equal(t, "Post unliked", res.Message)
	})

	t.Run("Should require a user id to like", func(t *testing.T) {
		_, _, uc := setup()
		_, err := uc.ToggleLike(ctx, uuid.NewString(), "")
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
	})

	t.Run("Should page the wall", func(t *testing.T) {
		postRepo, _, uc := setup()
		viewer := uuid.NewString()
		postRepo.On("ListWall", mock.Anything, viewer, 5, 5).Return([]domain.Post{{ID: "p"}}, int64(6), nil)

		page, err := uc.ListWall(ctx, viewer, domain.NewPagination("2", "5"))
		require.NoError(t, err)
		assert.Equal(t, 2, page.CurrentPage)
		assert.Equal(t, 2, page.TotalPages)
	})
}

func TestUserUsecase(t *testing.T) {
	ctx := context.Background()
	validate := validation.New()

	setup := func() (*MockUserRepo, *MockMediaRepo, domain.UserUsecase) {
		userRepo := new(MockUserRepo)
		mediaRepo := new(MockMediaRepo)
		return userRepo, mediaRepo, usecase.NewUserUsecase(userRepo, newMediaUC(mediaRepo), validate)
	}

	input := domain.RegisterInput{Email: " Ada@Example.com ", Password: "secret1", FirstName: "Ada", LastName: "Lovelace"}

	t.Run("Should register with a hashed password and default role", func(t *testing.T) {
		userRepo, _, uc := setup()
		userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		user, err := uc.Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, domain.RoleApplicant, user.Role)
		assert.NotEqual(t, "secret1", user.PasswordHash)
		assert.True(t, user.CheckPassword("secret1"))
		assert.NotNil(t, user.Skills)
	})

	t.Run("Should reject a duplicate email without creating", func(t *testing.T) {
		userRepo, _, uc := setup()
		userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.User{ID: "u1"}, nil)

		_, err := uc.Register(ctx, input)
		assert.Equal(t, http.StatusConflict, apperror.Code(err))
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should map a unique violation to conflict", func(t *testing.T) {
		userRepo, _, uc := setup()
		userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

		_, err := uc.Register(ctx, input)
		assert.Equal(t, http.StatusConflict, apperror.Code(err))
	})

	t.Run("Should reject a short password", func(t *testing.T) {
		_, _, uc := setup()
		bad := input
		bad.Password = "123"
		_, err := uc.Register(ctx, bad)
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
	})

	t.Run("Should refuse wrong credentials with one message", func(t *testing.T) {
		userRepo, _, uc := setup()
		user := &domain.User{ID: uuid.NewString(), Email: "ada@example.com"}
		require.NoError(t, user.SetPassword("secret1"))
		userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(user, nil)
		userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

		_, err := uc.Login(ctx, "ada@example.com", "wrong")
		assert.Equal(t, http.StatusUnauthorized, apperror.Code(err))
		_, err2 := uc.Login(ctx, "nobody@example.com", "secret1")
		assert.Equal(t, http.StatusUnauthorized, apperror.Code(err2))
		assert.Equal(t, err.Error(), err2.Error())

		got, err := uc.Login(ctx, "ADA@example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("Should store an empty list for null skills", func(t *testing.T) {
		userRepo, _, uc := setup()
		id := uuid.NewString()
		userRepo.On("GetByID", mock.Anything, id).Return(&domain.User{ID: id, Skills: []string{"Go"}}, nil)
		userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		skills, err := uc.UpdateSkills(ctx, id, nil)
		require.NoError(t, err)
		assert.NotNil(t, skills)
		assert.Empty(t, skills)
	})

	t.Run("Should only change supplied profile fields", func(t *testing.T) {
		userRepo, _, uc := setup()
		id := uuid.NewString()
		userRepo.On("GetByID", mock.Anything, id).Return(&domain.User{ID: id, FirstName: "Ada", LastName: "Lovelace"}, nil)
		userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		title := "Engineer"
		user, err := uc.UpdateProfile(ctx, id, domain.ProfileUpdate{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Ada", user.FirstName)
		assert.Equal(t, "Engineer", user.Title)
	})

	t.Run("Should replace the profile image and drop the old one", func(t *testing.T) {
		userRepo, mediaRepo, uc := setup()
		id := uuid.NewString()
		old := "old-media"
		userRepo.On("GetByID", mock.Anything, id).Return(&domain.User{ID: id, ProfileImage: &old}, nil)
		userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		mediaRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		mediaRepo.On("Delete", mock.Anything, old).Return(nil)

		user, err := uc.UpdateProfileImage(ctx, id, gifUpload("me.gif"))
		require.NoError(t, err)
		require.NotNil(t, user.ProfileImage)
		assert.NotEqual(t, old, *user.ProfileImage)
		require.NotNil(t, user.ProfileImageURL)
		assert.Equal(t, domain.MediaURL(*user.ProfileImage), *user.ProfileImageURL)
		mediaRepo.AssertExpectations(t)
	})

	t.Run("Should keep the old profile image when the upload is invalid", func(t *testing.T) {
		userRepo, mediaRepo, uc := setup()
		id := uuid.NewString()
		old := "old-media"
		userRepo.On("GetByID", mock.Anything, id).Return(&domain.User{ID: id, ProfileImage: &old}, nil)

		_, err := uc.UpdateProfileImage(ctx, id, oversizedUpload())
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
		mediaRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should delete the user and their profile image", func(t *testing.T) {
		userRepo, mediaRepo, uc := setup()
		id := uuid.NewString()
		img := "img"
		userRepo.On("GetByID", mock.Anything, id).Return(&domain.User{ID: id, ProfileImage: &img}, nil)
		userRepo.On("Delete", mock.Anything, id).Return(nil)
		mediaRepo.On("Delete", mock.Anything, img).Return(nil)

		require.NoError(t, uc.DeleteUser(ctx, id))
		mediaRepo.AssertExpectations(t)
	})
}

func TestMessageUsecase(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.NewString(), uuid.NewString()

	t.Run("Should create a message between two users", func(t *testing.T) {
		repo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(repo, validation.New())
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		msg, err := uc.CreateMessage(ctx, domain.CreateMessageInput{SenderID: a, ReceiverID: b, Text: " hi "})
		require.NoError(t, err)
		assert.Equal(t, "hi", msg.Text)
		assert.NotEmpty(t, msg.ID)
	})

	t.Run("Should reject a message without text", func(t *testing.T) {
		repo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(repo, validation.New())

		_, err := uc.CreateMessage(ctx, domain.CreateMessageInput{SenderID: a, ReceiverID: b})
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should return a conversation in stored order", func(t *testing.T) {
		repo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(repo, validation.New())
		views := []domain.MessageView{{ID: "1", Text: "first"}, {ID: "2", Text: "second"}}
		repo.On("ListConversation", mock.Anything, a, b).Return(views, nil)

		got, err := uc.GetConversation(ctx, a, b)
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("Should return an empty list when there are no messages", func(t *testing.T) {
		repo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(repo, validation.New())
		repo.On("ListForUser", mock.Anything, a).Return(nil, nil)

		got, err := uc.ListForUser(ctx, a)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Should reject malformed user ids", func(t *testing.T) {
		repo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(repo, validation.New())
		_, err := uc.GetConversation(ctx, a, "nope")
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
	})

	t.Run("Should not update with blank text", func(t *testing.T) {
		repo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(repo, validation.New())
		_, err := uc.UpdateMessage(ctx, uuid.NewString(), "   ")
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
	})

	t.Run("Should return 404 when deleting a missing message", func(t *testing.T) {
		repo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(repo, validation.New())
		id := uuid.NewString()
		repo.On("Delete", mock.Anything, id).Return(domain.ErrNotFound)

		err := uc.DeleteMessage(ctx, id)
		assert.Equal(t, http.StatusNotFound, apperror.Code(err))
	})
}

func TestJobUsecase(t *testing.T) {
	ctx := context.Background()
	owner := uuid.NewString()

	t.Run("Should create a valid job", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo, validation.New())
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		job := &domain.Job{UserID: owner, Title: "Backend Engineer", Company: "Acme", Location: "Remote", JobType: domain.JobTypeFullTime}
		require.NoError(t, uc.CreateJob(ctx, job))
		assert.NotEmpty(t, job.ID)
		assert.NotNil(t, job.Requirements)
	})

	t.Run("Should reject an unknown job type", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo, validation.New())

		job := &domain.Job{UserID: owner, Title: "T", Company: "C", Location: "L", JobType: "Gig"}
		err := uc.CreateJob(ctx, job)
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should pass filters and paging to the repository", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo, validation.New())
		filter := domain.JobFilter{JobType: domain.JobTypeContract, Location: "Berlin"}
		repo.On("List", mock.Anything, filter, 20, 20).Return([]domain.Job{{ID: "j"}}, int64(21), nil)

		jobs, total, err := uc.ListJobs(ctx, filter, domain.Pagination{Page: 2, Limit: 20})
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
		assert.Equal(t, int64(21), total)
	})

	t.Run("Should update only supplied job fields", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo, validation.New())
		id := uuid.NewString()
		repo.On("GetByID", mock.Anything, id).Return(&domain.Job{ID: id, Title: "Old", Company: "Acme"}, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		title := "New"
		job, err := uc.UpdateJob(ctx, id, domain.JobUpdate{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "New", job.Title)
		assert.Equal(t, "Acme", job.Company)
	})
}

func TestProjectUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a year in the future", func(t *testing.T) {
		repo := new(MockProjectRepo)
		uc := usecase.NewProjectUsecase(repo, validation.New())

		err := uc.CreateProject(ctx, &domain.Project{UserID: uuid.NewString(), Topic: "Compiler", Year: 3000})
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
	})

	t.Run("Should default skills to an empty list", func(t *testing.T) {
		repo := new(MockProjectRepo)
		uc := usecase.NewProjectUsecase(repo, validation.New())
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		p := &domain.Project{UserID: uuid.NewString(), Topic: "Compiler", Year: 2020}
		require.NoError(t, uc.CreateProject(ctx, p))
		assert.NotNil(t, p.Skills)
	})
}

func TestExperienceUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an end year before the start year", func(t *testing.T) {
		repo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(repo, validation.New())
		to := 2015

		err := uc.CreateExperience(ctx, &domain.Experience{UserID: uuid.NewString(), Title: "Dev", Description: "Built things", FromYear: 2018, ToYear: &to})
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should check the merged range on update", func(t *testing.T) {
		repo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(repo, validation.New())
		id := uuid.NewString()
		to := 2020
		repo.On("GetByID", mock.Anything, id).Return(&domain.Experience{ID: id, Title: "Dev", FromYear: 2018, ToYear: &to}, nil)

		from := 2021
		_, err := uc.UpdateExperience(ctx, id, domain.ExperienceUpdate{FromYear: &from})
		assert.Equal(t, http.StatusBadRequest, apperror.Code(err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthUsecase(t *testing.T) {
	ctx := context.Background()
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("Should report ok when every dependency answers", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]domain.Pinger{"database": up, "redis": nil})

		status, healthy := uc.Check(ctx)
		assert.True(t, healthy)
		assert.Equal(t, "ok", status["status"])
		assert.Equal(t, "up", status["database"])
		assert.Equal(t, "disabled", status["redis"])
	})

	t.Run("Should report degraded when a dependency fails", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]domain.Pinger{"database": up, "objectStorage": down})

		status, healthy := uc.Check(ctx)
		assert.False(t, healthy)
		assert.Equal(t, "degraded", status["status"])
		assert.Equal(t, "down", status["objectStorage"])
	})
}

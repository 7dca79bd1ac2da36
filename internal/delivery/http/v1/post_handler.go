package v1

import (
	"net/http"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUC         domain.PostUsecase
	maxUploadBytes int64
}

func NewPostHandler(r *gin.RouterGroup, postUC domain.PostUsecase, maxUploadBytes int64, upload []gin.HandlerFunc) {
	handler := &PostHandler{postUC: postUC, maxUploadBytes: maxUploadBytes}

	posts := r.Group("/posts")
	{
		posts.POST("", with(upload, handler.Create)...)
		posts.GET("", handler.List)
		posts.GET("/wall/:userId", handler.Wall)
		posts.GET("/user/:userId", handler.ListByOwner)
		posts.GET("/:id", handler.GetDetails)
		posts.PUT("/:id", with(upload, handler.Update)...)
		posts.POST("/:id/like", handler.Like)
		posts.DELETE("/:id", handler.Delete)
	}
}

type LikeRequest struct {
	UserID string `json:"userId"`
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Up to 5 images; every file is validated before anything is stored.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  true   "Description"
// @Param        userId       formData  string  true   "Owner user ID"
// @Param        jobType      formData  string  false  "Job type"
// @Param        location     formData  string  false  "Location"
// @Param        images       formData  file    false  "Images"
// @Success      201          {object}  response.Response{data=domain.Post}
// @Failure      400          {object}  response.Response
// @Router       /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	uploads, err := readUploads(c, "images", h.maxUploadBytes)
	if err != nil {
		c.Error(err)
		return
	}

	input := domain.CreatePostInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		UserID:      c.PostForm("userId"),
		JobType:     c.PostForm("jobType"),
		Location:    c.PostForm("location"),
		Uploads:     uploads,
	}

	post, err := h.postUC.CreatePost(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Post created successfully", post)
}

// ListPosts godoc
// @Summary      List posts
// @Description  Newest first. Filters combine with AND; search matches title or description.
// @Tags         posts
// @Produce      json
// @Param        page      query     int     false  "Page number"  default(1)
// @Param        limit     query     int     false  "Page size"    default(10)
// @Param        type      query     string  false  "Job type"
// @Param        location  query     string  false  "Location"
// @Param        search    query     string  false  "Search text"
// @Success      200       {object}  response.Response{data=domain.PostPage}
// @Router       /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	filter := domain.PostFilter{
		JobType:  c.Query("type"),
		Location: c.Query("location"),
		Search:   c.Query("search"),
	}

	page, err := h.postUC.ListPosts(c.Request.Context(), filter, pageFromQuery(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Posts retrieved", page)
}

// GetPost godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response{data=domain.Post}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id} [get]
func (h *PostHandler) GetDetails(c *gin.Context) {
	post, err := h.postUC.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post retrieved", post)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Only sent fields change. New images are appended unless deleteOldImages is true.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        id               path      string  true   "Post ID"
// @Param        title            formData  string  false  "Title"
// @Param        description      formData  string  false  "Description"
// @Param        jobType          formData  string  false  "Job type"
// @Param        location         formData  string  false  "Location"
// @Param        deleteOldImages  formData  bool    false  "Replace the existing images"
// @Param        images           formData  file    false  "Images"
// @Success      200              {object}  response.Response{data=domain.Post}
// @Failure      400              {object}  response.Response
// @Failure      404              {object}  response.Response
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	uploads, err := readUploads(c, "images", h.maxUploadBytes)
	if err != nil {
		c.Error(err)
		return
	}

	update := domain.PostUpdate{
		Title:           formString(c, "title"),
		Description:     formString(c, "description"),
		JobType:         formString(c, "jobType"),
		Location:        formString(c, "location"),
		DeleteOldImages: formBool(c, "deleteOldImages"),
	}

	post, err := h.postUC.UpdatePost(c.Request.Context(), c.Param("id"), update, uploads)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post updated successfully", post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Attached images are removed as well.
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postUC.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post deleted successfully", nil)
}

// LikePost godoc
// @Summary      Like or unlike a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Post ID"
// @Param        like  body      LikeRequest  true  "Liking user"
// @Success      200   {object}  response.Response{data=domain.LikeResult}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /posts/{id}/like [post]
func (h *PostHandler) Like(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.postUC.ToggleLike(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, result.Message, result)
}

// ListUserPosts godoc
// @Summary      List a user's posts
// @Tags         posts
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response{data=[]domain.Post}
// @Failure      400     {object}  response.Response
// @Router       /posts/user/{userId} [get]
func (h *PostHandler) ListByOwner(c *gin.Context) {
	posts, err := h.postUC.ListByOwner(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Posts retrieved", posts)
}

// WallPosts godoc
// @Summary      Wall feed
// @Description  Posts the user neither owns nor has liked, newest first.
// @Tags         posts
// @Produce      json
// @Param        userId  path      string  true   "User ID"
// @Param        page    query     int     false  "Page number"  default(1)
// @Param        limit   query     int     false  "Page size"    default(10)
// @Success      200     {object}  response.Response{data=domain.PostPage}
// @Failure      400     {object}  response.Response
// @Router       /posts/wall/{userId} [get]
func (h *PostHandler) Wall(c *gin.Context) {
	page, err := h.postUC.ListWall(c.Request.Context(), c.Param("userId"), pageFromQuery(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Wall posts retrieved", page)
}

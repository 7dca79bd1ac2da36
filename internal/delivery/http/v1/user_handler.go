package v1

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC         domain.UserUsecase
	maxUploadBytes int64
	loginTracker   *security.LoginTracker
}

type UserHandlerConfig struct {
	MaxUploadBytes int64
	LoginTracker   *security.LoginTracker // nil disables lockout
	AuthMW         []gin.HandlerFunc      // register and login
	UploadMW       []gin.HandlerFunc      // profile image
}

func NewUserHandler(r *gin.RouterGroup, userUC domain.UserUsecase, cfg UserHandlerConfig) {
	handler := &UserHandler{
		userUC:         userUC,
		maxUploadBytes: cfg.MaxUploadBytes,
		loginTracker:   cfg.LoginTracker,
	}

	users := r.Group("/users")
	{
		users.POST("/register", with(cfg.AuthMW, handler.Register)...)
		users.POST("/login", with(cfg.AuthMW, handler.Login)...)
		users.GET("/:id", handler.GetByID)
		users.PUT("/:id", handler.UpdateProfile)
		users.PUT("/:id/skills", handler.UpdateSkills)
		users.POST("/:id/profile-image", with(cfg.UploadMW, handler.UpdateProfileImage)...)
		users.DELETE("/:id", handler.Delete)
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateSkillsRequest struct {
	Skills json.RawMessage `json:"skills" swaggertype:"array,string"`
}

// Register godoc
// @Summary      Register a user
// @Description  Create an account. Emails are unique case-insensitively.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      domain.RegisterInput  true  "Registration"
// @Success      201   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req domain.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	user, err := h.userUC.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", user)
}

// Login godoc
// @Summary      Log in
// @Description  Check credentials and return the user record.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200          {object}  response.Response{data=domain.User}
// @Failure      400          {object}  response.Response
// @Failure      401          {object}  response.Response
// @Failure      429          {object}  response.Response  "Rate limited or locked out after repeated failures"
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	ctx := c.Request.Context()
	email := domain.NormalizeEmail(req.Email)
	ip := c.ClientIP()

	blocked, err := h.loginTracker.IsBlocked(ctx, email, ip)
	if err != nil {
		logger.Log.Warn("Login tracker unavailable", "error", err)
	}
	if blocked {
		if ttl, ok, _ := h.loginTracker.GetBlockTTL(ctx, email); ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(ttl.Seconds()))))
		}
		c.Error(apperror.TooManyRequests("Too many failed login attempts. Please try again later."))
		return
	}

	user, err := h.userUC.Login(ctx, req.Email, req.Password)
	if err != nil {
		if apperror.Is(err, http.StatusUnauthorized) && email != "" {
			if _, terr := h.loginTracker.RecordFailedAttempt(ctx, email, ip, response.RequestID(c)); terr != nil {
				logger.Log.Warn("Failed to record login failure", "error", terr)
			}
		}
		c.Error(err)
		return
	}

	if err := h.loginTracker.ClearAttempts(ctx, email, ip); err != nil {
		logger.Log.Warn("Failed to clear login failures", "error", err)
	}

	response.Success(c, http.StatusOK, "Login successful", user)
}

// GetUser godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", user)
}

// UpdateProfile godoc
// @Summary      Update a profile
// @Description  Only the fields present in the body are changed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "User ID"
// @Param        profile  body      domain.ProfileUpdate  true  "Profile fields"
// @Success      200      {object}  response.Response{data=domain.User}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req domain.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	user, err := h.userUC.UpdateProfile(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", user)
}

// UpdateSkills godoc
// @Summary      Replace a user's skills
// @Description  A value that is not an array clears the list.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "User ID"
// @Param        skills  body      UpdateSkillsRequest  true  "Skills"
// @Success      200     {object}  response.Response{data=[]string}
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /users/{id}/skills [put]
func (h *UserHandler) UpdateSkills(c *gin.Context) {
	var req UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	skills, err := h.userUC.UpdateSkills(c.Request.Context(), c.Param("id"), domain.CoerceSkills(req.Skills))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills updated successfully", skills)
}

// UpdateProfileImage godoc
// @Summary      Upload a profile image
// @Description  Replaces the current profile image. JPEG, PNG or GIF up to 5 MB.
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      string  true  "User ID"
// @Param        profileImage  formData  file    true  "Image"
// @Success      200           {object}  response.Response{data=domain.User}
// @Failure      400           {object}  response.Response
// @Failure      404           {object}  response.Response
// @Router       /users/{id}/profile-image [post]
func (h *UserHandler) UpdateProfileImage(c *gin.Context) {
	upload, err := readSingleUpload(c, "profileImage", h.maxUploadBytes)
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.userUC.UpdateProfileImage(c.Request.Context(), c.Param("id"), upload)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile image updated successfully", user)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userUC.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}

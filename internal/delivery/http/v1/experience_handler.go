package v1

import (
	"net/http"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	expUC domain.ExperienceUsecase
}

func NewExperienceHandler(r *gin.RouterGroup, expUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{expUC: expUC}

	experiences := r.Group("/experiences")
	{
		experiences.GET("", handler.List)
		experiences.GET("/user/:userId", handler.ListByOwner)
		experiences.GET("/:id", handler.GetDetails)
		experiences.POST("", handler.Create)
		experiences.PUT("/:id", handler.Update)
		experiences.DELETE("/:id", handler.Delete)
	}
}

type CreateExperienceRequest struct {
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FromYear    int    `json:"fromYear"`
	ToYear      *int   `json:"toYear"`
}

// CreateExperience godoc
// @Summary      Add a work experience
// @Description  toYear may be omitted for a current position.
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        experience  body      CreateExperienceRequest  true  "Experience"
// @Success      201         {object}  response.Response{data=domain.Experience}
// @Failure      400         {object}  response.Response
// @Router       /experiences [post]
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	exp := &domain.Experience{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		FromYear:    req.FromYear,
		ToYear:      req.ToYear,
	}

	if err := h.expUC.CreateExperience(c.Request.Context(), exp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience created", exp)
}

// ListExperiences godoc
// @Summary      List experiences
// @Tags         experiences
// @Produce      json
// @Param        page   query     int  false  "Page number"  default(1)
// @Param        limit  query     int  false  "Page size"    default(10)
// @Success      200    {object}  response.Response{data=domain.PaginatedResult[domain.Experience]}
// @Router       /experiences [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	page := pageFromQuery(c)

	exps, total, err := h.expUC.ListExperiences(c.Request.Context(), page)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience list", domain.NewPaginatedResult(exps, total, page))
}

// GetExperience godoc
// @Summary      Get an experience
// @Tags         experiences
// @Produce      json
// @Param        id   path      string  true  "Experience ID"
// @Success      200  {object}  response.Response{data=domain.Experience}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experiences/{id} [get]
func (h *ExperienceHandler) GetDetails(c *gin.Context) {
	exp, err := h.expUC.GetExperience(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience details", exp)
}

// ListUserExperiences godoc
// @Summary      List a user's experiences
// @Description  Most recent start year first.
// @Tags         experiences
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response{data=[]domain.Experience}
// @Failure      400     {object}  response.Response
// @Router       /experiences/user/{userId} [get]
func (h *ExperienceHandler) ListByOwner(c *gin.Context) {
	exps, err := h.expUC.ListByOwner(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience list", exps)
}

// UpdateExperience godoc
// @Summary      Update an experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        id          path      string                   true  "Experience ID"
// @Param        experience  body      domain.ExperienceUpdate  true  "Experience fields"
// @Success      200         {object}  response.Response{data=domain.Experience}
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /experiences/{id} [put]
func (h *ExperienceHandler) Update(c *gin.Context) {
	var req domain.ExperienceUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	exp, err := h.expUC.UpdateExperience(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", exp)
}

// DeleteExperience godoc
// @Summary      Delete an experience
// @Tags         experiences
// @Produce      json
// @Param        id   path      string  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experiences/{id} [delete]
func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.expUC.DeleteExperience(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience deleted", nil)
}

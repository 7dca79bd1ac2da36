package v1

import (
	"net/http"
	"strconv"

	"job-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaUC domain.MediaUsecase
}

func NewMediaHandler(r *gin.RouterGroup, mediaUC domain.MediaUsecase) {
	handler := &MediaHandler{mediaUC: mediaUC}

	r.GET("/media/:id", handler.Stream)
}

// StreamMedia godoc
// @Summary      Stream a stored image
// @Description  Returns the raw bytes with their stored Content-Type.
// @Tags         media
// @Produce      image/jpeg,image/png,image/gif
// @Param        id   path      string  true  "Media ID"
// @Success      200  {file}    binary
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /media/{id} [get]
func (h *MediaHandler) Stream(c *gin.Context) {
	media, err := h.mediaUC.Fetch(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	// Media ids are never reused, so a stored payload never changes.
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Header("Content-Disposition", "inline; filename="+strconv.Quote(media.Filename))
	c.Data(http.StatusOK, media.ContentType, media.Data)
}

package v1

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// multipartMemory is how much of a multipart body gin keeps in memory before spilling to disk.
const multipartMemory = 8 << 20

// readUploads reads every file sent under field. Each file is read up to
// maxBytes+1 so an oversized file still reaches media validation and fails
// there with the usual message. A request that is not multipart has no files.
func readUploads(c *gin.Context, field string, maxBytes int64) ([]domain.Upload, error) {
	form, err := multipartForm(c)
	if err != nil || form == nil {
		return nil, err
	}

	headers := form.File[field]
	uploads := make([]domain.Upload, 0, len(headers))
	for _, fh := range headers {
		up, err := readUpload(fh, maxBytes)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, up)
	}
	return uploads, nil
}

// readSingleUpload returns the first file sent under field, or a 400 when there is none.
func readSingleUpload(c *gin.Context, field string, maxBytes int64) (domain.Upload, error) {
	uploads, err := readUploads(c, field, maxBytes)
	if err != nil {
		return domain.Upload{}, err
	}
	if len(uploads) == 0 {
		return domain.Upload{}, apperror.BadRequest("No file uploaded")
	}
	return uploads[0], nil
}

func multipartForm(c *gin.Context) (*multipart.Form, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, nil
	}
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrNotMultipart):
			return nil, nil
		case errors.As(err, &tooLarge):
			return nil, apperror.New(http.StatusRequestEntityTooLarge, "Request body too large", err)
		default:
			return nil, apperror.BadRequest("Invalid multipart form")
		}
	}
	return c.Request.MultipartForm, nil
}

func readUpload(fh *multipart.FileHeader, maxBytes int64) (domain.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return domain.Upload{}, apperror.BadRequest(fmt.Sprintf("Could not read file %s", fh.Filename))
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return domain.Upload{}, apperror.BadRequest(fmt.Sprintf("Could not read file %s", fh.Filename))
	}
	return domain.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// formString returns nil when the field was not sent at all.
func formString(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}

func formBool(c *gin.Context, key string) bool {
	b, _ := strconv.ParseBool(c.PostForm(key))
	return b
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guestlistapp/guestlist-api/internal/api/handler/v1/response"
	"github.com/guestlistapp/guestlist-api/internal/domain"
	"github.com/guestlistapp/guestlist-api/internal/service"
)

var (
	errMissingFile  = errors.New("multipart field 'file' is required")
	errFileTooLarge = fmt.Errorf("file exceeds the %d MB upload limit", service.MaxUploadSize>>20)
)

type UploadService interface {
	Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (domain.UploadedFile, error)
}

type UploadHandler struct {
	svc UploadService
}

func NewUploadHandler(svc UploadService) *UploadHandler {
	return &UploadHandler{
		svc: svc,
	}
}

// HandleUpload godoc
// @Summary      Proxy a media file into object storage
// @Security     BearerAuth
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData   file true "image/* or video/* file, max 50MB"
// @Success      200      {object}   domain.UploadedFile
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /upload [post]
func (h *UploadHandler) HandleUpload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errMissingFile))

		return
	}

	if header.Size > service.MaxUploadSize {
		response.RenderErr(ctx, response.ErrBadRequest(errFileTooLarge))

		return
	}

	file, err := header.Open()
	if err != nil {
		err = fmt.Errorf("v1.HandleUpload -> header.Open -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}
	defer file.Close()

	uploaded, err := h.svc.Upload(
		ctx.Request.Context(),
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedMediaType) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUnsupportedMediaType))

			return
		}

		err = fmt.Errorf("v1.HandleUpload -> h.svc.Upload -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, uploaded)
}

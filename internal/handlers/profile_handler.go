package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idanaslund/final-project-backend/internal/domain/account"
	"github.com/idanaslund/final-project-backend/internal/dto"
	"github.com/idanaslund/final-project-backend/internal/httperr"
	"github.com/idanaslund/final-project-backend/internal/httpresp"
	"github.com/idanaslund/final-project-backend/internal/middleware"
	accountuc "github.com/idanaslund/final-project-backend/internal/usecase/account"
)

const (
	maxPatchBytes = 64 << 10
	// room for multipart headers around the image part
	maxUploadBytes = account.MaxImageBytes + 1<<20
)

type ProfileHandler struct {
	get    *accountuc.GetProfile
	update *accountuc.UpdateProfile
	upload *accountuc.UploadProfileImage
}

func NewProfileHandler(
	get *accountuc.GetProfile,
	update *accountuc.UpdateProfile,
	upload *accountuc.UploadProfileImage,
) *ProfileHandler {
	return &ProfileHandler{get: get, update: update, upload: upload}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "Invalid profile id")
		return
	}

	user, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "Could not find profile information")
		return
	}

	httpresp.OK(c, dto.NewProfileDTO(user))
}

func (h *ProfileHandler) Patch(c *gin.Context) {
	caller, _ := middleware.CurrentUser(c)

	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "Invalid profile id")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxPatchBytes))
	if err != nil {
		httperr.BadRequest(c, "Invalid profile update")
		return
	}

	user, err := h.update.Execute(c.Request.Context(), caller.ID, id, body)
	if err != nil {
		httperr.FromError(c, err, "Could not update profile")
		return
	}

	httpresp.OK(c, dto.NewProfileDTO(user))
}

func (h *ProfileHandler) UploadImage(c *gin.Context) {
	caller, _ := middleware.CurrentUser(c)

	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "Invalid profile id")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	fh, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.FromError(c, account.ErrImageTooLarge, "")
			return
		}
		httperr.BadRequest(c, "Image file is required")
		return
	}
	if fh.Size > account.MaxImageBytes {
		httperr.FromError(c, account.ErrImageTooLarge, "")
		return
	}

	data, err := readPart(fh)
	if err != nil {
		httperr.BadRequest(c, "Image file is required")
		return
	}

	user, err := h.upload.Execute(c.Request.Context(), caller.ID, id, fh.Filename, data)
	if err != nil {
		httperr.FromError(c, err, "Could not upload image")
		return
	}

	httpresp.OK(c, dto.NewProfileDTO(user))
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, account.MaxImageBytes+1))
}

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/triply-app/triply-backend/internal/service"
	"github.com/triply-app/triply-backend/internal/util"
)

type ImageHandler struct {
	images *service.ImageService
}

func RegisterImages(e *echo.Echo, images *service.ImageService, maxUpload int64) {
	handler := &ImageHandler{images: images}

	group := e.Group("/api/v1/images")
	if maxUpload > 0 {
		group.Use(middleware.BodyLimit(humanByteLimit(maxUpload)))
	}
	group.POST("", handler.upload)
}

func (h *ImageHandler) upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("image file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("unable to read image file"))
	}
	defer file.Close()

	url, err := h.images.Upload(c.Request().Context(), service.ImageUpload{
		Reader:      file,
		Size:        fileHeader.Size,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImageRequired):
			return c.JSON(http.StatusBadRequest, util.Error("image file is required"))
		case errors.Is(err, service.ErrImageTooLarge):
			return c.JSON(http.StatusRequestEntityTooLarge, util.Error("image exceeds maximum size"))
		case errors.Is(err, service.ErrImageUnsupportedType):
			return c.JSON(http.StatusUnsupportedMediaType, util.Error("unsupported image content type"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("an error occurred while storing the image"))
		}
	}

	return c.JSON(http.StatusCreated, util.Envelope{"image_url": url})
}

func humanByteLimit(maxBytes int64) string {
	const megabyte = 1 << 20
	if maxBytes >= megabyte && maxBytes%megabyte == 0 {
		return fmt.Sprintf("%dM", maxBytes/megabyte)
	}
	return fmt.Sprintf("%dK", (maxBytes+1023)/1024)
}

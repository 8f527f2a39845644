// upload.go - Multipart upload parsing
package api

import (
	"errors"
	"io"
	"mime"

	"github.com/labstack/echo/v4"
	"github.com/postcritic/backend/internal/models"
)

const uploadField = "file"

// readUpload streams the multipart body and returns the first part named
// "file" that was sent as a file. A file part with an empty filename is
// what browsers send when nothing was picked.
func readUpload(c echo.Context, maxBytes int64) (models.UploadedFile, error) {
	reader, err := c.Request().MultipartReader()
	if err != nil {
		return models.UploadedFile{}, NewBadRequestError(MsgNoFileUploaded, err)
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
				return models.UploadedFile{}, NewPayloadTooLargeError(err)
			}
			return models.UploadedFile{}, NewBadRequestError(MsgNoFileUploaded, err)
		}

		if part.FormName() != uploadField {
			part.Close()
			continue
		}
		_, params, _ := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
		filename, isFile := params["filename"]
		if !isFile {
			part.Close()
			continue
		}
		if filename == "" {
			part.Close()
			return models.UploadedFile{}, NewBadRequestError(MsgNoFileSelected, nil)
		}

		data, err := io.ReadAll(io.LimitReader(part, maxBytes+1))
		part.Close()
		if err != nil {
			if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
				return models.UploadedFile{}, NewPayloadTooLargeError(err)
			}
			return models.UploadedFile{}, NewBadRequestError(MsgNoFileUploaded, err)
		}
		if int64(len(data)) > maxBytes {
			return models.UploadedFile{}, NewPayloadTooLargeError(nil)
		}

		return models.UploadedFile{Name: part.FileName(), Data: data}, nil
	}

	return models.UploadedFile{}, NewBadRequestError(MsgNoFileUploaded, nil)
}

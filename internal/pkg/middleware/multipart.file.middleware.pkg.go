package middleware

import (
	_type "extrato-gateway/internal/common/type"
	"extrato-gateway/internal/pkg/helper"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const BufferedFilesKey = "bufferedFiles"

// FieldOpts bounds the number of files accepted for one form field.
// Max 0 means no upper bound.
type FieldOpts struct {
	Name string
	Max  int
	Min  int
}

// MultipartFormMiddleware reads every file of the configured fields into memory
// and stores them under BufferedFilesKey. Content checks are left to the handler.
func MultipartFormMiddleware(fields []FieldOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		send := Sender(c)

		form, err := c.MultipartForm()
		if err != nil {
			send(helper.ParseResponse(&_type.Response{
				Code:    http.StatusBadRequest,
				Message: "Failed retrieving files",
				Error:   err,
			}))
			return
		}

		bufferedFiles := make(_type.BufferedFiles)

		for _, field := range fields {
			for _, fileHeader := range form.File[field.Name] {
				bufferedFile, err := readFile(field.Name, fileHeader)
				if err != nil {
					send(helper.ParseResponse(&_type.Response{
						Code:    http.StatusInternalServerError,
						Message: "Failed reading file",
						Error:   err,
					}))
					return
				}

				bufferedFiles[field.Name] = append(bufferedFiles[field.Name], bufferedFile)
			}
		}

		for _, field := range fields {
			if len(bufferedFiles[field.Name]) < field.Min {
				send(helper.ParseResponse(&_type.Response{
					Code:    http.StatusBadRequest,
					Message: "Minimum " + field.Name + " is " + strconv.Itoa(field.Min),
				}))
				return
			}
			if field.Max > 0 && len(bufferedFiles[field.Name]) > field.Max {
				send(helper.ParseResponse(&_type.Response{
					Code:    http.StatusBadRequest,
					Message: "Maximum " + field.Name + " is " + strconv.Itoa(field.Max),
				}))
				return
			}
		}

		c.Set(BufferedFilesKey, bufferedFiles)
		c.Next()
	}
}

func readFile(field string, fileHeader *multipart.FileHeader) (_type.BufferedFile, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return _type.BufferedFile{}, err
	}
	defer file.Close()

	fileBuffer, err := io.ReadAll(file)
	if err != nil {
		return _type.BufferedFile{}, err
	}

	return _type.BufferedFile{
		MediaType:    field,
		OriginalName: fileHeader.Filename,
		Encoding:     "7bit",
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Size:         len(fileBuffer),
		Buffer:       fileBuffer,
	}, nil
}

// GetBufferedFiles returns the files stored by MultipartFormMiddleware for field.
func GetBufferedFiles(c *gin.Context, field string) []_type.BufferedFile {
	value, ok := c.Get(BufferedFilesKey)
	if !ok {
		return nil
	}
	files, _ := value.(_type.BufferedFiles)
	return files.Get(field)
}

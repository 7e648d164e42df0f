package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChenReuven/next-api/internal/config"
)

func testUploadConfig() config.UploadConfig {
	return config.UploadConfig{
		MaxSizeMB:    5,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/gif"},
	}
}

// multipartBody builds a multipart request body with a single file part
// carrying an explicit content type.
func multipartBody(t *testing.T, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestUploadHandlerUpload(t *testing.T) {
	t.Parallel()

	t.Run("accepts a small image", func(t *testing.T) {
		t.Parallel()
		handler := NewUploadHandler(testUploadConfig())

		body, contentType := multipartBody(t, "photo of cat.png", "image/png", []byte("fake-png"))
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.Upload(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp UploadResponse
		decodeBody(t, rr, &resp)
		assert.True(t, resp.Uploaded)
		assert.Equal(t, "image/png", resp.Type)
		assert.Equal(t, int64(len("fake-png")), resp.Size)
		assert.True(t, strings.HasSuffix(resp.Filename, "-photo_of_cat.png"),
			"spaces are normalized and a unique prefix added: %s", resp.Filename)
		assert.Equal(t, "/uploads/"+resp.Filename, resp.URL)
	})

	t.Run("rejects non-multipart request", func(t *testing.T) {
		t.Parallel()
		handler := NewUploadHandler(testUploadConfig())

		req := httptest.NewRequest(http.MethodPost, "/api/upload",
			bytes.NewBufferString(`{"file":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		handler.Upload(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Content type must be multipart/form-data", errorMessage(t, rr))
	})

	t.Run("rejects missing file field", func(t *testing.T) {
		t.Parallel()
		handler := NewUploadHandler(testUploadConfig())

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.WriteField("notfile", "value"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rr := httptest.NewRecorder()

		handler.Upload(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "No file uploaded", errorMessage(t, rr))
	})

	t.Run("rejects disallowed file type", func(t *testing.T) {
		t.Parallel()
		handler := NewUploadHandler(testUploadConfig())

		body, contentType := multipartBody(t, "script.exe", "application/octet-stream", []byte("MZ"))
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.Upload(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t,
			"File type not allowed. Only JPG, PNG and GIF images are accepted",
			errorMessage(t, rr))
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		t.Parallel()
		// A 1MB limit keeps the oversized fixture small.
		handler := NewUploadHandler(config.UploadConfig{
			MaxSizeMB:    1,
			AllowedTypes: []string{"image/png"},
		})

		body, contentType := multipartBody(t, "big.png", "image/png",
			bytes.Repeat([]byte("x"), 2<<20))
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.Upload(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "File size exceeds 1MB limit", errorMessage(t, rr))
	})
}

func TestUploadHandlerInfo(t *testing.T) {
	t.Parallel()

	handler := NewUploadHandler(testUploadConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/upload", nil)
	rr := httptest.NewRecorder()

	handler.Info(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp UploadInfoResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, "File upload API endpoint", resp.Message)
	assert.Equal(t, "5MB", resp.Restrictions.MaxSize)
	assert.Equal(t, []string{"image/jpeg", "image/png", "image/gif"}, resp.Restrictions.AllowedTypes)
}

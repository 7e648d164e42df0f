package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/ChenReuven/next-api/internal/api/shared"
	"github.com/ChenReuven/next-api/internal/config"
	"github.com/ChenReuven/next-api/internal/redact"
)

// UploadHandler handles the file upload stub. It enforces the size and
// content-type restrictions of a real upload endpoint but never writes
// anything to disk; the accepted file is described back to the caller and
// discarded.
type UploadHandler struct {
	maxSizeBytes int64
	maxSizeMB    int
	allowedTypes []string
}

// NewUploadHandler creates a new UploadHandler from upload configuration.
func NewUploadHandler(cfg config.UploadConfig) *UploadHandler {
	return &UploadHandler{
		maxSizeBytes: int64(cfg.MaxSizeMB) << 20,
		maxSizeMB:    cfg.MaxSizeMB,
		allowedTypes: cfg.AllowedTypes,
	}
}

// Upload handles POST /api/upload.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "multipart/form-data") {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Content type must be multipart/form-data")
		return
	}

	// Cap the parse buffer at the configured limit; anything larger spills
	// nothing useful since it gets rejected below anyway.
	if err := r.ParseMultipartForm(h.maxSizeBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("failed to close uploaded file", "error", redact.Error(err))
		}
	}()

	if header.Size > h.maxSizeBytes {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("File size exceeds %dMB limit", h.maxSizeMB))
		return
	}

	fileType := header.Header.Get("Content-Type")
	if !slices.Contains(h.allowedTypes, fileType) {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"File type not allowed. Only JPG, PNG and GIF images are accepted")
		return
	}

	storedName := storedFilename(header.Filename)

	shared.RespondWithJSON(w, r, http.StatusCreated, UploadResponse{
		Filename: storedName,
		Size:     header.Size,
		Type:     fileType,
		Uploaded: true,
		URL:      "/uploads/" + storedName,
	})
}

// Info handles GET /api/upload, documenting the endpoint's contract.
func (h *UploadHandler) Info(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, UploadInfoResponse{
		Message:      "File upload API endpoint",
		Instructions: "Send a POST request with a multipart/form-data that includes a file field",
		Restrictions: UploadRestrictions{
			MaxSize:      fmt.Sprintf("%dMB", h.maxSizeMB),
			AllowedTypes: h.allowedTypes,
		},
	})
}

// storedFilename builds a collision-free stored name from the client's
// filename: spaces normalized, prefixed with a fresh UUID.
func storedFilename(original string) string {
	safe := strings.ReplaceAll(original, " ", "_")
	return uuid.New().String() + "-" + safe
}

package api

import (
	"net/http"
	"time"

	"github.com/ChenReuven/next-api/internal/api/shared"
)

// RootHandler serves the demo routes at the API root: a hello response, a
// JSON echo, and the CORS example endpoint.
type RootHandler struct{}

// NewRootHandler creates a new RootHandler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Hello handles GET /.
func (h *RootHandler) Hello(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Hello world!",
	})
}

// Echo handles POST /, echoing the received JSON payload back.
func (h *RootHandler) Echo(w http.ResponseWriter, r *http.Request) {
	var body interface{}
	if err := shared.DecodeJSON(r, &body); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]interface{}{
		"message": "Data received successfully",
		"data":    body,
	})
}

// Update handles PUT /, echoing the received JSON payload back.
func (h *RootHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body interface{}
	if err := shared.DecodeJSON(r, &body); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"message": "Resource updated successfully",
		"data":    body,
	})
}

// Delete handles DELETE /.
func (h *RootHandler) Delete(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Resource deleted successfully",
	})
}

// CORSExample handles GET and POST /api/cors-example, a public endpoint for
// exercising the CORS middleware from a browser.
func (h *RootHandler) CORSExample(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"message":   "This endpoint supports CORS!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"method":    r.Method,
		"url":       r.URL.String(),
	}

	if r.Method == http.MethodPost {
		var body interface{}
		if err := shared.DecodeJSON(r, &body); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid JSON payload")
			return
		}
		response["message"] = "Data received with CORS support"
		response["receivedData"] = body
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ChenReuven/next-api/internal/api/shared"
)

// ValidateHandler demonstrates declarative schema validation of an untrusted
// payload: the schema lives entirely in struct tags, and every field failure
// is reported with a stable message instead of validator internals.
type ValidateHandler struct {
	validate *validator.Validate
}

// NewValidateHandler creates a new ValidateHandler.
func NewValidateHandler() *ValidateHandler {
	return &ValidateHandler{
		validate: validator.New(),
	}
}

// Validate handles POST /api/validate.
func (h *ValidateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateUserRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Server error", err)
			return
		}

		fields := make(map[string]string, len(fieldErrors))
		for _, fe := range fieldErrors {
			fields[fieldPath(fe)] = fieldMessage(fe)
		}

		shared.RespondWithJSON(w, r, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: fields,
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, ValidateSuccessResponse{
		Message: "Validation successful",
		User:    req,
	})
}

// Schema handles GET /api/validate, describing the expected payload.
func (h *ValidateHandler) Schema(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"message": "User validation schema information",
		"schema":  "userSchema",
		"example": map[string]interface{}{
			"name":  "Example User",
			"email": "user@example.com",
			"age":   30,
			"role":  "user",
			"preferences": map[string]bool{
				"newsletter":    true,
				"notifications": false,
			},
		},
		"rules": map[string]string{
			"name":        "String with minimum 2 characters",
			"email":       "Valid email address",
			"age":         "Optional positive integer",
			"role":        "Must be one of: admin, user, editor",
			"preferences": "Optional object with newsletter and notifications booleans",
		},
	})
}

// fieldPath renders a dotted lowercase path for a field error, e.g.
// "preferences.newsletter".
func fieldPath(fe validator.FieldError) string {
	switch fe.StructNamespace() {
	case "ValidateUserRequest.Preferences.Newsletter":
		return "preferences.newsletter"
	case "ValidateUserRequest.Preferences.Notifications":
		return "preferences.notifications"
	case "ValidateUserRequest.Name":
		return "name"
	case "ValidateUserRequest.Email":
		return "email"
	case "ValidateUserRequest.Age":
		return "age"
	case "ValidateUserRequest.Role":
		return "role"
	default:
		return fe.StructNamespace()
	}
}

// fieldMessage renders a stable human-readable message per failed rule.
func fieldMessage(fe validator.FieldError) string {
	switch fieldPath(fe) {
	case "name":
		if fe.Tag() == "min" {
			return "Name must be at least 2 characters long"
		}
		return "Name is required"
	case "email":
		if fe.Tag() == "email" {
			return "Invalid email address"
		}
		return "Email is required"
	case "age":
		return "Age must be a positive integer"
	case "role":
		return "Role must be admin, user, or editor"
	case "preferences.newsletter", "preferences.notifications":
		return "Must be a boolean"
	default:
		return "Invalid value"
	}
}

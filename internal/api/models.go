package api

import (
	"time"

	"github.com/ChenReuven/next-api/internal/domain"
)

// Common request/response structures

// LoginRequest defines the payload for the login endpoint. Presence of both
// fields is enforced by the handler with a dedicated message; the validator
// tags document the same contract.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// Token is the opaque bearer token for the new session
	Token string `json:"token"`

	// User is the authenticated account without its credential material
	User *domain.Account `json:"user"`

	// ExpiresIn is the session lifetime in milliseconds
	ExpiresIn int64 `json:"expiresIn"`
}

// VerifyResponse defines the successful response for the token verification
// endpoint.
type VerifyResponse struct {
	User    *domain.Account `json:"user"`
	Expires time.Time       `json:"expires"`
}

// CreateUserRequest defines the payload for creating a user record.
type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateUserRequest defines the payload for updating a user record.
// Absent fields keep their current values.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DeleteUserResponse confirms a user deletion and echoes the removed record.
type DeleteUserResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// CreateProductRequest defines the payload for creating a product record.
type CreateProductRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Price    *float64 `json:"price"    validate:"required,gte=0"`
	Category string   `json:"category" validate:"required"`
	InStock  *bool    `json:"inStock"`
}

// UpdateProductRequest defines the payload for updating a product record.
// Absent fields keep their current values.
type UpdateProductRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Category string   `json:"category"`
	InStock  *bool    `json:"inStock"`
}

// DeleteProductResponse confirms a product deletion and echoes the removed
// record.
type DeleteProductResponse struct {
	Message string          `json:"message"`
	Product *domain.Product `json:"product"`
}

// ProductListResponse is a page of products plus pagination metadata.
type ProductListResponse struct {
	Data []domain.Product `json:"data"`
	Meta ProductListMeta  `json:"meta"`
}

// ProductListMeta describes the position of a page within the filtered set.
type ProductListMeta struct {
	CurrentPage   int `json:"currentPage"`
	TotalPages    int `json:"totalPages"`
	TotalProducts int `json:"totalProducts"`
	Limit         int `json:"limit"`
}

// UploadResponse describes an accepted (mock) upload.
type UploadResponse struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
	Uploaded bool   `json:"uploaded"`
	URL      string `json:"url"`
}

// UploadInfoResponse documents the upload endpoint for GET requests.
type UploadInfoResponse struct {
	Message      string             `json:"message"`
	Instructions string             `json:"instructions"`
	Restrictions UploadRestrictions `json:"restrictions"`
}

// UploadRestrictions lists the limits the upload endpoint enforces.
type UploadRestrictions struct {
	MaxSize      string   `json:"maxSize"`
	AllowedTypes []string `json:"allowedTypes"`
}

// ValidateUserRequest is the schema enforced by the validation demo
// endpoint.
type ValidateUserRequest struct {
	Name        string       `json:"name"                  validate:"required,min=2"`
	Email       string       `json:"email"                 validate:"required,email"`
	Age         *int         `json:"age,omitempty"         validate:"omitempty,gt=0"`
	Role        string       `json:"role"                  validate:"required,oneof=admin user editor"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// Preferences is the optional nested object of the validation demo schema.
type Preferences struct {
	Newsletter    *bool `json:"newsletter"    validate:"required"`
	Notifications *bool `json:"notifications" validate:"required"`
}

// ValidateSuccessResponse confirms a payload passed the demo schema.
type ValidateSuccessResponse struct {
	Message string              `json:"message"`
	User    ValidateUserRequest `json:"user"`
}

// ValidationErrorResponse lists per-field validation failures.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

package handler

import "github.com/quantumstudy/study-api/internal/core/domain"

// Tag is a pointer so that an absent or null tag can be told apart from an
// empty string: the first is a missing field, the second an invalid value.
type updateTagRequest struct {
	UserID string  `json:"userId" validate:"required"`
	Tag    *string `json:"tag"    validate:"required"`
}

type updateTagResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user" swaggertype:"object"`
}

// messageResponse is the error envelope, documented for swagger.
type messageResponse struct {
	Message string `json:"message"`
}

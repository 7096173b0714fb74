package serverutils

import "github.com/DeDsEC-7/NoteNest-Api/internal/dto"

// Envelope is the JSON shape of every response body.
type Envelope[T any] struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Data       T               `json:"data,omitempty"`
	Pagination *dto.Pagination `json:"pagination,omitempty"`
	Errors     any             `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Envelope[T] {
	return Envelope[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func SuccessListResponse[T any](message string, data T, pagination dto.Pagination) Envelope[T] {
	return Envelope[T]{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &pagination,
	}
}

func ErrorResponse(message string) Envelope[any] {
	return Envelope[any]{
		Success: false,
		Message: message,
	}
}

func ValidationErrorResponse(errs any) Envelope[any] {
	return Envelope[any]{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	}
}

package models

import "github.com/gatherly/server/internal/apperr"

type ApiResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func ErrorResponse(err string, fields []apperr.FieldError) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   err,
		Errors:  fields,
	}
}

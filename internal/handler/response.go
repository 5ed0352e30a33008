package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIResponse is the JSON envelope returned by the API. Status is a boolean so
// callers can branch without parsing the message.
type APIResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// Success sends a successful response without a record id.
func Success(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, APIResponse{Status: true, Message: message})
}

// Created sends a 201 response carrying the newly assigned record id.
func Created(c echo.Context, message string, id int64) error {
	return c.JSON(http.StatusCreated, APIResponse{Status: true, Message: message, ID: id})
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, APIResponse{Status: false, Message: message})
}

package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with. It mirrors the shape
// the core API uses so the dashboard can treat both services uniformly:
// a success flag plus either data or an error/message string.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success responses
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &Response{
		Success: true,
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, &Response{
		Success: true,
		Message: "Resource created successfully",
		Data:    data,
	})
}

// Error responses
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, &Response{
		Error: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, &Response{
		Error: message,
	})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, &Response{
		Error: message,
	})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, &Response{
		Error: message,
	})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, &Response{
		Error: message,
	})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, &Response{
		Error: message,
	})
}

// PayloadTooLarge rejects an upload before any of it is read.
func PayloadTooLarge(c *gin.Context, message string) {
	c.JSON(http.StatusRequestEntityTooLarge, &Response{
		Error: message,
	})
}

// BadGateway reports a failed core API call.
func BadGateway(c *gin.Context, message string) {
	c.JSON(http.StatusBadGateway, &Response{
		Error: message,
	})
}

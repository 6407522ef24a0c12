package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ApiResponse struct {
	Errors []string `json:"errors,omitempty"`
	Data   any      `json:"data,omitempty"`
}

func ResultData(c *gin.Context, obj any) {
	c.JSON(http.StatusOK, ApiResponse{Data: obj})
}

func ResultNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ApiResponse{Errors: []string{message}})
}

func ResultError(c *gin.Context, errors []string) {
	if len(errors) > 0 {
		c.JSON(http.StatusBadRequest, ApiResponse{Errors: errors})
	} else {
		c.JSON(http.StatusInternalServerError, ApiResponse{Errors: []string{"unknownError"}})
	}
}

func ResultInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ApiResponse{Errors: []string{"internalError"}})
}

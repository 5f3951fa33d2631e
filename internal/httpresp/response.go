package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the success body shared by every route.
type Envelope[T any] struct {
	Response T    `json:"response"`
	Success  bool `json:"success"`
}

func Write[T any](c *gin.Context, status int, data T) {
	c.JSON(status, Envelope[T]{
		Response: data,
		Success:  true,
	})
}

func OK[T any](c *gin.Context, data T) {
	Write(c, http.StatusOK, data)
}

func Created[T any](c *gin.Context, data T) {
	Write(c, http.StatusCreated, data)
}

// List always encodes an array, never null.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	Write(c, http.StatusOK, data)
}

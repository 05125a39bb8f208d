package httpresp

import "github.com/gin-gonic/gin"

// ListResponse is the envelope every collection endpoint returns.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

// List wraps a slice with its length so clients render counts without a
// second request.
func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func queryID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ValidationErrors{{Field: name, Reason: "must be a positive id"}}
	}
	return id, nil
}

// optionalInt parses an optional integer query parameter; absent yields 0.
func optionalInt(c *gin.Context, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ValidationErrors{{Field: name, Reason: "must be an integer"}}
	}
	return v, nil
}

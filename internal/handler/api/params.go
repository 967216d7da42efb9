package api

import (
	"strconv"
	"time"

	"petshop-api/internal/handler/httperr"
	"petshop-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.Abort(c, errs.Invalid(name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.Abort(c, errs.Invalid(name+" must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// queryInt64 returns nil when the parameter is absent.
func queryInt64(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httperr.Abort(c, errs.Invalid(name+" must be an integer"))
		return nil, false
	}
	return &v, true
}

func queryLimit(c *gin.Context) (int, bool) {
	v, ok := queryInt64(c, "limit")
	if !ok || v == nil {
		return 0, ok
	}
	return int(*v), true
}

func queryUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := uuid.Parse(raw)
	if err != nil {
		httperr.Abort(c, errs.Invalid(name+" must be a UUID"))
		return nil, false
	}
	return &v, true
}

func queryTime(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		httperr.Abort(c, errs.Invalid(name+" must be an RFC 3339 timestamp"))
		return nil, false
	}
	return &v, true
}

func queryBool(c *gin.Context, name string) (*bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		httperr.Abort(c, errs.Invalid(name+" must be true or false"))
		return nil, false
	}
	return &v, true
}

func queryString(c *gin.Context, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}

// Package common holds what every handler shares: the response envelope,
// identity lookup, path and paging parameters, and upload spooling.
package common

import (
	"context"

	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/paginate"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type ErrorResponse struct {
	StatusCode int64  `json:"statusCode"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// Empty is the payload of responses that carry no document.
var Empty = struct{}{}

// SendResponse writes the success envelope with the same HTTP status.
func SendResponse(c *app.RequestContext, code int, data interface{}, message string) {
	c.JSON(code, Response{
		StatusCode: code,
		Data:       data,
		Message:    message,
		Success:    code < consts.StatusBadRequest,
	})
}

// SendError writes the error envelope for err. Internal failures are logged
// with the request path.
func SendError(ctx context.Context, c *app.RequestContext, err error) {
	e := errno.ConvertErr(err)
	if e.ErrCode >= errno.ServiceErrCode {
		hlog.CtxErrorf(ctx, "%s %s failed: %v", c.Method(), c.Path(), err)
	}
	c.AbortWithStatusJSON(int(e.ErrCode), ErrorResponse{
		StatusCode: e.ErrCode,
		Message:    e.ErrMsg,
	})
}

// ActorID is the authenticated caller. Routes behind the auth middleware
// always have one.
func ActorID(c *app.RequestContext) (int64, error) {
	if id := OptionalActor(c); id > 0 {
		return id, nil
	}
	return 0, errno.UnauthorizedErr
}

// OptionalActor is the caller's id or 0 for anonymous requests.
func OptionalActor(c *app.RequestContext) int64 {
	v, ok := c.Get(constants.IdentityKey)
	if !ok {
		return 0
	}
	if id := utils.Transfer(v); id > 0 {
		return id
	}
	return 0
}

// PathID validates the path parameter name, labelled for the error message.
func PathID(c *app.RequestContext, name, label string) (int64, error) {
	return utils.ParseID(c.Param(name), label)
}

// Params reads the shared listing query: page, limit, query, sortBy, sortType.
func Params(c *app.RequestContext) paginate.Params {
	return paginate.NewParams(
		c.Query("page"),
		c.Query("limit"),
		c.Query("query"),
		c.Query("sortBy"),
		c.Query("sortType"),
	)
}

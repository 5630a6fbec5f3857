package middleware

import (
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// Abort writes the error envelope and stops the chain.
func Abort(c *app.RequestContext, err error) {
	e := errno.ConvertErr(err)
	c.AbortWithStatusJSON(int(e.ErrCode), utils.H{
		"statusCode": e.ErrCode,
		"message":    e.ErrMsg,
		"success":    false,
	})
}

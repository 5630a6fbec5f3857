package middleware

import (
	"context"
	"fmt"

	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// RecoveryHandler turns a recovered panic into the 500 envelope.
func RecoveryHandler(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
	hlog.CtxErrorf(ctx, "[Recovery] panic recovered: %v\n%s", err, stack)
	Abort(c, errno.ServiceErr.WithMessage(fmt.Sprintf("%v", err)))
}

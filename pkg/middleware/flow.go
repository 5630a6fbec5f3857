package middleware

import (
	"context"

	"VidTube.com/pkg/errno"
	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// APIResource is the sentinel resource guarding every /api/v1 request.
const APIResource = "vidtube-api"

// InitFlowControl starts sentinel and loads a QPS rule for the API. A
// non-positive qps leaves the API unguarded.
func InitFlowControl(qps float64) error {
	if err := sentinel.InitDefault(); err != nil {
		return errors.Wrap(err, "init sentinel")
	}
	if qps <= 0 {
		hlog.Warn("Sentinel qps not set, flow control disabled")
		return nil
	}
	_, err := flow.LoadRules([]*flow.Rule{
		{
			Resource:               APIResource,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              qps,
			StatIntervalInMs:       1000,
		},
	})
	if err != nil {
		return errors.Wrap(err, "load flow rules")
	}
	hlog.Infof("Sentinel flow control enabled at %.0f qps", qps)
	return nil
}

// FlowControl rejects requests over the loaded rule with 429.
func FlowControl(resource string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		e, blocked := sentinel.Entry(resource, sentinel.WithTrafficType(base.Inbound))
		if blocked != nil {
			hlog.CtxWarnf(ctx, "Request blocked by flow control: %s %s", c.Method(), c.Path())
			Abort(c, errno.TooManyRequestsErr)
			return
		}
		defer e.Exit()
		c.Next(ctx)
	}
}

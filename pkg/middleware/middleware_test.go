package middleware

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *route.Engine {
	return route.NewEngine(config.NewOptions([]config.Option{}))
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
}

func decode(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestHealth(t *testing.T) {
	r := newEngine()
	r.GET("/healthcheck", Health)

	w := ut.PerformRequest(r, consts.MethodGet, "/healthcheck", nil)
	resp := w.Result()
	assert.Equal(t, consts.StatusOK, resp.StatusCode())

	env := decode(t, resp.Body())
	assert.True(t, env.Success)
	var stats HostStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, "OK", stats.Status)
	assert.Positive(t, stats.Goroutines)
}

func TestRecoveryEnvelope(t *testing.T) {
	r := newEngine()
	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(RecoveryHandler)))
	r.GET("/boom", func(ctx context.Context, c *app.RequestContext) {
		panic("boom")
	})

	w := ut.PerformRequest(r, consts.MethodGet, "/boom", nil)
	resp := w.Result()
	assert.Equal(t, consts.StatusInternalServerError, resp.StatusCode())
	env := decode(t, resp.Body())
	assert.False(t, env.Success)
	assert.Equal(t, consts.StatusInternalServerError, env.StatusCode)
	assert.Nil(t, env.Data)
}

func TestFlowControlRejects(t *testing.T) {
	require.NoError(t, InitFlowControl(0))
	const resource = "flow-control-test"
	_, err := flow.LoadRules([]*flow.Rule{{
		Resource:               resource,
		TokenCalculateStrategy: flow.Direct,
		ControlBehavior:        flow.Reject,
		Threshold:              1,
		StatIntervalInMs:       1000,
	}})
	require.NoError(t, err)

	r := newEngine()
	r.Use(FlowControl(resource))
	r.GET("/ping", func(ctx context.Context, c *app.RequestContext) {
		c.String(consts.StatusOK, "pong")
	})

	codes := map[int]int{}
	for i := 0; i < 5; i++ {
		codes[ut.PerformRequest(r, consts.MethodGet, "/ping", nil).Result().StatusCode()]++
	}
	assert.GreaterOrEqual(t, codes[consts.StatusOK], 1)
	assert.GreaterOrEqual(t, codes[consts.StatusTooManyRequests], 1)
}

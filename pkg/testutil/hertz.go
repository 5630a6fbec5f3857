package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"VidTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the response envelope with the payload left raw.
type Envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
}

// NewEngine returns a bare engine that attaches actor as the authenticated
// identity on every request. actor 0 leaves requests anonymous.
func NewEngine(actor int64) *route.Engine {
	r := route.NewEngine(config.NewOptions([]config.Option{}))
	r.Use(func(ctx context.Context, c *app.RequestContext) {
		if actor > 0 {
			c.Set(constants.IdentityKey, actor)
		}
		c.Next(ctx)
	})
	return r
}

// Perform sends one request, with body as JSON when non-empty, and decodes
// the envelope.
func Perform(t *testing.T, r *route.Engine, method, url, body string, headers ...ut.Header) (int, Envelope) {
	t.Helper()
	var b *ut.Body
	if body != "" {
		b = &ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}
		headers = append(headers, ut.Header{Key: "Content-Type", Value: "application/json"})
	}
	resp := ut.PerformRequest(r, method, url, b, headers...).Result()
	var env Envelope
	require.NoError(t, json.Unmarshal(resp.Body(), &env), string(resp.Body()))
	return resp.StatusCode(), env
}

package jaeger

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	jaegerclient "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// InitJaeger registers a jaeger tracer as the global opentracing tracer.
// With no agent address the noop tracer stays in place.
func InitJaeger(service, agentAddr string) (opentracing.Tracer, io.Closer) {
	if agentAddr == "" {
		logrus.Info("jaeger agent not configured, tracing disabled")
		return opentracing.NoopTracer{}, nopCloser{}
	}
	cfg := &jaegercfg.Configuration{
		ServiceName: service,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaegerclient.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           false,
			LocalAgentHostPort: agentAddr,
		},
	}
	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(jaegerclient.StdLogger))
	if err != nil {
		logrus.Errorf("cannot init jaeger: %v", err)
		return opentracing.NoopTracer{}, nopCloser{}
	}
	opentracing.SetGlobalTracer(tracer)
	return tracer, closer
}

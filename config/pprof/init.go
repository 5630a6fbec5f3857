package pprof

import (
	"net/http"
	_ "net/http/pprof"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Load serves the net/http/pprof handlers on addr in the background.
func Load(addr string) {
	runtime.SetMutexProfileFraction(1)
	runtime.SetBlockProfileRate(1)

	go func() {
		logrus.Infof("pprof listening on %s", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			logrus.Errorf("pprof server stopped: %v", err)
		}
	}()
}

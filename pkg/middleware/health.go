package middleware

import (
	"context"
	"runtime"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

var startedAt = time.Now()

// HostStats is the health payload.
type HostStats struct {
	Status        string  `json:"status"`
	UptimeSeconds int64   `json:"uptimeSeconds"`
	Goroutines    int     `json:"goroutines"`
	CPUPercent    float64 `json:"cpuPercent"`
	MemoryPercent float64 `json:"memoryPercent"`
}

// Health reports liveness plus a snapshot of host load. Stat failures are
// logged and leave the fields at zero; the process is still alive.
func Health(ctx context.Context, c *app.RequestContext) {
	stats := HostStats{
		Status:        "OK",
		UptimeSeconds: int64(time.Since(startedAt).Seconds()),
		Goroutines:    runtime.NumGoroutine(),
	}
	if pct, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		hlog.CtxWarnf(ctx, "Read cpu stats failed: %v", err)
	} else if len(pct) > 0 {
		stats.CPUPercent = pct[0]
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		hlog.CtxWarnf(ctx, "Read memory stats failed: %v", err)
	} else {
		stats.MemoryPercent = vm.UsedPercent
	}

	c.JSON(consts.StatusOK, utils.H{
		"statusCode": consts.StatusOK,
		"data":       stats,
		"message":    "Health check passed",
		"success":    true,
	})
}

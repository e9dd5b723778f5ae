package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug records to a
// charm logger. The CLI installs it under --verbose.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger, or to log.Default() when
// logger is nil.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger.WithPrefix("hooks")}
}

func (h *LogHooks) OnResolveStart(_ context.Context, size int) {
	h.logger.Debug("resolve start", "n", size)
}

func (h *LogHooks) OnResolveComplete(_ context.Context, size int, robinson bool, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("resolve failed", "n", size, "duration", d, "err", err)
		return
	}
	h.logger.Debug("resolve done", "n", size, "robinson", robinson, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "route", route, "status", status, "duration", d)
}

// Install registers h for every hook category.
func (h *LogHooks) Install() {
	SetResolveHooks(h)
	SetCacheHooks(h)
	SetServerHooks(h)
}

var (
	_ ResolveHooks = (*LogHooks)(nil)
	_ CacheHooks   = (*LogHooks)(nil)
	_ ServerHooks  = (*LogHooks)(nil)
)

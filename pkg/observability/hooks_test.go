package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopResolveHooks{}
	r.OnResolveStart(ctx, 10)
	r.OnResolveComplete(ctx, 10, true, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "result")
	c.OnCacheMiss(ctx, "result")
	c.OnCacheSet(ctx, "artifact", 1024)

	s := NoopServerHooks{}
	s.OnRequest(ctx, "POST", "/v1/resolve")
	s.OnResponse(ctx, "POST", "/v1/resolve", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Resolve().(NoopResolveHooks); !ok {
		t.Error("Resolve() should return NoopResolveHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should return NoopServerHooks by default")
	}

	customResolve := &testResolveHooks{}
	SetResolveHooks(customResolve)
	if Resolve() != customResolve {
		t.Error("SetResolveHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Resolve().(NoopResolveHooks); !ok {
		t.Error("Reset() should restore NoopResolveHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testResolveHooks{}
	SetResolveHooks(custom)
	SetResolveHooks(nil)

	if Resolve() != custom {
		t.Error("SetResolveHooks(nil) should be ignored")
	}
}

func TestLogHooks(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	NewLogHooks(logger).Install()

	ctx := context.Background()
	Resolve().OnResolveComplete(ctx, 5, true, time.Millisecond, nil)
	Cache().OnCacheMiss(ctx, "result")
	Server().OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"resolve done", "robinson=true", "cache miss", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testResolveHooks struct{ NoopResolveHooks }
type testCacheHooks struct{ NoopCacheHooks }

package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestToolProfilesCoverRegisteredTools(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv, _, _ := testServer()
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	tools, err := session.ListTools(ctx, &sdkmcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("list tools failed: %v", err)
	}
	for _, tool := range tools.Tools {
		if _, ok := toolProfiles[tool.Name]; !ok {
			t.Fatalf("tool %q has no profile", tool.Name)
		}
	}
	if len(tools.Tools) != len(toolProfiles) {
		t.Fatalf("expected %d profiled tools, got %d registered", len(toolProfiles), len(tools.Tools))
	}

	if p := profileFor("nope"); p.cost != 1 || p.timeoutFactor != 1 || p.domain != "unknown" {
		t.Fatalf("unexpected fallback profile: %+v", p)
	}
	if p := profileFor(" profile_build "); p.cost != 3 || p.domain != "profile" {
		t.Fatalf("unexpected profile_build profile: %+v", p)
	}
}

func TestTimeoutMiddlewareScalesByTool(t *testing.T) {
	var remaining time.Duration
	next := func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
		deadline, ok := ctx.Deadline()
		if !ok {
			t.Fatal("expected a deadline")
		}
		remaining = time.Until(deadline)
		return nil, nil
	}
	h := timeoutMiddleware(time.Second)(next)

	call := func(name string) time.Duration {
		req := &sdkmcp.CallToolRequest{Params: &sdkmcp.CallToolParamsRaw{Name: name}}
		if _, err := h(context.Background(), "tools/call", req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return remaining
	}

	if got := call(toolZodiacResolve); got > time.Second || got < 900*time.Millisecond {
		t.Fatalf("expected about one second for zodiac_resolve, got %v", got)
	}
	if got := call(toolProfileBuild); got > 2*time.Second || got < 1900*time.Millisecond {
		t.Fatalf("expected about two seconds for profile_build, got %v", got)
	}
}

func TestTracingMiddlewareTagsDomainAndFailures(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	failing := func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
		return &sdkmcp.CallToolResult{IsError: true}, nil
	}
	h := tracingMiddleware(tp.Tracer("test"))(failing)
	req := &sdkmcp.CallToolRequest{Params: &sdkmcp.CallToolParamsRaw{Name: toolChartGenerate}}
	if _, err := h(context.Background(), "tools/call", req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	broken := func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
		return nil, errors.New("boom")
	}
	h = tracingMiddleware(tp.Tracer("test"))(broken)
	read := &sdkmcp.ReadResourceRequest{Params: &sdkmcp.ReadResourceParams{URI: "numerology://life-numbers/7"}}
	if _, err := h(context.Background(), "resources/read", read); err == nil {
		t.Fatal("expected the handler error to propagate")
	}

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}

	tool := spans[0]
	if tool.Name() != "mcp.tool.chart_generate" {
		t.Fatalf("unexpected span name %q", tool.Name())
	}
	attrs := attributeMap(tool.Attributes())
	if attrs["divination.domain"] != "astrology" || attrs["divination.cost"] != "2" {
		t.Fatalf("unexpected tool attributes: %v", attrs)
	}
	if tool.Status().Code != codes.Error {
		t.Fatalf("expected tool error status, got %v", tool.Status())
	}

	resource := spans[1]
	if attributeMap(resource.Attributes())["divination.catalog"] != "numerology" {
		t.Fatalf("unexpected resource attributes: %v", resource.Attributes())
	}
	if resource.Status().Code != codes.Error || resource.Status().Description != "boom" {
		t.Fatalf("expected error status, got %v", resource.Status())
	}
}

func TestResourceCatalog(t *testing.T) {
	cases := map[string]string{
		"zodiac://signs":               "zodiac",
		"numerology://life-numbers/22": "numerology",
		"signs":                        "unknown",
		"://signs":                     "unknown",
	}
	for uri, want := range cases {
		if got := resourceCatalog(uri); got != want {
			t.Fatalf("resourceCatalog(%q) = %q, want %q", uri, got, want)
		}
	}
}

func attributeMap(kvs []attribute.KeyValue) map[string]string {
	out := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value.Emit()
	}
	return out
}

package mcp

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultRequestTimeout = 5 * time.Second

const (
	toolZodiacResolve           = "zodiac_resolve"
	toolChartGenerate           = "chart_generate"
	toolCompatibilitySigns      = "compatibility_signs"
	toolNumerologyReport        = "numerology_report"
	toolNumerologyCompatibility = "numerology_compatibility"
	toolFiveGridAnalyze         = "five_grid_analyze"
	toolProfileBuild            = "profile_build"
)

// toolProfile describes what a tool computes and how much it is charged.
// cost is taken from the HTTP rate limit bucket; timeoutFactor scales the
// server request timeout.
type toolProfile struct {
	domain        string
	cost          int
	timeoutFactor int
}

var toolProfiles = map[string]toolProfile{
	toolZodiacResolve:           {domain: "astrology", cost: 1, timeoutFactor: 1},
	toolChartGenerate:           {domain: "astrology", cost: 2, timeoutFactor: 1},
	toolCompatibilitySigns:      {domain: "astrology", cost: 1, timeoutFactor: 1},
	toolNumerologyReport:        {domain: "numerology", cost: 1, timeoutFactor: 1},
	toolNumerologyCompatibility: {domain: "numerology", cost: 1, timeoutFactor: 1},
	toolFiveGridAnalyze:         {domain: "numerology", cost: 1, timeoutFactor: 1},
	// chart, report and five-grid in one call
	toolProfileBuild: {domain: "profile", cost: 3, timeoutFactor: 2},
}

// profileFor falls back to a single-cost call for names outside the catalogue
// so that the SDK can report unknown tools itself.
func profileFor(name string) toolProfile {
	if p, ok := toolProfiles[strings.TrimSpace(name)]; ok {
		return p
	}
	return toolProfile{domain: "unknown", cost: 1, timeoutFactor: 1}
}

type ServerConfig struct {
	RequestTimeout time.Duration
}

func NewServer(tracer trace.Tracer, astrology AstrologyReader, numbers NumerologyReader, cfg ServerConfig) *sdkmcp.Server {
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	srv := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "divination-mcp",
		Version: "1.0.0",
	}, &sdkmcp.ServerOptions{
		Instructions: "Use these tools to compute birth charts, sign compatibility, numerology reports and five-grid name analyses. All results are deterministic for the same inputs.",
		Logger:       slog.Default(),
	})

	srv.AddReceivingMiddleware(timeoutMiddleware(requestTimeout))
	if tracer != nil {
		srv.AddReceivingMiddleware(tracingMiddleware(tracer))
	}

	registerTools(srv, astrology, numbers)
	registerResources(srv, astrology, numbers)
	return srv
}

func NewHTTPTransportHandler(server *sdkmcp.Server, cfg HTTPHandlerConfig) http.Handler {
	base := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return server
	}, &sdkmcp.StreamableHTTPOptions{})
	return wrapHTTPHandler(base, cfg)
}

func timeoutMiddleware(timeout time.Duration) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if timeout <= 0 {
				return next(ctx, method, req)
			}
			limit := timeout
			if callReq, ok := req.(*sdkmcp.CallToolRequest); ok {
				limit *= time.Duration(profileFor(callReq.Params.Name).timeoutFactor)
			}
			timeoutCtx, cancel := context.WithTimeout(ctx, limit)
			defer cancel()
			return next(timeoutCtx, method, req)
		}
	}
}

func tracingMiddleware(tracer trace.Tracer) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			ctx, span := tracer.Start(ctx, mcpSpanName(method, req))
			span.SetAttributes(attribute.String("mcp.method", method))
			defer span.End()

			if callReq, ok := req.(*sdkmcp.CallToolRequest); ok {
				name := strings.TrimSpace(callReq.Params.Name)
				profile := profileFor(name)
				span.SetAttributes(
					attribute.String("mcp.tool", name),
					attribute.String("divination.domain", profile.domain),
					attribute.Int("divination.cost", profile.cost),
				)
			}
			if readReq, ok := req.(*sdkmcp.ReadResourceRequest); ok {
				uri := strings.TrimSpace(readReq.Params.URI)
				span.SetAttributes(
					attribute.String("mcp.resource.uri", uri),
					attribute.String("divination.catalog", resourceCatalog(uri)),
				)
			}

			result, err := next(ctx, method, req)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return result, err
			}
			// validation failures come back as tool results, not errors
			if toolResult, ok := result.(*sdkmcp.CallToolResult); ok && toolResult.IsError {
				span.SetStatus(codes.Error, "tool reported an error")
			}
			return result, err
		}
	}
}

// resourceCatalog names the table a resource URI reads from, e.g. "zodiac"
// for zodiac://signs.
func resourceCatalog(uri string) string {
	scheme, _, ok := strings.Cut(uri, "://")
	if !ok || scheme == "" {
		return "unknown"
	}
	return scheme
}

func mcpSpanName(method string, req sdkmcp.Request) string {
	switch method {
	case "tools/call":
		if callReq, ok := req.(*sdkmcp.CallToolRequest); ok {
			name := strings.TrimSpace(callReq.Params.Name)
			if name != "" {
				return "mcp.tool." + strings.ReplaceAll(name, "/", ".")
			}
		}
		return "mcp.tool.call"
	case "resources/read":
		return "mcp.resource.read"
	default:
		return "mcp." + strings.ReplaceAll(method, "/", ".")
	}
}

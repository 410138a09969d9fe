package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"divination/internal/astro"
	"divination/internal/domain"
	"divination/internal/numerology"
	"divination/internal/service"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/trace"
)

type recordingAstrology struct {
	*service.ProfileService

	lastChartDate  string
	lastChartClock string
	lastChartPlace string
}

func (r *recordingAstrology) GenerateBirthChart(ctx context.Context, date, clock, place string) (*domain.BirthChart, error) {
	r.lastChartDate, r.lastChartClock, r.lastChartPlace = date, clock, place
	return r.ProfileService.GenerateBirthChart(ctx, date, clock, place)
}

type recordingNumerology struct {
	*service.ProfileService

	lastReportYear int
	lastProfileReq domain.ProfileRequest
}

func (r *recordingNumerology) BuildNumerologyReport(ctx context.Context, name, date string, targetYear int) (*domain.NumerologyReport, error) {
	r.lastReportYear = targetYear
	return r.ProfileService.BuildNumerologyReport(ctx, name, date, targetYear)
}

func (r *recordingNumerology) BuildProfile(ctx context.Context, req domain.ProfileRequest) (*domain.DivinationProfile, error) {
	r.lastProfileReq = req
	return r.ProfileService.BuildProfile(ctx, req)
}

func testProfileService() *service.ProfileService {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	return service.NewProfileService(tracer, nil, astro.NewEngine("12:00"), numerology.NewCalculator(numerology.MasterModeRaw))
}

func testServer() (*sdkmcp.Server, *recordingAstrology, *recordingNumerology) {
	svc := testProfileService()
	astrology := &recordingAstrology{ProfileService: svc}
	numbers := &recordingNumerology{ProfileService: svc}

	srv := NewServer(nil, astrology, numbers, ServerConfig{RequestTimeout: time.Second})
	return srv, astrology, numbers
}

func connectInMemory(ctx context.Context, srv *sdkmcp.Server) (*sdkmcp.ClientSession, context.CancelFunc, error) {
	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()
	runCtx, cancel := context.WithCancel(ctx)
	go func() { _ = srv.Run(runCtx, serverTransport) }()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "mcp-test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return session, cancel, nil
}

type authRoundTripper struct {
	token string
	base  http.RoundTripper
}

func (t *authRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if t.token != "" {
		clone.Header.Set("Authorization", "Bearer "+t.token)
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

func decodeResourceJSON(result *sdkmcp.ReadResourceResult, out any) error {
	if len(result.Contents) == 0 {
		return nil
	}
	return json.Unmarshal([]byte(result.Contents[0].Text), out)
}

func decodeToolJSON(result *sdkmcp.CallToolResult, out any) error {
	body, err := json.Marshal(result.StructuredContent)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

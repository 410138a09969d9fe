package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestToolsListAndInvoke(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv, astrology, numbers := testServer()
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
	if len(tools.Tools) != 7 {
		t.Fatalf("expected 7 tools, got %d", len(tools.Tools))
	}

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "zodiac_resolve", Arguments: map[string]any{"date": "1990-07-15"}})
	if err != nil {
		t.Fatalf("call tool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}
	var sign zodiacResolveOutput
	if err := decodeToolJSON(res, &sign); err != nil {
		t.Fatalf("decode sign failed: %v", err)
	}
	if sign.Sign == nil || sign.Sign.ID != "cancer" {
		t.Fatalf("expected cancer, got %+v", sign.Sign)
	}

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "chart_generate", Arguments: map[string]any{"date": "1990-07-15", "time": "08:30", "place": "Lisbon"}})
	if err != nil {
		t.Fatalf("chart tool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected chart tool error: %+v", res.Content)
	}
	if astrology.lastChartDate != "1990-07-15" || astrology.lastChartClock != "08:30" || astrology.lastChartPlace != "Lisbon" {
		t.Fatalf("unexpected chart args: %s %s %s", astrology.lastChartDate, astrology.lastChartClock, astrology.lastChartPlace)
	}
	var chart chartGenerateOutput
	if err := decodeToolJSON(res, &chart); err != nil {
		t.Fatalf("decode chart failed: %v", err)
	}
	if chart.Chart == nil || len(chart.Chart.Placements) != 10 || chart.Chart.SunSign != "cancer" {
		t.Fatalf("unexpected chart: %+v", chart.Chart)
	}

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "numerology_report", Arguments: map[string]any{"name": "ABC", "date": "1990-07-15", "year": 2024}})
	if err != nil {
		t.Fatalf("numerology tool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected numerology tool error: %+v", res.Content)
	}
	if numbers.lastReportYear != 2024 {
		t.Fatalf("expected target year 2024, got %d", numbers.lastReportYear)
	}
	var report numerologyReportOutput
	if err := decodeToolJSON(res, &report); err != nil {
		t.Fatalf("decode report failed: %v", err)
	}
	if report.Report == nil || report.Report.LifeNumber != 5 || report.Report.ExpressionNumber != 6 {
		t.Fatalf("unexpected report: %+v", report.Report)
	}
}

func TestCompatibilityTools(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv, _, _ := testServer()
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "compatibility_signs", Arguments: map[string]any{"a": " Aries ", "b": "leo"}})
	if err != nil {
		t.Fatalf("compatibility tool failed: %v", err)
	}
	var plain compatibilitySignsOutput
	if err := decodeToolJSON(res, &plain); err != nil {
		t.Fatalf("decode compatibility failed: %v", err)
	}
	if plain.First != "aries" || plain.Score <= 50 || plain.Detailed != nil {
		t.Fatalf("unexpected plain compatibility: %+v", plain)
	}

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "compatibility_signs", Arguments: map[string]any{"a": "aries", "b": "leo", "detailed": true}})
	if err != nil {
		t.Fatalf("detailed compatibility tool failed: %v", err)
	}
	var detailed compatibilitySignsOutput
	if err := decodeToolJSON(res, &detailed); err != nil {
		t.Fatalf("decode detailed compatibility failed: %v", err)
	}
	if detailed.Detailed == nil || detailed.Score != 79 || len(detailed.Detailed.Strengths) == 0 {
		t.Fatalf("unexpected detailed compatibility: %+v", detailed)
	}

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "numerology_compatibility", Arguments: map[string]any{"a": 1, "b": 3}})
	if err != nil {
		t.Fatalf("numerology compatibility tool failed: %v", err)
	}
	var numbers numerologyCompatibilityOutput
	if err := decodeToolJSON(res, &numbers); err != nil {
		t.Fatalf("decode numerology compatibility failed: %v", err)
	}
	if numbers.Score != 90 {
		t.Fatalf("expected mutual score 90, got %d", numbers.Score)
	}
}

func TestFiveGridAndProfileTools(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv, _, numbers := testServer()
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "five_grid_analyze", Arguments: map[string]any{"surname": "王", "given_name": "小明"}})
	if err != nil {
		t.Fatalf("five-grid tool failed: %v", err)
	}
	var grid fiveGridAnalyzeOutput
	if err := decodeToolJSON(res, &grid); err != nil {
		t.Fatalf("decode five-grid failed: %v", err)
	}
	if grid.Analysis == nil || grid.Analysis.TotalStrokes != 15 || grid.Analysis.DestinyNumber != 4 {
		t.Fatalf("unexpected analysis: %+v", grid.Analysis)
	}

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "profile_build", Arguments: map[string]any{
		"date": "1990-07-15", "time": "08:30", "name": "ABC", "surname": "王", "given_name": "小明", "year": 2024,
	}})
	if err != nil {
		t.Fatalf("profile tool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected profile tool error: %+v", res.Content)
	}
	if numbers.lastProfileReq.BirthTime != "08:30" || numbers.lastProfileReq.Year != 2024 {
		t.Fatalf("unexpected profile request: %+v", numbers.lastProfileReq)
	}
	var profile profileBuildOutput
	if err := decodeToolJSON(res, &profile); err != nil {
		t.Fatalf("decode profile failed: %v", err)
	}
	if profile.Profile == nil || profile.Profile.Chart == nil || profile.Profile.Numerology == nil || profile.Profile.FiveGrid == nil {
		t.Fatalf("expected complete profile, got %+v", profile.Profile)
	}
}

func TestToolsValidationFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv, _, _ := testServer()
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	cases := []struct {
		tool string
		args map[string]any
	}{
		{"zodiac_resolve", map[string]any{"date": "1990-02-30"}},
		{"chart_generate", map[string]any{"date": "1990-07-15", "time": "25:00"}},
		{"compatibility_signs", map[string]any{"a": "", "b": "leo"}},
		{"numerology_report", map[string]any{}},
		{"numerology_compatibility", map[string]any{"a": 0, "b": 3}},
		{"five_grid_analyze", map[string]any{"surname": "!!", "given_name": ""}},
		{"profile_build", map[string]any{"date": "not-a-date"}},
	}
	for _, tc := range cases {
		res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: tc.tool, Arguments: tc.args})
		if err != nil {
			t.Fatalf("%s: unexpected protocol error: %v", tc.tool, err)
		}
		if !res.IsError {
			t.Fatalf("%s: expected tool-level validation error", tc.tool)
		}
	}
}

func TestHTTPTransportRequiresToken(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv, _, _ := testServer()
	httpSrv := httptest.NewServer(NewHTTPTransportHandler(srv, HTTPHandlerConfig{AuthToken: "secret", RateLimitPerMin: 60}))
	defer httpSrv.Close()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "mcp-http-test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{
		Endpoint:   httpSrv.URL,
		HTTPClient: &http.Client{Transport: &authRoundTripper{token: "secret"}},
	}, nil)
	if err != nil {
		t.Fatalf("connect over http failed: %v", err)
	}
	defer session.Close()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "zodiac_resolve", Arguments: map[string]any{"date": "2000-03-21"}})
	if err != nil {
		t.Fatalf("call over http failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}

	unauthorized := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "mcp-http-anon", Version: "1.0.0"}, nil)
	if _, err := unauthorized.Connect(ctx, &sdkmcp.StreamableClientTransport{Endpoint: httpSrv.URL}, nil); err == nil {
		t.Fatal("expected connect without token to fail")
	}
}

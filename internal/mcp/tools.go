package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTools(server *mcp.Server, astrology AstrologyReader, numbers NumerologyReader) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        toolZodiacResolve,
		Description: "Resolve the sun sign for a birth date",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in zodiacResolveInput) (*mcp.CallToolResult, zodiacResolveOutput, error) {
		if astrology == nil {
			return nil, zodiacResolveOutput{}, fmt.Errorf("astrology service unavailable")
		}
		date, err := normalizeDate(in.Date)
		if err != nil {
			return nil, zodiacResolveOutput{}, err
		}
		sign, err := astrology.ResolveZodiacSign(ctx, date)
		if err != nil {
			return nil, zodiacResolveOutput{}, err
		}
		return nil, zodiacResolveOutput{Sign: sign}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        toolChartGenerate,
		Description: "Generate a deterministic birth chart with placements, aspects, houses and element balance",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in chartGenerateInput) (*mcp.CallToolResult, chartGenerateOutput, error) {
		if astrology == nil {
			return nil, chartGenerateOutput{}, fmt.Errorf("astrology service unavailable")
		}
		date, err := normalizeDate(in.Date)
		if err != nil {
			return nil, chartGenerateOutput{}, err
		}
		clock, err := normalizeClock(in.Time)
		if err != nil {
			return nil, chartGenerateOutput{}, err
		}
		chart, err := astrology.GenerateBirthChart(ctx, date, clock, in.Place)
		if err != nil {
			return nil, chartGenerateOutput{}, err
		}
		return nil, chartGenerateOutput{Chart: chart}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        toolCompatibilitySigns,
		Description: "Score compatibility between two zodiac signs, optionally with a detailed breakdown",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in compatibilitySignsInput) (*mcp.CallToolResult, compatibilitySignsOutput, error) {
		if astrology == nil {
			return nil, compatibilitySignsOutput{}, fmt.Errorf("astrology service unavailable")
		}
		a, err := normalizeSign(in.A)
		if err != nil {
			return nil, compatibilitySignsOutput{}, err
		}
		b, err := normalizeSign(in.B)
		if err != nil {
			return nil, compatibilitySignsOutput{}, err
		}

		out := compatibilitySignsOutput{First: a, Second: b}
		if in.Detailed {
			detailed := astrology.ScoreDetailedCompatibility(ctx, string(a), string(b))
			out.Score = detailed.Score
			out.Detailed = &detailed
		} else {
			out.Score = astrology.ScoreCompatibility(ctx, string(a), string(b))
		}
		return nil, out, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        toolNumerologyReport,
		Description: "Compute life, expression, soul, personality, birthday, maturity and personal year numbers",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in numerologyReportInput) (*mcp.CallToolResult, numerologyReportOutput, error) {
		if numbers == nil {
			return nil, numerologyReportOutput{}, fmt.Errorf("numerology service unavailable")
		}
		year, err := normalizeYear(in.Year)
		if err != nil {
			return nil, numerologyReportOutput{}, err
		}
		report, err := numbers.BuildNumerologyReport(ctx, in.Name, in.Date, year)
		if err != nil {
			return nil, numerologyReportOutput{}, err
		}
		return nil, numerologyReportOutput{Report: report}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        toolNumerologyCompatibility,
		Description: "Score compatibility between two life numbers",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in numerologyCompatibilityInput) (*mcp.CallToolResult, numerologyCompatibilityOutput, error) {
		if numbers == nil {
			return nil, numerologyCompatibilityOutput{}, fmt.Errorf("numerology service unavailable")
		}
		a, err := normalizeLifeNumber(in.A)
		if err != nil {
			return nil, numerologyCompatibilityOutput{}, err
		}
		b, err := normalizeLifeNumber(in.B)
		if err != nil {
			return nil, numerologyCompatibilityOutput{}, err
		}
		score := numbers.ScoreNumerologyCompatibility(ctx, a, b)
		return nil, numerologyCompatibilityOutput{A: a, B: b, Score: score}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        toolFiveGridAnalyze,
		Description: "Analyze a CJK name with the five-grid stroke method",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in fiveGridAnalyzeInput) (*mcp.CallToolResult, fiveGridAnalyzeOutput, error) {
		if numbers == nil {
			return nil, fiveGridAnalyzeOutput{}, fmt.Errorf("numerology service unavailable")
		}
		analysis, err := numbers.AnalyzeFiveGridName(ctx, in.Surname, in.GivenName)
		if err != nil {
			return nil, fiveGridAnalyzeOutput{}, err
		}
		return nil, fiveGridAnalyzeOutput{Analysis: analysis}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        toolProfileBuild,
		Description: "Build a combined profile: birth chart, sun sign, numerology report and optional five-grid analysis",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in profileBuildInput) (*mcp.CallToolResult, profileBuildOutput, error) {
		if numbers == nil {
			return nil, profileBuildOutput{}, fmt.Errorf("profile service unavailable")
		}
		req, err := normalizeProfileRequest(in)
		if err != nil {
			return nil, profileBuildOutput{}, err
		}
		profile, err := numbers.BuildProfile(ctx, req)
		if err != nil {
			return nil, profileBuildOutput{}, err
		}
		return nil, profileBuildOutput{Profile: profile}, nil
	})
}

package mcp

import (
	"context"

	"divination/internal/domain"
)

// AstrologyReader exposes the chart, sign and compatibility operations.
type AstrologyReader interface {
	ResolveZodiacSign(ctx context.Context, date string) (*domain.ZodiacSign, error)
	GenerateBirthChart(ctx context.Context, date, clock, place string) (*domain.BirthChart, error)
	ScoreCompatibility(ctx context.Context, a, b string) int
	ScoreDetailedCompatibility(ctx context.Context, a, b string) domain.SignCompatibility
	Signs(ctx context.Context) []domain.ZodiacSign
	Aspects(ctx context.Context) []domain.Aspect
}

// NumerologyReader exposes the numerology, five-grid and combined profile
// operations.
type NumerologyReader interface {
	BuildNumerologyReport(ctx context.Context, name, date string, targetYear int) (*domain.NumerologyReport, error)
	ScoreNumerologyCompatibility(ctx context.Context, a, b int) int
	LookupLifeNumberProfile(ctx context.Context, n int) *domain.LifeNumberProfile
	AnalyzeFiveGridName(ctx context.Context, surname, given string) (*domain.NameAnalysis, error)
	BuildProfile(ctx context.Context, req domain.ProfileRequest) (*domain.DivinationProfile, error)
}

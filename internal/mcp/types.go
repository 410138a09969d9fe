package mcp

import (
	"fmt"
	"strings"
	"time"

	"divination/internal/astro"
	"divination/internal/domain"
)

const maxYear = 9999

type zodiacResolveInput struct {
	Date string `json:"date" jsonschema:"birth date as YYYY-MM-DD"`
}

type zodiacResolveOutput struct {
	Sign *domain.ZodiacSign `json:"sign"`
}

type chartGenerateInput struct {
	Date  string `json:"date" jsonschema:"birth date as YYYY-MM-DD"`
	Time  string `json:"time,omitempty" jsonschema:"optional birth time as HH:MM, defaults to the configured clock"`
	Place string `json:"place,omitempty" jsonschema:"optional birth place label, echoed on the chart"`
}

type chartGenerateOutput struct {
	Chart *domain.BirthChart `json:"chart"`
}

type compatibilitySignsInput struct {
	A        string `json:"a" jsonschema:"first sign id (e.g. aries)"`
	B        string `json:"b" jsonschema:"second sign id (e.g. leo)"`
	Detailed bool   `json:"detailed,omitempty" jsonschema:"include the breakdown, strengths and challenges"`
}

type compatibilitySignsOutput struct {
	First    domain.SignID             `json:"first"`
	Second   domain.SignID             `json:"second"`
	Score    int                       `json:"score"`
	Detailed *domain.SignCompatibility `json:"detailed,omitempty"`
}

type numerologyReportInput struct {
	Name string `json:"name,omitempty" jsonschema:"full name in Latin letters or CJK characters"`
	Date string `json:"date,omitempty" jsonschema:"birth date as YYYY-MM-DD"`
	Year int    `json:"year,omitempty" jsonschema:"target year for the personal year number, defaults to the current year"`
}

type numerologyReportOutput struct {
	Report *domain.NumerologyReport `json:"report"`
}

type numerologyCompatibilityInput struct {
	A int `json:"a" jsonschema:"first life number"`
	B int `json:"b" jsonschema:"second life number"`
}

type numerologyCompatibilityOutput struct {
	A     int `json:"a"`
	B     int `json:"b"`
	Score int `json:"score"`
}

type fiveGridAnalyzeInput struct {
	Surname   string `json:"surname" jsonschema:"family name, usually CJK characters"`
	GivenName string `json:"given_name" jsonschema:"given name, usually CJK characters"`
}

type fiveGridAnalyzeOutput struct {
	Analysis *domain.NameAnalysis `json:"analysis"`
}

type profileBuildInput struct {
	Date      string `json:"date" jsonschema:"birth date as YYYY-MM-DD"`
	Time      string `json:"time,omitempty" jsonschema:"optional birth time as HH:MM"`
	Place     string `json:"place,omitempty" jsonschema:"optional birth place label"`
	Name      string `json:"name,omitempty" jsonschema:"optional full name for name numbers"`
	Surname   string `json:"surname,omitempty" jsonschema:"optional surname for the five-grid analysis"`
	GivenName string `json:"given_name,omitempty" jsonschema:"optional given name for the five-grid analysis"`
	Year      int    `json:"year,omitempty" jsonschema:"optional target year for the personal year number"`
}

type profileBuildOutput struct {
	Profile *domain.DivinationProfile `json:"profile"`
}

type signCatalogOutput struct {
	Signs []domain.ZodiacSign `json:"signs"`
}

type aspectCatalogOutput struct {
	Aspects []domain.Aspect `json:"aspects"`
}

func normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", fmt.Errorf("date is required")
	}
	if _, ok := astro.ParseDate(date); !ok {
		return "", fmt.Errorf("invalid date: %s", date)
	}
	return date, nil
}

func normalizeClock(clock string) (string, error) {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return "", nil
	}
	if _, err := time.Parse("15:04", clock); err != nil {
		return "", fmt.Errorf("invalid time: %s", clock)
	}
	return clock, nil
}

// normalizeSign accepts unknown ids; the scorer treats them as neutral.
func normalizeSign(raw string) (domain.SignID, error) {
	id := domain.SignID(strings.ToLower(strings.TrimSpace(raw)))
	if id == "" {
		return "", fmt.Errorf("sign is required")
	}
	return id, nil
}

func normalizeYear(year int) (int, error) {
	if year < 0 || year > maxYear {
		return 0, fmt.Errorf("year must be between 1 and %d", maxYear)
	}
	return year, nil
}

func normalizeLifeNumber(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("life number must be positive")
	}
	return n, nil
}

func normalizeProfileRequest(in profileBuildInput) (domain.ProfileRequest, error) {
	date, err := normalizeDate(in.Date)
	if err != nil {
		return domain.ProfileRequest{}, err
	}
	clock, err := normalizeClock(in.Time)
	if err != nil {
		return domain.ProfileRequest{}, err
	}
	year, err := normalizeYear(in.Year)
	if err != nil {
		return domain.ProfileRequest{}, err
	}
	return domain.ProfileRequest{
		BirthDate: date,
		BirthTime: clock,
		Place:     strings.TrimSpace(in.Place),
		Name:      strings.TrimSpace(in.Name),
		Surname:   strings.TrimSpace(in.Surname),
		GivenName: strings.TrimSpace(in.GivenName),
		Year:      year,
	}, nil
}

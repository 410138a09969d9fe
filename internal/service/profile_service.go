package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"divination/internal/astro"
	"divination/internal/cache"
	"divination/internal/domain"
	"divination/internal/numerology"
)

var (
	ErrInvalidDate         = errors.New("invalid date")
	ErrEmptyName           = errors.New("name has no usable characters")
	ErrRendererUnavailable = errors.New("chart renderer is not configured")
)

type ChartEngine interface {
	GenerateChart(date, clock, place string) (*domain.BirthChart, bool)
	DefaultClock() string
}

type NumerologyCalculator interface {
	LifeNumberFor(date time.Time) int
	Report(name string, birth time.Time, targetYear int) domain.NumerologyReport
}

type ChartRenderer interface {
	RenderBirthChart(chart *domain.BirthChart) (*domain.ChartImage, error)
}

// ResultCache memoizes computed results. Misses report false with a nil
// error; any error is treated as a miss by the service.
type ResultCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

type ProfileService struct {
	tracer   trace.Tracer
	logger   *zap.Logger
	engine   ChartEngine
	numbers  NumerologyCalculator
	renderer ChartRenderer
	cache    ResultCache
	now      func() time.Time
}

func NewProfileService(
	tracer trace.Tracer,
	logger *zap.Logger,
	engine ChartEngine,
	numbers NumerologyCalculator,
) *ProfileService {
	return NewProfileServiceWithCache(tracer, logger, engine, numbers, nil, nil)
}

// NewProfileServiceWithCache wires the optional renderer and result cache.
// Either may be nil.
func NewProfileServiceWithCache(
	tracer trace.Tracer,
	logger *zap.Logger,
	engine ChartEngine,
	numbers NumerologyCalculator,
	renderer ChartRenderer,
	resultCache ResultCache,
) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{
		tracer:   tracer,
		logger:   logger,
		engine:   engine,
		numbers:  numbers,
		renderer: renderer,
		cache:    resultCache,
		now:      time.Now,
	}
}

// NormalizeSignID lower-cases and trims a sign id.
func NormalizeSignID(raw string) domain.SignID {
	return domain.SignID(strings.ToLower(strings.TrimSpace(raw)))
}

func (s *ProfileService) ResolveZodiacSign(ctx context.Context, date string) (*domain.ZodiacSign, error) {
	_, span := s.tracer.Start(ctx, "profile-service.resolve-zodiac-sign")
	defer span.End()

	sign, ok := astro.ResolveDate(date)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return &sign, nil
}

func (s *ProfileService) GenerateBirthChart(ctx context.Context, date, clock, place string) (*domain.BirthChart, error) {
	ctx, span := s.tracer.Start(ctx, "profile-service.generate-birth-chart")
	defer span.End()

	if s.engine == nil {
		return nil, fmt.Errorf("profile service is not fully initialized")
	}

	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	place = strings.TrimSpace(place)
	span.SetAttributes(attribute.String("chart.date", date))

	key := cache.Key("chart", date, s.resolveClock(clock), place)
	var cached domain.BirthChart
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	chart, ok := s.engine.GenerateChart(date, clock, place)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	s.cacheSet(ctx, key, chart)
	return chart, nil
}

// resolveClock mirrors the engine's fallback so charts cached by processes
// with different default birth times never collide.
func (s *ProfileService) resolveClock(clock string) string {
	if _, err := time.Parse("15:04", clock); err != nil {
		return s.engine.DefaultClock()
	}
	return clock
}

func (s *ProfileService) ScoreCompatibility(ctx context.Context, a, b string) int {
	_, span := s.tracer.Start(ctx, "profile-service.score-compatibility")
	defer span.End()

	return astro.ScoreCompatibility(NormalizeSignID(a), NormalizeSignID(b))
}

func (s *ProfileService) ScoreDetailedCompatibility(ctx context.Context, a, b string) domain.SignCompatibility {
	_, span := s.tracer.Start(ctx, "profile-service.score-detailed-compatibility")
	defer span.End()

	return astro.ScoreDetailedCompatibility(NormalizeSignID(a), NormalizeSignID(b))
}

func (s *ProfileService) CalculateLifeNumber(ctx context.Context, date string) (int, error) {
	_, span := s.tracer.Start(ctx, "profile-service.calculate-life-number")
	defer span.End()

	if s.numbers == nil {
		return 0, fmt.Errorf("profile service is not fully initialized")
	}
	t, ok := astro.ParseDate(date)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return s.numbers.LifeNumberFor(t), nil
}

func (s *ProfileService) CalculateExpressionNumber(ctx context.Context, name string) (int, error) {
	_, span := s.tracer.Start(ctx, "profile-service.calculate-expression-number")
	defer span.End()

	return nameNumber(numerology.ExpressionNumber, name)
}

func (s *ProfileService) CalculateSoulNumber(ctx context.Context, name string) (int, error) {
	_, span := s.tracer.Start(ctx, "profile-service.calculate-soul-number")
	defer span.End()

	return nameNumber(numerology.SoulNumber, name)
}

func (s *ProfileService) CalculatePersonalityNumber(ctx context.Context, name string) (int, error) {
	_, span := s.tracer.Start(ctx, "profile-service.calculate-personality-number")
	defer span.End()

	return nameNumber(numerology.PersonalityNumber, name)
}

func nameNumber(calc func(string) (int, bool), name string) (int, error) {
	n, ok := calc(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrEmptyName, name)
	}
	return n, nil
}

// LookupLifeNumberProfile returns nil for numbers without a profile.
func (s *ProfileService) LookupLifeNumberProfile(ctx context.Context, n int) *domain.LifeNumberProfile {
	_, span := s.tracer.Start(ctx, "profile-service.lookup-life-number-profile")
	defer span.End()

	profile, ok := numerology.LifeNumberProfile(n)
	if !ok {
		return nil
	}
	return &profile
}

func (s *ProfileService) ScoreNumerologyCompatibility(ctx context.Context, a, b int) int {
	_, span := s.tracer.Start(ctx, "profile-service.score-numerology-compatibility")
	defer span.End()

	return numerology.ScoreCompatibility(a, b)
}

func (s *ProfileService) AnalyzeFiveGridName(ctx context.Context, surname, given string) (*domain.NameAnalysis, error) {
	ctx, span := s.tracer.Start(ctx, "profile-service.analyze-five-grid-name")
	defer span.End()

	surname = strings.TrimSpace(surname)
	given = strings.TrimSpace(given)
	key := cache.Key("five-grid", surname, given)
	var cached domain.NameAnalysis
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	analysis, ok := numerology.AnalyzeFiveGrid(surname, given)
	if !ok {
		return nil, fmt.Errorf("%w: surname %q, given name %q", ErrEmptyName, surname, given)
	}
	s.cacheSet(ctx, key, analysis)
	return &analysis, nil
}

// BuildNumerologyReport combines every number available from name and date.
// At least one of them must be supplied; a supplied date must be valid and a
// supplied name must contain usable characters. targetYear defaults to the
// current year.
func (s *ProfileService) BuildNumerologyReport(ctx context.Context, name, date string, targetYear int) (*domain.NumerologyReport, error) {
	_, span := s.tracer.Start(ctx, "profile-service.build-numerology-report")
	defer span.End()

	if s.numbers == nil {
		return nil, fmt.Errorf("profile service is not fully initialized")
	}

	name = strings.TrimSpace(name)
	date = strings.TrimSpace(date)
	if name == "" && date == "" {
		return nil, fmt.Errorf("%w: a name or birth date is required", ErrEmptyName)
	}

	var birth time.Time
	if date != "" {
		t, ok := astro.ParseDate(date)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
		}
		birth = t
	}
	if name != "" {
		if _, ok := numerology.ExpressionNumber(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrEmptyName, name)
		}
	}
	if targetYear <= 0 {
		targetYear = s.now().Year()
	}

	report := s.numbers.Report(name, birth, targetYear)
	return &report, nil
}

// BuildProfile assembles the chart, numerology report and, when a surname and
// given name are supplied, the five-grid analysis concurrently.
func (s *ProfileService) BuildProfile(ctx context.Context, req domain.ProfileRequest) (*domain.DivinationProfile, error) {
	ctx, span := s.tracer.Start(ctx, "profile-service.build-profile")
	defer span.End()

	if _, ok := astro.ParseDate(req.BirthDate); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.BirthDate)
	}

	profile := &domain.DivinationProfile{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		chart, err := s.GenerateBirthChart(gctx, req.BirthDate, req.BirthTime, req.Place)
		if err != nil {
			return fmt.Errorf("birth chart: %w", err)
		}
		profile.Chart = chart
		return nil
	})
	g.Go(func() error {
		sun, err := s.ResolveZodiacSign(gctx, req.BirthDate)
		if err != nil {
			return fmt.Errorf("sun sign: %w", err)
		}
		profile.Sun = sun
		return nil
	})
	g.Go(func() error {
		report, err := s.BuildNumerologyReport(gctx, req.Name, req.BirthDate, req.Year)
		if err != nil {
			return fmt.Errorf("numerology: %w", err)
		}
		profile.Numerology = report
		return nil
	})
	if strings.TrimSpace(req.Surname) != "" || strings.TrimSpace(req.GivenName) != "" {
		g.Go(func() error {
			analysis, err := s.AnalyzeFiveGridName(gctx, req.Surname, req.GivenName)
			if err != nil {
				return fmt.Errorf("five-grid: %w", err)
			}
			profile.FiveGrid = analysis
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) RenderChartImage(ctx context.Context, date, clock, place string) (*domain.ChartImage, error) {
	ctx, span := s.tracer.Start(ctx, "profile-service.render-chart-image")
	defer span.End()

	if s.renderer == nil {
		return nil, ErrRendererUnavailable
	}
	chart, err := s.GenerateBirthChart(ctx, date, clock, place)
	if err != nil {
		return nil, err
	}
	img, err := s.renderer.RenderBirthChart(chart)
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return img, nil
}

func (s *ProfileService) Signs(ctx context.Context) []domain.ZodiacSign {
	_, span := s.tracer.Start(ctx, "profile-service.signs")
	defer span.End()
	return astro.Signs()
}

func (s *ProfileService) Aspects(ctx context.Context) []domain.Aspect {
	_, span := s.tracer.Start(ctx, "profile-service.aspects")
	defer span.End()
	return astro.Aspects()
}

func (s *ProfileService) Houses(ctx context.Context) []domain.House {
	_, span := s.tracer.Start(ctx, "profile-service.houses")
	defer span.End()
	return astro.Houses()
}

func (s *ProfileService) LifeNumberProfiles(ctx context.Context) []domain.LifeNumberProfile {
	_, span := s.tracer.Start(ctx, "profile-service.life-number-profiles")
	defer span.End()
	return numerology.LifeNumberProfiles()
}

func (s *ProfileService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn("cache read failed, recomputing", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

func (s *ProfileService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// ParseLifeNumber parses a path or query value into a life number.
func ParseLifeNumber(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

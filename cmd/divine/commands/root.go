package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"divination/internal/app"
	"divination/internal/config"
	"divination/internal/logging"
	"divination/internal/service"
	"divination/pkg/tracing"
)

// env carries the state built by the root command's pre-run hook.
type env struct {
	svc      *service.ProfileService
	logger   *zap.Logger
	tp       *sdktrace.TracerProvider
	cleanup  func()
	useCache bool
	logLevel string
}

func Execute() error {
	root, e := newRootCmd(os.Stdout, os.Stderr)
	defer e.close()
	return root.Execute()
}

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *env) {
	e := &env{}

	root := &cobra.Command{
		Use:           "divine",
		Short:         "Deterministic astrology and numerology calculations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.open(cmd.Context())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().BoolVar(&e.useCache, "cache", false, "memoize results in Redis (REDIS_URL)")
	root.PersistentFlags().StringVar(&e.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(
		signCmd(e),
		chartCmd(e),
		compatCmd(e),
		numerologyCmd(e),
		lifeNumberCmd(e),
		fiveGridCmd(e),
		profileCmd(e),
	)
	return root, e
}

func (e *env) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	_ = godotenv.Load()
	cfg := config.Load()
	cfg.CacheEnabled = cfg.CacheEnabled && e.useCache

	logger, err := logging.New(e.logLevel, "console")
	if err != nil {
		return err
	}
	tp, tracer, err := tracing.InitTracer(ctx, tracing.Options{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.OTelServiceName,
	})
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}

	e.logger = logger
	e.tp = tp
	e.svc, e.cleanup = app.NewProfileService(ctx, cfg, tracer, logger)
	return nil
}

func (e *env) close() {
	if e.cleanup != nil {
		e.cleanup()
	}
	if e.tp != nil {
		if err := e.tp.Shutdown(context.Background()); err != nil {
			e.logger.Warn("error shutting down tracer provider", zap.Error(err))
		}
	}
	if e.logger != nil {
		_ = e.logger.Sync()
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	tlsutils "github.com/trustbloc/cmdutil-go/pkg/utils/tls"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/vctrust/cmd/common"
	"github.com/trustbloc/vctrust/internal/logfields"
	"github.com/trustbloc/vctrust/pkg/breaker"
	"github.com/trustbloc/vctrust/pkg/didkey"
	"github.com/trustbloc/vctrust/pkg/event"
	"github.com/trustbloc/vctrust/pkg/observability/health/healthchecks"
	"github.com/trustbloc/vctrust/pkg/observability/metrics"
	"github.com/trustbloc/vctrust/pkg/observability/metrics/noop"
	"github.com/trustbloc/vctrust/pkg/observability/metrics/prometheus"
	"github.com/trustbloc/vctrust/pkg/observability/tracing"
	issuancetracing "github.com/trustbloc/vctrust/pkg/observability/tracing/wrappers/issuance"
	verificationtracing "github.com/trustbloc/vctrust/pkg/observability/tracing/wrappers/verification"
	"github.com/trustbloc/vctrust/pkg/restapi/handlers"
	"github.com/trustbloc/vctrust/pkg/restapi/v1/anchorapi"
	"github.com/trustbloc/vctrust/pkg/restapi/v1/healthcheck"
	issuerv1 "github.com/trustbloc/vctrust/pkg/restapi/v1/issuer"
	"github.com/trustbloc/vctrust/pkg/restapi/v1/logapi"
	"github.com/trustbloc/vctrust/pkg/restapi/v1/mw"
	"github.com/trustbloc/vctrust/pkg/restapi/v1/translogapi"
	verifierv1 "github.com/trustbloc/vctrust/pkg/restapi/v1/verifier"
	"github.com/trustbloc/vctrust/pkg/restapi/v1/version"
	"github.com/trustbloc/vctrust/pkg/service/anchor"
	"github.com/trustbloc/vctrust/pkg/service/issuance"
	"github.com/trustbloc/vctrust/pkg/service/statuslist"
	"github.com/trustbloc/vctrust/pkg/service/verification"
	"github.com/trustbloc/vctrust/pkg/service/witness"
	"github.com/trustbloc/vctrust/pkg/translog"
)

var logger = log.New("vctrust-rest")

const (
	basePath        = "/v1"
	shutdownTimeout = 10 * time.Second
)

type server interface {
	ListenAndServe(host, certFile, keyFile string, handler http.Handler) error
}

// HTTPServer represents an actual HTTP server implementation.
type HTTPServer struct {
	srv *http.Server
}

// ListenAndServe starts the server using the standard Go HTTP server implementation. It returns
// after SIGINT or SIGTERM once in-flight requests have completed.
func (s *HTTPServer) ListenAndServe(host, certFile, keyFile string, handler http.Handler) error {
	s.srv = &http.Server{
		Addr:              host,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		if certFile != "" && keyFile != "" {
			errCh <- s.srv.ListenAndServeTLS(certFile, keyFile)
		} else {
			errCh <- s.srv.ListenAndServe()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sig:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

type startOpts struct {
	version       string
	serverVersion string
	server        server
}

// StartOpts configures the start command.
type StartOpts func(opts *startOpts)

// WithVersion sets the application version reported by GET /version.
func WithVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.version = version
	}
}

// WithServerVersion sets the server version reported by GET /version/system.
func WithServerVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.serverVersion = version
	}
}

// WithHTTPServer replaces the HTTP server.
func WithHTTPServer(srv server) StartOpts {
	return func(opts *startOpts) {
		opts.server = srv
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start vctrust-rest",
		Long:  "Start the credential trust decision service",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			o := &startOpts{server: &HTTPServer{}}

			for _, opt := range opts {
				opt(o)
			}

			return startServer(cmd.Context(), params, o)
		},
	}
}

func startServer(ctx context.Context, params *startupParameters, opts *startOpts) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if params.logLevel != "" {
		common.SetDefaultLogLevel(logger, params.logLevel)
	}

	shutdownTracer, tracer, err := tracing.Initialize(params.tracingParams.provider, params.tracingParams.serviceName,
		tracing.WithServiceVersion(opts.version),
		tracing.WithSampleRatio(params.tracingParams.sampleRatio),
	)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}

	defer shutdownTracer()

	app, err := buildApplication(ctx, params, tracer, opts)
	if err != nil {
		return err
	}

	defer app.close()

	app.start()

	logger.Info("Starting vctrust-rest server", log.WithURL(params.hostURL))

	return opts.server.ListenAndServe(params.hostURL, params.tlsParameters.serveCertPath,
		params.tlsParameters.serveKeyPath, app.echo)
}

type application struct {
	echo    *echo.Echo
	anchors *anchor.Service
	bus     *event.Bus
	metrics metrics.Provider
	closers []func()
}

func (a *application) start() {
	a.anchors.Start()
}

func (a *application) close() {
	if a.anchors != nil {
		a.anchors.Stop()
	}

	if a.bus != nil {
		if err := a.bus.Close(); err != nil {
			logger.Warn("Failed to close event bus", log.WithError(err))
		}
	}

	if a.metrics != nil {
		if err := a.metrics.Destroy(); err != nil {
			logger.Warn("Failed to destroy metrics provider", log.WithError(err))
		}
	}

	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// buildApplication wires storage, services and REST controllers. Background workers are not
// started; call start on the result.
// nolint: funlen
func buildApplication(
	ctx context.Context,
	params *startupParameters,
	tracer trace.Tracer,
	opts *startOpts,
) (*application, error) {
	app := &application{echo: echo.New()}

	ok := false

	defer func() {
		if !ok {
			app.close()
		}
	}()

	m, err := createMetrics(params, app)
	if err != nil {
		return nil, err
	}

	// Audit subscribers log every decision, anchor transition and status change.
	app.bus, err = event.Initialize(event.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("initialize event bus: %w", err)
	}

	rootCAs, err := tlsutils.GetCertPool(params.tlsParameters.systemCertPool, params.tlsParameters.caCerts)
	if err != nil {
		return nil, err
	}

	tlsConfig := &tls.Config{RootCAs: rootCAs, MinVersion: tls.VersionTLS12}

	stores, err := createStores(ctx, params, tlsConfig, app)
	if err != nil {
		return nil, err
	}

	checkpoints, err := createCheckpointStore(ctx, params)
	if err != nil {
		return nil, err
	}

	tlog, err := translog.New(ctx, stores.logEntries,
		translog.WithListener(translog.NewCheckpointPublisher(checkpoints, params.checkpointParams.every)),
		translog.WithListener(&logMetrics{metrics: m}),
	)
	if err != nil {
		return nil, fmt.Errorf("open transparency log: %w", err)
	}

	publisher := event.NewEventPublisher(app.bus)

	breakerConfig := params.engine.BreakerConfig()
	breakerConfig.OnStateChange = func(name string, from, to breaker.State) {
		logger.Warn("Circuit breaker changed state", logfields.WithEndpoint(name),
			logfields.WithBreakerState(string(to)))
		m.BreakerStateChanged(name, string(to))
	}

	breakers := breaker.NewRegistry(breakerConfig)
	submitter := createSubmitter(params, tlsConfig)

	app.anchors = anchor.New(&anchor.Config{
		Store:           stores.anchors,
		Submitter:       submitter,
		Breaker:         breakers.Get(submitter.Endpoint()),
		TransparencyLog: tlog,
		EventPublisher:  publisher,
		Metrics:         m,
		Policy:          params.engine.AnchorRetryPolicy(),
		Workers:         params.engine.Anchor.Workers,
		QueueSize:       params.engine.Anchor.QueueSize,
	})

	statusService := statuslist.New(&statuslist.Config{
		Store:           stores.statuses,
		TransparencyLog: tlog,
		EventPublisher:  publisher,
	})

	witnessService := witness.New(&witness.Config{
		StatusStore:     stores.statuses,
		AnchorStore:     stores.anchors,
		TransparencyLog: tlog,
	})

	identity, err := loadIssuerIdentity(params.issuerKeyFile)
	if err != nil {
		return nil, err
	}

	logger.Info("Issuer identity loaded", log.WithID(identity.did))

	verificationService := verification.New(&verification.Config{
		KeyResolver:     didkey.NewResolver(),
		Witness:         witnessService,
		TransparencyLog: tlog,
		EventPublisher:  publisher,
		Metrics:         m,
	})

	issuanceService := issuance.New(&issuance.Config{
		IssuerDID: identity.did,
		Signer:    identity.signer,
		Anchors:   app.anchors,
	})

	var adminMiddleware []echo.MiddlewareFunc
	if params.apiKey != "" {
		adminMiddleware = append(adminMiddleware, mw.APIKeyAuth(params.apiKey))
	}

	e := app.echo
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(tracer)

	e.Use(echomw.Recover())
	e.Use(echomw.BodyLimit("2M"))

	healthcheck.NewController(e, &healthcheck.Config{
		Checks: healthchecks.Get(&stores.healthConfig),
		BreakerStates: func() map[string]string {
			states := map[string]string{}

			for endpoint, state := range breakers.States() {
				states[endpoint] = string(state)
			}

			return states
		},
	})

	version.NewController(e, version.Config{
		Version:       opts.version,
		ServerVersion: opts.serverVersion,
		HashAlgorithm: params.hashAlgorithm,
	})

	logapi.NewController(e, adminMiddleware...)

	if params.metricsProviderName == metricsProviderPrometheus {
		h := prometheus.NewHandler()
		e.Add(h.Method(), h.Path(), echo.WrapHandler(h.Handler()))
	}

	v1 := e.Group(basePath)

	issuerv1.NewController(v1, &issuerv1.Config{
		IssuanceService: issuancetracing.Wrap(issuanceService, tracer),
		StatusService:   statusService,
	})

	verifierv1.NewController(v1, &verifierv1.Config{
		VerificationService: verificationtracing.Wrap(verificationService, tracer),
		WitnessService:      witnessService,
	})

	anchorapi.NewController(v1, &anchorapi.Config{
		AnchorService:   app.anchors,
		AdminMiddleware: adminMiddleware,
	})

	translogapi.NewController(v1, &translogapi.Config{
		TransparencyLog:  tlog,
		AppendMiddleware: adminMiddleware,
	})

	ok = true

	return app, nil
}

func createMetrics(params *startupParameters, app *application) (metrics.Metrics, error) {
	if params.metricsProviderName != metricsProviderPrometheus {
		return noop.GetMetrics(), nil
	}

	provider := prometheus.NewPrometheusProvider(nil)

	if err := provider.Create(); err != nil {
		return nil, fmt.Errorf("create metrics provider: %w", err)
	}

	app.metrics = provider

	return provider.Metrics(), nil
}

type logMetrics struct {
	metrics metrics.Metrics
}

func (l *logMetrics) OnAppend(_ context.Context, e *translog.Entry, cp *translog.Checkpoint) {
	l.metrics.LogAppended(string(e.EntryType), cp.TreeSize)
}

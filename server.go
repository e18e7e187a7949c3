package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/ironstar-io/chizerolog"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	apihealth "github.com/usda-mcp/nutrition-api/api/health"
	apitools "github.com/usda-mcp/nutrition-api/api/tools"
	"github.com/usda-mcp/nutrition-api/env"
	"github.com/usda-mcp/nutrition-api/fdc"
	"github.com/usda-mcp/nutrition-api/tools"
)

// APIServer is a struct that bundles together the server-wide
// resources used at runtime that each have a lifecycle of
// initialization, connection, and disconnection
type APIServer struct {
	fdcClient      *fdc.Client
	registry       *tools.Registry
	logger         zerolog.Logger
	maxRequestBody datasize.ByteSize
}

// NewAPIServer initializes the struct and all constituent components
func NewAPIServer(logger zerolog.Logger) (*APIServer, error) {
	// Initialize the FoodData Central client
	fdcClient, err := fdc.NewClient(logger)
	if err != nil {
		return nil, err
	}

	maxRequestBody, err := env.GetByteSizeEnv("max request body size", "MAX_REQUEST_BODY", datasize.MB)
	if err != nil {
		return nil, err
	}

	return &APIServer{
		fdcClient:      fdcClient,
		registry:       tools.NewRegistry(fdcClient, logger),
		logger:         logger,
		maxRequestBody: maxRequestBody,
	}, nil
}

// Connect brings up the upstream client before serving
func (a *APIServer) Connect(ctx context.Context) error {
	a.logger.Info().Msg("initializing FoodData Central client")
	return a.fdcClient.Connect(ctx)
}

// Disconnect releases the upstream client's resources
func (a *APIServer) Disconnect(ctx context.Context) error {
	err := a.fdcClient.Disconnect(ctx)
	if err != nil {
		return err
	}

	a.logger.Info().Msg("disconnected from the FoodData Central API")
	return nil
}

// Serve runs the main API server until it's cancelled for some reason,
// in which case it attempts to gracefully shutdown.
// This function blocks.
func (a *APIServer) Serve(ctx context.Context, port int) {
	router := a.routes()
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Fatal().Err(err).Msg("listen failed")
		}
	}()
	a.logger.Info().Int("port", port).Msg("API server started")

	<-ctx.Done()
	a.logger.Info().Msg("API server stopped")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Fatal().Err(err).Msg("API server shutdown failed")
	}
	a.logger.Info().Msg("API server exited properly")
}

func (a *APIServer) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,                          // Recover from panics without crashing the server
		a.requestIDMiddleware(),                       // Attach a unique id to each request
		chizerolog.LoggerMiddleware(&a.logger),        // Log API request calls with structured fields
		middleware.RedirectSlashes,                    // Redirect slashes to no slash URL versions
		render.SetContentType(render.ContentTypeJSON), // Set content-type headers to application/json
		middleware.Compress(5),                        // Compress results, mostly gzipping json
		middleware.NoCache,                            // Prevent clients from caching the results
		a.bodyLimitMiddleware(),                       // Cap request body size
		a.corsMiddleware(),                            // Create cors middleware from go-chi/cors
	)

	// ==============================
	// Add all routes to the API here
	// ==============================
	router.Mount("/health", apihealth.Routes(a.fdcClient))
	router.Mount("/tools", apitools.Routes(a.registry))

	return router
}

// requestIDMiddleware assigns a ksuid to each request that doesn't
// already carry one, and echoes it on the response
func (a *APIServer) requestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-Id")
			if requestID == "" {
				requestID = ksuid.New().String()
				r.Header.Set("X-Request-Id", requestID)
			}
			w.Header().Set("X-Request-Id", requestID)

			next.ServeHTTP(w, r)
		})
	}
}

// bodyLimitMiddleware caps how much of a request body handlers will read
func (a *APIServer) bodyLimitMiddleware() func(http.Handler) http.Handler {
	limit := int64(a.maxRequestBody.Bytes())
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *APIServer) corsMiddleware() func(http.Handler) http.Handler {
	// See if the CORS_ALLOWED_ORIGINS environment variable was set
	allowedOrigins := "*"
	if value, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		allowedOrigins = value
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

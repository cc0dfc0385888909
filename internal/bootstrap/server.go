package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/abalfour/flightbooking/api"
	"github.com/abalfour/flightbooking/config"
	"github.com/abalfour/flightbooking/internal/service/account"
	"github.com/abalfour/flightbooking/internal/service/flights"
	"github.com/abalfour/flightbooking/internal/service/history"
	"github.com/abalfour/flightbooking/internal/service/reservation"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	flightSvc flights.FlightUseCase,
	accountSvc account.AccountUseCase,
	reservationSvc reservation.ReservationUseCase,
	historySvc history.HistoryUseCase,
) error {
	router := newRouter(cfg, flightSvc, accountSvc, reservationSvc, historySvc)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info().Str("address", cfg.HTTP.Address).Msg("http server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(
	cfg *config.Config,
	flightSvc flights.FlightUseCase,
	accountSvc account.AccountUseCase,
	reservationSvc reservation.ReservationUseCase,
	historySvc history.HistoryUseCase,
) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Error().Interface("panic", err).Str("path", c.Request.URL.Path).Msg("handler panic")
		c.String(http.StatusInternalServerError, api.ServerErrorMessage)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
	}))

	api.NewFlightHandler(flightSvc).Register(router)
	api.NewUserHandler(accountSvc).Register(router)
	api.NewReservationHandler(reservationSvc, historySvc).Register(router)

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs", func(c *gin.Context) {
			renderSwaggerUI(c.Writer, "/swagger/flightbooking.swagger.json")
		})
	}

	// Front-end pages, like express.static in the original app.
	if cfg.HTTP.StaticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.HTTP.StaticDir))))
	}

	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func renderSwaggerUI(w http.ResponseWriter, jsonURL string) {
	html := fmt.Sprintf(`<!DOCTYPE html>
    <html>
    <head>
        <title>API Docs</title>
        <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@latest/swagger-ui.css">
    </head>
    <body>
        <div id="swagger-ui"></div>
        <script src="https://unpkg.com/swagger-ui-dist@latest/swagger-ui-bundle.js"></script>
        <script>
            window.onload = function() {
                window.ui = SwaggerUIBundle({
                    url: "%s",
                    dom_id: '#swagger-ui'
                });
            };
        </script>
    </body>
    </html>`, jsonURL)

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}

package routers

import (
	"fmt"
	"time"

	"lisagent-service/internal/app/config"
	"lisagent-service/internal/app/delivery/http/controllers"
	"lisagent-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	testResultController *controllers.TestResultController,
	sessionController *controllers.SessionController,
	datagramController *controllers.DatagramController,
	republishController *controllers.RepublishController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "x-api-key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/test-result", func(r chi.Router) {
				attachTestResultRoutes(r, middlewares, testResultController)
			})

			r.Route("/sessions", func(r chi.Router) {
				attachSessionRoutes(r, middlewares, sessionController)
			})

			r.Route("/datagrams", func(r chi.Router) {
				attachDatagramRoutes(r, middlewares, datagramController)
			})

			r.Route("/republish", func(r chi.Router) {
				attachRepublishRoutes(r, middlewares, republishController)
			})
		})
	})
}

package routers

import (
	"lisagent-service/internal/app/delivery/http/controllers"
	"lisagent-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTestResultRoutes(router chi.Router, middlewares *middlewares.Middlewares, testResultController *controllers.TestResultController) {
	router.Post("/", testResultController.PublishTestResult)
}

func attachSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, sessionController *controllers.SessionController) {
	router.Post("/", sessionController.IngestSession)
}

func attachDatagramRoutes(router chi.Router, middlewares *middlewares.Middlewares, datagramController *controllers.DatagramController) {
	router.With(middlewares.RequireAPIKey).Get("/", datagramController.ListDatagrams)
}

func attachRepublishRoutes(router chi.Router, middlewares *middlewares.Middlewares, republishController *controllers.RepublishController) {
	router.With(middlewares.RequireAPIKey).Post("/", republishController.TriggerRepublish)
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "eisenhower-matrix/internal/auth/delivery/http"
	contactsHTTP "eisenhower-matrix/internal/contacts/delivery/http"
	matrixHTTP "eisenhower-matrix/internal/matrix/delivery/http"
	"eisenhower-matrix/internal/middleware"
	"eisenhower-matrix/internal/model"
	pomodoroHTTP "eisenhower-matrix/internal/pomodoro/delivery/http"
	wizardHTTP "eisenhower-matrix/internal/wizard/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger stays off the production surface.
	if srv.environment != model.EnvironmentProduction {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}

func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.authSvc, srv.rateLimit)

	api := srv.gin.Group("/api/v1", mw.RateLimit())

	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, srv.authSvc))
	matrixHTTP.RegisterRoutes(api, matrixHTTP.New(srv.l, srv.matrixUC), mw)
	wizardHTTP.RegisterRoutes(api, wizardHTTP.New(srv.l, srv.wizardUC), mw)
	contactsHTTP.RegisterRoutes(api, contactsHTTP.New(srv.l, srv.contactsUC), mw)
	pomodoroHTTP.RegisterRoutes(api, pomodoroHTTP.New(srv.l, srv.pomodoroTimer), mw)

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
	return nil
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	caDelivery "customer-care-assistant/internal/callanalysis/delivery/http"
	chatDelivery "customer-care-assistant/internal/chat/delivery/http"
	grievanceDelivery "customer-care-assistant/internal/grievance/delivery/http"
	"customer-care-assistant/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.CORS())
	srv.gin.Use(srv.mw.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Warn(ctx, "CORS is wide open; front this service with a gateway in production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	chatDelivery.RegisterRoutes(api.Group("/chatbot"), srv.chatHandler)
	srv.l.Infof(ctx, "Chatbot routes registered under /api/v1/chatbot")

	grievanceDelivery.RegisterRoutes(api.Group("/grievance_management"), srv.grievanceHandler)
	srv.l.Infof(ctx, "Grievance routes registered under /api/v1/grievance_management")

	caDelivery.RegisterRoutes(api.Group("/call_analysis"), srv.callHandler)
	srv.l.Infof(ctx, "Call analysis routes registered under /api/v1/call_analysis")
}

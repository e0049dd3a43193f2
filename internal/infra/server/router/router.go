// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mysavings/backend/internal/integration/entrypoint/controller"
	"github.com/mysavings/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	goalController        *controller.GoalController
	entitlementController *controller.EntitlementController
	analyticsController   *controller.AnalyticsController
	profileController     *controller.ProfileController
	chatController        *controller.ChatController
	chatRateLimiter       *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	entitlementController *controller.EntitlementController,
	analyticsController *controller.AnalyticsController,
	profileController *controller.ProfileController,
	chatController *controller.ChatController,
	chatRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		goalController:        goalController,
		entitlementController: entitlementController,
		analyticsController:   analyticsController,
		profileController:     profileController,
		chatController:        chatController,
		chatRateLimiter:       chatRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	if r.healthController != nil {
		r.engine.GET("/health", r.healthController.Check)
	}
}

func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.goalController != nil {
			goals := v1.Group("/goals")
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/:id", r.goalController.Get)
				goals.GET("/:id/savings", r.goalController.ListSavings)
				goals.POST("/:id/savings", r.goalController.AddSaving)
			}
		}

		if r.entitlementController != nil {
			entitlement := v1.Group("/entitlement")
			{
				entitlement.GET("", r.entitlementController.Get)
				entitlement.POST("/upgrade", r.entitlementController.Upgrade)
			}
		}

		if r.analyticsController != nil {
			v1.GET("/analytics/summary", r.analyticsController.Summary)
		}

		if r.profileController != nil {
			v1.GET("/profile", r.profileController.Get)
			v1.PUT("/profile", r.profileController.Update)
		}

		if r.chatController != nil {
			chat := v1.Group("/chat")
			{
				chat.POST("/open", r.chatController.Open)
				chat.GET("/messages", r.chatController.Transcript)
				if r.chatRateLimiter != nil {
					chat.POST("/messages", r.chatRateLimiter.Middleware(), r.chatController.Send)
				} else {
					chat.POST("/messages", r.chatController.Send)
				}
				chat.DELETE("", r.chatController.Dismiss)
			}
		}
	}
}

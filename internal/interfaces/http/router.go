package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"certhub/internal/interfaces/http/middleware"
)

func (c *Container) setupRoutes() {
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := c.engine.Group("/api/v1")

	// Public surface. Submission and OTP issuance carry their own per-IP
	// windows; verification rate limiting lives in the use case so every
	// attempt still reaches the audit log.
	submitLimit := middleware.RateLimit(c.limiter, "submit",
		c.cfg.RateLimit.SubmitMaxAttempts,
		time.Duration(c.cfg.RateLimit.SubmitWindowMins)*time.Minute, c.log)
	otpLimit := middleware.RateLimit(c.limiter, "otp",
		c.cfg.RateLimit.OTPMaxAttempts,
		time.Duration(c.cfg.RateLimit.OTPWindowMins)*time.Minute, c.log)

	v1.POST("/requests", submitLimit, c.publicHandler.SubmitRequest)
	v1.GET("/verify", c.publicHandler.Verify)
	v1.POST("/otp/send", otpLimit, c.publicHandler.SendOTP)
	v1.POST("/otp/verify", otpLimit, c.publicHandler.VerifyOTP)
	v1.GET("/artifacts/:publicID", c.publicHandler.DownloadArtifact)

	// Admin surface, behind the authenticating proxy.
	adminGroup := v1.Group("/admin")
	adminGroup.Use(middleware.RequireOperator())
	{
		requests := adminGroup.Group("/requests")
		{
			requests.GET("", c.requestHandler.ListRequests)
			requests.GET("/:id", c.requestHandler.GetRequest)
			requests.POST("/:id/approve", c.requestHandler.ApproveRequest)
			requests.POST("/:id/reject", c.requestHandler.RejectRequest)
			requests.POST("/:id/retry-generation", c.requestHandler.RetryGeneration)
			requests.POST("/:id/retry-notification", c.requestHandler.RetryNotification)
			requests.POST("/bulk-approve", c.requestHandler.BulkApprove)
			requests.POST("/bulk-reject", c.requestHandler.BulkReject)
			requests.DELETE("/:id", c.requestHandler.DeleteRequest)
		}

		institutions := adminGroup.Group("/institutions")
		{
			institutions.GET("", c.eventHandler.ListInstitutions)
			institutions.POST("", c.eventHandler.CreateInstitution)
			institutions.PATCH("/:id", c.eventHandler.UpdateInstitution)
			institutions.DELETE("/:id", c.eventHandler.DeleteInstitution)
			institutions.GET("/:id/events", c.eventHandler.ListEventDates)
			institutions.POST("/:id/events", c.eventHandler.CreateEventDate)
		}

		events := adminGroup.Group("/events")
		{
			events.PATCH("/:id", c.eventHandler.UpdateEventDate)
			events.DELETE("/:id", c.eventHandler.DeleteEventDate)
			events.GET("/:id/participants", c.eventHandler.ListParticipants)
			events.POST("/:id/participants", c.eventHandler.AddParticipant)
		}

		adminGroup.DELETE("/participants/:id", c.eventHandler.RemoveParticipant)

		adminGroup.GET("/settings", c.settingHandler.ListSettings)
		adminGroup.PUT("/settings/:category/:key", c.settingHandler.UpdateSetting)

		adminGroup.GET("/verification-log", c.settingHandler.ListVerificationLog)
	}
}

// Package handler provides the HTTP handlers of the jobly API.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarredbaird/express-jobly/ctxutil"
	"github.com/jarredbaird/express-jobly/data"
	"github.com/jarredbaird/express-jobly/ecode"
	"github.com/jarredbaird/express-jobly/logging/logger"
	"github.com/jarredbaird/express-jobly/logging/observes"
	"github.com/jarredbaird/express-jobly/middleware"
	"github.com/jarredbaird/express-jobly/net/resp"
	"github.com/jarredbaird/express-jobly/service"
	"github.com/jarredbaird/express-jobly/validator"
	"github.com/sirupsen/logrus"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Job     *JobHandler
	Company *CompanyHandler
	data    *data.Data
}

// NewHandler creates a new handler instance with all sub-handlers initialized.
func NewHandler(svc *service.Service, d *data.Data) *Handler {
	return &Handler{
		Job:     NewJobHandler(svc.Job),
		Company: NewCompanyHandler(svc.Company),
		data:    d,
	}
}

// RegisterRoutes registers all HTTP routes. Mutating routes are gated on an
// admin principal.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	jobs := r.Group("/jobs")
	{
		jobs.POST("", middleware.RequireAdmin, h.Job.Create)
		jobs.GET("", h.Job.List)
		jobs.GET("/:id", h.Job.Get)
		jobs.PATCH("/:id", middleware.RequireAdmin, h.Job.Update)
		jobs.DELETE("/:id", middleware.RequireAdmin, h.Job.Delete)
	}

	companies := r.Group("/companies")
	{
		companies.POST("", middleware.RequireAdmin, h.Company.Create)
		companies.GET("", h.Company.List)
		companies.GET("/:handle", h.Company.Get)
		companies.PATCH("/:handle", middleware.RequireAdmin, h.Company.Update)
		companies.DELETE("/:handle", middleware.RequireAdmin, h.Company.Delete)
	}

	r.GET("/health", h.Health)
}

// Health reports whether the store answers.
func (h *Handler) Health(c *gin.Context) {
	status := h.data.Health(c.Request.Context())
	if status["status"] != "healthy" {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	resp.Success(c.Writer, status)
}

// fail writes err as an error response. Server errors are logged with their
// stack and reported to sentry; their message never reaches the client.
func fail(c *gin.Context, err error) {
	ex := resp.FromError(err)
	if ex.Status >= http.StatusInternalServerError {
		ctx := ctxutil.FromGinContext(c)
		fields := logrus.Fields{"error": err.Error()}
		var e *ecode.Error
		if errors.As(err, &e) && len(e.Stack) > 0 {
			fields["stack"] = string(e.Stack)
		}
		logger.EntryWithFields(ctx, fields).Error("request failed")
		observes.CaptureError(ctx, err)
	}
	resp.Fail(c.Writer, ex)
	c.Abort()
}

// bindFail reports a payload or query that could not be bound. Validation
// failures carry per-field messages keyed by JSON name.
func bindFail(c *gin.Context, err error) {
	if msgs := validator.Messages(err); msgs != nil {
		resp.Fail(c.Writer, resp.BadRequest(ecode.Text(ecode.ParamErr), msgs))
		c.Abort()
		return
	}
	resp.Fail(c.Writer, resp.BadRequest(err.Error()))
	c.Abort()
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarredbaird/express-jobly/ctxutil"
	"github.com/jarredbaird/express-jobly/net/resp"
	"github.com/jarredbaird/express-jobly/service"
	"github.com/jarredbaird/express-jobly/structs"
	"github.com/jarredbaird/express-jobly/validator"
)

// CompanyHandler handles HTTP requests for companies.
type CompanyHandler struct {
	svc service.CompanyServiceInterface
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(svc service.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

// Create handles company creation; the handle is derived from the name when
// omitted.
//
//	POST /companies {handle?, name, description, numEmployees, logoUrl} => 201 {company}
func (h *CompanyHandler) Create(c *gin.Context) {
	var body structs.CreateCompanyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		bindFail(c, err)
		return
	}

	company, err := h.svc.Create(ctxutil.FromGinContext(c), &body)
	if err != nil {
		fail(c, err)
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, gin.H{"company": company})
}

// List handles company listing.
//
//	GET /companies?name=&minEmployees=&maxEmployees= => {companies}
func (h *CompanyHandler) List(c *gin.Context) {
	var filter structs.CompanyFilter
	if unknown := validator.UnknownKeys(c.Request.URL.Query(), &filter); len(unknown) > 0 {
		resp.Fail(c.Writer, resp.BadRequest("unknown query parameter", unknown))
		return
	}
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindFail(c, err)
		return
	}

	companies, err := h.svc.List(ctxutil.FromGinContext(c), &filter)
	if err != nil {
		fail(c, err)
		return
	}

	resp.Success(c.Writer, gin.H{"companies": companies})
}

// Get returns a company with its jobs.
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.svc.Get(ctxutil.FromGinContext(c), c.Param("handle"))
	if err != nil {
		fail(c, err)
		return
	}

	resp.Success(c.Writer, gin.H{"company": company})
}

// Update handles partial company updates. The handle cannot change.
func (h *CompanyHandler) Update(c *gin.Context) {
	var body structs.UpdateCompanyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		bindFail(c, err)
		return
	}

	company, err := h.svc.Update(ctxutil.FromGinContext(c), c.Param("handle"), &body)
	if err != nil {
		fail(c, err)
		return
	}

	resp.Success(c.Writer, gin.H{"company": company})
}

// Delete removes a company and, through the foreign key, its jobs.
func (h *CompanyHandler) Delete(c *gin.Context) {
	handle := c.Param("handle")
	if err := h.svc.Delete(ctxutil.FromGinContext(c), handle); err != nil {
		fail(c, err)
		return
	}

	resp.Success(c.Writer, gin.H{"deleted": handle})
}

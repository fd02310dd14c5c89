package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jarredbaird/express-jobly/ctxutil"
	"github.com/jarredbaird/express-jobly/net/resp"
	"github.com/jarredbaird/express-jobly/service"
	"github.com/jarredbaird/express-jobly/structs"
	"github.com/jarredbaird/express-jobly/validator"
)

// JobHandler handles HTTP requests for jobs.
type JobHandler struct {
	svc service.JobServiceInterface
}

// NewJobHandler creates a new job handler.
func NewJobHandler(svc service.JobServiceInterface) *JobHandler {
	return &JobHandler{svc: svc}
}

func jobID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Fail(c.Writer, resp.BadRequest("invalid job id"))
		c.Abort()
		return 0, false
	}
	return id, true
}

// Create handles job creation.
//
//	POST /jobs {title, salary, equity, companyHandle} => 201 {job}
func (h *JobHandler) Create(c *gin.Context) {
	var body structs.CreateJobBody
	if err := c.ShouldBindJSON(&body); err != nil {
		bindFail(c, err)
		return
	}

	job, err := h.svc.Create(ctxutil.FromGinContext(c), &body)
	if err != nil {
		fail(c, err)
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, gin.H{"job": job})
}

// List handles job listing.
//
//	GET /jobs?title=&minSalary=&maxSalary=&minEquity=&maxEquity= => {jobs}
func (h *JobHandler) List(c *gin.Context) {
	var filter structs.JobFilter
	if unknown := validator.UnknownKeys(c.Request.URL.Query(), &filter); len(unknown) > 0 {
		resp.Fail(c.Writer, resp.BadRequest("unknown query parameter", unknown))
		return
	}
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindFail(c, err)
		return
	}

	jobs, err := h.svc.List(ctxutil.FromGinContext(c), &filter)
	if err != nil {
		fail(c, err)
		return
	}

	resp.Success(c.Writer, gin.H{"jobs": jobs})
}

// Get handles job retrieval.
//
//	GET /jobs/:id => {job}
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	job, err := h.svc.Get(ctxutil.FromGinContext(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	resp.Success(c.Writer, gin.H{"job": job})
}

// Update handles partial job updates. Members absent from the body keep
// their value; explicit nulls clear it.
//
//	PATCH /jobs/:id {title?, salary?, equity?} => {job}
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	var body structs.UpdateJobBody
	if err := c.ShouldBindJSON(&body); err != nil {
		bindFail(c, err)
		return
	}

	job, err := h.svc.Update(ctxutil.FromGinContext(c), id, &body)
	if err != nil {
		fail(c, err)
		return
	}

	resp.Success(c.Writer, gin.H{"job": job})
}

// Delete handles job deletion.
//
//	DELETE /jobs/:id => {deleted: "<id>"}
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(ctxutil.FromGinContext(c), id); err != nil {
		fail(c, err)
		return
	}

	resp.Success(c.Writer, gin.H{"deleted": strconv.Itoa(id)})
}

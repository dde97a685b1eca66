package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ndishimyeemilien/job-connect/internal/dto"
	"github.com/ndishimyeemilien/job-connect/internal/model"
	"github.com/ndishimyeemilien/job-connect/internal/response"
	"github.com/ndishimyeemilien/job-connect/internal/search"
	"github.com/ndishimyeemilien/job-connect/internal/usecase"
	"github.com/ndishimyeemilien/job-connect/internal/util"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/jobs", h.List)
	app.Get("/jobs/:id", h.Get)
	app.Post("/jobs", h.Create)
	app.Put("/jobs/:id", h.Update)
	app.Delete("/jobs/:id", h.Delete)
}

// List runs the query engine over the job store. Search and filters come in
// as query params; pagination is applied here, after matching, because the
// engine itself returns the full ordered result set.
func (h *JobHandler) List(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return respondError(c, err)
	}

	matched := h.uc.SearchJobs(c.Query("search"), c.Query("location"), criteria)

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	pagination := response.NewPagination(page, pageSize, int64(len(matched)))

	var pageJobs []model.Job
	if pagination.From > 0 {
		pageJobs = matched[pagination.From-1 : pagination.To]
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get jobs",
		Data:       dto.NewJobDTOs(pageJobs),
		Pagination: pagination,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.uc.GetJobByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job",
		Data:    dto.NewJobDTO(*job),
	})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, util.NewValidationError("invalid request body", nil))
	}
	if verr := util.ValidateStruct(req); verr != nil {
		return respondError(c, verr)
	}

	job, err := h.uc.CreateJob(req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create job",
		Data:    dto.NewJobDTO(*job),
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, util.NewValidationError("invalid request body", nil))
	}

	job, err := h.uc.UpdateJob(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update job",
		Data:    dto.NewJobDTO(*job),
	})
}

// Delete closes a posting instead of removing the row, so existing
// applications keep a valid reference.
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.CloseJob(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success close job",
	})
}

func parseCriteria(c *fiber.Ctx) (search.Criteria, error) {
	var criteria search.Criteria

	for _, raw := range splitCSV(c.Query("type")) {
		t, err := model.ParseEmploymentType(raw)
		if err != nil {
			return criteria, util.NewValidationError(err.Error(), nil)
		}
		criteria.JobTypes = append(criteria.JobTypes, t)
	}

	for _, raw := range splitCSV(c.Query("experience")) {
		l, err := model.ParseExperienceLevel(raw)
		if err != nil {
			return criteria, util.NewValidationError(err.Error(), nil)
		}
		criteria.ExperienceLevels = append(criteria.ExperienceLevels, l)
	}

	criteria.Remote = c.QueryBool("remote")

	if c.Query("salary_min") != "" || c.Query("salary_max") != "" {
		criteria.Salary = &search.SalaryRange{
			Min: c.QueryInt("salary_min", 0),
			Max: c.QueryInt("salary_max", int(^uint(0)>>1)),
		}
	}

	if raw := c.Query("date_posted"); raw != "" {
		d, err := search.ParseDatePosted(raw)
		if err != nil {
			return criteria, util.NewValidationError(err.Error(), nil)
		}
		criteria.DatePosted = d
	}

	return criteria, nil
}

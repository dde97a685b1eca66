package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ndishimyeemilien/job-connect/internal/dto"
	"github.com/ndishimyeemilien/job-connect/internal/middleware"
	"github.com/ndishimyeemilien/job-connect/internal/usecase"
	"github.com/ndishimyeemilien/job-connect/internal/util"
)

type ApplicationHandler struct {
	uc *usecase.ApplicationUsecase
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/jobs/:id/apply", middleware.RateLimiter(5, 1*time.Minute), h.Apply)
	app.Get("/jobs/:id/applications", h.ListForJob)
	app.Get("/applications", h.ListForUser)
	app.Patch("/applications/:id/status", h.UpdateStatus)
}

// Apply submits a job application: multipart form with a "resume" file plus
// "user_id" and optional "cover_letter" fields.
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	userID := c.FormValue("user_id")
	if userID == "" {
		return respondError(c, util.NewValidationError("user_id is required", nil))
	}

	input := usecase.SubmitApplicationInput{
		JobID:       c.Params("id"),
		UserID:      userID,
		CoverLetter: c.FormValue("cover_letter"),
	}

	file, err := c.FormFile("resume")
	if err == nil {
		f, openErr := file.Open()
		if openErr != nil {
			return respondError(c, util.NewValidationError("cannot read resume file", nil))
		}
		defer f.Close()
		input.Resume = &usecase.ResumeUpload{
			Filename:    file.Filename,
			Size:        file.Size,
			ContentType: file.Header.Get("Content-Type"),
			Content:     f,
		}
	}

	result, err := h.uc.Submit(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Application submitted",
		Data: fiber.Map{
			"id":    result.Application.ID,
			"state": result.State,
		},
	})
}

func (h *ApplicationHandler) ListForJob(c *fiber.Ctx) error {
	apps, err := h.uc.GetApplicationsForJob(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get applications",
		Data:    dto.NewApplicationDTOs(apps),
	})
}

func (h *ApplicationHandler) ListForUser(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return respondError(c, util.NewValidationError("user_id is required", nil))
	}

	apps, err := h.uc.GetApplicationsForUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get applications",
		Data:    dto.NewApplicationDTOs(apps),
	})
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, util.NewValidationError("invalid request body", nil))
	}
	if verr := util.ValidateStruct(req); verr != nil {
		return respondError(c, verr)
	}

	app, err := h.uc.UpdateStatus(c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update application status",
		Data:    dto.NewApplicationDTO(*app),
	})
}

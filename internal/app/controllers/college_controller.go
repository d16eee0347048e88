package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/middleware"
)

// CollegeService is the college behaviour the controller depends on
type CollegeService interface {
	CreateCollege(ctx context.Context, college *models.College) (*models.College, error)
	CreateColleges(ctx context.Context, colleges []*models.College) ([]*models.College, error)
	GetAllColleges(ctx context.Context) ([]*models.College, error)
	GetCollegeByID(ctx context.Context, id int64) (*models.College, error)
	GetCollegeByName(ctx context.Context, name string) (*models.College, error)
	GetCollegeByAddress(ctx context.Context, address string) (*models.College, error)
	UpdateCollege(ctx context.Context, id int64, college *models.College) (*models.College, error)
	PatchCollege(ctx context.Context, id int64, patch *models.College) (*models.College, error)
	DeleteCollege(ctx context.Context, id int64) (*models.College, error)
}

// CollegeController handles college endpoints
type CollegeController struct {
	collegeService CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService CollegeService) *CollegeController {
	return &CollegeController{collegeService: collegeService}
}

// CreateCollege handles college creation
// @Summary Create a college
// @Tags colleges
// @Accept json
// @Produce json
// @Param request body dto.CollegeRequest true "College information"
// @Success 201 {object} dto.APIResponse{data=models.College}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges [post]
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	var req dto.CollegeRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	college, err := c.collegeService.CreateCollege(ctx.Request.Context(), req.ToModel())
	created(ctx, college, err)
}

// CreateColleges handles batch college creation; either every college is stored or none
// @Summary Create several colleges
// @Tags colleges
// @Accept json
// @Produce json
// @Param request body []dto.CollegeRequest true "Colleges"
// @Success 201 {object} dto.APIResponse{data=[]models.College}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /colleges/batch [post]
func (c *CollegeController) CreateColleges(ctx *gin.Context) {
	var reqs []dto.CollegeRequest
	if err := middleware.BindBatch(ctx, &reqs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	colleges := make([]*models.College, 0, len(reqs))
	for _, req := range reqs {
		colleges = append(colleges, req.ToModel())
	}
	saved, err := c.collegeService.CreateColleges(ctx.Request.Context(), colleges)
	created(ctx, saved, err)
}

// GetAllColleges lists every college
// @Summary List colleges
// @Tags colleges
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.College}
// @Router /colleges [get]
func (c *CollegeController) GetAllColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.GetAllColleges(ctx.Request.Context())
	ok(ctx, colleges, err)
}

// GetCollegeByID retrieves a college by ID
// @Summary Get college by ID
// @Tags colleges
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {object} dto.APIResponse{data=models.College}
// @Failure 400 {object} dto.ErrorResponse "Invalid college ID"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{id} [get]
func (c *CollegeController) GetCollegeByID(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	college, err := c.collegeService.GetCollegeByID(ctx.Request.Context(), id)
	ok(ctx, college, err)
}

// GetCollegeByName retrieves the first college with the given name
// @Summary Get college by name
// @Tags colleges
// @Produce json
// @Param name path string true "College name"
// @Success 200 {object} dto.APIResponse{data=models.College}
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/name/{name} [get]
func (c *CollegeController) GetCollegeByName(ctx *gin.Context) {
	college, err := c.collegeService.GetCollegeByName(ctx.Request.Context(), ctx.Param("name"))
	ok(ctx, college, err)
}

// GetCollegeByAddress retrieves the first college at the given address
// @Summary Get college by address
// @Tags colleges
// @Produce json
// @Param address path string true "College address"
// @Success 200 {object} dto.APIResponse{data=models.College}
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/address/{address} [get]
func (c *CollegeController) GetCollegeByAddress(ctx *gin.Context) {
	college, err := c.collegeService.GetCollegeByAddress(ctx.Request.Context(), ctx.Param("address"))
	ok(ctx, college, err)
}

// UpdateCollege replaces all fields of a college
// @Summary Update college
// @Tags colleges
// @Accept json
// @Produce json
// @Param id path int true "College ID"
// @Param request body dto.CollegeRequest true "College information"
// @Success 200 {object} dto.APIResponse{data=models.College}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{id} [put]
func (c *CollegeController) UpdateCollege(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	var req dto.CollegeRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	college, err := c.collegeService.UpdateCollege(ctx.Request.Context(), id, req.ToModel())
	ok(ctx, college, err)
}

// PatchCollege replaces the non-empty fields of a college
// @Summary Patch college
// @Tags colleges
// @Accept json
// @Produce json
// @Param id path int true "College ID"
// @Param request body dto.PatchCollegeRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.College}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{id} [patch]
func (c *CollegeController) PatchCollege(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	var req dto.PatchCollegeRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	college, err := c.collegeService.PatchCollege(ctx.Request.Context(), id, req.ToModel())
	ok(ctx, college, err)
}

// DeleteCollege removes a college that has no departments and returns it
// @Summary Delete college
// @Tags colleges
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {object} dto.APIResponse{data=models.College}
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 409 {object} dto.ErrorResponse "College still has departments"
// @Router /colleges/{id} [delete]
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	college, err := c.collegeService.DeleteCollege(ctx.Request.Context(), id)
	ok(ctx, college, err)
}

package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/middleware"
)

// DepartmentService is the department behaviour the controller depends on
type DepartmentService interface {
	CreateDepartment(ctx context.Context, department *models.Department) (*models.Department, error)
	CreateDepartments(ctx context.Context, departments []*models.Department) ([]*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
	GetDepartmentByName(ctx context.Context, name string) (*models.Department, error)
	GetDepartmentByCode(ctx context.Context, code string) (*models.Department, error)
	GetDepartmentsByCollegeID(ctx context.Context, collegeID int64) ([]*models.Department, error)
	UpdateDepartment(ctx context.Context, id int64, department *models.Department) (*models.Department, error)
	PatchDepartment(ctx context.Context, id int64, patch *models.Department) (*models.Department, error)
	DeleteDepartment(ctx context.Context, id int64) (*models.Department, error)
}

// DepartmentController handles department endpoints
type DepartmentController struct {
	departmentService DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// CreateDepartment handles department creation
// @Summary Create a department
// @Description The referenced college must exist; it is returned fully populated.
// @Tags departments
// @Accept json
// @Produce json
// @Param request body dto.DepartmentRequest true "Department information"
// @Success 201 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or missing college reference"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.DepartmentRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	department, err := c.departmentService.CreateDepartment(ctx.Request.Context(), req.ToModel())
	created(ctx, department, err)
}

// CreateDepartments handles batch department creation
// @Summary Create several departments
// @Tags departments
// @Accept json
// @Produce json
// @Param request body []dto.DepartmentRequest true "Departments"
// @Success 201 {object} dto.APIResponse{data=[]models.Department}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /departments/batch [post]
func (c *DepartmentController) CreateDepartments(ctx *gin.Context) {
	var reqs []dto.DepartmentRequest
	if err := middleware.BindBatch(ctx, &reqs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	departments := make([]*models.Department, 0, len(reqs))
	for _, req := range reqs {
		departments = append(departments, req.ToModel())
	}
	saved, err := c.departmentService.CreateDepartments(ctx.Request.Context(), departments)
	created(ctx, saved, err)
}

// GetAllDepartments lists every department
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Department}
// @Router /departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAllDepartments(ctx.Request.Context())
	ok(ctx, departments, err)
}

// GetDepartmentByID retrieves a department by ID
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [get]
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	department, err := c.departmentService.GetDepartmentByID(ctx.Request.Context(), id)
	ok(ctx, department, err)
}

// GetDepartmentByName retrieves the first department with the given name
// @Summary Get department by name
// @Tags departments
// @Produce json
// @Param name path string true "Department name"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/name/{name} [get]
func (c *DepartmentController) GetDepartmentByName(ctx *gin.Context) {
	department, err := c.departmentService.GetDepartmentByName(ctx.Request.Context(), ctx.Param("name"))
	ok(ctx, department, err)
}

// GetDepartmentByCode retrieves the first department with the given code
// @Summary Get department by code
// @Tags departments
// @Produce json
// @Param code path string true "Department code"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/code/{code} [get]
func (c *DepartmentController) GetDepartmentByCode(ctx *gin.Context) {
	department, err := c.departmentService.GetDepartmentByCode(ctx.Request.Context(), ctx.Param("code"))
	ok(ctx, department, err)
}

// GetDepartmentsByCollegeID lists the departments of a college
// @Summary List departments of a college
// @Tags departments
// @Produce json
// @Param collegeId path int true "College ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Department}
// @Router /departments/college/{collegeId} [get]
func (c *DepartmentController) GetDepartmentsByCollegeID(ctx *gin.Context) {
	collegeID, valid := parseIDParam(ctx, "collegeId")
	if !valid {
		return
	}
	departments, err := c.departmentService.GetDepartmentsByCollegeID(ctx.Request.Context(), collegeID)
	ok(ctx, departments, err)
}

// UpdateDepartment replaces all fields of a department, including its college
// @Summary Update department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param request body dto.DepartmentRequest true "Department information"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or missing college reference"
// @Failure 404 {object} dto.ErrorResponse "Department or college not found"
// @Router /departments/{id} [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	var req dto.DepartmentRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	department, err := c.departmentService.UpdateDepartment(ctx.Request.Context(), id, req.ToModel())
	ok(ctx, department, err)
}

// PatchDepartment replaces the non-empty fields of a department
// @Summary Patch department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param request body dto.PatchDepartmentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.ErrorResponse "Department or college not found"
// @Router /departments/{id} [patch]
func (c *DepartmentController) PatchDepartment(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	var req dto.PatchDepartmentRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	department, err := c.departmentService.PatchDepartment(ctx.Request.Context(), id, req.ToModel())
	ok(ctx, department, err)
}

// DeleteDepartment removes a department that has no students or teachers and returns it
// @Summary Delete department
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Department still has students or teachers"
// @Router /departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	department, err := c.departmentService.DeleteDepartment(ctx.Request.Context(), id)
	ok(ctx, department, err)
}

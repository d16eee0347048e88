package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/middleware"
)

// TeacherService is the teacher behaviour the controller depends on
type TeacherService interface {
	CreateTeacher(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error)
	CreateTeachers(ctx context.Context, teachers []*models.Teacher) ([]*models.Teacher, error)
	GetAllTeachers(ctx context.Context) ([]*models.Teacher, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetTeacherByName(ctx context.Context, name string) (*models.Teacher, error)
	GetTeachersByDegree(ctx context.Context, degree string) ([]*models.Teacher, error)
	GetTeachersByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Teacher, error)
	UpdateTeacher(ctx context.Context, id int64, teacher *models.Teacher) (*models.Teacher, error)
	PatchTeacher(ctx context.Context, id int64, patch *models.Teacher) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) (*models.Teacher, error)
}

// TeacherController handles teacher endpoints
type TeacherController struct {
	teacherService TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

// CreateTeacher handles teacher creation
// @Summary Create a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.TeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=models.Teacher}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or missing department reference"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.TeacherRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	teacher, err := c.teacherService.CreateTeacher(ctx.Request.Context(), req.ToModel())
	created(ctx, teacher, err)
}

// CreateTeachers handles batch teacher creation
// @Summary Create several teachers
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body []dto.TeacherRequest true "Teachers"
// @Success 201 {object} dto.APIResponse{data=[]models.Teacher}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /teachers/batch [post]
func (c *TeacherController) CreateTeachers(ctx *gin.Context) {
	var reqs []dto.TeacherRequest
	if err := middleware.BindBatch(ctx, &reqs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	teachers := make([]*models.Teacher, 0, len(reqs))
	for _, req := range reqs {
		teachers = append(teachers, req.ToModel())
	}
	saved, err := c.teacherService.CreateTeachers(ctx.Request.Context(), teachers)
	created(ctx, saved, err)
}

// GetAllTeachers lists every teacher
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher}
// @Router /teachers [get]
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx.Request.Context())
	ok(ctx, teachers, err)
}

// GetTeacherByID retrieves a teacher by ID
// @Summary Get teacher by ID
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	teacher, err := c.teacherService.GetTeacherByID(ctx.Request.Context(), id)
	ok(ctx, teacher, err)
}

// GetTeacherByName retrieves the first teacher with the given name
// @Summary Get teacher by name
// @Tags teachers
// @Produce json
// @Param name path string true "Teacher name"
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/name/{name} [get]
func (c *TeacherController) GetTeacherByName(ctx *gin.Context) {
	teacher, err := c.teacherService.GetTeacherByName(ctx.Request.Context(), ctx.Param("name"))
	ok(ctx, teacher, err)
}

// GetTeachersByDegree lists teachers holding exactly the given degree
// @Summary List teachers by degree
// @Tags teachers
// @Produce json
// @Param degree path string true "Degree"
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher}
// @Router /teachers/degree/{degree} [get]
func (c *TeacherController) GetTeachersByDegree(ctx *gin.Context) {
	teachers, err := c.teacherService.GetTeachersByDegree(ctx.Request.Context(), ctx.Param("degree"))
	ok(ctx, teachers, err)
}

// GetTeachersByDepartmentID lists the teachers of a department
// @Summary List teachers of a department
// @Tags teachers
// @Produce json
// @Param departmentId path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher}
// @Router /teachers/department/{departmentId} [get]
func (c *TeacherController) GetTeachersByDepartmentID(ctx *gin.Context) {
	departmentID, valid := parseIDParam(ctx, "departmentId")
	if !valid {
		return
	}
	teachers, err := c.teacherService.GetTeachersByDepartmentID(ctx.Request.Context(), departmentID)
	ok(ctx, teachers, err)
}

// UpdateTeacher replaces all fields of a teacher, including its department
// @Summary Update teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Param request body dto.TeacherRequest true "Teacher information"
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or missing department reference"
// @Failure 404 {object} dto.ErrorResponse "Teacher or department not found"
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	var req dto.TeacherRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	teacher, err := c.teacherService.UpdateTeacher(ctx.Request.Context(), id, req.ToModel())
	ok(ctx, teacher, err)
}

// PatchTeacher replaces the non-empty fields of a teacher
// @Summary Patch teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Param request body dto.PatchTeacherRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 404 {object} dto.ErrorResponse "Teacher or department not found"
// @Router /teachers/{id} [patch]
func (c *TeacherController) PatchTeacher(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	var req dto.PatchTeacherRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	teacher, err := c.teacherService.PatchTeacher(ctx.Request.Context(), id, req.ToModel())
	ok(ctx, teacher, err)
}

// DeleteTeacher removes a teacher and returns it
// @Summary Delete teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	teacher, err := c.teacherService.DeleteTeacher(ctx.Request.Context(), id)
	ok(ctx, teacher, err)
}

package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/middleware"
)

// StudentService is the student behaviour the controller depends on
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	CreateStudents(ctx context.Context, students []*models.Student) ([]*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetStudentByName(ctx context.Context, name string) (*models.Student, error)
	GetStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	GetStudentsByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, student *models.Student) (*models.Student, error)
	PatchStudent(ctx context.Context, id int64, patch *models.Student) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) (*models.Student, error)
}

// StudentController handles student endpoints
type StudentController struct {
	studentService StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// CreateStudent handles student creation
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or missing department reference"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), req.ToModel())
	created(ctx, student, err)
}

// CreateStudents handles batch student creation
// @Summary Create several students
// @Tags students
// @Accept json
// @Produce json
// @Param request body []dto.StudentRequest true "Students"
// @Success 201 {object} dto.APIResponse{data=[]models.Student}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /students/batch [post]
func (c *StudentController) CreateStudents(ctx *gin.Context) {
	var reqs []dto.StudentRequest
	if err := middleware.BindBatch(ctx, &reqs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	students := make([]*models.Student, 0, len(reqs))
	for _, req := range reqs {
		students = append(students, req.ToModel())
	}
	saved, err := c.studentService.CreateStudents(ctx.Request.Context(), students)
	created(ctx, saved, err)
}

// GetAllStudents lists every student
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	ok(ctx, students, err)
}

// GetStudentByID retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	ok(ctx, student, err)
}

// GetStudentByName retrieves the first student with the given name
// @Summary Get student by name
// @Tags students
// @Produce json
// @Param name path string true "Student name"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/name/{name} [get]
func (c *StudentController) GetStudentByName(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByName(ctx.Request.Context(), ctx.Param("name"))
	ok(ctx, student, err)
}

// GetStudentByEmail retrieves a student by email
// @Summary Get student by email
// @Tags students
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/email/{email} [get]
func (c *StudentController) GetStudentByEmail(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByEmail(ctx.Request.Context(), ctx.Param("email"))
	ok(ctx, student, err)
}

// GetStudentsByDepartmentID lists the students of a department
// @Summary List students of a department
// @Tags students
// @Produce json
// @Param departmentId path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Router /students/department/{departmentId} [get]
func (c *StudentController) GetStudentsByDepartmentID(ctx *gin.Context) {
	departmentID, valid := parseIDParam(ctx, "departmentId")
	if !valid {
		return
	}
	students, err := c.studentService.GetStudentsByDepartmentID(ctx.Request.Context(), departmentID)
	ok(ctx, students, err)
}

// UpdateStudent replaces all fields of a student, including its department
// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.StudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or missing department reference"
// @Failure 404 {object} dto.ErrorResponse "Student or department not found"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	var req dto.StudentRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, req.ToModel())
	ok(ctx, student, err)
}

// PatchStudent replaces the non-empty fields of a student
// @Summary Patch student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.PatchStudentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student or department not found"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /students/{id} [patch]
func (c *StudentController) PatchStudent(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	var req dto.PatchStudentRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.PatchStudent(ctx.Request.Context(), id, req.ToModel())
	ok(ctx, student, err)
}

// DeleteStudent removes a student and returns it
// @Summary Delete student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id")
	if !valid {
		return
	}
	student, err := c.studentService.DeleteStudent(ctx.Request.Context(), id)
	ok(ctx, student, err)
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/campus/internal/app/controllers"
)

// Controllers groups the handlers mounted under /api/v1
type Controllers struct {
	College    *controllers.CollegeController
	Department *controllers.DepartmentController
	Student    *controllers.StudentController
	Teacher    *controllers.TeacherController
	Info       *controllers.InfoController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	// API version group
	v1 := router.Group("/api/v1")

	colleges := v1.Group("/colleges")
	{
		colleges.POST("", c.College.CreateCollege)
		colleges.POST("/batch", c.College.CreateColleges)
		colleges.GET("", c.College.GetAllColleges)
		colleges.GET("/:id", c.College.GetCollegeByID)
		colleges.GET("/name/:name", c.College.GetCollegeByName)
		colleges.GET("/address/:address", c.College.GetCollegeByAddress)
		colleges.PUT("/:id", c.College.UpdateCollege)
		colleges.PATCH("/:id", c.College.PatchCollege)
		colleges.DELETE("/:id", c.College.DeleteCollege)
	}

	departments := v1.Group("/departments")
	{
		departments.POST("", c.Department.CreateDepartment)
		departments.POST("/batch", c.Department.CreateDepartments)
		departments.GET("", c.Department.GetAllDepartments)
		departments.GET("/:id", c.Department.GetDepartmentByID)
		departments.GET("/name/:name", c.Department.GetDepartmentByName)
		departments.GET("/code/:code", c.Department.GetDepartmentByCode)
		departments.GET("/college/:collegeId", c.Department.GetDepartmentsByCollegeID)
		departments.PUT("/:id", c.Department.UpdateDepartment)
		departments.PATCH("/:id", c.Department.PatchDepartment)
		departments.DELETE("/:id", c.Department.DeleteDepartment)
	}

	students := v1.Group("/students")
	{
		students.POST("", c.Student.CreateStudent)
		students.POST("/batch", c.Student.CreateStudents)
		students.GET("", c.Student.GetAllStudents)
		students.GET("/:id", c.Student.GetStudentByID)
		students.GET("/name/:name", c.Student.GetStudentByName)
		students.GET("/email/:email", c.Student.GetStudentByEmail)
		students.GET("/department/:departmentId", c.Student.GetStudentsByDepartmentID)
		students.PUT("/:id", c.Student.UpdateStudent)
		students.PATCH("/:id", c.Student.PatchStudent)
		students.DELETE("/:id", c.Student.DeleteStudent)
	}

	teachers := v1.Group("/teachers")
	{
		teachers.POST("", c.Teacher.CreateTeacher)
		teachers.POST("/batch", c.Teacher.CreateTeachers)
		teachers.GET("", c.Teacher.GetAllTeachers)
		teachers.GET("/:id", c.Teacher.GetTeacherByID)
		teachers.GET("/name/:name", c.Teacher.GetTeacherByName)
		teachers.GET("/degree/:degree", c.Teacher.GetTeachersByDegree)
		teachers.GET("/department/:departmentId", c.Teacher.GetTeachersByDepartmentID)
		teachers.PUT("/:id", c.Teacher.UpdateTeacher)
		teachers.PATCH("/:id", c.Teacher.PatchTeacher)
		teachers.DELETE("/:id", c.Teacher.DeleteTeacher)
	}

	v1.GET("/info/environment", c.Info.GetEnvironment)
}

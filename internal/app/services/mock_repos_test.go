package services

import (
	"context"
	"errors"
	"maps"
	"slices"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/repositories"
)

// ── In-memory database shared by the mock repositories ──

type deptRow struct {
	name, code string
	collegeID  int64
}

type memberRow struct {
	name, attr   string // attr holds the email for students, the degree for teachers
	departmentID int64
}

type mockDB struct {
	colleges    map[int64]models.College
	departments map[int64]deptRow
	students    map[int64]memberRow
	teachers    map[int64]memberRow
	nextID      int64

	// failAfter makes the n-th save (1-based) fail with errInjected when > 0.
	failAfter int
	saves     int
}

var errInjected = errors.New("injected store failure")

func newMockDB() *mockDB {
	return &mockDB{
		colleges:    make(map[int64]models.College),
		departments: make(map[int64]deptRow),
		students:    make(map[int64]memberRow),
		teachers:    make(map[int64]memberRow),
	}
}

type mockSnapshot struct {
	colleges    map[int64]models.College
	departments map[int64]deptRow
	students    map[int64]memberRow
	teachers    map[int64]memberRow
	nextID      int64
}

func (db *mockDB) snapshot() mockSnapshot {
	return mockSnapshot{
		colleges:    maps.Clone(db.colleges),
		departments: maps.Clone(db.departments),
		students:    maps.Clone(db.students),
		teachers:    maps.Clone(db.teachers),
		nextID:      db.nextID,
	}
}

func (db *mockDB) restore(s mockSnapshot) {
	db.colleges = s.colleges
	db.departments = s.departments
	db.students = s.students
	db.teachers = s.teachers
	db.nextID = s.nextID
}

// WithinTransaction rolls every table back when fn fails.
func (db *mockDB) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := db.snapshot()
	if err := fn(ctx); err != nil {
		db.restore(snap)
		return err
	}
	return nil
}

func (db *mockDB) id() int64 {
	db.nextID++
	return db.nextID
}

func (db *mockDB) tick() error {
	db.saves++
	if db.failAfter > 0 && db.saves == db.failAfter {
		return errInjected
	}
	return nil
}

func (db *mockDB) college(id int64) (*models.College, bool) {
	c, ok := db.colleges[id]
	if !ok {
		return nil, false
	}
	return &c, true
}

func (db *mockDB) department(id int64) (*models.Department, bool) {
	row, ok := db.departments[id]
	if !ok {
		return nil, false
	}
	college, _ := db.college(row.collegeID)
	return &models.Department{ID: id, Name: row.name, Code: row.code, College: college}, true
}

func sortedIDs[V any](m map[int64]V) []int64 {
	return slices.Sorted(maps.Keys(m))
}

func saveAll[T any](ctx context.Context, db *mockDB, items []*T, save func(context.Context, *T) (*T, error)) ([]*T, error) {
	var out []*T
	err := db.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, item := range items {
			saved, err := save(ctx, item)
			if err != nil {
				return err
			}
			out = append(out, saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ── Mock CollegeRepository ──

type mockCollegeRepo struct{ db *mockDB }

func (m *mockCollegeRepo) Save(_ context.Context, college *models.College) (*models.College, error) {
	if err := m.db.tick(); err != nil {
		return nil, err
	}
	if college.ID == 0 {
		college.ID = m.db.id()
	} else if _, ok := m.db.colleges[college.ID]; !ok {
		return nil, repositories.ErrNotFound
	}
	m.db.colleges[college.ID] = *college
	return college, nil
}

func (m *mockCollegeRepo) SaveAll(ctx context.Context, colleges []*models.College) ([]*models.College, error) {
	return saveAll(ctx, m.db, colleges, m.Save)
}

func (m *mockCollegeRepo) FindAll(_ context.Context) ([]*models.College, error) {
	var out []*models.College
	for _, id := range sortedIDs(m.db.colleges) {
		c, _ := m.db.college(id)
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCollegeRepo) FindByID(_ context.Context, id int64) (*models.College, error) {
	if c, ok := m.db.college(id); ok {
		return c, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockCollegeRepo) first(match func(models.College) bool) (*models.College, error) {
	for _, id := range sortedIDs(m.db.colleges) {
		if match(m.db.colleges[id]) {
			c, _ := m.db.college(id)
			return c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockCollegeRepo) FindByName(_ context.Context, name string) (*models.College, error) {
	return m.first(func(c models.College) bool { return c.Name == name })
}

func (m *mockCollegeRepo) FindByAddress(_ context.Context, address string) (*models.College, error) {
	return m.first(func(c models.College) bool { return c.Address == address })
}

func (m *mockCollegeRepo) Delete(_ context.Context, college *models.College) error {
	if _, ok := m.db.colleges[college.ID]; !ok {
		return repositories.ErrNotFound
	}
	for _, d := range m.db.departments {
		if d.collegeID == college.ID {
			return repositories.ErrHasDependents
		}
	}
	delete(m.db.colleges, college.ID)
	return nil
}

// ── Mock DepartmentRepository ──

type mockDepartmentRepo struct{ db *mockDB }

func (m *mockDepartmentRepo) Save(_ context.Context, department *models.Department) (*models.Department, error) {
	if err := m.db.tick(); err != nil {
		return nil, err
	}
	if _, ok := m.db.colleges[department.CollegeID()]; !ok {
		return nil, repositories.ErrParentMissing
	}
	if department.ID == 0 {
		department.ID = m.db.id()
	} else if _, ok := m.db.departments[department.ID]; !ok {
		return nil, repositories.ErrNotFound
	}
	m.db.departments[department.ID] = deptRow{name: department.Name, code: department.Code, collegeID: department.CollegeID()}
	return department, nil
}

func (m *mockDepartmentRepo) SaveAll(ctx context.Context, departments []*models.Department) ([]*models.Department, error) {
	return saveAll(ctx, m.db, departments, m.Save)
}

func (m *mockDepartmentRepo) filter(match func(deptRow) bool) []*models.Department {
	var out []*models.Department
	for _, id := range sortedIDs(m.db.departments) {
		if match(m.db.departments[id]) {
			d, _ := m.db.department(id)
			out = append(out, d)
		}
	}
	return out
}

func (m *mockDepartmentRepo) first(match func(deptRow) bool) (*models.Department, error) {
	if found := m.filter(match); len(found) > 0 {
		return found[0], nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockDepartmentRepo) FindAll(_ context.Context) ([]*models.Department, error) {
	return m.filter(func(deptRow) bool { return true }), nil
}

func (m *mockDepartmentRepo) FindByID(_ context.Context, id int64) (*models.Department, error) {
	if d, ok := m.db.department(id); ok {
		return d, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockDepartmentRepo) FindByName(_ context.Context, name string) (*models.Department, error) {
	return m.first(func(d deptRow) bool { return d.name == name })
}

func (m *mockDepartmentRepo) FindByCode(_ context.Context, code string) (*models.Department, error) {
	return m.first(func(d deptRow) bool { return d.code == code })
}

func (m *mockDepartmentRepo) FindByCollegeID(_ context.Context, collegeID int64) ([]*models.Department, error) {
	return m.filter(func(d deptRow) bool { return d.collegeID == collegeID }), nil
}

func (m *mockDepartmentRepo) CountByCollegeID(_ context.Context, collegeID int64) (int64, error) {
	var n int64
	for _, d := range m.db.departments {
		if d.collegeID == collegeID {
			n++
		}
	}
	return n, nil
}

func (m *mockDepartmentRepo) Delete(_ context.Context, department *models.Department) error {
	if _, ok := m.db.departments[department.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.db.departments, department.ID)
	return nil
}

// ── Mock member repositories (students and teachers share one row shape) ──

type mockMemberTable struct {
	db    *mockDB
	table func() map[int64]memberRow
}

func (t mockMemberTable) save(id *int64, name, attr string, departmentID int64) error {
	if err := t.db.tick(); err != nil {
		return err
	}
	if _, ok := t.db.departments[departmentID]; !ok {
		return repositories.ErrParentMissing
	}
	if *id == 0 {
		*id = t.db.id()
	} else if _, ok := t.table()[*id]; !ok {
		return repositories.ErrNotFound
	}
	t.table()[*id] = memberRow{name: name, attr: attr, departmentID: departmentID}
	return nil
}

func (t mockMemberTable) ids(match func(memberRow) bool) []int64 {
	var out []int64
	for _, id := range sortedIDs(t.table()) {
		if match(t.table()[id]) {
			out = append(out, id)
		}
	}
	return out
}

func (t mockMemberTable) count(departmentID int64) int64 {
	return int64(len(t.ids(func(r memberRow) bool { return r.departmentID == departmentID })))
}

func (t mockMemberTable) remove(id int64) error {
	if _, ok := t.table()[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(t.table(), id)
	return nil
}

type mockStudentRepo struct{ mockMemberTable }

func newMockStudentRepo(db *mockDB) *mockStudentRepo {
	return &mockStudentRepo{mockMemberTable{db: db, table: func() map[int64]memberRow { return db.students }}}
}

func (m *mockStudentRepo) load(id int64) *models.Student {
	row := m.db.students[id]
	department, _ := m.db.department(row.departmentID)
	return &models.Student{ID: id, Name: row.name, Email: row.attr, Department: department}
}

func (m *mockStudentRepo) list(match func(memberRow) bool) []*models.Student {
	var out []*models.Student
	for _, id := range m.ids(match) {
		out = append(out, m.load(id))
	}
	return out
}

func (m *mockStudentRepo) first(match func(memberRow) bool) (*models.Student, error) {
	if found := m.list(match); len(found) > 0 {
		return found[0], nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockStudentRepo) Save(_ context.Context, student *models.Student) (*models.Student, error) {
	for id, row := range m.db.students {
		if row.attr == student.Email && id != student.ID {
			return nil, repositories.ErrDuplicateEmail
		}
	}
	if err := m.save(&student.ID, student.Name, student.Email, student.DepartmentID()); err != nil {
		return nil, err
	}
	return student, nil
}

func (m *mockStudentRepo) SaveAll(ctx context.Context, students []*models.Student) ([]*models.Student, error) {
	return saveAll(ctx, m.db, students, m.Save)
}

func (m *mockStudentRepo) FindAll(_ context.Context) ([]*models.Student, error) {
	return m.list(func(memberRow) bool { return true }), nil
}

func (m *mockStudentRepo) FindByID(_ context.Context, id int64) (*models.Student, error) {
	if _, ok := m.db.students[id]; !ok {
		return nil, repositories.ErrNotFound
	}
	return m.load(id), nil
}

func (m *mockStudentRepo) FindByName(_ context.Context, name string) (*models.Student, error) {
	return m.first(func(r memberRow) bool { return r.name == name })
}

func (m *mockStudentRepo) FindByEmail(_ context.Context, email string) (*models.Student, error) {
	return m.first(func(r memberRow) bool { return r.attr == email })
}

func (m *mockStudentRepo) FindByDepartmentID(_ context.Context, departmentID int64) ([]*models.Student, error) {
	return m.list(func(r memberRow) bool { return r.departmentID == departmentID }), nil
}

func (m *mockStudentRepo) CountByDepartmentID(_ context.Context, departmentID int64) (int64, error) {
	return m.count(departmentID), nil
}

func (m *mockStudentRepo) Delete(_ context.Context, student *models.Student) error {
	return m.remove(student.ID)
}

type mockTeacherRepo struct{ mockMemberTable }

func newMockTeacherRepo(db *mockDB) *mockTeacherRepo {
	return &mockTeacherRepo{mockMemberTable{db: db, table: func() map[int64]memberRow { return db.teachers }}}
}

func (m *mockTeacherRepo) load(id int64) *models.Teacher {
	row := m.db.teachers[id]
	department, _ := m.db.department(row.departmentID)
	return &models.Teacher{ID: id, Name: row.name, Degree: row.attr, Department: department}
}

func (m *mockTeacherRepo) list(match func(memberRow) bool) []*models.Teacher {
	var out []*models.Teacher
	for _, id := range m.ids(match) {
		out = append(out, m.load(id))
	}
	return out
}

func (m *mockTeacherRepo) Save(_ context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	if err := m.save(&teacher.ID, teacher.Name, teacher.Degree, teacher.DepartmentID()); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (m *mockTeacherRepo) SaveAll(ctx context.Context, teachers []*models.Teacher) ([]*models.Teacher, error) {
	return saveAll(ctx, m.db, teachers, m.Save)
}

func (m *mockTeacherRepo) FindAll(_ context.Context) ([]*models.Teacher, error) {
	return m.list(func(memberRow) bool { return true }), nil
}

func (m *mockTeacherRepo) FindByID(_ context.Context, id int64) (*models.Teacher, error) {
	if _, ok := m.db.teachers[id]; !ok {
		return nil, repositories.ErrNotFound
	}
	return m.load(id), nil
}

func (m *mockTeacherRepo) FindByName(_ context.Context, name string) (*models.Teacher, error) {
	if found := m.list(func(r memberRow) bool { return r.name == name }); len(found) > 0 {
		return found[0], nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockTeacherRepo) FindByDegree(_ context.Context, degree string) ([]*models.Teacher, error) {
	return m.list(func(r memberRow) bool { return r.attr == degree }), nil
}

func (m *mockTeacherRepo) FindByDepartmentID(_ context.Context, departmentID int64) ([]*models.Teacher, error) {
	return m.list(func(r memberRow) bool { return r.departmentID == departmentID }), nil
}

func (m *mockTeacherRepo) CountByDepartmentID(_ context.Context, departmentID int64) (int64, error) {
	return m.count(departmentID), nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, teacher *models.Teacher) error {
	return m.remove(teacher.ID)
}

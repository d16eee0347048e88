package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/campus/internal/app/models"
)

// Students and teachers both hang off a department; their reads join the
// department and its college so the whole parent chain is loaded in one query.

func joinDepartmentChain(q squirrel.SelectBuilder, alias string) squirrel.SelectBuilder {
	return q.Join("departments d ON d.id = " + alias + ".department_id").
		Join("colleges c ON c.id = d.college_id")
}

func newDepartmentChain() *models.Department {
	return &models.Department{College: &models.College{}}
}

func departmentChainDest(d *models.Department) []interface{} {
	return []interface{}{&d.ID, &d.Name, &d.Code, &d.College.ID, &d.College.Name, &d.College.Address}
}

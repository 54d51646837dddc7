package catalog

import "github.com/shopspring/decimal"

// Employee entrada del catálogo de empleados (인원마스터 por defecto).
type Employee struct {
	ID         string
	Name       string
	Department string
	Position   string
	BaseSalary decimal.Decimal
}

var employees = []Employee{
	{ID: "EMP-001", Name: "김철수", Department: "생산1팀", Position: "반장", BaseSalary: decimal.NewFromInt(3800000)},
	{ID: "EMP-002", Name: "이영희", Department: "생산1팀", Position: "사원", BaseSalary: decimal.NewFromInt(3100000)},
	{ID: "EMP-003", Name: "박민수", Department: "생산2팀", Position: "사원", BaseSalary: decimal.NewFromInt(3200000)},
	{ID: "EMP-004", Name: "정수진", Department: "품질팀", Position: "대리", BaseSalary: decimal.NewFromInt(3600000)},
	{ID: "EMP-005", Name: "한지민", Department: "생산2팀", Position: "반장", BaseSalary: decimal.NewFromInt(3900000)},
	{ID: "EMP-006", Name: "오세훈", Department: "출하팀", Position: "사원", BaseSalary: decimal.NewFromInt(3000000)},
}

// Employees devuelve el catálogo completo de empleados.
func Employees() []Employee {
	return employees
}

// EmployeesByDepartment filtra por departamento. Función total: un
// departamento desconocido devuelve el catálogo completo para que el
// generador siempre tenga trabajadores que asignar.
func EmployeesByDepartment(department string) []Employee {
	var out []Employee
	for _, e := range employees {
		if e.Department == department {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return employees
	}
	return out
}

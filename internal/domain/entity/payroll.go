package entity

import "github.com/shopspring/decimal"

// PayrollRecord nómina mensual de un empleado (급여). Registro ilustrativo
// referenciado por id de empleado del catálogo/인원마스터.
type PayrollRecord struct {
	EmployeeID string          `json:"employeeId"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Position   string          `json:"position"`
	Month      string          `json:"month"` // YYYY-MM
	BaseSalary decimal.Decimal `json:"baseSalary"`
	Overtime   decimal.Decimal `json:"overtime"`
	Deductions decimal.Decimal `json:"deductions"`
	NetPay     decimal.Decimal `json:"netPay"` // BaseSalary + Overtime − Deductions
}

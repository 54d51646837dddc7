// Package fixture carga el JSON semilla de la demo (DatcoDemoData2.json).
//
// El documento trae un mapa `sheets` con hojas de nombre coreano; los nombres
// de hoja y de campo son contrato: renombrarlos rompe a los consumidores.
// Política de degradación silenciosa: una hoja ausente o malformada se lee
// como slice vacío, nunca como error.
package fixture

import (
	"encoding/json"
	"os"
)

// Nombres exactos de hoja. Son parte del contrato con el documento semilla.
const (
	SheetEmployees   = "인원마스터"
	SheetSalesOrders = "수주"
	SheetCustomers   = "거래처마스터"
	SheetBOM         = "BOM"
	SheetWorkOrders  = "작업지시"
	SheetShipments   = "출하"
	SheetPermissions = "사용자권한"
)

// EmployeeRow fila de la hoja 인원마스터.
type EmployeeRow struct {
	EmployeeNo string `json:"사번"`
	Name       string `json:"성명"`
	Department string `json:"부서"`
	Position   string `json:"직급"`
	HireDate   string `json:"입사일"`
}

// SalesOrderRow fila de la hoja 수주.
type SalesOrderRow struct {
	OrderNo     string  `json:"수주번호"`
	CompanyName string  `json:"거래처명"`
	ProductCode string  `json:"품목코드"`
	ProductName string  `json:"품명"`
	Quantity    int     `json:"수량"`
	OrderDate   string  `json:"수주일"`
	DueDate     string  `json:"납기일"`
	Status      string  `json:"상태"`
	Amount      float64 `json:"금액"`
}

// CustomerRow fila de la hoja 거래처마스터.
type CustomerRow struct {
	Code           string `json:"거래처코드"`
	CompanyName    string `json:"거래처명"`
	Industry       string `json:"업종"`
	Representative string `json:"대표자"`
	Contact        string `json:"연락처"`
	OrderCount     int    `json:"수주건수"`
}

// BOMRow fila de la hoja BOM.
type BOMRow struct {
	ParentCode string  `json:"모품목"`
	ChildCode  string  `json:"자품목"`
	Quantity   float64 `json:"소요량"`
	Unit       string  `json:"단위"`
}

// WorkOrderRow fila de la hoja 작업지시.
type WorkOrderRow struct {
	WorkOrderNo string `json:"작업지시번호"`
	ProductCode string `json:"품목코드"`
	Quantity    int    `json:"수량"`
	WorkCenter  string `json:"작업장"`
	Worker      string `json:"작업자"`
	Status      string `json:"상태"`
}

// ShipmentRow fila de la hoja 출하.
type ShipmentRow struct {
	ShipmentNo  string `json:"출하번호"`
	OrderNo     string `json:"수주번호"`
	CompanyName string `json:"거래처명"`
	ShipDate    string `json:"출하일"`
	Status      string `json:"상태"`
}

// PermissionRow fila de la hoja 사용자권한.
type PermissionRow struct {
	UserID     string `json:"사용자ID"`
	Name       string `json:"이름"`
	Department string `json:"부서"`
	Role       string `json:"권한"`
}

type document struct {
	Sheets map[string]json.RawMessage `json:"sheets"`
}

// Fixture acceso tipado a las hojas del documento semilla.
type Fixture struct {
	sheets map[string]json.RawMessage
}

// Load lee y parsea el documento semilla desde disco.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parsea el documento semilla desde memoria.
func Parse(data []byte) (*Fixture, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Sheets == nil {
		doc.Sheets = map[string]json.RawMessage{}
	}
	return &Fixture{sheets: doc.Sheets}, nil
}

// Empty devuelve un fixture sin hojas (todas las lecturas dan slices vacíos).
func Empty() *Fixture {
	return &Fixture{sheets: map[string]json.RawMessage{}}
}

// sheet deserializa una hoja en out. Hoja ausente o malformada deja out
// intacto (slice vacío en los accessors): degradación silenciosa.
func (f *Fixture) sheet(name string, out any) {
	raw, ok := f.sheets[name]
	if !ok {
		return
	}
	_ = json.Unmarshal(raw, out)
}

// Employees devuelve las filas de 인원마스터 (vacío si no existe la hoja).
func (f *Fixture) Employees() []EmployeeRow {
	rows := []EmployeeRow{}
	f.sheet(SheetEmployees, &rows)
	return rows
}

// SalesOrders devuelve las filas de 수주 (vacío si no existe la hoja).
func (f *Fixture) SalesOrders() []SalesOrderRow {
	rows := []SalesOrderRow{}
	f.sheet(SheetSalesOrders, &rows)
	return rows
}

// Customers devuelve las filas de 거래처마스터 (vacío si no existe la hoja).
func (f *Fixture) Customers() []CustomerRow {
	rows := []CustomerRow{}
	f.sheet(SheetCustomers, &rows)
	return rows
}

// BOM devuelve las filas de la hoja BOM (vacío si no existe la hoja).
func (f *Fixture) BOM() []BOMRow {
	rows := []BOMRow{}
	f.sheet(SheetBOM, &rows)
	return rows
}

// WorkOrders devuelve las filas de 작업지시 (vacío si no existe la hoja).
func (f *Fixture) WorkOrders() []WorkOrderRow {
	rows := []WorkOrderRow{}
	f.sheet(SheetWorkOrders, &rows)
	return rows
}

// Shipments devuelve las filas de 출하 (vacío si no existe la hoja).
func (f *Fixture) Shipments() []ShipmentRow {
	rows := []ShipmentRow{}
	f.sheet(SheetShipments, &rows)
	return rows
}

// Permissions devuelve las filas de 사용자권한 (vacío si no existe la hoja).
func (f *Fixture) Permissions() []PermissionRow {
	rows := []PermissionRow{}
	f.sheet(SheetPermissions, &rows)
	return rows
}

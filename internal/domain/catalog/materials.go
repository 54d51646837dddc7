package catalog

import "github.com/shopspring/decimal"

// Material entrada del catálogo de materiales.
type Material struct {
	Code      string
	Name      string
	Unit      string
	UnitPrice decimal.Decimal
	Supplier  string
}

var materials = []Material{
	{Code: "MAT-001", Name: "SS400 강판", Unit: "kg", UnitPrice: decimal.NewFromInt(1800), Supplier: "포스코상사"},
	{Code: "MAT-002", Name: "AL6061 환봉", Unit: "kg", UnitPrice: decimal.NewFromInt(4200), Supplier: "동양알미늄"},
	{Code: "MAT-003", Name: "베어링 강구", Unit: "ea", UnitPrice: decimal.NewFromInt(350), Supplier: "한국베어링"},
	{Code: "MAT-004", Name: "유압 씰 키트", Unit: "set", UnitPrice: decimal.NewFromInt(12000), Supplier: "세일유압"},
	{Code: "MAT-005", Name: "방청유", Unit: "L", UnitPrice: decimal.NewFromInt(6500), Supplier: "그린케미칼"},
	{Code: "MAT-006", Name: "용접봉", Unit: "kg", UnitPrice: decimal.NewFromInt(5800), Supplier: "현대용접재료"},
}

// Materials devuelve el catálogo completo de materiales.
func Materials() []Material {
	return materials
}

// WorkCenter centro de trabajo de planta.
type WorkCenter struct {
	Code string
	Name string
}

var workCenters = []WorkCenter{
	{Code: "WC-01", Name: "CNC 가공"},
	{Code: "WC-02", Name: "프레스"},
	{Code: "WC-03", Name: "용접"},
	{Code: "WC-04", Name: "조립"},
	{Code: "WC-05", Name: "검사"},
}

// WorkCenters devuelve los centros de trabajo de la planta demo.
func WorkCenters() []WorkCenter {
	return workCenters
}

// Warehouses almacenes de la planta demo.
func Warehouses() []string {
	return []string{"원자재창고", "부품창고", "완제품창고"}
}

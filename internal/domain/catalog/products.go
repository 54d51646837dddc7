// Package catalog contiene las tablas de referencia estáticas que siembran la
// generación: productos por industria, empleados, materiales, centros de
// trabajo y clientes por defecto. Solo lectura, sin efectos; las funciones
// keyed son totales (clave desconocida -> catálogo por defecto).
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/datco/erp-demo-api/internal/domain/entity"
)

// Product entrada del catálogo de productos (precio base en KRW).
type Product struct {
	Code      string
	Name      string
	BasePrice decimal.Decimal
}

// DefaultIndustry industria de respaldo para claves desconocidas.
const DefaultIndustry = "제조업"

var productsByIndustry = map[string][]Product{
	"제조업": {
		{Code: "PRD-M001", Name: "정밀 기어박스", BasePrice: decimal.NewFromInt(850000)},
		{Code: "PRD-M002", Name: "유압 실린더", BasePrice: decimal.NewFromInt(420000)},
		{Code: "PRD-M003", Name: "산업용 베어링", BasePrice: decimal.NewFromInt(95000)},
		{Code: "PRD-M004", Name: "알루미늄 프레임", BasePrice: decimal.NewFromInt(180000)},
		{Code: "PRD-M005", Name: "스테인리스 배관", BasePrice: decimal.NewFromInt(65000)},
	},
	"전자": {
		{Code: "PRD-E001", Name: "PCB 어셈블리", BasePrice: decimal.NewFromInt(120000)},
		{Code: "PRD-E002", Name: "전원 모듈", BasePrice: decimal.NewFromInt(230000)},
		{Code: "PRD-E003", Name: "센서 유닛", BasePrice: decimal.NewFromInt(78000)},
		{Code: "PRD-E004", Name: "디스플레이 패널", BasePrice: decimal.NewFromInt(450000)},
	},
	"자동차": {
		{Code: "PRD-A001", Name: "브레이크 디스크", BasePrice: decimal.NewFromInt(145000)},
		{Code: "PRD-A002", Name: "서스펜션 암", BasePrice: decimal.NewFromInt(280000)},
		{Code: "PRD-A003", Name: "라디에이터", BasePrice: decimal.NewFromInt(320000)},
		{Code: "PRD-A004", Name: "배기 매니폴드", BasePrice: decimal.NewFromInt(390000)},
	},
	"화학": {
		{Code: "PRD-C001", Name: "산업용 접착제", BasePrice: decimal.NewFromInt(45000)},
		{Code: "PRD-C002", Name: "방청 코팅제", BasePrice: decimal.NewFromInt(88000)},
		{Code: "PRD-C003", Name: "세정 용제", BasePrice: decimal.NewFromInt(32000)},
	},
	"식품": {
		{Code: "PRD-F001", Name: "포장 파우치", BasePrice: decimal.NewFromInt(1200)},
		{Code: "PRD-F002", Name: "보존 용기", BasePrice: decimal.NewFromInt(3500)},
		{Code: "PRD-F003", Name: "밀봉 필름", BasePrice: decimal.NewFromInt(850)},
	},
}

// ProductsByIndustry devuelve el catálogo de la industria indicada.
// Función total: una clave desconocida (o vacía) cae al catálogo 제조업;
// nunca devuelve nil ni vacío.
func ProductsByIndustry(industry string) []Product {
	if products, ok := productsByIndustry[industry]; ok {
		return products
	}
	return productsByIndustry[DefaultIndustry]
}

// Industries devuelve las industrias con catálogo propio.
func Industries() []string {
	return []string{"제조업", "전자", "자동차", "화학", "식품"}
}

// DefaultCustomers clientes por defecto cuando el fixture no trae hoja
// 거래처마스터.
func DefaultCustomers() []entity.Customer {
	return []entity.Customer{
		{ID: "CUST-001", CompanyName: "대성정밀", Industry: "제조업", Representative: "김대성", Contact: "02-555-0101", TotalOrders: 5},
		{ID: "CUST-002", CompanyName: "한빛전자", Industry: "전자", Representative: "이한빛", Contact: "031-777-0202", TotalOrders: 4},
		{ID: "CUST-003", CompanyName: "서울모터스", Industry: "자동차", Representative: "박서준", Contact: "02-333-0303", TotalOrders: 5},
		{ID: "CUST-004", CompanyName: "그린케미칼", Industry: "화학", Representative: "최은영", Contact: "042-444-0404", TotalOrders: 3},
		{ID: "CUST-005", CompanyName: "미래식품", Industry: "식품", Representative: "정미래", Contact: "051-222-0505", TotalOrders: 4},
	}
}

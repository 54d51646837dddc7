package timeline

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Tamaños de los rankings del reporte de período.
const (
	topCompanies = 5
	topProducts  = 10
)

// CompanyRanking posición de una empresa en el ranking del período.
type CompanyRanking struct {
	CompanyName string          `json:"companyName"`
	TotalOrders int             `json:"totalOrders"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// ProductRanking posición de un producto en el ranking cruzado de empresas.
type ProductRanking struct {
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	TotalOrders int             `json:"totalOrders"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// PeriodStatistics agregados del período: top-5 clientes y proveedores por
// valor total y top-10 de productos entre todas las empresas.
type PeriodStatistics struct {
	Range          DateRange        `json:"range"`
	TotalCompanies int              `json:"totalCompanies"`
	TopCustomers   []CompanyRanking `json:"topCustomers"`
	TopSuppliers   []CompanyRanking `json:"topSuppliers"`
	TopProducts    []ProductRanking `json:"topProducts"`
}

// GeneratePeriodStatistics agrega los timelines de empresa en los rankings
// del período. Desempate documentado: a igual monto total ordena por nombre
// bajo colación coreana y después por código; no se depende del orden de
// entrada.
func GeneratePeriodStatistics(timelines []CompanyTimeline, r DateRange) PeriodStatistics {
	collator := collate.New(language.Korean)

	var customers, suppliers []CompanyRanking
	productIdx := map[string]int{}
	products := []ProductRanking{}

	for _, ct := range timelines {
		ranking := CompanyRanking{
			CompanyName: ct.CompanyName,
			TotalOrders: ct.TotalOrders,
			TotalAmount: ct.TotalAmount,
		}
		if ct.CompanyType == CompanyTypeSupplier {
			suppliers = append(suppliers, ranking)
		} else {
			customers = append(customers, ranking)
		}

		for _, pt := range ct.Products {
			i, ok := productIdx[pt.ProductCode]
			if !ok {
				i = len(products)
				productIdx[pt.ProductCode] = i
				products = append(products, ProductRanking{
					ProductCode: pt.ProductCode,
					ProductName: pt.ProductName,
					TotalAmount: decimal.Zero,
				})
			}
			products[i].TotalOrders += pt.TotalOrders
			products[i].TotalAmount = products[i].TotalAmount.Add(pt.TotalAmount)
		}
	}

	sortCompanies(customers, collator)
	sortCompanies(suppliers, collator)
	sort.SliceStable(products, func(i, j int) bool {
		if !products[i].TotalAmount.Equal(products[j].TotalAmount) {
			return products[i].TotalAmount.GreaterThan(products[j].TotalAmount)
		}
		if c := collator.CompareString(products[i].ProductName, products[j].ProductName); c != 0 {
			return c < 0
		}
		return products[i].ProductCode < products[j].ProductCode
	})

	return PeriodStatistics{
		Range:          r,
		TotalCompanies: len(timelines),
		TopCustomers:   truncateCompanies(customers, topCompanies),
		TopSuppliers:   truncateCompanies(suppliers, topCompanies),
		TopProducts:    truncateProducts(products, topProducts),
	}
}

func sortCompanies(rankings []CompanyRanking, collator *collate.Collator) {
	sort.SliceStable(rankings, func(i, j int) bool {
		if !rankings[i].TotalAmount.Equal(rankings[j].TotalAmount) {
			return rankings[i].TotalAmount.GreaterThan(rankings[j].TotalAmount)
		}
		return collator.CompareString(rankings[i].CompanyName, rankings[j].CompanyName) < 0
	})
}

func truncateCompanies(rankings []CompanyRanking, n int) []CompanyRanking {
	if rankings == nil {
		return []CompanyRanking{}
	}
	if len(rankings) > n {
		return rankings[:n]
	}
	return rankings
}

func truncateProducts(rankings []ProductRanking, n int) []ProductRanking {
	if rankings == nil {
		return []ProductRanking{}
	}
	if len(rankings) > n {
		return rankings[:n]
	}
	return rankings
}

package kpi

import (
	"sort"

	"github.com/shopspring/decimal"

	"ecommerce-analytics/internal/domain"
)

type productKey struct {
	name     string
	category string
}

type productAcc struct {
	sales  domain.ProductSales
	orders map[string]struct{}
}

// TopProducts returns the n best selling products by revenue. A non-positive n
// returns every product. Lines without a product name fall back to the product id.
func TopProducts(transactions []domain.Transaction, n int) []domain.ProductSales {
	byProduct := make(map[productKey]*productAcc)
	for _, tx := range transactions {
		name := tx.ProductName
		if name == "" {
			name = tx.ProductID
		}
		if name == "" {
			continue
		}
		key := productKey{name: name, category: tx.Category}
		acc, ok := byProduct[key]
		if !ok {
			acc = &productAcc{
				sales:  domain.ProductSales{ProductName: name, Category: tx.Category, Revenue: decimal.Zero},
				orders: make(map[string]struct{}),
			}
			byProduct[key] = acc
		}
		acc.sales.Quantity += tx.Quantity
		acc.sales.Revenue = acc.sales.Revenue.Add(tx.Amount)
		acc.orders[tx.OrderID] = struct{}{}
	}

	products := make([]domain.ProductSales, 0, len(byProduct))
	for _, acc := range byProduct {
		acc.sales.Orders = len(acc.orders)
		products = append(products, acc.sales)
	}
	sort.Slice(products, func(i, j int) bool {
		if c := products[i].Revenue.Cmp(products[j].Revenue); c != 0 {
			return c > 0
		}
		if products[i].ProductName != products[j].ProductName {
			return products[i].ProductName < products[j].ProductName
		}
		return products[i].Category < products[j].Category
	})
	if n > 0 && len(products) > n {
		products = products[:n]
	}
	return products
}

// RevenueByCategory sums revenue per category, highest first. Rows without a
// category are grouped under an empty name.
func RevenueByCategory(transactions []domain.Transaction) []domain.CategorySales {
	sales := make(map[string]decimal.Decimal)
	orders := make(map[string]map[string]struct{})
	for _, tx := range transactions {
		sum, ok := sales[tx.Category]
		if !ok {
			sum = decimal.Zero
			orders[tx.Category] = make(map[string]struct{})
		}
		sales[tx.Category] = sum.Add(tx.Amount)
		orders[tx.Category][tx.OrderID] = struct{}{}
	}

	categories := make([]domain.CategorySales, 0, len(sales))
	for category, revenue := range sales {
		n := len(orders[category])
		categories = append(categories, domain.CategorySales{
			Category:     category,
			Revenue:      revenue,
			Orders:       n,
			AverageOrder: divide(revenue, n),
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		if c := categories[i].Revenue.Cmp(categories[j].Revenue); c != 0 {
			return c > 0
		}
		return categories[i].Category < categories[j].Category
	})
	return categories
}

// Package receipt turns an order (or an in-progress cart) into an itemized,
// tax- and discount-correct receipt view model and renders it for the
// configured print targets.
package receipt

import (
	"sort"

	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/pkg/money"
)

// Line is one input line for allocation. For a paid order, Discount carries
// the persisted per-item amount; cart lines have no persisted discount and
// receive a proportional share of the order-level discount instead.
type Line struct {
	Name      string
	SKU       string
	Quantity  int
	UnitPrice int64
	Discount  int64
	TaxRate   float64
}

// Params controls one allocation pass.
type Params struct {
	Lines []Line
	// OrderDiscount is distributed across lines when PersistedDiscounts is
	// false. Ignored otherwise.
	OrderDiscount int64
	// PersistedDiscounts is true for completed orders: each line's own
	// Discount is authoritative and no proportional allocation happens.
	PersistedDiscounts bool
	// PriceIncludeTax selects the inclusive-tax base computation.
	PriceIncludeTax bool
}

// Allocation is the computed breakdown for a set of lines. Iteration order
// of Items matches the input order.
type Allocation struct {
	Items         []entity.ReceiptItem
	SubTotal      int64
	DiscountTotal int64
	TaxTotal      int64
	Groups        []entity.TaxGroup
}

// Allocate distributes the order-level discount across lines proportionally
// to each line's pre-discount subtotal and computes per-line and per-rate
// tax. The last line receives the remainder of the discount rather than its
// own proportional share, so the allocated shares always sum to the order
// discount exactly.
func Allocate(p Params) Allocation {
	items := make([]entity.ReceiptItem, 0, len(p.Lines))

	var subTotal int64
	subs := make([]int64, len(p.Lines))
	for i, l := range p.Lines {
		qty := l.Quantity
		if qty < 0 {
			qty = 0
		}
		subs[i] = l.UnitPrice * int64(qty)
		subTotal += subs[i]
	}

	discounts := make([]int64, len(p.Lines))
	switch {
	case p.PersistedDiscounts:
		for i, l := range p.Lines {
			discounts[i] = l.Discount
		}
	case p.OrderDiscount > 0 && subTotal > 0:
		var allocated int64
		for i := range p.Lines {
			if i == len(p.Lines)-1 {
				// remainder rule: no rounding drift across the order
				discounts[i] = p.OrderDiscount - allocated
				break
			}
			share := roundedShare(p.OrderDiscount, subs[i], subTotal)
			discounts[i] = share
			allocated += share
		}
	}

	var discountTotal, taxTotal int64
	groupIdx := make(map[float64]int)
	groups := make([]entity.TaxGroup, 0, 4)

	for i, l := range p.Lines {
		// Quantity 0 contributes nothing; the per-unit discount would
		// otherwise divide by zero.
		base := subs[i] - discounts[i]
		if l.Quantity <= 0 {
			base = 0
		}
		if base < 0 {
			base = 0
		}

		var tax int64
		if p.PriceIncludeTax {
			// Price already carries tax; extract it from the base.
			tax = base - money.RoundHalfUp(float64(base)/(1+l.TaxRate/100))
		} else {
			tax = money.RoundHalfUp(float64(base) * l.TaxRate / 100)
		}

		items = append(items, entity.ReceiptItem{
			Name:      l.Name,
			SKU:       l.SKU,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Discount:  discounts[i],
			TaxRate:   l.TaxRate,
			Tax:       tax,
			Amount:    base,
		})

		discountTotal += discounts[i]
		taxTotal += tax

		idx, ok := groupIdx[l.TaxRate]
		if !ok {
			groups = append(groups, entity.TaxGroup{Rate: l.TaxRate})
			idx = len(groups) - 1
			groupIdx[l.TaxRate] = idx
		}
		groups[idx].Base += base
		groups[idx].Amount += tax
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Rate > groups[b].Rate
	})

	return Allocation{
		Items:         items,
		SubTotal:      subTotal,
		DiscountTotal: discountTotal,
		TaxTotal:      taxTotal,
		Groups:        groups,
	}
}

// roundedShare computes round(discount * sub / total) in integer arithmetic,
// halves up, avoiding float drift on large amounts.
func roundedShare(discount, sub, total int64) int64 {
	return (discount*sub + total/2) / total
}

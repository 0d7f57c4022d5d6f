package receipt

import "testing"

func TestAllocateProportionalShares(t *testing.T) {
	alloc := Allocate(Params{
		Lines: []Line{
			{Name: "Pho bo", Quantity: 2, UnitPrice: 50000, TaxRate: 8},
			{Name: "Com ga", Quantity: 1, UnitPrice: 30000, TaxRate: 8},
		},
		OrderDiscount: 10000,
	})

	if got := alloc.Items[0].Discount; got != 7692 {
		t.Errorf("first line discount = %d, want 7692", got)
	}
	if got := alloc.Items[1].Discount; got != 2308 {
		t.Errorf("last line discount = %d, want 2308", got)
	}
	if alloc.DiscountTotal != 10000 {
		t.Errorf("discount total = %d, want 10000", alloc.DiscountTotal)
	}
	if alloc.SubTotal != 130000 {
		t.Errorf("subtotal = %d, want 130000", alloc.SubTotal)
	}
}

func TestAllocateRemainderSumsExactly(t *testing.T) {
	// Awkward proportions that would drift if every line rounded
	// independently.
	lines := []Line{
		{Name: "a", Quantity: 3, UnitPrice: 33333, TaxRate: 10},
		{Name: "b", Quantity: 1, UnitPrice: 77777, TaxRate: 10},
		{Name: "c", Quantity: 7, UnitPrice: 11111, TaxRate: 5},
		{Name: "d", Quantity: 2, UnitPrice: 49999, TaxRate: 0},
	}
	for _, discount := range []int64{1, 999, 12345, 100001} {
		alloc := Allocate(Params{Lines: lines, OrderDiscount: discount})
		var sum int64
		for _, it := range alloc.Items {
			sum += it.Discount
		}
		if sum != discount {
			t.Errorf("discount %d: shares sum to %d", discount, sum)
		}
	}
}

func TestAllocatePersistedDiscounts(t *testing.T) {
	alloc := Allocate(Params{
		Lines: []Line{
			{Name: "a", Quantity: 1, UnitPrice: 100000, Discount: 4000, TaxRate: 10},
			{Name: "b", Quantity: 1, UnitPrice: 50000, Discount: 1000, TaxRate: 10},
		},
		OrderDiscount:      99999,
		PersistedDiscounts: true,
	})

	if alloc.Items[0].Discount != 4000 || alloc.Items[1].Discount != 1000 {
		t.Errorf("persisted discounts not preserved: %d, %d",
			alloc.Items[0].Discount, alloc.Items[1].Discount)
	}
	if alloc.DiscountTotal != 5000 {
		t.Errorf("discount total = %d, want 5000", alloc.DiscountTotal)
	}
}

func TestAllocateZeroQuantityLine(t *testing.T) {
	alloc := Allocate(Params{
		Lines: []Line{
			{Name: "void", Quantity: 0, UnitPrice: 50000, TaxRate: 10},
			{Name: "kept", Quantity: 1, UnitPrice: 50000, TaxRate: 10},
		},
		OrderDiscount: 5000,
	})

	if alloc.Items[0].Amount != 0 || alloc.Items[0].Tax != 0 {
		t.Errorf("zero-quantity line got amount %d tax %d, want 0 0",
			alloc.Items[0].Amount, alloc.Items[0].Tax)
	}
	if alloc.Items[1].Amount != 45000 {
		t.Errorf("kept line amount = %d, want 45000", alloc.Items[1].Amount)
	}
}

func TestAllocateExclusiveTax(t *testing.T) {
	alloc := Allocate(Params{
		Lines: []Line{
			{Name: "a", Quantity: 1, UnitPrice: 100000, TaxRate: 8},
		},
	})
	if alloc.TaxTotal != 8000 {
		t.Errorf("exclusive tax = %d, want 8000", alloc.TaxTotal)
	}
	if alloc.Items[0].Amount != 100000 {
		t.Errorf("base = %d, want 100000", alloc.Items[0].Amount)
	}
}

func TestAllocateInclusiveTax(t *testing.T) {
	alloc := Allocate(Params{
		Lines: []Line{
			{Name: "a", Quantity: 1, UnitPrice: 108000, TaxRate: 8},
		},
		PriceIncludeTax: true,
	})
	// 108000 - round(108000 / 1.08) = 108000 - 100000
	if alloc.TaxTotal != 8000 {
		t.Errorf("inclusive tax = %d, want 8000", alloc.TaxTotal)
	}
	// Inclusive lines keep the gross as the amount.
	if alloc.Items[0].Amount != 108000 {
		t.Errorf("gross = %d, want 108000", alloc.Items[0].Amount)
	}
}

func TestAllocateGroupsSortedByRateDesc(t *testing.T) {
	alloc := Allocate(Params{
		Lines: []Line{
			{Name: "a", Quantity: 1, UnitPrice: 10000, TaxRate: 0},
			{Name: "b", Quantity: 1, UnitPrice: 10000, TaxRate: 10},
			{Name: "c", Quantity: 1, UnitPrice: 10000, TaxRate: 5},
			{Name: "d", Quantity: 1, UnitPrice: 10000, TaxRate: 10},
		},
	})

	if len(alloc.Groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(alloc.Groups))
	}
	rates := []float64{alloc.Groups[0].Rate, alloc.Groups[1].Rate, alloc.Groups[2].Rate}
	if rates[0] != 10 || rates[1] != 5 || rates[2] != 0 {
		t.Errorf("group rates = %v, want [10 5 0]", rates)
	}
	if alloc.Groups[0].Base != 20000 {
		t.Errorf("10%% group base = %d, want 20000", alloc.Groups[0].Base)
	}
}

func TestAllocateDiscountExceedingLine(t *testing.T) {
	alloc := Allocate(Params{
		Lines: []Line{
			{Name: "a", Quantity: 1, UnitPrice: 1000, Discount: 5000, TaxRate: 10},
		},
		PersistedDiscounts: true,
	})
	if alloc.Items[0].Amount != 0 {
		t.Errorf("over-discounted line amount = %d, want 0", alloc.Items[0].Amount)
	}
	if alloc.Items[0].Tax != 0 {
		t.Errorf("over-discounted line tax = %d, want 0", alloc.Items[0].Tax)
	}
}

package money

import "math"

// Round2: zaokruživanje na 2 decimale (pola naviše na granici centa).
// Jedino mjesto u sustavu gdje se novac zaokružuje, da ne dođe do
// centa razlike između neovisno izračunatih iznosa.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// LineTotals: izračunate vrijednosti jedne stavke
type LineTotals struct {
	Subtotal       float64 // količina * cijena
	DiscountAmount float64
	TaxAmount      float64
	Total          float64
}

// ComputeLine: rabat se uvijek primjenjuje prije PDV-a, svaki međukorak se zaokružuje
func ComputeLine(quantity, unitPrice, discountPercent, taxPercent float64) LineTotals {
	subtotal := Round2(quantity * unitPrice)
	discount := Round2(subtotal * discountPercent / 100)
	afterDiscount := Round2(subtotal - discount)
	tax := Round2(afterDiscount * taxPercent / 100)
	total := Round2(afterDiscount + tax)

	return LineTotals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		Total:          total,
	}
}

// Line: ulaz za zbrajanje dokumenata, polja odgovaraju stavci dokumenta
type Line struct {
	Quantity        float64
	UnitPrice       float64
	DiscountPercent float64
	TaxPercent      float64
}

// DocumentTotals: ukupni iznosi dokumenta
type DocumentTotals struct {
	Subtotal   float64
	Discount   float64
	Tax        float64
	GrandTotal float64
}

// Aggregate: zbrajaju se već zaokružene vrijednosti pojedinih stavki, a ne
// zaokružuje se zbroj. Tako se ukupni iznos uvijek slaže sa stavkama u
// ispisanoj tablici, uz moguće odstupanje od ±0,01 prema izračunu
// "zaokruži jednom" — to je namjerna odluka, ne greška.
func Aggregate(lines []Line) DocumentTotals {
	var totals DocumentTotals
	for _, l := range lines {
		lt := ComputeLine(l.Quantity, l.UnitPrice, l.DiscountPercent, l.TaxPercent)
		totals.Subtotal += lt.Subtotal
		totals.Discount += lt.DiscountAmount
		totals.Tax += lt.TaxAmount
		totals.GrandTotal += lt.Total
	}
	totals.Subtotal = Round2(totals.Subtotal)
	totals.Discount = Round2(totals.Discount)
	totals.Tax = Round2(totals.Tax)
	totals.GrandTotal = Round2(totals.GrandTotal)
	return totals
}

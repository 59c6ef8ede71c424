package placeholder

import (
	"fmt"

	"stolarija-backend/internal/models"
	"stolarija-backend/internal/money"
)

// AdvancePolicy: politika zadanog avansa kad korisnik nije unio iznos.
// Dva ulazna toka imaju različite zadane vrijednosti i to se namjerno
// ne ujednačava dok vlasnici proizvoda ne potvrde željeno ponašanje.
type AdvancePolicy int

const (
	// AdvanceDefault30 — pregled ugovora: zadani avans je 30% ukupnog iznosa
	AdvanceDefault30 AdvancePolicy = iota
	// AdvanceDefaultZero — editor ugovora: sirova korisnička vrijednost, zadano 0
	AdvanceDefaultZero
)

// ResolveAdvance: izračunava avans i ostatak prema politici ulaznog toka
func ResolveAdvance(total float64, userAdvance *float64, policy AdvancePolicy) (advance, remaining float64) {
	switch {
	case userAdvance != nil:
		advance = money.Round2(*userAdvance)
	case policy == AdvanceDefault30:
		advance = money.Round2(total * 0.30)
	default:
		advance = 0
	}
	remaining = money.Round2(total - advance)
	return advance, remaining
}

// TokenValues: standardni skup tokena za ugovore i HTML predloške
func TokenValues(doc *models.Document, settings *models.CompanySettings, policy AdvancePolicy) map[string]string {
	advance, remaining := ResolveAdvance(doc.TotalAmount, doc.AdvanceAmount, policy)

	return map[string]string{
		"ukupna_cijena": money.FormatEUR(doc.TotalAmount),
		"avans":         money.FormatEUR(advance),
		"ostatak":       money.FormatEUR(remaining),

		"kupac_ime":    doc.BuyerName,
		"kupac_adresa": doc.BuyerAddress,
		"kupac_oib":    doc.BuyerOIB,

		"prodavatelj_ime":    settings.Name,
		"prodavatelj_adresa": settings.Address,
		"prodavatelj_oib":    settings.OIB,
		"prodavatelj_iban":   settings.IBAN,

		"jamstvo":        fmt.Sprintf("%d", doc.WarrantyMonths),
		"broj_dokumenta": fmt.Sprintf("%d/%d", doc.Number, doc.Date.Year()),
		"datum":          doc.Date.Format("02.01.2006."),
		"mjesto":         doc.Place,
	}
}

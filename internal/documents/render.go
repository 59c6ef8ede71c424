package documents

import (
	"fmt"

	"stolarija-backend/internal/models"
	"stolarija-backend/internal/money"
	"stolarija-backend/internal/placeholder"
	"stolarija-backend/internal/sanitize"
)

// Naslovi dokumenata na ispisu
var typeTitles = map[models.DocumentType]string{
	models.DocPonuda:      "PONUDA",
	models.DocRacun:       "RAČUN",
	models.DocOtpremnica:  "OTPREMNICA",
	models.DocRadniNalog:  "RADNI NALOG",
	models.DocUgovor:      "UGOVOR O IZRADI I MONTAŽI",
	models.DocReklamacija: "REKLAMACIJSKI ZAPISNIK",
}

// SignatureVariant: oblik bloka potpisa, ovisi o tipu dokumenta
type SignatureVariant string

const (
	// SignaturePreparer — ponuda/račun: potpis izrađivača + pečat tvrtke
	SignaturePreparer SignatureVariant = "preparer"
	// SignatureTwoParty — otpremnica/radni nalog: preuzeo/predao + skladištar
	SignatureTwoParty SignatureVariant = "two_party"
	// SignatureContract — ugovor: dvije kolone prodavatelj/kupac
	SignatureContract SignatureVariant = "contract"
)

type CompanyBlock struct {
	Name     string
	Address  string
	OIB      string
	IBAN     string
	Bank     string
	Phone    string
	Email    string
	Director string
	CourtReg string
}

type PartyBlock struct {
	Name     string
	Address  string
	OIB      string
	Phone    string
	Email    string
	Contact  string
	Delivery string
}

type RenderItem struct {
	Ordinal         int
	Name            string
	Code            string
	Unit            string
	Quantity        float64
	UnitPrice       float64
	DiscountPercent float64
	TaxPercent      float64
	Subtotal        float64
	Total           float64
}

type TotalsBlock struct {
	Subtotal         float64
	Discount         float64
	Tax              float64
	GrandTotal       float64
	ShowTaxBreakdown bool
}

type RenderedArticle struct {
	Number int
	Title  string
	Body   string // nakon zamjene tokena i sanitizacije
}

type ContractSection struct {
	Articles  []RenderedArticle
	Advance   float64
	Remaining float64
}

// RenderModel: neutralan opis ispisa, ulaz za PDF adapter i ekranski pregled
type RenderModel struct {
	Title         string
	DisplayNumber string
	Date          string
	Place         string

	Company CompanyBlock
	Buyer   PartyBlock

	ShowPrices         bool
	ShowDiscountColumn bool
	ShowItemCodes      bool
	Items              []RenderItem
	Totals             *TotalsBlock

	Notes     string
	ShowNotes bool

	Signature      SignatureVariant
	PreparedBy     string
	WarehouseClerk string

	// Samo za ugovore
	Contract *ContractSection

	// Sanitizirani SVG memoranduma iz postavki tvrtke, prazno ako nije
	// postavljen. Ispisni sloj ga crta preko zaglavlja odnosno podnožja.
	HeaderSVG string
	FooterSVG string

	FooterLines [2]string
}

// DisplayNumber: broj dokumenta kako se prikazuje i ispisuje, npr. "12/2026"
func DisplayNumber(doc *models.Document) string {
	return fmt.Sprintf("%d/%d", doc.Number, doc.Date.Year())
}

// PDFFileName: ime datoteke za preuzimanje, npr. "ponuda-12-2026.pdf"
func PDFFileName(doc *models.Document) string {
	return fmt.Sprintf("%s-%d-%d.pdf", doc.Type, doc.Number, doc.Date.Year())
}

func signatureFor(t models.DocumentType) SignatureVariant {
	switch t {
	case models.DocUgovor:
		return SignatureContract
	case models.DocOtpremnica, models.DocRadniNalog:
		return SignatureTwoParty
	default:
		return SignaturePreparer
	}
}

// BuildRenderModel: sastavlja opis ispisa za dokument. Ugovor se grana na
// vlastiti oblik (numerirani članci umjesto tablice stavki), ostali tipovi
// dijele generički tablični oblik s uvjetnim sekcijama.
// Pozivatelj je dužan proslijediti potpune podatke; dohvat i obrada grešaka
// rješavaju se prije poziva.
func BuildRenderModel(doc *models.Document, settings *models.CompanySettings, tmpl *models.DocumentTemplate, policy placeholder.AdvancePolicy) *RenderModel {
	showDiscount := true
	showTax := true
	showCodes := false
	showNotes := true
	if tmpl != nil {
		showDiscount = tmpl.ShowDiscountColumn
		showTax = tmpl.ShowTaxBreakdown
		showCodes = tmpl.ShowItemCodes
		showNotes = tmpl.ShowNotes
	}

	m := &RenderModel{
		Title:         typeTitles[doc.Type],
		DisplayNumber: DisplayNumber(doc),
		Date:          doc.Date.Format("02.01.2006."),
		Place:         doc.Place,
		Company: CompanyBlock{
			Name:     settings.Name,
			Address:  joinAddress(settings.Address, settings.PostalCode, settings.City),
			OIB:      settings.OIB,
			IBAN:     settings.IBAN,
			Bank:     settings.BankName,
			Phone:    settings.Phone,
			Email:    settings.Email,
			Director: settings.Director,
			CourtReg: settings.CourtReg,
		},
		Buyer: PartyBlock{
			Name:     doc.BuyerName,
			Address:  doc.BuyerAddress,
			OIB:      doc.BuyerOIB,
			Phone:    doc.BuyerPhone,
			Email:    doc.BuyerEmail,
			Contact:  doc.BuyerContact,
			Delivery: doc.DeliveryAddress,
		},
		ShowPrices:         doc.Type.HasPrices(),
		ShowDiscountColumn: showDiscount,
		ShowItemCodes:      showCodes,
		Notes:              doc.Notes,
		ShowNotes:          showNotes && doc.Notes != "",
		Signature:          signatureFor(doc.Type),
		PreparedBy:         doc.PreparedBy,
		HeaderSVG:          settings.HeaderSVG,
		FooterSVG:          settings.FooterSVG,
		FooterLines: [2]string{
			fmt.Sprintf("%s | OIB: %s | IBAN: %s", settings.Name, settings.OIB, settings.IBAN),
			fmt.Sprintf("%s | Tel: %s | %s", joinAddress(settings.Address, settings.PostalCode, settings.City), settings.Phone, settings.Email),
		},
	}

	// Otpremnica i radni nalog nose redak "Robu izdao", ime dolazi iz
	// istog polja kao i "izradio" na cjenovnim dokumentima
	if m.Signature == SignatureTwoParty {
		m.WarehouseClerk = doc.PreparedBy
	}

	lines := make([]money.Line, 0, len(doc.Items))
	for i, it := range doc.Items {
		m.Items = append(m.Items, RenderItem{
			Ordinal:         i + 1,
			Name:            it.Name,
			Code:            it.Code,
			Unit:            it.Unit,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			TaxPercent:      it.TaxPercent,
			Subtotal:        it.Subtotal,
			Total:           it.Total,
		})
		lines = append(lines, money.Line{
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			TaxPercent:      it.TaxPercent,
		})
	}

	if m.ShowPrices {
		totals := money.Aggregate(lines)
		m.Totals = &TotalsBlock{
			Subtotal:         totals.Subtotal,
			Discount:         totals.Discount,
			Tax:              totals.Tax,
			GrandTotal:       doc.TotalAmount,
			ShowTaxBreakdown: showTax,
		}
	}

	if doc.Type == models.DocUgovor {
		m.Contract = buildContractSection(doc, settings, policy)
	}

	return m
}

// buildContractSection: članci se filtriraju po selected zastavici, tokeni
// se zamjenjuju izračunatim vrijednostima, nepoznati tokeni ostaju vidljiva
// crta za ručni upis. HTML iz rich-text editora prolazi kroz sanitizaciju.
func buildContractSection(doc *models.Document, settings *models.CompanySettings, policy placeholder.AdvancePolicy) *ContractSection {
	values := placeholder.TokenValues(doc, settings, policy)
	advance, remaining := placeholder.ResolveAdvance(doc.TotalAmount, doc.AdvanceAmount, policy)

	section := &ContractSection{Advance: advance, Remaining: remaining}
	n := 0
	for _, a := range doc.Articles {
		if !a.Selected {
			continue
		}
		n++
		body := placeholder.Substitute(a.Body, values, placeholder.StyleSingleBrace, placeholder.FallbackBlankLine)
		section.Articles = append(section.Articles, RenderedArticle{
			Number: n,
			Title:  a.Title,
			Body:   sanitize.HTML(body),
		})
	}
	return section
}

func joinAddress(street, postal, city string) string {
	out := street
	if postal != "" || city != "" {
		if out != "" {
			out += ", "
		}
		out += postal
		if postal != "" && city != "" {
			out += " "
		}
		out += city
	}
	return out
}

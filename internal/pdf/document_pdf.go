package pdf

import (
	"bytes"
	"fmt"

	"stolarija-backend/internal/documents"
	"stolarija-backend/internal/models"
	"stolarija-backend/internal/money"

	"github.com/jung-kurt/gofpdf"
)

// GenerateDocumentPDF: tablični PDF za sve tipove dokumenata.
// Ugovor se grana na vlastiti oblik s numeriranim člancima, ostali tipovi
// dijele generičku tabličnu shemu iz render modela.
func GenerateDocumentPDF(m *documents.RenderModel, settings *models.CompanySettings) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250") // hrvatski dijakritici

	pdf.SetMargins(15, settings.HeaderPaddingMM, 15)
	pdf.SetAutoPageBreak(true, settings.FooterPaddingMM+18)

	// Fiksno dvoredno podnožje na svakoj stranici
	pdf.SetFooterFunc(func() {
		if m.FooterSVG != "" {
			pdf.SetXY(15, -15-settings.FooterPaddingMM)
			drawLetterheadSVG(pdf, m.FooterSVG)
		}
		pdf.SetY(-15 - settings.FooterPaddingMM)
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 4, tr(m.FooterLines[0]), "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 4, tr(m.FooterLines[1]), "", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()

	if m.HeaderSVG != "" {
		drawLetterheadSVG(pdf, m.HeaderSVG)
	}
	writeCompanyHeader(pdf, tr, m)

	if m.Contract != nil {
		writeContractBody(pdf, tr, m)
	} else {
		writePartyAndMeta(pdf, tr, m)
		writeItemsTable(pdf, tr, m)
		if m.Totals != nil {
			writeTotalsBlock(pdf, tr, m.Totals)
		}
	}

	if m.ShowNotes {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, 5, tr("Napomena:"), "", 1, "", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 4.5, tr(m.Notes), "", "", false)
	}

	writeSignatureBlock(pdf, tr, m)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF se ne može generirati: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLetterheadSVG: memorandum iz postavki, crta se preko pune širine
// sadržaja na trenutnoj poziciji. gofpdf čita samo osnovne SVG oblike
// (path, line, rect, circle); neispravan SVG se preskače da ispis
// dokumenta ne padne zbog memoranduma.
func drawLetterheadSVG(pdf *gofpdf.Fpdf, svg string) {
	sig, err := gofpdf.SVGBasicParse([]byte(svg))
	if err != nil || sig.Wd <= 0 {
		return
	}
	pdf.SetLineWidth(0.25)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SVGBasicWrite(&sig, 180/sig.Wd)
}

func writeCompanyHeader(pdf *gofpdf.Fpdf, tr func(string) string, m *documents.RenderModel) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(120, 7, tr(m.Company.Name), "", 0, "", false, 0, "")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 7, tr(m.Title), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(120, 5, tr(m.Company.Address), "", 0, "", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 5, tr("Broj: "+m.DisplayNumber), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(120, 5, tr("OIB: "+m.Company.OIB), "", 0, "", false, 0, "")
	pdf.CellFormat(0, 5, tr("Datum: "+m.Date), "", 1, "R", false, 0, "")

	pdf.CellFormat(120, 5, tr("IBAN: "+m.Company.IBAN), "", 1, "", false, 0, "")

	pdf.Ln(2)
	pdf.SetDrawColor(60, 60, 60)
	x, y := pdf.GetX(), pdf.GetY()
	pdf.Line(x, y, 195, y)
	pdf.Ln(5)
}

func writePartyAndMeta(pdf *gofpdf.Fpdf, tr func(string) string, m *documents.RenderModel) {
	// Lijevo kupac, desno meta podaci
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(100, 5, tr("Kupac:"), "", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(100, 5, tr(m.Buyer.Name), "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if m.Buyer.Address != "" {
		pdf.CellFormat(100, 4.5, tr(m.Buyer.Address), "", 1, "", false, 0, "")
	}
	if m.Buyer.OIB != "" {
		pdf.CellFormat(100, 4.5, tr("OIB: "+m.Buyer.OIB), "", 1, "", false, 0, "")
	}
	if m.Buyer.Phone != "" {
		pdf.CellFormat(100, 4.5, tr("Tel: "+m.Buyer.Phone), "", 1, "", false, 0, "")
	}
	if m.Buyer.Contact != "" {
		pdf.CellFormat(100, 4.5, tr("Kontakt: "+m.Buyer.Contact), "", 1, "", false, 0, "")
	}
	if m.Buyer.Delivery != "" {
		pdf.CellFormat(100, 4.5, tr("Isporuka: "+m.Buyer.Delivery), "", 1, "", false, 0, "")
	}
	pdf.Ln(4)
}

// širine kolona ovise o tome prikazuju li se cijene i rabat
func itemColumnWidths(m *documents.RenderModel) (wName, wCode, wUnit, wQty, wPrice, wDisc, wTotal float64) {
	wCode, wUnit, wQty = 0, 14, 16
	if m.ShowItemCodes {
		wCode = 20
	}

	if !m.ShowPrices {
		// bez cijena naziv zauzima ostatak širine
		wName = 180 - 10 - wCode - wUnit - wQty
		return
	}

	wPrice, wTotal = 24, 26
	if m.ShowDiscountColumn {
		wDisc = 16
	}
	wName = 180 - 10 - wCode - wUnit - wQty - wPrice - wDisc - wTotal
	return
}

func writeItemsTable(pdf *gofpdf.Fpdf, tr func(string) string, m *documents.RenderModel) {
	wName, wCode, wUnit, wQty, wPrice, wDisc, wTotal := itemColumnWidths(m)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(235, 235, 235)

	pdf.CellFormat(10, 7, tr("R.br."), "1", 0, "C", true, 0, "")
	pdf.CellFormat(wName, 7, tr("Naziv"), "1", 0, "C", true, 0, "")
	if m.ShowItemCodes {
		pdf.CellFormat(wCode, 7, tr("Šifra"), "1", 0, "C", true, 0, "")
	}
	pdf.CellFormat(wUnit, 7, tr("J.mj."), "1", 0, "C", true, 0, "")
	pdf.CellFormat(wQty, 7, tr("Količina"), "1", 0, "C", true, 0, "")
	if m.ShowPrices {
		pdf.CellFormat(wPrice, 7, tr("Cijena"), "1", 0, "C", true, 0, "")
		if m.ShowDiscountColumn {
			pdf.CellFormat(wDisc, 7, tr("Rabat %"), "1", 0, "C", true, 0, "")
		}
		pdf.CellFormat(wTotal, 7, tr("Ukupno"), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	fill := false
	for _, it := range m.Items {
		pdf.SetFillColor(248, 248, 248)
		pdf.CellFormat(10, 6, fmt.Sprintf("%d.", it.Ordinal), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(wName, 6, tr(it.Name), "1", 0, "", fill, 0, "")
		if m.ShowItemCodes {
			pdf.CellFormat(wCode, 6, tr(it.Code), "1", 0, "C", fill, 0, "")
		}
		pdf.CellFormat(wUnit, 6, tr(it.Unit), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(wQty, 6, trimQty(it.Quantity), "1", 0, "C", fill, 0, "")
		if m.ShowPrices {
			pdf.CellFormat(wPrice, 6, money.Format(it.UnitPrice), "1", 0, "R", fill, 0, "")
			if m.ShowDiscountColumn {
				pdf.CellFormat(wDisc, 6, trimQty(it.DiscountPercent), "1", 0, "C", fill, 0, "")
			}
			pdf.CellFormat(wTotal, 6, money.Format(it.Total), "1", 0, "R", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}
}

func writeTotalsBlock(pdf *gofpdf.Fpdf, tr func(string) string, t *documents.TotalsBlock) {
	pdf.Ln(4)

	label := func(s string, v float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.CellFormat(120, 6, "", "", 0, "", false, 0, "")
		pdf.CellFormat(34, 6, tr(s), "", 0, "R", false, 0, "")
		pdf.CellFormat(26, 6, money.Format(v), "", 1, "R", false, 0, "")
	}

	label("Osnovica:", t.Subtotal, false)
	if t.Discount > 0 {
		label("Rabat:", -t.Discount, false)
	}
	if t.ShowTaxBreakdown {
		label("PDV:", t.Tax, false)
	}
	label("UKUPNO (EUR):", t.GrandTotal, true)
}

func writeContractBody(pdf *gofpdf.Fpdf, tr func(string) string, m *documents.RenderModel) {
	// Dvostrano zaglavlje ugovornih strana
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(90, 5, tr("Prodavatelj:"), "", 0, "", false, 0, "")
	pdf.CellFormat(90, 5, tr("Kupac:"), "", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(90, 4.5, tr(m.Company.Name), "", 0, "", false, 0, "")
	pdf.CellFormat(90, 4.5, tr(m.Buyer.Name), "", 1, "", false, 0, "")
	pdf.CellFormat(90, 4.5, tr(m.Company.Address), "", 0, "", false, 0, "")
	pdf.CellFormat(90, 4.5, tr(m.Buyer.Address), "", 1, "", false, 0, "")
	pdf.CellFormat(90, 4.5, tr("OIB: "+m.Company.OIB), "", 0, "", false, 0, "")
	pdf.CellFormat(90, 4.5, tr("OIB: "+m.Buyer.OIB), "", 1, "", false, 0, "")
	pdf.Ln(6)

	for _, a := range m.Contract.Articles {
		pdf.SetFont("Helvetica", "B", 10)
		heading := fmt.Sprintf("Članak %d.", a.Number)
		if a.Title != "" {
			heading += " " + a.Title
		}
		pdf.CellFormat(0, 6, tr(heading), "", 1, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 4.5, tr(stripTags(a.Body)), "", "J", false)
		pdf.Ln(3)
	}

	// Tablica stavki se dodaje na kraj ugovora ako postoje stavke
	if len(m.Items) > 0 {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, tr("Specifikacija:"), "", 1, "", false, 0, "")
		writeItemsTable(pdf, tr, m)
		if m.Totals != nil {
			writeTotalsBlock(pdf, tr, m.Totals)
		}
	}
}

func writeSignatureBlock(pdf *gofpdf.Fpdf, tr func(string) string, m *documents.RenderModel) {
	pdf.Ln(14)

	switch m.Signature {
	case documents.SignatureContract:
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(90, 5, tr("Za prodavatelja:"), "", 0, "C", false, 0, "")
		pdf.CellFormat(90, 5, tr("Za kupca:"), "", 1, "C", false, 0, "")
		pdf.Ln(12)
		pdf.CellFormat(90, 5, "_______________________", "", 0, "C", false, 0, "")
		pdf.CellFormat(90, 5, "_______________________", "", 1, "C", false, 0, "")

	case documents.SignatureTwoParty:
		pdf.SetFont("Helvetica", "", 9)
		if m.WarehouseClerk != "" {
			pdf.CellFormat(0, 5, tr("Robu izdao: "+m.WarehouseClerk), "", 1, "", false, 0, "")
			pdf.Ln(6)
		}
		pdf.CellFormat(90, 5, tr("Preuzeo:"), "", 0, "C", false, 0, "")
		pdf.CellFormat(90, 5, tr("Za tvrtku:"), "", 1, "C", false, 0, "")
		pdf.Ln(12)
		pdf.CellFormat(90, 5, "_______________________", "", 0, "C", false, 0, "")
		pdf.CellFormat(90, 5, "_______________________", "", 1, "C", false, 0, "")

	default:
		pdf.SetFont("Helvetica", "", 9)
		if m.PreparedBy != "" {
			pdf.CellFormat(0, 5, tr("Dokument izradio/la: "+m.PreparedBy), "", 1, "R", false, 0, "")
		}
		pdf.Ln(10)
		pdf.CellFormat(120, 5, "", "", 0, "", false, 0, "")
		pdf.CellFormat(0, 5, tr("Potpis i pečat:"), "", 1, "C", false, 0, "")
		pdf.Ln(10)
		pdf.CellFormat(120, 5, "", "", 0, "", false, 0, "")
		pdf.CellFormat(0, 5, "_______________________", "", 1, "C", false, 0, "")
	}
}

// trimQty: količine bez nepotrebnih decimala (2 umjesto 2,00)
func trimQty(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return money.Format(v)
}

package documents

import (
	"testing"
	"time"

	"stolarija-backend/internal/models"
	"stolarija-backend/internal/placeholder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() *models.CompanySettings {
	return &models.CompanySettings{
		Name:       "Stolarija Horvat d.o.o.",
		Address:    "Ilica 1",
		PostalCode: "10000",
		City:       "Zagreb",
		OIB:        "12345678901",
		IBAN:       "HR1210010051863000160",
		Phone:      "01/234-5678",
		Email:      "info@stolarija-horvat.hr",
		Director:   "Ivan Horvat",
	}
}

func testDocument(docType models.DocumentType) *models.Document {
	return &models.Document{
		ID:        7,
		Type:      docType,
		Number:    12,
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Place:     "Zagreb",
		BuyerName: "Marko Marić",
		BuyerOIB:  "98765432109",
		Notes:     "Montaža u dogovoru s kupcem.",
		Items: []models.DocumentItem{
			{
				Name: "Kuhinjski element", Unit: "kom",
				Quantity: 2, UnitPrice: 100, DiscountPercent: 10, TaxPercent: 25,
				Subtotal: 200, Total: 225,
			},
			{
				Name: "Radna ploča", Unit: "m",
				Quantity: 1, UnitPrice: 50, TaxPercent: 25,
				Subtotal: 50, Total: 62.5,
			},
		},
		TotalAmount: 287.50,
	}
}

func TestDisplayNumberAndFileName(t *testing.T) {
	doc := testDocument(models.DocPonuda)
	assert.Equal(t, "12/2026", DisplayNumber(doc))
	assert.Equal(t, "ponuda-12-2026.pdf", PDFFileName(doc))
}

func TestBuildRenderModelPonuda(t *testing.T) {
	doc := testDocument(models.DocPonuda)
	m := BuildRenderModel(doc, testSettings(), nil, placeholder.AdvanceDefault30)

	assert.Equal(t, "PONUDA", m.Title)
	assert.Equal(t, "12/2026", m.DisplayNumber)
	assert.Equal(t, "15.03.2026.", m.Date)
	assert.True(t, m.ShowPrices)
	assert.Equal(t, SignaturePreparer, m.Signature)
	assert.Nil(t, m.Contract)

	require.Len(t, m.Items, 2)
	assert.Equal(t, 1, m.Items[0].Ordinal)
	assert.Equal(t, 2, m.Items[1].Ordinal)

	require.NotNil(t, m.Totals)
	assert.Equal(t, 250.0, m.Totals.Subtotal)
	assert.Equal(t, 20.0, m.Totals.Discount)
	assert.Equal(t, 57.5, m.Totals.Tax)
	assert.Equal(t, 287.50, m.Totals.GrandTotal)
	assert.True(t, m.Totals.ShowTaxBreakdown)
}

func TestBuildRenderModelOtpremnicaHidesPrices(t *testing.T) {
	doc := testDocument(models.DocOtpremnica)
	m := BuildRenderModel(doc, testSettings(), nil, placeholder.AdvanceDefault30)

	assert.Equal(t, "OTPREMNICA", m.Title)
	assert.False(t, m.ShowPrices)
	assert.Nil(t, m.Totals)
	assert.Equal(t, SignatureTwoParty, m.Signature)
}

func TestBuildRenderModelWarehouseClerk(t *testing.T) {
	doc := testDocument(models.DocOtpremnica)
	doc.PreparedBy = "Pero Perić"
	m := BuildRenderModel(doc, testSettings(), nil, placeholder.AdvanceDefault30)

	require.Equal(t, SignatureTwoParty, m.Signature)
	assert.Equal(t, "Pero Perić", m.WarehouseClerk)

	// na cjenovnim dokumentima ostaje samo "izradio" redak
	doc = testDocument(models.DocPonuda)
	doc.PreparedBy = "Pero Perić"
	m = BuildRenderModel(doc, testSettings(), nil, placeholder.AdvanceDefault30)
	assert.Equal(t, "Pero Perić", m.PreparedBy)
	assert.Empty(t, m.WarehouseClerk)
}

func TestBuildRenderModelLetterheadSVG(t *testing.T) {
	settings := testSettings()
	settings.HeaderSVG = `<svg width="180" height="20"><line x1="0" y1="19" x2="180" y2="19"/></svg>`
	settings.FooterSVG = `<svg width="180" height="10"><line x1="0" y1="1" x2="180" y2="1"/></svg>`

	m := BuildRenderModel(testDocument(models.DocPonuda), settings, nil, placeholder.AdvanceDefault30)
	assert.Equal(t, settings.HeaderSVG, m.HeaderSVG)
	assert.Equal(t, settings.FooterSVG, m.FooterSVG)
}

func TestBuildRenderModelTemplateFlags(t *testing.T) {
	doc := testDocument(models.DocRacun)
	tmpl := &models.DocumentTemplate{
		DocumentType:       models.DocRacun,
		ShowDiscountColumn: false,
		ShowTaxBreakdown:   false,
		ShowItemCodes:      true,
		ShowNotes:          false,
	}
	m := BuildRenderModel(doc, testSettings(), tmpl, placeholder.AdvanceDefault30)

	assert.False(t, m.ShowDiscountColumn)
	assert.True(t, m.ShowItemCodes)
	assert.False(t, m.ShowNotes)
	require.NotNil(t, m.Totals)
	assert.False(t, m.Totals.ShowTaxBreakdown)
}

func TestBuildRenderModelNotesHiddenWhenEmpty(t *testing.T) {
	doc := testDocument(models.DocPonuda)
	doc.Notes = ""
	m := BuildRenderModel(doc, testSettings(), nil, placeholder.AdvanceDefault30)
	assert.False(t, m.ShowNotes)
}

func TestBuildRenderModelUgovor(t *testing.T) {
	doc := testDocument(models.DocUgovor)
	doc.WarrantyMonths = 24
	doc.Articles = []models.ContractArticle{
		{ArticleNumber: 1, Title: "Predmet ugovora", Body: "Ukupna cijena iznosi {ukupna_cijena}.", Selected: true},
		{ArticleNumber: 2, Title: "Preskočeni članak", Body: "Ne ulazi u ugovor.", Selected: false},
		{ArticleNumber: 3, Title: "Jamstvo", Body: "Jamstvo traje {jamstvo} mjeseci, a {nepoznato} se upisuje ručno.", Selected: true},
	}

	m := BuildRenderModel(doc, testSettings(), nil, placeholder.AdvanceDefault30)

	assert.Equal(t, SignatureContract, m.Signature)
	require.NotNil(t, m.Contract)

	// zadani avans pregleda je 30%
	assert.Equal(t, 86.25, m.Contract.Advance)
	assert.Equal(t, 201.25, m.Contract.Remaining)

	// neoznačeni članak ispada, preostali se renumeriraju 1..N
	require.Len(t, m.Contract.Articles, 2)
	assert.Equal(t, 1, m.Contract.Articles[0].Number)
	assert.Equal(t, 2, m.Contract.Articles[1].Number)

	assert.Contains(t, m.Contract.Articles[0].Body, "287,50 EUR")
	assert.Contains(t, m.Contract.Articles[1].Body, "24 mjeseci")
	// nepoznati token postaje crta za ručni upis
	assert.Contains(t, m.Contract.Articles[1].Body, placeholder.BlankLine)
}

func TestBuildRenderModelUgovorEditorAdvance(t *testing.T) {
	doc := testDocument(models.DocUgovor)
	m := BuildRenderModel(doc, testSettings(), nil, placeholder.AdvanceDefaultZero)

	require.NotNil(t, m.Contract)
	assert.Equal(t, 0.0, m.Contract.Advance)
	assert.Equal(t, 287.50, m.Contract.Remaining)
}

func TestBuildRenderModelUgovorUserAdvance(t *testing.T) {
	doc := testDocument(models.DocUgovor)
	advance := 100.0
	doc.AdvanceAmount = &advance

	m := BuildRenderModel(doc, testSettings(), nil, placeholder.AdvanceDefault30)
	require.NotNil(t, m.Contract)
	assert.Equal(t, 100.0, m.Contract.Advance)
	assert.Equal(t, 187.50, m.Contract.Remaining)
}

func TestBuildRenderModelContractSanitizesHTML(t *testing.T) {
	doc := testDocument(models.DocUgovor)
	doc.Articles = []models.ContractArticle{
		{ArticleNumber: 1, Body: "<p>Čuva <b>bitno</b></p><script>alert(1)</script>", Selected: true},
	}

	m := BuildRenderModel(doc, testSettings(), nil, placeholder.AdvanceDefault30)
	require.Len(t, m.Contract.Articles, 1)
	body := m.Contract.Articles[0].Body
	assert.Contains(t, body, "<b>bitno</b>")
	assert.NotContains(t, body, "<script>")
}

func TestJoinAddress(t *testing.T) {
	assert.Equal(t, "Ilica 1, 10000 Zagreb", joinAddress("Ilica 1", "10000", "Zagreb"))
	assert.Equal(t, "Ilica 1, Zagreb", joinAddress("Ilica 1", "", "Zagreb"))
	assert.Equal(t, "Ilica 1", joinAddress("Ilica 1", "", ""))
	assert.Equal(t, "10000 Zagreb", joinAddress("", "10000", "Zagreb"))
}

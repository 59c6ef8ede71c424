package placeholder

import (
	"testing"
	"time"

	"stolarija-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteSingleBrace(t *testing.T) {
	values := map[string]string{
		"kupac_ime":     "Ivan Horvat",
		"ukupna_cijena": "1.500,00 EUR",
	}
	in := "Kupac {kupac_ime} plaća {ukupna_cijena}. Kupac: {kupac_ime}."
	out := Substitute(in, values, StyleSingleBrace, FallbackPassThrough)
	assert.Equal(t, "Kupac Ivan Horvat plaća 1.500,00 EUR. Kupac: Ivan Horvat.", out)
}

func TestSubstituteDoubleBrace(t *testing.T) {
	values := map[string]string{"avans": "450,00 EUR"}
	out := Substitute("Avans: {{avans}}", values, StyleDoubleBrace, FallbackPassThrough)
	assert.Equal(t, "Avans: 450,00 EUR", out)
}

func TestSubstituteUnknownTokenPassThrough(t *testing.T) {
	out := Substitute("Rok: {nepoznati_token}", map[string]string{}, StyleSingleBrace, FallbackPassThrough)
	assert.Equal(t, "Rok: {nepoznati_token}", out)
}

func TestSubstituteUnknownTokenBlankLine(t *testing.T) {
	out := Substitute("Rok: {nepoznati_token}", map[string]string{}, StyleSingleBrace, FallbackBlankLine)
	assert.Equal(t, "Rok: "+BlankLine, out)
}

func TestSubstituteValueContainingTokenPattern(t *testing.T) {
	// vrijednost koja izgleda kao token ne smije ući u ponovnu zamjenu,
	// neovisno o redoslijedu obilaska mape
	values := map[string]string{
		"kupac_ime": "{mjesto}",
		"mjesto":    "Zagreb",
	}
	out := Substitute("{kupac_ime} iz {mjesto}", values, StyleSingleBrace, FallbackPassThrough)
	assert.Equal(t, "{mjesto} iz Zagreb", out)

	out = Substitute("{kupac_ime} iz {mjesto}", values, StyleSingleBrace, FallbackBlankLine)
	assert.Equal(t, "{mjesto} iz Zagreb", out)
}

func TestSubstituteIdempotent(t *testing.T) {
	values := map[string]string{"mjesto": "Zagreb"}
	in := "U {mjesto}, dana {datum}"
	once := Substitute(in, values, StyleSingleBrace, FallbackBlankLine)
	twice := Substitute(once, values, StyleSingleBrace, FallbackBlankLine)
	assert.Equal(t, once, twice)
}

func TestResolveAdvanceDefault30(t *testing.T) {
	advance, remaining := ResolveAdvance(1000, nil, AdvanceDefault30)
	assert.Equal(t, 300.0, advance)
	assert.Equal(t, 700.0, remaining)
}

func TestResolveAdvanceDefaultZero(t *testing.T) {
	advance, remaining := ResolveAdvance(1000, nil, AdvanceDefaultZero)
	assert.Equal(t, 0.0, advance)
	assert.Equal(t, 1000.0, remaining)
}

func TestResolveAdvanceUserValueWinsOverPolicy(t *testing.T) {
	user := 250.0
	advance, remaining := ResolveAdvance(1000, &user, AdvanceDefault30)
	assert.Equal(t, 250.0, advance)
	assert.Equal(t, 750.0, remaining)
}

func TestTokenValues(t *testing.T) {
	doc := &models.Document{
		Type:           models.DocUgovor,
		Number:         7,
		Date:           time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		BuyerName:      "Ana Anić",
		BuyerAddress:   "Ilica 1, Zagreb",
		BuyerOIB:       "12345678901",
		TotalAmount:    2000,
		WarrantyMonths: 24,
		Place:          "Zagreb",
	}
	settings := &models.CompanySettings{
		Name: "Stolarija d.o.o.",
		OIB:  "98765432109",
	}

	values := TokenValues(doc, settings, AdvanceDefault30)
	assert.Equal(t, "2.000,00 EUR", values["ukupna_cijena"])
	assert.Equal(t, "600,00 EUR", values["avans"])
	assert.Equal(t, "1.400,00 EUR", values["ostatak"])
	assert.Equal(t, "Ana Anić", values["kupac_ime"])
	assert.Equal(t, "Stolarija d.o.o.", values["prodavatelj_ime"])
	assert.Equal(t, "7/2026", values["broj_dokumenta"])
	assert.Equal(t, "15.03.2026.", values["datum"])
	assert.Equal(t, "24", values["jamstvo"])
}

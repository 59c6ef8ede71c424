package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderForKnownExtensions(t *testing.T) {
	for _, name := range []string{"kupci.xlsx", "kupci.xls", "kupci.csv"} {
		read, err := readerFor(name)
		require.NoError(t, err, name)
		assert.NotNil(t, read, name)
	}

	_, err := readerFor("kupci.ods")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".xls")
}

func TestReadCSV(t *testing.T) {
	// redovi različite duljine su dozvoljeni
	input := "Naziv;nije,OIB\nStolarija Novak,12345678901,višak\nDrvo d.o.o.\n"
	rows, err := readCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Stolarija Novak", "12345678901", "višak"}, rows[1])
	assert.Equal(t, []string{"Drvo d.o.o."}, rows[2])
}

func TestMapColumnsCroatianHeader(t *testing.T) {
	header := []string{"Naziv tvrtke", "OIB", "Adresa", "Grad", "Telefon", "E-mail"}
	mapping := MapColumns(header, nil)

	assert.Equal(t, 0, mapping["name"])
	assert.Equal(t, 1, mapping["oib"])
	assert.Equal(t, 2, mapping["address"])
	assert.Equal(t, 3, mapping["city"])
	assert.Equal(t, 4, mapping["phone"])
	assert.Equal(t, 5, mapping["email"])
}

func TestMapColumnsEnglishHeader(t *testing.T) {
	header := []string{"Company Name", "Tax Number", "Street", "Phone"}
	mapping := MapColumns(header, nil)

	assert.Equal(t, 0, mapping["name"])
	assert.Equal(t, 1, mapping["oib"])
	assert.Equal(t, 2, mapping["address"])
	assert.Equal(t, 3, mapping["phone"])
}

func TestMapColumnsFirstMatchWins(t *testing.T) {
	// dva stupca s nazivom, mapira se prvi
	header := []string{"Naziv", "Naziv 2"}
	mapping := MapColumns(header, nil)
	assert.Equal(t, 0, mapping["name"])
}

func TestMapColumnsManualOverride(t *testing.T) {
	header := []string{"Naziv", "OIB"}
	mapping := MapColumns(header, ColumnMap{"name": 5})
	assert.Equal(t, 5, mapping["name"])
	assert.Equal(t, 1, mapping["oib"])
}

func TestCellHandlesShortRows(t *testing.T) {
	mapping := ColumnMap{"name": 0, "oib": 3}
	row := []string{"  Stolarija Novak  ", "x"}

	assert.Equal(t, "Stolarija Novak", mapping.Cell(row, "name"))
	assert.Equal(t, "", mapping.Cell(row, "oib"))  // red kraći od stupca
	assert.Equal(t, "", mapping.Cell(row, "city")) // polje nije mapirano
}

func TestParseManual(t *testing.T) {
	mapping := ParseManual("name=0, oib=2,invalid,price=abc")
	assert.Equal(t, ColumnMap{"name": 0, "oib": 2}, mapping)

	assert.Empty(t, ParseManual(""))
}

func TestResultFail(t *testing.T) {
	r := Result{Errors: []string{}}
	r.Fail("red 2: naziv je prazan")
	r.Imported++

	assert.Equal(t, 1, r.Failed)
	assert.Equal(t, 1, r.Imported)
	assert.Equal(t, []string{"red 2: naziv je prazan"}, r.Errors)
}

package importer

import (
	"encoding/csv"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// Sheet: učitani sadržaj prvog lista, zaglavlje odvojeno od podataka
type Sheet struct {
	Header []string
	Rows   [][]string
}

// Result: sažetak uvoza koji se vraća klijentu
type Result struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}

func (r *Result) Fail(msg string) {
	r.Failed++
	r.Errors = append(r.Errors, msg)
}

// readerFor: čitač prema ekstenziji datoteke. Redoslijed je bitan,
// ".xlsx" završava i na ".xls" pa se provjerava prvi.
func readerFor(filename string) (func(io.ReadSeeker) ([][]string, error), error) {
	switch {
	case strings.HasSuffix(filename, ".xlsx"):
		return readExcel, nil
	case strings.HasSuffix(filename, ".xls"):
		return readLegacyExcel, nil
	case strings.HasSuffix(filename, ".csv"):
		return readCSV, nil
	default:
		return nil, fiber.NewError(fiber.StatusBadRequest, "Mogu se učitati samo .xlsx, .xls i .csv datoteke")
	}
}

// OpenUpload: otvara .xlsx, .xls ili .csv iz multipart forme i čita prvi
// list. Datoteka samo sa zaglavljem se odbija.
func OpenUpload(fileHeader *multipart.FileHeader) (*Sheet, error) {
	read, err := readerFor(strings.ToLower(fileHeader.Filename))
	if err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Datoteka se ne može otvoriti")
	}
	defer file.Close()

	rows, err := read(file)
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Datoteka je prazna")
	}

	return &Sheet{Header: rows[0], Rows: rows[1:]}, nil
}

func readExcel(file io.ReadSeeker) ([][]string, error) {
	excelFile, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Excel datoteka se ne može pročitati: "+err.Error())
	}
	defer excelFile.Close()

	sheetList := excelFile.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Excel datoteka nema niti jedan list")
	}

	rows, err := excelFile.GetRows(sheetList[0])
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "List se ne može pročitati: "+err.Error())
	}
	return rows, nil
}

// readLegacyExcel: stari binarni .xls format (Excel 97-2003), čest kod
// popisa izvezenih iz starijih knjigovodstvenih programa
func readLegacyExcel(file io.ReadSeeker) ([][]string, error) {
	workBook, err := xls.OpenReader(file, "utf-8")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Excel datoteka se ne može pročitati: "+err.Error())
	}

	sheet := workBook.GetSheet(0)
	if sheet == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Excel datoteka nema niti jedan list")
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for j := range cells {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func readCSV(file io.ReadSeeker) ([][]string, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "CSV datoteka se ne može pročitati: "+err.Error())
	}
	return rows, nil
}

// ColumnMap: naziv polja -> indeks stupca u listu
type ColumnMap map[string]int

// fieldKeywords: ključne riječi za automatsko mapiranje stupaca,
// hrvatski i engleski nazivi zaglavlja
var fieldKeywords = map[string][]string{
	"name":    {"naziv", "ime", "name", "tvrtka", "company"},
	"oib":     {"oib", "tax", "vat", "porezni"},
	"address": {"adresa", "address", "ulica", "street"},
	"city":    {"grad", "mjesto", "city"},
	"phone":   {"telefon", "tel", "phone", "mobitel", "mobile"},
	"email":   {"email", "e-mail", "mail"},
	"iban":    {"iban", "račun", "racun", "account"},
	"contact": {"kontakt", "contact", "osoba", "person"},
	"note":    {"napomena", "note", "opis", "description"},
	"code":    {"šifra", "sifra", "code", "kod"},
	"unit":    {"jedinica", "jmj", "unit"},
	"price":   {"cijena", "price"},
	"tax":     {"pdv", "porez", "stopa"},
}

// MapColumns: gradi mapu stupaca iz zaglavlja. Ručno zadana mapa (npr. iz
// form polja) ima prednost pred automatskim prepoznavanjem.
func MapColumns(header []string, manual ColumnMap) ColumnMap {
	mapping := make(ColumnMap)

	for i, cell := range header {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		if normalized == "" {
			continue
		}
		for field, keywords := range fieldKeywords {
			if _, taken := mapping[field]; taken {
				continue
			}
			for _, kw := range keywords {
				if strings.Contains(normalized, kw) {
					mapping[field] = i
					break
				}
			}
		}
	}

	for field, idx := range manual {
		mapping[field] = idx
	}
	return mapping
}

// Cell: vrijednost ćelije po imenu polja, prazan string ako polje
// nije mapirano ili je red kraći od očekivanog
func (m ColumnMap) Cell(row []string, field string) string {
	idx, ok := m[field]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ParseManual: ručno mapiranje iz form polja oblika "name=0,oib=2"
func ParseManual(raw string) ColumnMap {
	mapping := make(ColumnMap)
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			continue
		}
		mapping[strings.TrimSpace(parts[0])] = idx
	}
	return mapping
}

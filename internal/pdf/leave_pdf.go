package pdf

import (
	"fmt"
	"time"

	"stolarija-backend/internal/calendar"
	"stolarija-backend/internal/models"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// LeaveDocumentNumber: čitljiv broj obrasca, godina + odsječak ID-a zapisa,
// npr. "ZG-2026/0042"
func LeaveDocumentNumber(req *models.LeaveRequest) string {
	return fmt.Sprintf("ZG-%d/%04d", req.StartDate.Year(), req.ID%10000)
}

// GenerateLeavePDF: jednostranični obrazac zahtjeva za godišnji odmor.
// Za razliku od poslovnih dokumenata gradi se kroz deklarativno
// komponentno stablo, ne kroz tablični layout.
func GenerateLeavePDF(req *models.LeaveRequest, employee *models.Employee, settings *models.CompanySettings, holidays calendar.HolidaySet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	returnDate := calendar.ReturnToWork(req.EndDate, employee.WorksSaturday, holidays)

	// Zaglavlje tvrtke
	m.AddRow(16,
		col.New(8).Add(
			text.New(settings.Name, props.Text{Size: 14, Style: fontstyle.Bold}),
			text.New(settings.Address+", "+settings.City, props.Text{Size: 9, Top: 7}),
		),
		col.New(4).Add(
			text.New("Broj: "+LeaveDocumentNumber(req), props.Text{Size: 10, Align: align.Right, Style: fontstyle.Bold}),
			text.New("Datum: "+time.Now().Format("02.01.2006."), props.Text{Size: 9, Top: 6, Align: align.Right}),
		),
	)
	m.AddRow(4, line.NewCol(12))

	m.AddRow(12, col.New(12).Add(
		text.New("ZAHTJEV ZA GODIŠNJI ODMOR", props.Text{Size: 13, Style: fontstyle.Bold, Align: align.Center, Top: 3}),
	))

	// Podaci o radniku i razdoblju
	labelRow := func(label, value string) {
		m.AddRow(7,
			col.New(4).Add(text.New(label, props.Text{Size: 10, Style: fontstyle.Bold})),
			col.New(8).Add(text.New(value, props.Text{Size: 10})),
		)
	}

	labelRow("Radnik:", employee.FirstName+" "+employee.LastName)
	labelRow("Radno mjesto:", employee.Position)
	labelRow("Od:", req.StartDate.Format("02.01.2006."))
	labelRow("Do:", req.EndDate.Format("02.01.2006."))
	labelRow("Radnih dana:", fmt.Sprintf("%d", req.WorkingDays))
	labelRow("Povratak na posao:", returnDate.Format("02.01.2006."))
	if req.Note != "" {
		labelRow("Napomena:", req.Note)
	}

	m.AddRow(4, line.NewCol(12))

	// Stanje odobrenja prema statusu zahtjeva
	approvedMark, rejectedMark := "[ ]", "[ ]"
	if req.Status == models.LeaveApproved {
		approvedMark = "[X]"
	}
	if req.Status == models.LeaveRejected {
		rejectedMark = "[X]"
	}
	m.AddRow(10,
		col.New(6).Add(text.New(approvedMark+" ODOBRAVA SE", props.Text{Size: 10, Top: 3})),
		col.New(6).Add(text.New(rejectedMark+" NE ODOBRAVA SE", props.Text{Size: 10, Top: 3})),
	)

	// Potpisi
	m.AddRow(24,
		col.New(6).Add(
			text.New("_______________________", props.Text{Size: 10, Top: 14, Align: align.Center}),
			text.New("Radnik", props.Text{Size: 8, Top: 20, Align: align.Center}),
		),
		col.New(6).Add(
			text.New("_______________________", props.Text{Size: 10, Top: 14, Align: align.Center}),
			text.New("Direktor: "+settings.Director, props.Text{Size: 8, Top: 20, Align: align.Center}),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("PDF obrasca se ne može generirati: %w", err)
	}
	return doc.GetBytes(), nil
}

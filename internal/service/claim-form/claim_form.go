package claim_form

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"nurse-roster/internal/service/overtime"
)

type ReportProvider interface {
	MonthlyReport(ctx context.Context, nurseID int64, ref time.Time) (*overtime.Summary, error)
}

type ClaimFormService struct {
	reports ReportProvider
}

func NewClaimFormService(reports ReportProvider) *ClaimFormService {
	return &ClaimFormService{reports: reports}
}

func (c *ClaimFormService) Fields(ctx context.Context, nurseID int64, ref time.Time) (map[string]string, error) {
	const op = "service.claim_form.Fields"

	summary, err := c.reports.MonthlyReport(ctx, nurseID, ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return BuildFields(summary), nil
}

const (
	sheetName = "OT Claim"
	tableRow  = 6
)

var tableHeaders = []string{
	"Week", "Date", "Day", "Duty In", "Duty Out", "Duty Hrs",
	"OT In", "OT Out", "OT Hrs", "Reason", "Total Hrs", "Payable OT",
}

// колонки итоговых строк
const (
	colBox1 = 6
	colBox2 = 9
	colBox3 = 11
	colBox4 = 12
)

// GenerateExcel renders the claim as a worksheet: one row per day, a
// subtotal row after every week and the period total at the bottom.
func (c *ClaimFormService) GenerateExcel(ctx context.Context, nurseID int64, ref time.Time) ([]byte, error) {
	const op = "service.claim_form.GenerateExcel"

	summary, err := c.reports.MonthlyReport(ctx, nurseID, ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("%s: style: %w", op, err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: style: %w", op, err)
	}

	// шапка формы
	f.SetCellValue(sheetName, "A1", "Overtime Claim")
	f.SetCellStyle(sheetName, "A1", "A1", boldStyle)
	if n := summary.Nurse; n != nil {
		f.SetCellValue(sheetName, "A2", "Name")
		f.SetCellValue(sheetName, "B2", n.Name)
		f.SetCellValue(sheetName, "D2", "Employee No")
		f.SetCellValue(sheetName, "E2", n.EmployeeNo)
		f.SetCellValue(sheetName, "A3", "Ward")
		f.SetCellValue(sheetName, "B3", n.Ward)
		f.SetCellValue(sheetName, "D3", "Rank")
		f.SetCellValue(sheetName, "E3", n.Rank)
	}
	f.SetCellValue(sheetName, "A4", "Period")
	f.SetCellValue(sheetName, "B4", reformat(summary.StartDate)+" - "+reformat(summary.EndDate))

	for i, name := range tableHeaders {
		f.SetCellValue(sheetName, cellName(i+1, tableRow), name)
	}
	f.SetCellStyle(sheetName, cellName(1, tableRow), cellName(len(tableHeaders), tableRow), headerStyle)

	row := tableRow + 1
	for _, week := range summary.Weeks {
		for _, d := range week.Days {
			f.SetCellValue(sheetName, cellName(1, row), week.Label)
			f.SetCellValue(sheetName, cellName(2, row), reformat(d.Date))
			f.SetCellValue(sheetName, cellName(3, row), d.Weekday)
			f.SetCellValue(sheetName, cellName(4, row), d.DutyIn)
			f.SetCellValue(sheetName, cellName(5, row), d.DutyOut)
			f.SetCellValue(sheetName, cellName(6, row), d.DutyHrs)
			f.SetCellValue(sheetName, cellName(7, row), d.OTIn)
			f.SetCellValue(sheetName, cellName(8, row), d.OTOut)
			f.SetCellValue(sheetName, cellName(9, row), d.OTHrs)
			f.SetCellValue(sheetName, cellName(10, row), d.Reason)
			row++
		}

		f.SetCellValue(sheetName, cellName(1, row), week.Label+" total")
		f.SetCellValue(sheetName, cellName(2, row), week.Range)
		writeBoxes(f, row, week.Stats.Box1, week.Stats.Box2, week.Stats.Box3, week.Stats.Box4)
		f.SetCellStyle(sheetName, cellName(1, row), cellName(len(tableHeaders), row), boldStyle)
		row++
	}

	m := summary.MonthlyStats
	f.SetCellValue(sheetName, cellName(1, row), "Total")
	writeBoxes(f, row, m.Box1, m.Box2, m.Box3, m.Box4)
	f.SetCellStyle(sheetName, cellName(1, row), cellName(len(tableHeaders), row), headerStyle)

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      tableRow,
		TopLeftCell: cellName(1, tableRow+1),
		ActivePane:  "bottomLeft",
	})
	f.SetColWidth(sheetName, "A", "B", 16)
	f.SetColWidth(sheetName, "J", "J", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: write: %w", op, err)
	}

	return buf.Bytes(), nil
}

func writeBoxes(f *excelize.File, row int, box1, box2, box3, box4 float64) {
	f.SetCellValue(sheetName, cellName(colBox1, row), box1)
	f.SetCellValue(sheetName, cellName(colBox2, row), box2)
	f.SetCellValue(sheetName, cellName(colBox3, row), box3)
	f.SetCellValue(sheetName, cellName(colBox4, row), box4)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

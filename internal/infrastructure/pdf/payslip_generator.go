// Package pdf renders the monthly payslip a user downloads from the payroll
// screen.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name           │  PAYSLIP + month           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPLOYEE: name, ID, department, position                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Component | Earnings | Deductions                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NET PAY                                                    │
//	│  FOOTER: payment status / generated notice                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
)

const companyName = "Dayflow"

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// money prints amounts with US grouping, e.g. 5300 -> "$5,300.00".
var money = message.NewPrinter(language.AmericanEnglish)

// MarotoPayslipGenerator implements payroll.PayslipGenerator using Maroto v2.
type MarotoPayslipGenerator struct{}

// NewMarotoPayslipGenerator builds the generator.
func NewMarotoPayslipGenerator() *MarotoPayslipGenerator { return &MarotoPayslipGenerator{} }

// GeneratePayslip renders one month's payslip and returns its bytes.
func (g *MarotoPayslipGenerator) GeneratePayslip(user *entity.User, rec *entity.PayrollRecord) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Payslip "+rec.MonthLabel(), true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rec))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(employeeRow(user))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(componentRow("Basic Salary", &rec.Salary.Basic, nil))
	m.AddRows(componentRow("Allowances", &rec.Salary.Allowances, nil))
	m.AddRows(componentRow("Deductions", nil, &rec.Salary.Deductions))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(netRow(rec))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(rec))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate payslip: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: company name (left), payslip title and month (right).
func headerRow(rec *entity.PayrollRecord) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("HR Management", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PAYSLIP", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rec.MonthLabel(), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// employeeRow: who this payslip belongs to.
func employeeRow(user *entity.User) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("EMPLOYEE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(user.FullName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("ID: %s   |   %s   |   %s",
				user.EmployeeID, user.Department, user.Position,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Component", 6, align.Left),
		h("Earnings", 3, align.Right),
		h("Deductions", 3, align.Right),
	)
}

// componentRow prints one salary component in either the earnings or the
// deductions column.
func componentRow(label string, earning, deduction *decimal.Decimal) core.Row {
	cell := func(d *decimal.Decimal) core.Col {
		s := ""
		if d != nil {
			s = formatMoney(*d)
		}
		return col.New(3).Add(text.New(s, props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		col.New(6).Add(text.New(label, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		cell(earning),
		cell(deduction),
	)
}

func netRow(rec *entity.PayrollRecord) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New("NET PAY", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Left,
			Color: colorPrimary, Top: 2, Left: 1,
		})),
		col.New(6).Add(text.New(formatMoney(rec.Salary.Net), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func footerRow(rec *entity.PayrollRecord) core.Row {
	status := "Payment pending."
	if rec.Status == entity.PayrollPaid && rec.PaymentDate != nil {
		status = "Paid on " + rec.PaymentDate.Format("January 2, 2006") + "."
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(status+" This payslip is system generated and does not require a signature.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return money.Sprintf("$%.2f", f)
}

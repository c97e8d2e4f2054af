// Package pdf implementa la generación del recibo de pago en PDF que el admin
// descarga desde el dashboard tras registrar una renovación.
package pdf

import (
	"context"
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

	apppayments "github.com/jhoicas/Gimnasio-api/internal/application/payments"
	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ apppayments.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa payments.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	gymName string
}

// NewMarotoReceiptGenerator construye el generador con el nombre del gimnasio
// para el encabezado.
func NewMarotoReceiptGenerator(gymName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{gymName: gymName}
}

// GenerateReceiptPDF genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	payment *entity.Payment,
	member *entity.Member,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de pago", true).
		WithAuthor(g.gymName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(payment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(memberRow(member))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(amountRow(payment))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(member))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del gimnasio (izq) y número de recibo + fecha (der).
func (g *MarotoReceiptGenerator) headerRow(payment *entity.Payment) core.Row {
	fecha := payment.Fecha.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.gymName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RECIBO DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Recibo N° "+payment.ID, props.Text{
				Size: 7, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// memberRow: datos del miembro que paga.
func memberRow(member *entity.Member) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("MIEMBRO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Cédula: %s   |   Plan: %s",
				member.Nombre, member.Cedula, member.Plan,
			), props.Text{Size: 9, Top: 7, Color: colorGray}),
		),
	)
}

// amountRow: monto pagado y vencimiento resultante.
func amountRow(payment *entity.Payment) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("MONTO PAGADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("$ "+payment.Amount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 7,
			}),
		),
		col.New(6).Add(
			text.New("REGISTRADO POR", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Admin "+payment.CreatedBy, props.Text{
				Size: 7, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// footerRow: vencimiento vigente del miembro al momento de emitir el recibo.
func footerRow(member *entity.Member) core.Row {
	venc := "—"
	if member.FechaVencimiento != nil {
		venc = member.FechaVencimiento.Format("02/01/2006")
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Membresía vigente hasta: "+venc, props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		),
	)
}

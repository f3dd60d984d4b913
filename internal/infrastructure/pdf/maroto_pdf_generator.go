// Package pdf implementa el resumen imprimible de una auditoría.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Organización  │  N° Auditoría + Fecha + Estado      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Sitio auditado                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Industria | Tipo | Auditor | Geolocalización       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Leyenda + fecha de generación                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/Auditoria-api/internal/application/usecase"
	"github.com/jhoicas/Auditoria-api/internal/domain/entity"
)

var _ usecase.AuditPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// statusLabels etiqueta legible por estado para el encabezado del PDF.
var statusLabels = map[string]string{
	entity.AuditStatusDraft:    "BORRADOR",
	entity.AuditStatusReview:   "EN REVISIÓN",
	entity.AuditStatusApproved: "APROBADA",
	entity.AuditStatusClosed:   "CERRADA",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.AuditPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateAuditPDF genera el PDF y devuelve sus bytes. industry y auditType
// pueden ser nil (la auditoría no los exige).
func (g *MarotoPDFGenerator) GenerateAuditPDF(
	_ context.Context,
	audit *entity.Audit,
	tenant *entity.Tenant,
	industry *entity.Industry,
	auditType *entity.AuditType,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de Auditoría "+audit.AuditNumber, true).
		WithAuthor(tenant.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(audit, tenant))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(audit))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range detailRows(audit, industry, auditType) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: organización (izq) y N° auditoría + fecha + estado (der).
func headerRow(audit *entity.Audit, tenant *entity.Tenant) core.Row {
	fecha := audit.AuditDate.Format("02/01/2006")
	status := statusLabels[audit.Status]
	if status == "" {
		status = audit.Status
	}

	return row.New(20).Add(
		col.New(7).Add(
			text.New(tenant.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumen de Auditoría", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(audit.AuditNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Estado: "+status, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 13, Color: colorPrimary,
			}),
		),
	)
}

// customerRow: cliente auditado y sitio.
func customerRow(audit *entity.Audit) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE AUDITADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(audit.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Sitio: "+nonEmpty(audit.SiteLocation, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// detailRows: pares etiqueta/valor con los datos de la auditoría.
func detailRows(audit *entity.Audit, industry *entity.Industry, auditType *entity.AuditType) []core.Row {
	industryName := "—"
	if industry != nil {
		industryName = industry.Name
	}
	typeName := "—"
	if auditType != nil {
		typeName = auditType.Name
	}
	geo := "—"
	if audit.GeoLocation != nil {
		geo = *audit.GeoLocation
	}

	pair := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(3).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1,
			})),
			col.New(9).Add(text.New(value, props.Text{
				Size: 8, Top: 1, Left: 1, Color: colorGray,
			})),
		)
	}

	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("DETALLE DE LA AUDITORÍA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
		pair("Industria:", industryName),
		pair("Tipo de auditoría:", typeName),
		pair("Auditor:", nonEmpty(audit.AuditorName, "—")),
		pair("Geolocalización:", geo),
	}
}

// footerRow: leyenda y fecha de generación.
func footerRow() core.Row {
	generado := time.Now().Format("02/01/2006 15:04")
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"Documento generado por AuditoríaPro el "+generado+". "+
				"Este resumen no reemplaza el informe completo de auditoría.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

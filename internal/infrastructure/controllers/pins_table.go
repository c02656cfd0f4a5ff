package controllers

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
)

//nolint:gochecknoglobals // plain ASCII frame for CI logs
var asciiBorder = lipgloss.Border{
	Top:          "-",
	Bottom:       "-",
	Left:         "|",
	Right:        "|",
	TopLeft:      "+",
	TopRight:     "+",
	BottomLeft:   "+",
	BottomRight:  "+",
	MiddleLeft:   "+",
	MiddleRight:  "+",
	Middle:       "+",
	MiddleTop:    "+",
	MiddleBottom: "+",
}

var pinsTableHeaders = []string{ //nolint:gochecknoglobals // fixed column set
	"Package", "Current Version Spec", "Latest version on PyPI", "Constrained to",
}

// RenderPinsTable renders the reports as an ASCII table, one row per report in order.
func RenderPinsTable(reports []entities.PinReport) string {
	rows := make([][]string, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, []string{
			report.Name,
			report.CurrentSpec,
			report.LatestVersion,
			report.ConstrainedTo,
		})
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(asciiBorder).
		StyleFunc(func(_, _ int) lipgloss.Style { return cell }).
		Headers(pinsTableHeaders...).
		Rows(rows...).
		String()
}

// WritePinsTable writes the rendered table followed by a newline.
func WritePinsTable(out io.Writer, reports []entities.PinReport) error {
	_, err := fmt.Fprintln(out, RenderPinsTable(reports))
	return err
}

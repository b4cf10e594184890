package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/chemaware/catalog/internal/domain"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("%w: unknown format %q (want table, json or yaml)", domain.ErrInvalidRequest, format)
}

// renderData writes v in a machine-readable format
func renderData(w io.Writer, format string, v any) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return renderJSON(w, v)
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderProducts writes a card table. favorite reports the heart column.
func renderProducts(w io.Writer, products []domain.Product, favorite func(string) bool) {
	if len(products) == 0 {
		_, _ = fmt.Fprintln(w, "(no products)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Identifier", "Name", "Hazard", "Eco", "Fav", "Usage"})
	for _, p := range products {
		fav := ""
		if favorite(p.Identifier()) {
			fav = "♥"
		}
		t.AppendRow(table.Row{p.Identifier(), p.Name, hazardLabel(p.Hazard), yesNo(p.Eco), fav, p.Usage})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Hazard", Align: text.AlignCenter},
		{Name: "Eco", Align: text.AlignCenter},
		{Name: "Fav", Align: text.AlignCenter},
		{Name: "Usage", WidthMax: 48},
	})
	t.Render()
}

func renderPage(w io.Writer, page domain.Page, favorite func(string) bool) {
	renderProducts(w, page.Items, favorite)
	_, _ = fmt.Fprintf(w, "Page %d of %d (%d products)\n", page.Page, page.TotalPages, page.Total)
}

func renderDetail(w io.Writer, d domain.ProductDetail) {
	p := d.Product

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(p.Name)
	t.AppendRows([]table.Row{
		{"Identifier", p.Identifier()},
		{"Source", string(p.Source)},
		{"Hazard", hazardLabel(p.Hazard)},
		{"Eco", yesNo(p.Eco)},
		{"Usage", p.Usage},
		{"Effects", p.Effects},
		{"Safety", p.Safety},
		{"Description", p.Description},
		{"Image", p.Image},
		{"Favorite", yesNo(d.Favorite)},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 64},
	})
	t.Render()
}

// renderPair writes two products side by side, one row per field
func renderPair(w io.Writer, left, right domain.Product) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"", left.Name, right.Name})
	t.AppendRows([]table.Row{
		{"Identifier", left.Identifier(), right.Identifier()},
		{"Hazard", hazardLabel(left.Hazard), hazardLabel(right.Hazard)},
		{"Eco", yesNo(left.Eco), yesNo(right.Eco)},
		{"Usage", left.Usage, right.Usage},
		{"Effects", left.Effects, right.Effects},
		{"Safety", left.Safety, right.Safety},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 40},
		{Number: 3, WidthMax: 40},
	})
	t.Render()
}

func hazardLabel(level int) string {
	if level <= 0 {
		return "?"
	}
	level = min(level, 5)
	return fmt.Sprintf("%s %d/5", strings.Repeat("▲", level), level)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

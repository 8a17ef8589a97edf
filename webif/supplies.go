package webif

import (
	"fmt"
	"html/template"
	"net/http"

	"printdesk/server/printer"
)

// supplyBackgrounds maps a supply color to the CSS background of its
// level meter. Uncolored supplies (waste tanks and the like) get a
// hatched pattern instead of a solid fill.
var supplyBackgrounds = map[printer.SupplyColor]template.CSS{
	printer.SupplyColorNone:         "repeating-linear-gradient(135deg, #ccc 0, #ccc 4px, #fff 4px, #fff 8px)",
	printer.SupplyColorBlack:        "#222",
	printer.SupplyColorCyan:         "#0FF",
	printer.SupplyColorGray:         "#777",
	printer.SupplyColorGreen:        "#0C0",
	printer.SupplyColorLightCyan:    "#7FF",
	printer.SupplyColorLightGray:    "#CCC",
	printer.SupplyColorLightMagenta: "#FCF",
	printer.SupplyColorMagenta:      "#F0F",
	printer.SupplyColorOrange:       "#F70",
	printer.SupplyColorViolet:       "#707",
	printer.SupplyColorYellow:       "#FF0",
}

// supplyRow renders one supply as a proportional meter: the filled span
// and the remainder together span half the cell width.
type supplyRow struct {
	Description string
	Title       string
	FillStyle   template.CSS
	RestStyle   template.CSS
}

type suppliesView struct {
	Supplies []supplyRow
}

func buildSuppliesView(supplies []printer.Supply) suppliesView {
	var view suppliesView
	for _, s := range supplies {
		bg, ok := supplyBackgrounds[s.Color]
		if !ok {
			bg = supplyBackgrounds[printer.SupplyColorNone]
		}
		fill := float64(s.Level) * 0.5
		rest := 50.0 - fill
		view.Supplies = append(view.Supplies, supplyRow{
			Description: s.Description,
			Title:       fmt.Sprintf("%d%%", s.Level),
			FillStyle:   template.CSS(fmt.Sprintf("background: %s; padding: 0 %.1f%%;", bg, fill)),
			RestStyle:   template.CSS(fmt.Sprintf("padding: 0 %.1f%%;", rest)),
		})
	}
	return view
}

func (wi *WebIF) handleSupplies(w http.ResponseWriter, r *http.Request, p *printer.Printer) {
	wi.render(w, r, p, "supplies", "Supplies", 0, "", buildSuppliesView(p.Supplies()))
}

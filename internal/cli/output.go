package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/api/dto"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/services"
)

// printer renders human-readable output. Colors are only emitted when w is a terminal.
type printer struct {
	w io.Writer

	title   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	muted   lipgloss.Style
	borders lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		good:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		bad:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		borders: r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

func (p *printer) heading(s string) {
	fmt.Fprintln(p.w, p.title.Render(strings.ToUpper(s)))
}

func (p *printer) newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.borders).
		Headers(headers...)
}

func (p *printer) vehicleTable(vehicles []dto.VehicleResponse) {
	t := p.newTable("VEHICLE", "INTERIOR L x W x H (mm)", "PAYLOAD (kg)")
	for _, v := range vehicles {
		t.Row(v.Name, dims(v.Length, v.Width, v.Height), kg(v.MaxWeight))
	}
	fmt.Fprintln(p.w, t.Render())
}

func (p *printer) plan(boxes []*domain.Box, plan *domain.FleetPlan) {
	total := 0.0
	for _, b := range boxes {
		total += b.Weight
	}
	fmt.Fprintf(p.w, "Packing list: %d boxes, %s kg\n\n", len(boxes), kg(total))

	t := p.newTable("VEHICLE", "VEHICLES", "OUTCOME", "UNPACKED")
	for _, e := range plan.Evaluations {
		count := humanize.Comma(int64(e.Count()))
		if !e.Complete() {
			count = ">= " + count
		}
		t.Row(e.Vehicle.Name, count, string(e.Outcome), humanize.Comma(int64(len(e.Unpacked))))
	}
	fmt.Fprintln(p.w, t.Render())

	if !plan.Feasible() {
		fmt.Fprintln(p.w, p.bad.Render("No vehicle type can carry every box."))
		return
	}

	best := plan.Best
	fmt.Fprintf(p.w, "Recommended: %s x %d\n\n",
		p.good.Render(best.Vehicle.Name), best.Count())

	for _, bin := range best.Bins {
		fmt.Fprintf(p.w, "%s  %d boxes, %s / %s kg (%.1f%% payload, %.1f%% volume)\n",
			p.title.Render(bin.Name), len(bin.Boxes), kg(bin.Weight), kg(bin.MaxWeight),
			bin.WeightUtilization(), bin.VolumeUtilization())

		bt := p.newTable("BOX", "L x W x H (mm)", "WEIGHT (kg)", "POSITION (x, y, z)", "ITEMS")
		for _, b := range bin.Boxes {
			l, w, h := b.EffectiveDimensions()
			size := dims(l, w, h)
			if b.Orientation == domain.Rotated {
				size += p.muted.Render(" (rotated)")
			}
			bt.Row(b.Name, size, kg(b.Weight), position(b.Position), b.Description)
		}
		fmt.Fprintln(p.w, bt.Render())
	}
}

func (p *printer) oversize(err *services.OversizeError) {
	fmt.Fprintln(p.w, p.bad.Render("These boxes exceed every vehicle in the catalog:"))

	t := p.newTable("BOX", "L x W x H (mm)", "WEIGHT (kg)")
	for _, b := range err.Boxes {
		t.Row(b.Name, dims(b.Length, b.Width, b.Height), kg(b.Weight))
	}
	fmt.Fprintln(p.w, t.Render())

	l := err.Limits
	fmt.Fprintf(p.w, "Largest in catalog: %s mm, %s kg\n", dims(l.Length, l.Width, l.Height), kg(l.MaxWeight))
}

func dims(l, w, h float64) string {
	return fmt.Sprintf("%s x %s x %s", humanize.Commaf(l), humanize.Commaf(w), humanize.Commaf(h))
}

func kg(v float64) string { return humanize.Commaf(v) }

func position(pos *domain.Position) string {
	if pos == nil {
		return "-"
	}
	return fmt.Sprintf("(%g, %g, %g)", pos.X, pos.Y, pos.Z)
}

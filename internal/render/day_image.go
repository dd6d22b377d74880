// Package render draws a one-day schedule grid as a PNG. It consumes the
// engine's computed geometry (composited background slots, placed booking
// cards, the now-line) and adds nothing temporal of its own.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"schedgrid/internal/grid"
	"schedgrid/internal/model"
	"schedgrid/internal/provider"
	"schedgrid/internal/schedule"
)

const (
	headerHeight    = 60
	leftLabelsWidth = 64
	columnWidth     = 180
	columnPaddingX  = 6
	cardRadius      = 4.0
)

var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
	hourLineColor  = color.NRGBA{150, 150, 150, 255}
	nowLineColor   = color.NRGBA{255, 80, 80, 220}
	columnColor    = color.NRGBA{240, 240, 240, 255}

	kindColors = map[model.SegmentKind]color.NRGBA{
		model.SegmentWorking:   {223, 240, 216, 255},
		model.SegmentBreak:     {255, 224, 178, 255},
		model.SegmentBuffer:    {225, 232, 240, 255},
		model.SegmentClosed:    {205, 205, 205, 255},
		model.SegmentTimeBlock: {215, 205, 230, 255},
	}

	statusColors = map[model.AppointmentStatus]color.NRGBA{
		model.StatusPending:   {255, 236, 179, 255},
		model.StatusConfirmed: {133, 193, 85, 220},
		model.StatusScheduled: {144, 202, 249, 255},
		model.StatusCompleted: {207, 216, 220, 255},
		model.StatusCancelled: {158, 158, 158, 200},
		model.StatusNoShow:    {255, 138, 128, 255},
	}

	cardTextColor = color.RGBA{20, 24, 28, 230}
	problemColor  = color.NRGBA{229, 57, 53, 255}
)

// DayView is everything the renderer needs for one day, keyed by resource.
type DayView struct {
	Date       time.Time
	Window     grid.Window
	Density    grid.Density
	Loc        *time.Location
	Resources  []provider.Resource
	Background map[string]map[int]model.SegmentKind
	Bookings   map[string][]schedule.PlacedBooking
	NowLine    *grid.Rect
}

// DayImage renders the view to a PNG.
func DayImage(view DayView) ([]byte, error) {
	gridHeight := float64(view.Window.TotalSlots()) * view.Density.SlotHeight
	width := leftLabelsWidth + len(view.Resources)*columnWidth
	height := headerHeight + int(gridHeight) + 1

	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(bgColor)
	dc.Clear()

	drawHeader(dc, view)
	drawHourMarks(dc, view, float64(width))

	for i, res := range view.Resources {
		x := float64(leftLabelsWidth + i*columnWidth)
		drawColumn(dc, view, res, x)
	}

	if view.NowLine != nil {
		y := float64(headerHeight) + view.NowLine.Top
		dc.SetColor(nowLineColor)
		dc.SetLineWidth(2)
		dc.DrawLine(float64(leftLabelsWidth), y, float64(width), y)
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode day image: %w", err)
	}
	return buf.Bytes(), nil
}

func drawHeader(dc *gg.Context, view DayView) {
	title := view.Date.In(view.Loc).Format("Monday, Jan 2 2006")
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, float64(leftLabelsWidth), headerHeight/3, 0, 0.5)

	for i, res := range view.Resources {
		x := float64(leftLabelsWidth+i*columnWidth) + float64(columnWidth)/2
		dc.DrawStringAnchored(res.Name, x, headerHeight*2/3, 0.5, 0.5)
	}
}

func drawHourMarks(dc *gg.Context, view DayView, width float64) {
	perHour := float64(view.Window.SlotsPerHour()) * view.Density.SlotHeight

	for h := view.Window.StartHour; h <= view.Window.EndHour; h++ {
		y := float64(headerHeight) + float64(h-view.Window.StartHour)*perHour

		dc.SetColor(hourLineColor)
		dc.SetLineWidth(0.3)
		dc.DrawLine(leftLabelsWidth, y, width, y)
		dc.Stroke()

		dc.SetColor(hourLabelColor)
		label := fmt.Sprintf("%02d:00", h)
		dc.DrawStringAnchored(label, leftLabelsWidth-8, y, 1, 0.5)
	}
}

func drawColumn(dc *gg.Context, view DayView, res provider.Resource, x float64) {
	gridHeight := float64(view.Window.TotalSlots()) * view.Density.SlotHeight

	dc.SetColor(columnColor)
	dc.DrawRectangle(x, headerHeight, columnWidth, gridHeight)
	dc.Fill()

	for slot, kind := range view.Background[res.ID] {
		fill, ok := kindColors[kind]
		if !ok {
			continue
		}
		y := float64(headerHeight) + float64(slot)*view.Density.SlotHeight
		dc.SetColor(fill)
		dc.DrawRectangle(x, y, columnWidth, view.Density.SlotHeight)
		dc.Fill()
	}

	for _, p := range view.Bookings[res.ID] {
		drawCard(dc, view, p, x)
	}
}

func drawCard(dc *gg.Context, view DayView, p schedule.PlacedBooking, x float64) {
	fill, ok := statusColors[p.Appointment.Status]
	if !ok {
		fill = color.NRGBA{220, 220, 220, 200}
	}

	cardX := x + columnPaddingX
	cardY := float64(headerHeight) + p.Rect.Top
	cardW := float64(columnWidth) - 2*columnPaddingX

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(cardX, cardY+1, cardW, p.Rect.Height-2, cardRadius)
	dc.Fill()

	dc.SetColor(hourLineColor)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(cardX, cardY+1, cardW, p.Rect.Height-2, cardRadius)
	dc.Stroke()

	label := p.Appointment.Interval.Start.In(view.Loc).Format("15:04")
	if p.Appointment.Customer != "" {
		label += " " + p.Appointment.Customer
	}
	dc.SetColor(cardTextColor)
	dc.DrawStringAnchored(label, cardX+6, cardY+2, 0, 1)

	// Problem badge: a small marker only, the engine never interprets the
	// problems themselves.
	if len(p.Appointment.Problems) > 0 {
		dc.SetColor(problemColor)
		dc.DrawCircle(cardX+cardW-8, cardY+8, 3)
		dc.Fill()
	}
}

// Package planning lays appointments out on a fixed-resolution day grid.
//
// All functions are pure: they read the appointments they are given and never
// keep state between calls.
package planning

import (
	"errors"
	"fmt"
	"time"

	"dental-practice-api/internal/model"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, want HH:MM")
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrBeforeAnchor      = errors.New("start is before the grid anchor")
	ErrInvalidGrid       = errors.New("invalid grid")
)

// Grid describes the visible day. Times are minutes since midnight.
type Grid struct {
	Anchor        int
	End           int
	SlotMinutes   int
	PixelsPerSlot float64
}

// DefaultGrid is 08:00-18:00 in 30 minute slots of 60px.
func DefaultGrid() Grid {
	return Grid{Anchor: 8 * 60, End: 18 * 60, SlotMinutes: 30, PixelsPerSlot: 60}
}

func NewGrid(anchor, end string, slotMinutes int, pixelsPerSlot float64) (Grid, error) {
	a, err := ParseClock(anchor)
	if err != nil {
		return Grid{}, fmt.Errorf("%w: anchor: %w", ErrInvalidGrid, err)
	}
	e, err := ParseClock(end)
	if err != nil {
		return Grid{}, fmt.Errorf("%w: end: %w", ErrInvalidGrid, err)
	}
	g := Grid{Anchor: a, End: e, SlotMinutes: slotMinutes, PixelsPerSlot: pixelsPerSlot}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Validate reports ErrInvalidGrid unless the day is non-empty and slots have
// a positive size. The zero Grid is invalid.
func (g Grid) Validate() error {
	if g.End <= g.Anchor {
		return fmt.Errorf("%w: end %s not after anchor %s", ErrInvalidGrid, FormatClock(g.End), FormatClock(g.Anchor))
	}
	if g.SlotMinutes <= 0 || g.PixelsPerSlot <= 0 {
		return fmt.Errorf("%w: slot %dmin / %gpx", ErrInvalidGrid, g.SlotMinutes, g.PixelsPerSlot)
	}
	return nil
}

// ParseClock returns minutes since midnight for a 24h "H:MM" or "HH:MM".
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock is the inverse of ParseClock.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Rect is a vertical placement in pixels. Heights may be fractional when a
// duration is not a multiple of the slot; rounding is left to the renderer.
type Rect struct {
	Top    float64
	Height float64
}

func (g Grid) Place(start string, durationMinutes int) (Rect, error) {
	if err := g.Validate(); err != nil {
		return Rect{}, err
	}
	m, err := ParseClock(start)
	if err != nil {
		return Rect{}, err
	}
	if durationMinutes <= 0 {
		return Rect{}, fmt.Errorf("%w: %d", ErrInvalidDuration, durationMinutes)
	}
	if m < g.Anchor {
		return Rect{}, fmt.Errorf("%w: %s < %s", ErrBeforeAnchor, start, FormatClock(g.Anchor))
	}
	slot := float64(g.SlotMinutes)
	return Rect{
		Top:    float64(m-g.Anchor) / slot * g.PixelsPerSlot,
		Height: float64(durationMinutes) / slot * g.PixelsPerSlot,
	}, nil
}

type Block struct {
	Appointment model.Appointment
	Rect
}

// Layout places every appointment in input order. Appointments sharing a
// start time get the same offset and stack.
func (g Grid) Layout(appts []model.Appointment) ([]Block, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	out := make([]Block, 0, len(appts))
	for _, a := range appts {
		r, err := g.Place(a.Start, a.DurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("appointment %d: %w", a.ID, err)
		}
		out = append(out, Block{Appointment: a, Rect: r})
	}
	return out, nil
}

// Slots returns the row labels from anchor to end, both included. An invalid
// grid has no rows.
func (g Grid) Slots() []string {
	if g.Validate() != nil {
		return nil
	}
	var out []string
	for m := g.Anchor; m <= g.End; m += g.SlotMinutes {
		out = append(out, FormatClock(m))
	}
	return out
}

// Occupancy is the share of the open day covered by appointments, in [0,1].
// Parts of an appointment outside the grid do not count.
func (g Grid) Occupancy(appts []model.Appointment) (float64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}
	booked := 0
	for _, a := range appts {
		start, err := ParseClock(a.Start)
		if err != nil {
			return 0, fmt.Errorf("appointment %d: %w", a.ID, err)
		}
		if a.DurationMinutes <= 0 {
			return 0, fmt.Errorf("appointment %d: %w", a.ID, ErrInvalidDuration)
		}
		lo, hi := max(start, g.Anchor), min(start+a.DurationMinutes, g.End)
		if hi > lo {
			booked += hi - lo
		}
	}
	return min(float64(booked)/float64(g.End-g.Anchor), 1), nil
}

package planning

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dental-practice-api/internal/model"
)

func TestPlaceExample(t *testing.T) {
	r, err := DefaultGrid().Place("09:00", 30)
	require.NoError(t, err)
	assert.Equal(t, Rect{Top: 120, Height: 60}, r)
}

func TestPlaceAtAnchor(t *testing.T) {
	r, err := DefaultGrid().Place("08:00", 45)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Top)
	assert.Equal(t, 90.0, r.Height)
}

func TestPlaceFractionalHeight(t *testing.T) {
	r, err := DefaultGrid().Place("11:45", 20)
	require.NoError(t, err)
	assert.Equal(t, 450.0, r.Top)
	assert.InDelta(t, 40.0, r.Height, 1e-9)

	r, err = DefaultGrid().Place("10:00", 25)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, r.Height, 1e-9)
}

func TestPlaceTopMonotonic(t *testing.T) {
	g := DefaultGrid()
	prev := -1.0
	for m := g.Anchor; m <= 20*60; m += 5 {
		r, err := g.Place(FormatClock(m), 30)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.Top, 0.0)
		assert.Greater(t, r.Top, prev, "start %s", FormatClock(m))
		prev = r.Top
	}
}

func TestPlaceHeightProportional(t *testing.T) {
	g := DefaultGrid()
	for _, d := range []int{5, 15, 30, 45, 90} {
		a, err := g.Place("10:00", d)
		require.NoError(t, err)
		b, err := g.Place("10:00", 2*d)
		require.NoError(t, err)
		assert.InDelta(t, 2*a.Height, b.Height, 1e-9, "duration %d", d)
	}
}

func TestPlaceErrors(t *testing.T) {
	g := DefaultGrid()
	tests := []struct {
		name     string
		start    string
		duration int
		want     error
	}{
		{"empty", "", 30, ErrInvalidTimeFormat},
		{"no colon", "0900", 30, ErrInvalidTimeFormat},
		{"hour out of range", "24:00", 30, ErrInvalidTimeFormat},
		{"minute out of range", "09:60", 30, ErrInvalidTimeFormat},
		{"single digit minute", "9:5", 30, ErrInvalidTimeFormat},
		{"trailing text", "09:00am", 30, ErrInvalidTimeFormat},
		{"zero duration", "09:00", 0, ErrInvalidDuration},
		{"negative duration", "09:00", -15, ErrInvalidDuration},
		{"before anchor", "07:30", 30, ErrBeforeAnchor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Place(tt.start, tt.duration)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseClockSingleDigitHour(t *testing.T) {
	m, err := ParseClock("9:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)
	assert.Equal(t, "09:30", FormatClock(m))
}

func TestLayoutStacksSameStart(t *testing.T) {
	appts := []model.Appointment{
		{ID: 1, Start: "09:00", DurationMinutes: 30, Status: model.Confirmed},
		{ID: 2, Start: "09:00", DurationMinutes: 60, Status: model.Urgent},
		{ID: 3, Start: "08:30", DurationMinutes: 30, Status: model.Waiting},
	}
	blocks, err := DefaultGrid().Layout(appts)
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	var ids []int
	for _, b := range blocks {
		ids = append(ids, b.Appointment.ID)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, ids); diff != "" {
		t.Errorf("order changed (-want +got):\n%s", diff)
	}
	assert.Equal(t, blocks[0].Top, blocks[1].Top)
	assert.Equal(t, 60.0, blocks[0].Height)
	assert.Equal(t, 120.0, blocks[1].Height)
	assert.Equal(t, 60.0, blocks[2].Top)
}

func TestLayoutNamesFailingAppointment(t *testing.T) {
	_, err := DefaultGrid().Layout([]model.Appointment{
		{ID: 1, Start: "09:00", DurationMinutes: 30},
		{ID: 7, Start: "9h00", DurationMinutes: 30},
	})
	require.ErrorIs(t, err, ErrInvalidTimeFormat)
	assert.Contains(t, err.Error(), "appointment 7")
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid("08:00", "18:00", 30, 60)
	require.NoError(t, err)
	assert.Equal(t, DefaultGrid(), g)

	for _, tc := range []struct {
		anchor, end string
		slot        int
		px          float64
	}{
		{"8h", "18:00", 30, 60},
		{"08:00", "08:00", 30, 60},
		{"08:00", "18:00", 0, 60},
		{"08:00", "18:00", 30, 0},
	} {
		_, err := NewGrid(tc.anchor, tc.end, tc.slot, tc.px)
		assert.ErrorIs(t, err, ErrInvalidGrid, "%+v", tc)
	}
}

func TestZeroGridIsInvalid(t *testing.T) {
	var g Grid
	require.ErrorIs(t, g.Validate(), ErrInvalidGrid)

	_, err := g.Place("09:00", 30)
	assert.ErrorIs(t, err, ErrInvalidGrid)

	_, err = g.Layout([]model.Appointment{{ID: 1, Start: "09:00", DurationMinutes: 30}})
	assert.ErrorIs(t, err, ErrInvalidGrid)

	_, err = g.Layout(nil)
	assert.ErrorIs(t, err, ErrInvalidGrid)

	_, err = g.Occupancy(nil)
	assert.ErrorIs(t, err, ErrInvalidGrid)

	assert.Nil(t, g.Slots())
	assert.Nil(t, Grid{Anchor: 480, End: 1080}.Slots())
	assert.Nil(t, Grid{Anchor: 480, End: 1080, SlotMinutes: -30, PixelsPerSlot: 60}.Slots())
}

func TestSlots(t *testing.T) {
	s := DefaultGrid().Slots()
	require.Len(t, s, 21)
	assert.Equal(t, "08:00", s[0])
	assert.Equal(t, "08:30", s[1])
	assert.Equal(t, "18:00", s[20])
}

func TestOccupancy(t *testing.T) {
	g := DefaultGrid()
	occ, err := g.Occupancy([]model.Appointment{
		{ID: 1, Start: "09:00", DurationMinutes: 60},
		{ID: 2, Start: "14:00", DurationMinutes: 90},
		{ID: 3, Start: "17:30", DurationMinutes: 60}, // half outside
	})
	require.NoError(t, err)
	assert.InDelta(t, 180.0/600.0, occ, 1e-9)

	full, err := g.Occupancy([]model.Appointment{
		{ID: 1, Start: "08:00", DurationMinutes: 600},
		{ID: 2, Start: "08:00", DurationMinutes: 600},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, full)

	_, err = g.Occupancy([]model.Appointment{{ID: 4, Start: "x", DurationMinutes: 30}})
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestStepAndFormatDay(t *testing.T) {
	day := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "lundi 8 janvier 2024", FormatDay(day))
	assert.Equal(t, "mardi 9 janvier 2024", FormatDay(Step(day, DayView, 1)))
	assert.Equal(t, "lundi 1 janvier 2024", FormatDay(Step(day, WeekView, -1)))
	assert.Equal(t, "dimanche 31 décembre 2023", FormatDay(Step(day, DayView, -8)))
}

func TestParseView(t *testing.T) {
	v, err := ParseView("")
	require.NoError(t, err)
	assert.Equal(t, DayView, v)

	v, err = ParseView("week")
	require.NoError(t, err)
	assert.Equal(t, WeekView, v)

	_, err = ParseView("month")
	assert.ErrorIs(t, err, ErrInvalidView)
}

func TestSummarizeAndUpcoming(t *testing.T) {
	appts := []model.Appointment{
		{ID: 1, Start: "14:00", Status: model.Urgent},
		{ID: 2, Start: "09:30", Status: model.Confirmed},
		{ID: 3, Start: "10:30", Status: model.Waiting},
		{ID: 4, Start: "09:30", Status: model.Confirmed},
	}
	assert.Equal(t, Summary{Total: 4, Confirmed: 2, Waiting: 1, Urgent: 1}, Summarize(appts))

	var ids []int
	for _, a := range Upcoming(appts, 3) {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int{2, 4, 3}, ids)
	assert.Len(t, Upcoming(appts, 10), 4)
	assert.Equal(t, 1, appts[0].ID, "input must not be reordered")
}

package planning

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"dental-practice-api/internal/model"
)

var ErrInvalidView = errors.New("invalid view")

type View int

const (
	DayView View = iota
	WeekView
)

// ParseView accepts "day", "week" and "" (day).
func ParseView(s string) (View, error) {
	switch s {
	case "", "day":
		return DayView, nil
	case "week":
		return WeekView, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidView, s)
}

func (v View) String() string {
	if v == WeekView {
		return "week"
	}
	return "day"
}

// Step moves day by n days in day view or n weeks in week view.
func Step(day time.Time, v View, n int) time.Time {
	if v == WeekView {
		n *= 7
	}
	return day.AddDate(0, 0, n)
}

type Summary struct {
	Total     int
	Confirmed int
	Waiting   int
	Urgent    int
}

func Summarize(appts []model.Appointment) Summary {
	s := Summary{Total: len(appts)}
	for _, a := range appts {
		switch a.Status {
		case model.Confirmed:
			s.Confirmed++
		case model.Waiting:
			s.Waiting++
		case model.Urgent:
			s.Urgent++
		}
	}
	return s
}

// ByStart returns a copy of appts ordered by start time. Ties and
// unparseable starts keep their input order.
func ByStart(appts []model.Appointment) []model.Appointment {
	out := slices.Clone(appts)
	slices.SortStableFunc(out, func(a, b model.Appointment) int {
		ma, errA := ParseClock(a.Start)
		mb, errB := ParseClock(b.Start)
		if errA != nil || errB != nil {
			return 0
		}
		return ma - mb
	})
	return out
}

// Upcoming returns the first n appointments by start time.
func Upcoming(appts []model.Appointment, n int) []model.Appointment {
	out := ByStart(appts)
	if n < len(out) {
		out = out[:n]
	}
	return out
}

var (
	weekdaysFR = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}
	monthsFR   = [...]string{"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"}
)

// FormatDay renders a long French date, e.g. "lundi 8 janvier 2024".
func FormatDay(day time.Time) string {
	return fmt.Sprintf("%s %d %s %d",
		weekdaysFR[day.Weekday()], day.Day(), monthsFR[day.Month()-1], day.Year())
}

package model

import "time"

// DateLayout is the civil date format used on the wire and in seed files.
const DateLayout = "2006-01-02"

type Patient struct {
	ID              int
	Name            string
	Age             int
	Phone           string
	Email           string
	LastVisit       time.Time
	NextAppointment time.Time
	Status          PatientStatus
	Treatments      []string
}

type Appointment struct {
	ID              int
	Date            time.Time // zero = every day
	Start           string    // HH:MM
	DurationMinutes int
	PatientName     string
	TreatmentType   string
	Status          AppointmentStatus
}

// OnDay reports whether the appointment is scheduled on day.
func (a Appointment) OnDay(day time.Time) bool {
	if a.Date.IsZero() {
		return true
	}
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

type Treatment struct {
	ID          int
	PatientName string
	Type        string
	StartDate   time.Time
	EndDate     time.Time
	Status      TreatmentStatus
	Progress    int
	NextSession *time.Time
	Cost        float64
	Notes       string
	Sessions    []Session
}

type Session struct {
	Date        time.Time
	Description string
	Completed   bool
}

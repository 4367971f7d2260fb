package store

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"dental-practice-api/internal/model"
	"dental-practice-api/internal/planning"
)

// Memory serves records held in process, typically loaded from a seed file.
type Memory struct {
	patients     []model.Patient
	treatments   []model.Treatment
	appointments []model.Appointment
}

func NewMemory(patients []model.Patient, treatments []model.Treatment, appointments []model.Appointment) *Memory {
	return &Memory{patients: patients, treatments: treatments, appointments: appointments}
}

func (m *Memory) Patients(context.Context) ([]model.Patient, error) {
	return slices.Clone(m.patients), nil
}

func (m *Memory) Treatments(context.Context) ([]model.Treatment, error) {
	return slices.Clone(m.treatments), nil
}

// Appointments returns the day's appointments plus the undated daily ones,
// ordered by start time then id like Store.Appointments.
func (m *Memory) Appointments(_ context.Context, day time.Time) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, a := range m.appointments {
		if a.OnDay(day) {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b model.Appointment) int {
		return cmp.Or(startMinutes(a)-startMinutes(b), a.ID-b.ID)
	})
	return out, nil
}

// startMinutes sorts unparsable starts first; the layout rejects them anyway.
func startMinutes(a model.Appointment) int {
	m, err := planning.ParseClock(a.Start)
	if err != nil {
		return -1
	}
	return m
}

// seed file layout
type seedFile struct {
	Patients []struct {
		ID              int      `yaml:"id"`
		Name            string   `yaml:"name"`
		Age             int      `yaml:"age"`
		Phone           string   `yaml:"phone"`
		Email           string   `yaml:"email"`
		LastVisit       string   `yaml:"last_visit"`
		NextAppointment string   `yaml:"next_appointment"`
		Status          string   `yaml:"status"`
		Treatments      []string `yaml:"treatments"`
	} `yaml:"patients"`
	Treatments []struct {
		ID          int     `yaml:"id"`
		Patient     string  `yaml:"patient"`
		Type        string  `yaml:"type"`
		StartDate   string  `yaml:"start_date"`
		EndDate     string  `yaml:"end_date"`
		Status      string  `yaml:"status"`
		Progress    int     `yaml:"progress"`
		NextSession string  `yaml:"next_session"`
		Cost        float64 `yaml:"cost"`
		Notes       string  `yaml:"notes"`
		Sessions    []struct {
			Date        string `yaml:"date"`
			Description string `yaml:"description"`
			Completed   bool   `yaml:"completed"`
		} `yaml:"sessions"`
	} `yaml:"treatments"`
	Appointments []struct {
		ID       int    `yaml:"id"`
		Date     string `yaml:"date"`
		Start    string `yaml:"start"`
		Duration int    `yaml:"duration"`
		Patient  string `yaml:"patient"`
		Type     string `yaml:"type"`
		Status   string `yaml:"status"`
	} `yaml:"appointments"`
}

func LoadSeed(path string) (*Memory, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	m, err := ParseSeed(b)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return m, nil
}

// ParseSeed decodes and validates a YAML seed document.
func ParseSeed(b []byte) (*Memory, error) {
	var f seedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}

	m := &Memory{}
	for _, r := range f.Patients {
		p := model.Patient{
			ID: r.ID, Name: r.Name, Age: r.Age, Phone: r.Phone, Email: r.Email,
			Treatments: r.Treatments,
		}
		var err error
		if p.LastVisit, err = parseDate(r.LastVisit); err != nil {
			return nil, fmt.Errorf("patient %d: last_visit: %w", r.ID, err)
		}
		if p.NextAppointment, err = parseDate(r.NextAppointment); err != nil {
			return nil, fmt.Errorf("patient %d: next_appointment: %w", r.ID, err)
		}
		if p.Status, err = model.ParsePatientStatus(r.Status); err != nil {
			return nil, fmt.Errorf("patient %d: %w", r.ID, err)
		}
		m.patients = append(m.patients, p)
	}

	for _, r := range f.Treatments {
		t := model.Treatment{
			ID: r.ID, PatientName: r.Patient, Type: r.Type,
			Progress: r.Progress, Cost: r.Cost, Notes: r.Notes,
		}
		if r.Progress < 0 || r.Progress > 100 {
			return nil, fmt.Errorf("treatment %d: progress %d out of [0,100]", r.ID, r.Progress)
		}
		var err error
		if t.StartDate, err = parseDate(r.StartDate); err != nil {
			return nil, fmt.Errorf("treatment %d: start_date: %w", r.ID, err)
		}
		if t.EndDate, err = parseDate(r.EndDate); err != nil {
			return nil, fmt.Errorf("treatment %d: end_date: %w", r.ID, err)
		}
		if r.NextSession != "" {
			next, err := parseDate(r.NextSession)
			if err != nil {
				return nil, fmt.Errorf("treatment %d: next_session: %w", r.ID, err)
			}
			t.NextSession = &next
		}
		if t.Status, err = model.ParseTreatmentStatus(r.Status); err != nil {
			return nil, fmt.Errorf("treatment %d: %w", r.ID, err)
		}
		for i, s := range r.Sessions {
			d, err := parseDate(s.Date)
			if err != nil {
				return nil, fmt.Errorf("treatment %d: session %d: %w", r.ID, i, err)
			}
			t.Sessions = append(t.Sessions, model.Session{Date: d, Description: s.Description, Completed: s.Completed})
		}
		m.treatments = append(m.treatments, t)
	}

	for _, r := range f.Appointments {
		a := model.Appointment{
			ID: r.ID, Start: r.Start, DurationMinutes: r.Duration,
			PatientName: r.Patient, TreatmentType: r.Type,
		}
		var err error
		if a.Date, err = parseDate(r.Date); err != nil {
			return nil, fmt.Errorf("appointment %d: date: %w", r.ID, err)
		}
		if _, err := planning.ParseClock(r.Start); err != nil {
			return nil, fmt.Errorf("appointment %d: %w", r.ID, err)
		}
		if r.Duration <= 0 {
			return nil, fmt.Errorf("appointment %d: %w", r.ID, planning.ErrInvalidDuration)
		}
		if a.Status, err = model.ParseAppointmentStatus(r.Status); err != nil {
			return nil, fmt.Errorf("appointment %d: %w", r.ID, err)
		}
		m.appointments = append(m.appointments, a)
	}
	return m, nil
}

// empty string = zero time
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(model.DateLayout, s)
}

package store

import (
	"context"
	"fmt"
	"time"

	"dental-practice-api/internal/model"
)

// Appointments returns the day's appointments plus the undated daily ones,
// ordered by start time.
func (s *Store) Appointments(ctx context.Context, day time.Time) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, day, to_char(start_time, 'HH24:MI'), duration_minutes,
		        patient_name, treatment_type, status
		 FROM appointments
		 WHERE day IS NULL OR day = $1
		 ORDER BY start_time, id`, day.Format(model.DateLayout),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var (
			a      model.Appointment
			date   *time.Time
			status string
		)
		if err := rows.Scan(
			&a.ID, &date, &a.Start, &a.DurationMinutes,
			&a.PatientName, &a.TreatmentType, &status,
		); err != nil {
			return nil, err
		}
		if date != nil {
			a.Date = *date
		}
		if a.Status, err = model.ParseAppointmentStatus(status); err != nil {
			return nil, fmt.Errorf("appointment %d: %w", a.ID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

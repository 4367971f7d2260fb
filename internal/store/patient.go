package store

import (
	"context"
	"fmt"
	"time"

	"dental-practice-api/internal/model"
)

func (s *Store) Patients(ctx context.Context) ([]model.Patient, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT p.id, p.name, p.age, p.phone, p.email, p.last_visit, p.next_appointment, p.status,
		        COALESCE(array_agg(pt.label ORDER BY pt.position)
		                 FILTER (WHERE pt.label IS NOT NULL), '{}')
		 FROM patients p
		 LEFT JOIN patient_treatments pt ON pt.patient_id = p.id
		 GROUP BY p.id
		 ORDER BY p.id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Patient
	for rows.Next() {
		var (
			p      model.Patient
			next   *time.Time
			status string
		)
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Age, &p.Phone, &p.Email, &p.LastVisit, &next, &status,
			&p.Treatments,
		); err != nil {
			return nil, err
		}
		if next != nil {
			p.NextAppointment = *next
		}
		if p.Status, err = model.ParsePatientStatus(status); err != nil {
			return nil, fmt.Errorf("patient %d: %w", p.ID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

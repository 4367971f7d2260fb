package store

import (
	"context"
	"fmt"

	"dental-practice-api/internal/model"
)

func (s *Store) Treatments(ctx context.Context) ([]model.Treatment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, patient_name, type, start_date, end_date, status,
		        progress, next_session, cost, notes
		 FROM treatments
		 ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Treatment
	idx := map[int]int{}
	for rows.Next() {
		var (
			t      model.Treatment
			status string
		)
		if err := rows.Scan(
			&t.ID, &t.PatientName, &t.Type, &t.StartDate, &t.EndDate, &status,
			&t.Progress, &t.NextSession, &t.Cost, &t.Notes,
		); err != nil {
			return nil, err
		}
		if t.Status, err = model.ParseTreatmentStatus(status); err != nil {
			return nil, fmt.Errorf("treatment %d: %w", t.ID, err)
		}
		idx[t.ID] = len(out)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// load sessions
	srows, err := s.pool.Query(ctx,
		`SELECT treatment_id, date, description, completed
		 FROM treatment_sessions
		 ORDER BY treatment_id, position`,
	)
	if err != nil {
		return nil, err
	}
	defer srows.Close()

	for srows.Next() {
		var (
			tid  int
			sess model.Session
		)
		if err := srows.Scan(&tid, &sess.Date, &sess.Description, &sess.Completed); err != nil {
			return nil, err
		}
		if i, ok := idx[tid]; ok {
			out[i].Sessions = append(out[i].Sessions, sess)
		}
	}
	return out, srows.Err()
}

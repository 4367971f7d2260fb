package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dental-practice-api/internal/model"
	"dental-practice-api/internal/store"
)

// ids far from any real rows
const base = 900000

func setup(t *testing.T) (*store.Store, *pgxpool.Pool) {
	t.Helper()
	_ = godotenv.Load("../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	migration, err := os.ReadFile("../../db/migrations/001_init.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(migration))
	require.NoError(t, err)

	cleanup := func() {
		pool.Exec(ctx, `DELETE FROM appointments WHERE id >= $1`, base)
		pool.Exec(ctx, `DELETE FROM treatments WHERE id >= $1`, base)
		pool.Exec(ctx, `DELETE FROM patients WHERE id >= $1`, base)
	}
	cleanup()
	t.Cleanup(cleanup)
	return store.New(pool), pool
}

func TestStorePatients(t *testing.T) {
	st, pool := setup(t)
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO patients (id, name, age, phone, email, last_visit, next_appointment, status)
		 VALUES ($1, 'Marie Durand', 34, '06 12 34 56 78', 'marie.durand@email.com', '2024-01-03', NULL, 'actif')`, base)
	require.NoError(t, err)
	_, err = pool.Exec(ctx,
		`INSERT INTO patient_treatments (patient_id, position, label) VALUES ($1, 2, 'Plombage'), ($1, 1, 'Détartrage')`, base)
	require.NoError(t, err)

	ps, err := st.Patients(ctx)
	require.NoError(t, err)

	var got *model.Patient
	for i := range ps {
		if ps[i].ID == base {
			got = &ps[i]
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, model.Active, got.Status)
	assert.Equal(t, []string{"Détartrage", "Plombage"}, got.Treatments)
	assert.True(t, got.NextAppointment.IsZero())
}

func TestStoreTreatmentsWithSessions(t *testing.T) {
	st, pool := setup(t)
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO treatments (id, patient_name, type, start_date, end_date, status, progress, next_session, cost, notes)
		 VALUES ($1, 'Pierre Leroy', 'Couronne céramique', '2023-12-20', '2024-01-15', 'en_cours', 75, '2024-01-15', 600, '')`, base)
	require.NoError(t, err)
	_, err = pool.Exec(ctx,
		`INSERT INTO treatment_sessions (treatment_id, position, date, description, completed)
		 VALUES ($1, 1, '2023-12-20', 'Préparation de la dent', true),
		        ($1, 2, '2024-01-15', 'Pose de la couronne', false)`, base)
	require.NoError(t, err)

	ts, err := st.Treatments(ctx)
	require.NoError(t, err)

	var got *model.Treatment
	for i := range ts {
		if ts[i].ID == base {
			got = &ts[i]
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, model.InProgress, got.Status)
	assert.Equal(t, 600.0, got.Cost)
	require.NotNil(t, got.NextSession)
	require.Len(t, got.Sessions, 2)
	assert.Equal(t, "Préparation de la dent", got.Sessions[0].Description)
	assert.True(t, got.Sessions[0].Completed)
}

func TestStoreAppointmentsByDay(t *testing.T) {
	st, pool := setup(t)
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO appointments (id, day, start_time, duration_minutes, patient_name, treatment_type, status)
		 VALUES ($1, NULL, '09:00', 30, 'Marie Durand', 'Contrôle', 'confirmed'),
		        ($1 + 1, '2030-05-06', '08:30', 45, 'Jean Martin', 'Détartrage', 'waiting'),
		        ($1 + 2, '2030-05-07', '10:00', 60, 'Sophie Bernard', 'Implant', 'urgent')`, base)
	require.NoError(t, err)

	day := time.Date(2030, 5, 6, 0, 0, 0, 0, time.UTC)
	as, err := st.Appointments(ctx, day)
	require.NoError(t, err)

	var mine []model.Appointment
	for _, a := range as {
		if a.ID >= base {
			mine = append(mine, a)
		}
	}
	require.Len(t, mine, 2)
	assert.Equal(t, "08:30", mine[0].Start)
	assert.Equal(t, model.Waiting, mine[0].Status)
	assert.Equal(t, "09:00", mine[1].Start)
	assert.True(t, mine[1].Date.IsZero())
}

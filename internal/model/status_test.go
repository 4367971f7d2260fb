package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppointmentStatus(t *testing.T) {
	for _, code := range []string{"confirmed", "waiting", "urgent"} {
		st, err := ParseAppointmentStatus(code)
		require.NoError(t, err)
		assert.Equal(t, code, st.String())
	}

	_, err := ParseAppointmentStatus("Confirmed")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestStatusZeroValueInvalid(t *testing.T) {
	var a AppointmentStatus
	var p PatientStatus
	var tr TreatmentStatus
	assert.False(t, a.Valid())
	assert.False(t, p.Valid())
	assert.False(t, tr.Valid())

	_, err := a.MarshalText()
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestTreatmentStatusText(t *testing.T) {
	var st TreatmentStatus
	require.NoError(t, st.UnmarshalText([]byte("termine")))
	assert.Equal(t, Finished, st)
	assert.Equal(t, "Terminé", st.Label())

	b, err := Planned.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "planifie", string(b))

	assert.Error(t, st.UnmarshalText([]byte("done")))
	assert.Equal(t, Finished, st, "failed unmarshal must not clobber")
}

func TestPatientStatusLabel(t *testing.T) {
	st, err := ParsePatientStatus("traitement_en_cours")
	require.NoError(t, err)
	assert.Equal(t, "Traitement en cours", st.Label())
}

func TestAppointmentOnDay(t *testing.T) {
	day := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	daily := Appointment{ID: 1}
	assert.True(t, daily.OnDay(day))

	dated := Appointment{ID: 2, Date: day.Add(10 * time.Hour)}
	assert.True(t, dated.OnDay(day))
	assert.False(t, dated.OnDay(day.AddDate(0, 0, 1)))
}

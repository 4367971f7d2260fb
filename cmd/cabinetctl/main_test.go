package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seed = "../../db/seed/cabinet.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SEED_FILE", "")
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--seed", seed))
	err := root.Execute()
	return out.String(), err
}

func TestPlanningCommand(t *testing.T) {
	out, err := run(t, "planning", "--date", "2024-01-08")
	require.NoError(t, err)
	assert.Contains(t, out, "lundi 8 janvier 2024")
	assert.Contains(t, out, "2024-01-07 | 2024-01-09")
	assert.Contains(t, out, "top=120")
	assert.Contains(t, out, "Thomas Lefevre")
	assert.Contains(t, out, "8 rendez-vous: 5 confirmés, 1 en attente, 2 urgents")
}

func TestPlanningWeekStep(t *testing.T) {
	out, err := run(t, "planning", "--date", "2024-01-08", "--view", "week")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-01 | 2024-01-15")
}

func TestPatientsCommand(t *testing.T) {
	out, err := run(t, "patients", "06 12")
	require.NoError(t, err)
	assert.Contains(t, out, "Marie Durand")
	assert.NotContains(t, out, "Jean Martin")
}

func TestPatientsNotFound(t *testing.T) {
	out, err := run(t, "patients", "nobody")
	require.NoError(t, err)
	assert.Contains(t, out, `Aucun patient trouvé pour "nobody"`)
}

func TestTreatmentsCommand(t *testing.T) {
	out, err := run(t, "treatments", "--status", "termine")
	require.NoError(t, err)
	assert.Contains(t, out, "Détartrage complet")
	assert.Contains(t, out, "[x] 2024-01-05")
	assert.NotContains(t, out, "Implant dentaire")
}

func TestTreatmentsBadStatus(t *testing.T) {
	_, err := run(t, "treatments", "--status", "fini")
	assert.Error(t, err)
}

func TestDashboardCommand(t *testing.T) {
	out, err := run(t, "dashboard", "--date", "2024-01-09")
	require.NoError(t, err)
	assert.Contains(t, out, "Patients total     4")
	assert.Contains(t, out, "RDV aujourd'hui    7 (1 en attente)")
	assert.Contains(t, out, "Revenus du mois    1280.00€")
	assert.Contains(t, out, "Taux occupation    55%")
}

func TestMissingSeed(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"patients", "--seed", "missing.yaml"})
	root.SetOut(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}

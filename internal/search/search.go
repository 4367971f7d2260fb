// Package search filters patient and treatment records by free text.
//
// Filters are plain predicates evaluated over the whole input on every call.
// There is no index.
package search

import (
	"fmt"
	"strings"

	"dental-practice-api/internal/model"
)

// AllStatuses disables the treatment status filter.
const AllStatuses model.TreatmentStatus = 0

// Match reports whether term is a case-insensitive substring of any field.
// An empty term matches everything.
func Match(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Patients keeps the records whose name, phone or email contains term.
func Patients(records []model.Patient, term string) []model.Patient {
	out := make([]model.Patient, 0, len(records))
	for _, p := range records {
		if Match(term, p.Name, p.Phone, p.Email) {
			out = append(out, p)
		}
	}
	return out
}

// Treatments keeps the records whose patient name or type contains term and,
// unless status is AllStatuses, whose status equals status.
func Treatments(records []model.Treatment, term string, status model.TreatmentStatus) []model.Treatment {
	out := make([]model.Treatment, 0, len(records))
	for _, t := range records {
		if status != AllStatuses && t.Status != status {
			continue
		}
		if Match(term, t.PatientName, t.Type) {
			out = append(out, t)
		}
	}
	return out
}

// ParseStatusFilter maps "" and "all" to AllStatuses, anything else must be
// a treatment status code.
func ParseStatusFilter(s string) (model.TreatmentStatus, error) {
	if s == "" || s == "all" {
		return AllStatuses, nil
	}
	st, err := model.ParseTreatmentStatus(s)
	if err != nil {
		return 0, fmt.Errorf("status filter: %w", err)
	}
	return st, nil
}

// PatientsNotFound is shown in place of an empty patient list. The term is
// quoted as typed.
func PatientsNotFound(term string) string {
	if term == "" {
		return "Aucun patient trouvé"
	}
	return `Aucun patient trouvé pour "` + term + `"`
}

// TreatmentsNotFound is shown in place of an empty treatment list.
func TreatmentsNotFound() string {
	return "Aucun traitement trouvé"
}

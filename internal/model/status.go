package model

import (
	"errors"
	"fmt"
)

var ErrUnknownStatus = errors.New("unknown status")

// AppointmentStatus is a closed set. The zero value is invalid.
type AppointmentStatus uint8

const (
	Confirmed AppointmentStatus = iota + 1
	Waiting
	Urgent
)

var appointmentCodes = map[AppointmentStatus]string{
	Confirmed: "confirmed",
	Waiting:   "waiting",
	Urgent:    "urgent",
}

func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	for st, code := range appointmentCodes {
		if code == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: appointment %q", ErrUnknownStatus, s)
}

func (s AppointmentStatus) Valid() bool {
	_, ok := appointmentCodes[s]
	return ok
}

func (s AppointmentStatus) String() string {
	if code, ok := appointmentCodes[s]; ok {
		return code
	}
	return fmt.Sprintf("AppointmentStatus(%d)", uint8(s))
}

func (s AppointmentStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, s)
	}
	return []byte(s.String()), nil
}

func (s *AppointmentStatus) UnmarshalText(b []byte) error {
	v, err := ParseAppointmentStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// PatientStatus is a closed set. The zero value is invalid.
type PatientStatus uint8

const (
	Active PatientStatus = iota + 1
	InTreatment
	FollowUp
)

var patientCodes = map[PatientStatus][2]string{
	Active:      {"actif", "Actif"},
	InTreatment: {"traitement_en_cours", "Traitement en cours"},
	FollowUp:    {"suivi", "Suivi"},
}

func ParsePatientStatus(s string) (PatientStatus, error) {
	for st, c := range patientCodes {
		if c[0] == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: patient %q", ErrUnknownStatus, s)
}

func (s PatientStatus) Valid() bool {
	_, ok := patientCodes[s]
	return ok
}

func (s PatientStatus) String() string {
	if c, ok := patientCodes[s]; ok {
		return c[0]
	}
	return fmt.Sprintf("PatientStatus(%d)", uint8(s))
}

// Label is the French display text.
func (s PatientStatus) Label() string {
	return patientCodes[s][1]
}

func (s PatientStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, s)
	}
	return []byte(s.String()), nil
}

func (s *PatientStatus) UnmarshalText(b []byte) error {
	v, err := ParsePatientStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// TreatmentStatus is a closed set. The zero value is invalid.
type TreatmentStatus uint8

const (
	InProgress TreatmentStatus = iota + 1
	Finished
	Planned
)

var treatmentCodes = map[TreatmentStatus][2]string{
	InProgress: {"en_cours", "En cours"},
	Finished:   {"termine", "Terminé"},
	Planned:    {"planifie", "Planifié"},
}

func ParseTreatmentStatus(s string) (TreatmentStatus, error) {
	for st, c := range treatmentCodes {
		if c[0] == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: treatment %q", ErrUnknownStatus, s)
}

func (s TreatmentStatus) Valid() bool {
	_, ok := treatmentCodes[s]
	return ok
}

func (s TreatmentStatus) String() string {
	if c, ok := treatmentCodes[s]; ok {
		return c[0]
	}
	return fmt.Sprintf("TreatmentStatus(%d)", uint8(s))
}

func (s TreatmentStatus) Label() string {
	return treatmentCodes[s][1]
}

func (s TreatmentStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, s)
	}
	return []byte(s.String()), nil
}

func (s *TreatmentStatus) UnmarshalText(b []byte) error {
	v, err := ParseTreatmentStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

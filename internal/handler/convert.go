package handler

import (
	"time"

	pb "dental-practice-api/api/practice/v1"
	"dental-practice-api/internal/model"
	"dental-practice-api/internal/planning"
)

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(model.DateLayout)
}

func toPatient(p *model.Patient) *pb.Patient {
	out := &pb.Patient{
		Id:              int32(p.ID),
		Name:            p.Name,
		Age:             int32(p.Age),
		Phone:           p.Phone,
		Email:           p.Email,
		LastVisit:       date(p.LastVisit),
		NextAppointment: date(p.NextAppointment),
		Status:          p.Status.String(),
		StatusLabel:     p.Status.Label(),
		Treatments:      p.Treatments,
	}
	if out.Treatments == nil {
		out.Treatments = []string{}
	}
	return out
}

func toTreatment(t *model.Treatment) *pb.Treatment {
	out := &pb.Treatment{
		Id:          int32(t.ID),
		Patient:     t.PatientName,
		Type:        t.Type,
		StartDate:   date(t.StartDate),
		EndDate:     date(t.EndDate),
		Status:      t.Status.String(),
		StatusLabel: t.Status.Label(),
		Progress:    int32(t.Progress),
		Cost:        t.Cost,
		Notes:       t.Notes,
		Sessions:    make([]*pb.Session, len(t.Sessions)),
	}
	if t.NextSession != nil {
		out.NextSession = date(*t.NextSession)
	}
	for i, s := range t.Sessions {
		out.Sessions[i] = &pb.Session{Date: date(s.Date), Description: s.Description, Completed: s.Completed}
	}
	return out
}

func toAppointment(a *model.Appointment) *pb.Appointment {
	return &pb.Appointment{
		Id:       int32(a.ID),
		Date:     date(a.Date),
		Start:    a.Start,
		Duration: int32(a.DurationMinutes),
		Patient:  a.PatientName,
		Type:     a.TreatmentType,
		Status:   a.Status.String(),
	}
}

func toAppointments(as []model.Appointment) []*pb.Appointment {
	out := make([]*pb.Appointment, len(as))
	for i := range as {
		out[i] = toAppointment(&as[i])
	}
	return out
}

func toBlock(b *planning.Block) *pb.Block {
	return &pb.Block{Appointment: toAppointment(&b.Appointment), Top: b.Top, Height: b.Height}
}

func toSummary(s planning.Summary) *pb.DaySummary {
	return &pb.DaySummary{
		Total:     int32(s.Total),
		Confirmed: int32(s.Confirmed),
		Waiting:   int32(s.Waiting),
		Urgent:    int32(s.Urgent),
	}
}

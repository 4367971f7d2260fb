package handler

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "dental-practice-api/api/practice/v1"
	"dental-practice-api/internal/model"
	"dental-practice-api/internal/planning"
)

const upcomingCount = 3

func (h *Handler) GetPlanning(ctx context.Context, req *pb.GetPlanningRequest) (*pb.GetPlanningResponse, error) {
	day, err := h.day(req.Date)
	if err != nil {
		return nil, err
	}
	view, err := planning.ParseView(req.View)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "view must be day or week")
	}

	appts, err := h.data.Appointments(ctx, day)
	if err != nil {
		return nil, h.internal(ctx, "load appointments", err)
	}

	blocks, err := h.grid.Layout(appts)
	if err != nil {
		// bad stored data, surface it instead of drawing garbage
		h.log.Warn("layout failed", zap.String("date", date(day)), zap.Error(err))
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}

	out := &pb.GetPlanningResponse{
		Date:     date(day),
		Label:    planning.FormatDay(day),
		View:     view.String(),
		Previous: date(planning.Step(day, view, -1)),
		Next:     date(planning.Step(day, view, 1)),
		Slots:    h.grid.Slots(),
		Blocks:   make([]*pb.Block, len(blocks)),
		Summary:  toSummary(planning.Summarize(appts)),
		Upcoming: toAppointments(planning.Upcoming(appts, upcomingCount)),
	}
	for i := range blocks {
		out.Blocks[i] = toBlock(&blocks[i])
	}
	return out, nil
}

func (h *Handler) GetDashboard(ctx context.Context, req *pb.GetDashboardRequest) (*pb.GetDashboardResponse, error) {
	day, err := h.day(req.Date)
	if err != nil {
		return nil, err
	}

	patients, err := h.data.Patients(ctx)
	if err != nil {
		return nil, h.internal(ctx, "load patients", err)
	}
	treatments, err := h.data.Treatments(ctx)
	if err != nil {
		return nil, h.internal(ctx, "load treatments", err)
	}
	appts, err := h.data.Appointments(ctx, day)
	if err != nil {
		return nil, h.internal(ctx, "load appointments", err)
	}

	occ, err := h.grid.Occupancy(appts)
	if err != nil {
		h.log.Warn("occupancy failed", zap.String("date", date(day)), zap.Error(err))
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	sum := planning.Summarize(appts)

	return &pb.GetDashboardResponse{
		Date: date(day),
		Stats: &pb.DashboardStats{
			TotalPatients:     int32(len(patients)),
			TodayAppointments: int32(sum.Total),
			Waiting:           int32(sum.Waiting),
			MonthRevenue:      monthRevenue(treatments, day),
			Occupancy:         occ,
		},
		Appointments:   toAppointments(planning.ByStart(appts)),
		RecentPatients: recentPatients(patients, upcomingCount),
	}, nil
}

// monthRevenue sums the cost of treatments started in day's month.
func monthRevenue(ts []model.Treatment, day time.Time) float64 {
	total := 0.0
	for _, t := range ts {
		if t.StartDate.Year() == day.Year() && t.StartDate.Month() == day.Month() {
			total += t.Cost
		}
	}
	return total
}

// most recent visit first
func recentPatients(ps []model.Patient, n int) []*pb.Patient {
	sorted := slices.Clone(ps)
	slices.SortStableFunc(sorted, func(a, b model.Patient) int {
		return b.LastVisit.Compare(a.LastVisit)
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	out := make([]*pb.Patient, len(sorted))
	for i := range sorted {
		out[i] = toPatient(&sorted[i])
	}
	return out
}

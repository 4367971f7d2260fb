package handler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "dental-practice-api/api/practice/v1"
	"dental-practice-api/internal/middleware"
	"dental-practice-api/internal/model"
	"dental-practice-api/internal/planning"
)

// Provider supplies the records the views are computed from. Appointments
// come back ordered by start time, then id.
type Provider interface {
	Patients(ctx context.Context) ([]model.Patient, error)
	Treatments(ctx context.Context) ([]model.Treatment, error)
	Appointments(ctx context.Context, day time.Time) ([]model.Appointment, error)
}

type Handler struct {
	pb.UnimplementedPracticeServiceServer
	data Provider
	grid planning.Grid
	log  *zap.Logger
	now  func() time.Time
}

type Option func(*Handler)

// WithClock overrides the clock used to resolve an empty date to today.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

func New(data Provider, grid planning.Grid, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{data: data, grid: grid, log: log, now: time.Now}
	for _, o := range opts {
		o(h)
	}
	return h
}

// day resolves a request date; empty means today.
func (h *Handler) day(s string) (time.Time, error) {
	if s == "" {
		y, m, d := h.now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, status.Error(codes.InvalidArgument, "date must be YYYY-MM-DD")
	}
	return t, nil
}

func (h *Handler) internal(ctx context.Context, what string, err error) error {
	h.log.Error(what, zap.String("request_id", middleware.RequestID(ctx)), zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}

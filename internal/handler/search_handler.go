package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "dental-practice-api/api/practice/v1"
	"dental-practice-api/internal/search"
)

func (h *Handler) ListPatients(ctx context.Context, req *pb.ListPatientsRequest) (*pb.ListPatientsResponse, error) {
	all, err := h.data.Patients(ctx)
	if err != nil {
		return nil, h.internal(ctx, "load patients", err)
	}

	found := search.Patients(all, req.Query)
	out := &pb.ListPatientsResponse{
		Patients: make([]*pb.Patient, len(found)),
		Total:    int32(len(found)),
	}
	for i := range found {
		out.Patients[i] = toPatient(&found[i])
	}
	if len(found) == 0 {
		out.NotFound = search.PatientsNotFound(req.Query)
	}
	return out, nil
}

func (h *Handler) ListTreatments(ctx context.Context, req *pb.ListTreatmentsRequest) (*pb.ListTreatmentsResponse, error) {
	st, err := search.ParseStatusFilter(req.Status)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "status must be all, en_cours, termine or planifie")
	}

	all, err := h.data.Treatments(ctx)
	if err != nil {
		return nil, h.internal(ctx, "load treatments", err)
	}

	found := search.Treatments(all, req.Query, st)
	out := &pb.ListTreatmentsResponse{
		Treatments: make([]*pb.Treatment, len(found)),
		Total:      int32(len(found)),
	}
	for i := range found {
		out.Treatments[i] = toTreatment(&found[i])
	}
	if len(found) == 0 {
		out.NotFound = search.TreatmentsNotFound()
	}
	return out, nil
}

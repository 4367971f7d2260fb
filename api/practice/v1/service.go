package practicev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dental-practice-api/internal/wire"
)

const ServiceName = "cabinet.v1.PracticeService"

const (
	GetDashboardMethod   = "/" + ServiceName + "/GetDashboard"
	ListPatientsMethod   = "/" + ServiceName + "/ListPatients"
	ListTreatmentsMethod = "/" + ServiceName + "/ListTreatments"
	GetPlanningMethod    = "/" + ServiceName + "/GetPlanning"
)

type PracticeServiceServer interface {
	GetDashboard(context.Context, *GetDashboardRequest) (*GetDashboardResponse, error)
	ListPatients(context.Context, *ListPatientsRequest) (*ListPatientsResponse, error)
	ListTreatments(context.Context, *ListTreatmentsRequest) (*ListTreatmentsResponse, error)
	GetPlanning(context.Context, *GetPlanningRequest) (*GetPlanningResponse, error)
}

// UnimplementedPracticeServiceServer can be embedded for forward compatibility.
type UnimplementedPracticeServiceServer struct{}

func (UnimplementedPracticeServiceServer) GetDashboard(context.Context, *GetDashboardRequest) (*GetDashboardResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDashboard not implemented")
}
func (UnimplementedPracticeServiceServer) ListPatients(context.Context, *ListPatientsRequest) (*ListPatientsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPatients not implemented")
}
func (UnimplementedPracticeServiceServer) ListTreatments(context.Context, *ListTreatmentsRequest) (*ListTreatmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTreatments not implemented")
}
func (UnimplementedPracticeServiceServer) GetPlanning(context.Context, *GetPlanningRequest) (*GetPlanningResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPlanning not implemented")
}

func RegisterPracticeServiceServer(s grpc.ServiceRegistrar, srv PracticeServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type methodHandler = func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error)

// unary builds a grpc.MethodDesc handler that decodes Req and calls call.
func unary[Req any, Resp any](method string, call func(PracticeServiceServer, context.Context, *Req) (*Resp, error)) methodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PracticeServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PracticeServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PracticeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetDashboard", Handler: unary(GetDashboardMethod, PracticeServiceServer.GetDashboard)},
		{MethodName: "ListPatients", Handler: unary(ListPatientsMethod, PracticeServiceServer.ListPatients)},
		{MethodName: "ListTreatments", Handler: unary(ListTreatmentsMethod, PracticeServiceServer.ListTreatments)},
		{MethodName: "GetPlanning", Handler: unary(GetPlanningMethod, PracticeServiceServer.GetPlanning)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cabinet/v1/practice",
}

// Client calls the service with the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(wire.Name)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDashboard(ctx context.Context, in *GetDashboardRequest, opts ...grpc.CallOption) (*GetDashboardResponse, error) {
	return invoke[GetDashboardResponse](ctx, c.cc, GetDashboardMethod, in, opts)
}

func (c *Client) ListPatients(ctx context.Context, in *ListPatientsRequest, opts ...grpc.CallOption) (*ListPatientsResponse, error) {
	return invoke[ListPatientsResponse](ctx, c.cc, ListPatientsMethod, in, opts)
}

func (c *Client) ListTreatments(ctx context.Context, in *ListTreatmentsRequest, opts ...grpc.CallOption) (*ListTreatmentsResponse, error) {
	return invoke[ListTreatmentsResponse](ctx, c.cc, ListTreatmentsMethod, in, opts)
}

func (c *Client) GetPlanning(ctx context.Context, in *GetPlanningRequest, opts ...grpc.CallOption) (*GetPlanningResponse, error) {
	return invoke[GetPlanningResponse](ctx, c.cc, GetPlanningMethod, in, opts)
}

package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// ProjectionServiceName is the fully-qualified gRPC service name
const ProjectionServiceName = "tokenvest.v1.ProjectionService"

const (
	ProjectRealEstateMethod    = "/" + ProjectionServiceName + "/ProjectRealEstate"
	ProjectArtMethod           = "/" + ProjectionServiceName + "/ProjectArt"
	ProjectCarbonCreditsMethod = "/" + ProjectionServiceName + "/ProjectCarbonCredits"
	ProjectPrivateEquityMethod = "/" + ProjectionServiceName + "/ProjectPrivateEquity"
	GenerateSeriesMethod       = "/" + ProjectionServiceName + "/GenerateSeries"
	GetMarketDashboardMethod   = "/" + ProjectionServiceName + "/GetMarketDashboard"
)

// ProjectionServiceServer is the server API for ProjectionService
type ProjectionServiceServer interface {
	ProjectRealEstate(context.Context, *ProjectRealEstateRequest) (*ProjectRealEstateResponse, error)
	ProjectArt(context.Context, *ProjectArtRequest) (*ProjectArtResponse, error)
	ProjectCarbonCredits(context.Context, *ProjectCarbonCreditsRequest) (*ProjectCarbonCreditsResponse, error)
	ProjectPrivateEquity(context.Context, *ProjectPrivateEquityRequest) (*ProjectPrivateEquityResponse, error)
	GenerateSeries(context.Context, *GenerateSeriesRequest) (*GenerateSeriesResponse, error)
	GetMarketDashboard(context.Context, *GetMarketDashboardRequest) (*GetMarketDashboardResponse, error)
}

// ProjectionServiceDesc describes ProjectionService for grpc.Server.RegisterService
var ProjectionServiceDesc = grpc.ServiceDesc{
	ServiceName: ProjectionServiceName,
	HandlerType: (*ProjectionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ProjectRealEstate", Handler: unaryHandler(ProjectRealEstateMethod, ProjectionServiceServer.ProjectRealEstate)},
		{MethodName: "ProjectArt", Handler: unaryHandler(ProjectArtMethod, ProjectionServiceServer.ProjectArt)},
		{MethodName: "ProjectCarbonCredits", Handler: unaryHandler(ProjectCarbonCreditsMethod, ProjectionServiceServer.ProjectCarbonCredits)},
		{MethodName: "ProjectPrivateEquity", Handler: unaryHandler(ProjectPrivateEquityMethod, ProjectionServiceServer.ProjectPrivateEquity)},
		{MethodName: "GenerateSeries", Handler: unaryHandler(GenerateSeriesMethod, ProjectionServiceServer.GenerateSeries)},
		{MethodName: "GetMarketDashboard", Handler: unaryHandler(GetMarketDashboardMethod, ProjectionServiceServer.GetMarketDashboard)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tokenvest/v1/projection.proto",
}

// RegisterProjectionServiceServer registers srv on s
func RegisterProjectionServiceServer(s grpc.ServiceRegistrar, srv ProjectionServiceServer) {
	s.RegisterService(&ProjectionServiceDesc, srv)
}

// unaryHandler adapts a typed server method to a grpc.MethodHandler
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(ProjectionServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ProjectionServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ProjectionServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ProjectionServiceClient calls ProjectionService using the JSON codec
type ProjectionServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewProjectionServiceClient creates a client over an existing connection
func NewProjectionServiceClient(cc grpc.ClientConnInterface) *ProjectionServiceClient {
	return &ProjectionServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ProjectionServiceClient) ProjectRealEstate(ctx context.Context, in *ProjectRealEstateRequest, opts ...grpc.CallOption) (*ProjectRealEstateResponse, error) {
	return invoke[ProjectRealEstateResponse](ctx, c.cc, ProjectRealEstateMethod, in, opts)
}

func (c *ProjectionServiceClient) ProjectArt(ctx context.Context, in *ProjectArtRequest, opts ...grpc.CallOption) (*ProjectArtResponse, error) {
	return invoke[ProjectArtResponse](ctx, c.cc, ProjectArtMethod, in, opts)
}

func (c *ProjectionServiceClient) ProjectCarbonCredits(ctx context.Context, in *ProjectCarbonCreditsRequest, opts ...grpc.CallOption) (*ProjectCarbonCreditsResponse, error) {
	return invoke[ProjectCarbonCreditsResponse](ctx, c.cc, ProjectCarbonCreditsMethod, in, opts)
}

func (c *ProjectionServiceClient) ProjectPrivateEquity(ctx context.Context, in *ProjectPrivateEquityRequest, opts ...grpc.CallOption) (*ProjectPrivateEquityResponse, error) {
	return invoke[ProjectPrivateEquityResponse](ctx, c.cc, ProjectPrivateEquityMethod, in, opts)
}

func (c *ProjectionServiceClient) GenerateSeries(ctx context.Context, in *GenerateSeriesRequest, opts ...grpc.CallOption) (*GenerateSeriesResponse, error) {
	return invoke[GenerateSeriesResponse](ctx, c.cc, GenerateSeriesMethod, in, opts)
}

func (c *ProjectionServiceClient) GetMarketDashboard(ctx context.Context, in *GetMarketDashboardRequest, opts ...grpc.CallOption) (*GetMarketDashboardResponse, error) {
	return invoke[GetMarketDashboardResponse](ctx, c.cc, GetMarketDashboardMethod, in, opts)
}

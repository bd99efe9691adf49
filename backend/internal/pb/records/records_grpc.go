package records

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "records.RecordService"

const (
	RecordService_RegisterStudent_FullMethodName   = "/records.RecordService/RegisterStudent"
	RecordService_GetStudent_FullMethodName        = "/records.RecordService/GetStudent"
	RecordService_ListStudents_FullMethodName      = "/records.RecordService/ListStudents"
	RecordService_DeleteStudent_FullMethodName     = "/records.RecordService/DeleteStudent"
	RecordService_UploadResult_FullMethodName      = "/records.RecordService/UploadResult"
	RecordService_DeleteResult_FullMethodName      = "/records.RecordService/DeleteResult"
	RecordService_VerifyCredentials_FullMethodName = "/records.RecordService/VerifyCredentials"
	RecordService_GetTranscript_FullMethodName     = "/records.RecordService/GetTranscript"
)

// ============================================================================
// Client
// ============================================================================

// RecordServiceClient is the client API for RecordService.
type RecordServiceClient interface {
	RegisterStudent(ctx context.Context, in *RegisterStudentRequest, opts ...grpc.CallOption) (*RegisterStudentResponse, error)
	GetStudent(ctx context.Context, in *GetStudentRequest, opts ...grpc.CallOption) (*GetStudentResponse, error)
	ListStudents(ctx context.Context, in *ListStudentsRequest, opts ...grpc.CallOption) (*ListStudentsResponse, error)
	DeleteStudent(ctx context.Context, in *DeleteStudentRequest, opts ...grpc.CallOption) (*DeleteStudentResponse, error)
	UploadResult(ctx context.Context, in *UploadResultRequest, opts ...grpc.CallOption) (*UploadResultResponse, error)
	DeleteResult(ctx context.Context, in *DeleteResultRequest, opts ...grpc.CallOption) (*DeleteResultResponse, error)
	VerifyCredentials(ctx context.Context, in *VerifyCredentialsRequest, opts ...grpc.CallOption) (*VerifyCredentialsResponse, error)
	GetTranscript(ctx context.Context, in *GetTranscriptRequest, opts ...grpc.CallOption) (*GetTranscriptResponse, error)
}

type recordServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRecordServiceClient returns a client that sends every call with the JSON codec.
func NewRecordServiceClient(cc grpc.ClientConnInterface) RecordServiceClient {
	return &recordServiceClient{cc}
}

func (c *recordServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *recordServiceClient) RegisterStudent(ctx context.Context, in *RegisterStudentRequest, opts ...grpc.CallOption) (*RegisterStudentResponse, error) {
	out := new(RegisterStudentResponse)
	if err := c.invoke(ctx, RecordService_RegisterStudent_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recordServiceClient) GetStudent(ctx context.Context, in *GetStudentRequest, opts ...grpc.CallOption) (*GetStudentResponse, error) {
	out := new(GetStudentResponse)
	if err := c.invoke(ctx, RecordService_GetStudent_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recordServiceClient) ListStudents(ctx context.Context, in *ListStudentsRequest, opts ...grpc.CallOption) (*ListStudentsResponse, error) {
	out := new(ListStudentsResponse)
	if err := c.invoke(ctx, RecordService_ListStudents_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recordServiceClient) DeleteStudent(ctx context.Context, in *DeleteStudentRequest, opts ...grpc.CallOption) (*DeleteStudentResponse, error) {
	out := new(DeleteStudentResponse)
	if err := c.invoke(ctx, RecordService_DeleteStudent_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recordServiceClient) UploadResult(ctx context.Context, in *UploadResultRequest, opts ...grpc.CallOption) (*UploadResultResponse, error) {
	out := new(UploadResultResponse)
	if err := c.invoke(ctx, RecordService_UploadResult_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recordServiceClient) DeleteResult(ctx context.Context, in *DeleteResultRequest, opts ...grpc.CallOption) (*DeleteResultResponse, error) {
	out := new(DeleteResultResponse)
	if err := c.invoke(ctx, RecordService_DeleteResult_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recordServiceClient) VerifyCredentials(ctx context.Context, in *VerifyCredentialsRequest, opts ...grpc.CallOption) (*VerifyCredentialsResponse, error) {
	out := new(VerifyCredentialsResponse)
	if err := c.invoke(ctx, RecordService_VerifyCredentials_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recordServiceClient) GetTranscript(ctx context.Context, in *GetTranscriptRequest, opts ...grpc.CallOption) (*GetTranscriptResponse, error) {
	out := new(GetTranscriptResponse)
	if err := c.invoke(ctx, RecordService_GetTranscript_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// ============================================================================
// Server
// ============================================================================

// RecordServiceServer is the server API for RecordService.
type RecordServiceServer interface {
	RegisterStudent(context.Context, *RegisterStudentRequest) (*RegisterStudentResponse, error)
	GetStudent(context.Context, *GetStudentRequest) (*GetStudentResponse, error)
	ListStudents(context.Context, *ListStudentsRequest) (*ListStudentsResponse, error)
	DeleteStudent(context.Context, *DeleteStudentRequest) (*DeleteStudentResponse, error)
	UploadResult(context.Context, *UploadResultRequest) (*UploadResultResponse, error)
	DeleteResult(context.Context, *DeleteResultRequest) (*DeleteResultResponse, error)
	VerifyCredentials(context.Context, *VerifyCredentialsRequest) (*VerifyCredentialsResponse, error)
	GetTranscript(context.Context, *GetTranscriptRequest) (*GetTranscriptResponse, error)
}

// UnimplementedRecordServiceServer can be embedded to have forward compatible implementations.
type UnimplementedRecordServiceServer struct{}

func (UnimplementedRecordServiceServer) RegisterStudent(context.Context, *RegisterStudentRequest) (*RegisterStudentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterStudent not implemented")
}
func (UnimplementedRecordServiceServer) GetStudent(context.Context, *GetStudentRequest) (*GetStudentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStudent not implemented")
}
func (UnimplementedRecordServiceServer) ListStudents(context.Context, *ListStudentsRequest) (*ListStudentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListStudents not implemented")
}
func (UnimplementedRecordServiceServer) DeleteStudent(context.Context, *DeleteStudentRequest) (*DeleteStudentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteStudent not implemented")
}
func (UnimplementedRecordServiceServer) UploadResult(context.Context, *UploadResultRequest) (*UploadResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UploadResult not implemented")
}
func (UnimplementedRecordServiceServer) DeleteResult(context.Context, *DeleteResultRequest) (*DeleteResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteResult not implemented")
}
func (UnimplementedRecordServiceServer) VerifyCredentials(context.Context, *VerifyCredentialsRequest) (*VerifyCredentialsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method VerifyCredentials not implemented")
}
func (UnimplementedRecordServiceServer) GetTranscript(context.Context, *GetTranscriptRequest) (*GetTranscriptResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTranscript not implemented")
}

// RegisterRecordServiceServer registers srv on s.
func RegisterRecordServiceServer(s grpc.ServiceRegistrar, srv RecordServiceServer) {
	s.RegisterService(&RecordService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to a grpc method handler.
func unaryHandler[Req any, Resp any](fullMethod string, call func(RecordServiceServer, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RecordServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RecordServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// RecordService_ServiceDesc is the grpc.ServiceDesc for RecordService.
var RecordService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RecordServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterStudent",
			Handler:    unaryHandler(RecordService_RegisterStudent_FullMethodName, RecordServiceServer.RegisterStudent),
		},
		{
			MethodName: "GetStudent",
			Handler:    unaryHandler(RecordService_GetStudent_FullMethodName, RecordServiceServer.GetStudent),
		},
		{
			MethodName: "ListStudents",
			Handler:    unaryHandler(RecordService_ListStudents_FullMethodName, RecordServiceServer.ListStudents),
		},
		{
			MethodName: "DeleteStudent",
			Handler:    unaryHandler(RecordService_DeleteStudent_FullMethodName, RecordServiceServer.DeleteStudent),
		},
		{
			MethodName: "UploadResult",
			Handler:    unaryHandler(RecordService_UploadResult_FullMethodName, RecordServiceServer.UploadResult),
		},
		{
			MethodName: "DeleteResult",
			Handler:    unaryHandler(RecordService_DeleteResult_FullMethodName, RecordServiceServer.DeleteResult),
		},
		{
			MethodName: "VerifyCredentials",
			Handler:    unaryHandler(RecordService_VerifyCredentials_FullMethodName, RecordServiceServer.VerifyCredentials),
		},
		{
			MethodName: "GetTranscript",
			Handler:    unaryHandler(RecordService_GetTranscript_FullMethodName, RecordServiceServer.GetTranscript),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "records.proto",
}

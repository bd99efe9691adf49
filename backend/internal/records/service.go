package records

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "sirms/backend/internal/pb/records"
	"sirms/backend/internal/shared"
)

// RecordService implements the gRPC RecordService on top of a Registry.
type RecordService struct {
	pb.UnimplementedRecordServiceServer
	registry *Registry
	logger   *zap.Logger
}

// NewRecordService creates a new RecordService instance
func NewRecordService(registry *Registry, logger *zap.Logger) *RecordService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordService{registry: registry, logger: logger}
}

// RegisterStudent registers a new student (admin only)
func (s *RecordService) RegisterStudent(ctx context.Context, req *pb.RegisterStudentRequest) (*pb.RegisterStudentResponse, error) {
	if req == nil || req.Id == "" || req.Level == "" {
		return nil, status.Error(codes.InvalidArgument, "id and level are required")
	}

	student, err := s.registry.Register(ctx, actorFromProto(req.Actor), req.Id, req.Name, req.Level, req.Department)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.RegisterStudentResponse{Student: StudentToProto(student)}, nil
}

// GetStudent retrieves a single student record (admin or the student)
func (s *RecordService) GetStudent(ctx context.Context, req *pb.GetStudentRequest) (*pb.GetStudentResponse, error) {
	if req == nil || req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	student, err := s.registry.Get(ctx, actorFromProto(req.Actor), req.Id)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.GetStudentResponse{Student: StudentToProto(student)}, nil
}

// ListStudents retrieves every student record (admin only)
func (s *RecordService) ListStudents(ctx context.Context, req *pb.ListStudentsRequest) (*pb.ListStudentsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	students, err := s.registry.List(ctx, actorFromProto(req.Actor))
	if err != nil {
		return nil, s.toStatus(err)
	}

	out := make([]*pb.Student, 0, len(students))
	for _, st := range students {
		out = append(out, StudentToProto(st))
	}
	return &pb.ListStudentsResponse{Students: out}, nil
}

// DeleteStudent removes a student and all results (admin only)
func (s *RecordService) DeleteStudent(ctx context.Context, req *pb.DeleteStudentRequest) (*pb.DeleteStudentResponse, error) {
	if req == nil || req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	if err := s.registry.Delete(ctx, actorFromProto(req.Actor), req.Id); err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.DeleteStudentResponse{Id: shared.NormalizeID(req.Id)}, nil
}

// UploadResult grades and appends a course result (admin only)
func (s *RecordService) UploadResult(ctx context.Context, req *pb.UploadResultRequest) (*pb.UploadResultResponse, error) {
	if req == nil || req.Id == "" || req.Level == "" || req.Course == "" {
		return nil, status.Error(codes.InvalidArgument, "id, level and course are required")
	}
	if req.Units <= 0 {
		return nil, status.Error(codes.InvalidArgument, "units must be positive")
	}

	result, err := s.registry.UploadResult(ctx, actorFromProto(req.Actor), req.Id, req.Level, req.Course, int(req.Units), req.Score)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.UploadResultResponse{
		Id:     shared.NormalizeID(req.Id),
		Level:  req.Level,
		Result: courseToProto(result),
	}, nil
}

// DeleteResult removes a course entry by position (admin only)
func (s *RecordService) DeleteResult(ctx context.Context, req *pb.DeleteResultRequest) (*pb.DeleteResultResponse, error) {
	if req == nil || req.Id == "" || req.Level == "" {
		return nil, status.Error(codes.InvalidArgument, "id and level are required")
	}

	removed, err := s.registry.DeleteResult(ctx, actorFromProto(req.Actor), req.Id, req.Level, int(req.Index))
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.DeleteResultResponse{Removed: courseToProto(removed)}, nil
}

// VerifyCredentials checks a student's password
func (s *RecordService) VerifyCredentials(ctx context.Context, req *pb.VerifyCredentialsRequest) (*pb.VerifyCredentialsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.Id == "" || req.Password == "" {
		return &pb.VerifyCredentialsResponse{Valid: false}, nil
	}

	ok, err := s.registry.VerifyCredentials(ctx, req.Id, req.Password)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.VerifyCredentialsResponse{Valid: ok}, nil
}

// GetTranscript returns the record with per-level GPA and CGPA (admin or the student)
func (s *RecordService) GetTranscript(ctx context.Context, req *pb.GetTranscriptRequest) (*pb.GetTranscriptResponse, error) {
	if req == nil || req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	student, summary, err := s.registry.Transcript(ctx, actorFromProto(req.Actor), req.Id)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.GetTranscriptResponse{
		Student: StudentToProto(student),
		Summary: SummaryToProto(summary),
	}, nil
}

// ============================================================================
// Helper Functions
// ============================================================================

// toStatus maps record errors onto gRPC status codes.
func (s *RecordService) toStatus(err error) error {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, shared.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, shared.ErrUnauthorized):
		s.logger.Warn("operation rejected", zap.Error(err))
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, shared.ErrIndexOutOfRange):
		return status.Error(codes.OutOfRange, err.Error())
	case errors.Is(err, shared.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		s.logger.Error("record store failure", zap.Error(err))
		return status.Error(codes.Internal, "record store failure")
	}
}

func actorFromProto(a *pb.Actor) shared.Identity {
	if a == nil {
		return shared.Anonymous
	}
	switch shared.Role(a.Role) {
	case shared.RoleAdmin:
		return shared.AdminIdentity()
	case shared.RoleStudent:
		if a.StudentId == "" {
			return shared.Anonymous
		}
		return shared.StudentIdentity(a.StudentId)
	default:
		return shared.Anonymous
	}
}

// ActorToProto maps an identity onto the wire actor.
func ActorToProto(id shared.Identity) *pb.Actor {
	return &pb.Actor{Role: string(id.Role), StudentId: id.StudentID}
}

// StudentToProto maps a record onto the wire message. The password is never
// copied and levels are listed in lexicographic order.
func StudentToProto(s *shared.Student) *pb.Student {
	if s == nil {
		return nil
	}
	out := &pb.Student{
		Id:         s.ID,
		Name:       s.Name,
		Level:      s.Level,
		Department: s.Department,
		Results:    make([]*pb.LevelResults, 0, len(s.Results)),
	}
	for _, level := range s.Levels() {
		courses := make([]*pb.CourseResult, 0, len(s.Results[level]))
		for _, c := range s.Results[level] {
			courses = append(courses, courseToProto(c))
		}
		out.Results = append(out.Results, &pb.LevelResults{Level: level, Courses: courses})
	}
	return out
}

// SummaryToProto maps an academic summary onto the wire message.
func SummaryToProto(sum shared.Summary) *pb.Summary {
	out := &pb.Summary{
		Levels:           make([]*pb.LevelGPA, 0, len(sum.Levels)),
		Cgpa:             sum.CGPA,
		TotalUnits:       int32(sum.TotalUnits),
		TotalGradePoints: sum.TotalGradePoints,
	}
	for _, l := range sum.Levels {
		out.Levels = append(out.Levels, &pb.LevelGPA{
			Level:       l.Level,
			Gpa:         l.GPA,
			Units:       int32(l.Units),
			GradePoints: l.GradePoints,
			Courses:     int32(l.Courses),
		})
	}
	return out
}

func courseToProto(c shared.CourseResult) *pb.CourseResult {
	return &pb.CourseResult{
		Course: c.Course,
		Units:  int32(c.Units),
		Score:  c.Score,
		Point:  c.Point,
		Grade:  c.Grade,
	}
}

// ============================================================================
// Interceptors
// ============================================================================

// RequestIDKey is the metadata key carrying the caller's request id.
const RequestIDKey = "x-request-id"

// LoggingInterceptor logs each unary call with its request id, status code and
// latency. Calls without a request id get a fresh uuid.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(RequestIDKey); len(v) > 0 {
				requestID = v[0]
			}
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}

		resp, err := handler(ctx, req)

		logger.Debug("rpc",
			zap.String("method", info.FullMethod),
			zap.String("request_id", requestID),
			zap.String("code", status.Code(err).String()),
			zap.Duration("latency", time.Since(start)),
		)
		return resp, err
	}
}

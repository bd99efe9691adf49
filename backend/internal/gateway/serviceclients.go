package gateway

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "sirms/backend/internal/pb/records"
)

// ServiceClients holds the gRPC clients the gateway talks to.
type ServiceClients struct {
	RecordsClient pb.RecordServiceClient

	// Keep connections to close them later when the gateway shuts down
	conns []*grpc.ClientConn
}

// ConnectGRPC creates a client connection to addr. The connection is lazy;
// an unreachable backend surfaces as Unavailable on the first call.
func ConnectGRPC(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	zap.L().Info("connecting to gRPC service", zap.String("addr", addr))

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client for %s: %w", addr, err)
	}
	return conn, nil
}

// NewServiceClients connects to the Records Service at recordsAddr.
func NewServiceClients(recordsAddr string, opts ...grpc.DialOption) (*ServiceClients, error) {
	recordsConn, err := ConnectGRPC(recordsAddr, opts...)
	if err != nil {
		return nil, err
	}

	return &ServiceClients{
		RecordsClient: pb.NewRecordServiceClient(recordsConn),
		conns:         []*grpc.ClientConn{recordsConn},
	}, nil
}

// Close closes all underlying gRPC connections.
func (sc *ServiceClients) Close() {
	for _, conn := range sc.conns {
		if err := conn.Close(); err != nil {
			zap.L().Warn("error closing gRPC connection", zap.Error(err))
		}
	}
}

// RecordsVerifier adapts the Records Service client to auth.StudentVerifier.
type RecordsVerifier struct {
	Client pb.RecordServiceClient
}

func (v RecordsVerifier) VerifyCredentials(ctx context.Context, studentID, password string) (bool, error) {
	resp, err := v.Client.VerifyCredentials(ctx, &pb.VerifyCredentialsRequest{Id: studentID, Password: password})
	if err != nil {
		return false, err
	}
	return resp.Valid, nil
}

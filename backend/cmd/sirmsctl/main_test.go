package main

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "sirms/backend/internal/pb/records"
	"sirms/backend/internal/records"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func startRecords(t *testing.T) string {
	t.Helper()
	store := records.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), (records.SeedStudent{
		ID:    "2024/001",
		Name:  "Alice Johnson",
		Level: "200L",
		Results: map[string][]records.SeedCourse{
			"100L": {{Course: "CSC101", Units: 3, Score: 75}, {Course: "MTH101", Units: 4, Score: 62}},
		},
	}).Student()))

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := grpc.NewServer()
	pb.RegisterRecordServiceServer(s, records.NewRecordService(records.NewRegistry(store, zap.NewNop()), zap.NewNop()))
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)
	return lis.Addr().String()
}

func TestGradeCommand(t *testing.T) {
	out, err := execute(t, "grade", "75", "69.9", "39.99")
	require.NoError(t, err)
	assert.Contains(t, out, "SCORE")
	assert.Regexp(t, `75\s+5\.0\s+A`, out)
	assert.Regexp(t, `69\.9\s+4\.0\s+B`, out)
	assert.Regexp(t, `39\.99\s+0\.0\s+F`, out)

	_, err = execute(t, "grade", "abc")
	assert.Error(t, err)

	_, err = execute(t, "grade")
	assert.Error(t, err)
}

func TestStudentsCommand(t *testing.T) {
	addr := startRecords(t)
	out, err := execute(t, "--addr", addr, "students")
	require.NoError(t, err)
	assert.Contains(t, out, "2024/001")
	assert.Contains(t, out, "Alice Johnson")
}

func TestTranscriptCommand(t *testing.T) {
	addr := startRecords(t)
	out, err := execute(t, "--addr", addr, "transcript", "2024/001")
	require.NoError(t, err)
	assert.Contains(t, out, "CGPA: 4.43")
	assert.Regexp(t, `100L\s+2\s+7\s+4\.43`, out)

	_, err = execute(t, "--addr", addr, "transcript", "2099/999")
	assert.Error(t, err)
}

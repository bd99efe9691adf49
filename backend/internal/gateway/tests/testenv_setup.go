package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"sirms/backend/internal/auth"
	"sirms/backend/internal/gateway"
	"sirms/backend/internal/gateway/util"
	pb "sirms/backend/internal/pb/records"
	"sirms/backend/internal/records"
	"sirms/backend/internal/shared"
)

const (
	bufSize       = 1024 * 1024
	testSecret    = "gateway-test-secret"
	adminPassword = "admin123"
)

// TestEnv holds all the running components for the test
type TestEnv struct {
	Router        http.Handler
	RecordsClient pb.RecordServiceClient
	Sessions      *auth.SessionManager
}

// setupGatewayTestEnv runs the Records Service over bufconn with an in-memory
// store seeded with one student, and wires the gateway router to it.
func setupGatewayTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	logger := zaptest.NewLogger(t)

	// --- 1. Records Service ---
	store := records.NewMemoryStore()
	_, err := records.Seed(context.Background(), store, &records.SeedFile{Students: []records.SeedStudent{{
		ID:         "2024/001",
		Name:       "Alice Johnson",
		Password:   "123",
		Level:      "200L",
		Department: "Computer Science",
		Results: map[string][]records.SeedCourse{
			"100L": {{Course: "CSC101", Units: 3, Score: 75}, {Course: "MTH101", Units: 4, Score: 62}},
		},
	}}}, logger)
	require.NoError(t, err)

	lis := bufconn.Listen(bufSize)
	s := grpc.NewServer()
	pb.RegisterRecordServiceServer(s, records.NewRecordService(records.NewRegistry(store, logger), logger))
	go func() { _ = s.Serve(lis) }()

	// --- 2. Connect Gateway to the backend ---
	clients, err := gateway.NewServiceClients("passthrough://bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }))
	require.NoError(t, err)

	t.Cleanup(func() {
		clients.Close()
		s.Stop()
	})

	// --- 3. Initialize Gateway Router ---
	cfg := &shared.GatewayConfig{
		ServiceConfig:  shared.ServiceConfig{ServiceName: "gateway-test", Environment: "test", LogLevel: "debug"},
		RequestTimeout: 5 * time.Second,
		Security: shared.SecurityConfig{
			AdminPassword: adminPassword,
			SessionSecret: testSecret,
			SessionTTL:    time.Hour,
		},
	}
	sessions := auth.NewSessionManager(cfg.Security.SessionSecret, cfg.Security.SessionTTL)

	router := gateway.SetupRoutes(gateway.Deps{
		Clients:  clients,
		Config:   cfg,
		Sessions: sessions,
		Logger:   logger,
	})

	return &TestEnv{
		Router:        router,
		RecordsClient: clients.RecordsClient,
		Sessions:      sessions,
	}
}

// do sends a request through the router. body is JSON-encoded when not nil.
func (env *TestEnv) do(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rr := httptest.NewRecorder()
	env.Router.ServeHTTP(rr, req)
	return rr
}

// login performs POST /login and returns the session cookie.
func (env *TestEnv) login(t *testing.T, role, username, password string) *http.Cookie {
	t.Helper()
	rr := env.do(t, http.MethodPost, "/login", map[string]string{
		"role": role, "username": username, "password": password,
	}, nil)
	require.Equal(t, http.StatusOK, rr.Code, "login failed: %s", rr.Body.String())

	for _, c := range rr.Result().Cookies() {
		if c.Name == util.SessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie missing from login response")
	return nil
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp
}

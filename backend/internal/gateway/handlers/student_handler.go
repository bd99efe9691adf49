package handlers

import (
	"net/http"
	"time"

	"sirms/backend/internal/gateway/util"
	pb "sirms/backend/internal/pb/records"
)

// StudentHandler serves the student-facing views.
type StudentHandler struct {
	RecordsClient pb.RecordServiceClient
	Timeout       time.Duration
}

// Dashboard handles GET /student_dashboard
// Returns the logged-in student's record with per-level GPA and CGPA.
func (h *StudentHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	// 1. Authorization: only students have a dashboard here
	id := util.IdentityFrom(r.Context())
	if !id.IsStudent() {
		util.RedirectHome(w, r)
		return
	}

	// 2. Call gRPC Service
	ctx, cancel := withTimeout(r, h.Timeout)
	defer cancel()

	grpcResp, err := h.RecordsClient.GetTranscript(ctx, &pb.GetTranscriptRequest{
		Actor: actorFrom(r),
		Id:    id.StudentID,
	})
	if err != nil {
		util.HandleGRPCError(w, err)
		return
	}

	// 3. Map and Respond
	util.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"student": grpcResp.Student,
		"levels":  grpcResp.Summary.Levels,
		"cgpa":    grpcResp.Summary.Cgpa,
	})
}

package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"sirms/backend/internal/gateway/util"
	pb "sirms/backend/internal/pb/records"
	"sirms/backend/internal/shared"
)

// AdminHandler serves the admin views and record mutations.
type AdminHandler struct {
	RecordsClient pb.RecordServiceClient
	Timeout       time.Duration
}

// -- Request Structs --

type RESTAddStudentRequest struct {
	Matric string `json:"matric" validate:"required,max=64"`
	Name   string `json:"name" validate:"max=128"`
	Level  string `json:"level" validate:"required,max=16"`
	Dept   string `json:"dept" validate:"max=128"`
}

type RESTUploadGradeRequest struct {
	Matric      string  `json:"matric" validate:"required,max=64"`
	Course      string  `json:"course" validate:"required,max=32"`
	Units       int32   `json:"units" validate:"gt=0"`
	Score       float64 `json:"score"`
	TargetLevel string  `json:"target_level" validate:"required,max=16"`
}

type RESTDeleteStudentRequest struct {
	Matric string `json:"matric" validate:"required,max=64"`
}

type RESTDeleteCourseRequest struct {
	Matric string `json:"matric" validate:"required,max=64"`
	Level  string `json:"level" validate:"required,max=16"`
	Index  *int32 `json:"index" validate:"required"`
}

// Dashboard handles GET /admin_dashboard
// Lists every student record.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r, h.Timeout)
	defer cancel()

	grpcResp, err := h.RecordsClient.ListStudents(ctx, &pb.ListStudentsRequest{Actor: actorFrom(r)})
	if err != nil {
		util.HandleGRPCError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"students": grpcResp.Students,
	})
}

// Manage handles GET /manage/*
// The matric number is the rest of the path since it contains slashes.
func (h *AdminHandler) Manage(w http.ResponseWriter, r *http.Request) {
	matric := strings.TrimSpace(chi.URLParam(r, "*"))
	if matric == "" {
		util.WriteJSONError(w, http.StatusNotFound, "Student not found!")
		return
	}

	ctx, cancel := withTimeout(r, h.Timeout)
	defer cancel()

	grpcResp, err := h.RecordsClient.GetTranscript(ctx, &pb.GetTranscriptRequest{Actor: actorFrom(r), Id: matric})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			util.WriteJSONError(w, http.StatusNotFound, "Student not found!")
			return
		}
		util.HandleGRPCError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"matric":  grpcResp.Student.Id,
		"student": grpcResp.Student,
		"levels":  grpcResp.Summary.Levels,
		"cgpa":    grpcResp.Summary.Cgpa,
	})
}

// AddStudent handles POST /add_student
func (h *AdminHandler) AddStudent(w http.ResponseWriter, r *http.Request) {
	var reqBody RESTAddStudentRequest
	if err := util.DecodeAndValidate(r, &reqBody); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := withTimeout(r, h.Timeout)
	defer cancel()

	grpcResp, err := h.RecordsClient.RegisterStudent(ctx, &pb.RegisterStudentRequest{
		Actor:      actorFrom(r),
		Id:         reqBody.Matric,
		Name:       reqBody.Name,
		Level:      reqBody.Level,
		Department: reqBody.Dept,
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			util.WriteJSONError(w, http.StatusConflict, "Student already exists.")
			return
		}
		util.HandleGRPCError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Registered %s at %s.", grpcResp.Student.Id, reqBody.Level),
		"student": grpcResp.Student,
	})
}

// UploadGrade handles POST /upload_grade
// Grades the score and appends it under the target level.
func (h *AdminHandler) UploadGrade(w http.ResponseWriter, r *http.Request) {
	var reqBody RESTUploadGradeRequest
	if err := util.DecodeAndValidate(r, &reqBody); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := withTimeout(r, h.Timeout)
	defer cancel()

	grpcResp, err := h.RecordsClient.UploadResult(ctx, &pb.UploadResultRequest{
		Actor:  actorFrom(r),
		Id:     reqBody.Matric,
		Level:  reqBody.TargetLevel,
		Course: reqBody.Course,
		Units:  reqBody.Units,
		Score:  reqBody.Score,
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			util.WriteJSONError(w, http.StatusNotFound, "Student Matric Number not found.")
			return
		}
		util.HandleGRPCError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Result uploaded for %s (%s)", grpcResp.Id, grpcResp.Level),
		"result":  grpcResp.Result,
	})
}

// DeleteStudent handles POST /delete_student
// Deleting an unknown student is not an error; the response says nothing was deleted.
func (h *AdminHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	var reqBody RESTDeleteStudentRequest
	if err := util.DecodeAndValidate(r, &reqBody); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := withTimeout(r, h.Timeout)
	defer cancel()

	grpcResp, err := h.RecordsClient.DeleteStudent(ctx, &pb.DeleteStudentRequest{Actor: actorFrom(r), Id: reqBody.Matric})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			util.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "deleted": false})
			return
		}
		util.HandleGRPCError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": true,
		"message": fmt.Sprintf("%s deleted successfully.", grpcResp.Id),
	})
}

// DeleteCourse handles POST /delete_course
// Removes one course entry by its position within a level.
func (h *AdminHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	var reqBody RESTDeleteCourseRequest
	if err := util.DecodeAndValidate(r, &reqBody); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := withTimeout(r, h.Timeout)
	defer cancel()

	grpcResp, err := h.RecordsClient.DeleteResult(ctx, &pb.DeleteResultRequest{
		Actor: actorFrom(r),
		Id:    reqBody.Matric,
		Level: reqBody.Level,
		Index: *reqBody.Index,
	})
	if err != nil {
		switch status.Code(err) {
		case codes.NotFound, codes.OutOfRange:
			util.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "removed": false})
		default:
			util.HandleGRPCError(w, err)
		}
		return
	}

	util.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"removed": true,
		"message": "Course entry removed.",
		"course":  grpcResp.Removed,
		"matric":  shared.NormalizeID(reqBody.Matric),
	})
}

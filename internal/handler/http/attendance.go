package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/caibang/attendance-backend-go/internal/domain/attendance"
	"github.com/caibang/attendance-backend-go/internal/handler/http/response"
	"github.com/caibang/attendance-backend-go/internal/pkg/spreadsheet"
)

type AttendanceHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckInLate(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	MonthlyStats(w http.ResponseWriter, r *http.Request)
	ExportMonthlyStats(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Status implements AttendanceHandler.
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.attendanceService.Status(r.Context())
	if err != nil {
		slog.Error("Attendance status error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Nothing stored yet; the client must send the late details.
	if result.RequiresLateDetails {
		response.Accepted(w, "Check-in is late, late details are required", result)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// CheckInLate implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckInLate(w http.ResponseWriter, r *http.Request) {
	var req attendance.LateCheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckInLate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.FinalizeLate(r.Context(), req)
	if err != nil {
		slog.Error("CheckInLate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	message := "Checked in successfully"
	if result.Notice != "" {
		message = result.Notice
	}
	response.Created(w, message, result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	filter := attendance.HistoryFilter{Date: r.URL.Query().Get("date")}

	history, err := h.attendanceService.History(r.Context(), filter)
	if err != nil {
		slog.Error("Attendance history error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

// MonthlyStats implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	filter := attendance.MonthlyStatsFilter{Date: r.URL.Query().Get("date")}

	summary, err := h.attendanceService.MonthlyStats(r.Context(), filter)
	if err != nil {
		slog.Error("Monthly stats error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ExportMonthlyStats implements AttendanceHandler.
func (h *attendanceHandlerImpl) ExportMonthlyStats(w http.ResponseWriter, r *http.Request) {
	filter := attendance.MonthlyStatsFilter{Date: r.URL.Query().Get("date")}

	summary, err := h.attendanceService.MonthlyStats(r.Context(), filter)
	if err != nil {
		slog.Error("Monthly stats export error", "error", err)
		response.HandleError(w, err)
		return
	}

	buffer, err := spreadsheet.WriteMonthlySummary(summary)
	if err != nil {
		slog.Error("Monthly stats workbook error", "error", err)
		response.InternalServerError(w, "Failed to export monthly statistics")
		return
	}

	response.File(w, spreadsheet.ContentTypeXLSX, spreadsheet.MonthlyFilename(summary), buffer.Bytes())
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/caibang/attendance-backend-go/internal/domain/dailyreport"
	"github.com/caibang/attendance-backend-go/internal/handler/http/response"
)

type DailyReportHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type dailyReportHandlerImpl struct {
	dailyReportService dailyreport.DailyReportService
}

func NewDailyReportHandler(dailyReportService dailyreport.DailyReportService) DailyReportHandler {
	return &dailyReportHandlerImpl{
		dailyReportService: dailyReportService,
	}
}

// Submit implements DailyReportHandler.
func (h *dailyReportHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req dailyreport.SubmitDailyReportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit daily report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	report, err := h.dailyReportService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Submit daily report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Daily report submitted successfully", report)
}

// List implements DailyReportHandler.
func (h *dailyReportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := dailyreport.ListDailyReportFilter{Date: r.URL.Query().Get("date")}

	reports, err := h.dailyReportService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List daily reports error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}

// Reset implements DailyReportHandler.
func (h *dailyReportHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	level, err := strconv.Atoi(query.Get("level"))
	if err != nil {
		response.BadRequest(w, "Invalid level", map[string]string{"level": "level must be an integer"})
		return
	}

	req := dailyreport.ResetDailyReportRequest{
		EmployeeID: query.Get("employee_id"),
		Level:      level,
		Date:       query.Get("date"),
	}

	if err := h.dailyReportService.Reset(r.Context(), req); err != nil {
		slog.Error("Reset daily report error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily report reset successfully", nil)
}

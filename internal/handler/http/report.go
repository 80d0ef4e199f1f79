package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/staffly-hq/hr-backend-go/internal/domain/report"
	"github.com/staffly-hq/hr-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	PayrollXLSX(w http.ResponseWriter, r *http.Request)
	AttendanceXLSX(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func writeWorkbook(w http.ResponseWriter, data []byte, filename string) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *reportHandlerImpl) PayrollXLSX(w http.ResponseWriter, r *http.Request) {
	// month is zero-based, matching the payroll run endpoint.
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Invalid month", nil)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	data, filename, err := h.reportService.PayrollXLSX(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, data, filename)
}

func (h *reportHandlerImpl) AttendanceXLSX(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	data, filename, err := h.reportService.AttendanceXLSX(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, data, filename)
}

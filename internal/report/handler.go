package report

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/go-chi/chi/v5"

	"github.com/spotreport/service/internal/metrics"
	"github.com/spotreport/service/internal/response"
)

// Handler holds HTTP handlers for report endpoints.
type Handler struct {
	svc      *Service
	maxBytes int64
}

// NewHandler creates a new report Handler. maxBytes caps the multipart
// request body size.
func NewHandler(svc *Service, maxBytes int64) *Handler {
	return &Handler{svc: svc, maxBytes: maxBytes}
}

type createResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Create godoc
//
//	@Summary		Submit a report
//	@Description	Uploads the image to object storage and persists the report record.
//	@Tags			reports
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image		formData	file	true	"Photo of the incident"
//	@Param			latitude	formData	number	true	"Latitude"
//	@Param			longitude	formData	number	true	"Longitude"
//	@Param			description	formData	string	false	"Free-text description"
//	@Success		200	{object}	createResponse
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/report [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		response.BadRequest(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "image file is required")
		return
	}
	defer file.Close()

	lat, err := requiredFloat(r, "latitude")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	lng, err := requiredFloat(r, "longitude")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	img := Image{
		Reader:      file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Ext:         strings.ToLower(filepath.Ext(header.Filename)),
	}

	rep, err := h.svc.Create(r.Context(), img, lat, lng, r.FormValue("description"))
	if err != nil {
		log.Errorf("create report failed: %v", err)
		response.InternalError(w, "failed to upload report")
		return
	}

	metrics.ReportsCreated.Inc()
	response.OK(w, createResponse{Success: true, ImageURL: rep.ImageURL})
}

// List godoc
//
//	@Summary		List reports
//	@Description	Returns all reports ordered by creation time, newest first.
//	@Tags			reports
//	@Produce		json
//	@Success		200	{array}		Report
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/reports [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.svc.List(r.Context())
	if err != nil {
		log.Errorf("list reports failed: %v", err)
		response.InternalError(w, "failed to fetch reports")
		return
	}
	response.OK(w, reports)
}

// Delete godoc
//
//	@Summary		Delete a report
//	@Description	Deletes the stored image and then the report record.
//	@Tags			reports
//	@Produce		json
//	@Param			id	path		string	true	"Report ID"
//	@Success		200	{object}	deleteResponse
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/report/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "report not found")
			return
		}
		log.Errorf("delete report %s failed: %v", id, err)
		response.InternalError(w, "failed to delete report")
		return
	}

	metrics.ReportsDeleted.Inc()
	response.OK(w, deleteResponse{Success: true, Message: "report deleted"})
}

// requiredFloat reads a required numeric form field.
func requiredFloat(r *http.Request, field string) (float64, error) {
	v := r.FormValue(field)
	if v == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	return f, nil
}

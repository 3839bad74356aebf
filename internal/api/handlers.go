// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/showtimenow/showtimenow/internal/booking"
	"github.com/showtimenow/showtimenow/internal/bus"
	"github.com/showtimenow/showtimenow/internal/catalog"
	"github.com/showtimenow/showtimenow/internal/logging"
	"github.com/showtimenow/showtimenow/internal/models"
	"github.com/showtimenow/showtimenow/internal/notify"
	"github.com/showtimenow/showtimenow/internal/personalize"
)

// maxBookingBodyBytes caps booking and email request bodies.
const maxBookingBodyBytes = 64 * 1024

// Handler implements the HTTP endpoints.
type Handler struct {
	catalog   *catalog.Service
	resolver  *personalize.Resolver
	booking   *booking.Service
	selection *bus.Bus
	simulated *notify.SimulatedSender
	started   time.Time
}

// NewHandler creates the endpoint handler.
func NewHandler(
	catalogSvc *catalog.Service,
	resolver *personalize.Resolver,
	bookingSvc *booking.Service,
	selection *bus.Bus,
	simulated *notify.SimulatedSender,
) *Handler {
	return &Handler{
		catalog:   catalogSvc,
		resolver:  resolver,
		booking:   bookingSvc,
		selection: selection,
		simulated: simulated,
		started:   time.Now(),
	}
}

// Health reports liveness and uptime.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	}, time.Now())
}

// Movies serves the merged, de-duplicated movie listing.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	movies := h.catalog.Movies(r.Context())
	respondSuccess(w, http.StatusOK, models.MovieListResponse{Movies: movies}, started)
}

// SiteChrome serves the header and footer navigation entries.
func (h *Handler) SiteChrome(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	respondSuccess(w, http.StatusOK, h.catalog.SiteChrome(r.Context()), started)
}

// personalizedContentRequest is the validated query surface of the
// personalized content endpoint.
type personalizedContentRequest struct {
	MemberID string `validate:"required"`
	Name     string `validate:"required"`
	Age      int    `validate:"min=0,max=130"`
	Gender   string `validate:"omitempty,oneof=male female"`
}

// PersonalizedContent resolves the movie list for a family member profile
// given in query parameters. The name parameter is optional and defaults to
// the member id, which is how the roster identifies members anyway.
func (h *Handler) PersonalizedContent(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	query := r.URL.Query()

	req := personalizedContentRequest{
		MemberID: query.Get("memberId"),
		Name:     query.Get("name"),
		Age:      getIntParam(r, "age", 0),
		Gender:   query.Get("gender"),
	}
	if req.Name == "" {
		req.Name = req.MemberID
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	profile := models.FamilyMemberProfile{
		ID:          req.MemberID,
		Name:        req.Name,
		Age:         req.Age,
		Gender:      models.Gender(req.Gender),
		Preferences: parseCommaSeparated(query.Get("preferences")),
	}

	if _, err := h.selection.PublishMemberSelected(profile); err != nil {
		logging.Warn().Err(err).Msg("Selection broadcast failed")
	}

	result := h.resolver.Resolve(r.Context(), profile)

	// Overlay the personalized titles on the default listing so the page
	// always has a full catalog behind the personalized rows.
	result.Movies = h.catalog.MergePersonalized(h.catalog.Movies(r.Context()), result.Movies)

	respondSuccess(w, http.StatusOK, result, started)
}

// CreateBooking confirms a booking and dispatches the confirmation email.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req models.BookingRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBookingBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Request body is not valid JSON", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	b, err := h.booking.Confirm(r.Context(), &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "BOOKING_FAILED", "Booking could not be confirmed", err)
		return
	}

	respondSuccess(w, http.StatusCreated, b, started)
}

// sendEmailRequest is the simulated email endpoint payload.
type sendEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendEmail simulates an email delivery after a fixed delay.
func (h *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req sendEmailRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBookingBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Request body is not valid JSON", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	result, err := h.simulated.Send(r.Context(), &notify.SendParams{
		To:       req.To,
		Subject:  req.Subject,
		BodyHTML: req.Body,
	})
	if err != nil || !result.Success {
		respondError(w, http.StatusServiceUnavailable, "EMAIL_FAILED", "Email could not be sent", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": notify.StatusSent,
	}, started)
}

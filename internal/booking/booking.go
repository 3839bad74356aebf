// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

// Package booking confirms seat bookings and dispatches the confirmation
// email. Bookings have no persistence: confirmation is computed, emailed
// and returned in one request.
package booking

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/showtimenow/showtimenow/internal/logging"
	"github.com/showtimenow/showtimenow/internal/metrics"
	"github.com/showtimenow/showtimenow/internal/models"
	"github.com/showtimenow/showtimenow/internal/notify"
)

// Seat prices in rupees.
var seatPrices = map[models.SeatType]int{
	models.SeatClassic:     250,
	models.SeatClassicPlus: 300,
	models.SeatPrime:       350,
}

// StatusConfirmed is the only booking status. Email delivery problems are
// reported separately on EmailStatus.
const StatusConfirmed = "confirmed"

// SeatPrice returns the per-seat price for a seat category.
func SeatPrice(t models.SeatType) (int, bool) {
	price, ok := seatPrices[t]
	return price, ok
}

// Service confirms bookings.
type Service struct {
	notifier *notify.Manager
}

// NewService creates a booking service using the given notification chain.
func NewService(notifier *notify.Manager) *Service {
	return &Service{notifier: notifier}
}

// Confirm prices the request, generates a booking code, sends the
// confirmation email through the notification chain and returns the
// confirmed booking. The booking is confirmed regardless of the email
// outcome.
func (s *Service) Confirm(ctx context.Context, req *models.BookingRequest) (*models.Booking, error) {
	price, ok := SeatPrice(req.SeatType)
	if !ok {
		return nil, fmt.Errorf("unknown seat type: %s", req.SeatType)
	}

	b := &models.Booking{
		ID:          newBookingID(),
		MovieName:   req.MovieName,
		TheatreName: req.TheatreName,
		Showtime:    req.Showtime,
		Format:      req.Format,
		Seats:       req.Seats,
		SeatType:    req.SeatType,
		Total:       price * req.Seats,
		Email:       req.Email,
		Status:      StatusConfirmed,
		ConfirmedAt: time.Now().UTC(),
	}

	outcome := s.notifier.Notify(ctx, &notify.SendParams{
		To:       b.Email,
		Subject:  fmt.Sprintf("Booking Confirmed: %s", b.MovieName),
		BodyHTML: confirmationBody(b),
	})
	b.EmailStatus = outcome.Status

	metrics.BookingsConfirmed.WithLabelValues(string(b.SeatType)).Inc()
	logging.Info().
		Str("booking_id", b.ID).
		Str("movie", b.MovieName).
		Int("seats", b.Seats).
		Int("total", b.Total).
		Bool("email_delivered", outcome.Delivered).
		Msg("Booking confirmed")

	return b, nil
}

// newBookingID derives a short uppercase booking code from a random UUID.
func newBookingID() string {
	id := uuid.New().String()
	return "STN-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:10])
}

// confirmationBody renders the confirmation email HTML.
func confirmationBody(b *models.Booking) string {
	var body strings.Builder
	body.WriteString("<h2>Your booking is confirmed!</h2>")
	body.WriteString(fmt.Sprintf("<p>Booking ID: <strong>%s</strong></p>", b.ID))
	body.WriteString(fmt.Sprintf("<p>Movie: %s</p>", html.EscapeString(b.MovieName)))
	body.WriteString(fmt.Sprintf("<p>Theatre: %s</p>", html.EscapeString(b.TheatreName)))
	body.WriteString(fmt.Sprintf("<p>Showtime: %s</p>", html.EscapeString(b.Showtime)))
	if b.Format != "" {
		body.WriteString(fmt.Sprintf("<p>Format: %s</p>", html.EscapeString(b.Format)))
	}
	body.WriteString(fmt.Sprintf("<p>Seats: %d x %s</p>", b.Seats, b.SeatType))
	body.WriteString(fmt.Sprintf("<p>Total: ₹%d</p>", b.Total))
	body.WriteString("<p>Enjoy the show!</p>")
	return body.String()
}

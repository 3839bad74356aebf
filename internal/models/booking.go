// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package models

import "time"

// SeatType is a bookable seat category.
type SeatType string

// Seat categories, cheapest first.
const (
	SeatClassic     SeatType = "classic"
	SeatClassicPlus SeatType = "classic_plus"
	SeatPrime       SeatType = "prime"
)

// Valid reports whether t is a known seat category.
func (t SeatType) Valid() bool {
	switch t {
	case SeatClassic, SeatClassicPlus, SeatPrime:
		return true
	}
	return false
}

// BookingRequest is the client payload for confirming a booking.
type BookingRequest struct {
	MovieName   string   `json:"movie_name" validate:"required"`
	TheatreName string   `json:"theatre_name" validate:"required"`
	Showtime    string   `json:"showtime" validate:"required"`
	Format      string   `json:"format"`
	Seats       int      `json:"seats" validate:"min=1,max=10"`
	SeatType    SeatType `json:"seat_type" validate:"required,seattype"`
	Email       string   `json:"email" validate:"required,email"`
}

// Booking is a confirmed booking. The booking is always marked confirmed
// even when the confirmation email could not be delivered; EmailStatus
// carries the delivery outcome shown to the user.
type Booking struct {
	ID          string    `json:"id"`
	MovieName   string    `json:"movie_name"`
	TheatreName string    `json:"theatre_name"`
	Showtime    string    `json:"showtime"`
	Format      string    `json:"format,omitempty"`
	Seats       int       `json:"seats"`
	SeatType    SeatType  `json:"seat_type"`
	Total       int       `json:"total"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	EmailStatus string    `json:"email_status"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

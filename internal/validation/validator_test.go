// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package validation

import (
	"strings"
	"testing"
)

type bookingFixture struct {
	MovieName string `validate:"required"`
	Seats     int    `validate:"min=1,max=10"`
	SeatType  string `validate:"required,seattype"`
	Email     string `validate:"required,email"`
}

func TestValidateStruct_Passes(t *testing.T) {
	req := bookingFixture{
		MovieName: "Dune",
		Seats:     2,
		SeatType:  "prime",
		Email:     "user@example.com",
	}

	if err := ValidateStruct(&req); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestValidateStruct_SeatType(t *testing.T) {
	tests := []struct {
		seatType string
		wantErr  bool
	}{
		{"classic", false},
		{"classic_plus", false},
		{"prime", false},
		{"recliner", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.seatType, func(t *testing.T) {
			req := bookingFixture{
				MovieName: "Dune",
				Seats:     1,
				SeatType:  tt.seatType,
				Email:     "user@example.com",
			}
			err := ValidateStruct(&req)
			if (err != nil) != tt.wantErr {
				t.Errorf("seattype %q: err = %v, wantErr %v", tt.seatType, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	req := bookingFixture{Seats: 0, SeatType: "bogus", Email: "not-an-email"}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if len(err.Errors()) < 3 {
		t.Errorf("expected at least 3 field errors, got %d", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("multiple errors should list fields in details")
	}
}

func TestValidateStruct_SingleErrorMessage(t *testing.T) {
	req := bookingFixture{MovieName: "Dune", Seats: 1, SeatType: "prime", Email: "nope"}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if !strings.Contains(apiErr.Message, "Email") {
		t.Errorf("message should name the failing field, got %q", apiErr.Message)
	}
}

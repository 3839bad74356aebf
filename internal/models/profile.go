// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package models

// Gender is the family member gender attribute used for personalization.
type Gender string

// Supported gender values.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is one of the supported values.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// FamilyMemberProfile is the personalization input for one family member.
// Profiles come from a fixed roster selected in the UI; they are immutable
// for the session and never persisted.
type FamilyMemberProfile struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Age    int    `json:"age" validate:"min=0,max=130"`
	Gender Gender `json:"gender" validate:"omitempty,oneof=male female"`

	// Preferences is an ordered list of genre tags, strongest first.
	Preferences []string `json:"preferences"`
}

// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package personalize

import "testing"

func TestAgeGroupForAge(t *testing.T) {
	tests := []struct {
		age  int
		want AgeGroup
	}{
		{0, AgeGroupChild},
		{8, AgeGroupChild},
		{12, AgeGroupChild},
		{13, AgeGroupTeen},
		{15, AgeGroupTeen},
		{17, AgeGroupTeen},
		{18, AgeGroupAdult},
		{42, AgeGroupAdult},
	}

	for _, tt := range tests {
		if got := AgeGroupForAge(tt.age); got != tt.want {
			t.Errorf("AgeGroupForAge(%d) = %q, want %q", tt.age, got, tt.want)
		}
	}
}

func TestInferMovieAgeGroup(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        AgeGroup
	}{
		{"animation is child", "A fun animation for kids", AgeGroupChild},
		{"family beats action", "A family action comedy", AgeGroupChild},
		{"action is teen", "Non-stop action", AgeGroupTeen},
		{"sci-fi is teen", "Epic sci-fi saga", AgeGroupTeen},
		{"drama is adult", "A courtroom drama", AgeGroupAdult},
		{"thriller is adult", "A tense thriller", AgeGroupAdult},
		{"no genre words", "A quiet story about a town", AgeGroupGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inferMovieAgeGroup(tt.description); got != tt.want {
				t.Errorf("inferMovieAgeGroup(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestInferMovieAgeGroup_TitleIgnored(t *testing.T) {
	// The title alone never decides the band.
	if got := inferMovieAgeGroup("A courtroom drama"); got != AgeGroupAdult {
		t.Fatalf("description inference broken: got %q", got)
	}
	if got := movieAgeGroup("A quiet story about a town", ""); got != AgeGroupGeneral {
		t.Errorf("band inferred from something other than the description: got %q", got)
	}
}

func TestMovieAgeGroup_ExplicitWins(t *testing.T) {
	got := movieAgeGroup("Non-stop action", "Child")
	if got != AgeGroupChild {
		t.Errorf("explicit band ignored: got %q", got)
	}

	got = movieAgeGroup("Non-stop action", "pg-13")
	if got != AgeGroupTeen {
		t.Errorf("unknown explicit band should fall back to inference, got %q", got)
	}
}

func TestIsAgeAppropriate(t *testing.T) {
	tests := []struct {
		viewer AgeGroup
		movie  AgeGroup
		want   bool
	}{
		{AgeGroupChild, AgeGroupChild, true},
		{AgeGroupChild, AgeGroupGeneral, true},
		{AgeGroupChild, AgeGroupTeen, false},
		{AgeGroupChild, AgeGroupAdult, false},
		{AgeGroupTeen, AgeGroupChild, true},
		{AgeGroupTeen, AgeGroupTeen, true},
		{AgeGroupTeen, AgeGroupGeneral, true},
		{AgeGroupTeen, AgeGroupAdult, false},
		{AgeGroupAdult, AgeGroupChild, true},
		{AgeGroupAdult, AgeGroupAdult, true},
		{AgeGroupAdult, AgeGroupGeneral, true},
	}

	for _, tt := range tests {
		if got := isAgeAppropriate(tt.viewer, tt.movie); got != tt.want {
			t.Errorf("isAgeAppropriate(%q, %q) = %v, want %v", tt.viewer, tt.movie, got, tt.want)
		}
	}
}

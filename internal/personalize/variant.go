// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package personalize

import (
	"github.com/showtimenow/showtimenow/internal/config"
	"github.com/showtimenow/showtimenow/internal/models"
)

// childOverrideName routes one named demo profile to the child variant
// regardless of age, mirroring the seeded experience roster.
const childOverrideName = "Mike"

// VariantSelection names the content entry and variant to fetch for a
// profile, plus the band the filter should enforce.
type VariantSelection struct {
	AgeGroup  AgeGroup
	EntryID   string
	VariantID string
}

// SelectVariant picks the audience variant for a family member.
//
// The profile named by childOverrideName always gets the child variant;
// every other profile is banded by age.
func SelectVariant(cfg *config.PersonalizeConfig, profile models.FamilyMemberProfile) VariantSelection {
	band := AgeGroupForAge(profile.Age)
	if profile.Name == childOverrideName {
		band = AgeGroupChild
	}

	sel := VariantSelection{AgeGroup: band}
	switch band {
	case AgeGroupChild:
		sel.EntryID = cfg.ChildEntryID
		sel.VariantID = cfg.ChildVariantID
	case AgeGroupTeen:
		sel.EntryID = cfg.TeenEntryID
		sel.VariantID = cfg.TeenVariantID
	default:
		sel.EntryID = cfg.AdultEntryID
		sel.VariantID = cfg.AdultVariantID
	}
	return sel
}

package service

import (
	"github.com/jakubciszak/mealbook-cli/internal/model"
)

// IntegrityReport summarizes consistency issues across the two collections.
// Orphan ratings are expected after member deletion (soft references, no
// cascade) and are reported for information, not repair.
type IntegrityReport struct {
	DuplicateMemberIDs int `json:"duplicate_member_ids"`
	DuplicateMealIDs   int `json:"duplicate_meal_ids"`
	OrphanRatings      int `json:"orphan_ratings"`
	DuplicateRatings   int `json:"duplicate_ratings"`
}

func (r IntegrityReport) Clean() bool {
	return r.DuplicateMemberIDs == 0 && r.DuplicateMealIDs == 0 && r.DuplicateRatings == 0
}

// CheckIntegrity inspects snapshots of both collections.
func CheckIntegrity(meals []model.Meal, members []model.FamilyMember) IntegrityReport {
	report := IntegrityReport{}

	memberIDs := make(map[string]bool, len(members))
	for _, m := range members {
		if memberIDs[m.ID] {
			report.DuplicateMemberIDs++
			continue
		}
		memberIDs[m.ID] = true
	}

	mealIDs := make(map[string]bool, len(meals))
	for _, meal := range meals {
		if mealIDs[meal.ID] {
			report.DuplicateMealIDs++
		} else {
			mealIDs[meal.ID] = true
		}
		seen := make(map[string]bool, len(meal.Ratings))
		for _, r := range meal.Ratings {
			if !memberIDs[r.MemberID] {
				report.OrphanRatings++
			}
			if seen[r.MemberID] {
				report.DuplicateRatings++
				continue
			}
			seen[r.MemberID] = true
		}
	}
	return report
}

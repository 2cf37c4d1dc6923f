package service_test

import (
	"testing"

	"github.com/jakubciszak/mealbook-cli/internal/model"
	"github.com/jakubciszak/mealbook-cli/internal/service"
)

func TestCheckIntegrityCountsIssues(t *testing.T) {
	t.Parallel()

	members := []model.FamilyMember{
		{ID: "m1", Name: "Anna"},
		{ID: "m1", Name: "Clone"},
		{ID: "m2", Name: "Tomek"},
	}
	meals := []model.Meal{
		{ID: "a", Name: "Bigos", Date: "2024-01-15", Ratings: []model.MealRating{
			{MemberID: "m1", Liked: true},
			{MemberID: "m1", Liked: false},
			{MemberID: "gone", Liked: true},
		}},
		{ID: "a", Name: "Duplicate", Date: "2024-01-16"},
	}

	report := service.CheckIntegrity(meals, members)
	if report.DuplicateMemberIDs != 1 {
		t.Fatalf("duplicate member ids: got %d", report.DuplicateMemberIDs)
	}
	if report.DuplicateMealIDs != 1 {
		t.Fatalf("duplicate meal ids: got %d", report.DuplicateMealIDs)
	}
	if report.DuplicateRatings != 1 {
		t.Fatalf("duplicate ratings: got %d", report.DuplicateRatings)
	}
	if report.OrphanRatings != 1 {
		t.Fatalf("orphan ratings: got %d", report.OrphanRatings)
	}
	if report.Clean() {
		t.Fatalf("report with duplicates must not be clean")
	}
}

func TestCheckIntegrityCleanData(t *testing.T) {
	t.Parallel()

	members := []model.FamilyMember{{ID: "m1", Name: "Anna"}}
	meals := []model.Meal{
		{ID: "a", Name: "Bigos", Date: "2024-01-15", Ratings: []model.MealRating{{MemberID: "m1", Liked: true}}},
	}
	report := service.CheckIntegrity(meals, members)
	if !report.Clean() {
		t.Fatalf("expected clean report, got %+v", report)
	}
	if report.OrphanRatings != 0 {
		t.Fatalf("expected no orphans, got %d", report.OrphanRatings)
	}
}

func TestCheckIntegrityOrphansAreNotDirty(t *testing.T) {
	t.Parallel()

	// Deleting a member leaves its ratings behind on purpose; that alone
	// should not fail a doctor run.
	meals := []model.Meal{
		{ID: "a", Name: "Bigos", Date: "2024-01-15", Ratings: []model.MealRating{{MemberID: "gone", Liked: true}}},
	}
	report := service.CheckIntegrity(meals, nil)
	if report.OrphanRatings != 1 {
		t.Fatalf("expected 1 orphan, got %d", report.OrphanRatings)
	}
	if !report.Clean() {
		t.Fatalf("orphan ratings alone must stay clean, got %+v", report)
	}
}

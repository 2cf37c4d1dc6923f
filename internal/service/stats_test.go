package service_test

import (
	"testing"

	"github.com/jakubciszak/mealbook-cli/internal/model"
	"github.com/jakubciszak/mealbook-cli/internal/service"
)

func TestSummarizeHistory(t *testing.T) {
	t.Parallel()

	members := []model.FamilyMember{{ID: "m1", Name: "Anna"}}
	meals := []model.Meal{
		{ID: "a", Name: "Bigos", Date: "2024-01-16", Ratings: []model.MealRating{
			{MemberID: "m1", Liked: true},
			{MemberID: "gone", Liked: false},
		}},
		{ID: "b", Name: "bigos", Date: "2024-01-15"},
		{ID: "c", Name: "Żurek", Date: "2024-01-15", Ratings: []model.MealRating{{MemberID: "m1", Liked: false}}},
	}

	stats := service.SummarizeHistory(meals, members)
	if stats.TotalMeals != 3 {
		t.Fatalf("total meals: got %d", stats.TotalMeals)
	}
	if stats.DistinctDates != 2 {
		t.Fatalf("distinct dates: got %d", stats.DistinctDates)
	}
	if stats.FirstDate != "2024-01-15" || stats.LastDate != "2024-01-16" {
		t.Fatalf("date range: %s .. %s", stats.FirstDate, stats.LastDate)
	}
	if len(stats.TopMeals) != 2 || stats.TopMeals[0].Count != 2 {
		t.Fatalf("top meals must fold case-insensitive names: %+v", stats.TopMeals)
	}

	if len(stats.MemberTallies) != 2 {
		t.Fatalf("expected tallies for 2 raters, got %+v", stats.MemberTallies)
	}
	var anna, unknown *service.MemberTally
	for i := range stats.MemberTallies {
		switch stats.MemberTallies[i].Name {
		case "Anna":
			anna = &stats.MemberTallies[i]
		case service.UnknownMemberName:
			unknown = &stats.MemberTallies[i]
		}
	}
	if anna == nil || anna.Likes != 1 || anna.Dislikes != 1 {
		t.Fatalf("anna tally wrong: %+v", anna)
	}
	if unknown == nil || unknown.Dislikes != 1 {
		t.Fatalf("deleted member must tally as unknown: %+v", unknown)
	}
}

func TestSummarizeHistoryEmpty(t *testing.T) {
	t.Parallel()

	stats := service.SummarizeHistory(nil, nil)
	if stats.TotalMeals != 0 || stats.DistinctDates != 0 {
		t.Fatalf("empty history stats wrong: %+v", stats)
	}
	if stats.FirstDate != "" || stats.LastDate != "" {
		t.Fatalf("empty history must have no date range: %+v", stats)
	}
}

package service

import (
	"sort"
	"strings"

	"github.com/jakubciszak/mealbook-cli/internal/model"
)

type MealCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MemberTally struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Likes    int    `json:"likes"`
	Dislikes int    `json:"dislikes"`
}

// HistoryStats is a read-only summary of the meal history, resolved against
// the member collection the same way the CSV export is.
type HistoryStats struct {
	TotalMeals    int           `json:"total_meals"`
	DistinctDates int           `json:"distinct_dates"`
	FirstDate     string        `json:"first_date,omitempty"`
	LastDate      string        `json:"last_date,omitempty"`
	TopMeals      []MealCount   `json:"top_meals"`
	MemberTallies []MemberTally `json:"member_tallies"`
}

// SummarizeHistory computes counts over snapshots of both collections.
// Top meals are keyed by case-insensitive name and capped at five.
func SummarizeHistory(meals []model.Meal, members []model.FamilyMember) HistoryStats {
	stats := HistoryStats{TotalMeals: len(meals), TopMeals: []MealCount{}, MemberTallies: []MemberTally{}}

	dates := map[string]bool{}
	counts := map[string]*MealCount{}
	tallies := map[string]*MemberTally{}
	for _, meal := range meals {
		dates[meal.Date] = true
		if stats.FirstDate == "" || meal.Date < stats.FirstDate {
			stats.FirstDate = meal.Date
		}
		if meal.Date > stats.LastDate {
			stats.LastDate = meal.Date
		}
		key := strings.ToLower(meal.Name)
		if c, ok := counts[key]; ok {
			c.Count++
		} else {
			counts[key] = &MealCount{Name: meal.Name, Count: 1}
		}
		for _, r := range meal.Ratings {
			t, ok := tallies[r.MemberID]
			if !ok {
				t = &MemberTally{MemberID: r.MemberID, Name: UnknownMemberName}
				tallies[r.MemberID] = t
			}
			if r.Liked {
				t.Likes++
			} else {
				t.Dislikes++
			}
		}
	}
	stats.DistinctDates = len(dates)

	for _, m := range members {
		if t, ok := tallies[m.ID]; ok {
			t.Name = m.Name
		}
	}

	for _, c := range counts {
		stats.TopMeals = append(stats.TopMeals, *c)
	}
	sort.Slice(stats.TopMeals, func(i, j int) bool {
		if stats.TopMeals[i].Count != stats.TopMeals[j].Count {
			return stats.TopMeals[i].Count > stats.TopMeals[j].Count
		}
		return stats.TopMeals[i].Name < stats.TopMeals[j].Name
	})
	if len(stats.TopMeals) > 5 {
		stats.TopMeals = stats.TopMeals[:5]
	}

	for _, t := range tallies {
		stats.MemberTallies = append(stats.MemberTallies, *t)
	}
	sort.Slice(stats.MemberTallies, func(i, j int) bool {
		return stats.MemberTallies[i].Name < stats.MemberTallies[j].Name
	})
	return stats
}

package mealbook

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jakubciszak/mealbook-cli/internal/app"
	"github.com/jakubciszak/mealbook-cli/internal/model"
	"github.com/jakubciszak/mealbook-cli/internal/service"
	"github.com/jakubciszak/mealbook-cli/internal/storage"
)

func resolveDataPath() (string, error) {
	if dataPath != "" {
		return dataPath, nil
	}
	if env := os.Getenv("MEALBOOK_DB"); env != "" {
		return env, nil
	}
	return app.DefaultDataPath()
}

// withStores opens storage, loads both collections, runs the command body,
// and drains pending writes before closing.
func withStores(run func(members *service.MemberStore, meals *service.MealStore) error) error {
	path, err := resolveDataPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDataDir(path); err != nil {
		return err
	}
	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	members := service.NewMemberStore(store)
	meals := service.NewMealStore(store)
	defer members.Close()
	defer meals.Close()

	ctx := context.Background()
	members.Load(ctx)
	meals.Load(ctx)
	return run(members, meals)
}

func parseDateArg(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if _, err := time.ParseInLocation("2006-01-02", value, time.Local); err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", value)
	}
	return value, nil
}

func memberName(members *service.MemberStore, id string) string {
	if m, ok := members.MemberByID(id); ok {
		return m.Name
	}
	return service.UnknownMemberName
}

func formatRatings(members *service.MemberStore, meal model.Meal) string {
	if len(meal.Ratings) == 0 {
		return "no ratings"
	}
	parts := make([]string, 0, len(meal.Ratings))
	for _, r := range meal.Ratings {
		verdict := "disliked"
		if r.Liked {
			verdict = "liked"
		}
		parts = append(parts, fmt.Sprintf("%s %s", memberName(members, r.MemberID), verdict))
	}
	return strings.Join(parts, ", ")
}

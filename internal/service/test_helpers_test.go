package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jakubciszak/mealbook-cli/internal/service"
	"github.com/jakubciszak/mealbook-cli/internal/storage"
)

func fixedClock(iso string) func() time.Time {
	parsed, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return parsed }
}

func tickingClock(iso string, step time.Duration) func() time.Time {
	parsed, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		panic(err)
	}
	n := 0
	return func() time.Time {
		t := parsed.Add(time.Duration(n) * step)
		n++
		return t
	}
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newMemberStore(t *testing.T, st storage.Store, opts ...service.Option) *service.MemberStore {
	t.Helper()
	s := service.NewMemberStore(st, opts...)
	t.Cleanup(s.Close)
	s.Load(context.Background())
	return s
}

func newMealStore(t *testing.T, st storage.Store, opts ...service.Option) *service.MealStore {
	t.Helper()
	s := service.NewMealStore(st, opts...)
	t.Cleanup(s.Close)
	s.Load(context.Background())
	return s
}

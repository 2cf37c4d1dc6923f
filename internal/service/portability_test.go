package service_test

import (
	"testing"

	"github.com/jakubciszak/mealbook-cli/internal/model"
	"github.com/jakubciszak/mealbook-cli/internal/service"
	"github.com/jakubciszak/mealbook-cli/internal/storage"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()
	st := storage.NewMemoryStore()
	members := newMemberStore(t, st)
	meals := newMealStore(t, st)

	anna := members.AddMember("Anna", "")
	meal := meals.AddMeal("Bigos", "2024-01-15", []string{"kapusta"})
	meals.SetRating(meal.ID, anna.ID, true)

	data := service.ExportSnapshot(members, meals)
	if len(data.Members) != 1 || len(data.Meals) != 1 {
		t.Fatalf("snapshot incomplete: %d members, %d meals", len(data.Members), len(data.Meals))
	}

	st2 := storage.NewMemoryStore()
	members2 := newMemberStore(t, st2)
	meals2 := newMealStore(t, st2)
	report, err := service.ImportSnapshot(members2, meals2, data, service.ImportOptions{Mode: service.ImportModeMerge})
	if err != nil {
		t.Fatalf("import snapshot: %v", err)
	}
	if report.Inserted != 2 {
		t.Fatalf("expected 2 inserts, got %+v", report)
	}
	got, ok := meals2.MealByID(meal.ID)
	if !ok || len(got.Ratings) != 1 || got.Ratings[0].MemberID != anna.ID {
		t.Fatalf("imported meal lost ratings: %+v", got)
	}
}

func TestImportModes(t *testing.T) {
	t.Parallel()
	st := storage.NewMemoryStore()
	members := newMemberStore(t, st)
	meals := newMealStore(t, st)
	members.AddMember("Anna", "")
	existing := meals.AddMeal("Bigos", "2024-01-15", nil)

	conflicting := &service.Snapshot{
		Meals: []model.Meal{{ID: existing.ID, Name: "Bigos v2", Date: "2024-01-15"}},
	}

	if _, err := service.ImportSnapshot(members, meals, conflicting, service.ImportOptions{Mode: service.ImportModeFail}); err == nil {
		t.Fatalf("fail mode must error on conflict")
	}

	report, err := service.ImportSnapshot(members, meals, conflicting, service.ImportOptions{Mode: service.ImportModeSkip})
	if err != nil {
		t.Fatalf("skip mode: %v", err)
	}
	if report.Skipped != 1 {
		t.Fatalf("expected 1 skip, got %+v", report)
	}
	got, _ := meals.MealByID(existing.ID)
	if got.Name != "Bigos" {
		t.Fatalf("skip mode must not overwrite, got %q", got.Name)
	}

	report, err = service.ImportSnapshot(members, meals, conflicting, service.ImportOptions{Mode: service.ImportModeMerge})
	if err != nil {
		t.Fatalf("merge mode: %v", err)
	}
	if report.Updated != 1 {
		t.Fatalf("expected 1 update, got %+v", report)
	}
	got, _ = meals.MealByID(existing.ID)
	if got.Name != "Bigos v2" {
		t.Fatalf("merge mode must overwrite, got %q", got.Name)
	}

	replacement := &service.Snapshot{
		Meals: []model.Meal{{ID: "fresh", Name: "Żurek", Date: "2024-01-16"}},
	}
	if _, err := service.ImportSnapshot(members, meals, replacement, service.ImportOptions{Mode: service.ImportModeReplace}); err != nil {
		t.Fatalf("replace mode: %v", err)
	}
	if n := len(meals.Meals()); n != 1 {
		t.Fatalf("replace must discard prior meals, got %d", n)
	}
	if n := len(members.Members()); n != 0 {
		t.Fatalf("replace must discard prior members, got %d", n)
	}
}

func TestImportDryRunLeavesStoresUntouched(t *testing.T) {
	t.Parallel()
	st := storage.NewMemoryStore()
	members := newMemberStore(t, st)
	meals := newMealStore(t, st)

	data := &service.Snapshot{
		Members: []model.FamilyMember{{ID: "m1", Name: "Anna"}},
		Meals:   []model.Meal{{ID: "a", Name: "Bigos", Date: "2024-01-15"}},
	}
	report, err := service.ImportSnapshot(members, meals, data, service.ImportOptions{Mode: service.ImportModeMerge, DryRun: true})
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if report.Inserted != 2 {
		t.Fatalf("dry run must count inserts, got %+v", report)
	}
	if len(members.Members()) != 0 || len(meals.Meals()) != 0 {
		t.Fatalf("dry run must not mutate stores")
	}
}

func TestImportSkipsRecordsMissingRequiredFields(t *testing.T) {
	t.Parallel()
	st := storage.NewMemoryStore()
	members := newMemberStore(t, st)
	meals := newMealStore(t, st)

	data := &service.Snapshot{
		Members: []model.FamilyMember{{ID: "", Name: "NoID"}, {ID: "m1", Name: "  "}},
		Meals:   []model.Meal{{ID: "a", Name: "Bigos", Date: ""}},
	}
	report, err := service.ImportSnapshot(members, meals, data, service.ImportOptions{Mode: service.ImportModeMerge})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Inserted != 0 || len(report.Warnings) != 3 {
		t.Fatalf("expected 3 warnings and no inserts, got %+v", report)
	}
}

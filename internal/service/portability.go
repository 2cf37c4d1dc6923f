package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jakubciszak/mealbook-cli/internal/model"
)

// Snapshot is the portable JSON form of the whole data set.
type Snapshot struct {
	Members []model.FamilyMember `json:"members"`
	Meals   []model.Meal         `json:"meals"`
}

type ImportMode string

const (
	ImportModeFail    ImportMode = "fail"
	ImportModeSkip    ImportMode = "skip"
	ImportModeMerge   ImportMode = "merge"
	ImportModeReplace ImportMode = "replace"
)

type ImportOptions struct {
	Mode   ImportMode
	DryRun bool
}

type ImportReport struct {
	Inserted  int      `json:"inserted"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Conflicts int      `json:"conflicts"`
	Warnings  []string `json:"warnings,omitempty"`
}

// ExportSnapshot captures both collections as they stand.
func ExportSnapshot(members *MemberStore, meals *MealStore) *Snapshot {
	return &Snapshot{Members: members.Members(), Meals: meals.Meals()}
}

// ImportSnapshot merges a snapshot into the stores. Conflicts are detected by
// id; the mode decides whether an existing record fails the import, is
// skipped, or is overwritten. Replace discards the current data first.
// DryRun reports what would happen without mutating anything. After a merge
// the meal history is re-sorted newest date first so the store's ordering
// convention holds for interleaved histories.
func ImportSnapshot(members *MemberStore, meals *MealStore, data *Snapshot, opts ImportOptions) (ImportReport, error) {
	report := ImportReport{}
	mode := normalizeImportMode(opts.Mode)

	curMembers := members.Members()
	curMeals := meals.Meals()
	if mode == ImportModeReplace {
		curMembers = []model.FamilyMember{}
		curMeals = []model.Meal{}
	}

	memberIdx := make(map[string]int, len(curMembers))
	for i, m := range curMembers {
		memberIdx[m.ID] = i
	}
	for _, m := range data.Members {
		if m.ID == "" || strings.TrimSpace(m.Name) == "" {
			report.Warnings = append(report.Warnings, fmt.Sprintf("member %q missing id or name", m.Name))
			continue
		}
		m.Name = strings.TrimSpace(m.Name)
		if i, ok := memberIdx[m.ID]; ok {
			switch mode {
			case ImportModeFail:
				report.Conflicts++
				return report, fmt.Errorf("import conflict for member %q", m.Name)
			case ImportModeSkip:
				report.Skipped++
			default:
				curMembers[i] = m
				report.Updated++
			}
			continue
		}
		memberIdx[m.ID] = len(curMembers)
		curMembers = append(curMembers, m)
		report.Inserted++
	}

	mealIdx := make(map[string]int, len(curMeals))
	for i, m := range curMeals {
		mealIdx[m.ID] = i
	}
	for _, m := range data.Meals {
		if m.ID == "" || strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Date) == "" {
			report.Warnings = append(report.Warnings, fmt.Sprintf("meal %q missing id, name, or date", m.Name))
			continue
		}
		m.Name = strings.TrimSpace(m.Name)
		if m.Ratings == nil {
			m.Ratings = []model.MealRating{}
		}
		if i, ok := mealIdx[m.ID]; ok {
			switch mode {
			case ImportModeFail:
				report.Conflicts++
				return report, fmt.Errorf("import conflict for meal %q on %s", m.Name, m.Date)
			case ImportModeSkip:
				report.Skipped++
			default:
				curMeals[i] = m
				report.Updated++
			}
			continue
		}
		mealIdx[m.ID] = len(curMeals)
		curMeals = append(curMeals, m)
		report.Inserted++
	}

	if opts.DryRun {
		return report, nil
	}

	sort.SliceStable(curMeals, func(i, j int) bool { return curMeals[i].Date > curMeals[j].Date })
	members.replaceMembers(curMembers)
	meals.replaceMeals(curMeals)
	return report, nil
}

func normalizeImportMode(mode ImportMode) ImportMode {
	switch mode {
	case ImportModeFail, ImportModeSkip, ImportModeMerge, ImportModeReplace:
		return mode
	default:
		return ImportModeMerge
	}
}

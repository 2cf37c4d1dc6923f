package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jakubciszak/mealbook-cli/internal/model"
)

// UnknownMemberName is the placeholder used when a rating references a
// member id with no matching record.
const UnknownMemberName = "Unknown"

// csvHeader is the fixed export header. Label text is presentation, not
// contract, so it is not configurable.
var csvHeader = []string{"Date", "Time", "Meal name", "Ingredients", "Liked-by", "Disliked-by"}

// FileWriter persists an export under a file name and reports the resulting
// path.
type FileWriter interface {
	WriteFile(ctx context.Context, name string, data []byte) (string, error)
}

// Sharer hands a written file to the platform. On a desktop CLI the default
// implementation announces the path; tests exercise unavailable and failing
// sharers.
type Sharer interface {
	Available(ctx context.Context) bool
	Share(ctx context.Context, path string) error
}

// Exporter serializes the meal history to CSV and hands it off. It reads the
// meal store and resolves member names from the caller-supplied collection;
// it never mutates either.
type Exporter struct {
	meals  *MealStore
	files  FileWriter
	sharer Sharer
	now    func() time.Time
	loc    *time.Location
}

func NewExporter(meals *MealStore, files FileWriter, sharer Sharer, opts ...Option) *Exporter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Exporter{meals: meals, files: files, sharer: sharer, now: cfg.now, loc: cfg.loc}
}

// ExportCSV writes the full history as CSV and shares it. It returns false
// when there are no meals (nothing is written), when the write or share
// fails, or when sharing is unavailable (the file is kept either way).
// Failures never propagate past the boolean.
func (e *Exporter) ExportCSV(ctx context.Context, members []model.FamilyMember) bool {
	meals := e.meals.Meals()
	if len(meals) == 0 {
		return false
	}

	content := BuildCSV(meals, members, e.loc)
	name := fmt.Sprintf("meal-history-%s.csv", e.now().Format("2006-01-02"))

	path, err := e.files.WriteFile(ctx, name, []byte(content))
	if err != nil {
		log.Printf("mealbook: write export: %v", err)
		return false
	}
	if !e.sharer.Available(ctx) {
		return false
	}
	if err := e.sharer.Share(ctx, path); err != nil {
		log.Printf("mealbook: share export: %v", err)
		return false
	}
	return true
}

// BuildCSV renders the meals as CSV text: a byte-order mark, the fixed
// header, then one row per meal ordered by descending date (insertion order
// preserved within a date). The input slices are not modified.
func BuildCSV(meals []model.Meal, members []model.FamilyMember, loc *time.Location) string {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	memberName := func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return UnknownMemberName
	}

	sorted := make([]model.Meal, len(meals))
	copy(sorted, meals)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	var b strings.Builder
	b.WriteString("\ufeff")
	b.WriteString(strings.Join(csvHeader, ","))
	for _, meal := range sorted {
		timeOfDay := ""
		if created, err := time.Parse(time.RFC3339, meal.CreatedAt); err == nil {
			timeOfDay = created.In(loc).Format("15:04")
		}
		var likes, dislikes []string
		for _, r := range meal.Ratings {
			if r.Liked {
				likes = append(likes, memberName(r.MemberID))
			} else {
				dislikes = append(dislikes, memberName(r.MemberID))
			}
		}
		fields := []string{
			meal.Date,
			timeOfDay,
			meal.Name,
			strings.Join(meal.Ingredients, ", "),
			strings.Join(likes, ", "),
			strings.Join(dislikes, ", "),
		}
		b.WriteByte('\n')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeCSV(f))
		}
	}
	return b.String()
}

// escapeCSV quotes a field only when it contains a comma, quote, or newline,
// doubling interior quotes.
func escapeCSV(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// DirFileWriter writes exports into a directory, creating it on demand.
type DirFileWriter struct {
	Dir string
}

func (w DirFileWriter) WriteFile(_ context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}

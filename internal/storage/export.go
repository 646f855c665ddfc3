// ABOUTME: Export and import functionality for workout data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/harperreed/routine/internal/dates"
	"github.com/harperreed/routine/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for workout data.
type ExportData struct {
	Version    string           `json:"version" yaml:"version"`
	ExportedAt time.Time        `json:"exported_at" yaml:"exported_at"`
	Tool       string           `json:"tool" yaml:"tool"`
	Workouts   []models.Workout `json:"workouts" yaml:"workouts"`
}

// NewExportData wraps the collection in an export envelope.
func NewExportData(workouts []models.Workout) *ExportData {
	if workouts == nil {
		workouts = []models.Workout{}
	}
	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "routine",
		Workouts:   workouts,
	}
}

// ExportJSON exports all workouts as JSON.
func ExportJSON(workouts []models.Workout) ([]byte, error) {
	return json.MarshalIndent(NewExportData(workouts), "", "  ")
}

// ExportYAML exports all workouts as YAML.
func ExportYAML(workouts []models.Workout) ([]byte, error) {
	data := NewExportData(workouts)

	yamlData := struct {
		Version    string        `yaml:"version"`
		ExportedAt string        `yaml:"exported_at"`
		Tool       string        `yaml:"tool"`
		Workouts   []yamlWorkout `yaml:"workouts"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Workouts:   make([]yamlWorkout, 0, len(data.Workouts)),
	}

	for _, w := range data.Workouts {
		yamlData.Workouts = append(yamlData.Workouts, yamlWorkout{
			ID:          w.ID,
			Title:       w.Title,
			Sets:        w.Sets,
			Reps:        w.Reps,
			Days:        strings.Fields(models.FormatWeekdays(w.RepeatDays)),
			Media:       w.MediaURL,
			CompletedOn: w.CompletedOn,
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlWorkout struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Sets        string   `yaml:"sets,omitempty"`
	Reps        string   `yaml:"reps,omitempty"`
	Days        []string `yaml:"days"`
	Media       string   `yaml:"media,omitempty"`
	CompletedOn []string `yaml:"completed_on,omitempty"`
}

// ExportMarkdown exports workouts as Markdown: one table with every workout
// followed by the weekly schedule.
func ExportMarkdown(workouts []models.Workout) string {
	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Routine Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	sb.WriteString("## Workouts\n\n")
	if len(workouts) == 0 {
		sb.WriteString("No workouts.\n")
		return sb.String()
	}
	sb.WriteString("| Title | Volume | Days | Media | Completed |\n")
	sb.WriteString("|-------|--------|------|-------|-----------|\n")
	for _, w := range workouts {
		days := slices.Clone(w.RepeatDays)
		slices.Sort(days)
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %d |\n",
			escapeCell(w.Title),
			w.Summary(),
			models.FormatWeekdays(days),
			models.ClassifyMedia(w.MediaURL),
			len(w.CompletedOn)))
	}

	sb.WriteString("\n## Weekly Schedule\n\n")
	for day, name := range models.WeekdayNames {
		var titles []string
		for _, w := range workouts {
			if w.RepeatsOn(day) {
				titles = append(titles, w.Title)
			}
		}
		if len(titles) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("### %s\n\n", name))
		for _, t := range titles {
			sb.WriteString(fmt.Sprintf("- %s\n", t))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ParseImport decodes an import file. Both the export envelope and a bare
// snapshot array are accepted. Every workout must have an ID, pass
// validation, and carry only YYYY-MM-DD completion keys. Repeat days and
// completion keys are deduplicated.
func ParseImport(data []byte) ([]models.Workout, error) {
	trimmed := bytes.TrimSpace(data)
	var workouts []models.Workout

	if bytes.HasPrefix(trimmed, []byte("[")) {
		if err := json.Unmarshal(trimmed, &workouts); err != nil {
			return nil, fmt.Errorf("unmarshal JSON: %w", err)
		}
	} else {
		var exportData ExportData
		if err := json.Unmarshal(trimmed, &exportData); err != nil {
			return nil, fmt.Errorf("unmarshal JSON: %w", err)
		}
		workouts = exportData.Workouts
	}

	seen := make(map[string]bool, len(workouts))
	out := make([]models.Workout, 0, len(workouts))
	for i := range workouts {
		w := workouts[i].Clone()
		if w.ID == "" {
			return nil, fmt.Errorf("workout %d: missing id", i)
		}
		if seen[w.ID] {
			return nil, fmt.Errorf("workout %d: duplicate id %s", i, w.ID)
		}
		seen[w.ID] = true
		if err := w.Input().Validate(); err != nil {
			return nil, fmt.Errorf("workout %s: %w", w.ID, err)
		}
		w.Apply(w.Input())

		completed := make([]string, 0, len(w.CompletedOn))
		for _, key := range w.CompletedOn {
			if _, err := time.Parse(dates.KeyLayout, key); err != nil {
				return nil, fmt.Errorf("workout %s: invalid completion date %q (want YYYY-MM-DD)", w.ID, key)
			}
			if !slices.Contains(completed, key) {
				completed = append(completed, key)
			}
		}
		w.CompletedOn = completed
		out = append(out, w)
	}
	return out, nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

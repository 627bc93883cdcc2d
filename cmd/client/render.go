package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/ergo/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderTasks(tasks []models.Task) string {
	if len(tasks) == 0 {
		return "no tasks"
	}

	t := newTable("ID", "NAME", "DUE", "TAGS", "DONE")
	for _, task := range tasks {
		t.Row(task.ID, task.TaskName, dueString(task), tagNames(task.Tags), fmt.Sprint(len(task.Completions)))
	}
	return t.String()
}

func renderTags(tags []models.Tag) string {
	if len(tags) == 0 {
		return "no tags"
	}

	t := newTable("ID", "NAME", "COLOR")
	for _, tag := range tags {
		t.Row(tag.ID, tag.TagName, tag.TagColor)
	}
	return t.String()
}

func dueString(task models.Task) string {
	if task.IsRecursive {
		slots := make([]string, 0, len(task.RecTaskDate))
		for _, slot := range task.RecTaskDate {
			slots = append(slots, fmt.Sprintf("%s %02d:%02d", slot.Day, slot.Time/100, slot.Time%100))
		}
		return strings.Join(slots, ", ")
	}
	if task.TaskDate == nil {
		return "-"
	}
	return time.Unix(*task.TaskDate, 0).UTC().Format(time.DateTime)
}

func tagNames(tags []models.Tag) string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.TagName)
	}
	return strings.Join(names, ", ")
}

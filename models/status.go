package models

import "fmt"

// ProjectStatus is the lifecycle state of a project. Any-to-any transitions
// are allowed; only membership in the enum is enforced.
type ProjectStatus string

const (
	StatusDraft     ProjectStatus = "draft"
	StatusActive    ProjectStatus = "active"
	StatusCompleted ProjectStatus = "completed"
	StatusArchived  ProjectStatus = "archived"
)

// ValidStatuses lists every accepted project status, in lifecycle order.
var ValidStatuses = []ProjectStatus{StatusDraft, StatusActive, StatusCompleted, StatusArchived}

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// ParseProjectStatus validates raw against the status enum.
func ParseProjectStatus(raw string) (ProjectStatus, error) {
	s := ProjectStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("invalid project status %q (expected one of %v)", raw, ValidStatuses)
	}
	return s, nil
}

package services

import (
	"strings"

	"github.com/rpupo63/portfolio-api-backend/models"
)

// MatchMode selects the skill-filter predicate.
type MatchMode int

const (
	// MatchSubstring retains a project when the query is a substring of any
	// of its normalized skill names. This is the default.
	MatchSubstring MatchMode = iota
	// MatchExact retains a project only when a normalized skill name equals
	// the query.
	MatchExact
)

// FilterBySkill retains the projects whose effective skill set satisfies the
// query under the given mode. An absent or whitespace-only query is no filter
// at all: the input comes back unchanged, order preserved. The query is
// normalized (trim + lowercase) before matching, so filtering is always
// case-insensitive.
func FilterBySkill(projects []*models.Project, skillQuery string, mode MatchMode) []*models.Project {
	query := strings.ToLower(strings.TrimSpace(skillQuery))
	if query == "" {
		return projects
	}

	filtered := []*models.Project{}
	for _, project := range projects {
		if projectHasSkill(project, query, mode) {
			filtered = append(filtered, project)
		}
	}
	return filtered
}

func projectHasSkill(project *models.Project, query string, mode MatchMode) bool {
	for _, name := range EffectiveSkills(project) {
		if mode == MatchExact {
			if name == query {
				return true
			}
			continue
		}
		if strings.Contains(name, query) {
			return true
		}
	}
	return false
}

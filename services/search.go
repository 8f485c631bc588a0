package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-api-backend/database"
	"github.com/rpupo63/portfolio-api-backend/errs"
	"github.com/rpupo63/portfolio-api-backend/models"
)

// Catalog is the query engine over the project/skill/profile records: skill
// filtering, free-text search and top-skill ranking, all backend-agnostic.
type Catalog struct {
	projects database.ProjectRepo
	skills   database.SkillRepo
	resolver SkillResolver
}

func NewCatalog(db database.Database) Catalog {
	return Catalog{
		projects: db.ProjectRepo(),
		skills:   db.SkillRepo(),
		resolver: NewSkillResolver(db.SkillRepo(), db.ProjectSkillRepo()),
	}
}

func (c Catalog) Resolver() SkillResolver {
	return c.resolver
}

// SearchResult carries the two independent result sequences of a search. Both
// are de-duplicated by id and kept in store order; no relevance ranking.
type SearchResult struct {
	Projects []*models.Project `json:"projects"`
	Skills   []*models.Skill   `json:"skills"`
}

// Search returns the union of projects whose title, description or effective
// skill names contain the query, plus skills whose name contains it, all
// case-insensitively. A query that is empty after trimming is a validation
// error; a well-formed query with no matches returns empty sequences.
func (c Catalog) Search(query string) (SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return SearchResult{}, errs.NewInvalidQueryError("query must not be empty")
	}

	result := SearchResult{
		Projects: []*models.Project{},
		Skills:   []*models.Skill{},
	}

	projects, err := c.projects.FindAll(database.ProjectQuery{})
	if err != nil {
		return SearchResult{}, errs.NewDatabaseError("find", "projects", err)
	}

	seenProjects := make(map[uuid.UUID]struct{})
	for _, project := range projects {
		if _, ok := seenProjects[project.ID]; ok {
			continue
		}
		if projectMatches(project, q) {
			seenProjects[project.ID] = struct{}{}
			result.Projects = append(result.Projects, project)
		}
	}

	skills, err := c.skills.FindAll()
	if err != nil {
		return SearchResult{}, errs.NewDatabaseError("find", "skills", err)
	}

	seenSkills := make(map[uuid.UUID]struct{})
	for _, skill := range skills {
		if _, ok := seenSkills[skill.ID]; ok {
			continue
		}
		if strings.Contains(strings.ToLower(skill.Name), q) {
			seenSkills[skill.ID] = struct{}{}
			result.Skills = append(result.Skills, skill)
		}
	}

	return result, nil
}

// projectMatches applies the case-insensitive substring predicate across
// title, description and the effective skill set. A project can match on a
// skill name alone.
func projectMatches(project *models.Project, q string) bool {
	if strings.Contains(strings.ToLower(project.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(project.Description), q) {
		return true
	}
	for _, name := range EffectiveSkills(project) {
		if strings.Contains(name, q) {
			return true
		}
	}
	return false
}

// TopSkills returns skills ranked by project-association count, descending.
func (c Catalog) TopSkills(limit int) ([]models.SkillWithCount, error) {
	ranked, err := c.skills.TopByProjectCount(limit)
	if err != nil {
		return nil, errs.NewDatabaseError("rank", "skills", err)
	}
	if ranked == nil {
		ranked = []models.SkillWithCount{}
	}
	return ranked, nil
}

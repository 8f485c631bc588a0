package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-api-backend/models"
	"github.com/rpupo63/portfolio-api-backend/services"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func projectWithSkills(title string, skills ...string) *models.Project {
	return &models.Project{
		ID:         uuid.New(),
		Title:      title,
		SkillNames: datatypes.NewJSONSlice(skills),
	}
}

func TestFilterBySkill(t *testing.T) {
	python := projectWithSkills("API Tool", "Python", "FastAPI")
	java := projectWithSkills("Legacy Service", "Java")
	projects := []*models.Project{python, java}

	t.Run("empty query is identity, order preserved", func(t *testing.T) {
		assert.Equal(t, projects, services.FilterBySkill(projects, "", services.MatchSubstring))
		assert.Equal(t, projects, services.FilterBySkill(projects, "   ", services.MatchSubstring))
	})

	t.Run("substring match is the default predicate", func(t *testing.T) {
		got := services.FilterBySkill(projects, "py", services.MatchSubstring)
		assert.Equal(t, []*models.Project{python}, got)
	})

	t.Run("query is normalized before matching", func(t *testing.T) {
		got := services.FilterBySkill(projects, "  PYTHON ", services.MatchSubstring)
		assert.Equal(t, []*models.Project{python}, got)
	})

	t.Run("exact mode rejects partial names", func(t *testing.T) {
		assert.Empty(t, services.FilterBySkill(projects, "py", services.MatchExact))
		assert.Equal(t, []*models.Project{python}, services.FilterBySkill(projects, "python", services.MatchExact))
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		got := services.FilterBySkill(nil, "python", services.MatchSubstring)
		assert.Empty(t, got)
	})

	t.Run("order follows input across multiple matches", func(t *testing.T) {
		a := projectWithSkills("A", "go")
		b := projectWithSkills("B", "golang")
		got := services.FilterBySkill([]*models.Project{a, b}, "go", services.MatchSubstring)
		assert.Equal(t, []*models.Project{a, b}, got)
	})
}

func TestEffectiveSkills(t *testing.T) {
	t.Run("reads the embedded list shape", func(t *testing.T) {
		p := projectWithSkills("p", "Python", "  FastAPI ")
		assert.Equal(t, []string{"python", "fastapi"}, services.EffectiveSkills(p))
	})

	t.Run("reads the join row shape", func(t *testing.T) {
		p := &models.Project{
			ID: uuid.New(),
			Skills: []models.ProjectSkill{
				{Skill: models.Skill{Name: "python"}},
				{Skill: models.Skill{Name: "react"}},
			},
		}
		assert.Equal(t, []string{"python", "react"}, services.EffectiveSkills(p))
	})

	t.Run("unions both shapes without duplicates", func(t *testing.T) {
		p := projectWithSkills("p", "Python", "react")
		p.Skills = []models.ProjectSkill{
			{Skill: models.Skill{Name: "python"}},
			{Skill: models.Skill{Name: "sql"}},
		}
		assert.Equal(t, []string{"python", "sql", "react"}, services.EffectiveSkills(p))
	})

	t.Run("skips entries that fail normalization", func(t *testing.T) {
		p := projectWithSkills("p", "  ", "go")
		assert.Equal(t, []string{"go"}, services.EffectiveSkills(p))
	})
}

package services_test

import (
	"testing"

	"github.com/rpupo63/portfolio-api-backend/database"
	"github.com/rpupo63/portfolio-api-backend/errs"
	"github.com/rpupo63/portfolio-api-backend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T) (services.Catalog, database.Database) {
	t.Helper()
	db := database.NewMemory()
	catalog := services.NewCatalog(db)
	resolver := catalog.Resolver()

	apiTool := addProject(t, db, "API Tool")
	apiTool.Description = "REST backend"
	require.NoError(t, db.ProjectRepo().Update(apiTool))
	require.NoError(t, resolver.AttachSkill(apiTool, "Python", nil))
	require.NoError(t, resolver.AttachSkill(apiTool, "FastAPI", nil))

	site := addProject(t, db, "Personal Site")
	site.Description = "portfolio frontend"
	require.NoError(t, db.ProjectRepo().Update(site))
	require.NoError(t, resolver.AttachSkill(site, "React", nil))

	return catalog, db
}

func TestSearch(t *testing.T) {
	t.Run("empty query after trimming is a validation error", func(t *testing.T) {
		catalog, _ := seedCatalog(t)
		for _, q := range []string{"", "   "} {
			_, err := catalog.Search(q)
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		}
	})

	t.Run("matches project titles case-insensitively", func(t *testing.T) {
		catalog, _ := seedCatalog(t)
		result, err := catalog.Search("api tool")
		require.NoError(t, err)
		require.Len(t, result.Projects, 1)
		assert.Equal(t, "API Tool", result.Projects[0].Title)
	})

	t.Run("matches project descriptions", func(t *testing.T) {
		catalog, _ := seedCatalog(t)
		result, err := catalog.Search("FRONTEND")
		require.NoError(t, err)
		require.Len(t, result.Projects, 1)
		assert.Equal(t, "Personal Site", result.Projects[0].Title)
	})

	t.Run("a skill-name match pulls in the project", func(t *testing.T) {
		catalog, _ := seedCatalog(t)
		result, err := catalog.Search("react")
		require.NoError(t, err)
		require.Len(t, result.Projects, 1)
		assert.Equal(t, "Personal Site", result.Projects[0].Title)
		require.Len(t, result.Skills, 1)
		assert.Equal(t, "react", result.Skills[0].Name)
	})

	t.Run("project and skill sequences are independent", func(t *testing.T) {
		catalog, _ := seedCatalog(t)
		// "fast" hits the fastapi skill and through it the project, even
		// though neither title nor description contains it.
		result, err := catalog.Search("fast")
		require.NoError(t, err)
		require.Len(t, result.Projects, 1)
		assert.Equal(t, "API Tool", result.Projects[0].Title)
		require.Len(t, result.Skills, 1)
		assert.Equal(t, "fastapi", result.Skills[0].Name)
	})

	t.Run("a project appears once even with multiple matching fields", func(t *testing.T) {
		catalog, db := seedCatalog(t)
		resolver := catalog.Resolver()
		apiProject, err := db.ProjectRepo().FindAll(database.ProjectQuery{})
		require.NoError(t, err)
		require.NoError(t, resolver.AttachSkill(apiProject[0], "api design", nil))

		result, err := catalog.Search("api")
		require.NoError(t, err)
		seen := map[string]int{}
		for _, p := range result.Projects {
			seen[p.ID.String()]++
		}
		for id, count := range seen {
			assert.Equal(t, 1, count, "project %s duplicated in results", id)
		}
	})

	t.Run("no matches yields empty sequences, not an error", func(t *testing.T) {
		catalog, _ := seedCatalog(t)
		result, err := catalog.Search("nonexistent-zzz")
		require.NoError(t, err)
		assert.NotNil(t, result.Projects)
		assert.NotNil(t, result.Skills)
		assert.Empty(t, result.Projects)
		assert.Empty(t, result.Skills)
	})
}

func TestTopSkills(t *testing.T) {
	db := database.NewMemory()
	catalog := services.NewCatalog(db)
	resolver := catalog.Resolver()

	for _, title := range []string{"One", "Two", "Three"} {
		p := addProject(t, db, title)
		require.NoError(t, resolver.AttachSkill(p, "python", nil))
	}
	reactProject := addProject(t, db, "Four")
	require.NoError(t, resolver.AttachSkill(reactProject, "react", nil))

	t.Run("ranks by association count descending", func(t *testing.T) {
		ranked, err := catalog.TopSkills(2)
		require.NoError(t, err)
		require.Len(t, ranked, 2)
		assert.Equal(t, "python", ranked[0].Name)
		assert.Equal(t, 3, ranked[0].ProjectCount)
		assert.Equal(t, "react", ranked[1].Name)
		assert.Equal(t, 1, ranked[1].ProjectCount)
	})

	t.Run("limit bounds the result", func(t *testing.T) {
		ranked, err := catalog.TopSkills(1)
		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.Equal(t, "python", ranked[0].Name)
	})
}

package database_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-api-backend/database"
	"github.com/rpupo63/portfolio-api-backend/errs"
	"github.com/rpupo63/portfolio-api-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProjects(t *testing.T, db database.Database, titles ...string) []*models.Project {
	t.Helper()
	projects := make([]*models.Project, 0, len(titles))
	for _, title := range titles {
		p := &models.Project{Title: title, Status: models.StatusActive}
		require.NoError(t, db.ProjectRepo().Add(p))
		projects = append(projects, p)
	}
	return projects
}

func TestMemoryProjectRepo(t *testing.T) {
	t.Run("lists in insertion order", func(t *testing.T) {
		db := database.NewMemory()
		seedProjects(t, db, "first", "second", "third")

		got, err := db.ProjectRepo().FindAll(database.ProjectQuery{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "first", got[0].Title)
		assert.Equal(t, "third", got[2].Title)
	})

	t.Run("filters by status and featured", func(t *testing.T) {
		db := database.NewMemory()
		projects := seedProjects(t, db, "a", "b")
		projects[0].Status = models.StatusArchived
		require.NoError(t, db.ProjectRepo().Update(projects[0]))
		projects[1].Featured = true
		require.NoError(t, db.ProjectRepo().Update(projects[1]))

		archived := models.StatusArchived
		got, err := db.ProjectRepo().FindAll(database.ProjectQuery{Status: &archived})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].Title)

		featured := true
		got, err = db.ProjectRepo().FindAll(database.ProjectQuery{Featured: &featured})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "b", got[0].Title)
	})

	t.Run("applies skip and limit", func(t *testing.T) {
		db := database.NewMemory()
		seedProjects(t, db, "a", "b", "c", "d")

		got, err := db.ProjectRepo().FindAll(database.ProjectQuery{Skip: 1, Limit: 2})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "b", got[0].Title)
		assert.Equal(t, "c", got[1].Title)

		got, err = db.ProjectRepo().FindAll(database.ProjectQuery{Skip: 10})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("find by unknown id reports record not found", func(t *testing.T) {
		db := database.NewMemory()
		_, err := db.ProjectRepo().FindByID(uuid.New())
		require.Error(t, err)
		assert.True(t, errs.IsRecordNotFound(err))
	})

	t.Run("delete removes associations but keeps skill rows", func(t *testing.T) {
		db := database.NewMemory()
		project := seedProjects(t, db, "a")[0]

		skill := &models.Skill{Name: "go"}
		require.NoError(t, db.SkillRepo().Add(skill))
		require.NoError(t, db.ProjectSkillRepo().Add(&models.ProjectSkill{
			ProjectID: project.ID,
			SkillID:   skill.ID,
		}))

		require.NoError(t, db.ProjectRepo().Delete(project.ID))

		assocs, err := db.ProjectSkillRepo().FindByProject(project.ID)
		require.NoError(t, err)
		assert.Empty(t, assocs)

		kept, err := db.SkillRepo().FindByName("go")
		require.NoError(t, err)
		assert.NotNil(t, kept)
	})
}

func TestMemorySkillRepo(t *testing.T) {
	t.Run("enforces name uniqueness as a duplicate key", func(t *testing.T) {
		db := database.NewMemory()
		require.NoError(t, db.SkillRepo().Add(&models.Skill{Name: "python"}))

		err := db.SkillRepo().Add(&models.Skill{Name: "python"})
		require.Error(t, err)
		assert.True(t, errs.IsDuplicateKey(err))
	})

	t.Run("top by project count breaks ties by name", func(t *testing.T) {
		db := database.NewMemory()
		projects := seedProjects(t, db, "a", "b")

		zig := &models.Skill{Name: "zig"}
		ada := &models.Skill{Name: "ada"}
		require.NoError(t, db.SkillRepo().Add(zig))
		require.NoError(t, db.SkillRepo().Add(ada))
		for _, p := range projects {
			require.NoError(t, db.ProjectSkillRepo().Add(&models.ProjectSkill{ProjectID: p.ID, SkillID: zig.ID}))
		}
		require.NoError(t, db.ProjectSkillRepo().Add(&models.ProjectSkill{ProjectID: projects[0].ID, SkillID: ada.ID}))

		ranked, err := db.SkillRepo().TopByProjectCount(5)
		require.NoError(t, err)
		require.Len(t, ranked, 2)
		assert.Equal(t, "zig", ranked[0].Name)
		assert.Equal(t, 2, ranked[0].ProjectCount)
		assert.Equal(t, "ada", ranked[1].Name)
	})
}

func TestMemoryProfileRepo(t *testing.T) {
	t.Run("first returns the oldest row", func(t *testing.T) {
		db := database.NewMemory()
		require.NoError(t, db.ProfileRepo().Add(&models.Profile{Name: "One", Email: "one@example.com"}))
		require.NoError(t, db.ProfileRepo().Add(&models.Profile{Name: "Two", Email: "two@example.com"}))

		profile, err := db.ProfileRepo().First()
		require.NoError(t, err)
		assert.Equal(t, "One", profile.Name)
	})

	t.Run("first on an empty store reports record not found", func(t *testing.T) {
		db := database.NewMemory()
		_, err := db.ProfileRepo().First()
		require.Error(t, err)
		assert.True(t, errs.IsRecordNotFound(err))
	})

	t.Run("email uniqueness is a duplicate key", func(t *testing.T) {
		db := database.NewMemory()
		require.NoError(t, db.ProfileRepo().Add(&models.Profile{Name: "One", Email: "same@example.com"}))

		err := db.ProfileRepo().Add(&models.Profile{Name: "Two", Email: "same@example.com"})
		require.Error(t, err)
		assert.True(t, errs.IsDuplicateKey(err))
	})
}

func TestMemoryProjectSkillRepo(t *testing.T) {
	t.Run("pair uniqueness is a duplicate key", func(t *testing.T) {
		db := database.NewMemory()
		project := seedProjects(t, db, "a")[0]
		skill := &models.Skill{Name: "go"}
		require.NoError(t, db.SkillRepo().Add(skill))

		assoc := models.ProjectSkill{ProjectID: project.ID, SkillID: skill.ID}
		require.NoError(t, db.ProjectSkillRepo().Add(&assoc))

		dup := models.ProjectSkill{ProjectID: project.ID, SkillID: skill.ID}
		err := db.ProjectSkillRepo().Add(&dup)
		require.Error(t, err)
		assert.True(t, errs.IsDuplicateKey(err))
	})
}

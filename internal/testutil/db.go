package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/fjordrenovering/website/internal/database"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SetupTestDB opens a private in-memory SQLite database with the full schema.
// A single connection keeps transactions and plain queries on the same database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// CreateTestProject inserts a project with a unique slug
func CreateTestProject(t *testing.T, db *gorm.DB, title string, order int) *domain.Project {
	t.Helper()
	project := &domain.Project{
		Title:        title,
		Slug:         fmt.Sprintf("test-%s", uuid.NewString()[:8]),
		Category:     domain.ProjectCategoryResidential,
		Published:    true,
		DisplayOrder: order,
	}
	require.NoError(t, db.Omit(clause.Associations).Create(project).Error)
	return project
}

// CreateTestMedia inserts an image row, optionally attached to a project
func CreateTestMedia(t *testing.T, db *gorm.DB, projectID *uuid.UUID, order int) *domain.Media {
	t.Helper()
	media := &domain.Media{
		Filename:     "photo.jpg",
		ContentType:  "image/jpeg",
		Size:         1024,
		StoragePath:  uuid.NewString() + ".jpg",
		Kind:         domain.MediaKindImage,
		Width:        800,
		Height:       600,
		ProjectID:    projectID,
		DisplayOrder: order,
	}
	require.NoError(t, db.Create(media).Error)
	return media
}

// CreateTestService inserts a published service
func CreateTestService(t *testing.T, db *gorm.DB, name, slug string, order int) *domain.Service {
	t.Helper()
	service := &domain.Service{
		Name:         name,
		Slug:         slug,
		Body:         "## " + name,
		Published:    true,
		DisplayOrder: order,
	}
	require.NoError(t, db.Create(service).Error)
	return service
}

// CreateTestMessage inserts a contact message with the given status and creation time
func CreateTestMessage(t *testing.T, db *gorm.DB, status domain.MessageStatus, createdAt time.Time) *domain.Message {
	t.Helper()
	msg := &domain.Message{
		Name:   "Kari Nordmann",
		Email:  "kari@example.com",
		Body:   "We would like a quote for a new bathroom.",
		Status: status,
	}
	msg.CreatedAt = createdAt
	msg.UpdatedAt = createdAt
	require.NoError(t, db.Create(msg).Error)
	return msg
}

package service_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/fjordrenovering/website/internal/content"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/fjordrenovering/website/internal/service"
	"github.com/fjordrenovering/website/internal/storage"
	"github.com/fjordrenovering/website/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	store    *storage.LocalStorage
	storeDir string
	projects *service.ProjectService
	pairs    *service.BeforeAfterPairService
	media    *service.MediaService
	tasks    *service.TaskService
	team     *service.TeamService
	reviews  *service.TestimonialService
	catalog  *service.CatalogService
	messages *service.MessageService
	site     *service.SiteService
	dash     *service.DashboardService
	audit    *service.AuditLogService
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	return setupFixtureWithLimit(t, 1<<20)
}

func setupFixtureWithLimit(t *testing.T, maxUpload int64) *fixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	log := zap.NewNop()

	storeDir := t.TempDir()
	store, err := storage.NewLocalStorage(storeDir, "")
	require.NoError(t, err)

	projectRepo := repository.NewProjectRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	pairRepo := repository.NewBeforeAfterPairRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	teamRepo := repository.NewTeamMemberRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	md := content.NewMarkdown()

	f := &fixture{
		db:       db,
		store:    store,
		storeDir: storeDir,
		projects: service.NewProjectService(projectRepo, mediaRepo, md, log),
		pairs:    service.NewBeforeAfterPairService(pairRepo, projectRepo, mediaRepo, log),
		media:    service.NewMediaService(mediaRepo, projectRepo, store, maxUpload, log),
		tasks:    service.NewTaskService(taskRepo, projectRepo, teamRepo, log),
		team:     service.NewTeamService(teamRepo, taskRepo, mediaRepo, log),
		reviews:  service.NewTestimonialService(testimonialRepo, projectRepo, log),
		catalog:  service.NewCatalogService(serviceRepo, md, log),
		messages: service.NewMessageService(messageRepo, log),
		dash:     service.NewDashboardService(projectRepo, messageRepo, taskRepo, testimonialRepo, mediaRepo, log),
		audit:    service.NewAuditLogService(auditRepo, log),
	}
	f.site = service.NewSiteService(f.projects, f.catalog, f.reviews, log)
	return f
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func projectRequest(title string) *domain.CreateProjectRequest {
	return &domain.CreateProjectRequest{
		Title:     title,
		Category:  domain.ProjectCategoryResidential,
		Body:      "New **kitchen** with oak fronts.",
		Published: true,
	}
}

func TestProjectService_CreateDerivesSlugAndAppends(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	first, err := f.projects.Create(ctx, projectRequest("Kitchen Renovation"))
	require.NoError(t, err)
	assert.Equal(t, "kitchen-renovation", first.Slug)
	assert.Equal(t, 0, first.DisplayOrder)

	second, err := f.projects.Create(ctx, projectRequest("Attic Conversion"))
	require.NoError(t, err)
	assert.Equal(t, 1, second.DisplayOrder)
}

func TestProjectService_CreateRejectsDuplicateSlug(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	_, err := f.projects.Create(ctx, projectRequest("Kitchen Renovation"))
	require.NoError(t, err)

	req := projectRequest("Another kitchen")
	req.Slug = "Kitchen Renovation"
	_, err = f.projects.Create(ctx, req)
	assert.ErrorIs(t, err, service.ErrDuplicateSlug)
}

func TestProjectService_CreateValidation(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	req := projectRequest("Roof")
	req.Category = "industrial"
	_, err := f.projects.Create(ctx, req)
	assert.ErrorIs(t, err, service.ErrInvalidCategory)

	req = projectRequest("Roof")
	req.CompletedAt = "01.05.2024"
	_, err = f.projects.Create(ctx, req)
	assert.ErrorIs(t, err, service.ErrInvalidDate)

	req = projectRequest("Roof")
	missing := uuid.New()
	req.CoverMediaID = &missing
	_, err = f.projects.Create(ctx, req)
	assert.ErrorIs(t, err, service.ErrMediaNotFound)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestProjectService_UpdateKeepsOwnSlug(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	created, err := f.projects.Create(ctx, projectRequest("Bathroom"))
	require.NoError(t, err)

	req := projectRequest("Bathroom")
	req.Summary = "Tiles and floor heating"
	req.CompletedAt = "2024-05-01"
	updated, err := f.projects.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "bathroom", updated.Slug)
	assert.Equal(t, "Tiles and floor heating", updated.Summary)
	assert.Equal(t, "2024-05-01", updated.CompletedAt)
	assert.Equal(t, created.DisplayOrder, updated.DisplayOrder)
}

func TestProjectService_GetPublishedBySlug(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	_, err := f.projects.Create(ctx, projectRequest("Kitchen"))
	require.NoError(t, err)
	draft := projectRequest("Draft house")
	draft.Published = false
	_, err = f.projects.Create(ctx, draft)
	require.NoError(t, err)

	dto, err := f.projects.GetPublishedBySlug(ctx, "kitchen")
	require.NoError(t, err)
	assert.Contains(t, dto.BodyHTML, "<strong>kitchen</strong>")

	_, err = f.projects.GetPublishedBySlug(ctx, "draft-house")
	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestProjectService_ListPublishedByCategory(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	_, err := f.projects.Create(ctx, projectRequest("Home"))
	require.NoError(t, err)
	office := projectRequest("Office")
	office.Category = domain.ProjectCategoryCommercial
	_, err = f.projects.Create(ctx, office)
	require.NoError(t, err)

	all, err := f.projects.ListPublished(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	commercial, err := f.projects.ListPublished(ctx, "commercial")
	require.NoError(t, err)
	require.Len(t, commercial, 1)
	assert.Equal(t, "Office", commercial[0].Title)

	_, err = f.projects.ListPublished(ctx, "garden")
	assert.ErrorIs(t, err, service.ErrInvalidCategory)
}

func TestProjectService_Reorder(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	a := testutil.CreateTestProject(t, f.db, "A", 0)
	b := testutil.CreateTestProject(t, f.db, "B", 1)
	c := testutil.CreateTestProject(t, f.db, "C", 2)

	require.NoError(t, f.projects.Reorder(ctx, []uuid.UUID{c.ID, a.ID, b.ID}))

	list, err := f.projects.ListPublished(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{list[0].Title, list[1].Title, list[2].Title})

	err = f.projects.Reorder(ctx, []uuid.UUID{a.ID, b.ID})
	assert.ErrorIs(t, err, service.ErrReorderCountMismatch)

	err = f.projects.Reorder(ctx, []uuid.UUID{a.ID, a.ID, b.ID})
	assert.ErrorIs(t, err, service.ErrDuplicateIDs)

	err = f.projects.Reorder(ctx, []uuid.UUID{a.ID, b.ID, uuid.New()})
	assert.ErrorIs(t, err, service.ErrReorderScope)
}

func TestProjectService_DeleteDetachesMedia(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	project := testutil.CreateTestProject(t, f.db, "Cabin", 0)
	media := testutil.CreateTestMedia(t, f.db, &project.ID, 0)

	require.NoError(t, f.projects.Delete(ctx, project.ID))

	dto, err := f.media.GetByID(ctx, media.ID)
	require.NoError(t, err)
	assert.Nil(t, dto.ProjectID)

	assert.ErrorIs(t, f.projects.Delete(ctx, project.ID), service.ErrProjectNotFound)
}

func TestBeforeAfterPairService(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	project := testutil.CreateTestProject(t, f.db, "Facade", 0)
	before := testutil.CreateTestMedia(t, f.db, &project.ID, 0)
	after := testutil.CreateTestMedia(t, f.db, &project.ID, 1)

	_, err := f.pairs.Add(ctx, project.ID, &domain.CreateBeforeAfterPairRequest{BeforeMediaID: before.ID, AfterMediaID: before.ID})
	assert.ErrorIs(t, err, service.ErrPairSameMedia)

	_, err = f.pairs.Add(ctx, uuid.New(), &domain.CreateBeforeAfterPairRequest{BeforeMediaID: before.ID, AfterMediaID: after.ID})
	assert.ErrorIs(t, err, service.ErrProjectNotFound)

	first, err := f.pairs.Add(ctx, project.ID, &domain.CreateBeforeAfterPairRequest{BeforeMediaID: before.ID, AfterMediaID: after.ID, Caption: " Front "})
	require.NoError(t, err)
	assert.Equal(t, "Front", first.Caption)
	require.NotNil(t, first.Before)
	assert.Equal(t, before.ID, first.Before.ID)

	second, err := f.pairs.Add(ctx, project.ID, &domain.CreateBeforeAfterPairRequest{BeforeMediaID: after.ID, AfterMediaID: before.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, second.DisplayOrder)

	require.NoError(t, f.pairs.Reorder(ctx, project.ID, []uuid.UUID{second.ID, first.ID}))
	pairs, err := f.pairs.List(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, second.ID, pairs[0].ID)

	require.NoError(t, f.pairs.Delete(ctx, project.ID, first.ID))
	assert.ErrorIs(t, f.pairs.Delete(ctx, project.ID, first.ID), service.ErrPairNotFound)
}

func TestBeforeAfterPairService_RequiresImages(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	project := testutil.CreateTestProject(t, f.db, "Basement", 0)
	photo := testutil.CreateTestMedia(t, f.db, &project.ID, 0)
	doc := testutil.CreateTestMedia(t, f.db, &project.ID, 1)
	require.NoError(t, f.db.Model(doc).Update("kind", domain.MediaKindDocument).Error)

	_, err := f.pairs.Add(ctx, project.ID, &domain.CreateBeforeAfterPairRequest{BeforeMediaID: photo.ID, AfterMediaID: doc.ID})
	assert.ErrorIs(t, err, service.ErrNotAnImage)
}

func TestSiteService_Home(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	featured := projectRequest("Featured kitchen")
	featured.Featured = true
	_, err := f.projects.Create(ctx, featured)
	require.NoError(t, err)
	_, err = f.projects.Create(ctx, projectRequest("Plain bathroom"))
	require.NoError(t, err)
	testutil.CreateTestService(t, f.db, "Kitchens", "kitchens", 0)

	_, err = f.reviews.Create(ctx, &domain.CreateTestimonialRequest{
		ClientName: "Ola", Quote: "Great work", Rating: 5, Published: true, Featured: true,
	})
	require.NoError(t, err)
	_, err = f.reviews.Create(ctx, &domain.CreateTestimonialRequest{
		ClientName: "Per", Quote: "Fine", Rating: 4, Published: true,
	})
	require.NoError(t, err)

	home, err := f.site.Home(ctx)
	require.NoError(t, err)
	require.Len(t, home.FeaturedProjects, 1)
	assert.Equal(t, "Featured kitchen", home.FeaturedProjects[0].Title)
	assert.Len(t, home.Services, 1)
	require.Len(t, home.Testimonials, 1)
	assert.Equal(t, "Ola", home.Testimonials[0].ClientName)
}

package repository_test

import (
	"context"
	"testing"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/fjordrenovering/website/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_MaxDisplayOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	max, err := repo.MaxDisplayOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, -1, max, "empty table reports -1")

	testutil.CreateTestProject(t, db, "Loft", 0)
	testutil.CreateTestProject(t, db, "Kitchen", 4)

	max, err = repo.MaxDisplayOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, max)
}

func TestProjectRepository_Reorder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	a := testutil.CreateTestProject(t, db, "A", 0)
	b := testutil.CreateTestProject(t, db, "B", 1)
	c := testutil.CreateTestProject(t, db, "C", 2)

	require.NoError(t, repo.Reorder(ctx, []uuid.UUID{c.ID, a.ID, b.ID}))

	projects, total, err := repo.List(ctx, 1, 10, nil, repository.ManualOrderSortConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, projects, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{projects[0].Title, projects[1].Title, projects[2].Title})
	assert.Equal(t, 0, projects[0].DisplayOrder)
	assert.Equal(t, 2, projects[2].DisplayOrder)
}

func TestProjectRepository_Reorder_UnknownIDRollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	a := testutil.CreateTestProject(t, db, "A", 0)
	b := testutil.CreateTestProject(t, db, "B", 1)

	err := repo.Reorder(ctx, []uuid.UUID{b.ID, uuid.New(), a.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotInScope)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.DisplayOrder, "first update is rolled back")
}

func TestMediaRepository_ReorderIsScopedToProject(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewMediaRepository(db)
	ctx := context.Background()

	p1 := testutil.CreateTestProject(t, db, "One", 0)
	p2 := testutil.CreateTestProject(t, db, "Two", 1)
	m1 := testutil.CreateTestMedia(t, db, &p1.ID, 0)
	m2 := testutil.CreateTestMedia(t, db, &p1.ID, 1)
	other := testutil.CreateTestMedia(t, db, &p2.ID, 0)
	loose := testutil.CreateTestMedia(t, db, nil, 0)

	require.NoError(t, repo.Reorder(ctx, &p1.ID, []uuid.UUID{m2.ID, m1.ID}))
	gallery, err := repo.ListByProject(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, gallery, 2)
	assert.Equal(t, m2.ID, gallery[0].ID)

	err = repo.Reorder(ctx, &p1.ID, []uuid.UUID{m1.ID, other.ID})
	assert.ErrorIs(t, err, repository.ErrNotInScope)

	count, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	max, err := repo.MaxDisplayOrder(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, loose.DisplayOrder, max)
}

func TestTaskRepository_ScopeByStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTaskRepository(db)
	ctx := context.Background()

	newTask := func(title string, status domain.TaskStatus, order int) *domain.Task {
		task := &domain.Task{Title: title, Status: status, Priority: domain.TaskPriorityMedium, DisplayOrder: order}
		require.NoError(t, repo.Create(ctx, task))
		return task
	}
	t1 := newTask("Order tiles", domain.TaskStatusTodo, 0)
	t2 := newTask("Call plumber", domain.TaskStatusTodo, 1)
	newTask("Paint hallway", domain.TaskStatusDone, 0)

	max, err := repo.MaxDisplayOrder(ctx, domain.TaskStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, -1, max)

	count, err := repo.Count(ctx, domain.TaskStatusTodo)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	open, err := repo.CountOpen(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), open)

	require.NoError(t, repo.Reorder(ctx, domain.TaskStatusTodo, []uuid.UUID{t2.ID, t1.ID}))
	status := domain.TaskStatusTodo
	tasks, _, err := repo.List(ctx, 1, 20, &repository.TaskFilters{Status: &status}, repository.ManualOrderSortConfig())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Call plumber", tasks[0].Title)
}

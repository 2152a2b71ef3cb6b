package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/internal/model"
	"planner/internal/store"
)

var testNow = time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

func newTaskRepo(t *testing.T) *TaskRepository {
	t.Helper()
	return NewTaskRepository(store.NewMemoryStore())
}

func TestTaskAddDefaults(t *testing.T) {
	repo := newTaskRepo(t)

	task, err := repo.Add(TaskInput{Title: "Write report", Date: "2026-01-12"}, testNow)
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Equal(t, model.CategoryPersonal, task.Category)
	assert.Equal(t, model.DefaultDuration, task.Duration)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
	assert.True(t, task.CreatedAt.Equal(testNow))

	_, err = repo.Add(TaskInput{}, testNow)
	assert.Error(t, err)
}

func TestTaskListForDate(t *testing.T) {
	repo := newTaskRepo(t)
	_, err := repo.Add(TaskInput{Title: "a", Date: "2026-08-25"}, testNow)
	require.NoError(t, err)
	_, err = repo.Add(TaskInput{Title: "b", Date: "2026-08-26"}, testNow)
	require.NoError(t, err)

	tasks, err := repo.ListForDate("2026-08-25")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "a", tasks[0].Title)

	ranged, err := repo.ListRange("2026-08-25", "2026-08-26")
	require.NoError(t, err)
	assert.Len(t, ranged, 2)
}

func TestTaskUpdateUnknownIDLeavesCollectionUntouched(t *testing.T) {
	repo := newTaskRepo(t)
	added, err := repo.Add(TaskInput{Title: "keep me", Date: "2026-08-25"}, testNow)
	require.NoError(t, err)

	title := "changed"
	_, err = repo.Update("no-such-id", TaskPatch{Title: &title}, testNow)
	assert.ErrorIs(t, err, ErrNotFound)

	tasks, err := repo.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, added.Title, tasks[0].Title)

	assert.ErrorIs(t, repo.Delete("no-such-id"), ErrNotFound)
	tasks, _ = repo.List()
	assert.Len(t, tasks, 1)
}

func TestTaskUpdatePreservesUnpatchedFields(t *testing.T) {
	repo := newTaskRepo(t)
	added, err := repo.Add(TaskInput{
		Title:    "deep work",
		Priority: model.PriorityHigh,
		Category: model.CategoryWork,
		Duration: 90,
		Date:     "2026-08-25",
	}, testNow)
	require.NoError(t, err)

	duration := 120
	updated, err := repo.Update(added.ID, TaskPatch{Duration: &duration}, testNow)
	require.NoError(t, err)
	assert.Equal(t, 120, updated.Duration)
	assert.Equal(t, "deep work", updated.Title)
	assert.Equal(t, model.PriorityHigh, updated.Priority)
	assert.Equal(t, model.CategoryWork, updated.Category)
	assert.Equal(t, "2026-08-25", updated.Date)
}

func TestTaskCompletedAtStampedOnce(t *testing.T) {
	repo := newTaskRepo(t)
	added, err := repo.Add(TaskInput{Title: "x", Date: "2026-08-25"}, testNow)
	require.NoError(t, err)

	done, err := repo.Toggle(added.ID, testNow)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)
	assert.True(t, done.CompletedAt.Equal(testNow))

	// Toggling back off keeps the stamp.
	reopened, err := repo.Toggle(added.ID, testNow.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, reopened.Completed)
	require.NotNil(t, reopened.CompletedAt)
	assert.True(t, reopened.CompletedAt.Equal(testNow))

	// Completing again does not move the original stamp.
	redone, err := repo.Toggle(added.ID, testNow.Add(2*time.Hour))
	require.NoError(t, err)
	assert.True(t, redone.Completed)
	assert.True(t, redone.CompletedAt.Equal(testNow))
}

func TestTaskDelete(t *testing.T) {
	repo := newTaskRepo(t)
	a, _ := repo.Add(TaskInput{Title: "a", Date: "2026-08-25"}, testNow)
	b, _ := repo.Add(TaskInput{Title: "b", Date: "2026-08-25"}, testNow)

	require.NoError(t, repo.Delete(a.ID))
	tasks, err := repo.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, b.ID, tasks[0].ID)
}

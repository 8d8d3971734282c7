package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	task, err := NewTask(ownerID, "A", "first task", due, "x", []byte("1"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, task.ID)
	assert.Equal(t, ownerID, task.OwnerID)
	assert.False(t, task.Completed)
	assert.Equal(t, due, task.DueDate)

	// Empty fields are legal; only the owner is required.
	empty, err := NewTask(ownerID, "", "", time.Time{}, "", nil)
	require.NoError(t, err)
	assert.NotEqual(t, task.ID, empty.ID)

	_, err = NewTask(uuid.Nil, "A", "", due, "x", nil)
	assert.ErrorIs(t, err, ErrEmptyUserID)
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    SortKey
		wantErr bool
	}{
		{input: "dueDate", want: SortByDueDate},
		{input: "category", want: SortByCategory},
		{input: "completionStatus", want: SortByCompletionStatus},
		{input: "priority", wantErr: true},
		{input: "duedate", wantErr: true}, // keys are case-sensitive
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, err := ParseSortKey(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSortKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func makeTask(t *testing.T, title string, due time.Time, category string, completed bool) *Task {
	t.Helper()
	task, err := NewTask(uuid.New(), title, "", due, category, nil)
	require.NoError(t, err)
	task.Completed = completed
	return task
}

func titles(tasks []*Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}

func TestSortTasks(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("by due date ascending", func(t *testing.T) {
		tasks := []*Task{
			makeTask(t, "c", day(3), "", false),
			makeTask(t, "a", day(1), "", false),
			makeTask(t, "b", day(2), "", false),
		}
		require.NoError(t, SortTasks(tasks, SortByDueDate))
		assert.Equal(t, []string{"a", "b", "c"}, titles(tasks))
	})

	t.Run("by category lexicographic", func(t *testing.T) {
		tasks := []*Task{
			makeTask(t, "z", day(1), "work", false),
			makeTask(t, "y", day(1), "errands", false),
			makeTask(t, "x", day(1), "home", false),
		}
		require.NoError(t, SortTasks(tasks, SortByCategory))
		assert.Equal(t, []string{"y", "x", "z"}, titles(tasks))
	})

	t.Run("by completion status incomplete first", func(t *testing.T) {
		tasks := []*Task{
			makeTask(t, "done1", day(1), "", true),
			makeTask(t, "todo1", day(1), "", false),
			makeTask(t, "done2", day(1), "", true),
			makeTask(t, "todo2", day(1), "", false),
		}
		require.NoError(t, SortTasks(tasks, SortByCompletionStatus))
		assert.Equal(t, []string{"todo1", "todo2", "done1", "done2"}, titles(tasks))
	})

	t.Run("equal keys keep input order", func(t *testing.T) {
		tasks := []*Task{
			makeTask(t, "first", day(1), "same", false),
			makeTask(t, "second", day(1), "same", false),
			makeTask(t, "third", day(1), "same", false),
		}
		require.NoError(t, SortTasks(tasks, SortByCategory))
		assert.Equal(t, []string{"first", "second", "third"}, titles(tasks))
	})

	t.Run("invalid key", func(t *testing.T) {
		tasks := []*Task{makeTask(t, "a", day(1), "", false)}
		assert.ErrorIs(t, SortTasks(tasks, SortKey("nope")), ErrInvalidSortKey)
	})
}

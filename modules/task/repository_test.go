package task

import (
	"errors"
	"testing"
	"time"

	domain "github.com/ElijahAA/HackiethonBackend/domain/task"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&domain.Task{}, &domain.Reaction{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTask(ownerID, title string) *domain.Task {
	now := time.Now()
	return &domain.Task{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		Title:       title,
		Description: "a description",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func completeAt(task *domain.Task, at time.Time) *domain.Task {
	task.Completed = true
	task.CompletedAt = &at
	return task
}

func TestTaskRepository_FindPendingByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"first", "second", "third"} {
		task := newTask("u1", title)
		task.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.Create(task); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	done := completeAt(newTask("u1", "done"), time.Now())
	if err := repo.Create(done); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(newTask("u2", "other user")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	pending, err := repo.FindPendingByUser("u1")
	if err != nil {
		t.Fatalf("FindPendingByUser() error = %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("expected 3 pending tasks, got %d", len(pending))
	}

	// Creation order
	if pending[0].Title != "first" || pending[2].Title != "third" {
		t.Errorf("expected creation order, got %q .. %q", pending[0].Title, pending[2].Title)
	}
}

func TestTaskRepository_FindCompletedByUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	base := time.Now().Add(-time.Hour)
	older := completeAt(newTask("u1", "older"), base)
	newer := completeAt(newTask("u2", "newer"), base.Add(30*time.Minute))
	if err := repo.Create(older); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(newer); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(newTask("u1", "still pending")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(completeAt(newTask("u3", "not followed"), base)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tasks, err := repo.FindCompletedByUsers([]string{"u1", "u2"})
	if err != nil {
		t.Fatalf("FindCompletedByUsers() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 completed tasks, got %d", len(tasks))
	}

	// Most recently completed first
	if tasks[0].Title != "newer" {
		t.Errorf("expected %q first, got %q", "newer", tasks[0].Title)
	}

	t.Run("empty owner set", func(t *testing.T) {
		tasks, err := repo.FindCompletedByUsers(nil)
		if err != nil {
			t.Fatalf("FindCompletedByUsers() error = %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("expected no tasks for empty owner set, got %d", len(tasks))
		}
	})
}

func TestTaskRepository_DeleteWithReactions(t *testing.T) {
	db := setupTestDB(t)
	tasks := NewTaskRepository(db)
	reactions := NewReactionRepository(db)

	task := completeAt(newTask("u1", "liked task"), time.Now())
	if err := tasks.Create(task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	for _, liker := range []string{"u2", "u3"} {
		reaction := &domain.Reaction{
			ID:        uuid.New().String(),
			TaskID:    task.ID,
			UserID:    liker,
			CreatedAt: time.Now(),
		}
		if err := reactions.Create(reaction); err != nil {
			t.Fatalf("Create() reaction error = %v", err)
		}
	}

	if err := tasks.DeleteWithReactions(task.ID); err != nil {
		t.Fatalf("DeleteWithReactions() error = %v", err)
	}

	if _, err := tasks.FindByID(task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
	}

	var count int64
	if err := db.Model(&domain.Reaction{}).Where("task_id = ?", task.ID).Count(&count).Error; err != nil {
		t.Fatalf("count reactions error = %v", err)
	}
	if count != 0 {
		t.Errorf("expected reactions to be deleted with the task, got %d", count)
	}

	t.Run("delete non-existent task", func(t *testing.T) {
		err := tasks.DeleteWithReactions("no-such-id")
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestReactionRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)

	reaction := &domain.Reaction{
		ID:        uuid.New().String(),
		TaskID:    "t1",
		UserID:    "u1",
		CreatedAt: time.Now(),
	}
	if err := repo.Create(reaction); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("duplicate reaction", func(t *testing.T) {
		dup := &domain.Reaction{
			ID:        uuid.New().String(),
			TaskID:    "t1",
			UserID:    "u1",
			CreatedAt: time.Now(),
		}
		err := repo.Create(dup)
		if !errors.Is(err, ErrAlreadyReacted) {
			t.Errorf("expected ErrAlreadyReacted, got %v", err)
		}
	})

	t.Run("same user different task", func(t *testing.T) {
		other := &domain.Reaction{
			ID:        uuid.New().String(),
			TaskID:    "t2",
			UserID:    "u1",
			CreatedAt: time.Now(),
		}
		if err := repo.Create(other); err != nil {
			t.Errorf("Create() error = %v", err)
		}
	})
}

func TestReactionRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)

	reaction := &domain.Reaction{
		ID:        uuid.New().String(),
		TaskID:    "t1",
		UserID:    "u1",
		CreatedAt: time.Now(),
	}
	if err := repo.Create(reaction); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete("t1", "u1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	t.Run("delete without reaction", func(t *testing.T) {
		err := repo.Delete("t1", "u1")
		if !errors.Is(err, ErrNotReacted) {
			t.Errorf("expected ErrNotReacted, got %v", err)
		}
	})
}

func TestReactionRepository_CountsAndLikedSet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)

	// t1 has two likes, t2 has one, t3 has none
	fixtures := []struct{ taskID, userID string }{
		{"t1", "u1"},
		{"t1", "u2"},
		{"t2", "u1"},
	}
	for _, f := range fixtures {
		reaction := &domain.Reaction{
			ID:        uuid.New().String(),
			TaskID:    f.taskID,
			UserID:    f.userID,
			CreatedAt: time.Now(),
		}
		if err := repo.Create(reaction); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	counts, err := repo.CountsForTasks([]string{"t1", "t2", "t3"})
	if err != nil {
		t.Fatalf("CountsForTasks() error = %v", err)
	}
	if counts["t1"] != 2 || counts["t2"] != 1 || counts["t3"] != 0 {
		t.Errorf("unexpected counts %v", counts)
	}

	liked, err := repo.LikedSet("u2", []string{"t1", "t2", "t3"})
	if err != nil {
		t.Fatalf("LikedSet() error = %v", err)
	}
	if !liked["t1"] || liked["t2"] || liked["t3"] {
		t.Errorf("unexpected liked set %v", liked)
	}
}

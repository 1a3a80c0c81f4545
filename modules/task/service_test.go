package task

import (
	"context"
	"errors"
	"strings"
	"testing"

	userdomain "github.com/ElijahAA/HackiethonBackend/domain/user"
	"github.com/ElijahAA/HackiethonBackend/modules/social"
	"github.com/ElijahAA/HackiethonBackend/modules/user"
)

// recordedNotification captures a Notify call for assertions.
type recordedNotification struct {
	RecipientID string
	ActorID     string
	Body        string
}

// mockSocialPort implements social.SocialPort for testing.
type mockSocialPort struct {
	following     map[string][]string
	notifications []recordedNotification
}

func (m *mockSocialPort) FollowingIDs(_ context.Context, userID string) ([]string, error) {
	return m.following[userID], nil
}

func (m *mockSocialPort) Notify(_ context.Context, recipientID, actorID, body string) error {
	m.notifications = append(m.notifications, recordedNotification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Body:        body,
	})
	return nil
}

// mockUserPort implements user.UserPort for testing.
type mockUserPort struct {
	users map[string]*user.UserResponse
}

func (m *mockUserPort) ValidateToken(_ context.Context, _ string) (*userdomain.Claims, error) {
	return nil, errors.New("not implemented")
}

func (m *mockUserPort) GetUser(_ context.Context, userID string) (*user.UserResponse, error) {
	if u, ok := m.users[userID]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

func (m *mockUserPort) GetUserByUsername(_ context.Context, username string) (*user.UserResponse, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

// newTestService wires a TaskService over an in-memory database.
func newTestService(t *testing.T) (*TaskService, *mockSocialPort) {
	t.Helper()
	db := setupTestDB(t)
	socialPort := &mockSocialPort{following: map[string][]string{}}
	userPort := &mockUserPort{users: map[string]*user.UserResponse{
		"u-alice": {ID: "u-alice", Username: "alice", FirstName: "Alice", LastName: "Johnson"},
		"u-bob":   {ID: "u-bob", Username: "bob", FirstName: "Bob", LastName: "Smith"},
	}}
	svc := NewTaskService(
		NewTaskRepository(db),
		NewReactionRepository(db),
		socialPort,
		userPort,
	)
	return svc, socialPort
}

func TestTaskService_CreateTask(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("valid task", func(t *testing.T) {
		task, err := svc.CreateTask(ctx, "u-alice", "Write report", "Quarterly numbers")
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
		if task.Completed {
			t.Error("new task should be pending")
		}
		if task.CompletedAt != nil {
			t.Error("new task should have no completion timestamp")
		}
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, "u-alice", "", "desc")
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, "u-alice", "title", "")
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("title too long", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, "u-alice", strings.Repeat("x", 51), "desc")
		if !errors.Is(err, ErrTitleTooLong) {
			t.Errorf("expected ErrTitleTooLong, got %v", err)
		}
	})

	t.Run("description too long", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, "u-alice", "title", strings.Repeat("x", 141))
		if !errors.Is(err, ErrDescriptionTooLong) {
			t.Errorf("expected ErrDescriptionTooLong, got %v", err)
		}
	})
}

func TestTaskService_CompleteTask(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "u-alice", "Write report", "Quarterly numbers")
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	completed, completedNow, err := svc.CompleteTask(ctx, "u-alice", task.ID)
	if err != nil {
		t.Fatalf("CompleteTask() error = %v", err)
	}
	if !completedNow {
		t.Error("expected first completion to report the transition")
	}
	if !completed.Completed || completed.CompletedAt == nil {
		t.Fatal("expected task to be completed with a timestamp")
	}
	firstStamp := *completed.CompletedAt

	t.Run("re-complete is a no-op", func(t *testing.T) {
		again, completedNow, err := svc.CompleteTask(ctx, "u-alice", task.ID)
		if err != nil {
			t.Fatalf("CompleteTask() error = %v", err)
		}
		if completedNow {
			t.Error("expected no transition on re-complete")
		}
		if !again.CompletedAt.Equal(firstStamp) {
			t.Error("completion timestamp must not change on re-complete")
		}
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		other, err := svc.CreateTask(ctx, "u-alice", "Another", "desc")
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
		_, _, err = svc.CompleteTask(ctx, "u-bob", other.ID)
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		_, _, err := svc.CompleteTask(ctx, "u-alice", "no-such-id")
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestTaskService_EditTask(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "u-alice", "Original", "Original description")
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	title := "Updated"
	updated, err := svc.EditTask(ctx, "u-alice", task.ID, &title, nil)
	if err != nil {
		t.Fatalf("EditTask() error = %v", err)
	}
	if updated.Title != "Updated" {
		t.Errorf("expected title %q, got %q", "Updated", updated.Title)
	}
	if updated.Description != "Original description" {
		t.Errorf("description should be unchanged, got %q", updated.Description)
	}

	t.Run("non-owner rejected", func(t *testing.T) {
		desc := "hijacked"
		_, err := svc.EditTask(ctx, "u-bob", task.ID, nil, &desc)
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("completed task still editable", func(t *testing.T) {
		if _, _, err := svc.CompleteTask(ctx, "u-alice", task.ID); err != nil {
			t.Fatalf("CompleteTask() error = %v", err)
		}
		title := "Edited after completion"
		edited, err := svc.EditTask(ctx, "u-alice", task.ID, &title, nil)
		if err != nil {
			t.Fatalf("EditTask() error = %v", err)
		}
		if !edited.Completed {
			t.Error("editing must not change completion state")
		}
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "u-alice", "Doomed", "Will be deleted")
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if _, _, err := svc.CompleteTask(ctx, "u-alice", task.ID); err != nil {
		t.Fatalf("CompleteTask() error = %v", err)
	}
	if err := svc.Like(ctx, "u-bob", task.ID); err != nil {
		t.Fatalf("Like() error = %v", err)
	}

	t.Run("non-owner rejected", func(t *testing.T) {
		err := svc.DeleteTask(ctx, "u-bob", task.ID)
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	if err := svc.DeleteTask(ctx, "u-alice", task.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}

	if _, err := svc.GetTask(ctx, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
	}

	// The like went with the task, so liking again after recreation
	// under a new ID starts clean.
	if liked, err := svc.HasLiked(ctx, "u-bob", task.ID); err != nil || liked {
		t.Errorf("expected no surviving reaction, liked=%v err=%v", liked, err)
	}
}

func TestTaskService_Like(t *testing.T) {
	svc, socialPort := newTestService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "u-alice", "Ship it", "Release v1")
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	t.Run("pending task cannot be liked", func(t *testing.T) {
		err := svc.Like(ctx, "u-bob", task.ID)
		if !errors.Is(err, ErrTaskNotCompleted) {
			t.Errorf("expected ErrTaskNotCompleted, got %v", err)
		}
	})

	if _, _, err := svc.CompleteTask(ctx, "u-alice", task.ID); err != nil {
		t.Fatalf("CompleteTask() error = %v", err)
	}

	if err := svc.Like(ctx, "u-bob", task.ID); err != nil {
		t.Fatalf("Like() error = %v", err)
	}

	// Owner gets a templated notification naming the task.
	if len(socialPort.notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(socialPort.notifications))
	}
	note := socialPort.notifications[0]
	if note.RecipientID != "u-alice" || note.ActorID != "u-bob" {
		t.Errorf("notification routed wrong: %+v", note)
	}
	if !strings.Contains(note.Body, "Ship it") {
		t.Errorf("notification body %q should name the task", note.Body)
	}
	if !strings.Contains(note.Body, social.PlaceholderFullName) {
		t.Errorf("notification body %q should carry the actor placeholder", note.Body)
	}

	t.Run("double like rejected", func(t *testing.T) {
		err := svc.Like(ctx, "u-bob", task.ID)
		if !errors.Is(err, ErrAlreadyReacted) {
			t.Errorf("expected ErrAlreadyReacted, got %v", err)
		}
	})

	t.Run("self like produces no notification", func(t *testing.T) {
		before := len(socialPort.notifications)
		if err := svc.Like(ctx, "u-alice", task.ID); err != nil {
			t.Fatalf("Like() error = %v", err)
		}
		if len(socialPort.notifications) != before {
			t.Error("self-like must not notify the owner")
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		err := svc.Like(ctx, "u-bob", "no-such-id")
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestTaskService_Unlike(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "u-alice", "Ship it", "Release v1")
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if _, _, err := svc.CompleteTask(ctx, "u-alice", task.ID); err != nil {
		t.Fatalf("CompleteTask() error = %v", err)
	}
	if err := svc.Like(ctx, "u-bob", task.ID); err != nil {
		t.Fatalf("Like() error = %v", err)
	}

	if err := svc.Unlike(ctx, "u-bob", task.ID); err != nil {
		t.Fatalf("Unlike() error = %v", err)
	}

	t.Run("unlike without like", func(t *testing.T) {
		err := svc.Unlike(ctx, "u-bob", task.ID)
		if !errors.Is(err, ErrNotReacted) {
			t.Errorf("expected ErrNotReacted, got %v", err)
		}
	})

	// Like again after unlike works
	if err := svc.Like(ctx, "u-bob", task.ID); err != nil {
		t.Errorf("Like() after unlike error = %v", err)
	}
}

func TestTaskService_Feed(t *testing.T) {
	svc, socialPort := newTestService(t)
	ctx := context.Background()

	// Alice follows bob. Bob has one completed and one pending task;
	// alice has one completed task of her own.
	socialPort.following["u-alice"] = []string{"u-bob"}

	bobDone, err := svc.CreateTask(ctx, "u-bob", "Bob done", "desc")
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if _, _, err := svc.CompleteTask(ctx, "u-bob", bobDone.ID); err != nil {
		t.Fatalf("CompleteTask() error = %v", err)
	}
	if _, err := svc.CreateTask(ctx, "u-bob", "Bob pending", "desc"); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	aliceDone, err := svc.CreateTask(ctx, "u-alice", "Alice done", "desc")
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if _, _, err := svc.CompleteTask(ctx, "u-alice", aliceDone.ID); err != nil {
		t.Fatalf("CompleteTask() error = %v", err)
	}

	// Alice likes bob's completed task.
	if err := svc.Like(ctx, "u-alice", bobDone.ID); err != nil {
		t.Fatalf("Like() error = %v", err)
	}

	entries, err := svc.Feed(ctx, "u-alice")
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 feed entries, got %d", len(entries))
	}

	// Most recently completed first: alice completed after bob.
	if entries[0].TaskID != aliceDone.ID {
		t.Errorf("expected alice's task first, got %q", entries[0].Title)
	}

	byID := map[string]FeedEntry{}
	for _, e := range entries {
		byID[e.TaskID] = e
	}
	if e := byID[bobDone.ID]; e.Likes != 1 || !e.Liked {
		t.Errorf("bob's task annotation wrong: likes=%d liked=%v", e.Likes, e.Liked)
	}
	if e := byID[aliceDone.ID]; e.Likes != 0 || e.Liked {
		t.Errorf("alice's task annotation wrong: likes=%d liked=%v", e.Likes, e.Liked)
	}
	if byID[bobDone.ID].OwnerUsername != "bob" {
		t.Errorf("expected owner username %q, got %q", "bob", byID[bobDone.ID].OwnerUsername)
	}

	t.Run("unfollow removes tasks from feed", func(t *testing.T) {
		socialPort.following["u-alice"] = nil

		entries, err := svc.Feed(ctx, "u-alice")
		if err != nil {
			t.Fatalf("Feed() error = %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 feed entry after unfollow, got %d", len(entries))
		}
		if entries[0].TaskID != aliceDone.ID {
			t.Error("expected only alice's own task after unfollow")
		}
	})

	t.Run("viewer with nothing", func(t *testing.T) {
		entries, err := svc.Feed(ctx, "u-bob")
		if err != nil {
			t.Fatalf("Feed() error = %v", err)
		}
		// Bob follows nobody; only his own completed task shows.
		if len(entries) != 1 || entries[0].TaskID != bobDone.ID {
			t.Errorf("unexpected feed for bob: %+v", entries)
		}
	})
}

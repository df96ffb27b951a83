package repository

import (
	"database/sql"
	"errors"
	"testing"
	"time"
)

// newTestDB opens a fresh in-memory database. Connections are capped
// at one so every query sees the same in-memory store.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	return db
}

func newHabitRepo(t *testing.T) *HabitRepository {
	t.Helper()

	repo, err := NewHabitRepository(newTestDB(t))
	if err != nil {
		t.Fatalf("Failed to create habit repository: %v", err)
	}
	return repo
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.Local)
}

func TestUpdateStreak_ConsecutiveDays(t *testing.T) {
	repo := newHabitRepo(t)
	habit, err := repo.Create("Daily Exercise", "")
	if err != nil {
		t.Fatalf("Failed to create habit: %v", err)
	}

	h, err := repo.UpdateStreak(habit.ID, true, day(2025, 3, 10))
	if err != nil {
		t.Fatalf("UpdateStreak failed: %v", err)
	}
	if h.StreakCount != 1 {
		t.Errorf("Expected streak 1 after first completion, got %d", h.StreakCount)
	}

	h, err = repo.UpdateStreak(habit.ID, true, day(2025, 3, 11))
	if err != nil {
		t.Fatalf("UpdateStreak failed: %v", err)
	}
	if h.StreakCount != 2 {
		t.Errorf("Expected streak 2 after consecutive completion, got %d", h.StreakCount)
	}
	if h.LastCompleted == nil || h.LastCompleted.Day() != 11 {
		t.Errorf("Expected last_completed updated to the 11th, got %v", h.LastCompleted)
	}
}

func TestUpdateStreak_GapResetsToOne(t *testing.T) {
	repo := newHabitRepo(t)
	habit, _ := repo.Create("Daily Exercise", "")

	repo.UpdateStreak(habit.ID, true, day(2025, 3, 10))
	repo.UpdateStreak(habit.ID, true, day(2025, 3, 11))

	h, err := repo.UpdateStreak(habit.ID, true, day(2025, 3, 14))
	if err != nil {
		t.Fatalf("UpdateStreak failed: %v", err)
	}
	if h.StreakCount != 1 {
		t.Errorf("Expected streak reset to 1 after a gap, got %d", h.StreakCount)
	}
}

func TestUpdateStreak_GapAcrossDSTResets(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("Timezone database unavailable: %v", err)
	}

	repo := newHabitRepo(t)
	habit, _ := repo.Create("Daily Exercise", "")

	// US spring-forward 2025 is March 9; the shortened local day must
	// still count as a full calendar day in the gap
	repo.UpdateStreak(habit.ID, true, time.Date(2025, 3, 7, 12, 0, 0, 0, loc))
	repo.UpdateStreak(habit.ID, true, time.Date(2025, 3, 8, 12, 0, 0, 0, loc))

	h, err := repo.UpdateStreak(habit.ID, true, time.Date(2025, 3, 10, 12, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("UpdateStreak failed: %v", err)
	}
	if h.StreakCount != 1 {
		t.Errorf("Expected streak reset to 1 after a gap spanning DST, got %d", h.StreakCount)
	}
}

func TestUpdateStreak_SkipAcrossDSTBreaksStaleStreak(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("Timezone database unavailable: %v", err)
	}

	repo := newHabitRepo(t)
	habit, _ := repo.Create("Daily Exercise", "")

	repo.UpdateStreak(habit.ID, true, time.Date(2025, 3, 8, 12, 0, 0, 0, loc))

	h, err := repo.UpdateStreak(habit.ID, false, time.Date(2025, 3, 10, 12, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("UpdateStreak failed: %v", err)
	}
	if h.StreakCount != 0 {
		t.Errorf("Expected streak 0 after a stale skip spanning DST, got %d", h.StreakCount)
	}
}

func TestUpdateStreak_SameDayRepeatIsIdempotent(t *testing.T) {
	repo := newHabitRepo(t)
	habit, _ := repo.Create("Daily Exercise", "")

	repo.UpdateStreak(habit.ID, true, day(2025, 3, 10))
	repo.UpdateStreak(habit.ID, true, day(2025, 3, 11))

	h, err := repo.UpdateStreak(habit.ID, true, day(2025, 3, 11))
	if err != nil {
		t.Fatalf("UpdateStreak failed: %v", err)
	}
	if h.StreakCount != 2 {
		t.Errorf("Expected streak unchanged on same-day repeat, got %d", h.StreakCount)
	}
}

func TestUpdateStreak_SkipBreaksStaleStreak(t *testing.T) {
	repo := newHabitRepo(t)
	habit, _ := repo.Create("Daily Exercise", "")

	repo.UpdateStreak(habit.ID, true, day(2025, 3, 10))

	h, err := repo.UpdateStreak(habit.ID, false, day(2025, 3, 13))
	if err != nil {
		t.Fatalf("UpdateStreak failed: %v", err)
	}
	if h.StreakCount != 0 {
		t.Errorf("Expected streak 0 after stale skip, got %d", h.StreakCount)
	}
	if h.LastCompleted == nil || h.LastCompleted.Day() != 10 {
		t.Errorf("Skip must not touch last_completed, got %v", h.LastCompleted)
	}
}

func TestUpdateStreak_SkipKeepsFreshStreak(t *testing.T) {
	repo := newHabitRepo(t)
	habit, _ := repo.Create("Daily Exercise", "")

	repo.UpdateStreak(habit.ID, true, day(2025, 3, 10))

	// last completion was yesterday, skipping today keeps the streak
	h, err := repo.UpdateStreak(habit.ID, false, day(2025, 3, 11))
	if err != nil {
		t.Fatalf("UpdateStreak failed: %v", err)
	}
	if h.StreakCount != 1 {
		t.Errorf("Expected streak kept on fresh skip, got %d", h.StreakCount)
	}
}

func TestUpdateStreak_UnknownHabit(t *testing.T) {
	repo := newHabitRepo(t)

	h, err := repo.UpdateStreak(999, true, day(2025, 3, 10))
	if err != nil {
		t.Fatalf("UpdateStreak failed: %v", err)
	}
	if h != nil {
		t.Errorf("Expected nil habit for unknown id, got %+v", h)
	}
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	repo := newHabitRepo(t)

	seeded, err := repo.SeedDefaults()
	if err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}
	if !seeded {
		t.Error("Expected first seed to insert habits")
	}

	seeded, err = repo.SeedDefaults()
	if err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}
	if seeded {
		t.Error("Expected second seed to be a no-op")
	}

	habits, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(habits) != 4 {
		t.Fatalf("Expected exactly 4 default habits, got %d", len(habits))
	}
	if habits[0].Name != "Morning Planning" {
		t.Errorf("Unexpected first habit: %s", habits[0].Name)
	}
	for _, h := range habits {
		if h.StreakCount != 0 || h.LastCompleted != nil {
			t.Errorf("Expected empty streak for seeded habit %s", h.Name)
		}
	}
}

func TestLogRepository_DuplicateDateRejected(t *testing.T) {
	repo, err := NewLogRepository(newTestDB(t))
	if err != nil {
		t.Fatalf("Failed to create log repository: %v", err)
	}

	date := day(2025, 3, 10)
	if _, err := repo.Create(date, "shipped it", "", "rest"); err != nil {
		t.Fatalf("First create failed: %v", err)
	}

	_, err = repo.Create(date, "other", "", "")
	if !errors.Is(err, ErrLogExists) {
		t.Fatalf("Expected ErrLogExists, got %v", err)
	}

	logs, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("Expected exactly one log for the date, got %d", len(logs))
	}
	if logs[0].Accomplishments != "shipped it" {
		t.Errorf("First log was overwritten: %+v", logs[0])
	}
}

func TestLogRepository_GetByDate(t *testing.T) {
	repo, _ := NewLogRepository(newTestDB(t))

	date := day(2025, 3, 10)
	created, err := repo.Create(date, "a", "b", "c")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := repo.GetByDate(date)
	if err != nil {
		t.Fatalf("GetByDate failed: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatalf("Expected to find the created log, got %+v", found)
	}

	missing, err := repo.GetByDate(day(2025, 3, 11))
	if err != nil {
		t.Fatalf("GetByDate failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected no log for the next day, got %+v", missing)
	}
}

func TestTaskRepository_CRUD(t *testing.T) {
	repo, err := NewTaskRepository(newTestDB(t))
	if err != nil {
		t.Fatalf("Failed to create task repository: %v", err)
	}

	due := day(2025, 3, 15)
	task, err := repo.Create("Write report", "quarterly numbers", &due)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if task.Completed {
		t.Error("New task must not be completed")
	}
	if task.DueDate == nil || task.DueDate.Day() != 15 {
		t.Errorf("Due date not persisted: %v", task.DueDate)
	}

	updated, err := repo.Update(task.ID, task.Title, task.Description, task.DueDate, true)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated.Completed {
		t.Error("Completion flag not persisted")
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Error("updated_at must not precede created_at")
	}

	if err := repo.Delete(task.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	gone, err := repo.GetByID(task.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if gone != nil {
		t.Errorf("Expected task gone after delete, got %+v", gone)
	}
}

func TestNoteRepository_RecentOrdering(t *testing.T) {
	repo, err := NewNoteRepository(newTestDB(t))
	if err != nil {
		t.Fatalf("Failed to create note repository: %v", err)
	}

	first, _ := repo.Create("first", "")
	time.Sleep(5 * time.Millisecond)
	second, _ := repo.Create("second", "")
	time.Sleep(5 * time.Millisecond)

	// touching the first note moves it back to the front
	if _, err := repo.Update(first.ID, "first edited", ""); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	notes, err := repo.Recent(1)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != first.ID {
		t.Fatalf("Expected the freshly updated note first, got %+v", notes)
	}
	_ = second
}

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/studyquiz/back/internal/models"
)

func TestMemoryNoteRepositoryCreateAndGet(t *testing.T) {
	repo := NewMemoryNoteRepository()
	ctx := context.Background()

	quizID := int64(3)
	note := &models.Note{QuizID: &quizID, Title: "Chapter 1", Content: "Key formulas"}
	if err := repo.Create(ctx, note); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if note.ID == 0 {
		t.Error("note.ID not assigned")
	}
	if note.CreatedAt.IsZero() || note.UpdatedAt.IsZero() {
		t.Error("timestamps not set on create")
	}

	got, err := repo.GetByID(ctx, note.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Title != "Chapter 1" || got.QuizID == nil || *got.QuizID != 3 {
		t.Errorf("GetByID = %+v", got)
	}

	if _, err := repo.GetByID(ctx, 999); err == nil || err.Error() != "note not found" {
		t.Errorf("GetByID(999) error = %v, want note not found", err)
	}
}

func TestMemoryNoteRepositoryGetByQuizID(t *testing.T) {
	repo := NewMemoryNoteRepository()
	ctx := context.Background()

	quiz1 := int64(1)
	quiz2 := int64(2)
	notes := []*models.Note{
		{QuizID: &quiz1, Title: "quiz1 note"},
		{QuizID: &quiz2, Title: "quiz2 note"},
		{Title: "standalone note"},
	}
	for _, note := range notes {
		if err := repo.Create(ctx, note); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	got, err := repo.GetByQuizID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByQuizID returned error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "quiz1 note" {
		t.Errorf("GetByQuizID(1) = %+v", got)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("GetAll returned %d notes, want 3", len(all))
	}
}

func TestMemoryNoteRepositoryUpdate(t *testing.T) {
	repo := NewMemoryNoteRepository()
	ctx := context.Background()

	quizID := int64(5)
	first := &models.Note{QuizID: &quizID, Title: "First", Content: "old"}
	second := &models.Note{Title: "Second", Content: "untouched"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// 更新時刻が作成時刻より確実に進むようにする
	time.Sleep(5 * time.Millisecond)

	update := &models.Note{ID: first.ID, Title: "First revised", Content: "new"}
	if err := repo.Update(ctx, update); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	// 更新対象のQuizIDと作成時刻は引き継がれる
	if update.QuizID == nil || *update.QuizID != 5 {
		t.Errorf("update.QuizID = %v, want 5", update.QuizID)
	}
	if !update.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("update.CreatedAt = %v, want %v", update.CreatedAt, first.CreatedAt)
	}

	stored, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if stored.Title != "First revised" || stored.Content != "new" {
		t.Errorf("stored note = %+v", stored)
	}
	if !stored.UpdatedAt.After(stored.CreatedAt) {
		t.Errorf("UpdatedAt %v should be after CreatedAt %v", stored.UpdatedAt, stored.CreatedAt)
	}

	// 更新されたノートが一覧の先頭に来る
	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if all[0].ID != first.ID {
		t.Errorf("all[0].ID = %d, want %d (most recently updated first)", all[0].ID, first.ID)
	}

	missing := &models.Note{ID: 999, Title: "nope"}
	if err := repo.Update(ctx, missing); err == nil || err.Error() != "note not found" {
		t.Errorf("Update(999) error = %v, want note not found", err)
	}
}

func TestMemoryNoteRepositoryDelete(t *testing.T) {
	repo := NewMemoryNoteRepository()
	ctx := context.Background()

	note := &models.Note{Title: "to delete"}
	if err := repo.Create(ctx, note); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := repo.Delete(ctx, note.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := repo.Delete(ctx, note.ID); err == nil || err.Error() != "note not found" {
		t.Errorf("second Delete error = %v, want note not found", err)
	}
}

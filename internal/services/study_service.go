package services

import (
	"context"
	"fmt"

	"github.com/studyquiz/back/internal/models"
	"github.com/studyquiz/back/internal/repositories"
)

// StudyService は学習の記録（解答履歴・ブックマーク・ノート）を扱う
type StudyService interface {
	RecordAttempt(ctx context.Context, req models.CreateAttemptRequest) (*models.Attempt, error)
	ListAttemptsByQuiz(ctx context.Context, quizID int64) ([]*models.Attempt, error)
	ListAttempts(ctx context.Context, limit, offset int) ([]*models.Attempt, error)

	AddBookmark(ctx context.Context, questionID int64) (*models.Bookmark, error)
	RemoveBookmark(ctx context.Context, questionID int64) error
	GetBookmarkedQuestions(ctx context.Context) ([]*models.Question, error)

	CreateNote(ctx context.Context, req models.CreateNoteRequest) (*models.Note, error)
	GetNote(ctx context.Context, id int64) (*models.Note, error)
	ListNotes(ctx context.Context, quizID *int64) ([]*models.Note, error)
	UpdateNote(ctx context.Context, req models.UpdateNoteRequest) (*models.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

type studyService struct {
	quizRepo     repositories.QuizRepository
	questionRepo repositories.QuestionRepository
	attemptRepo  repositories.AttemptRepository
	bookmarkRepo repositories.BookmarkRepository
	noteRepo     repositories.NoteRepository
}

func NewStudyService(
	quizRepo repositories.QuizRepository,
	questionRepo repositories.QuestionRepository,
	attemptRepo repositories.AttemptRepository,
	bookmarkRepo repositories.BookmarkRepository,
	noteRepo repositories.NoteRepository,
) StudyService {
	return &studyService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		bookmarkRepo: bookmarkRepo,
		noteRepo:     noteRepo,
	}
}

func (s *studyService) RecordAttempt(ctx context.Context, req models.CreateAttemptRequest) (*models.Attempt, error) {
	if _, err := s.quizRepo.GetByID(ctx, req.QuizID); err != nil {
		return nil, err
	}

	attempt := &models.Attempt{
		QuizID:         req.QuizID,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Answers:        req.Answers,
	}

	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	fmt.Printf("📝 解答履歴を保存しました - クイズID: %d, スコア: %d/%d\n", attempt.QuizID, attempt.Score, attempt.TotalQuestions)
	return attempt, nil
}

func (s *studyService) ListAttemptsByQuiz(ctx context.Context, quizID int64) ([]*models.Attempt, error) {
	if _, err := s.quizRepo.GetByID(ctx, quizID); err != nil {
		return nil, err
	}
	return s.attemptRepo.GetByQuizID(ctx, quizID)
}

func (s *studyService) ListAttempts(ctx context.Context, limit, offset int) ([]*models.Attempt, error) {
	return s.attemptRepo.GetAll(ctx, limit, offset)
}

func (s *studyService) AddBookmark(ctx context.Context, questionID int64) (*models.Bookmark, error) {
	if _, err := s.questionRepo.GetByID(ctx, questionID); err != nil {
		return nil, err
	}

	exists, err := s.bookmarkRepo.ExistsByQuestionID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("question is already bookmarked")
	}

	bookmark := &models.Bookmark{QuestionID: questionID}
	if err := s.bookmarkRepo.Create(ctx, bookmark); err != nil {
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}

	return bookmark, nil
}

func (s *studyService) RemoveBookmark(ctx context.Context, questionID int64) error {
	return s.bookmarkRepo.DeleteByQuestionID(ctx, questionID)
}

func (s *studyService) GetBookmarkedQuestions(ctx context.Context) ([]*models.Question, error) {
	bookmarks, err := s.bookmarkRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	questions := make([]*models.Question, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		question, err := s.questionRepo.GetByID(ctx, bookmark.QuestionID)
		if err != nil {
			// クイズ削除後に残ったブックマークは一覧から外す
			continue
		}
		questions = append(questions, question)
	}

	return questions, nil
}

func (s *studyService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (*models.Note, error) {
	if req.QuizID != nil {
		if _, err := s.quizRepo.GetByID(ctx, *req.QuizID); err != nil {
			return nil, err
		}
	}

	note := &models.Note{
		QuizID:  req.QuizID,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

func (s *studyService) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	return s.noteRepo.GetByID(ctx, id)
}

func (s *studyService) ListNotes(ctx context.Context, quizID *int64) ([]*models.Note, error) {
	if quizID != nil {
		return s.noteRepo.GetByQuizID(ctx, *quizID)
	}
	return s.noteRepo.GetAll(ctx)
}

func (s *studyService) UpdateNote(ctx context.Context, req models.UpdateNoteRequest) (*models.Note, error) {
	note := &models.Note{
		ID:      req.ID,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	return s.noteRepo.GetByID(ctx, req.ID)
}

func (s *studyService) DeleteNote(ctx context.Context, id int64) error {
	return s.noteRepo.Delete(ctx, id)
}

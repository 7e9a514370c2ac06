package services

import (
	"context"
	"fmt"

	"github.com/studyquiz/back/internal/models"
	"github.com/studyquiz/back/internal/repositories"
	"github.com/studyquiz/back/internal/utils"
)

// QuizService はクイズの生成から保存・取得・削除までを担当する
type QuizService interface {
	GenerateQuiz(ctx context.Context, req models.GenerateQuizRequest) (*models.Quiz, error)
	GetQuiz(ctx context.Context, id int64) (*models.Quiz, error)
	ListQuizzes(ctx context.Context, limit, offset int) ([]*models.Quiz, error)
	DeleteQuiz(ctx context.Context, id int64) error
}

type quizService struct {
	generator    GeneratorService
	quizRepo     repositories.QuizRepository
	questionRepo repositories.QuestionRepository
	attemptRepo  repositories.AttemptRepository
}

func NewQuizService(
	generator GeneratorService,
	quizRepo repositories.QuizRepository,
	questionRepo repositories.QuestionRepository,
	attemptRepo repositories.AttemptRepository,
) QuizService {
	return &quizService{
		generator:    generator,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
	}
}

func (s *quizService) GenerateQuiz(ctx context.Context, req models.GenerateQuizRequest) (*models.Quiz, error) {
	questionType := models.QuestionType(req.QuestionType)

	generated, err := s.generator.GenerateQuestions(ctx, req.Content, questionType, req.QuestionCount)
	if err != nil {
		return nil, err
	}

	if len(generated) == 0 {
		return nil, fmt.Errorf("the model returned no usable questions")
	}

	quiz := &models.Quiz{
		Title:          utils.TitleFromFilename(req.Filename),
		SourceFilename: req.Filename,
		QuestionType:   req.QuestionType,
		QuestionCount:  len(generated),
	}

	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to save quiz: %w", err)
	}

	questions, err := s.questionRepo.CreateBatch(ctx, quiz.ID, generated)
	if err != nil {
		// 問題の保存に失敗したら中身のないクイズを残さない
		if deleteErr := s.quizRepo.Delete(ctx, quiz.ID); deleteErr != nil {
			fmt.Printf("⚠️ 問題保存失敗後のクイズ削除に失敗しました: %v\n", deleteErr)
		}
		return nil, fmt.Errorf("failed to save questions: %w", err)
	}

	quiz.Questions = questions

	fmt.Printf("💾 クイズを保存しました - ID: %d, タイトル: %s, 問題数: %d\n", quiz.ID, quiz.Title, len(questions))
	return quiz, nil
}

func (s *quizService) GetQuiz(ctx context.Context, id int64) (*models.Quiz, error) {
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.GetByQuizID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	quiz.Questions = questions
	return quiz, nil
}

func (s *quizService) ListQuizzes(ctx context.Context, limit, offset int) ([]*models.Quiz, error) {
	return s.quizRepo.GetAll(ctx, limit, offset)
}

func (s *quizService) DeleteQuiz(ctx context.Context, id int64) error {
	if _, err := s.quizRepo.GetByID(ctx, id); err != nil {
		return err
	}

	// バックエンドを問わず同じ順序で関連レコードから消す
	if err := s.attemptRepo.DeleteByQuizID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attempts: %w", err)
	}

	if err := s.questionRepo.DeleteByQuizID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete questions: %w", err)
	}

	return s.quizRepo.Delete(ctx, id)
}

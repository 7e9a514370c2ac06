package repositories

import (
	"context"

	"github.com/studyquiz/back/internal/models"
)

type QuizRepository interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	GetByID(ctx context.Context, id int64) (*models.Quiz, error)
	GetAll(ctx context.Context, limit, offset int) ([]*models.Quiz, error)
	Delete(ctx context.Context, id int64) error
}

type QuestionRepository interface {
	// CreateBatch は生成結果を保存し、IDと1始まりの出題順を割り当てる
	CreateBatch(ctx context.Context, quizID int64, questions []models.GeneratedQuestion) ([]*models.Question, error)
	GetByQuizID(ctx context.Context, quizID int64) ([]*models.Question, error)
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	DeleteByQuizID(ctx context.Context, quizID int64) error
}

type AttemptRepository interface {
	Create(ctx context.Context, attempt *models.Attempt) error
	GetByQuizID(ctx context.Context, quizID int64) ([]*models.Attempt, error)
	GetAll(ctx context.Context, limit, offset int) ([]*models.Attempt, error)
	DeleteByQuizID(ctx context.Context, quizID int64) error
}

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *models.Bookmark) error
	DeleteByQuestionID(ctx context.Context, questionID int64) error
	GetAll(ctx context.Context) ([]*models.Bookmark, error)
	ExistsByQuestionID(ctx context.Context, questionID int64) (bool, error)
}

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	GetAll(ctx context.Context) ([]*models.Note, error)
	GetByQuizID(ctx context.Context, quizID int64) ([]*models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id int64) error
}

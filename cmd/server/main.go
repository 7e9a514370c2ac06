package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/studyquiz/back/internal/api/handlers"
	"github.com/studyquiz/back/internal/api/routes"
	"github.com/studyquiz/back/internal/clients"
	"github.com/studyquiz/back/internal/config"
	"github.com/studyquiz/back/internal/repositories"
	"github.com/studyquiz/back/internal/services"
)

func main() {
	// 環境変数の読み込み
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// データベース接続の初期化（リトライ機能付き）
	dbConfig := config.LoadDatabaseConfig()
	db, err := config.NewDatabaseWithRetry(dbConfig)
	if err != nil {
		log.Printf("❌ データベース接続に失敗しました: %v", err)
		log.Printf("⚠️ メモリベースのリポジトリを使用します")
	} else {
		defer db.Close()
	}

	// 生成AIクライアントの初期化（AI_PROVIDERで切り替え、デフォルトはGroq）
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "groq"
	}

	var completionClient clients.CompletionClient
	switch provider {
	case "gemini", "google":
		completionClient = clients.NewGeminiClient(os.Getenv("GEMINI_MODEL"))
	case "groq":
		completionClient = clients.NewGroqClient(os.Getenv("GROQ_MODEL"))
	default:
		log.Printf("⚠️ 未対応のAI_PROVIDER「%s」が指定されています。Groqを使用します", provider)
		provider = "groq"
		completionClient = clients.NewGroqClient(os.Getenv("GROQ_MODEL"))
	}
	log.Printf("🤖 生成AIクライアントを初期化しました（プロバイダ: %s）", provider)

	// リポジトリを初期化（データベース接続が成功した場合はMySQL、失敗した場合はメモリベース）
	var quizRepo repositories.QuizRepository
	var questionRepo repositories.QuestionRepository
	var attemptRepo repositories.AttemptRepository
	var bookmarkRepo repositories.BookmarkRepository
	var noteRepo repositories.NoteRepository

	if db != nil {
		quizRepo = repositories.NewMySQLQuizRepository(db)
		questionRepo = repositories.NewMySQLQuestionRepository(db)
		attemptRepo = repositories.NewMySQLAttemptRepository(db)
		bookmarkRepo = repositories.NewMySQLBookmarkRepository(db)
		noteRepo = repositories.NewMySQLNoteRepository(db)
		log.Printf("✅ MySQLベースのリポジトリを初期化しました")
	} else {
		quizRepo = repositories.NewMemoryQuizRepository()
		questionRepo = repositories.NewMemoryQuestionRepository()
		attemptRepo = repositories.NewMemoryAttemptRepository()
		bookmarkRepo = repositories.NewMemoryBookmarkRepository()
		noteRepo = repositories.NewMemoryNoteRepository()
		log.Printf("✅ メモリベースのリポジトリを初期化しました")
	}

	// UI設定の読み込み
	uiConfigPath := os.Getenv("UI_CONFIG_PATH")
	if uiConfigPath == "" {
		uiConfigPath = "configs/ui.yaml"
	}
	uiConfig := config.LoadUIConfig(uiConfigPath)

	// サービスを初期化
	extractorService := services.NewExtractorService()
	generatorService := services.NewGeneratorService(completionClient, services.MixedSplitFromEnv())
	quizService := services.NewQuizService(generatorService, quizRepo, questionRepo, attemptRepo)
	studyService := services.NewStudyService(quizRepo, questionRepo, attemptRepo, bookmarkRepo, noteRepo)
	verseService := services.NewVerseService(clients.NewVerseClient())

	// ハンドラーの初期化
	healthHandler := handlers.NewHealthHandler()
	uploadHandler := handlers.NewUploadHandler(extractorService)
	quizHandler := handlers.NewQuizHandler(quizService)
	attemptHandler := handlers.NewAttemptHandler(studyService)
	bookmarkHandler := handlers.NewBookmarkHandler(studyService)
	noteHandler := handlers.NewNoteHandler(studyService)
	verseHandler := handlers.NewVerseHandler(verseService)
	configHandler := handlers.NewConfigHandler(uiConfig)

	// ルーターの設定
	router := routes.NewRouter(
		healthHandler,
		uploadHandler,
		quizHandler,
		attemptHandler,
		bookmarkHandler,
		noteHandler,
		verseHandler,
		configHandler,
	)

	// サーバーの起動
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 StudyQuiz Backend Server starting on port %s", port)
	log.Printf("📋 Available endpoints:")
	log.Printf("  - GET    /health")
	log.Printf("  - POST   /api/upload")
	log.Printf("  - POST   /api/generate-quiz")
	log.Printf("  - GET    /api/quiz?id=<id>")
	log.Printf("  - DELETE /api/quiz?id=<id>")
	log.Printf("  - GET    /api/quizzes")
	log.Printf("  - POST   /api/attempts")
	log.Printf("  - GET    /api/attempts?quizId=<id>")
	log.Printf("  - POST   /api/bookmarks")
	log.Printf("  - GET    /api/bookmarks")
	log.Printf("  - DELETE /api/bookmarks?questionId=<id>")
	log.Printf("  - POST   /api/notes")
	log.Printf("  - GET    /api/notes")
	log.Printf("  - PUT    /api/notes")
	log.Printf("  - DELETE /api/notes?id=<id>")
	log.Printf("  - GET    /api/verse")
	log.Printf("  - GET    /api/config")

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

package routes

import (
	"net/http"

	"github.com/studyquiz/back/internal/api/handlers"
	"github.com/studyquiz/back/internal/api/middleware"
	"github.com/studyquiz/back/internal/utils"
)

// Router sets up all the routes for the application
func NewRouter(
	healthHandler *handlers.HealthHandler,
	uploadHandler *handlers.UploadHandler,
	quizHandler *handlers.QuizHandler,
	attemptHandler *handlers.AttemptHandler,
	bookmarkHandler *handlers.BookmarkHandler,
	noteHandler *handlers.NoteHandler,
	verseHandler *handlers.VerseHandler,
	configHandler *handlers.ConfigHandler,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/", healthHandler.Health)
	mux.HandleFunc("/health", healthHandler.Health)

	// Document upload and quiz generation endpoints
	mux.HandleFunc("/api/upload", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST", "OPTIONS":
			uploadHandler.Upload(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/generate-quiz", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST", "OPTIONS":
			quizHandler.GenerateQuiz(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Quiz endpoints
	mux.HandleFunc("/api/quiz", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "GET", "OPTIONS":
			quizHandler.GetQuiz(w, r)
		case "DELETE":
			quizHandler.DeleteQuiz(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/quizzes", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "GET", "OPTIONS":
			quizHandler.ListQuizzes(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Attempt history endpoints
	mux.HandleFunc("/api/attempts", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST", "OPTIONS":
			attemptHandler.RecordAttempt(w, r)
		case "GET":
			attemptHandler.ListAttempts(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Bookmark endpoints
	mux.HandleFunc("/api/bookmarks", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST", "OPTIONS":
			bookmarkHandler.CreateBookmark(w, r)
		case "GET":
			bookmarkHandler.ListBookmarkedQuestions(w, r)
		case "DELETE":
			bookmarkHandler.DeleteBookmark(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Note endpoints
	mux.HandleFunc("/api/notes", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST", "OPTIONS":
			noteHandler.CreateNote(w, r)
		case "GET":
			if r.URL.Query().Get("id") != "" {
				noteHandler.GetNote(w, r)
			} else {
				noteHandler.ListNotes(w, r)
			}
		case "PUT":
			noteHandler.UpdateNote(w, r)
		case "DELETE":
			noteHandler.DeleteNote(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Verse of the day endpoint
	mux.HandleFunc("/api/verse", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "GET", "OPTIONS":
			verseHandler.GetVerse(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// UI config endpoint
	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "GET", "OPTIONS":
			configHandler.GetConfig(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Apply CORS middleware to all routes
	return middleware.CORSMiddleware(mux)
}

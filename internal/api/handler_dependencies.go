package api

import (
	"github.com/an0ushkaaa/twodo/internal/db"
	"github.com/an0ushkaaa/twodo/internal/services"
)

type handlerDependencies struct {
	repositories     *db.Repositories
	authService      *services.AuthService
	partnerService   *services.PartnerService
	todoService      *services.TodoService
	moodService      *services.MoodService
	noteService      *services.NoteService
	dashboardService *services.DashboardService
}

// ensureDependencies wires repositories and services once, from NewHandler.
// The nil checks let tests pre-seed individual services before construction
// finishes wiring the rest.
func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.repositories.Users)
	}
	if handler.partnerService == nil {
		handler.partnerService = services.NewPartnerService(handler.repositories.Users)
	}
	if handler.todoService == nil {
		handler.todoService = services.NewTodoService(handler.repositories.Todos)
	}
	if handler.moodService == nil {
		handler.moodService = services.NewMoodService(handler.repositories.Moods)
	}
	if handler.noteService == nil {
		handler.noteService = services.NewNoteService(handler.repositories.Notes)
	}
	if handler.dashboardService == nil {
		handler.dashboardService = services.NewDashboardService(handler.repositories.Users, handler.repositories.Todos)
	}
}

package db

import "gorm.io/gorm"

type Repositories struct {
	Users *UserRepository
	Todos *TodoRepository
	Moods *MoodRepository
	Notes *NoteRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users: NewUserRepository(database),
		Todos: NewTodoRepository(database),
		Moods: NewMoodRepository(database),
		Notes: NewNoteRepository(database),
	}
}

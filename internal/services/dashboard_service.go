package services

import "github.com/an0ushkaaa/twodo/internal/models"

type DashboardUserRepository interface {
	FindByID(userID uint) (models.User, error)
}

type DashboardTodoRepository interface {
	ListForUser(userID uint) ([]models.Todo, error)
}

// DashboardData is a pure read composition: no business logic beyond
// resolving the partner and fetching both todo lists.
type DashboardData struct {
	Partner      *models.User
	Todos        []models.Todo
	PartnerTodos []models.Todo
}

type DashboardService struct {
	users DashboardUserRepository
	todos DashboardTodoRepository
}

func NewDashboardService(users DashboardUserRepository, todos DashboardTodoRepository) *DashboardService {
	return &DashboardService{users: users, todos: todos}
}

func (service *DashboardService) Build(user models.User) (DashboardData, error) {
	data := DashboardData{
		PartnerTodos: []models.Todo{},
	}

	todos, err := service.todos.ListForUser(user.ID)
	if err != nil {
		return DashboardData{}, err
	}
	data.Todos = todos

	if user.PartnerID == nil {
		return data, nil
	}

	partner, err := service.users.FindByID(*user.PartnerID)
	if err != nil {
		// A dangling partner reference renders as unlinked instead of
		// failing the whole page.
		return data, nil
	}
	data.Partner = &partner

	partnerTodos, err := service.todos.ListForUser(partner.ID)
	if err != nil {
		return DashboardData{}, err
	}
	data.PartnerTodos = partnerTodos
	return data, nil
}

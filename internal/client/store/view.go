package store

import (
	"strings"

	"github.com/dmitrijs2005/todomini/internal/client/models"
)

// View is what consumers render. Before hydration, and whenever no session
// resolves to a stored user, it is the empty placeholder.
type View struct {
	IsHydrated      bool
	IsAuthenticated bool
	Profile         models.UserProfile
	FullName        string
	Tasks           []models.Task
}

// View derives the current view. Tasks are copied in insertion order.
func (s *Store) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{IsHydrated: s.hydrated, Tasks: []models.Task{}}

	u := s.data.SessionUser()
	if u == nil {
		return v
	}

	v.IsAuthenticated = true
	v.Profile = u.Profile()
	v.FullName = strings.TrimSpace(u.FirstName + " " + u.LastName)
	v.Tasks = append(v.Tasks, u.Tasks...)
	return v
}

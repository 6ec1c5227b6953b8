package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mycontacts/internal/middleware"
	"mycontacts/internal/model"
	"mycontacts/internal/repository"
	"mycontacts/internal/service"
	"mycontacts/internal/utils"
)

// In-memory repositories backing the handler tests, so requests exercise
// the full handler -> service -> store path over httptest.

type memUserRepo struct {
	byEmail map[string]*model.User
	nextID  int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*model.User)}
}

func (m *memUserRepo) Create(_ context.Context, u *model.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	m.nextID++
	u.ID = fmt.Sprintf("user-%d", m.nextID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	stored := *u
	m.byEmail[u.Email] = &stored
	return nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type memContactRepo struct {
	byID   map[string]*model.Contact
	order  []string
	nextID int
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{byID: make(map[string]*model.Contact)}
}

func (m *memContactRepo) Create(_ context.Context, c *model.Contact) error {
	m.nextID++
	c.ID = fmt.Sprintf("contact-%d", m.nextID)
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	stored := *c
	m.byID[c.ID] = &stored
	m.order = append([]string{c.ID}, m.order...)
	return nil
}

func (m *memContactRepo) FindAll(_ context.Context) ([]model.Contact, error) {
	var out []model.Contact
	for _, id := range m.order {
		out = append(out, *m.byID[id])
	}
	return out, nil
}

func (m *memContactRepo) FindByID(_ context.Context, id string) (*model.Contact, error) {
	if c, ok := m.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *memContactRepo) Update(_ context.Context, c *model.Contact) error {
	stored, ok := m.byID[c.ID]
	if !ok {
		return fmt.Errorf("contact not found for update")
	}
	stored.Name = c.Name
	stored.Email = c.Email
	stored.Phone = c.Phone
	stored.UpdatedAt = time.Now()
	return nil
}

func (m *memContactRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("contact not found for deletion")
	}
	delete(m.byID, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// newTestRouter wires the full API the way cmd/server does, over
// in-memory repositories.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	jwtUtil := utils.NewJWTUtil("test-secret", 10*time.Minute)

	authService := service.NewAuthService(newMemUserRepo(), jwtUtil, log)
	contactService := service.NewContactService(newMemContactRepo(), log)

	router := gin.New()
	router.Use(middleware.ErrorHandler(log))

	api := router.Group("/api")
	NewAuthHandler(authService).RegisterAuthRoutes(api, middleware.JWTAuthMiddleware(jwtUtil))
	NewContactHandler(contactService).RegisterContactRoutes(api)
	return router
}

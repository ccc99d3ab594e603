// File: internal/store/memory.go
package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"user-accounts/internal/model"
)

// MemoryStore 記憶體實作，供測試與 memory:// 使用；Email 唯一性在鎖內檢查
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[int]model.User
	byEmail map[string]int
	nextID  int
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   map[int]model.User{},
		byEmail: map[string]int{},
		nextID:  1,
		now:     time.Now,
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, u *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[u.Email]; ok {
		return nil, ErrEmailTaken
	}
	created := *u
	created.ID = s.nextID
	created.CreatedAt = s.now().UTC()
	created.UpdatedAt = created.CreatedAt
	s.nextID++
	s.users[created.ID] = created
	s.byEmail[created.Email] = created.ID
	return &created, nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := s.users[id]
	return &u, nil
}

func (s *MemoryStore) GetUserByID(_ context.Context, id int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (s *MemoryStore) ListUsers(_ context.Context, f model.UserFilter) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := []model.User{}
	for _, u := range s.users {
		if f.Search != "" && !strings.Contains(u.Name, f.Search) && !strings.Contains(u.Email, f.Search) {
			continue
		}
		if f.Country != "" && (u.Country == nil || *u.Country != f.Country) {
			continue
		}
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Delete 模擬系統外部的管理操作移除使用者
func (s *MemoryStore) Delete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[id]; ok {
		delete(s.byEmail, u.Email)
		delete(s.users, id)
	}
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

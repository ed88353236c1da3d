// Package memstore holds in-memory repositories with the same contracts as the gorm ones.
package memstore

import (
	"sync"
	"time"

	"contacts_backend/internal/models"
	"contacts_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===== users =====

type UserRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
}

var _ repositories.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*models.User)}
}

func (r *UserRepository) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (r *UserRepository) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *UserRepository) Create(_ *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Subscription == "" {
		user.Subscription = models.SubscriptionStarter
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now

	r.users[user.ID] = copyUser(user)
	return nil
}

func (r *UserRepository) SetToken(_ *gorm.DB, userID, token string) error {
	return r.update(userID, func(u *models.User) bool {
		u.Token = &token
		return true
	})
}

func (r *UserRepository) ClearToken(_ *gorm.DB, userID, token string) error {
	err := r.update(userID, func(u *models.User) bool {
		if !u.HasToken(token) {
			return false
		}
		u.Token = nil
		return true
	})
	if err == repositories.ErrUserNotFound {
		return nil
	}
	return err
}

func (r *UserRepository) VerifyByToken(_ *gorm.DB, verificationToken string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if !u.Verify && u.VerificationToken != nil && *u.VerificationToken == verificationToken {
			u.Verify = true
			u.VerificationToken = nil
			u.UpdatedAt = time.Now()
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *UserRepository) UpdateSubscription(_ *gorm.DB, userID string, subscription models.Subscription) error {
	return r.update(userID, func(u *models.User) bool {
		u.Subscription = subscription
		return true
	})
}

func (r *UserRepository) UpdateAvatar(_ *gorm.DB, userID, avatarURL string) error {
	return r.update(userID, func(u *models.User) bool {
		u.AvatarURL = avatarURL
		return true
	})
}

// Get returns a copy of the stored user, for assertions.
func (r *UserRepository) Get(id string) (*models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, false
	}
	return copyUser(u), true
}

// update applies fn under the lock; fn reports whether the row matched.
func (r *UserRepository) update(userID string, fn func(u *models.User) bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok || !fn(u) {
		return repositories.ErrUserNotFound
	}
	u.UpdatedAt = time.Now()
	return nil
}

func copyUser(u *models.User) *models.User {
	cp := *u
	if u.Token != nil {
		t := *u.Token
		cp.Token = &t
	}
	if u.VerificationToken != nil {
		t := *u.VerificationToken
		cp.VerificationToken = &t
	}
	cp.Contacts = nil
	return &cp
}

// ===== contacts =====

type ContactRepository struct {
	mu       sync.Mutex
	contacts []*models.Contact // insertion order
}

var _ repositories.ContactRepository = (*ContactRepository)(nil)

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func (r *ContactRepository) Create(_ *gorm.DB, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}
	now := time.Now()
	contact.CreatedAt, contact.UpdatedAt = now, now

	cp := *contact
	r.contacts = append(r.contacts, &cp)
	return nil
}

func (r *ContactRepository) FindByID(_ *gorm.DB, ownerID, id string) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, c := r.find(ownerID, id)
	if c == nil {
		return nil, repositories.ErrContactNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *ContactRepository) FindByOwner(_ *gorm.DB, ownerID string, filter repositories.ContactFilter) ([]models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Contact, 0)
	for _, c := range r.contacts {
		if c.OwnerID != ownerID {
			continue
		}
		if filter.Favorite != nil && c.Favorite != *filter.Favorite {
			continue
		}
		out = append(out, *c)
	}

	if filter.Limit > 0 {
		if filter.Offset >= len(out) {
			return []models.Contact{}, nil
		}
		end := filter.Offset + filter.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[filter.Offset:end]
	}
	return out, nil
}

func (r *ContactRepository) Update(_ *gorm.DB, ownerID, id string, fields map[string]interface{}) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, c := r.find(ownerID, id)
	if c == nil {
		return nil, repositories.ErrContactNotFound
	}

	for k, v := range fields {
		switch k {
		case "name":
			c.Name = v.(string)
		case "email":
			c.Email = v.(string)
		case "phone":
			c.Phone = v.(string)
		case "favorite":
			c.Favorite = v.(bool)
		}
	}
	c.UpdatedAt = time.Now()

	cp := *c
	return &cp, nil
}

func (r *ContactRepository) Delete(_ *gorm.DB, ownerID, id string) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, c := r.find(ownerID, id)
	if c == nil {
		return nil, repositories.ErrContactNotFound
	}
	r.contacts = append(r.contacts[:idx], r.contacts[idx+1:]...)
	return c, nil
}

// Count returns how many contacts are stored in total.
func (r *ContactRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.contacts)
}

func (r *ContactRepository) find(ownerID, id string) (int, *models.Contact) {
	for i, c := range r.contacts {
		if c.ID == id && c.OwnerID == ownerID {
			return i, c
		}
	}
	return -1, nil
}

package dto

import (
	"time"

	"contacts_backend/internal/models"
)

// CreateContactRequest - создание контакта
type CreateContactRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=50"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=6,max=20"`
}

// UpdateContactRequest - частичное обновление; nil означает "не передано"
type UpdateContactRequest struct {
	Name  *string `json:"name" validate:"omitnil,min=2,max=50"`
	Email *string `json:"email" validate:"omitnil,email"`
	Phone *string `json:"phone" validate:"omitnil,min=6,max=20"`
}

// IsEmpty - ни одно поле не передано
func (r *UpdateContactRequest) IsEmpty() bool {
	return blank(r.Name) && blank(r.Email) && blank(r.Phone)
}

// Fields возвращает колонки для обновления
func (r *UpdateContactRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, 3)
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	return fields
}

func blank(s *string) bool {
	return s == nil || *s == ""
}

// UpdateFavoriteRequest - флаг избранного, PATCH /:id/favorite
type UpdateFavoriteRequest struct {
	Favorite *bool `json:"favorite"`
}

// ContactListQuery - фильтры списка
type ContactListQuery struct {
	Favorite *bool `form:"favorite"`
	Page     int   `form:"page" validate:"omitempty,min=1"`
	Limit    int   `form:"limit" validate:"omitempty,min=1,max=100"`
}

// ContactResponse - контакт в ответе
type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Favorite  bool      `json:"favorite"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeleteContactResponse - ответ DELETE; DeletedContact равен null, если ничего не удалено
type DeleteContactResponse struct {
	Message        string           `json:"message"`
	DeletedContact *ContactResponse `json:"deletedContact"`
}

func NewContactResponse(c *models.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Favorite:  c.Favorite,
		Owner:     c.OwnerID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewContactListResponse(contacts []models.Contact) []*ContactResponse {
	out := make([]*ContactResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, NewContactResponse(&contacts[i]))
	}
	return out
}

package services

import (
	"contacts_backend/internal/logger"
	"contacts_backend/internal/models"
	"contacts_backend/internal/repositories"
	"contacts_backend/internal/services/dto"
	"contacts_backend/internal/validator"
	"contacts_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// =======================
// 1. ИНТЕРФЕЙС
// =======================
// Все методы принимают 'db *gorm.DB' и id владельца; чужой контакт неотличим от отсутствующего
type ContactService interface {
	List(db *gorm.DB, ownerID string, query dto.ContactListQuery) ([]*dto.ContactResponse, error)
	GetByID(db *gorm.DB, ownerID, id string) (*dto.ContactResponse, error)
	Create(db *gorm.DB, ownerID string, req *dto.CreateContactRequest) (*dto.ContactResponse, error)
	Update(db *gorm.DB, ownerID, id string, req *dto.UpdateContactRequest) (*dto.ContactResponse, error)
	UpdateFavorite(db *gorm.DB, ownerID, id string, req *dto.UpdateFavoriteRequest) (*dto.ContactResponse, error)
	Remove(db *gorm.DB, ownerID, id string) (*dto.ContactResponse, error)
}

// =======================
// 2. РЕАЛИЗАЦИЯ
// =======================
type contactService struct {
	contactRepo repositories.ContactRepository
	validator   *validator.Validator
}

func NewContactService(contactRepo repositories.ContactRepository, v *validator.Validator) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		validator:   v,
	}
}

func (s *contactService) List(db *gorm.DB, ownerID string, query dto.ContactListQuery) ([]*dto.ContactResponse, error) {
	if err := s.validator.Validate(&query); err != nil {
		return nil, validationFailure(err)
	}

	filter := repositories.ContactFilter{Favorite: query.Favorite}
	if query.Limit > 0 {
		page := query.Page
		if page < 1 {
			page = 1
		}
		filter.Limit = query.Limit
		filter.Offset = (page - 1) * query.Limit
	}

	contacts, err := s.contactRepo.FindByOwner(db, ownerID, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewContactListResponse(contacts), nil
}

func (s *contactService) GetByID(db *gorm.DB, ownerID, id string) (*dto.ContactResponse, error) {
	if id == "" {
		return nil, apperrors.ErrContactNotFound
	}

	contact, err := s.contactRepo.FindByID(db, ownerID, id)
	if err != nil {
		return nil, handleContactError(err)
	}
	return dto.NewContactResponse(contact), nil
}

func (s *contactService) Create(db *gorm.DB, ownerID string, req *dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, missingFieldsFailure(err)
	}

	contact := &models.Contact{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Favorite: false,
		OwnerID:  ownerID,
	}
	if err := s.contactRepo.Create(db, contact); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctxOf(db), "Contact created", "contact_id", contact.ID)
	return dto.NewContactResponse(contact), nil
}

func (s *contactService) Update(db *gorm.DB, ownerID, id string, req *dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	if req.IsEmpty() {
		return nil, apperrors.ErrMissingContactFields
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, firstValidationFailure(err)
	}

	contact, err := s.contactRepo.Update(db, ownerID, id, req.Fields())
	if err != nil {
		return nil, handleContactError(err)
	}

	logger.CtxInfo(ctxOf(db), "Contact updated", "contact_id", contact.ID)
	return dto.NewContactResponse(contact), nil
}

func (s *contactService) UpdateFavorite(db *gorm.DB, ownerID, id string, req *dto.UpdateFavoriteRequest) (*dto.ContactResponse, error) {
	if req.Favorite == nil {
		return nil, apperrors.ErrMissingFavorite
	}

	contact, err := s.contactRepo.Update(db, ownerID, id, map[string]interface{}{
		"favorite": *req.Favorite,
	})
	if err != nil {
		return nil, handleContactError(err)
	}
	return dto.NewContactResponse(contact), nil
}

func (s *contactService) Remove(db *gorm.DB, ownerID, id string) (*dto.ContactResponse, error) {
	contact, err := s.contactRepo.Delete(db, ownerID, id)
	if err != nil {
		return nil, handleContactError(err)
	}

	logger.CtxInfo(ctxOf(db), "Contact deleted", "contact_id", contact.ID)
	return dto.NewContactResponse(contact), nil
}

// =======================
// 3. ХЕЛПЕРЫ
// =======================

func handleContactError(err error) error {
	if apperrors.Is(err, repositories.ErrContactNotFound) {
		return apperrors.ErrContactNotFound
	}
	return apperrors.InternalError(err)
}

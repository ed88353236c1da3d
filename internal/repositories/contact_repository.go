package repositories

import (
	"errors"
	"time"

	"contacts_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrContactNotFound = errors.New("contact not found")

// ContactFilter narrows an owner's listing. Zero Limit means no limit.
type ContactFilter struct {
	Favorite *bool
	Limit    int
	Offset   int
}

// Every query is scoped by owner_id; another user's contact is reported as missing.
type ContactRepository interface {
	Create(db *gorm.DB, contact *models.Contact) error
	FindByID(db *gorm.DB, ownerID, id string) (*models.Contact, error)
	FindByOwner(db *gorm.DB, ownerID string, filter ContactFilter) ([]models.Contact, error)
	Update(db *gorm.DB, ownerID, id string, fields map[string]interface{}) (*models.Contact, error)
	Delete(db *gorm.DB, ownerID, id string) (*models.Contact, error)
}

type ContactRepositoryImpl struct{}

func NewContactRepository() ContactRepository {
	return &ContactRepositoryImpl{}
}

func (r *ContactRepositoryImpl) Create(db *gorm.DB, contact *models.Contact) error {
	return db.Create(contact).Error
}

func (r *ContactRepositoryImpl) FindByID(db *gorm.DB, ownerID, id string) (*models.Contact, error) {
	var contact models.Contact
	err := db.Where("id = ? AND owner_id = ?", id, ownerID).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepositoryImpl) FindByOwner(db *gorm.DB, ownerID string, filter ContactFilter) ([]models.Contact, error) {
	query := db.Where("owner_id = ?", ownerID)

	if filter.Favorite != nil {
		query = query.Where("favorite = ?", *filter.Favorite)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	contacts := make([]models.Contact, 0)
	err := query.Order("created_at ASC").Order("id ASC").Find(&contacts).Error
	return contacts, err
}

// Update locks the owner's row, applies fields and re-reads it in one transaction.
func (r *ContactRepositoryImpl) Update(db *gorm.DB, ownerID, id string, fields map[string]interface{}) (*models.Contact, error) {
	var contact models.Contact

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockContact(tx, ownerID, id, &contact); err != nil {
			return err
		}

		updates := make(map[string]interface{}, len(fields)+1)
		for k, v := range fields {
			updates[k] = v
		}
		updates["updated_at"] = time.Now()

		if err := tx.Model(&contact).Updates(updates).Error; err != nil {
			return err
		}

		return tx.Where("id = ? AND owner_id = ?", id, ownerID).First(&contact).Error
	})
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Delete returns the removed row.
func (r *ContactRepositoryImpl) Delete(db *gorm.DB, ownerID, id string) (*models.Contact, error) {
	var contact models.Contact

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockContact(tx, ownerID, id, &contact); err != nil {
			return err
		}

		result := tx.Delete(&contact)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrContactNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func lockContact(tx *gorm.DB, ownerID, id string, dest *models.Contact) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrContactNotFound
	}
	return err
}

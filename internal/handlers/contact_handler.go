package handlers

import (
	"net/http"

	"contacts_backend/internal/services"
	"contacts_backend/internal/services/dto"
	"contacts_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

// RegisterRoutes регистрирует /contacts; все маршруты требуют авторизации
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	contacts := rg.Group("/contacts")
	contacts.Use(authMiddleware)
	{
		contacts.GET("", h.List)
		contacts.GET("/:id", h.GetByID)
		contacts.POST("", h.Create)
		contacts.PUT("/:id", h.Update)
		contacts.PATCH("/:id/favorite", h.UpdateFavorite)
		contacts.DELETE("/:id", h.Remove)
	}
}

// List godoc
// @Summary Список контактов
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param favorite query bool false "Filter by favorite flag"
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {array} dto.ContactResponse
// @Failure 401 {object} apperrors.AppError
// @Router /api/contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ContactListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	contacts, err := h.contactService.List(h.GetDB(c), ownerID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// GetByID godoc
// @Summary Получить контакт
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} dto.ContactResponse
// @Failure 404 {object} apperrors.AppError "Not found"
// @Router /api/contacts/{id} [get]
func (h *ContactHandler) GetByID(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	contact, err := h.contactService.GetByID(h.GetDB(c), ownerID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// Create godoc
// @Summary Создать контакт
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contact body dto.CreateContactRequest true "Contact"
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} apperrors.AppError "Missing or invalid fields"
// @Router /api/contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateContactRequest
	if !h.BindJSON(c, &req) {
		return
	}

	contact, err := h.contactService.Create(h.GetDB(c), ownerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// Update godoc
// @Summary Обновить контакт
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param contact body dto.UpdateContactRequest true "Fields to change"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} apperrors.AppError "Missing fields"
// @Failure 404 {object} apperrors.AppError "Not found"
// @Router /api/contacts/{id} [put]
func (h *ContactHandler) Update(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateContactRequest
	if !h.BindJSON(c, &req) {
		return
	}

	contact, err := h.contactService.Update(h.GetDB(c), ownerID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// UpdateFavorite godoc
// @Summary Изменить флаг избранного
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param favorite body dto.UpdateFavoriteRequest true "Favorite flag"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} apperrors.AppError "missing field favorite"
// @Failure 404 {object} apperrors.AppError "Not found"
// @Router /api/contacts/{id}/favorite [patch]
func (h *ContactHandler) UpdateFavorite(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateFavoriteRequest
	if !h.BindJSON(c, &req) {
		return
	}

	contact, err := h.contactService.UpdateFavorite(h.GetDB(c), ownerID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// Remove godoc
// @Summary Удалить контакт
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} dto.DeleteContactResponse
// @Failure 404 {object} dto.DeleteContactResponse "Not found"
// @Router /api/contacts/{id} [delete]
func (h *ContactHandler) Remove(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	contact, err := h.contactService.Remove(h.GetDB(c), ownerID, c.Param("id"))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, dto.DeleteContactResponse{Message: apperrors.ErrContactNotFound.Message})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteContactResponse{
		Message:        "Contact deleted",
		DeletedContact: contact,
	})
}

package services

import (
	"testing"

	"contacts_backend/internal/services/dto"
	"contacts_backend/internal/validator"
	"contacts_backend/pkg/apperrors"
	"contacts_backend/test/helpers/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newContactService() (ContactService, *memstore.ContactRepository) {
	repo := memstore.NewContactRepository()
	return NewContactService(repo, validator.New()), repo
}

func requireAppError(t *testing.T, err error) *apperrors.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected *AppError, got %T: %v", err, err)
	return appErr
}

func TestContactService_CreateThenGet(t *testing.T) {
	svc, _ := newContactService()

	created, err := svc.Create(nil, "owner-1", &dto.CreateContactRequest{Name: "Alice", Email: "alice@example.com", Phone: "(555) 123-4567"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Favorite)
	assert.Equal(t, "owner-1", created.Owner)

	got, err := svc.GetByID(nil, "owner-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "(555) 123-4567", got.Phone)
	assert.Equal(t, created.ID, got.ID)
}

func TestContactService_CreateMissingFields(t *testing.T) {
	svc, repo := newContactService()

	cases := []struct {
		req  dto.CreateContactRequest
		want string
	}{
		{dto.CreateContactRequest{}, "The following mandatory fields are missing: name, email, phone"},
		{dto.CreateContactRequest{Email: "a@b.com"}, "The following mandatory fields are missing: name, phone"},
		{dto.CreateContactRequest{Name: "Al", Email: "a@b.com"}, "The following mandatory fields are missing: phone"},
	}
	for _, tc := range cases {
		_, err := svc.Create(nil, "owner-1", &tc.req)
		appErr := requireAppError(t, err)
		assert.Equal(t, 400, appErr.HTTPCode)
		assert.Equal(t, tc.want, appErr.Message)
	}
	assert.Zero(t, repo.Count())
}

func TestContactService_CreateInvalidFieldsAggregated(t *testing.T) {
	svc, repo := newContactService()

	_, err := svc.Create(nil, "owner-1", &dto.CreateContactRequest{Name: "A", Email: "nope", Phone: "123"})
	appErr := requireAppError(t, err)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "Validation error: ")
	assert.Contains(t, appErr.Message, "name")
	assert.Contains(t, appErr.Message, "email")
	assert.Contains(t, appErr.Message, "phone")
	assert.Zero(t, repo.Count())
}

func TestContactService_UpdateNoFields(t *testing.T) {
	svc, _ := newContactService()
	created, err := svc.Create(nil, "o", &dto.CreateContactRequest{Name: "Alice", Email: "alice@example.com", Phone: "1234567"})
	require.NoError(t, err)

	_, err = svc.Update(nil, "o", created.ID, &dto.UpdateContactRequest{})
	appErr := requireAppError(t, err)
	assert.Equal(t, "Missing fields", appErr.Message)

	_, err = svc.Update(nil, "o", created.ID, &dto.UpdateContactRequest{Name: strPtr("")})
	assert.Equal(t, "Missing fields", requireAppError(t, err).Message)

	got, err := svc.GetByID(nil, "o", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}

func TestContactService_UpdateFirstFailureOnly(t *testing.T) {
	svc, _ := newContactService()
	created, err := svc.Create(nil, "o", &dto.CreateContactRequest{Name: "Alice", Email: "alice@example.com", Phone: "1234567"})
	require.NoError(t, err)

	_, err = svc.Update(nil, "o", created.ID, &dto.UpdateContactRequest{Name: strPtr("A"), Email: strPtr("bad")})
	appErr := requireAppError(t, err)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "name")
	assert.NotContains(t, appErr.Message, "email")

	got, err := svc.GetByID(nil, "o", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestContactService_UpdatePartial(t *testing.T) {
	svc, _ := newContactService()
	created, err := svc.Create(nil, "o", &dto.CreateContactRequest{Name: "Alice", Email: "alice@example.com", Phone: "1234567"})
	require.NoError(t, err)

	updated, err := svc.Update(nil, "o", created.ID, &dto.UpdateContactRequest{Phone: strPtr("7654321")})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "7654321", updated.Phone)
}

func TestContactService_UpdateFavorite(t *testing.T) {
	svc, _ := newContactService()
	created, err := svc.Create(nil, "o", &dto.CreateContactRequest{Name: "Alice", Email: "alice@example.com", Phone: "1234567"})
	require.NoError(t, err)

	_, err = svc.UpdateFavorite(nil, "o", created.ID, &dto.UpdateFavoriteRequest{})
	assert.Equal(t, "missing field favorite", requireAppError(t, err).Message)

	got, err := svc.GetByID(nil, "o", created.ID)
	require.NoError(t, err)
	assert.False(t, got.Favorite)

	updated, err := svc.UpdateFavorite(nil, "o", created.ID, &dto.UpdateFavoriteRequest{Favorite: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Favorite)
}

func TestContactService_RemoveTwice(t *testing.T) {
	svc, repo := newContactService()
	created, err := svc.Create(nil, "o", &dto.CreateContactRequest{Name: "Alice", Email: "alice@example.com", Phone: "1234567"})
	require.NoError(t, err)

	deleted, err := svc.Remove(nil, "o", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.Remove(nil, "o", created.ID)
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
	assert.Zero(t, repo.Count())
}

func TestContactService_RemoveUnknownHasNoSideEffect(t *testing.T) {
	svc, repo := newContactService()
	_, err := svc.Create(nil, "o", &dto.CreateContactRequest{Name: "Alice", Email: "alice@example.com", Phone: "1234567"})
	require.NoError(t, err)

	_, err = svc.Remove(nil, "o", "does-not-exist")
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
	assert.Equal(t, 1, repo.Count())
}

func TestContactService_OwnershipIsolation(t *testing.T) {
	svc, repo := newContactService()
	created, err := svc.Create(nil, "alice", &dto.CreateContactRequest{Name: "Secret", Email: "s@example.com", Phone: "1234567"})
	require.NoError(t, err)

	_, err = svc.GetByID(nil, "mallory", created.ID)
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)

	_, err = svc.Update(nil, "mallory", created.ID, &dto.UpdateContactRequest{Name: strPtr("Pwned")})
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)

	_, err = svc.UpdateFavorite(nil, "mallory", created.ID, &dto.UpdateFavoriteRequest{Favorite: boolPtr(true)})
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)

	_, err = svc.Remove(nil, "mallory", created.ID)
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)

	list, err := svc.List(nil, "mallory", dto.ContactListQuery{})
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := svc.GetByID(nil, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Secret", got.Name)
	assert.Equal(t, 1, repo.Count())
}

func TestContactService_ListFilterAndPagination(t *testing.T) {
	svc, _ := newContactService()
	names := []string{"Anna", "Boris", "Clara", "Dmitry"}
	for i, n := range names {
		c, err := svc.Create(nil, "o", &dto.CreateContactRequest{Name: n, Email: "x@example.com", Phone: "1234567"})
		require.NoError(t, err)
		if i%2 == 0 {
			_, err = svc.UpdateFavorite(nil, "o", c.ID, &dto.UpdateFavoriteRequest{Favorite: boolPtr(true)})
			require.NoError(t, err)
		}
	}

	all, err := svc.List(nil, "o", dto.ContactListQuery{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Anna", all[0].Name)

	favs, err := svc.List(nil, "o", dto.ContactListQuery{Favorite: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, "Clara", favs[1].Name)

	page2, err := svc.List(nil, "o", dto.ContactListQuery{Page: 2, Limit: 3})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "Dmitry", page2[0].Name)

	_, err = svc.List(nil, "o", dto.ContactListQuery{Limit: 1000})
	assert.Equal(t, 400, requireAppError(t, err).HTTPCode)
}

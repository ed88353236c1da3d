package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseModel_BeforeCreateAssignsUUID(t *testing.T) {
	var m BaseModel
	require.NoError(t, m.BeforeCreate(nil))
	_, err := uuid.Parse(m.ID)
	assert.NoError(t, err)

	keep := BaseModel{ID: "preset"}
	require.NoError(t, keep.BeforeCreate(nil))
	assert.Equal(t, "preset", keep.ID)
}

func TestBaseModel_IDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		var m BaseModel
		require.NoError(t, m.BeforeCreate(nil))
		assert.False(t, seen[m.ID])
		seen[m.ID] = true
	}
}

func TestUser_HasToken(t *testing.T) {
	tok := "abc"
	empty := ""

	assert.False(t, (&User{}).HasToken("abc"))
	assert.False(t, (&User{Token: &empty}).HasToken(""))
	assert.False(t, (&User{Token: &tok}).HasToken("abd"))
	assert.True(t, (&User{Token: &tok}).HasToken("abc"))
}

func TestSubscription_Valid(t *testing.T) {
	assert.True(t, SubscriptionStarter.Valid())
	assert.True(t, SubscriptionPro.Valid())
	assert.True(t, SubscriptionBusiness.Valid())
	assert.False(t, Subscription("gold").Valid())
	assert.False(t, Subscription("").Valid())
}

package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/safewalk/internal/common"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactBook_AddMomAndSarah(t *testing.T) {
	f := newFixture(t, fastPolicy())
	ctx := context.Background()

	list, err := f.contacts.List(ctx, "o")
	require.NoError(t, err)
	require.Empty(t, list)

	mom, err := f.contacts.Add(ctx, "o", "Mom", "+15551234567", "Family")
	require.NoError(t, err)
	sarah, err := f.contacts.Add(ctx, "o", "Sarah", "+15559876543", "")
	require.NoError(t, err)

	assert.NotEqual(t, mom.ID, sarah.ID)
	assert.Equal(t, models.RelationshipFriend, sarah.Relationship)

	list, err = f.contacts.List(ctx, "o")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Mom", list[0].Name)
	assert.Equal(t, "+15551234567", list[0].Phone)
	assert.Equal(t, "Sarah", list[1].Name)
	assert.Equal(t, "+15559876543", list[1].Phone)
}

func TestContactBook_AddValidation(t *testing.T) {
	f := newFixture(t, fastPolicy())
	ctx := context.Background()

	cases := []struct {
		name, phone, rel, field string
	}{
		{"", "555-0000", "", "name"},
		{"   ", "555-0000", "", "name"},
		{"Name", "", "", "phone"},
		{"Name", "555-0000", "Coworker", "relationship"},
	}
	for _, tc := range cases {
		_, err := f.contacts.Add(ctx, "o", tc.name, tc.phone, tc.rel)
		require.ErrorIs(t, err, common.ErrValidation)

		var ve *common.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, tc.field, ve.Field)
	}

	list, _ := f.contacts.List(ctx, "o")
	assert.Empty(t, list)
}

func TestContactBook_UpdateKeepsIDAndCreatedAt(t *testing.T) {
	f := newFixture(t, fastPolicy())
	ctx := context.Background()

	c, _ := f.contacts.Add(ctx, "o", "Mom", "1", "family")

	u, err := f.contacts.Update(ctx, "o", c.ID, " Mother ", "2", "")
	require.NoError(t, err)
	assert.Equal(t, c.ID, u.ID)
	assert.Equal(t, c.CreatedAt, u.CreatedAt)
	assert.Equal(t, "Mother", u.Name)
	assert.Equal(t, models.RelationshipFriend, u.Relationship)

	_, err = f.contacts.Update(ctx, "o", 42, "X", "1", "")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.contacts.Update(ctx, "o", c.ID, "", "1", "")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestContactBook_RemoveDoesNotReuseIDs(t *testing.T) {
	f := newFixture(t, fastPolicy())
	ctx := context.Background()

	a, _ := f.contacts.Add(ctx, "o", "A", "1", "")
	b, _ := f.contacts.Add(ctx, "o", "B", "2", "")

	require.NoError(t, f.contacts.Remove(ctx, "o", b.ID))
	assert.ErrorIs(t, f.contacts.Remove(ctx, "o", b.ID), common.ErrorNotFound)

	c, _ := f.contacts.Add(ctx, "o", "C", "3", "")
	assert.NotEqual(t, b.ID, c.ID)
	assert.NotEqual(t, a.ID, c.ID)

	_, err := f.contacts.Get(ctx, "o", b.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	list, _ := f.contacts.List(ctx, "o")
	require.Len(t, list, 2)
	assert.Equal(t, []string{"A", "C"}, []string{list[0].Name, list[1].Name})
}

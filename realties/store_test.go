package realties_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/aquarealty/apperror"
	"github.com/user/aquarealty/db/dbtest"
	"github.com/user/aquarealty/models"
	"github.com/user/aquarealty/realties"
)

func TestStore_DeleteDetachesZones(t *testing.T) {
	gdb := dbtest.Open(t)
	store := realties.NewStore(gdb)
	ctx := context.Background()

	realty, err := store.Create(ctx, realties.CreateRealtyRequest{Name: "Casa da praia"})
	require.NoError(t, err)
	zone := &models.Zone{Name: "Cozinha", RealtyID: &realty.ID}
	require.NoError(t, gdb.Create(zone).Error)

	removed, err := store.Delete(ctx, realty.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	var reloaded models.Zone
	require.NoError(t, gdb.First(&reloaded, zone.ID).Error)
	assert.Nil(t, reloaded.RealtyID)
	assert.Equal(t, "Cozinha", reloaded.Name)

	_, err = store.Get(ctx, realty.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestStore_ListEmpty(t *testing.T) {
	store := realties.NewStore(dbtest.Open(t))

	all, err := store.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

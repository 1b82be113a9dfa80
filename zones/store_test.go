package zones_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/aquarealty/apperror"
	"github.com/user/aquarealty/db/dbtest"
	"github.com/user/aquarealty/models"
	"github.com/user/aquarealty/zones"
)

func TestStore_DeleteDetachesWaterpoints(t *testing.T) {
	gdb := dbtest.Open(t)
	store := zones.NewStore(gdb)
	ctx := context.Background()

	zone, err := store.Create(ctx, zones.CreateZoneRequest{Name: "Jardim"})
	require.NoError(t, err)
	point := &models.Waterpoint{Name: "Torneira", ZoneID: &zone.ID}
	require.NoError(t, gdb.Create(point).Error)

	removed, err := store.Delete(ctx, zone.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	var reloaded models.Waterpoint
	require.NoError(t, gdb.First(&reloaded, point.ID).Error)
	assert.Nil(t, reloaded.ZoneID)

	removed, err = store.Delete(ctx, zone.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = store.Get(ctx, zone.ID)
	assert.True(t, apperror.IsNotFound(err))
}

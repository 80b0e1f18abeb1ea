package db

import (
	"context"
	"testing"

	"mir4scope-backend/lib/testutil"

	"github.com/stretchr/testify/require"
)

func TestCharacterExists(t *testing.T) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "nftscope/db",
		DbSchema: Schema,
	})
	defer cleanup()

	qry := New(res.DB)
	ctx := context.Background()

	known, err := qry.CharacterExists(ctx, 42)
	require.NoError(t, err)
	require.EqualValues(t, 0, known)

	err = qry.CreateCharacter(ctx, CreateCharacterParams{
		Seq:           9042,
		TransportID:   42,
		NftID:         "0xabc",
		CharacterName: "Ruyue",
	})
	require.NoError(t, err)

	known, err = qry.CharacterExists(ctx, 42)
	require.NoError(t, err)
	require.EqualValues(t, 1, known)

	// transport_id is the novelty key, a duplicate insert must fail
	err = qry.CreateCharacter(ctx, CreateCharacterParams{
		Seq:           9043,
		TransportID:   42,
		NftID:         "0xabc",
		CharacterName: "Ruyue",
	})
	require.Error(t, err)
}

func TestSubDocumentIds(t *testing.T) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "nftscope/db",
		DbSchema: Schema,
	})
	defer cleanup()

	qry := New(res.DB)
	ctx := context.Background()

	first, err := qry.CreateInventory(ctx, CreateInventoryParams{
		Items:          "[]",
		CraftMaterials: "{}",
	})
	require.NoError(t, err)
	second, err := qry.CreateInventory(ctx, CreateInventoryParams{
		Items:          "[]",
		CraftMaterials: "{}",
	})
	require.NoError(t, err)
	require.Greater(t, second, first)

	count, err := qry.CountInventories(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

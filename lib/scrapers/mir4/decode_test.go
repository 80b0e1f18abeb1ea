package mir4

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumberCoercion(t *testing.T) {
	cases := []struct {
		raw      string
		expected float64
	}{
		{`12`, 12},
		{`"12"`, 12},
		{`12.5`, 12.5},
		{`"12.5"`, 12.5},
		{`"1002345"`, 1002345},
		{`""`, 0},
		{`0`, 0},
	}

	for _, test := range cases {
		var n Number
		err := json.Unmarshal([]byte(test.raw), &n)
		require.NoError(t, err, test.raw)
		require.Equal(t, test.expected, float64(n), test.raw)
	}

	var n Number
	err := json.Unmarshal([]byte(`"not a number"`), &n)
	require.Error(t, err)
}

func TestCountCoercion(t *testing.T) {
	var c Count
	require.NoError(t, json.Unmarshal([]byte(`"240"`), &c))
	require.EqualValues(t, 240, c)
	require.NoError(t, json.Unmarshal([]byte(`7`), &c))
	require.EqualValues(t, 7, c)
}

func TestGradeNull(t *testing.T) {
	var g grade
	require.NoError(t, json.Unmarshal([]byte(`null`), &g))
	require.Equal(t, "0", string(g))
	require.NoError(t, json.Unmarshal([]byte(`"4"`), &g))
	require.Equal(t, "4", string(g))
}

func TestDeckMapAcceptsEmptyArray(t *testing.T) {
	var decks MagicOrbDecks
	require.NoError(t, json.Unmarshal([]byte(`[]`), &decks))
	require.Empty(t, decks)

	require.NoError(t, json.Unmarshal([]byte(`{
		"1": {"1": {"itemIdx": "600001", "itemName": "Orb of Rage", "itemLv": "5"}}
	}`), &decks))
	require.Len(t, decks, 1)
	require.Equal(t, "Orb of Rage", decks["1"]["1"].ItemName)
	require.EqualValues(t, 5, decks["1"]["1"].ItemLevel)
}

func TestSlotMapAcceptsEmptyArray(t *testing.T) {
	var slots EquipSlots
	require.NoError(t, json.Unmarshal([]byte(`[]`), &slots))
	require.Empty(t, slots)

	require.NoError(t, json.Unmarshal([]byte(`{
		"1": {"itemIdx": "110500", "itemName": "Dragon Claw Blade"}
	}`), &slots))
	require.Equal(t, "Dragon Claw Blade", slots["1"].ItemName)
}

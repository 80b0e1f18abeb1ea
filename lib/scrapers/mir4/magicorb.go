package mir4

import (
	"context"
	"strconv"
)

type MagicOrb struct {
	ItemIdx   string `json:"itemIdx"`
	ItemLevel Count  `json:"itemLv"`
	ItemExp   Count  `json:"itemExp"`
	Grade     string `json:"grade"`
	Tier      string `json:"tier"`
	ItemName  string `json:"itemName"`
	ItemPath  string `json:"itemPath"`
}

type MagicOrbDecks map[string]map[string]MagicOrb

func (d *MagicOrbDecks) UnmarshalJSON(b []byte) error {
	return unmarshalDeckMap(b, (*map[string]map[string]MagicOrb)(d))
}

// MagicOrbDeck groups orb slots into deck sets with one active
// selection. Orbs carry no per-instance rolled options, so no item
// detail lookup happens here.
type MagicOrbDeck struct {
	EquipItem  MagicOrbDecks `json:"equipItem"`
	ActiveDeck int64         `json:"activeDeck"`
}

type magicOrbResponse struct {
	Data struct {
		EquipItem  MagicOrbDecks `json:"equipItem"`
		ActiveDeck Count         `json:"activeDeck"`
	} `json:"data"`
}

func (c *Client) MagicOrb(ctx context.Context, transportID int64) (MagicOrbDeck, error) {
	res, err := get[magicOrbResponse](ctx, c, "/character/magicorb", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
	})
	if err != nil {
		return MagicOrbDeck{}, err
	}
	return MagicOrbDeck{
		EquipItem:  res.Data.EquipItem,
		ActiveDeck: int64(res.Data.ActiveDeck),
	}, nil
}

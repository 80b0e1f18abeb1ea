package mir4

import (
	"context"
	"strconv"
)

type MagicStone struct {
	ItemIdx    string          `json:"itemIdx"`
	TranceStep Count           `json:"tranceStep"`
	RefineStep Count           `json:"RefineStep"`
	Grade      string          `json:"grade"`
	Tier       string          `json:"tier"`
	ItemName   string          `json:"itemName"`
	ItemPath   string          `json:"itemPath"`
	PowerScore Count           `json:"powerScore"`
	Options    []ItemOption    `json:"options"`
	AddOptions []ItemAddOption `json:"addOptions"`
	IsTradable bool            `json:"isTradable"`
}

type MagicStoneDecks map[string]map[string]MagicStone

func (d *MagicStoneDecks) UnmarshalJSON(b []byte) error {
	return unmarshalDeckMap(b, (*map[string]map[string]MagicStone)(d))
}

type MagicStoneDeck struct {
	EquipItem  MagicStoneDecks `json:"equipItem"`
	ActiveDeck int64           `json:"activeDeck"`
}

type magicStoneResponse struct {
	Data struct {
		EquipItem  MagicStoneDecks `json:"equipItem"`
		ActiveDeck Count           `json:"activeDeck"`
	} `json:"data"`
}

// MagicStone fetches the magic stone decks and resolves every slot's
// item detail through the inventory snapshot.
func (c *Client) MagicStone(
	ctx context.Context,
	transportID, class int64,
	inventory []InventoryItem,
	trade TradeTable,
) (MagicStoneDeck, error) {
	res, err := get[magicStoneResponse](ctx, c, "/character/magicstone", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
	})
	if err != nil {
		return MagicStoneDeck{}, err
	}

	for _, slots := range res.Data.EquipItem {
		for slotIdx, stone := range slots {
			detail, tradable := c.resolveSlot(ctx, transportID, class, stone.ItemIdx, inventory, trade)
			stone.PowerScore = detail.PowerScore
			stone.Options = detail.Options
			stone.AddOptions = detail.AddOptions
			stone.IsTradable = tradable
			slots[slotIdx] = stone
		}
	}

	return MagicStoneDeck{
		EquipItem:  res.Data.EquipItem,
		ActiveDeck: int64(res.Data.ActiveDeck),
	}, nil
}

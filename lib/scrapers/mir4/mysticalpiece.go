package mir4

import (
	"context"
	"strconv"
)

type MysticalPiece struct {
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

type MysticalPieceDecks map[string]map[string]MysticalPiece

func (d *MysticalPieceDecks) UnmarshalJSON(b []byte) error {
	return unmarshalDeckMap(b, (*map[string]map[string]MysticalPiece)(d))
}

type MysticalPieceDeck struct {
	EquipItem  MysticalPieceDecks `json:"equipItem"`
	ActiveDeck int64              `json:"activeDeck"`
}

type mysticalPieceResponse struct {
	Data struct {
		EquipItem  MysticalPieceDecks `json:"equipItem"`
		ActiveDeck Count              `json:"activeDeck"`
	} `json:"data"`
}

// MysticalPiece fetches the mystical piece decks and resolves every
// slot's item detail through the inventory snapshot.
func (c *Client) MysticalPiece(
	ctx context.Context,
	transportID, class int64,
	inventory []InventoryItem,
	trade TradeTable,
) (MysticalPieceDeck, error) {
	res, err := get[mysticalPieceResponse](ctx, c, "/character/mysticalpiece", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
	})
	if err != nil {
		return MysticalPieceDeck{}, err
	}

	for _, slots := range res.Data.EquipItem {
		for slotIdx, piece := range slots {
			detail, tradable := c.resolveSlot(ctx, transportID, class, piece.ItemIdx, inventory, trade)
			piece.PowerScore = detail.PowerScore
			piece.Options = detail.Options
			piece.AddOptions = detail.AddOptions
			piece.IsTradable = tradable
			slots[slotIdx] = piece
		}
	}

	return MysticalPieceDeck{
		EquipItem:  res.Data.EquipItem,
		ActiveDeck: int64(res.Data.ActiveDeck),
	}, nil
}

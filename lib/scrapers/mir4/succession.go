package mir4

import (
	"context"
	"strconv"
)

type SuccessionItem struct {
	ItemIdx    string          `json:"itemIdx"`
	TranceStep Count           `json:"tranceStep"`
	RefineStep Count           `json:"RefineStep"`
	Enhance    Count           `json:"enhance"`
	Grade      string          `json:"grade"`
	Tier       string          `json:"tier"`
	ItemName   string          `json:"itemName"`
	ItemPath   string          `json:"itemPath"`
	PowerScore Count           `json:"powerScore"`
	Options    []ItemOption    `json:"options"`
	AddOptions []ItemAddOption `json:"addOptions"`
	IsTradable bool            `json:"isTradable"`
}

// the succession deck is flat, slot id to item, with no deck sets
type SuccessionSlots map[string]SuccessionItem

func (s *SuccessionSlots) UnmarshalJSON(b []byte) error {
	return unmarshalSlotMap(b, (*map[string]SuccessionItem)(s))
}

type successionResponse struct {
	Data struct {
		EquipItem SuccessionSlots `json:"equipItem"`
	} `json:"data"`
}

// Succession fetches the succession equipment and resolves every
// slot's item detail through the inventory snapshot.
func (c *Client) Succession(
	ctx context.Context,
	transportID, class int64,
	inventory []InventoryItem,
	trade TradeTable,
) (SuccessionSlots, error) {
	res, err := get[successionResponse](ctx, c, "/character/succession", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
		"class":       strconv.FormatInt(class, 10),
	})
	if err != nil {
		return nil, err
	}

	slots := res.Data.EquipItem
	for slotIdx, item := range slots {
		detail, tradable := c.resolveSlot(ctx, transportID, class, item.ItemIdx, inventory, trade)
		item.PowerScore = detail.PowerScore
		item.Options = detail.Options
		item.AddOptions = detail.AddOptions
		item.IsTradable = tradable
		slots[slotIdx] = item
	}

	return slots, nil
}

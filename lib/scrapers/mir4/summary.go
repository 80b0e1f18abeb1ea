package mir4

import (
	"context"
	"strconv"
)

// EquipItem is one worn equipment slot from the character summary. The
// summary endpoint reports these fields as strings.
type EquipItem struct {
	ItemIdx    string          `json:"itemIdx"`
	Enhance    string          `json:"enhance"`
	RefineStep string          `json:"refineStep"`
	Grade      string          `json:"grade"`
	Tier       string          `json:"tier"`
	ItemType   string          `json:"itemType"`
	ItemName   string          `json:"itemName"`
	ItemPath   string          `json:"itemPath"`
	PowerScore Count           `json:"powerScore"`
	Options    []ItemOption    `json:"options"`
	AddOptions []ItemAddOption `json:"addOptions"`
	IsTradable bool            `json:"isTradable"`
}

type EquipSlots map[string]EquipItem

func (s *EquipSlots) UnmarshalJSON(b []byte) error {
	return unmarshalSlotMap(b, (*map[string]EquipItem)(s))
}

// Summary is the character header: trade type, home world and the worn
// equipment slots.
type Summary struct {
	TradeType  int64      `json:"tradeType"`
	WorldName  string     `json:"worldName"`
	EquipItems EquipSlots `json:"equipItems"`
}

type summaryResponse struct {
	Data struct {
		Character struct {
			WorldName string `json:"worldName"`
		} `json:"character"`
		TradeType Count      `json:"tradeType"`
		EquipItem EquipSlots `json:"equipItem"`
	} `json:"data"`
}

// Summary fetches the character header, keyed by catalog sequence
// number rather than transport id, and resolves each worn equipment
// slot's item detail through the inventory snapshot.
func (c *Client) Summary(
	ctx context.Context,
	seq, transportID, class int64,
	inventory []InventoryItem,
	trade TradeTable,
) (Summary, error) {
	res, err := get[summaryResponse](ctx, c, "/character/summary", map[string]string{
		"seq": strconv.FormatInt(seq, 10),
	})
	if err != nil {
		return Summary{}, err
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

	return Summary{
		TradeType:  int64(res.Data.TradeType),
		WorldName:  res.Data.Character.WorldName,
		EquipItems: slots,
	}, nil
}

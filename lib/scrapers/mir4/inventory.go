package mir4

import (
	"context"
	"strconv"
)

// InventoryItem is one stack in a character's inventory. ItemUID is
// unique within a snapshot, ItemID is not (duplicate stacks).
type InventoryItem struct {
	ItemUID     string `json:"itemUID"`
	ItemID      string `json:"itemID"`
	Enhance     Count  `json:"enhance"`
	Stack       Count  `json:"stack"`
	TranceStep  Count  `json:"tranceStep"`
	RefineStep  Count  `json:"RefineStep"`
	Grade       string `json:"grade"`
	MainType    Count  `json:"mainType"`
	SubType     Count  `json:"subType"`
	TabCategory Count  `json:"tabCategory"`
	Tier        string `json:"tier"`
	ItemName    string `json:"itemName"`
	ItemPath    string `json:"itemPath"`
	IsTradable  bool   `json:"isTradable"`
}

type inventoryResponse struct {
	Data []InventoryItem `json:"data"`
}

// Inventory fetches the full inventory snapshot for a character.
func (c *Client) Inventory(ctx context.Context, transportID int64) ([]InventoryItem, error) {
	res, err := get[inventoryResponse](ctx, c, "/character/inven", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
	})
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// the main type the game client uses for craftable material stacks
const craftMaterialMainType = 5

// CraftMaterials tallies stack sizes of crafting materials by name.
func CraftMaterials(inventory []InventoryItem) map[string]int64 {
	materials := map[string]int64{}
	for _, item := range inventory {
		if item.MainType != craftMaterialMainType {
			continue
		}
		materials[item.ItemName] += int64(item.Stack)
	}
	return materials
}

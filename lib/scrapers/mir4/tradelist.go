package mir4

import (
	"encoding/json"
	"fmt"
	"os"
)

// TradeTable maps item ids to a 0/1 tradability flag. It is produced
// from a game client ITEM.json dump and loaded once per run.
type TradeTable map[string]Count

func (t TradeTable) IsTradable(itemIdx string) bool {
	return int64(t[itemIdx]) == 1
}

// Annotate marks every inventory item's tradability in place.
func (t TradeTable) Annotate(inventory []InventoryItem) {
	for i := range inventory {
		inventory[i].IsTradable = t.IsTradable(inventory[i].ItemID)
	}
}

func LoadTradeTable(path string) (TradeTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var table TradeTable
	err = json.Unmarshal(raw, &table)
	if err != nil {
		return nil, fmt.Errorf("parse trade table %s: %w", path, err)
	}
	return table, nil
}

// BuildTradeTable extracts the item id to TradeType mapping out of a
// game client ITEM.json dump, which is a one element array wrapping a
// "Rows" object.
func BuildTradeTable(itemJson []byte) (TradeTable, error) {
	var dump []struct {
		Rows map[string]struct {
			TradeType Count `json:"TradeType"`
		} `json:"Rows"`
	}
	err := json.Unmarshal(itemJson, &dump)
	if err != nil {
		return nil, err
	}
	if len(dump) == 0 {
		return nil, fmt.Errorf("item dump has no row table")
	}

	table := TradeTable{}
	for itemIdx, row := range dump[0].Rows {
		table[itemIdx] = row.TradeType
	}
	return table, nil
}

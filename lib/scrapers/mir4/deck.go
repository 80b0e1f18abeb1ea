package mir4

import (
	"context"
	"log/slog"
)

// resolveSlot cross-references one deck slot's item id through the
// inventory snapshot and fetches the item's computed detail. A slot
// whose item id has no inventory match (sold, or the inventory
// endpoint lagging the deck endpoint) resolves to zero-valued detail
// instead of failing the deck, as does a failed detail fetch.
func (c *Client) resolveSlot(
	ctx context.Context,
	transportID, class int64,
	itemIdx string,
	inventory []InventoryItem,
	trade TradeTable,
) (ItemDetail, bool) {
	tradable := trade.IsTradable(itemIdx)

	var match *InventoryItem
	for i := range inventory {
		if inventory[i].ItemID == itemIdx {
			match = &inventory[i]
			break
		}
	}
	if match == nil {
		slog.WarnContext(
			ctx, "deck slot has no inventory match",
			"transport_id", transportID,
			"item_idx", itemIdx,
		)
		return ItemDetail{}, tradable
	}

	detail, err := c.ItemDetail(ctx, transportID, class, match.ItemUID)
	if err != nil {
		slog.WarnContext(
			ctx, "failed to fetch item detail",
			"transport_id", transportID,
			"item_uid", match.ItemUID,
			"err", err,
		)
		return ItemDetail{}, tradable
	}
	return detail, tradable
}

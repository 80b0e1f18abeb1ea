package mir4

import (
	"context"
	"strconv"
)

// Assets is the currency sheet of a character. Several fields arrive
// quoted for some characters and bare for others, Number absorbs both.
type Assets struct {
	Copper       Number `json:"copper"`
	Energy       Number `json:"energy"`
	Darksteel    Number `json:"darksteel"`
	Speedups     Number `json:"speedups"`
	DragonJade   Number `json:"dragonjade"`
	AncientCoins Number `json:"acientcoins"`
	DragonSteel  Number `json:"dragonsteel"`
}

type assetsResponse struct {
	Data Assets `json:"data"`
}

func (c *Client) Assets(ctx context.Context, transportID int64) (Assets, error) {
	res, err := get[assetsResponse](ctx, c, "/character/assets", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
	})
	if err != nil {
		return Assets{}, err
	}
	return res.Data, nil
}

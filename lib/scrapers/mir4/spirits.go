package mir4

import (
	"context"
	"encoding/json"
	"strconv"
)

type Spirit struct {
	Transcend Count  `json:"transcend"`
	Grade     Count  `json:"grade"`
	PetName   string `json:"petName"`
	IconPath  string `json:"iconPath"`
}

// Spirits holds the companion spirit decks plus the owned spirits.
// Equip keeps the raw deck layout as sent, its shape varies with the
// number of configured decks.
type Spirits struct {
	Equip json.RawMessage `json:"equip"`
	Inven []Spirit        `json:"inven"`
}

type spiritsResponse struct {
	Data Spirits `json:"data"`
}

func (c *Client) Spirits(ctx context.Context, transportID int64) (Spirits, error) {
	res, err := get[spiritsResponse](ctx, c, "/character/spirit", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
	})
	if err != nil {
		return Spirits{}, err
	}
	return res.Data, nil
}

package mir4

import (
	"context"
	"strconv"
)

type Potentials struct {
	Total        Count `json:"total"`
	TotalMax     Count `json:"totalMax"`
	Hunting      Count `json:"hunting"`
	HuntingMax   Count `json:"huntingMax"`
	Pvp          Count `json:"pvp"`
	PvpMax       Count `json:"pvpMax"`
	Secondary    Count `json:"secondary"`
	SecondaryMax Count `json:"secondaryMax"`
}

type potentialsResponse struct {
	Data Potentials `json:"data"`
}

func (c *Client) Potentials(ctx context.Context, transportID int64) (Potentials, error) {
	res, err := get[potentialsResponse](ctx, c, "/character/potential", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
	})
	if err != nil {
		return Potentials{}, err
	}
	return res.Data, nil
}

package mir4

import (
	"context"
	"strconv"
)

type holyStuffResponse struct {
	Data map[string]struct {
		HolyStuffName string `json:"HolyStuffName"`
		Grade         grade  `json:"Grade"`
	} `json:"data"`
}

// HolyStuff fetches holy stuff grades keyed by name. A null grade
// means the slot was never upgraded and is reported as "0".
func (c *Client) HolyStuff(ctx context.Context, transportID int64) (map[string]string, error) {
	res, err := get[holyStuffResponse](ctx, c, "/character/holystuff", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
	})
	if err != nil {
		return nil, err
	}

	holyStuff := make(map[string]string, len(res.Data))
	for _, h := range res.Data {
		holyStuff[h.HolyStuffName] = string(h.Grade)
	}
	return holyStuff, nil
}

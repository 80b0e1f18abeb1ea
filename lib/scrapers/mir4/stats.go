package mir4

import (
	"context"
	"strconv"
)

type statsResponse struct {
	Data struct {
		Lists []struct {
			StatName  string `json:"statName"`
			StatValue string `json:"statValue"`
			IconPath  string `json:"iconPath"`
		} `json:"lists"`
	} `json:"data"`
}

// Stats fetches the character stat sheet as a name to value map.
func (c *Client) Stats(ctx context.Context, transportID int64) (map[string]string, error) {
	res, err := get[statsResponse](ctx, c, "/character/stats", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
	})
	if err != nil {
		return nil, err
	}

	stats := make(map[string]string, len(res.Data.Lists))
	for _, s := range res.Data.Lists {
		stats[s.StatName] = s.StatValue
	}
	return stats, nil
}

package mir4

import (
	"context"
	"strconv"
)

type buildingsResponse struct {
	Data map[string]struct {
		BuildingName  string `json:"buildingName"`
		BuildingLevel string `json:"buildingLevel"`
	} `json:"data"`
}

// Buildings fetches conquest building levels keyed by building name.
func (c *Client) Buildings(ctx context.Context, transportID int64) (map[string]string, error) {
	res, err := get[buildingsResponse](ctx, c, "/character/building", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
	})
	if err != nil {
		return nil, err
	}

	buildings := make(map[string]string, len(res.Data))
	for _, b := range res.Data {
		buildings[b.BuildingName] = b.BuildingLevel
	}
	return buildings, nil
}

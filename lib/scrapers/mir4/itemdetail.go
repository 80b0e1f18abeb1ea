package mir4

import (
	"context"
	"math"
	"strconv"
)

// ItemOption is one rolled option on an item instance.
type ItemOption struct {
	Name   string  `json:"optionName"`
	Value  float64 `json:"optionValue"`
	Format string  `json:"optionFormat"`
}

type ItemAddOption struct {
	Name   string  `json:"optionName"`
	Value  float64 `json:"optionValue"`
	Format string  `json:"optionAddFormat"`
}

// ItemDetail carries the computed attributes of one specific item
// instance, looked up by its inventory uid.
type ItemDetail struct {
	PowerScore Count           `json:"powerScore"`
	Options    []ItemOption    `json:"options"`
	AddOptions []ItemAddOption `json:"addOptions"`
}

type itemDetailResponse struct {
	Data ItemDetail `json:"data"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ItemDetail resolves the power score and rolled options of a single
// item. Option values are rounded to 2 decimal places. Failure is
// permanent for the item, it either exists or it does not.
func (c *Client) ItemDetail(ctx context.Context, transportID, class int64, itemUID string) (ItemDetail, error) {
	res, err := get[itemDetailResponse](ctx, c, "/character/itemdetail", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
		"class":       strconv.FormatInt(class, 10),
		"itemUID":     itemUID,
	})
	if err != nil {
		return ItemDetail{}, err
	}

	detail := res.Data
	for i := range detail.Options {
		detail.Options[i].Value = round2(detail.Options[i].Value)
	}
	for i := range detail.AddOptions {
		detail.AddOptions[i].Value = round2(detail.AddOptions[i].Value)
	}
	return detail, nil
}

package mir4

import (
	"context"
	"strconv"
)

// ListingEntry is one row of the paginated sale catalog.
type ListingEntry struct {
	Seq           int64  `json:"seq"`
	TransportID   int64  `json:"transportID"`
	NftID         string `json:"nftID"`
	SealedDT      int64  `json:"sealedDT"`
	CharacterName string `json:"characterName"`
	Class         int64  `json:"class"`
	Level         Count  `json:"lv"`
	PowerScore    Count  `json:"powerScore"`
	Price         Count  `json:"price"`
	MirageScore   Count  `json:"MirageScore"`
	MiraX         Count  `json:"MiraX"`
	Reinforce     Count  `json:"Reinforce"`
}

type listResponse struct {
	Data struct {
		FirstID    int64          `json:"firstID"`
		TotalCount Count          `json:"totalCount"`
		More       Count          `json:"more"`
		Lists      []ListingEntry `json:"lists"`
	} `json:"data"`
}

// ListPage fetches one catalog page, newest listings first. The
// filters are fixed: every character currently for sale, no level,
// power or price bounds.
func (c *Client) ListPage(ctx context.Context, page int) ([]ListingEntry, error) {
	res, err := get[listResponse](ctx, c, "/lists", map[string]string{
		"listType": "sale",
		"class":    "0",
		"levMin":   "0",
		"levMax":   "0",
		"powerMin": "0",
		"powerMax": "0",
		"priceMin": "0",
		"priceMax": "0",
		"sort":     "latest",
		"page":     strconv.Itoa(page),
	})
	if err != nil {
		return nil, err
	}
	return res.Data.Lists, nil
}

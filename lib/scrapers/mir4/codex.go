package mir4

import (
	"context"
	"strconv"
)

// CodexCategory is one codex tab. The API quotes all three counts.
type CodexCategory struct {
	CodexName  string `json:"codexName"`
	TotalCount Count  `json:"totalCount"`
	Completed  Count  `json:"completed"`
	InProgress Count  `json:"inprogress"`
}

// CodexSummary carries the per-category counts plus grand totals
// derived at fetch time.
type CodexSummary struct {
	Categories map[string]CodexCategory `json:"categories"`
	Completed  int64                    `json:"completed"`
	InProgress int64                    `json:"inProgress"`
}

type codexResponse struct {
	Data map[string]CodexCategory `json:"data"`
}

func (c *Client) Codex(ctx context.Context, transportID int64) (CodexSummary, error) {
	res, err := get[codexResponse](ctx, c, "/character/codex", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
	})
	if err != nil {
		return CodexSummary{}, err
	}

	summary := CodexSummary{Categories: res.Data}
	for _, category := range res.Data {
		summary.Completed += int64(category.Completed)
		summary.InProgress += int64(category.InProgress)
	}
	return summary, nil
}

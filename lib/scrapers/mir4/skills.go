package mir4

import (
	"context"
	"strconv"
)

type skillsResponse struct {
	Data []struct {
		SkillLevel string `json:"skillLevel"`
		SkillName  string `json:"skillName"`
	} `json:"data"`
}

// Skills fetches the skill levels of a character, keyed by skill name.
// The skill list is class-specific.
func (c *Client) Skills(ctx context.Context, transportID, class int64) (map[string]string, error) {
	res, err := get[skillsResponse](ctx, c, "/character/skills", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
		"class":       strconv.FormatInt(class, 10),
	})
	if err != nil {
		return nil, err
	}

	skills := make(map[string]string, len(res.Data))
	for _, s := range res.Data {
		skills[s.SkillName] = s.SkillLevel
	}
	return skills, nil
}

package mir4

import (
	"context"
	"strconv"
)

type trainingForce struct {
	ForceIdx   string `json:"forceIdx"`
	ForceLevel string `json:"forceLevel"`
	ForceName  string `json:"forceName"`
}

// the six known manuals arrive under numeric keys, the remaining
// fields sit beside them in the same object (the API misspells
// "constitution")
type trainingResponse struct {
	Data struct {
		MuscleStrengthManual trainingForce `json:"0"`
		NineYinManual        trainingForce `json:"1"`
		NineYangManual       trainingForce `json:"2"`
		VioletMistArt        trainingForce `json:"3"`
		NorthernProfoundArt  trainingForce `json:"4"`
		ToadStance           trainingForce `json:"5"`
		ConstitutionLevel    Count         `json:"consitutionLevel"`
		ConstitutionName     string        `json:"consitutionName"`
		CollectName          string        `json:"collectName"`
		CollectLevel         Count         `json:"collectLevel"`
	} `json:"data"`
}

// Training is the training summary of a character: manual levels keyed
// by manual name plus constitution and collection progress.
type Training struct {
	Forces       map[string]string `json:"forces"`
	Constitution int64             `json:"constitution"`
	CollectName  string            `json:"collectName"`
	CollectLevel int64             `json:"collectLevel"`
}

func (c *Client) Training(ctx context.Context, transportID int64) (Training, error) {
	res, err := get[trainingResponse](ctx, c, "/character/training", map[string]string{
		"transportID": strconv.FormatInt(transportID, 10),
	})
	if err != nil {
		return Training{}, err
	}

	forces := map[string]string{}
	for _, f := range []trainingForce{
		res.Data.MuscleStrengthManual,
		res.Data.NineYinManual,
		res.Data.NineYangManual,
		res.Data.VioletMistArt,
		res.Data.NorthernProfoundArt,
		res.Data.ToadStance,
	} {
		if f.ForceName == "" {
			continue
		}
		forces[f.ForceName] = f.ForceLevel
	}

	return Training{
		Forces:       forces,
		Constitution: int64(res.Data.ConstitutionLevel),
		CollectName:  res.Data.CollectName,
		CollectLevel: int64(res.Data.CollectLevel),
	}, nil
}

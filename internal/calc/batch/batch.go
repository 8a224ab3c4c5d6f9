// Package batch evaluates several footings against one shared soil
// profile in a single request. The profile is built once and read-only;
// every footing gets independent result objects.
package batch

import (
	"fmt"

	"Stratum/internal/calc/bearing"
	"Stratum/internal/calc/settlement"
	"Stratum/internal/soil"
)

type Input struct {
	Layers      []soil.Layer      `json:"layers"`
	WaterTableM float64           `json:"water_table_m"`
	Foundations []soil.Foundation `json:"foundations"`
	Config      soil.Config       `json:"config"`
}

type Item struct {
	Foundation soil.Foundation   `json:"foundation"`
	Bearing    bearing.Result    `json:"bearing"`
	Settlement settlement.Result `json:"settlement"`
}

type Result struct {
	Count int    `json:"count"`
	Items []Item `json:"items"`
}

func Calculate(in Input) (Result, error) {
	if len(in.Foundations) == 0 {
		return Result{}, fmt.Errorf("%w: no foundations provided", soil.ErrInvalidInput)
	}
	profile, err := soil.NewProfile(in.Layers, in.WaterTableM)
	if err != nil {
		return Result{}, err
	}

	out := Result{Items: make([]Item, 0, len(in.Foundations))}
	for i, f := range in.Foundations {
		b, err := bearing.Compute(profile, f, in.Config)
		if err != nil {
			return Result{}, fmt.Errorf("foundation %d: %w", i, err)
		}
		s, err := settlement.Compute(profile, f, in.Config)
		if err != nil {
			return Result{}, fmt.Errorf("foundation %d: %w", i, err)
		}
		out.Items = append(out.Items, Item{Foundation: f, Bearing: b, Settlement: s})
	}
	out.Count = len(out.Items)
	return out, nil
}

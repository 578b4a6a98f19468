// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package methods

import (
	"cmp"
	"slices"

	"github.com/danielhkuo/kingmaker/models"
)

// Star is Score Then Automatic Runoff. The two highest score totals advance,
// ties broken by candidate order, and each ballot then gives one runoff point
// to whichever finalist it scored higher. A missing score counts as zero.
type Star struct{}

func (Star) String() string { return "STAR" }

func (Star) Outcome(candidates []models.Candidate, profile models.Profile[models.Cardinal]) (models.SingleWinner, error) {
	idx, err := prepare(candidates, profile)
	if err != nil {
		return models.SingleWinner{}, err
	}
	if len(candidates) < 2 || len(profile) == 0 {
		return models.NoWinner(), nil
	}

	// Score round
	totals := make([]uint64, len(candidates))
	for _, ballot := range profile {
		for id, score := range ballot {
			totals[idx[id]] += uint64(score)
		}
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(totals[b], totals[a]) })
	if totals[order[0]] == 0 {
		return models.NoWinner(), nil
	}
	first, second := candidates[order[0]], candidates[order[1]]

	// Runoff
	var forFirst, forSecond int
	for _, ballot := range profile {
		a, b := ballot[first.ID()], ballot[second.ID()]
		switch {
		case a > b:
			forFirst++
		case b > a:
			forSecond++
		}
	}

	switch {
	case forFirst > forSecond:
		return models.Win(first), nil
	case forSecond > forFirst:
		return models.Win(second), nil
	}
	return models.Tie(first, second), nil
}

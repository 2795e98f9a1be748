// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ranking

import (
	"sort"

	"github.com/RelayDigital/vrem-sub006/internal/types"
)

// Factors holds the per-dimension scores behind a composite score, all in
// [0,100] except DistanceKm which carries the raw distance for display.
type Factors struct {
	Availability          float64 `json:"availability"`
	Distance              float64 `json:"distance"`
	DistanceKm            float64 `json:"distance_km"`
	Reliability           float64 `json:"reliability"`
	SkillMatch            float64 `json:"skill_match"`
	PreferredRelationship float64 `json:"preferred_relationship"`
}

// Ranking is one scored candidate. Rankings are ephemeral: recomputed per
// request from the current provider and job state, never persisted.
type Ranking struct {
	Provider    *types.TechnicianProfile `json:"provider"`
	Score       float64                  `json:"score"`
	Factors     Factors                  `json:"factors"`
	Recommended bool                     `json:"recommended"`
}

// SortKey names a factor for the caller-supplied priority order of
// FindTechnicians.
type SortKey string

const (
	SortByAvailability SortKey = "availability"
	SortByDistance     SortKey = "distance"
	SortByReliability  SortKey = "reliability"
	SortBySkillMatch   SortKey = "skillMatch"
	SortByPreferred    SortKey = "preferred"
	SortByScore        SortKey = "score"
)

func score(job types.JobRequest, p *types.TechnicianProfile, preferredVendorIDs []string) Ranking {
	km := HaversineKm(p.HomeLocation, job.Location)

	f := Factors{
		Availability:          ScoreAvailability(p.Availability, job.ScheduledDate),
		Distance:              ScoreDistance(km),
		DistanceKm:            km,
		Reliability:           ScoreReliability(p.Reliability),
		SkillMatch:            ScoreSkillMatch(p.Skills, job.MediaTypes),
		PreferredRelationship: ScorePreferred(p, job.OrganizationID, preferredVendorIDs),
	}

	composite := f.Availability*WeightAvailability +
		f.PreferredRelationship*WeightPreferred +
		f.Reliability*WeightReliability +
		f.Distance*WeightDistance +
		f.SkillMatch*WeightSkillMatch

	return Ranking{
		Provider: p,
		Score:    composite,
		Factors:  f,
		// Availability is a hard gate: a high score never outweighs an
		// unavailable provider.
		Recommended: composite >= RecommendThreshold && f.Availability == 100,
	}
}

func scoreActive(job types.JobRequest, providers []*types.TechnicianProfile, preferredVendorIDs []string) []Ranking {
	rankings := make([]Ranking, 0, len(providers))
	for _, p := range providers {
		if p == nil || p.Status != types.TechnicianActive {
			continue
		}
		rankings = append(rankings, score(job, p, preferredVendorIDs))
	}
	return rankings
}

// RankTechnicians scores all active providers against the job and returns
// them sorted by composite score, best first. The sort is stable so equal
// scores keep the input order across runs.
func RankTechnicians(job types.JobRequest, providers []*types.TechnicianProfile, preferredVendorIDs []string) []Ranking {
	rankings := scoreActive(job, providers, preferredVendorIDs)

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Score > rankings[j].Score
	})

	return rankings
}

// FindTechnicians is the interactive variant: identical factor scoring, but
// ordered by the caller's priority keys instead of the composite weighting.
// The distance key orders by raw kilometers ascending so same-bucket
// candidates still separate; every other key orders by its score
// descending. Remaining ties fall through to the composite score.
func FindTechnicians(job types.JobRequest, providers []*types.TechnicianProfile, preferredVendorIDs []string, priority []SortKey) []Ranking {
	rankings := scoreActive(job, providers, preferredVendorIDs)

	sort.SliceStable(rankings, func(i, j int) bool {
		a, b := rankings[i], rankings[j]
		for _, key := range priority {
			if c := compareBy(key, a, b); c != 0 {
				return c > 0
			}
		}
		return a.Score > b.Score
	})

	return rankings
}

// compareBy returns >0 when a ranks before b on the given key.
func compareBy(key SortKey, a, b Ranking) float64 {
	switch key {
	case SortByAvailability:
		return a.Factors.Availability - b.Factors.Availability
	case SortByDistance:
		return b.Factors.DistanceKm - a.Factors.DistanceKm
	case SortByReliability:
		return a.Factors.Reliability - b.Factors.Reliability
	case SortBySkillMatch:
		return a.Factors.SkillMatch - b.Factors.SkillMatch
	case SortByPreferred:
		return a.Factors.PreferredRelationship - b.Factors.PreferredRelationship
	case SortByScore:
		return a.Score - b.Score
	default:
		return 0
	}
}

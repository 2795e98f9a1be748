// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package ranking scores technician candidates for job dispatch. All
// functions are pure and deterministic over the snapshot they are given;
// persistence and candidate selection belong to the caller.
package ranking

import (
	"math"

	"github.com/RelayDigital/vrem-sub006/internal/types"
)

// Composite weights. These are a business contract, not tuning parameters:
// downstream recommendation thresholds depend on the exact values.
const (
	WeightAvailability = 0.30
	WeightPreferred    = 0.25
	WeightReliability  = 0.20
	WeightDistance     = 0.15
	WeightSkillMatch   = 0.10
)

// RecommendThreshold is the minimum composite score for the recommended
// flag. Availability 100 is additionally required as a hard gate.
const RecommendThreshold = 60.0

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in
// kilometers.
func HaversineKm(a, b types.GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ScoreDistance buckets a distance into a monotonic step score. Ties within
// a bucket are expected; the composite score breaks them, not distance.
func ScoreDistance(km float64) float64 {
	switch {
	case km <= 5:
		return 100
	case km <= 15:
		return 75
	case km <= 30:
		return 50
	case km <= 50:
		return 25
	default:
		return 0
	}
}

// ScoreAvailability is binary on an exact date match. No range or
// time-window logic: an entry either marks the day available or it doesn't.
func ScoreAvailability(entries []types.AvailabilityEntry, date string) float64 {
	for _, e := range entries {
		if e.Date == date {
			if e.Available {
				return 100
			}
			return 0
		}
	}
	return 0
}

// ScoreReliability maps historical performance to [0,100]. Providers with
// no job history score a neutral 50 so new providers are neither punished
// nor handed a perfect untested record.
func ScoreReliability(r types.Reliability) float64 {
	if r.TotalJobs == 0 {
		return 50
	}

	score := r.OnTimeRate*100 - (float64(r.NoShows)/float64(r.TotalJobs))*100
	return math.Min(100, math.Max(0, score))
}

// ScoreSkillMatch averages the skill ratings matching the requested media
// types and scales the 1-5 ratings to 0-100. Zero matching dimensions
// scores a neutral 50, consistent with the reliability cold-start rule.
func ScoreSkillMatch(skills types.SkillSet, mediaTypes []types.MediaType) float64 {
	total := 0
	matched := 0

	for _, mt := range mediaTypes {
		switch mt {
		case types.MediaTypePhoto:
			total += skills.Residential
		case types.MediaTypeVideo:
			total += skills.Video
		case types.MediaTypeAerial:
			total += skills.Aerial
		case types.MediaTypeTwilight:
			total += skills.Twilight
		default:
			continue
		}
		matched++
	}

	if matched == 0 {
		return 50
	}

	return float64(total) / float64(matched) * 20
}

// ScorePreferred is binary: 100 when the provider's company is on the
// caller's preferred-vendor list OR the job's organization is on the
// provider's preferred-client list. Either direction suffices.
func ScorePreferred(p *types.TechnicianProfile, organizationID string, preferredVendorIDs []string) float64 {
	for _, id := range preferredVendorIDs {
		if id == p.CompanyID {
			return 100
		}
	}
	for _, id := range p.PreferredClients {
		if id == organizationID {
			return 100
		}
	}
	return 0
}

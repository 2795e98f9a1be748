// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ranking

import (
	"math"
	"testing"

	"github.com/RelayDigital/vrem-sub006/internal/types"
)

var jobLocation = types.GeoPoint{Lat: 49.2827, Lng: -123.1207}

// ~3 km north of the job location.
var nearbyLocation = types.GeoPoint{Lat: 49.3097, Lng: -123.1207}

func newJob() types.JobRequest {
	return types.JobRequest{
		OrganizationID: "org-1",
		Location:       jobLocation,
		ScheduledDate:  "2026-09-15",
		MediaTypes:     []types.MediaType{types.MediaTypePhoto},
	}
}

func newProvider(id string) *types.TechnicianProfile {
	return &types.TechnicianProfile{
		ID:           id,
		CompanyID:    "co-" + id,
		Status:       types.TechnicianActive,
		HomeLocation: nearbyLocation,
		Availability: []types.AvailabilityEntry{{Date: "2026-09-15", Available: true}},
		Reliability:  types.Reliability{},
		Skills:       types.SkillSet{Residential: 5},
	}
}

// A brand-new, nearby, available, preferred provider with top photo skills
// composes to exactly 90 and gets recommended.
func TestRankTechnicians_NewPreferredProvider(t *testing.T) {
	provider := newProvider("t1")

	rankings := RankTechnicians(newJob(), []*types.TechnicianProfile{provider}, []string{"co-t1"})
	if len(rankings) != 1 {
		t.Fatalf("expected 1 ranking, got %d", len(rankings))
	}

	r := rankings[0]
	f := r.Factors

	if f.Availability != 100 {
		t.Errorf("availability = %f, expected 100", f.Availability)
	}
	if f.Distance != 100 {
		t.Errorf("distance = %f (%.2f km), expected 100", f.Distance, f.DistanceKm)
	}
	if f.Reliability != 50 {
		t.Errorf("reliability = %f, expected 50", f.Reliability)
	}
	if f.SkillMatch != 100 {
		t.Errorf("skill match = %f, expected 100", f.SkillMatch)
	}
	if f.PreferredRelationship != 100 {
		t.Errorf("preferred = %f, expected 100", f.PreferredRelationship)
	}

	if math.Abs(r.Score-90) > 1e-9 {
		t.Errorf("composite = %f, expected 90", r.Score)
	}
	if !r.Recommended {
		t.Error("expected provider to be recommended")
	}
}

func TestRankTechnicians_InactiveExcluded(t *testing.T) {
	provider := newProvider("t1")
	provider.Status = types.TechnicianInactive

	rankings := RankTechnicians(newJob(), []*types.TechnicianProfile{provider}, []string{"co-t1"})
	if len(rankings) != 0 {
		t.Fatalf("expected inactive provider to be excluded, got %d rankings", len(rankings))
	}
}

func TestRankTechnicians_SortedDescending(t *testing.T) {
	far := newProvider("far")
	far.HomeLocation = types.GeoPoint{Lat: 50.5, Lng: -123.1207}

	unavailable := newProvider("busy")
	unavailable.Availability = nil

	best := newProvider("best")

	rankings := RankTechnicians(newJob(), []*types.TechnicianProfile{far, unavailable, best}, nil)
	if len(rankings) != 3 {
		t.Fatalf("expected 3 rankings, got %d", len(rankings))
	}

	for i := 1; i < len(rankings); i++ {
		if rankings[i].Score > rankings[i-1].Score {
			t.Errorf("rankings not sorted at %d: %f > %f", i, rankings[i].Score, rankings[i-1].Score)
		}
	}
	if rankings[0].Provider.ID != "best" {
		t.Errorf("expected best first, got %s", rankings[0].Provider.ID)
	}
}

func TestRankTechnicians_StableForEqualScores(t *testing.T) {
	a := newProvider("a")
	b := newProvider("b")

	rankings := RankTechnicians(newJob(), []*types.TechnicianProfile{a, b}, nil)
	if len(rankings) != 2 {
		t.Fatalf("expected 2 rankings, got %d", len(rankings))
	}
	if rankings[0].Score != rankings[1].Score {
		t.Fatalf("expected identical scores, got %f and %f", rankings[0].Score, rankings[1].Score)
	}
	if rankings[0].Provider.ID != "a" || rankings[1].Provider.ID != "b" {
		t.Error("equal scores did not keep input order")
	}
}

// Availability is a hard gate on the recommended flag: a preferred, nearby,
// highly skilled but unavailable provider can clear the score threshold and
// still not be recommended.
func TestRankTechnicians_RecommendationGate(t *testing.T) {
	provider := newProvider("t1")
	provider.Availability = nil
	provider.Reliability = types.Reliability{OnTimeRate: 1.0, TotalJobs: 50}

	rankings := RankTechnicians(newJob(), []*types.TechnicianProfile{provider}, []string{"co-t1"})
	if len(rankings) != 1 {
		t.Fatalf("expected 1 ranking, got %d", len(rankings))
	}

	r := rankings[0]
	if r.Score < RecommendThreshold {
		t.Fatalf("test setup broken: score %f below threshold", r.Score)
	}
	if r.Recommended {
		t.Error("unavailable provider must never be recommended")
	}
}

func TestFindTechnicians_PriorityOrder(t *testing.T) {
	// Available but far.
	availableFar := newProvider("available-far")
	availableFar.HomeLocation = types.GeoPoint{Lat: 49.6, Lng: -123.1207}

	// Closer but not available on the date.
	nearBusy := newProvider("near-busy")
	nearBusy.Availability = nil
	nearBusy.Reliability = types.Reliability{OnTimeRate: 1.0, TotalJobs: 40}

	providers := []*types.TechnicianProfile{nearBusy, availableFar}

	byAvailability := FindTechnicians(newJob(), providers, nil, []SortKey{SortByAvailability, SortByDistance})
	if byAvailability[0].Provider.ID != "available-far" {
		t.Errorf("availability-first: expected available-far first, got %s", byAvailability[0].Provider.ID)
	}

	byDistance := FindTechnicians(newJob(), providers, nil, []SortKey{SortByDistance})
	if byDistance[0].Provider.ID != "near-busy" {
		t.Errorf("distance-first: expected near-busy first, got %s", byDistance[0].Provider.ID)
	}
}

// FindTechnicians must reuse the exact factor scoring of RankTechnicians;
// only the ordering differs.
func TestFindTechnicians_SameFactors(t *testing.T) {
	provider := newProvider("t1")
	job := newJob()

	ranked := RankTechnicians(job, []*types.TechnicianProfile{provider}, []string{"co-t1"})
	found := FindTechnicians(job, []*types.TechnicianProfile{provider}, []string{"co-t1"}, []SortKey{SortByDistance})

	if ranked[0].Factors != found[0].Factors {
		t.Errorf("factor divergence: %+v vs %+v", ranked[0].Factors, found[0].Factors)
	}
	if ranked[0].Score != found[0].Score {
		t.Errorf("score divergence: %f vs %f", ranked[0].Score, found[0].Score)
	}
}

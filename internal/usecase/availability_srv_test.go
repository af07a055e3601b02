package usecase

import (
	"context"
	"strings"
	"testing"

	"campground-booking/internal/data/entity"
	"campground-booking/internal/data/repository"
	"campground-booking/internal/dto/request"
	"campground-booking/internal/dto/response"
)

func newAvailabilityFixture(campsites *fakeCampsiteRepo, reservations *fakeReservationRepo, blackouts *fakeBlackoutRepo) AvailabilityService {
	repo := &repository.Repository{
		Campsite:      campsites,
		Reservation:   reservations,
		Blackout:      blackouts,
		PaymentPolicy: &fakePolicyRepo{},
	}
	return NewAvailabilityService(repo, testConfig(), testLogger())
}

func TestSearchSitesBackToBackStays(t *testing.T) {
	site := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 45)
	campsites := &fakeCampsiteRepo{campsites: []*entity.Campsite{site}}
	reservations := &fakeReservationRepo{reservations: []*entity.Reservation{
		testReservation(sitePtr(site.ID), "2026-07-01", "2026-07-05", entity.ReservationStatusConfirmed),
	}}

	srv := newAvailabilityFixture(campsites, reservations, &fakeBlackoutRepo{})

	// Check-in on the previous guest's checkout day must not conflict
	results, err := srv.SearchSites(context.Background(), &request.SearchSitesRequest{
		CheckIn:  "2026-07-05",
		CheckOut: "2026-07-08",
		Guests:   2,
	})
	if err != nil {
		t.Fatalf("SearchSites: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected the site free for a back-to-back stay, got %d results", len(results))
	}

	// One night earlier the stays genuinely overlap
	results, err = srv.SearchSites(context.Background(), &request.SearchSitesRequest{
		CheckIn:  "2026-07-04",
		CheckOut: "2026-07-08",
		Guests:   2,
	})
	if err != nil {
		t.Fatalf("SearchSites: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no sites for an overlapping stay, got %d results", len(results))
	}
}

func TestSearchSitesFiltering(t *testing.T) {
	big := testCampsite("A1", entity.CampsiteTypeRV, 8, 1, 60)
	big.MaxRVLength = floatPtr(40)
	small := testCampsite("A2", entity.CampsiteTypeRV, 4, 2, 45)
	small.MaxRVLength = floatPtr(25)
	tent := testCampsite("T1", entity.CampsiteTypeTent, 6, 3, 30)
	inactive := testCampsite("X1", entity.CampsiteTypeRV, 10, 4, 80)
	inactive.IsActive = false

	campsites := &fakeCampsiteRepo{campsites: []*entity.Campsite{big, small, tent, inactive}}
	srv := newAvailabilityFixture(campsites, &fakeReservationRepo{}, &fakeBlackoutRepo{})

	tests := []struct {
		name      string
		req       request.SearchSitesRequest
		wantCodes []string
	}{
		{
			name:      "party size excludes undersized sites",
			req:       request.SearchSitesRequest{CheckIn: "2026-07-01", CheckOut: "2026-07-03", Guests: 6},
			wantCodes: []string{"A1", "T1"},
		},
		{
			name:      "camping unit narrows to rv sites",
			req:       request.SearchSitesRequest{CheckIn: "2026-07-01", CheckOut: "2026-07-03", Guests: 2, CampingUnit: "Pull Trailer"},
			wantCodes: []string{"A1", "A2"},
		},
		{
			name:      "rig length excludes short pads",
			req:       request.SearchSitesRequest{CheckIn: "2026-07-01", CheckOut: "2026-07-03", Guests: 2, CampingUnit: "5th Wheel", RVLength: floatPtr(32)},
			wantCodes: []string{"A1"},
		},
		{
			name:      "unrecognized unit leaves the search unfiltered",
			req:       request.SearchSitesRequest{CheckIn: "2026-07-01", CheckOut: "2026-07-03", Guests: 2, CampingUnit: "Yurt"},
			wantCodes: []string{"A1", "A2", "T1"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			results, err := srv.SearchSites(context.Background(), &tc.req)
			if err != nil {
				t.Fatalf("SearchSites: %v", err)
			}
			if len(results) != len(tc.wantCodes) {
				t.Fatalf("expected %d sites, got %d", len(tc.wantCodes), len(results))
			}
			for i, code := range tc.wantCodes {
				if results[i].Code != code {
					t.Errorf("result %d: expected code %s, got %s", i, code, results[i].Code)
				}
			}
		})
	}
}

func TestSearchSitesUnassignedReservationsNeverBlock(t *testing.T) {
	site := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 45)
	campsites := &fakeCampsiteRepo{campsites: []*entity.Campsite{site}}
	reservations := &fakeReservationRepo{reservations: []*entity.Reservation{
		testReservation(nil, "2026-07-01", "2026-07-10", entity.ReservationStatusConfirmed),
	}}

	srv := newAvailabilityFixture(campsites, reservations, &fakeBlackoutRepo{})

	results, err := srv.SearchSites(context.Background(), &request.SearchSitesRequest{
		CheckIn:  "2026-07-03",
		CheckOut: "2026-07-06",
		Guests:   2,
	})
	if err != nil {
		t.Fatalf("SearchSites: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("unassigned reservation should not block, got %d results", len(results))
	}
}

func TestSearchSitesNonOccupyingStatusesNeverBlock(t *testing.T) {
	site := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 45)
	campsites := &fakeCampsiteRepo{campsites: []*entity.Campsite{site}}
	reservations := &fakeReservationRepo{reservations: []*entity.Reservation{
		testReservation(sitePtr(site.ID), "2026-07-01", "2026-07-10", entity.ReservationStatusCancelled),
		testReservation(sitePtr(site.ID), "2026-07-01", "2026-07-10", entity.ReservationStatusNoShow),
	}}

	srv := newAvailabilityFixture(campsites, reservations, &fakeBlackoutRepo{})

	results, err := srv.SearchSites(context.Background(), &request.SearchSitesRequest{
		CheckIn:  "2026-07-03",
		CheckOut: "2026-07-06",
		Guests:   2,
	})
	if err != nil {
		t.Fatalf("SearchSites: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("cancelled and no-show reservations should not block, got %d results", len(results))
	}
}

func TestSearchSitesGlobalBlackoutShortCircuits(t *testing.T) {
	site := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 45)
	campsites := &fakeCampsiteRepo{campsites: []*entity.Campsite{site}}
	blackouts := &fakeBlackoutRepo{blackouts: []*entity.BlackoutDate{
		testBlackout(nil, "2026-07-04", "2026-07-04"),
	}}

	srv := newAvailabilityFixture(campsites, &fakeReservationRepo{}, blackouts)

	results, err := srv.SearchSites(context.Background(), &request.SearchSitesRequest{
		CheckIn:  "2026-07-01",
		CheckOut: "2026-07-06",
		Guests:   2,
	})
	if err != nil {
		t.Fatalf("SearchSites: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("global blackout inside the stay should empty the search, got %d results", len(results))
	}

	// A stay checking out on the blackout start day is unaffected: the
	// checkout day itself is not occupied.
	results, err = srv.SearchSites(context.Background(), &request.SearchSitesRequest{
		CheckIn:  "2026-07-01",
		CheckOut: "2026-07-04",
		Guests:   2,
	})
	if err != nil {
		t.Fatalf("SearchSites: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("stay ending on blackout start should be bookable, got %d results", len(results))
	}
}

func TestSearchSitesScopedBlackoutBlocksOneSite(t *testing.T) {
	a1 := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 45)
	a2 := testCampsite("A2", entity.CampsiteTypeRV, 6, 2, 45)
	campsites := &fakeCampsiteRepo{campsites: []*entity.Campsite{a1, a2}}
	blackouts := &fakeBlackoutRepo{blackouts: []*entity.BlackoutDate{
		testBlackout(sitePtr(a1.ID), "2026-07-02", "2026-07-03"),
	}}

	srv := newAvailabilityFixture(campsites, &fakeReservationRepo{}, blackouts)

	results, err := srv.SearchSites(context.Background(), &request.SearchSitesRequest{
		CheckIn:  "2026-07-01",
		CheckOut: "2026-07-05",
		Guests:   2,
	})
	if err != nil {
		t.Fatalf("SearchSites: %v", err)
	}
	if len(results) != 1 || results[0].Code != "A2" {
		t.Fatalf("expected only A2 free, got %v", results)
	}
}

func TestCheckSiteSubstitution(t *testing.T) {
	a1 := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 45)
	a2 := testCampsite("A2", entity.CampsiteTypeRV, 6, 2, 45)
	campsites := &fakeCampsiteRepo{campsites: []*entity.Campsite{a1, a2}}
	reservations := &fakeReservationRepo{reservations: []*entity.Reservation{
		testReservation(sitePtr(a1.ID), "2026-07-01", "2026-07-10", entity.ReservationStatusConfirmed),
	}}

	srv := newAvailabilityFixture(campsites, reservations, &fakeBlackoutRepo{})

	// Requested site taken, alternative free: substitution flagged
	check, err := srv.CheckSite(context.Background(), &request.CheckSiteRequest{
		CheckIn:    "2026-07-02",
		CheckOut:   "2026-07-05",
		Guests:     2,
		CampsiteID: strPtr(a1.ID.String()),
	})
	if err != nil {
		t.Fatalf("CheckSite: %v", err)
	}
	if !check.Available {
		t.Fatal("expected availability via substitute")
	}
	if !check.Substituted {
		t.Error("expected substituted flag set")
	}
	if check.RecommendedSiteID == nil || *check.RecommendedSiteID != a2.ID.String() {
		t.Errorf("expected recommendation %s, got %v", a2.ID, check.RecommendedSiteID)
	}

	// Requested site free: no substitution even though it is not first in
	// sort order
	check, err = srv.CheckSite(context.Background(), &request.CheckSiteRequest{
		CheckIn:    "2026-08-01",
		CheckOut:   "2026-08-03",
		Guests:     2,
		CampsiteID: strPtr(a2.ID.String()),
	})
	if err != nil {
		t.Fatalf("CheckSite: %v", err)
	}
	if check.Substituted {
		t.Error("requested site is free, substituted flag should be clear")
	}
	if check.RecommendedSiteID == nil || *check.RecommendedSiteID != a2.ID.String() {
		t.Errorf("expected requested site %s recommended, got %v", a2.ID, check.RecommendedSiteID)
	}
}

func TestCheckSiteNothingFree(t *testing.T) {
	a1 := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 45)
	campsites := &fakeCampsiteRepo{campsites: []*entity.Campsite{a1}}
	reservations := &fakeReservationRepo{reservations: []*entity.Reservation{
		testReservation(sitePtr(a1.ID), "2026-07-01", "2026-07-10", entity.ReservationStatusPending),
	}}

	srv := newAvailabilityFixture(campsites, reservations, &fakeBlackoutRepo{})

	check, err := srv.CheckSite(context.Background(), &request.CheckSiteRequest{
		CheckIn:  "2026-07-02",
		CheckOut: "2026-07-05",
		Guests:   2,
	})
	if err != nil {
		t.Fatalf("CheckSite: %v", err)
	}
	if check.Available {
		t.Error("expected no availability")
	}
	if check.RecommendedSiteID != nil {
		t.Errorf("expected no recommendation, got %v", *check.RecommendedSiteID)
	}
}

func TestMonthlyCalendarStatuses(t *testing.T) {
	// Six sites; July scenario mixing assigned stays, a scoped blackout and a
	// global blackout.
	sites := []*entity.Campsite{
		testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 45),
		testCampsite("A2", entity.CampsiteTypeRV, 6, 2, 45),
		testCampsite("A3", entity.CampsiteTypeRV, 6, 3, 45),
		testCampsite("T1", entity.CampsiteTypeTent, 4, 4, 30),
		testCampsite("T2", entity.CampsiteTypeTent, 4, 5, 30),
		testCampsite("C1", entity.CampsiteTypeCabin, 8, 6, 95),
	}
	campsites := &fakeCampsiteRepo{campsites: sites}

	reservations := &fakeReservationRepo{reservations: []*entity.Reservation{
		testReservation(sitePtr(sites[0].ID), "2026-07-10", "2026-07-15", entity.ReservationStatusConfirmed),
		testReservation(sitePtr(sites[1].ID), "2026-07-10", "2026-07-12", entity.ReservationStatusPending),
		testReservation(sitePtr(sites[2].ID), "2026-07-10", "2026-07-13", entity.ReservationStatusCheckedIn),
		testReservation(sitePtr(sites[3].ID), "2026-07-10", "2026-07-14", entity.ReservationStatusConfirmed),
		// Back-to-back on T2: checkout on the 10th, next party moves in the
		// same day
		testReservation(sitePtr(sites[4].ID), "2026-07-05", "2026-07-10", entity.ReservationStatusConfirmed),
		testReservation(sitePtr(sites[4].ID), "2026-07-10", "2026-07-12", entity.ReservationStatusConfirmed),
		// Unassigned: must not reduce capacity
		testReservation(nil, "2026-07-10", "2026-07-20", entity.ReservationStatusConfirmed),
	}}

	blackouts := &fakeBlackoutRepo{blackouts: []*entity.BlackoutDate{
		testBlackout(sitePtr(sites[5].ID), "2026-07-10", "2026-07-10"),
		testBlackout(nil, "2026-07-25", "2026-07-26"),
	}}

	srv := newAvailabilityFixture(campsites, reservations, blackouts)

	calendar, err := srv.MonthlyCalendar(context.Background(), "2026-07")
	if err != nil {
		t.Fatalf("MonthlyCalendar: %v", err)
	}
	if calendar.Month != "2026-07" {
		t.Errorf("expected month 2026-07, got %s", calendar.Month)
	}
	if len(calendar.Days) != 31 {
		t.Fatalf("expected 31 days, got %d", len(calendar.Days))
	}

	byDate := make(map[string]response.DayStatus, len(calendar.Days))
	for _, d := range calendar.Days {
		byDate[d.Date] = d.Status
	}

	tests := []struct {
		date string
		want response.DayStatus
	}{
		// Only the outgoing T2 party holds a site the night of the 9th
		{"2026-07-09", response.DayStatusAvailable},
		// Five stays plus the C1 blackout claim all six sites
		{"2026-07-10", response.DayStatusSoldOut},
		// C1 blackout over, only T2 frees up: one site left
		{"2026-07-11", response.DayStatusLimited},
		// A2 and T2 checked out: three free, at the threshold
		{"2026-07-12", response.DayStatusAvailable},
		// Global blackout wins regardless of occupancy
		{"2026-07-25", response.DayStatusBlackout},
		{"2026-07-26", response.DayStatusBlackout},
		// Quiet day
		{"2026-07-01", response.DayStatusAvailable},
	}

	for _, tc := range tests {
		if got := byDate[tc.date]; got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.date, tc.want, got)
		}
	}
}

func TestMonthlyCalendarInactiveSitesExcluded(t *testing.T) {
	active := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 45)
	retired := testCampsite("X1", entity.CampsiteTypeRV, 6, 2, 45)
	retired.IsActive = false

	campsites := &fakeCampsiteRepo{campsites: []*entity.Campsite{active, retired}}
	reservations := &fakeReservationRepo{reservations: []*entity.Reservation{
		testReservation(sitePtr(active.ID), "2026-07-10", "2026-07-12", entity.ReservationStatusConfirmed),
	}}

	srv := newAvailabilityFixture(campsites, reservations, &fakeBlackoutRepo{})

	calendar, err := srv.MonthlyCalendar(context.Background(), "2026-07")
	if err != nil {
		t.Fatalf("MonthlyCalendar: %v", err)
	}

	for _, d := range calendar.Days {
		if d.Date == "2026-07-10" && d.Status != response.DayStatusSoldOut {
			t.Errorf("retired site must not count as capacity: expected sold-out, got %s", d.Status)
		}
	}
}

func TestMonthlyCalendarInvalidMonth(t *testing.T) {
	srv := newAvailabilityFixture(&fakeCampsiteRepo{}, &fakeReservationRepo{}, &fakeBlackoutRepo{})

	if _, err := srv.MonthlyCalendar(context.Background(), "July 2026"); err == nil {
		t.Fatal("expected error for malformed month")
	}
}

func TestSearchSitesStoreFailurePropagates(t *testing.T) {
	reservations := &fakeReservationRepo{err: context.DeadlineExceeded}
	srv := newAvailabilityFixture(&fakeCampsiteRepo{}, reservations, &fakeBlackoutRepo{})

	_, err := srv.SearchSites(context.Background(), &request.SearchSitesRequest{
		CheckIn:  "2026-07-01",
		CheckOut: "2026-07-03",
		Guests:   2,
	})
	if err == nil {
		t.Fatal("expected store failure to propagate")
	}
	if !strings.Contains(err.Error(), "site search") {
		t.Errorf("unexpected error: %v", err)
	}
}

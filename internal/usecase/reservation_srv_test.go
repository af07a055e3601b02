package usecase

import (
	"context"
	"strings"
	"testing"

	"campground-booking/internal/data/entity"
	"campground-booking/internal/data/repository"
	"campground-booking/internal/dto/request"
)

type reservationFixture struct {
	repo *repository.Repository
	srv  ReservationService
}

func newReservationFixture(campsites []*entity.Campsite, reservations []*entity.Reservation, policies []*entity.PaymentPolicy) reservationFixture {
	repo := &repository.Repository{
		Campsite:      &fakeCampsiteRepo{campsites: campsites},
		Reservation:   &fakeReservationRepo{reservations: reservations},
		Blackout:      &fakeBlackoutRepo{},
		PaymentPolicy: &fakePolicyRepo{policies: policies},
	}

	availability := NewAvailabilityService(repo, testConfig(), testLogger())
	pricing := NewPricingService(repo, testLogger())

	return reservationFixture{
		repo: repo,
		srv:  NewReservationService(repo, availability, pricing, testLogger()),
	}
}

func validCreateRequest() *request.CreateReservationRequest {
	return &request.CreateReservationRequest{
		FirstName:     "Pat",
		LastName:      "Camper",
		Address1:      "1 Forest Rd",
		City:          "Pinedale",
		PostalCode:    "82941",
		Phone:         "555-0100",
		Email:         "pat@example.com",
		ContactMethod: "Email",
		CheckIn:       "2026-07-10",
		CheckOut:      "2026-07-13",
		Adults:        2,
		Children:      1,
		CampingUnit:   "Tent",
	}
}

func TestCreateReservation(t *testing.T) {
	site := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 50)

	deposit := depositPolicy("half down", entity.DepositTypePercent, 50)
	deposit.DueDaysBeforeCheckin = intPtr(14)

	f := newReservationFixture([]*entity.Campsite{site}, nil, []*entity.PaymentPolicy{deposit})

	resp, err := f.srv.CreateReservation(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	if resp.Status != entity.ReservationStatusPending {
		t.Errorf("expected pending status, got %s", resp.Status)
	}
	if resp.ConfirmationCode == "" {
		t.Error("expected a confirmation code")
	}
	if resp.CampsiteID == nil || *resp.CampsiteID != site.ID.String() {
		t.Errorf("expected assignment to %s, got %v", site.ID, resp.CampsiteID)
	}
	if resp.CampsiteCode != "A1" {
		t.Errorf("expected campsite code A1, got %s", resp.CampsiteCode)
	}
	if resp.Substituted {
		t.Error("no site was requested, substituted flag should be clear")
	}
	if resp.TotalAmount != 150 {
		t.Errorf("expected total 150.00, got %.2f", resp.TotalAmount)
	}
	if resp.Breakdown == nil {
		t.Fatal("expected a payment breakdown")
	}
	if resp.Breakdown.DueNow != 75 || resp.Breakdown.DueLater != 75 {
		t.Errorf("expected 75/75 split, got %.2f/%.2f", resp.Breakdown.DueNow, resp.Breakdown.DueLater)
	}
	if resp.Breakdown.RemainderDueAt == nil || *resp.Breakdown.RemainderDueAt != "2026-06-26" {
		t.Errorf("expected remainder due 2026-06-26, got %v", resp.Breakdown.RemainderDueAt)
	}

	// Persisted pending with the assignment
	stored, err := f.repo.Reservation.FindByConfirmationCode(context.Background(), resp.ConfirmationCode)
	if err != nil || stored == nil {
		t.Fatalf("stored reservation not found: %v", err)
	}
	if stored.Status != entity.ReservationStatusPending {
		t.Errorf("expected stored status pending, got %s", stored.Status)
	}
	if stored.CampsiteID == nil || *stored.CampsiteID != site.ID {
		t.Error("expected stored campsite assignment")
	}
}

func TestCreateReservationSubstitutesWhenRequestedSiteTaken(t *testing.T) {
	a1 := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 50)
	a2 := testCampsite("A2", entity.CampsiteTypeRV, 6, 2, 50)
	existing := testReservation(sitePtr(a1.ID), "2026-07-08", "2026-07-12", entity.ReservationStatusConfirmed)

	f := newReservationFixture([]*entity.Campsite{a1, a2}, []*entity.Reservation{existing}, nil)

	req := validCreateRequest()
	req.CampsiteID = strPtr(a1.ID.String())

	resp, err := f.srv.CreateReservation(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	if !resp.Substituted {
		t.Error("expected substituted flag when the requested site is taken")
	}
	if resp.CampsiteID == nil || *resp.CampsiteID != a2.ID.String() {
		t.Errorf("expected assignment to the free site %s, got %v", a2.ID, resp.CampsiteID)
	}
}

func TestCreateReservationNoAvailability(t *testing.T) {
	site := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 50)
	existing := testReservation(sitePtr(site.ID), "2026-07-01", "2026-07-20", entity.ReservationStatusConfirmed)

	f := newReservationFixture([]*entity.Campsite{site}, []*entity.Reservation{existing}, nil)

	_, err := f.srv.CreateReservation(context.Background(), validCreateRequest())
	if err == nil {
		t.Fatal("expected error when nothing is free")
	}
	if !strings.Contains(err.Error(), "no campsites available") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateReservationRejectsInvertedStay(t *testing.T) {
	site := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 50)
	f := newReservationFixture([]*entity.Campsite{site}, nil, nil)

	req := validCreateRequest()
	req.CheckIn = "2026-07-13"
	req.CheckOut = "2026-07-10"

	if _, err := f.srv.CreateReservation(context.Background(), req); err == nil {
		t.Fatal("expected error for check-out before check-in")
	}
}

func TestCreateReservationValidation(t *testing.T) {
	f := newReservationFixture(nil, nil, nil)

	req := validCreateRequest()
	req.Email = "not-an-email"

	_, err := f.srv.CreateReservation(context.Background(), req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateReservationDefaultsToPayInFull(t *testing.T) {
	site := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 50)
	f := newReservationFixture([]*entity.Campsite{site}, nil, nil)

	resp, err := f.srv.CreateReservation(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	if resp.Breakdown.DueNow != resp.TotalAmount {
		t.Errorf("default policy should collect the full %.2f up front, got %.2f", resp.TotalAmount, resp.Breakdown.DueNow)
	}
	if resp.Breakdown.DueLater != 0 {
		t.Errorf("expected nothing due later, got %.2f", resp.Breakdown.DueLater)
	}
	if resp.Breakdown.RemainderDueAt != nil {
		t.Errorf("expected no remainder date, got %v", *resp.Breakdown.RemainderDueAt)
	}
}

func TestCancelReservation(t *testing.T) {
	tests := []struct {
		status  entity.ReservationStatus
		wantErr bool
	}{
		{entity.ReservationStatusPending, false},
		{entity.ReservationStatusConfirmed, false},
		{entity.ReservationStatusCheckedIn, true},
		{entity.ReservationStatusCheckedOut, true},
		{entity.ReservationStatusCancelled, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			res := testReservation(nil, "2026-07-10", "2026-07-13", tc.status)
			f := newReservationFixture(nil, []*entity.Reservation{res}, nil)

			err := f.srv.CancelReservation(context.Background(), res.ID.String())
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected cancel to be refused from %s", tc.status)
				}
				return
			}
			if err != nil {
				t.Fatalf("CancelReservation: %v", err)
			}

			stored, _ := f.repo.Reservation.FindByID(context.Background(), res.ID)
			if stored.Status != entity.ReservationStatusCancelled {
				t.Errorf("expected cancelled, got %s", stored.Status)
			}
		})
	}
}

func TestAssignCampsite(t *testing.T) {
	a1 := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 50)
	a2 := testCampsite("A2", entity.CampsiteTypeRV, 6, 2, 50)

	res := testReservation(nil, "2026-07-10", "2026-07-13", entity.ReservationStatusConfirmed)
	conflicting := testReservation(sitePtr(a2.ID), "2026-07-11", "2026-07-14", entity.ReservationStatusConfirmed)

	f := newReservationFixture([]*entity.Campsite{a1, a2}, []*entity.Reservation{res, conflicting}, nil)

	// Free site: assignment succeeds
	err := f.srv.AssignCampsite(context.Background(), res.ID.String(), &request.AssignCampsiteRequest{
		CampsiteID: strPtr(a1.ID.String()),
	})
	if err != nil {
		t.Fatalf("AssignCampsite: %v", err)
	}

	stored, _ := f.repo.Reservation.FindByID(context.Background(), res.ID)
	if stored.CampsiteID == nil || *stored.CampsiteID != a1.ID {
		t.Error("expected assignment to A1")
	}

	// Re-assigning to the site it already holds is a no-op, not a conflict
	err = f.srv.AssignCampsite(context.Background(), res.ID.String(), &request.AssignCampsiteRequest{
		CampsiteID: strPtr(a1.ID.String()),
	})
	if err != nil {
		t.Fatalf("reassign to own site: %v", err)
	}

	// Occupied site: refused
	err = f.srv.AssignCampsite(context.Background(), res.ID.String(), &request.AssignCampsiteRequest{
		CampsiteID: strPtr(a2.ID.String()),
	})
	if err == nil {
		t.Fatal("expected conflict assigning an occupied site")
	}

	// Null clears the assignment
	err = f.srv.AssignCampsite(context.Background(), res.ID.String(), &request.AssignCampsiteRequest{})
	if err != nil {
		t.Fatalf("unassign: %v", err)
	}
	stored, _ = f.repo.Reservation.FindByID(context.Background(), res.ID)
	if stored.CampsiteID != nil {
		t.Error("expected assignment cleared")
	}
}

func TestGetReservationByCode(t *testing.T) {
	site := testCampsite("A1", entity.CampsiteTypeRV, 6, 1, 50)
	res := testReservation(sitePtr(site.ID), "2026-07-10", "2026-07-13", entity.ReservationStatusConfirmed)

	f := newReservationFixture([]*entity.Campsite{site}, []*entity.Reservation{res}, nil)

	resp, err := f.srv.GetReservationByCode(context.Background(), res.ConfirmationCode)
	if err != nil {
		t.Fatalf("GetReservationByCode: %v", err)
	}
	if resp.CampsiteCode != "A1" {
		t.Errorf("expected campsite code A1, got %s", resp.CampsiteCode)
	}

	if _, err := f.srv.GetReservationByCode(context.Background(), "RES-NOPE"); err == nil {
		t.Fatal("expected not found error")
	}
}

func TestListReservationsStatusFilter(t *testing.T) {
	f := newReservationFixture(nil, []*entity.Reservation{
		testReservation(nil, "2026-07-01", "2026-07-03", entity.ReservationStatusPending),
		testReservation(nil, "2026-07-02", "2026-07-04", entity.ReservationStatusConfirmed),
		testReservation(nil, "2026-07-03", "2026-07-05", entity.ReservationStatusConfirmed),
	}, nil)

	page := &request.PaginatedRequest{Page: 1, PerPage: 10}

	all, err := f.srv.ListReservations(context.Background(), "", page)
	if err != nil {
		t.Fatalf("ListReservations: %v", err)
	}
	if len(all.Data) != 3 || all.Pagination.Total != 3 {
		t.Errorf("expected 3 reservations, got %d (total %d)", len(all.Data), all.Pagination.Total)
	}

	confirmed, err := f.srv.ListReservations(context.Background(), "confirmed", page)
	if err != nil {
		t.Fatalf("ListReservations: %v", err)
	}
	if len(confirmed.Data) != 2 {
		t.Errorf("expected 2 confirmed reservations, got %d", len(confirmed.Data))
	}

	if _, err := f.srv.ListReservations(context.Background(), "bogus", page); err == nil {
		t.Fatal("expected error for unknown status filter")
	}
}

func TestUpdateStatus(t *testing.T) {
	res := testReservation(nil, "2026-07-10", "2026-07-13", entity.ReservationStatusPending)
	f := newReservationFixture(nil, []*entity.Reservation{res}, nil)

	err := f.srv.UpdateStatus(context.Background(), res.ID.String(), &request.UpdateReservationStatusRequest{
		Status: "confirmed",
	})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	stored, _ := f.repo.Reservation.FindByID(context.Background(), res.ID)
	if stored.Status != entity.ReservationStatusConfirmed {
		t.Errorf("expected confirmed, got %s", stored.Status)
	}

	err = f.srv.UpdateStatus(context.Background(), res.ID.String(), &request.UpdateReservationStatusRequest{
		Status: "teleported",
	})
	if err == nil {
		t.Fatal("expected validation error for unknown status")
	}
}

package usecase

import (
	"context"
	"sort"
	"time"

	"campground-booking/internal/data/entity"
	"campground-booking/internal/data/repository"
	"campground-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. Each carries an err field to force store
// failures in degradation tests.

type fakeCampsiteRepo struct {
	campsites []*entity.Campsite
	err       error
}

func (f *fakeCampsiteRepo) Create(ctx context.Context, campsite *entity.Campsite) error {
	if f.err != nil {
		return f.err
	}
	f.campsites = append(f.campsites, campsite)
	return nil
}

func (f *fakeCampsiteRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campsite, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.campsites {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCampsiteRepo) FindAll(ctx context.Context) ([]*entity.Campsite, error) {
	if f.err != nil {
		return nil, f.err
	}
	return sortedSites(f.campsites), nil
}

func (f *fakeCampsiteRepo) FindActive(ctx context.Context, filter repository.CampsiteFilter) ([]*entity.Campsite, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matches []*entity.Campsite
	for _, c := range f.campsites {
		if !c.IsActive {
			continue
		}
		if filter.MinGuests > 0 && c.MaxGuests < filter.MinGuests {
			continue
		}
		if filter.Type != nil && c.Type != *filter.Type {
			continue
		}
		matches = append(matches, c)
	}
	return sortedSites(matches), nil
}

func (f *fakeCampsiteRepo) CountActive(ctx context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	count := 0
	for _, c := range f.campsites {
		if c.IsActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeCampsiteRepo) Update(ctx context.Context, campsite *entity.Campsite) error {
	if f.err != nil {
		return f.err
	}
	for i, c := range f.campsites {
		if c.ID == campsite.ID {
			f.campsites[i] = campsite
			return nil
		}
	}
	return nil
}

func (f *fakeCampsiteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, c := range f.campsites {
		if c.ID == id {
			f.campsites = append(f.campsites[:i], f.campsites[i+1:]...)
			return nil
		}
	}
	return nil
}

func sortedSites(sites []*entity.Campsite) []*entity.Campsite {
	out := make([]*entity.Campsite, len(sites))
	copy(out, sites)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Code < out[j].Code
	})
	return out
}

type fakeReservationRepo struct {
	reservations []*entity.Reservation
	err          error
}

func (f *fakeReservationRepo) Create(ctx context.Context, reservation *entity.Reservation) error {
	if f.err != nil {
		return f.err
	}
	f.reservations = append(f.reservations, reservation)
	return nil
}

func (f *fakeReservationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) FindByConfirmationCode(ctx context.Context, code string) (*entity.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.reservations {
		if r.ConfirmationCode == code {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) FindAll(ctx context.Context, status *entity.ReservationStatus, limit, offset int) ([]*entity.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matches []*entity.Reservation
	for _, r := range f.reservations {
		if status != nil && r.Status != *status {
			continue
		}
		matches = append(matches, r)
	}
	if offset >= len(matches) {
		return nil, nil
	}
	matches = matches[offset:]
	if limit < len(matches) {
		matches = matches[:limit]
	}
	return matches, nil
}

func (f *fakeReservationRepo) Count(ctx context.Context, status *entity.ReservationStatus) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, r := range f.reservations {
		if status == nil || r.Status == *status {
			count++
		}
	}
	return count, nil
}

func (f *fakeReservationRepo) FindOverlapping(ctx context.Context, from, to time.Time, statuses []entity.ReservationStatus) ([]*entity.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matches []*entity.Reservation
	for _, r := range f.reservations {
		inStatus := false
		for _, s := range statuses {
			if r.Status == s {
				inStatus = true
				break
			}
		}
		if !inStatus {
			continue
		}
		if r.CheckOut.After(from) && r.CheckIn.Before(to) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, reservationID uuid.UUID, status entity.ReservationStatus) error {
	if f.err != nil {
		return f.err
	}
	for _, r := range f.reservations {
		if r.ID == reservationID {
			r.Status = status
			return nil
		}
	}
	return nil
}

func (f *fakeReservationRepo) AssignCampsite(ctx context.Context, reservationID uuid.UUID, campsiteID *uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for _, r := range f.reservations {
		if r.ID == reservationID {
			r.CampsiteID = campsiteID
			return nil
		}
	}
	return nil
}

func (f *fakeReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, r := range f.reservations {
		if r.ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeBlackoutRepo struct {
	blackouts []*entity.BlackoutDate
	err       error
}

func (f *fakeBlackoutRepo) Create(ctx context.Context, blackout *entity.BlackoutDate) error {
	if f.err != nil {
		return f.err
	}
	f.blackouts = append(f.blackouts, blackout)
	return nil
}

func (f *fakeBlackoutRepo) FindAll(ctx context.Context) ([]*entity.BlackoutDate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.blackouts, nil
}

func (f *fakeBlackoutRepo) FindOverlapping(ctx context.Context, from, to time.Time) ([]*entity.BlackoutDate, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matches []*entity.BlackoutDate
	for _, b := range f.blackouts {
		if !b.EndDate.Before(from) && b.StartDate.Before(to) {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

func (f *fakeBlackoutRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, b := range f.blackouts {
		if b.ID == id {
			f.blackouts = append(f.blackouts[:i], f.blackouts[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePolicyRepo struct {
	policies []*entity.PaymentPolicy
	err      error
}

func (f *fakePolicyRepo) Create(ctx context.Context, policy *entity.PaymentPolicy) error {
	if f.err != nil {
		return f.err
	}
	f.policies = append(f.policies, policy)
	return nil
}

func (f *fakePolicyRepo) FindAll(ctx context.Context) ([]*entity.PaymentPolicy, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.policies, nil
}

func (f *fakePolicyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, p := range f.policies {
		if p.ID == id {
			f.policies = append(f.policies[:i], f.policies[i+1:]...)
			return nil
		}
	}
	return nil
}

// ==================== TEST HELPERS ====================

func newTestRepo() *repository.Repository {
	return &repository.Repository{
		Campsite:      &fakeCampsiteRepo{},
		Reservation:   &fakeReservationRepo{},
		Blackout:      &fakeBlackoutRepo{},
		PaymentPolicy: &fakePolicyRepo{},
	}
}

func testConfig() *utils.Config {
	return &utils.Config{
		Booking: utils.BookingConfig{LimitedThreshold: 3},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func date(value string) time.Time {
	d, err := utils.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

func testCampsite(code string, siteType entity.CampsiteType, maxGuests, sortOrder int, baseRate float64) *entity.Campsite {
	return &entity.Campsite{
		Base:      entity.Base{ID: uuid.New()},
		Name:      "Site " + code,
		Code:      code,
		Type:      siteType,
		MaxGuests: maxGuests,
		BaseRate:  baseRate,
		SortOrder: sortOrder,
		IsActive:  true,
	}
}

func testReservation(campsiteID *uuid.UUID, checkIn, checkOut string, status entity.ReservationStatus) *entity.Reservation {
	return &entity.Reservation{
		Base:             entity.Base{ID: uuid.New()},
		ConfirmationCode: "RES-TEST-" + uuid.NewString()[:8],
		FirstName:        "Pat",
		LastName:         "Camper",
		Email:            "pat@example.com",
		CampsiteID:       campsiteID,
		CheckIn:          date(checkIn),
		CheckOut:         date(checkOut),
		Adults:           2,
		Status:           status,
	}
}

func testBlackout(campsiteID *uuid.UUID, start, end string) *entity.BlackoutDate {
	return &entity.BlackoutDate{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		CampsiteID: campsiteID,
		StartDate:  date(start),
		EndDate:    date(end),
		Reason:     "maintenance",
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func sitePtr(id uuid.UUID) *uuid.UUID { return &id }

func typePtr(t entity.CampsiteType) *entity.CampsiteType { return &t }

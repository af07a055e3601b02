package usecase

import (
	"context"
	"fmt"
	"time"

	"campground-booking/internal/data/entity"
	"campground-booking/internal/data/repository"
	"campground-booking/internal/dto/response"
	"campground-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Specificity scores: a policy pinned to one campsite beats a site-type rule,
// which beats a seasonal rule.
const (
	scoreCampsite = 100
	scoreSiteType = 50
	scoreSeason   = 20
)

// PaymentBreakdown is the due-now/due-later split for a stay. Ephemeral,
// never persisted.
type PaymentBreakdown struct {
	TotalAmount    float64
	Policy         *entity.PaymentPolicy
	DueNow         float64
	DueLater       float64
	DepositAmount  float64
	RemainderDueAt *time.Time
}

type PricingService interface {
	// ResolvePolicy picks the best-matching payment policy for a booking.
	// Resolution never fails: no match or a store fault degrades to the
	// synthetic pay-in-full default.
	ResolvePolicy(ctx context.Context, campsiteID uuid.UUID, siteType entity.CampsiteType, checkIn time.Time) *entity.PaymentPolicy

	// Quote prices a stay on a campsite and computes the payment breakdown.
	Quote(ctx context.Context, campsiteID string, checkIn, checkOut string) (*response.QuoteResponse, error)
}

type pricingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPricingService(repo *repository.Repository, log *zap.Logger) PricingService {
	return &pricingService{
		repo: repo,
		log:  log.With(zap.String("service", "pricing")),
	}
}

func (s *pricingService) ResolvePolicy(ctx context.Context, campsiteID uuid.UUID, siteType entity.CampsiteType, checkIn time.Time) *entity.PaymentPolicy {
	policies, err := s.repo.PaymentPolicy.FindAll(ctx)
	if err != nil {
		// Degrade to the default rather than failing the booking
		s.log.Error("Failed to fetch payment policies, using default", zap.Error(err))
		return entity.DefaultPaymentPolicy()
	}

	trace := func(p *entity.PaymentPolicy, score int, matched bool) {
		s.log.Debug("Policy scored",
			zap.String("policy", p.Name),
			zap.Int("score", score),
			zap.Bool("matched", matched),
		)
	}

	best := resolveBestPolicy(policies, campsiteID, siteType, checkIn.Month(), trace)
	if best == nil {
		return entity.DefaultPaymentPolicy()
	}

	s.log.Info("Payment policy resolved",
		zap.String("policy", best.Name),
		zap.String("campsite_id", campsiteID.String()),
	)

	return best
}

func (s *pricingService) Quote(ctx context.Context, campsiteID string, checkIn, checkOut string) (*response.QuoteResponse, error) {
	id, err := uuid.Parse(campsiteID)
	if err != nil {
		return nil, fmt.Errorf("invalid campsite ID format %s: %w", campsiteID, err)
	}

	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check_in date %s: %w", checkIn, err)
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check_out date %s: %w", checkOut, err)
	}

	campsite, err := s.repo.Campsite.FindByID(ctx, id)
	if err != nil || campsite == nil {
		return nil, fmt.Errorf("campsite %s not found", campsiteID)
	}

	nights := utils.Nights(in, out)
	total := utils.Round2(campsite.BaseRate * float64(nights))

	policy := s.ResolvePolicy(ctx, campsite.ID, campsite.Type, in)
	breakdown := ComputeBreakdown(total, policy, in)

	s.log.Info("Stay quoted",
		zap.String("campsite_id", campsiteID),
		zap.Int("nights", nights),
		zap.Float64("total", total),
		zap.Float64("due_now", breakdown.DueNow),
	)

	return &response.QuoteResponse{
		CampsiteID:  campsiteID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Nights:      nights,
		NightlyRate: campsite.BaseRate,
		Breakdown:   breakdown.ToResponse(),
	}, nil
}

// ==================== PURE CORE ====================

// resolveBestPolicy scores every policy against the booking and returns the
// highest-scoring match, ties broken by list order. Returns nil when nothing
// matches. The trace hook keeps scoring observable without impurity; pass nil
// to disable.
func resolveBestPolicy(
	policies []*entity.PaymentPolicy,
	campsiteID uuid.UUID,
	siteType entity.CampsiteType,
	checkInMonth time.Month,
	trace func(p *entity.PaymentPolicy, score int, matched bool),
) *entity.PaymentPolicy {
	var best *entity.PaymentPolicy
	bestScore := -1

	for _, p := range policies {
		score, matched := scorePolicy(p, campsiteID, siteType, checkInMonth)
		if trace != nil {
			trace(p, score, matched)
		}
		if !matched {
			continue
		}
		if score > bestScore {
			best = p
			bestScore = score
		}
	}

	return best
}

// scorePolicy computes the specificity score for p against the booking.
// Filters are exclusionary: any specified filter that fails disqualifies the
// policy outright, regardless of other matching filters. Unset filters match
// anything at no score.
func scorePolicy(p *entity.PaymentPolicy, campsiteID uuid.UUID, siteType entity.CampsiteType, checkInMonth time.Month) (int, bool) {
	score := 0

	if p.CampsiteID != nil {
		if *p.CampsiteID != campsiteID {
			return 0, false
		}
		score += scoreCampsite
	}

	if p.SiteType != nil {
		if *p.SiteType != siteType {
			return 0, false
		}
		score += scoreSiteType
	}

	if p.HasSeason() {
		if !monthInSeason(checkInMonth, *p.StartMonth, *p.EndMonth) {
			return 0, false
		}
		score += scoreSeason
	}

	return score, true
}

// monthInSeason tests a (possibly wrapping) month window. start > end spans
// the year boundary: Nov–Feb matches 11, 12, 1 and 2.
func monthInSeason(month time.Month, start, end int) bool {
	m := int(month)
	if start <= end {
		return m >= start && m <= end
	}
	return m >= start || m <= end
}

// ComputeBreakdown splits the total into due-now and due-later under the
// policy. Deposits are clamped so a misconfigured policy can never demand
// more than the total. A deposit policy with no due-days leaves the remainder
// date unset even when a balance is owed; callers treat that as
// pay-any-time-before-arrival.
func ComputeBreakdown(total float64, policy *entity.PaymentPolicy, checkIn time.Time) PaymentBreakdown {
	breakdown := PaymentBreakdown{
		TotalAmount: total,
		Policy:      policy,
	}

	if policy.PolicyType != entity.PolicyTypeDeposit {
		breakdown.DueNow = total
		return breakdown
	}

	deposit := policy.DepositValue
	if policy.DepositType == entity.DepositTypePercent {
		deposit = utils.Round2(total * policy.DepositValue / 100)
	}
	if deposit > total {
		deposit = total
	}

	breakdown.DepositAmount = deposit
	breakdown.DueNow = deposit
	breakdown.DueLater = utils.Round2(total - deposit)

	if breakdown.DueLater > 0 && policy.DueDaysBeforeCheckin != nil {
		dueAt := utils.DateOnly(checkIn).AddDate(0, 0, -*policy.DueDaysBeforeCheckin)
		breakdown.RemainderDueAt = &dueAt
	}

	return breakdown
}

// ToResponse converts the breakdown for the HTTP layer
func (b PaymentBreakdown) ToResponse() response.PaymentBreakdownResponse {
	resp := response.PaymentBreakdownResponse{
		TotalAmount:   b.TotalAmount,
		DueNow:        b.DueNow,
		DueLater:      b.DueLater,
		DepositAmount: b.DepositAmount,
	}

	if b.Policy != nil {
		resp.PolicyApplied = response.PolicyAppliedResponse{
			Name:                 b.Policy.Name,
			PolicyType:           string(b.Policy.PolicyType),
			DepositType:          string(b.Policy.DepositType),
			DepositValue:         b.Policy.DepositValue,
			DueDaysBeforeCheckin: b.Policy.DueDaysBeforeCheckin,
		}
		if b.Policy.ID != uuid.Nil {
			resp.PolicyApplied.ID = b.Policy.ID.String()
		}
	}

	if b.RemainderDueAt != nil {
		due := b.RemainderDueAt.Format(utils.DateLayout)
		resp.RemainderDueAt = &due
	}

	return resp
}

package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type PolicyType string

const (
	PolicyTypeFull    PolicyType = "full"
	PolicyTypeDeposit PolicyType = "deposit"
)

type DepositType string

const (
	DepositTypePercent DepositType = "percent"
	DepositTypeFixed   DepositType = "fixed"
)

// PaymentPolicy is a prioritized pricing rule. The specificity filters
// (CampsiteID, SiteType, StartMonth/EndMonth) are exclusionary: a specified
// filter that fails disqualifies the policy outright. Unset filters match
// anything.
type PaymentPolicy struct {
	Base
	Name                 string        `db:"name"`
	PolicyType           PolicyType    `db:"policy_type"`
	DepositType          DepositType   `db:"deposit_type"`
	DepositValue         float64       `db:"deposit_value"`
	DueDaysBeforeCheckin *int          `db:"due_days_before_checkin"`
	CampsiteID           *uuid.UUID    `db:"campsite_id"`
	SiteType             *CampsiteType `db:"site_type"`
	StartMonth           *int          `db:"start_month"`
	EndMonth             *int          `db:"end_month"`
}

// HasSeason reports whether the policy carries a complete month window
func (p *PaymentPolicy) HasSeason() bool {
	return p.StartMonth != nil && p.EndMonth != nil
}

// PolicyFromRow validates a stored row into a PaymentPolicy. Rows with an
// unrecognized policy_type, deposit_type or site_type are rejected so a bad
// config row never reaches resolution.
func PolicyFromRow(p PaymentPolicy, policyType, depositType string, siteType *string) (*PaymentPolicy, error) {
	switch PolicyType(policyType) {
	case PolicyTypeFull, PolicyTypeDeposit:
		p.PolicyType = PolicyType(policyType)
	default:
		return nil, fmt.Errorf("unknown policy_type %q", policyType)
	}

	// deposit_type only matters for deposit policies, but an unknown value is
	// still a malformed row
	if depositType != "" {
		switch DepositType(depositType) {
		case DepositTypePercent, DepositTypeFixed:
			p.DepositType = DepositType(depositType)
		default:
			return nil, fmt.Errorf("unknown deposit_type %q", depositType)
		}
	}

	if p.PolicyType == PolicyTypeDeposit && p.DepositType == "" {
		return nil, fmt.Errorf("deposit policy %s missing deposit_type", p.ID.String())
	}

	if siteType != nil {
		st := CampsiteType(*siteType)
		if !ValidCampsiteType(st) {
			return nil, fmt.Errorf("unknown site_type %q", *siteType)
		}
		p.SiteType = &st
	}

	if (p.StartMonth == nil) != (p.EndMonth == nil) {
		return nil, fmt.Errorf("policy %s has a partial season window", p.ID.String())
	}
	if p.StartMonth != nil && (*p.StartMonth < 1 || *p.StartMonth > 12 || *p.EndMonth < 1 || *p.EndMonth > 12) {
		return nil, fmt.Errorf("policy %s season months out of range", p.ID.String())
	}

	return &p, nil
}

// DefaultPaymentPolicy is the synthetic fallback: full amount due at booking,
// no filters. Constructed per call so resolution stays pure; never persisted.
func DefaultPaymentPolicy() *PaymentPolicy {
	return &PaymentPolicy{
		Name:       "Pay in full",
		PolicyType: PolicyTypeFull,
	}
}

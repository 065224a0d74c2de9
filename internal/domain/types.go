package domain

import (
	"strings"
	"time"
)

// ContentID is the content-addressed identifier of a submission in the
// format "oc1:<hex sha-256 digest>" (oc = origin content, 1 = scheme version)
type ContentID string

// ContentIDPrefix is the scheme prefix for content identifiers
const ContentIDPrefix = "oc1:"

// Valid checks that a content ID carries the expected prefix and a 64-char hex digest
func (c ContentID) Valid() bool {
	s := string(c)
	if !strings.HasPrefix(s, ContentIDPrefix) {
		return false
	}
	digest := s[len(ContentIDPrefix):]
	if len(digest) != 64 {
		return false
	}
	for _, r := range digest {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// Digest returns the hex digest portion of the content ID
func (c ContentID) Digest() string {
	return strings.TrimPrefix(string(c), ContentIDPrefix)
}

// CertificateStatus represents the lifecycle state of a copyright certificate
type CertificateStatus string

const (
	CertificateStatusValid   CertificateStatus = "valid"
	CertificateStatusRevoked CertificateStatus = "revoked"
)

// VerificationResult is the outcome of verifying a certificate against the clock
type VerificationResult string

const (
	VerificationValid   VerificationResult = "valid"
	VerificationRevoked VerificationResult = "revoked"
	VerificationExpired VerificationResult = "expired"
)

// ChannelType identifies a monetization channel with its own split policy
type ChannelType string

const (
	ChannelLicensing             ChannelType = "licensing"
	ChannelTipping               ChannelType = "tipping"
	ChannelPaidContent           ChannelType = "paid_content"
	ChannelServiceShop           ChannelType = "service_shop"
	ChannelDigitalCollectible    ChannelType = "digital_collectible"
	ChannelBrandCollab           ChannelType = "brand_collab"
	ChannelPaidCommunity         ChannelType = "paid_community"
	ChannelSubscription          ChannelType = "subscription"
	ChannelPlatformMembershipFee ChannelType = "platform_membership_fee"
)

// FeeModel distinguishes percentage splits from flat per-transaction fees
type FeeModel string

const (
	FeeModelPercentage FeeModel = "percentage"
	FeeModelFlatFee    FeeModel = "flat_fee"
)

// PoolFundCreatorID is the distinguished creator identity that accumulates
// the pooled-fund share of platform membership fees
const PoolFundCreatorID = "pool-fund"

// FeeCollectorCreatorID is the distinguished creator identity that
// accumulates flat transaction fees, so every share lands on a balance
const FeeCollectorCreatorID = "platform-fees"

// WithdrawalStatus represents the state of a withdrawal request
type WithdrawalStatus string

const (
	WithdrawalStatusRequested  WithdrawalStatus = "requested"
	WithdrawalStatusProcessing WithdrawalStatus = "processing"
	WithdrawalStatusCompleted  WithdrawalStatus = "completed"
	WithdrawalStatusRejected   WithdrawalStatus = "rejected"
)

// Terminal reports whether no further transition is allowed out of the status
func (s WithdrawalStatus) Terminal() bool {
	return s == WithdrawalStatusCompleted || s == WithdrawalStatusRejected
}

// CanTransitionTo reports whether the withdrawal state machine permits moving
// from s to next. Allowed: requested→processing→completed,
// requested|processing→rejected.
func (s WithdrawalStatus) CanTransitionTo(next WithdrawalStatus) bool {
	switch s {
	case WithdrawalStatusRequested:
		return next == WithdrawalStatusProcessing || next == WithdrawalStatusRejected
	case WithdrawalStatusProcessing:
		return next == WithdrawalStatusCompleted || next == WithdrawalStatusRejected
	default:
		return false
	}
}

// WithdrawalMethod identifies the payout rail a creator selected
type WithdrawalMethod string

const (
	WithdrawalMethodAlipay WithdrawalMethod = "alipay"
	WithdrawalMethodWechat WithdrawalMethod = "wechat_pay"
	WithdrawalMethodBank   WithdrawalMethod = "bank_transfer"
)

// IsValidWithdrawalMethod checks a withdrawal method against the supported rails
func IsValidWithdrawalMethod(m WithdrawalMethod) bool {
	return m == WithdrawalMethodAlipay || m == WithdrawalMethodWechat || m == WithdrawalMethodBank
}

// ProposalCategory classifies governance proposals
type ProposalCategory string

const (
	CategoryIncentiveRules       ProposalCategory = "incentive_rules"
	CategoryFeatureIteration     ProposalCategory = "feature_iteration"
	CategoryRecommendationWeight ProposalCategory = "recommendation_weight"
	CategoryFundUsage            ProposalCategory = "fund_usage"
)

// VotableCategory reports whether a category is on the mutable-rule allow-list.
// Base service fees, founder-revenue rules, compliance rules, and platform
// control are permanently outside governance reach.
func VotableCategory(c ProposalCategory) bool {
	switch c {
	case CategoryIncentiveRules, CategoryFeatureIteration, CategoryRecommendationWeight, CategoryFundUsage:
		return true
	default:
		return false
	}
}

// ProposalStatus represents the lifecycle state of a governance proposal
type ProposalStatus string

const (
	ProposalStatusActive   ProposalStatus = "active"
	ProposalStatusPassed   ProposalStatus = "passed"
	ProposalStatusRejected ProposalStatus = "rejected"
	ProposalStatusVetoed   ProposalStatus = "vetoed"
)

// VoteChoice is a yes/no governance vote
type VoteChoice string

const (
	VoteYes VoteChoice = "yes"
	VoteNo  VoteChoice = "no"
)

// IsValidVoteChoice checks a vote choice
func IsValidVoteChoice(c VoteChoice) bool {
	return c == VoteYes || c == VoteNo
}

// AnchorRef is the external tamper-evident record corroborating a
// certificate's issuance time (chain identifier + transaction reference)
type AnchorRef struct {
	ChainName string `json:"chain_name"`
	TxHash    string `json:"tx_hash"`
}

// Attestation is a trusted timestamp obtained from an external
// time-attestation source
type Attestation struct {
	Timestamp time.Time `json:"timestamp"`
	Authority string    `json:"authority"`
	Token     string    `json:"token,omitempty"`
}

// Split is the exact three-way division of a gross amount in integer
// minor currency units. CreatorShare + PlatformShare + ThirdPartyShare
// always equals the gross amount the split was computed from.
type Split struct {
	CreatorShare    int64
	PlatformShare   int64
	ThirdPartyShare int64
}

// Total returns the sum of the three shares
func (s Split) Total() int64 {
	return s.CreatorShare + s.PlatformShare + s.ThirdPartyShare
}

package validate

import (
	"fmt"
	"strings"
)

// PaymentStatus is the canonical payment lifecycle vocabulary.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentSucceeded  PaymentStatus = "succeeded"
	PaymentFailed     PaymentStatus = "failed"
	PaymentCanceled   PaymentStatus = "canceled"
	PaymentRefunded   PaymentStatus = "refunded"
)

// SubscriptionStatus is the canonical subscription lifecycle vocabulary.
type SubscriptionStatus string

const (
	SubscriptionActive     SubscriptionStatus = "active"
	SubscriptionCanceled   SubscriptionStatus = "canceled"
	SubscriptionPastDue    SubscriptionStatus = "past_due"
	SubscriptionUnpaid     SubscriptionStatus = "unpaid"
	SubscriptionTrialing   SubscriptionStatus = "trialing"
	SubscriptionIncomplete SubscriptionStatus = "incomplete"
)

// UserTier is the plan tier vocabulary.
type UserTier string

const (
	TierFree    UserTier = "free"
	TierStart   UserTier = "start"
	TierPro     UserTier = "pro"
	TierPremium UserTier = "premium"
)

// UserStatus is the account state vocabulary.
type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
	UserPending   UserStatus = "pending"
	UserDeleted   UserStatus = "deleted"
)

// PostStatus is the publishing state vocabulary. Note the double-l
// "cancelled": the post vendor spells it differently from payments and
// subscriptions, and the canonical form follows the vendor.
type PostStatus string

const (
	PostDraft      PostStatus = "draft"
	PostScheduled  PostStatus = "scheduled"
	PostPublishing PostStatus = "publishing"
	PostPublished  PostStatus = "published"
	PostFailed     PostStatus = "failed"
	PostCancelled  PostStatus = "cancelled"
)

// Defaults substituted by the OrDefault validators when upstream data is
// missing or unusable.
const (
	DefaultUserTier   = TierFree
	DefaultUserStatus = UserInactive
	DefaultPostStatus = PostDraft
)

var (
	paymentStatuses = []string{
		string(PaymentPending), string(PaymentProcessing), string(PaymentSucceeded),
		string(PaymentFailed), string(PaymentCanceled), string(PaymentRefunded),
	}
	subscriptionStatuses = []string{
		string(SubscriptionActive), string(SubscriptionCanceled), string(SubscriptionPastDue),
		string(SubscriptionUnpaid), string(SubscriptionTrialing), string(SubscriptionIncomplete),
	}
	userTiers = []string{
		string(TierFree), string(TierStart), string(TierPro), string(TierPremium),
	}
	userStatuses = []string{
		string(UserActive), string(UserInactive), string(UserSuspended),
		string(UserPending), string(UserDeleted),
	}
	postStatuses = []string{
		string(PostDraft), string(PostScheduled), string(PostPublishing),
		string(PostPublished), string(PostFailed), string(PostCancelled),
	}
)

// Legacy vendor spellings remapped onto the canonical vocabulary. These are
// accepted by the strict validators and normalized away, so a payload using
// an old spelling validates and comes out canonical.
var (
	paymentAliases = map[string]PaymentStatus{
		"cancelled": PaymentCanceled,
		"success":   PaymentSucceeded,
		"failure":   PaymentFailed,
	}
	subscriptionAliases = map[string]SubscriptionStatus{
		"cancelled": SubscriptionCanceled,
		"trial":     SubscriptionTrialing,
	}
)

func newEnumError(field string, allowed []string, received any) *Error {
	return &Error{
		Kind:     KindInvalidEnum,
		Field:    field,
		Message:  fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		Received: received,
	}
}

func inList(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// Type guards. Pure and total: they report whether a raw value already is a
// canonical member of the vocabulary, without normalizing aliases.

func IsPaymentStatus(v any) bool {
	s, ok := v.(string)
	return ok && inList(s, paymentStatuses)
}

func IsSubscriptionStatus(v any) bool {
	s, ok := v.(string)
	return ok && inList(s, subscriptionStatuses)
}

func IsUserTier(v any) bool {
	s, ok := v.(string)
	return ok && inList(s, userTiers)
}

func IsUserStatus(v any) bool {
	s, ok := v.(string)
	return ok && inList(s, userStatuses)
}

func IsPostStatus(v any) bool {
	s, ok := v.(string)
	return ok && inList(s, postStatuses)
}

// NormalizePaymentStatus maps a raw status spelling onto the canonical
// vocabulary. Unknown values pass through unchanged; membership is the
// validator's job.
func NormalizePaymentStatus(s string) PaymentStatus {
	if canonical, ok := paymentAliases[strings.ToLower(s)]; ok {
		return canonical
	}
	return PaymentStatus(s)
}

// NormalizeSubscriptionStatus maps a raw status spelling onto the canonical
// vocabulary. Unknown values pass through unchanged.
func NormalizeSubscriptionStatus(s string) SubscriptionStatus {
	if canonical, ok := subscriptionAliases[strings.ToLower(s)]; ok {
		return canonical
	}
	return SubscriptionStatus(s)
}

// PaymentStatusValue validates a raw value against the payment vocabulary
// and returns the canonical status. Legacy spellings are accepted and
// remapped. The error lists the legal values for operator diagnosability.
func PaymentStatusValue(v any) (PaymentStatus, error) {
	s, ok := v.(string)
	if !ok {
		return "", newEnumError("status", paymentStatuses, v)
	}
	status := NormalizePaymentStatus(s)
	if !inList(string(status), paymentStatuses) {
		return "", newEnumError("status", paymentStatuses, v)
	}
	return status, nil
}

// SubscriptionStatusValue validates a raw value against the subscription
// vocabulary and returns the canonical status.
func SubscriptionStatusValue(v any) (SubscriptionStatus, error) {
	s, ok := v.(string)
	if !ok {
		return "", newEnumError("status", subscriptionStatuses, v)
	}
	status := NormalizeSubscriptionStatus(s)
	if !inList(string(status), subscriptionStatuses) {
		return "", newEnumError("status", subscriptionStatuses, v)
	}
	return status, nil
}

// UserTierValue validates a raw value against the tier vocabulary.
func UserTierValue(v any) (UserTier, error) {
	s, ok := v.(string)
	if !ok || !inList(s, userTiers) {
		return "", newEnumError("tier", userTiers, v)
	}
	return UserTier(s), nil
}

// UserStatusValue validates a raw value against the account state vocabulary.
func UserStatusValue(v any) (UserStatus, error) {
	s, ok := v.(string)
	if !ok || !inList(s, userStatuses) {
		return "", newEnumError("status", userStatuses, v)
	}
	return UserStatus(s), nil
}

// PostStatusValue validates a raw value against the publishing vocabulary.
func PostStatusValue(v any) (PostStatus, error) {
	s, ok := v.(string)
	if !ok || !inList(s, postStatuses) {
		return "", newEnumError("status", postStatuses, v)
	}
	return PostStatus(s), nil
}

// Safe enum validators: same checks, ok-bool instead of an error, for
// callers that want to branch without handling a failure value.

func SafePaymentStatus(v any) (PaymentStatus, bool) {
	status, err := PaymentStatusValue(v)
	return status, err == nil
}

func SafeSubscriptionStatus(v any) (SubscriptionStatus, bool) {
	status, err := SubscriptionStatusValue(v)
	return status, err == nil
}

func SafeUserTier(v any) (UserTier, bool) {
	tier, err := UserTierValue(v)
	return tier, err == nil
}

func SafeUserStatus(v any) (UserStatus, bool) {
	status, err := UserStatusValue(v)
	return status, err == nil
}

func SafePostStatus(v any) (PostStatus, bool) {
	status, err := PostStatusValue(v)
	return status, err == nil
}

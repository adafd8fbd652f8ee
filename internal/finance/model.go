package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type classifies a transaction as money in or money out.
type Type string

const (
	TypeRevenue Type = "revenue"
	TypeExpense Type = "expense"
)

// Likelihood is the confidence tag on a transaction. It drives the
// weighted-projection multiplier.
type Likelihood string

const (
	LikelihoodConfirmed Likelihood = "confirmed"
	LikelihoodHigh      Likelihood = "high"
	LikelihoodMedium    Likelihood = "medium"
	LikelihoodLow       Likelihood = "low"
)

// Frequency is the recurrence interval of a recurring transaction.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiWeekly  Frequency = "bi-weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Category partitions transactions into the personal and business buckets.
type Category string

const (
	CategoryBusiness   Category = "business"
	CategoryPersonal   Category = "personal"
	CategoryInvestment Category = "investment"
	CategoryUtilities  Category = "utilities"
	CategoryMarketing  Category = "marketing"
	CategoryEquipment  Category = "equipment"
	CategoryRent       Category = "rent"
	CategoryFood       Category = "food"
	CategoryTransport  Category = "transport"
	CategoryHealthcare Category = "healthcare"
)

// Bucket is the personal-vs-business partition derived from a category.
type Bucket string

const (
	BucketPersonal Bucket = "personal"
	BucketBusiness Bucket = "business"
)

// categoryBuckets is the fixed category to bucket mapping. It is a constant
// lookup table; nothing mutates it at runtime.
var categoryBuckets = map[Category]Bucket{
	CategoryPersonal:   BucketPersonal,
	CategoryHealthcare: BucketPersonal,
	CategoryFood:       BucketPersonal,
	CategoryTransport:  BucketPersonal,
	CategoryBusiness:   BucketBusiness,
	CategoryInvestment: BucketBusiness,
	CategoryMarketing:  BucketBusiness,
	CategoryEquipment:  BucketBusiness,
	CategoryUtilities:  BucketBusiness,
	CategoryRent:       BucketBusiness,
}

// BucketFor returns the bucket a category belongs to. Unknown categories fall
// into the business bucket, matching how the original dashboard grouped
// anything unrecognized with business expenses.
func BucketFor(c Category) Bucket {
	if b, ok := categoryBuckets[c]; ok {
		return b
	}
	return BucketBusiness
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c Category) bool {
	_, ok := categoryBuckets[c]
	return ok
}

// ValidFrequency reports whether f is a supported recurrence interval.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// ValidLikelihood reports whether l is a recognized likelihood tag.
func ValidLikelihood(l Likelihood) bool {
	switch l {
	case LikelihoodConfirmed, LikelihoodHigh, LikelihoodMedium, LikelihoodLow:
		return true
	}
	return false
}

// Transaction is the single persistent entity. Amount is always a
// non-negative magnitude; the sign used in aggregation is derived from Type.
// ID is opaque: the remote webhook assigns its own identifiers for rows it
// already holds, and this server mints UUIDs for new ones.
type Transaction struct {
	ID            string
	Type          Type
	Amount        decimal.Decimal
	Description   string
	Category      Category
	Likelihood    Likelihood
	IsRecurring   bool
	Frequency     Frequency
	ScheduledDate time.Time
	EndDate       *time.Time
	CreatedAt     time.Time
}

// SignedAmount returns the amount signed by type: expenses are negative,
// revenue is positive.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Bucket returns the personal-vs-business bucket for this transaction.
func (t Transaction) Bucket() Bucket {
	return BucketFor(t.Category)
}

// AccountBalances is the "as of now" snapshot of the three tracked accounts.
// It is not date-indexed; each field is independently updatable.
type AccountBalances struct {
	PersonalBankBalance decimal.Decimal
	BusinessBankBalance decimal.Decimal
	PersonalCashOnHand  decimal.Decimal
}

// Occurrence is one concrete dated instance of a transaction. Recurring
// transactions expand into many occurrences; one-off transactions produce
// exactly one.
type Occurrence struct {
	Transaction
	Date time.Time
}

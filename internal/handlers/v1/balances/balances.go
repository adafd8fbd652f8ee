package balances

import (
	"github.com/ironforge/finance-server/internal/finance"
)

// AccountBalances is the API response model for the balances snapshot.
type AccountBalances struct {
	PersonalBankBalance string `json:"personalBankBalance" doc:"Personal bank account balance"`
	BusinessBankBalance string `json:"businessBankBalance" doc:"Business bank account balance"`
	PersonalCashOnHand  string `json:"personalCashOnHand" doc:"Personal cash on hand"`
}

// fromDomain converts the domain model to the response model.
func fromDomain(b finance.AccountBalances) AccountBalances {
	return AccountBalances{
		PersonalBankBalance: b.PersonalBankBalance.String(),
		BusinessBankBalance: b.BusinessBankBalance.String(),
		PersonalCashOnHand:  b.PersonalCashOnHand.String(),
	}
}

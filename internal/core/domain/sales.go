package domain

import "github.com/shopspring/decimal"

// SalesRecord holds one calendar day of sales, split by payment channel.
type SalesRecord struct {
	ID       int64           `json:"id"`
	Date     string          `json:"date"`
	Cash     decimal.Decimal `json:"cash"`
	Debit    decimal.Decimal `json:"debit"`
	Credit   decimal.Decimal `json:"credit"`
	Svc      decimal.Decimal `json:"svc"`
	Tips     decimal.Decimal `json:"tips"`
	Tax      decimal.Decimal `json:"tax"`
	CashTips decimal.Decimal `json:"cash_tips"`
	Doordash decimal.Decimal `json:"doordash"`
	Stripe   decimal.Decimal `json:"stripe"`
	Total    decimal.Decimal `json:"total"`
	Memo     string          `json:"memo"`
}

// CalculateTotal returns the day's revenue, the sum of RevenueFields.
func (r SalesRecord) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, f := range RevenueFields {
		total = total.Add(r.Amount(f))
	}
	return total
}

// Amount returns the value held in a numeric field. Memo and unknown fields
// yield zero.
func (r SalesRecord) Amount(f SalesField) decimal.Decimal {
	switch f {
	case SalesCash:
		return r.Cash
	case SalesDebit:
		return r.Debit
	case SalesCredit:
		return r.Credit
	case SalesSvc:
		return r.Svc
	case SalesTips:
		return r.Tips
	case SalesTax:
		return r.Tax
	case SalesCashTips:
		return r.CashTips
	case SalesDoordash:
		return r.Doordash
	case SalesStripe:
		return r.Stripe
	}
	return decimal.Zero
}

// SalesField is a column of SalesRecord that can be set through upsert-by-field.
type SalesField string

const (
	SalesCash     SalesField = "cash"
	SalesDebit    SalesField = "debit"
	SalesCredit   SalesField = "credit"
	SalesSvc      SalesField = "svc"
	SalesTips     SalesField = "tips"
	SalesTax      SalesField = "tax"
	SalesCashTips SalesField = "cash_tips"
	SalesDoordash SalesField = "doordash"
	SalesStripe   SalesField = "stripe"
	SalesMemo     SalesField = "memo"
)

// RevenueFields are the channels summed into a day's total. Service charge,
// card tips and tax are not revenue.
var RevenueFields = []SalesField{
	SalesCash, SalesDebit, SalesCredit, SalesCashTips, SalesDoordash, SalesStripe,
}

var salesFields = map[SalesField]struct{}{
	SalesCash: {}, SalesDebit: {}, SalesCredit: {}, SalesSvc: {}, SalesTips: {},
	SalesTax: {}, SalesCashTips: {}, SalesDoordash: {}, SalesStripe: {}, SalesMemo: {},
}

// ParseSalesField maps a client supplied name onto the closed field set.
func ParseSalesField(name string) (SalesField, bool) {
	f := SalesField(name)
	_, ok := salesFields[f]
	return f, ok
}

// IsNumeric reports whether the field holds an amount.
func (f SalesField) IsNumeric() bool {
	return f != SalesMemo
}

package dto

// UpdateSalesRequest sets one field of a day's sales record.
// Value is a number (or numeric string) for amounts and text for memo.
type UpdateSalesRequest struct {
	Date  string `json:"date" binding:"required,iso_date"`
	Field string `json:"field" binding:"required,sales_field"`
	Value any    `json:"value"`
}

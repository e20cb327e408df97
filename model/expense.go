package model

// ExpenseRow is one parsed line of an expense CSV upload. Column order in the
// file is propertyName, type, description, amount, date, vendor,
// invoiceNumber, category. Amount is kept as the normalized decimal string so
// the row round-trips through Mongo without float drift.
type ExpenseRow struct {
	PropertyName  string `bson:"property_name" json:"propertyName"`
	Type          string `bson:"type" json:"type"`
	Description   string `bson:"description" json:"description"`
	Amount        string `bson:"amount" json:"amount"`
	Date          string `bson:"date" json:"date"` // YYYY-MM-DD
	Vendor        string `bson:"vendor" json:"vendor"`
	InvoiceNumber string `bson:"invoice_number" json:"invoiceNumber"`
	Category      string `bson:"category" json:"category"`
}

package model

// Statement is an owner payout statement as the core API reports it. This
// service never computes one; it lists them, resolves the date window they
// are requested over, and streams their PDFs through.
type Statement struct {
	ID              string          `json:"id"`
	OwnerName       string          `json:"ownerName"`
	PropertyID      string          `json:"propertyId"`
	PropertyName    string          `json:"propertyName"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	CalculationType CalculationType `json:"calculationType"`
	GrossRevenue    string          `json:"grossRevenue"`
	TotalExpenses   string          `json:"totalExpenses"`
	NetPayout       string          `json:"netPayout"`
	Status          string          `json:"status"` // draft, sent, paid
	GeneratedAt     string          `json:"generatedAt"`
}

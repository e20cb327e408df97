package model

// ReservationRow is one parsed line of a reservation CSV upload. Column order
// is guestName, guestEmail, checkInDate, checkOutDate, nights, grossAmount,
// propertyId, propertyName, status, source.
type ReservationRow struct {
	GuestName    string `bson:"guest_name" json:"guestName"`
	GuestEmail   string `bson:"guest_email" json:"guestEmail"`
	CheckInDate  string `bson:"check_in_date" json:"checkInDate"`   // YYYY-MM-DD
	CheckOutDate string `bson:"check_out_date" json:"checkOutDate"` // YYYY-MM-DD
	Nights       int    `bson:"nights" json:"nights"`
	GrossAmount  string `bson:"gross_amount" json:"grossAmount"`
	PropertyID   string `bson:"property_id" json:"propertyId"`
	PropertyName string `bson:"property_name" json:"propertyName"`
	Status       string `bson:"status" json:"status"`
	Source       string `bson:"source" json:"source"`
}

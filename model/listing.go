package model

// Listing is a managed property as the core API reports it.
type Listing struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	OwnerName string   `json:"ownerName"`
	Tags      []string `json:"tags,omitempty"`
	IsActive  bool     `json:"isActive"`
}

// Tag groups listings for bulk scheduling and bulk statement generation.
type Tag struct {
	Name         string `json:"name"`
	ListingCount int    `json:"listingCount"`
}

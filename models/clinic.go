package models

// Clinic represents a physical clinic location.
type Clinic struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	Street     string `bson:"street" json:"street"`
	City       string `bson:"city" json:"city"`
	Province   string `bson:"province" json:"province"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
	Timezone   string `bson:"timezone" json:"timezone"` // IANA zone name, e.g. "America/Toronto"
}

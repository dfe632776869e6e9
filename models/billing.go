package models

// BillingRule captures an OHIP-style billing code and its scheduling
// constraints: the minimum visit duration the code applies to and the
// minimum gap required after a visit billed under it.
type BillingRule struct {
	ID                 string `bson:"id" json:"id"`
	Code               string `bson:"code" json:"code"`
	Description        string `bson:"description" json:"description"`
	MinDurationMinutes int    `bson:"minDurationMinutes" json:"minDurationMinutes"`
	MinGapAfter        int    `bson:"minGapAfter" json:"minGapAfter"` // minutes
	MaxApptsPerDay     int    `bson:"maxApptsPerDay,omitempty" json:"maxApptsPerDay,omitempty"`
}

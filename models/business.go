// File: models/business.go
package models

import "time"

// CallStatus tracks where a business sits in the outbound call lifecycle.
type CallStatus string

const (
	CallStatusPending    CallStatus = "pending"
	CallStatusCalling    CallStatus = "calling"
	CallStatusInProgress CallStatus = "in-progress"
	CallStatusCompleted  CallStatus = "completed"
)

// Business is one row per business being surveyed for a military discount.
// Phone is stored canonicalized (+ country code, digits only) and is unique
// at the collection level; duplicate imports are skipped, not merged.
type Business struct {
	ID               string     `bson:"id" json:"id"`
	Name             string     `bson:"name" json:"name"`
	Phone            string     `bson:"phone" json:"phone"`
	HasDiscount      bool       `bson:"hasDiscount" json:"hasDiscount"`
	DiscountAmount   string     `bson:"discountAmount,omitempty" json:"discountAmount,omitempty"`
	DiscountDetails  string     `bson:"discountDetails,omitempty" json:"discountDetails,omitempty"`
	AvailabilityInfo string     `bson:"availabilityInfo,omitempty" json:"availabilityInfo,omitempty"`
	EligibilityInfo  string     `bson:"eligibilityInfo,omitempty" json:"eligibilityInfo,omitempty"`
	CallStatus       CallStatus `bson:"callStatus" json:"callStatus"`
	LastCalled       *time.Time `bson:"lastCalled,omitempty" json:"lastCalled,omitempty"`
	RecordingURL     string     `bson:"recordingUrl,omitempty" json:"recordingUrl,omitempty"`
	CreatedAt        time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// RowError reports a rejected CSV row during import.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportSummary is the outcome of a CSV bulk import.
type ImportSummary struct {
	Imported int        `json:"imported"`
	Skipped  int        `json:"skipped"` // duplicate phone numbers
	Errors   []RowError `json:"errors,omitempty"`
}

// BusinessUpdate carries the mutable fields of a per-record update.
type BusinessUpdate struct {
	Name             *string     `json:"name,omitempty"`
	HasDiscount      *bool       `json:"hasDiscount,omitempty"`
	DiscountAmount   *string     `json:"discountAmount,omitempty"`
	DiscountDetails  *string     `json:"discountDetails,omitempty"`
	AvailabilityInfo *string     `json:"availabilityInfo,omitempty"`
	EligibilityInfo  *string     `json:"eligibilityInfo,omitempty"`
	CallStatus       *CallStatus `json:"callStatus,omitempty"`
}

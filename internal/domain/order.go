package domain

// Order is a booking record. Depending on Type, either StartDate/EndDate or
// Date/Time is used; the unused pair is stored as null, matching the store's
// record shape. Orders are never deleted.
type Order struct {
	OrderID        string  `json:"orderId" dynamodbav:"orderId"`
	UserID         string  `json:"userId" dynamodbav:"userId"`
	Type           string  `json:"type" dynamodbav:"type"`
	ListingID      string  `json:"listingId" dynamodbav:"listingId"`
	StartDate      *string `json:"startDate" dynamodbav:"startDate"`
	EndDate        *string `json:"endDate" dynamodbav:"endDate"`
	Date           *string `json:"date" dynamodbav:"date"`
	Time           *string `json:"time" dynamodbav:"time"`
	Total          float64 `json:"total" dynamodbav:"total"`
	AdditionalFees float64 `json:"additionalFees" dynamodbav:"additionalFees"`
	HostID         string  `json:"hostId" dynamodbav:"hostId"`
	CreatedAt      string  `json:"createdAt" dynamodbav:"createdAt"`
}

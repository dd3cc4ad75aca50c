package domain

// Listing is a bookable property record. Fields are immutable after
// creation; there is no update operation for listings.
type Listing struct {
	ListingID        string   `json:"listingId" dynamodbav:"listingId"`
	Type             string   `json:"type" dynamodbav:"type"`
	Name             string   `json:"name" dynamodbav:"name"`
	Address          string   `json:"address" dynamodbav:"address"`
	City             string   `json:"city" dynamodbav:"city"`
	PhotoAddressList []string `json:"photoAddressList" dynamodbav:"photoAddressList"`
	Category         string   `json:"category" dynamodbav:"category"`
	Price            float64  `json:"price" dynamodbav:"price"`
	Calendar         any      `json:"calendar" dynamodbav:"calendar"`
	HostID           string   `json:"hostId" dynamodbav:"hostId"`
}

// PageKey is the record store's native continuation key, round-tripped
// verbatim between the response body and the next request.
type PageKey map[string]any

// ListingPage is one page of listings plus the cursor for the next page.
// LastEvaluatedKey is absent when the result set is exhausted.
type ListingPage struct {
	Items            []Listing `json:"items"`
	LastEvaluatedKey PageKey   `json:"lastEvaluatedKey,omitempty"`
}

// ListListingsParams are the recognized query parameters of the listing
// list operation. A HostID switches the scan to a secondary-index query.
type ListListingsParams struct {
	Limit    int32
	StartKey PageKey
	HostID   string
	Category string
	SortDesc bool
}

// SearchListingsParams are the recognized filters of the listing search
// operation. All provided filters are ANDed together.
type SearchListingsParams struct {
	Limit    int32
	StartKey PageKey
	City     string
	Category string
	MinPrice *int
	MaxPrice *int
}

package domain

// PersistenceRecord is the payload sent to the save operation. It is built
// fresh per save request and never mutated; repeated saves produce repeated
// records, no deduplication happens at this layer.
type PersistenceRecord struct {
	UserEmail string    `json:"user_email"`
	Itinerary Itinerary `json:"itinerary_data"`
}

// SavedItinerary is one stored record as returned by the fetch operation.
// CreatedAt is kept as the backend's raw string representation rather than a
// parsed time; the storage layer's timestamp format is not part of this
// layer's contract.
type SavedItinerary struct {
	CreatedAt string    `json:"created_at"`
	Itinerary Itinerary `json:"itinerary_data"`
}

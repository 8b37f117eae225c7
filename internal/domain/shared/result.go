package shared

import "github.com/google/uuid"

// InsertResult acknowledges a single created record
type InsertResult struct {
	Acknowledged bool      `json:"acknowledged"`
	InsertedID   uuid.UUID `json:"insertedId"`
}

// NewInsertResult acknowledges the insertion of id
func NewInsertResult(id uuid.UUID) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: id}
}

// UpdateResult reports how many records matched and changed
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports how many records were removed
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

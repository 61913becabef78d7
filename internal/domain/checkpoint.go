package domain

// Checkpoint records which aspects of a product have already been synced.
// Flags are monotonic: the engine only ever sets them to true.
type Checkpoint struct {
	Desc  bool `json:"desc"`
	Photo bool `json:"photo"`
}

// Any reports whether the product was touched by an earlier run at all.
func (c Checkpoint) Any() bool {
	return c.Desc || c.Photo
}

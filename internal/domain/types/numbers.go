package types

// NumberList is the ordered sequence of integers parsed from an input file.
// It is never modified after parsing and is shared read-only by workers.
type NumberList []int64

// Len returns the number of parsed integers.
func (l NumberList) Len() int { return len(l) }

// Chunk is the half-open index range [From, To) of a NumberList handled by
// exactly one worker.
type Chunk struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// Len returns the number of elements covered by the chunk.
func (c Chunk) Len() int { return c.To - c.From }

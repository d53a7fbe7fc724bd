package order

import "fmt"

// DuplicateRankError reports two authors assigned the same first-tier rank.
type DuplicateRankError struct {
	Rank  int
	Names [2]string
}

func (e *DuplicateRankError) Error() string {
	return fmt.Sprintf("duplicate first-tier rank %d: %s and %s", e.Rank, e.Names[0], e.Names[1])
}

package recbench

import (
	"fmt"
	"math"
)

// reasonCount is the number of labels every row must carry.
const reasonCount = 2

// VerifyPage checks the invariants every recommendation page must hold:
// at most limit rows, two reasons and a [0,1] score per row, and the
// three-level ordering (score desc, distance asc with unknown last,
// likes desc).
func VerifyPage(q Query, page []Row) error {
	if q.Limit > 0 && len(page) > q.Limit {
		return fmt.Errorf("page has %d rows, limit was %d", len(page), q.Limit)
	}

	for i, row := range page {
		if len(row.Reasons) != reasonCount {
			return fmt.Errorf("row %d (%s) has %d reasons", i, row.ID, len(row.Reasons))
		}
		if row.Score < 0 || row.Score > 1 || math.IsNaN(row.Score) {
			return fmt.Errorf("row %d (%s) has score %v outside [0,1]", i, row.ID, row.Score)
		}
	}

	for i := 1; i < len(page); i++ {
		if err := verifyOrder(page[i-1], page[i]); err != nil {
			return fmt.Errorf("rows %d and %d out of order: %w", i-1, i, err)
		}
	}
	return nil
}

// verifyOrder checks that a may legitimately precede b.
func verifyOrder(a, b Row) error {
	if a.Score != b.Score {
		if a.Score < b.Score {
			return fmt.Errorf("score %v before %v", a.Score, b.Score)
		}
		return nil
	}

	da, db := math.Inf(1), math.Inf(1)
	if a.Distance != nil {
		da = *a.Distance
	}
	if b.Distance != nil {
		db = *b.Distance
	}
	if da != db {
		if da > db {
			return fmt.Errorf("distance %v before %v on equal score", da, db)
		}
		return nil
	}

	if a.Likes < b.Likes {
		return fmt.Errorf("likes %d before %d on equal score and distance", a.Likes, b.Likes)
	}
	return nil
}

package extract

import (
	"math"

	"github.com/pwalkowski/richmark"
)

// CombineRatings merges aggregate ratings into one. The result preserves
// the total rating count and carries the count-weighted mean rounded to 2
// decimals; the rating range is taken from the first input. Combining a
// single rating is identity.
func CombineRatings(in []richmark.AggregateRating) *richmark.AggregateRating {
	if len(in) == 0 {
		return nil
	}
	if len(in) == 1 {
		out := in[0]
		return &out
	}

	var sum float64
	var count int
	for _, r := range in {
		sum += r.Value * float64(r.Count)
		count += r.Count
	}

	value := 0.0
	if count > 0 {
		value = math.Round(sum/float64(count)*100) / 100
	}
	return &richmark.AggregateRating{
		Value: value,
		Best:  in[0].Best,
		Count: count,
	}
}

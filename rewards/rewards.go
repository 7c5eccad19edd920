// Package rewards scores a perfect pairing of item prices.
//
// The prices are paired so that every pair has the same sum, the sum of the
// cheapest and the most expensive item. Each pair earns the product of its
// two prices. Only that one target sum is ever tried: if it does not pair up
// every item, there is no pairing, even if some other sum would have worked.
package rewards

import (
	"context"
	"errors"
	"fmt"

	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sorts"
	"github.com/amp-labs/amp-sort/tuple"
)

// NoPairing is the score MaximizeRewards reports when the items cannot be
// paired. Real scores are never negative for non-negative prices.
const NoPairing = -1

var (
	// ErrTooFewItems is returned when there are fewer than two items.
	ErrTooFewItems = errors.New("too few items to pair")

	// ErrNoPerfectPairing is returned when the target sum leaves items unpaired.
	ErrNoPerfectPairing = errors.New("no perfect pairing")
)

// Pair holds two prices, the lower one first.
type Pair = tuple.Tuple2[int, int]

// MaximizeRewards pairs up itemPrices and returns the pairs with their total
// score. itemPrices is sorted in place. When no pairing exists it returns an
// empty slice and NoPairing.
//
// Example:
//
//	pairs, points := rewards.MaximizeRewards(ctx, []int{1, 2, 3, 4})
//	// pairs: (1, 4), (2, 3); points: 1*4 + 2*3 = 10
func MaximizeRewards(ctx context.Context, itemPrices []int) ([]Pair, int) {
	pairs, points, err := Certify(ctx, itemPrices)
	if err != nil {
		return []Pair{}, NoPairing
	}

	return pairs, points
}

// Certify is MaximizeRewards with the failure reason reported as an error
// wrapping ErrTooFewItems or ErrNoPerfectPairing.
func Certify(ctx context.Context, itemPrices []int) ([]Pair, int, error) {
	count := len(itemPrices)

	if count < 2 {
		err := logger.AnnotateError(
			fmt.Errorf("%w: got %d", ErrTooFewItems, count),
			"item_count", count)

		return nil, NoPairing, record(ctx, err)
	}

	sorts.HybridMergeSort(itemPrices)

	pairs, points, target := pairUp(itemPrices)

	if len(pairs)*2 != count {
		err := logger.AnnotateError(
			fmt.Errorf("%w: sum %d pairs %d of %d items", ErrNoPerfectPairing, target, len(pairs)*2, count),
			"item_count", count,
			"target_sum", target,
			"pairs_found", len(pairs))

		return nil, NoPairing, record(ctx, err)
	}

	logger.Get(ctx).Debug("certified reward pairing",
		"item_count", count,
		"target_sum", target,
		"points", points)

	return pairs, points, record(ctx, nil)
}

// pairUp walks sorted prices from both ends, collecting every pair that adds
// up to the sum of the smallest and largest price.
func pairUp(sorted []int) ([]Pair, int, int) {
	left, right := 0, len(sorted)-1
	target := sorted[left] + sorted[right]

	var (
		pairs  []Pair
		points int
	)

	for left < right {
		sum := sorted[left] + sorted[right]

		switch {
		case sum > target:
			right--
		case sum < target:
			left++
		default:
			pairs = append(pairs, tuple.NewTuple2(sorted[left], sorted[right]))
			points += sorted[left] * sorted[right]
			left++
			right--
		}
	}

	return pairs, points, target
}

func record(ctx context.Context, err error) error {
	switch {
	case err == nil:
		certifications.WithLabelValues(outcomePaired).Inc()
	case errors.Is(err, ErrTooFewItems):
		certifications.WithLabelValues(outcomeTooFewItems).Inc()
	default:
		certifications.WithLabelValues(outcomeNoPerfectPairing).Inc()
	}

	if err != nil {
		logger.Get(ctx).Debug("no reward pairing", "error", err)
	}

	return err
}

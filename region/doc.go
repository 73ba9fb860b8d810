// Package region classifies the cells of an inflated pipe grid as loop
// members, interior or exterior, and projects the interior back to source
// tiles.
//
// What:
//
//   - Classify flood-fills every non-wall cell with 4-connectivity. A region
//     touching the outer border is Exterior, any other region is Interior.
//   - CountEnclosed / Enclosed keep only Interior cells at even/even
//     coordinates, i.e. real source tiles, never connectors.
//   - Render draws the source grid with interior tiles as 'I' and exterior
//     ground as 'O'.
//
// How:
//
//	Fills start from cells next to the loop, then from any cell still
//	unclassified. Each fill keeps an explicit stack and a per-fill mark; it
//	stops as soon as it pops a cell whose region is already known, or a
//	border cell, and stamps that verdict on everything it has marked. Marked
//	cells are always in the seed's region, so the verdict is the region's
//	verdict and the result does not depend on seed order.
//
// Options:
//
//   - WithSeedShuffle(seed) / WithRand(r): permute fill order (testing aid).
//
// Complexity: O(W×H) time and memory on the inflated grid.
package region

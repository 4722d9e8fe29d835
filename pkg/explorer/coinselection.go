package explorer

import (
	"sort"
)

// SelectUnspents performs a coin selection over the given list of Utxos and
// returns a subset of them of type targetAsset to cover the targetAmount.
// In case any utxo is confidential, it's required that's already unblinded.
func SelectUnspents(
	utxos []Utxo, targetAmount uint64, targetAsset string,
) ([]Utxo, uint64, error) {
	candidates := make([]Utxo, 0, len(utxos))
	for _, u := range utxos {
		if u.IsConfidential() && !u.IsRevealed() {
			return nil, 0, ErrUnrevealedUtxo
		}
		if u.Asset == targetAsset {
			candidates = append(candidates, u)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Value > candidates[j].Value
	})
	values := make([]uint64, 0, len(candidates))
	for _, u := range candidates {
		values = append(values, u.Value)
	}

	indexes := bestCombination(values, targetAmount)
	if len(indexes) <= 0 {
		return nil, 0, ErrInsufficientFunds
	}

	selected := make([]Utxo, 0, len(indexes))
	total := uint64(0)
	for _, i := range indexes {
		total += candidates[i].Value
		selected = append(selected, candidates[i])
	}
	return selected, total - targetAmount, nil
}

// bestCombination selects as few as possible items whose sum is equal or
// greater than target, with a 10x ratio at most. Items must be sorted in
// descending order. Returns the indexes of the selected items.
//
// For every size from 1 to len(items), combinations are visited in
// lexicographic order and the first matching one is returned. If none
// matches, the first item greater than target is selected alone.
func bestCombination(items []uint64, target uint64) []int {
	for size := 1; size <= len(items); size++ {
		if found := firstCombination(items, size, target); found != nil {
			return found
		}
	}

	for i, v := range items {
		if v > target {
			return []int{i}
		}
	}
	return nil
}

func firstCombination(items []uint64, size int, target uint64) []int {
	indexes := make([]int, 0, size)

	var visit func(offset int, partial uint64) []int
	visit = func(offset int, partial uint64) []int {
		if len(indexes) == size {
			if partial >= target && partial <= target*10 {
				return append([]int{}, indexes...)
			}
			return nil
		}
		for i := offset; i <= len(items)-(size-len(indexes)); i++ {
			indexes = append(indexes, i)
			if found := visit(i+1, partial+items[i]); found != nil {
				return found
			}
			indexes = indexes[:len(indexes)-1]
		}
		return nil
	}

	return visit(0, 0)
}

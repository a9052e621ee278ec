package services

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

// SortForPacking orders boxes for tower building and floor placement.
//
// Boxes go largest volume first, or heaviest first with volume breaking ties
// when byWeight is set. The sort is stable so equal keys keep input order.
func SortForPacking(boxes []*domain.Box, byWeight bool) []*domain.Box {
	sorted := slices.Clone(boxes)
	slices.SortStableFunc(sorted, func(a, b *domain.Box) int {
		if byWeight {
			if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
				return c
			}
		}
		return cmp.Compare(b.Volume, a.Volume)
	})
	return sorted
}

// BuildStacks groups sorted boxes into towers for one bin.
//
// Each unused box seeds a stack. When stacking is allowed and the seed is
// stackable, the first unused box (in sort order) whose footprint matches and
// which keeps the tower within the bin's height and payload is put on top,
// then the scan starts over. The first match wins, not the best fit.
func BuildStacks(sorted []*domain.Box, bin *domain.Bin, allowStacking bool) []*domain.Stack {
	consumed := make([]bool, len(sorted))
	stacks := make([]*domain.Stack, 0, len(sorted))

	for i, base := range sorted {
		if consumed[i] {
			continue
		}
		consumed[i] = true
		stack := domain.NewStack(base)

		if allowStacking && base.Stackable {
			for {
				matched := false
				for j := i + 1; j < len(sorted); j++ {
					if consumed[j] {
						continue
					}
					if stack.Accepts(sorted[j], bin.Height, bin.MaxWeight) {
						stack.Push(sorted[j])
						consumed[j] = true
						matched = true
						break
					}
				}
				if !matched {
					break
				}
			}
		}

		stacks = append(stacks, stack)
	}

	return stacks
}

// PackBin runs one filling pass of bin over boxes and returns the boxes that
// did not fit, in input order.
//
// Placed boxes get their position and orientation written in place; boxes
// left over are not modified.
func PackBin(bin *domain.Bin, boxes []*domain.Box, opts domain.PlanOptions) []*domain.Box {
	sorted := SortForPacking(boxes, opts.SortByWeight)
	stacks := BuildStacks(sorted, bin, opts.AllowStacking)

	for _, stack := range stacks {
		if err := bin.Load(stack, opts.AllowRotation); err != nil {
			slog.Debug("stack left unplaced",
				"bin", bin.Name,
				"base_box", stack.Base().ID,
				"boxes", len(stack.Boxes),
				"err", err,
			)
		}
	}

	packed := bin.PackedIDs()
	unpacked := make([]*domain.Box, 0, len(boxes)-len(packed))
	for _, b := range boxes {
		if _, ok := packed[b.ID]; !ok {
			unpacked = append(unpacked, b)
		}
	}
	return unpacked
}

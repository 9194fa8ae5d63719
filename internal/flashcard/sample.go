package flashcard

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"go_vi_dict/internal/model"
)

// NewRand は時刻ベースのシードで乱数源を作ります
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Shuffle は items をその場で並べ替えます (Fisher-Yates)
func Shuffle[T any](items []T, rng *rand.Rand) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// Sample は items から重複なしに最大 n 件を無作為に選びます。items は変更しません
func Sample[T any](items []T, n int, rng *rand.Rand) []T {
	if n <= 0 {
		return []T{}
	}
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	Shuffle(out, rng)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// ValidateProgress は正解/不正解のインデックスがセットの範囲内で互いに重ならないことを確認します
func ValidateProgress(correct, incorrect []int, setSize int) error {
	seen := make(map[int]struct{}, len(correct)+len(incorrect))
	for _, list := range [][]int{correct, incorrect} {
		for _, idx := range list {
			if idx < 0 || idx >= setSize {
				return fmt.Errorf("%w: answer index %d is out of range (set has %d words)", model.ErrInvalidInput, idx, setSize)
			}
			if _, dup := seen[idx]; dup {
				return fmt.Errorf("%w: answer index %d appears more than once", model.ErrInvalidInput, idx)
			}
			seen[idx] = struct{}{}
		}
	}
	return nil
}

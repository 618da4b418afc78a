package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// GetSortedKeys is GetKeys in ascending order.
func GetSortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	slices.Sort(keys)
	return keys
}

func Min[A Number](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Sum[A Number](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

// Diff returns the differences between neighbours, len(nums)-1 of them.
func Diff[A Number](nums []A) []A {
	if len(nums) < 2 {
		return nil
	}
	res := make([]A, len(nums)-1)
	for i := range res {
		res[i] = nums[i+1] - nums[i]
	}
	return res
}

// DistinctSorted returns the unique values of nums in ascending order.
// nums is left untouched.
func DistinctSorted[A constraints.Ordered](nums []A) []A {
	res := slices.Clone(nums)
	slices.Sort(res)
	return slices.Compact(res)
}

func ToFloat64[A Number](nums []A) []float64 {
	res := make([]float64, len(nums))
	for i, v := range nums {
		res[i] = float64(v)
	}
	return res
}

func Set[A comparable](items []A) map[A]struct{} {
	res := make(map[A]struct{}, len(items))
	for _, v := range items {
		res[v] = struct{}{}
	}
	return res
}

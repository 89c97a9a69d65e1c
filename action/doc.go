// Package action provides eager, in-place operations on slices.
//
// Actions take a *[]T and leave the result in it:
//
//	xs := []int{3, 1, 2, 3}
//	action.Sort(&xs)   // [1 2 3 3]
//	action.Unique(&xs) // [1 2 3]
//
// Each action also has a closure form that composes with [Apply]:
//
//	err := action.Apply(&xs, action.Sorted[int](), action.Uniqued[int](), action.Taken[int](2))
//
// Position-taking actions report positions outside the slice as
// OUT_OF_RANGE errors and leave the slice untouched.
package action

// SPDX-License-Identifier: MIT

package dfs

import (
	"strings"
)

// IndexOf returns the first index of val in s, or -1 if not found.
func IndexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Reverse returns a new slice containing the elements of s in reverse order.
func Reverse(s []string) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// Compare lexicographically compares two equal-length string slices.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
func Compare(a, b []string) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

// JoinSig concatenates the elements of c with commas into a signature.
func JoinSig(c []string) string {
	return strings.Join(c, ",")
}

// MinimalRotation implements Booth's algorithm: it returns the lexicographically
// minimal rotation of s as a new slice, in O(n) time.
func MinimalRotation(s []string) []string {
	n := len(s)
	doubled := make([]string, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0 // start of the best rotation so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]string, n)
	copy(res, doubled[k:k+n])

	return res
}

package utils

import (
	"io"
	"sort"

	"github.com/sirupsen/logrus"
)

func Map[A any, B any](input []A, mapper func(A) B) []B {
	output := make([]B, len(input))
	for i, item := range input {
		output[i] = mapper(item)
	}
	return output
}

func Filter[A any](input []A, filter func(A) bool) []A {
	output := make([]A, 0)
	for _, item := range input {
		if filter(item) {
			output = append(output, item)
		}
	}
	return output
}

func Contains[A comparable](input []A, item A) bool {
	for _, i := range input {
		if i == item {
			return true
		}
	}
	return false
}

func Keys[A comparable, B any](input map[A]B) []A {
	keys := make([]A, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	return keys
}

// SortedKeys returns the keys of a string keyed map in ascending order.
func SortedKeys[B any](input map[string]B) []string {
	keys := Keys(input)
	sort.Strings(keys)
	return keys
}

func Uniques[A comparable](input []A) []A {
	seen := make(map[A]bool)
	output := make([]A, 0)
	for _, item := range input {
		if !seen[item] {
			seen[item] = true
			output = append(output, item)
		}
	}
	return output
}

// Chunk splits input into consecutive slices of size n. The last slice may be shorter.
func Chunk[A any](input []A, n int) [][]A {
	chunks := make([][]A, 0, (len(input)+n-1)/n)
	for i := 0; i < len(input); i += n {
		end := i + n
		if end > len(input) {
			end = len(input)
		}
		chunks = append(chunks, input[i:end])
	}
	return chunks
}

func Closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close resource")
		}
	}
}

// Package nanoid generates cryptographically random identifiers.
package nanoid

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// URLSafe is the alphabet used for tokens that travel in URLs or email bodies.
	URLSafe = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	defaultSize = 16
)

func getSize(l ...int) int {
	size := defaultSize
	if len(l) > 0 {
		size = l[0]
	}
	return size
}

// Must generates an optional length nanoid using the library default alphabet.
func Must(l ...int) string {
	return gonanoid.Must(getSize(l...))
}

// String generates an optional length nanoid over the URL-safe alphabet.
func String(l ...int) string {
	return gonanoid.MustGenerate(URLSafe, getSize(l...))
}

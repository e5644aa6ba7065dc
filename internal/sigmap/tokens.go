package sigmap

import (
	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter measures text in model tokens.
type TokenCounter interface {
	Count(text string) int
}

// tiktokenCounter counts with a real BPE encoding.
type tiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

func (c *tiktokenCounter) Count(text string) int {
	return len(c.encoding.Encode(text, nil, nil))
}

// estimateCounter approximates token counts from byte length. Used when
// the BPE encoding data cannot be loaded (e.g. offline).
type estimateCounter struct{}

func (estimateCounter) Count(text string) int {
	return (len(text) + 3) / 4
}

// NewTokenCounter returns a cl100k_base counter, falling back to a
// length-based estimate when the encoding is unavailable.
func NewTokenCounter() TokenCounter {
	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return estimateCounter{}
	}
	return &tiktokenCounter{encoding: encoding}
}

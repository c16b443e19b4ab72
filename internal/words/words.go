// Package words provides the tiered word lists levels draw their target
// word from.
package words

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"unicode"
)

// LevelsPerTier is how many levels share a difficulty tier.
const LevelsPerTier = 5

var (
	// ErrEmptyBank is returned when a bank has no tiers or an empty tier.
	ErrEmptyBank = errors.New("word bank has an empty tier")
	// ErrInvalidWord is returned for words that are not upper-case letters.
	ErrInvalidWord = errors.New("invalid word")
)

//go:embed words.json
var defaultData []byte

type bankFile struct {
	Tiers [][]string `json:"tiers"`
}

// Bank is an immutable set of word tiers ordered by difficulty.
type Bank struct {
	tiers [][]string
}

// New validates tiers and builds a bank from them.
func New(tiers [][]string) (*Bank, error) {
	if len(tiers) == 0 {
		return nil, ErrEmptyBank
	}

	copied := make([][]string, len(tiers))
	for i, tier := range tiers {
		if len(tier) == 0 {
			return nil, fmt.Errorf("tier %d: %w", i, ErrEmptyBank)
		}
		for _, w := range tier {
			if err := validate(w); err != nil {
				return nil, fmt.Errorf("tier %d: %w", i, err)
			}
		}
		copied[i] = append([]string(nil), tier...)
	}
	return &Bank{tiers: copied}, nil
}

// Parse builds a bank from its JSON form.
func Parse(data []byte) (*Bank, error) {
	var f bankFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse word bank: %w", err)
	}
	return New(f.Tiers)
}

// Default returns the built-in word bank.
func Default() (*Bank, error) {
	return Parse(defaultData)
}

// MustDefault returns the built-in word bank, panicking if it is malformed.
func MustDefault() *Bank {
	b, err := Default()
	if err != nil {
		panic(err)
	}
	return b
}

func validate(w string) error {
	if w == "" {
		return fmt.Errorf("%w: empty", ErrInvalidWord)
	}
	for _, r := range w {
		if !unicode.IsUpper(r) || !unicode.IsLetter(r) {
			return fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
	}
	return nil
}

// TierCount returns the number of tiers.
func (b *Bank) TierCount() int {
	return len(b.tiers)
}

// Tier returns the tier index for a level, clamped to the valid range.
func (b *Bank) Tier(level int) int {
	tier := level / LevelsPerTier
	if tier < 0 {
		return 0
	}
	if tier > len(b.tiers)-1 {
		return len(b.tiers) - 1
	}
	return tier
}

// Words returns a copy of the words in a tier. Out of range tiers are
// clamped.
func (b *Bank) Words(tier int) []string {
	if tier < 0 {
		tier = 0
	}
	if tier >= len(b.tiers) {
		tier = len(b.tiers) - 1
	}
	return append([]string(nil), b.tiers[tier]...)
}

// Pick returns a uniformly random word from the tier for level.
func (b *Bank) Pick(level int, rng *rand.Rand) string {
	list := b.tiers[b.Tier(level)]
	return list[rng.Intn(len(list))]
}

// Shuffle permutes letters in place with a Fisher-Yates shuffle, drawing
// uniformly from [0, i] for each position i from the end.
func Shuffle(letters []rune, rng *rand.Rand) {
	for i := len(letters) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		letters[i], letters[j] = letters[j], letters[i]
	}
}

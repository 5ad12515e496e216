// Package dice parses tabletop dice notation and rolls it with a seedable generator
package dice

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

var ErrInvalidDice = errors.New("invalid dice string")

var diceRe = regexp.MustCompile(`(\d+)d(\d+)([+-]\d+)?`)

// DiceType describes a roll such as 3d6+2
type DiceType struct {
	N     int // Number of dice
	Die   int // Sides per die
	Bonus int // Flat modifier added to the total
}

// DefaultDice is a single four-sided die
func DefaultDice() DiceType {
	return DiceType{N: 1, Die: 4}
}

func (d DiceType) String() string {
	s := strconv.Itoa(d.N) + "d" + strconv.Itoa(d.Die)
	switch {
	case d.Bonus > 0:
		s += "+" + strconv.Itoa(d.Bonus)
	case d.Bonus < 0:
		s += strconv.Itoa(d.Bonus)
	}
	return s
}

// Min returns the lowest possible total
func (d DiceType) Min() int {
	return d.N + d.Bonus
}

// Max returns the highest possible total
func (d DiceType) Max() int {
	return d.N*d.Die + d.Bonus
}

// ParseDice reads "1d6", "3d8-4" or "1d20+1"
// Every match in s is applied in order, so the last one wins; a match without a bonus keeps the previous bonus
func ParseDice(s string) (DiceType, error) {
	matches := diceRe.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return DiceType{}, errors.Wrapf(ErrInvalidDice, "%q", s)
	}

	result := DefaultDice()
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return DiceType{}, errors.Wrapf(ErrInvalidDice, "dice count %q", m[1])
		}
		die, err := strconv.Atoi(m[2])
		if err != nil {
			return DiceType{}, errors.Wrapf(ErrInvalidDice, "die size %q", m[2])
		}
		result.N, result.Die = n, die

		if m[3] != "" {
			bonus, err := strconv.Atoi(m[3])
			if err != nil {
				return DiceType{}, errors.Wrapf(ErrInvalidDice, "bonus %q", m[3])
			}
			result.Bonus = bonus
		}
	}
	return result, nil
}

// Package drills holds the built-in practice content tables.
package drills

// Uppercase returns one item per uppercase letter, A through Z.
func Uppercase() []string {
	return letters('A', 'Z')
}

// Lowercase returns one item per lowercase letter, a through z.
func Lowercase() []string {
	return letters('a', 'z')
}

// Digits returns one item per digit, 0 through 9.
func Digits() []string {
	return letters('0', '9')
}

func letters(from, to rune) []string {
	items := make([]string, 0, to-from+1)
	for r := from; r <= to; r++ {
		items = append(items, string(r))
	}
	return items
}

// Sentences are pangrams, so every letter of the alphabet gets practiced.
func Sentences() []string {
	return []string{
		"the quick brown fox jumps over the lazy dog.",
		"pack my box with five dozen liquor jugs.",
		"jackdaws love my big sphinx of quartz.",
		"the five boxing wizards jump quickly.",
		"waltz, bad nymph, for quick jigs vex.",
	}
}

// UppercaseSentences returns the pangrams in capitals.
func UppercaseSentences() []string {
	return []string{
		"THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG.",
		"PACK MY BOX WITH FIVE DOZEN LIQUOR JUGS.",
		"JACKDAWS LOVE MY BIG SPHINX OF QUARTZ.",
		"THE FIVE BOXING WIZARDS JUMP QUICKLY.",
		"WALTZ, BAD NYMPH, FOR QUICK JIGS VEX.",
	}
}

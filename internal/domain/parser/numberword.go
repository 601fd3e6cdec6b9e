package parser

// numberWords maps Vietnamese number words (and their de-accented
// variants, as voice transcription often drops tone marks) to values.
// Used only as a quantity fallback when no bare number filled the slot.
var numberWords = map[string]int{
	"một":  1,
	"hai":  2,
	"ba":   3,
	"bốn":  4,
	"năm":  5,
	"sáu":  6,
	"bảy":  7,
	"tám":  8,
	"chín": 9,
	"mười": 10,
	"chục": 10,

	// de-accented variants
	"mot":  1,
	"bon":  4,
	"nam":  5,
	"sau":  6,
	"bay":  7,
	"tam":  8,
	"chin": 9,
	"muoi": 10,
	"chuc": 10,
}

func wordToNumber(lower string) (int, bool) {
	n, ok := numberWords[lower]
	return n, ok
}

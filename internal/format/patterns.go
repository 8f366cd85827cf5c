package format

import "regexp"

// Shared regex fragments. Longer unit spellings come before their prefixes so
// the reported token always covers the whole unit word.
const (
	number      = `\d+[\.,]?\d*`
	measureUnit = `(?:ml|cl|kg|l|g)`
	countUnit   = `(?:unidades|unidad|uds|ud)`
	noun        = `\pL+`
)

// extractPatterns is the ordered extraction table, most specific first.
// Each pattern has a single capture group holding the format token.
var extractPatterns = []*regexp.Regexp{
	// pack de 12 latas de 33 cl, mini pack 10 latas 20 cl
	regexp.MustCompile(`((?:mini\s+)?pack\s+(?:de\s+)?\d+\s+(?:latas?|botellas?|briks?|unidades?|uds?)(?:\s+de\s+` + number + `\s*` + measureUnit + `)?)`),
	// pack de 2 unidades de 250 ml
	regexp.MustCompile(`(pack\s+de\s+\d+\s+unidades?\s+de\s+` + number + `\s*` + measureUnit + `)`),
	// pack de 4 bolsitas de 100 g
	regexp.MustCompile(`(pack\s+de\s+\d+\s+` + noun + `\s+de\s+` + number + `\s*(?:ml|cl|kg|uds|ud|l|g))`),
	// 6x80 uds, 3x72, x72
	regexp.MustCompile(`(\d*\s*x\s*\d+(?:\s*(?:unidades|uds|und|un|ud|us|u|d))?)`),
	// lata 33 cl, botella de 1 l
	regexp.MustCompile(`((?:lata|botella|brik|tarrito|bolsita|frasco|sobre|paquete)\s+(?:de\s+)?` + number + `\s*` + measureUnit + `)`),
	// 1 l, 500 ml, 100 g
	regexp.MustCompile(`(` + number + `\s*(?:ml|cl|kg|gr|l|g)(?:\s|$))`),
	// 80 ud, 12 rollos
	regexp.MustCompile(`(\d+\s*(?:unidades|uds|und|ud|u|rollos|rollo|piezas|pieza|pastillas|pastilla|c[aá]psulas|sobres|comprimidos|ampollas|lavados|hojas|hoja)(?:\s|$))`),
}

// allFormatsPattern merges the extraction table into one alternation for the
// extract-all variant. Bare measures and counts carry no trailing boundary, so
// "500 gr" yields "500 g" and "12 galletas" yields "12 g".
var allFormatsPattern = regexp.MustCompile(
	`(?:(?:mini\s+)?pack\s+(?:de\s+)?\d+\s+(?:latas?|botellas?|briks?|unidades?|uds?)(?:\s+de\s+` + number + `\s*` + measureUnit + `)?)` +
		`|(?:pack\s+de\s+\d+\s+unidades?\s+de\s+` + number + `\s*` + measureUnit + `)` +
		`|(?:pack\s+de\s+\d+\s+` + noun + `\s+de\s+` + number + `\s*(?:ml|cl|kg|uds|ud|l|g))` +
		`|(?:\d+\s*x\s*\d+(?:\s*` + countUnit + `)?)` +
		`|(?:(?:lata|botella|brik|tarrito|bolsita|frasco|sobre|paquete)\s+(?:de\s+)?` + number + `\s*` + measureUnit + `)` +
		`|(?:` + number + `\s*` + measureUnit + `)` +
		`|(?:\d+\s*` + countUnit + `)`,
)

// Classification tests, evaluated after the "pack" and container checks.
var (
	containerWords = []string{"lata", "botella", "brik", "tarrito", "bolsita", "frasco", "sobre"}

	multiplePattern = regexp.MustCompile(`\d+\s*x\s*\d+`)
	volumePattern   = regexp.MustCompile(number + `\s*(?:ml|cl|l)`)
	weightPattern   = regexp.MustCompile(number + `\s*(?:kg|g)`)
	unitsPattern    = regexp.MustCompile(`\d+\s*(?:unidades|unidad|uds|ud)`)
)

// Unit inference tests. A digit may touch the unit ("1500ml") but a letter may not.
var (
	volumeUnitPattern = regexp.MustCompile(`(?:^|[^\pL])(?:ml|cl|l)(?:$|[^\pL])`)
	weightUnitPattern = regexp.MustCompile(`(?:^|[^\pL])(?:kg|g)(?:$|[^\pL])`)
	countUnitPattern  = regexp.MustCompile(`(?:^|[^\pL])(?:unidades|unidad|uds|ud)(?:$|[^\pL])`)
)

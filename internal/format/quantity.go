package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"sjsage522/formatworker/logger"
)

// Unit is a standard unit a quantity is expressed in.
type Unit string

const (
	UnitLiters    Unit = "L"
	UnitKilograms Unit = "Kg"
	UnitUnits     Unit = "ud"
)

// decimals is the rounding precision applied to liters and kilograms.
const decimals = 3

// Quantity is a normalized total quantity.
type Quantity struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// quantityRule matches a token and turns the submatches into a raw
// (amount, unit) pair before conversion.
type quantityRule struct {
	name    string
	pattern *regexp.Regexp
	handle  func(m []string) (float64, string, bool)
}

// quantityRules is evaluated in order; the first matching rule decides.
var quantityRules = []quantityRule{
	{
		name:    "pack_nested_quantity",
		pattern: regexp.MustCompile(`pack\s+de\s+(\d+)\s+` + noun + `\s+de\s+(` + number + `)\s*(unidades|unidad|uds|ud|ml|cl|kg|l|g)`),
		handle:  product,
	},
	{
		name:    "pack_count",
		pattern: regexp.MustCompile(`pack\s+(?:de\s+)?(\d+)\s+(?:botellas?|briks?|latas?|paquetes?|rollos?)`),
		handle:  count,
	},
	{
		name:    "pack_count_no_de",
		pattern: regexp.MustCompile(`pack\s+(\d+)\s+(?:botellas?|briks?|latas?)`),
		handle:  count,
	},
	{
		name:    "bare_multiplier",
		pattern: regexp.MustCompile(`(?:^|[^\d\s])\s*x\s*(\d+)`),
		handle:  count,
	},
	{
		name:    "multiple",
		pattern: regexp.MustCompile(`(` + number + `)\s*x\s*(` + number + `)\s*(?:(unidades|unidad|uds|ud|ml|cl|kg|l|g)\b)?`),
		handle: func(m []string) (float64, string, bool) {
			if m[3] == "" {
				m[3] = "ud"
			}
			return product(m)
		},
	},
	{
		name:    "descriptor_count",
		pattern: regexp.MustCompile(`(\d+)\s*(?:rollos?|pastillas?|piezas?|sobres?|comprimidos?|hojas?|ampollas?|c[aá]psulas?|lavados?|und|u)\b`),
		handle:  count,
	},
	{
		name:    "single_package",
		pattern: regexp.MustCompile(`\b1\s*paquetes?\b`),
		handle: func([]string) (float64, string, bool) {
			return 1, "ud", true
		},
	},
	{
		name:    "pack_with_volume",
		pattern: regexp.MustCompile(`pack\s+de\s+(\d+)\s+(?:latas?|botellas?|briks?)\s+de\s+(` + number + `)\s*(ml|cl|kg|l|g)`),
		handle:  product,
	},
	{
		name:    "container",
		pattern: regexp.MustCompile(`(?:lata|botella|brik|tarrito|bolsita|frasco|sobre|paquete)\s+(?:de\s+)?(` + number + `)\s*(ml|cl|kg|l|g)`),
		handle:  single,
	},
	{
		name:    "simple",
		pattern: regexp.MustCompile(`(` + number + `)\s*(unidades|unidad|uds|ud|ml|cl|kg|l|g)`),
		handle:  single,
	},
}

// ComputeQuantity derives the total quantity of a format token, resolving
// packs and multipliers and converting to liters, kilograms or units.
// It reports false when the token is empty or no rule applies.
func ComputeQuantity(token string) (Quantity, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return Quantity{}, false
	}

	for _, r := range quantityRules {
		m := r.pattern.FindStringSubmatch(token)
		if m == nil {
			continue
		}
		amount, unit, ok := r.handle(m)
		if !ok {
			logger.ForComponent("format").Debug().
				Str("rule", r.name).
				Str("token", token).
				Msg("Unparseable number in format token")
			return Quantity{}, false
		}
		return convert(amount, unit)
	}
	return Quantity{}, false
}

// product multiplies a count (m[1]) by a sub-quantity (m[2]) in unit m[3].
func product(m []string) (float64, string, bool) {
	n, err := parseNumber(m[1])
	if err != nil {
		return 0, "", false
	}
	q, err := parseNumber(m[2])
	if err != nil {
		return 0, "", false
	}
	return n * q, m[3], true
}

func count(m []string) (float64, string, bool) {
	n, err := parseNumber(m[1])
	if err != nil {
		return 0, "", false
	}
	return n, "ud", true
}

func single(m []string) (float64, string, bool) {
	q, err := parseNumber(m[1])
	if err != nil {
		return 0, "", false
	}
	return q, m[2], true
}

// parseNumber accepts either a comma or a period as decimal separator.
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
}

// convert maps a raw amount and unit spelling to a standard Quantity.
func convert(amount float64, unit string) (Quantity, bool) {
	switch unit {
	case "ml":
		return Quantity{Value: round(amount/1000, decimals), Unit: UnitLiters}, true
	case "cl":
		return Quantity{Value: round(amount/100, decimals), Unit: UnitLiters}, true
	case "l":
		return Quantity{Value: round(amount, decimals), Unit: UnitLiters}, true
	case "g":
		return Quantity{Value: round(amount/1000, decimals), Unit: UnitKilograms}, true
	case "kg":
		return Quantity{Value: round(amount, decimals), Unit: UnitKilograms}, true
	case "ud", "uds", "unidad", "unidades":
		return Quantity{Value: math.RoundToEven(amount), Unit: UnitUnits}, true
	}
	return Quantity{}, false
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

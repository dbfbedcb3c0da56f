package numeral

import (
	"regexp"
	"sort"
	"strings"
)

// Unit is a canonical measurement unit a number can be qualified with
type Unit struct {
	Type string
	Name string
}

// unitVariants maps every surface spelling to its canonical unit. Variants
// are matched case-insensitively against the normalized text on either side
// of a number
var unitVariants = map[string]Unit{
	"rs":      {Type: "currency", Name: "rupees"},
	"rs.":     {Type: "currency", Name: "rupees"},
	"rupees":  {Type: "currency", Name: "rupees"},
	"rupee":   {Type: "currency", Name: "rupees"},
	"inr":     {Type: "currency", Name: "rupees"},
	"$":       {Type: "currency", Name: "dollar"},
	"usd":     {Type: "currency", Name: "dollar"},
	"dollar":  {Type: "currency", Name: "dollar"},
	"dollars": {Type: "currency", Name: "dollar"},
	"bucks":   {Type: "currency", Name: "dollar"},

	"people":     {Type: "people", Name: "people"},
	"persons":    {Type: "people", Name: "people"},
	"person":     {Type: "people", Name: "people"},
	"pax":        {Type: "people", Name: "people"},
	"passengers": {Type: "people", Name: "people"},
	"passenger":  {Type: "people", Name: "people"},
	"guests":     {Type: "people", Name: "people"},
	"guest":      {Type: "people", Name: "people"},

	"kg":    {Type: "weight", Name: "kg"},
	"kgs":   {Type: "weight", Name: "kg"},
	"kilo":  {Type: "weight", Name: "kg"},
	"kilos": {Type: "weight", Name: "kg"},
	"gram":  {Type: "weight", Name: "gram"},
	"grams": {Type: "weight", Name: "gram"},
	"gms":   {Type: "weight", Name: "gram"},
}

// unitAlternation builds the regex alternation for the given unit type,
// or for every unit when unitType is empty. Longer variants come first so
// "rupees" is not clipped to "rupee"
func unitAlternation(unitType string) string {
	variants := make([]string, 0, len(unitVariants))
	for v, u := range unitVariants {
		if unitType != "" && u.Type != unitType {
			continue
		}
		variants = append(variants, regexp.QuoteMeta(v))
	}
	if len(variants) == 0 {
		return ""
	}
	sort.Slice(variants, func(i, j int) bool {
		if len(variants[i]) != len(variants[j]) {
			return len(variants[i]) > len(variants[j])
		}
		return variants[i] < variants[j]
	})
	return strings.Join(variants, "|")
}

// knownUnitType reports whether any variant carries the given type
func knownUnitType(unitType string) bool {
	for _, u := range unitVariants {
		if u.Type == unitType {
			return true
		}
	}
	return false
}

// canonicalUnit resolves a matched variant to its unit name
func canonicalUnit(variant string) string {
	if u, ok := unitVariants[strings.TrimSpace(variant)]; ok {
		return u.Name
	}
	return ""
}

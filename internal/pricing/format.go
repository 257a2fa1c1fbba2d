package pricing

import "fmt"

// FormatMinorUnits renders an integer cent amount as a euro display string,
// e.g. 1250 -> "€12.50". Presentation only: the output must never be parsed
// back into a calculation.
func FormatMinorUnits(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s€%d.%02d", sign, cents/100, cents%100)
}

package format

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// INR renders whole rupees with Indian digit grouping, e.g. 1850000 -> ₹18,50,000.
func INR(n int) string {
	s := inrPrinter.Sprintf("%d", n)
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return "-₹" + rest
	}
	return "₹" + s
}

package checkout

import (
	"fmt"
	"strings"

	"github.com/sivanaveen080/biryani-for-lunch/internal/cart"
)

// SubmissionLine is one cart line frozen at submit time.
type SubmissionLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	LineTotal int    `json:"line_total"`
}

// Submission is the order record built from the live cart at submit time.
// It is immutable once built and is not retained after the handoff.
type Submission struct {
	CustomerName   string           `json:"customer_name"`
	CustomerMobile string           `json:"customer_mobile"`
	Lines          []SubmissionLine `json:"lines"`
	ItemsTotal     int              `json:"items_total"`
	PayableTotal   int              `json:"payable_total"`
}

// snapshot freezes the cart into a submission, recomputing totals at this
// instant rather than reusing anything a previous render produced.
func snapshot(name, mobile string, store *cart.Store) Submission {
	lines := store.Lines()
	sub := Submission{
		CustomerName:   name,
		CustomerMobile: mobile,
		Lines:          make([]SubmissionLine, 0, len(lines)),
	}
	for _, line := range lines {
		total := line.UnitPrice * line.Quantity
		sub.Lines = append(sub.Lines, SubmissionLine{
			Name:      line.Name,
			Quantity:  line.Quantity,
			LineTotal: total,
		})
		sub.ItemsTotal += total
	}
	sub.PayableTotal = sub.ItemsTotal
	return sub
}

// ItemsText renders the itemized block sent to the order sheet and embedded
// in the confirmation message, one line per cart line.
func (s Submission) ItemsText() string {
	var b strings.Builder
	for _, line := range s.Lines {
		fmt.Fprintf(&b, "%s x%d - ₹%d\n", line.Name, line.Quantity, line.LineTotal)
	}
	return b.String()
}

package doctor

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// OrderMismatch describes the first position at which two remapping lists with the same entries disagree.
type OrderMismatch struct {
	Index   int
	Foundry string
	Wake    string
}

// Report describes the differences between the Foundry and Wake remappings.
type Report struct {
	// FoundryOnly lists entries present in the Foundry config but not the Wake config.
	FoundryOnly []string

	// WakeOnly lists entries present in the Wake config but not the Foundry config.
	WakeOnly []string

	// OrderMismatch is set when both lists hold the same entries but in a different order.
	OrderMismatch *OrderMismatch

	// FoundryCount and WakeCount are the list lengths, reported when they differ.
	FoundryCount int
	WakeCount    int

	identical bool
}

// Compare builds a Report for the remappings. Differences in entry membership take precedence; order and length
// are only examined when both sides hold the same set of entries.
func (r *Remappings) Compare() *Report {
	report := &Report{
		FoundryOnly:  make([]string, 0),
		WakeOnly:     make([]string, 0),
		FoundryCount: len(r.Foundry),
		WakeCount:    len(r.Wake),
		identical:    slices.Equal(r.Foundry, r.Wake),
	}
	if report.identical {
		return report
	}

	for _, entry := range r.Foundry {
		if !slices.Contains(r.Wake, entry) {
			report.FoundryOnly = append(report.FoundryOnly, entry)
		}
	}
	for _, entry := range r.Wake {
		if !slices.Contains(r.Foundry, entry) {
			report.WakeOnly = append(report.WakeOnly, entry)
		}
	}

	if len(report.FoundryOnly) == 0 && len(report.WakeOnly) == 0 {
		for i := 0; i < len(r.Foundry) && i < len(r.Wake); i++ {
			if r.Foundry[i] != r.Wake[i] {
				report.OrderMismatch = &OrderMismatch{Index: i, Foundry: r.Foundry[i], Wake: r.Wake[i]}
				break
			}
		}
	}

	return report
}

// Identical returns true if both lists hold the same entries in the same order.
func (r *Report) Identical() bool {
	return r.identical
}

// String renders the report the way it is shown to the user.
func (r *Report) String() string {
	if r.identical {
		return "Foundry and Wake remappings are identical."
	}

	details := make([]string, 0)
	if len(r.FoundryOnly) > 0 {
		details = append(details, "Entries only in foundry.toml:\n  "+strings.Join(r.FoundryOnly, "\n  "))
	}
	if len(r.WakeOnly) > 0 {
		details = append(details, "Entries only in wake.toml:\n  "+strings.Join(r.WakeOnly, "\n  "))
	}

	if len(details) == 0 {
		if r.OrderMismatch != nil {
			details = append(details, fmt.Sprintf("Order mismatch at index %d: foundry.toml has %q while wake.toml has %q.",
				r.OrderMismatch.Index, r.OrderMismatch.Foundry, r.OrderMismatch.Wake))
		}
		if r.FoundryCount != r.WakeCount {
			details = append(details, fmt.Sprintf("The lists have different lengths: %d vs %d.", r.FoundryCount, r.WakeCount))
		}
	}

	if len(details) == 0 {
		details = append(details, "Remapping lists differ but no specific difference found.")
	}

	return "Remapping mismatch detected:\n" + strings.Join(details, "\n")
}

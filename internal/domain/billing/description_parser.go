package billing

import (
	"regexp"
	"strconv"
	"strings"

	"uaizouk_billing/internal/domain/entities"
)

// installmentPattern matches the "Parcela N de M" marker ASAAS charge
// descriptions carry. Case-sensitive on purpose: that is how the charges are
// created and loosening it would start matching unrelated free text.
var installmentPattern = regexp.MustCompile(`Parcela (\d+) de (\d+)`)

// yearPattern only covers the current event decade; it is a tag extractor,
// not a general date parser.
var yearPattern = regexp.MustCompile(`\b202\d\b`)

// DefaultProductKeywords are the add-on hints that appear in charge
// descriptions alongside the ticket.
var DefaultProductKeywords = []string{"camiseta", "caneca", "produto"}

// DescriptionParser extracts installment, event and product markers from a
// free-text ASAAS charge description.
//
// The event tag is configuration, not a literal in the code paths, so the
// same parser serves future editions of the event. Charges whose description
// lacks the tag are excluded from reconciliation entirely: the tag is what
// separates this event's charges from unrelated ones under the same
// customer.
type DescriptionParser struct {
	eventTag        string
	productKeywords []string
}

func NewDescriptionParser(eventTag string, productKeywords []string) *DescriptionParser {
	if len(productKeywords) == 0 {
		productKeywords = DefaultProductKeywords
	}
	return &DescriptionParser{eventTag: eventTag, productKeywords: productKeywords}
}

// Parse returns nil for an absent description. All extraction rules are
// independent and order-insensitive; a charge without the installment marker
// counts as a single-installment charge for aggregation.
func (p *DescriptionParser) Parse(description string) *entities.ParsedDescription {
	if strings.TrimSpace(description) == "" {
		return nil
	}

	parsed := &entities.ParsedDescription{TotalInstallments: 1}

	if m := installmentPattern.FindStringSubmatch(description); m != nil {
		parsed.IsInstallment = true
		parsed.InstallmentNumber, _ = strconv.Atoi(m[1])
		parsed.TotalInstallments, _ = strconv.Atoi(m[2])
	}

	lower := strings.ToLower(description)
	if p.eventTag != "" && strings.Contains(lower, strings.ToLower(p.eventTag)) {
		parsed.EventTagged = true
		parsed.EventName = p.eventTag
	}

	parsed.Year = yearPattern.FindString(description)

	for _, kw := range p.productKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			parsed.HasProducts = true
			break
		}
	}

	return parsed
}

// EventCharges filters a customer's charges down to the ones tagged with
// this parser's event. Unparseable descriptions are treated as untagged.
func (p *DescriptionParser) EventCharges(charges []entities.ProviderCharge) []entities.ProviderCharge {
	out := make([]entities.ProviderCharge, 0, len(charges))
	for _, c := range charges {
		if parsed := p.Parse(c.Description); parsed != nil && parsed.EventTagged {
			out = append(out, c)
		}
	}
	return out
}

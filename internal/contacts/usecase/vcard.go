package usecase

import (
	"strings"

	"eisenhower-matrix/internal/contacts"
)

// ParseVCard extracts name and phone pairs from vCard 3.0 text. Only FN and
// TEL lines are read; everything else in a block is ignored. Parsed contacts
// carry the imported category so they can be told apart from hand-entered
// ones.
func (uc *implUseCase) ParseVCard(raw string) []contacts.ContactInput {
	var (
		out     []contacts.ContactInput
		current *contacts.ContactInput
	)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.EqualFold(line, "BEGIN:VCARD"):
			current = &contacts.ContactInput{Category: contacts.ImportedCategory}

		case strings.EqualFold(line, "END:VCARD"):
			if current != nil && current.Name != "" && current.Phone != "" {
				out = append(out, *current)
			}
			current = nil

		case current == nil:
			// Stray line outside a block.

		case strings.HasPrefix(strings.ToUpper(line), "FN:"):
			current.Name = strings.TrimSpace(line[len("FN:"):])

		case strings.HasPrefix(strings.ToUpper(line), "TEL"):
			// TEL lines carry parameters, e.g. TEL;TYPE=CELL:+54911...
			if idx := strings.LastIndex(line, ":"); idx >= 0 && current.Phone == "" {
				current.Phone = normalizePhone(strings.TrimSpace(line[idx+1:]))
			}
		}
	}
	return out
}

// normalizePhone reduces a phone number to +<digits>, defaulting to the
// Argentine country code when none is present.
func normalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	s := b.String()
	switch {
	case s == "":
		return ""
	case strings.HasPrefix(s, "+"):
		return s
	case strings.HasPrefix(s, "54"):
		return "+" + s
	default:
		return "+54" + s
	}
}

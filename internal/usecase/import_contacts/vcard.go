package import_contacts

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-vcard"
)

// ParseVCard извлекает имя (FN) и первый телефон (TEL) из каждой карточки vCard
// Карточки без FN пропускаются
func ParseVCard(r io.Reader) ([]Contact, error) {
	dec := vcard.NewDecoder(r)

	var contacts []Contact
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidVCard, err)
		}

		name := strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName))
		if name == "" {
			continue
		}

		// vCard 4.0 хранит номер как URI "tel:..."
		phone := strings.TrimSpace(strings.TrimPrefix(card.Value(vcard.FieldTelephone), "tel:"))

		contacts = append(contacts, Contact{FullName: name, Phone: phone})
	}

	return contacts, nil
}

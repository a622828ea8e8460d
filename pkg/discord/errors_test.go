package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"groupbook/internal/domain"
	"groupbook/internal/infrastructure/i18n"
)

func TestDomainErrorMessage(t *testing.T) {
	tr := i18n.NewTranslator("fr")

	assert.Equal(t, "", DomainErrorMessage(tr, "fr", nil))
	assert.Equal(t, "Une des personnes demandées est introuvable.", DomainErrorMessage(tr, "fr", domain.ErrUserNotFound))
	assert.Equal(t, "Diesen Termintyp gibt es nicht.", DomainErrorMessage(tr, "de", domain.ErrEventTypeNotFound))
}

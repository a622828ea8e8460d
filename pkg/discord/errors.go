package discord

import "groupbook/internal/ports/output"

// DomainErrorMessage resolves err to a user-facing message in locale.
func DomainErrorMessage(translator output.Translator, locale string, err error) string {
	if err == nil {
		return ""
	}
	return translator.Error(locale, err)
}

package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

var messageFiles = []string{"en.yaml", "es.yaml"}

// InitI18NBundle loads the message files found in dir
func InitI18NBundle(dir string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	for _, f := range messageFiles {
		if _, err := b.LoadMessageFile(path.Join(dir, f)); err != nil {
			return err
		}
	}

	bundle = b
	return nil
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}

// Localize renders the message id in the best language of an Accept-Language
// value. The fallback is rendered when no bundle is loaded or the message is
// missing.
func Localize(lang, id string, data map[string]interface{}, fallback string) string {
	if bundle == nil {
		return fallback
	}

	msg, err := NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}

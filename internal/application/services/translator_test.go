package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
)

func TestTranslator_Translate(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, "NurseNear", tr.Translate(entities.LanguageEnglish, "appName"))
	assert.Equal(t, "নার্সনিয়ার", tr.Translate(entities.LanguageBangla, "appName"))
	assert.Equal(t, "Services", tr.Translate(entities.LanguageEnglish, "services"))
}

func TestTranslator_MissingKeyRendersKey(t *testing.T) {
	tr := NewTranslator()

	assert.False(t, tr.Has("no.such.key"))
	assert.Equal(t, "no.such.key", tr.Translate(entities.LanguageEnglish, "no.such.key"))
	assert.Equal(t, "no.such.key", tr.Translate(entities.LanguageBangla, "no.such.key"))
}

func TestTranslator_Translatef(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, "3 services selected", tr.Translatef(entities.LanguageEnglish, keyProceedBookingDesc, 3))
	assert.Equal(t, "3টি সেবা নির্বাচিত", tr.Translatef(entities.LanguageBangla, keyProceedBookingDesc, 3))
}

func TestTranslator_ToastKeysHaveBothLanguages(t *testing.T) {
	tr := NewTranslator()
	keys := []string{
		keyNoServicesTitle, keyNoServicesDesc, keyProceedBookingTitle, keyProceedBookingDesc,
		keyTermsTitle, keyTermsDesc, keyBookingConfirmedTitle, keyBookingConfirmedDesc,
		keyUsingLocationTitle, keyUsingLocationDesc, keyPaymentTitle, keyPaymentDesc,
		keyCancelledTitle, keyCancelledDesc, keyLocationGrantedTitle, keyLocationGrantedDesc,
		keyLocationDeniedTitle, keyLocationDeniedDesc, keyNurseHiredTitle, keyNurseHiredDesc,
		keyDetectedLocation,
	}

	for _, key := range keys {
		assert.True(t, tr.Has(key), key)
		assert.NotEqual(t, tr.table[key].EN, tr.table[key].BN, key)
	}
}

func TestNotifier_FollowsLanguageChanges(t *testing.T) {
	sink := &recordingSink{}
	lang := entities.LanguageEnglish
	n := NewNotifier(sink, NewTranslator(), func() entities.Language { return lang })

	n.Info(context.Background(), keyPaymentTitle, keyPaymentDesc)
	lang = entities.LanguageBangla
	n.Alert(context.Background(), keyCancelledTitle, keyCancelledDesc)

	items := sink.all()
	assert.Len(t, items, 2)
	assert.Equal(t, "Proceeding to payment", items[0].Title)
	assert.Equal(t, entities.SeverityDefault, items[0].Severity)
	assert.Equal(t, "বুকিং বাতিল হয়েছে", items[1].Title)
	assert.Equal(t, entities.SeverityDestructive, items[1].Severity)
}

func TestNotifier_NilIsSilent(t *testing.T) {
	var n *Notifier
	assert.NotPanics(t, func() { n.Info(context.Background(), keyPaymentTitle, keyPaymentDesc) })
}

func TestTranslator_All(t *testing.T) {
	tr := NewTranslator()

	en := tr.All(entities.LanguageEnglish)
	bn := tr.All(entities.LanguageBangla)

	assert.Equal(t, len(en), len(bn))
	assert.Equal(t, "Bookings", en["bookings"])
	assert.Equal(t, "বুকিং", bn["bookings"])
}

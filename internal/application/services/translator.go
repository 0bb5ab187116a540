package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
)

// Translator looks up display strings by key. A key with no entry renders as itself.
type Translator struct {
	table map[string]entities.LocalizedText
}

// NewTranslator creates a translator over the built-in table
func NewTranslator() *Translator {
	return &Translator{table: defaultTranslations}
}

// Translate returns the text for key in lang
func (t *Translator) Translate(lang entities.Language, key string) string {
	text, ok := t.table[key]
	if !ok {
		log.Warn().Str("key", key).Msg("Translation key not found")
		return key
	}
	return text.In(lang)
}

// Translatef translates key and formats the result with args
func (t *Translator) Translatef(lang entities.Language, key string, args ...interface{}) string {
	return fmt.Sprintf(t.Translate(lang, key), args...)
}

// All returns every entry rendered in lang
func (t *Translator) All(lang entities.Language) map[string]string {
	out := make(map[string]string, len(t.table))
	for key, text := range t.table {
		out[key] = text.In(lang)
	}
	return out
}

// Has reports whether key has an entry
func (t *Translator) Has(key string) bool {
	_, ok := t.table[key]
	return ok
}

// Toast keys
const (
	keyNoServicesTitle       = "toast.noServicesSelected.title"
	keyNoServicesDesc        = "toast.noServicesSelected.description"
	keyProceedBookingTitle   = "toast.proceedingToBooking.title"
	keyProceedBookingDesc    = "toast.proceedingToBooking.description"
	keyTermsTitle            = "toast.terms.title"
	keyTermsDesc             = "toast.terms.description"
	keyBookingConfirmedTitle = "toast.bookingConfirmed.title"
	keyBookingConfirmedDesc  = "toast.bookingConfirmed.description"
	keyUsingLocationTitle    = "toast.usingLocation.title"
	keyUsingLocationDesc     = "toast.usingLocation.description"
	keyPaymentTitle          = "toast.proceedingToPayment.title"
	keyPaymentDesc           = "toast.proceedingToPayment.description"
	keyCancelledTitle        = "toast.bookingCancelled.title"
	keyCancelledDesc         = "toast.bookingCancelled.description"
	keyLocationGrantedTitle  = "toast.locationGranted.title"
	keyLocationGrantedDesc   = "toast.locationGranted.description"
	keyLocationDeniedTitle   = "toast.locationDenied.title"
	keyLocationDeniedDesc    = "toast.locationDenied.description"
	keyNurseHiredTitle       = "toast.nurseHired.title"
	keyNurseHiredDesc        = "toast.nurseHired.description"
	keyDetectedLocation      = "booking.currentLocationDetected"
)

var defaultTranslations = map[string]entities.LocalizedText{
	"appName":       {EN: "NurseNear", BN: "নার্সনিয়ার"},
	"tagline":       {EN: "Healthcare at your doorstep", BN: "আপনার বাড়িতেই পেশাদার নার্সিং সেবা"},
	"search":        {EN: "Search for services", BN: "সেবা খুঁজুন"},
	"services":      {EN: "Services", BN: "সেবাসমূহ"},
	"viewAll":       {EN: "View All", BN: "সব দেখুন"},
	"popularNurses": {EN: "Popular Nurses", BN: "জনপ্রিয় নার্স"},
	"filter":        {EN: "Filter", BN: "ফিল্টার"},
	"home":          {EN: "Home", BN: "হোম"},
	"bookings":      {EN: "Bookings", BN: "বুকিং"},
	"chat":          {EN: "Chat", BN: "চ্যাট"},
	"profile":       {EN: "Profile", BN: "প্রোফাইল"},
	"nurse":         {EN: "Nurse", BN: "নার্স"},

	keyNoServicesTitle:       {EN: "No services selected", BN: "কোনো সেবা নির্বাচন করা হয়নি"},
	keyNoServicesDesc:        {EN: "Please select at least one service", BN: "অনুগ্রহ করে অন্তত একটি সেবা নির্বাচন করুন"},
	keyProceedBookingTitle:   {EN: "Proceeding to booking", BN: "বুকিংয়ে এগিয়ে যাচ্ছে"},
	keyProceedBookingDesc:    {EN: "%d services selected", BN: "%dটি সেবা নির্বাচিত"},
	keyTermsTitle:            {EN: "Terms and Conditions", BN: "শর্তাবলী"},
	keyTermsDesc:             {EN: "Please agree to terms and conditions", BN: "অনুগ্রহ করে শর্তাবলীতে সম্মত হন"},
	keyBookingConfirmedTitle: {EN: "Booking Confirmed", BN: "বুকিং নিশ্চিত হয়েছে"},
	keyBookingConfirmedDesc:  {EN: "We'll contact you shortly", BN: "আমরা শীঘ্রই আপনার সাথে যোগাযোগ করব"},
	keyUsingLocationTitle:    {EN: "Using Current Location", BN: "বর্তমান অবস্থান ব্যবহার করা হচ্ছে"},
	keyUsingLocationDesc:     {EN: "Address field will be updated", BN: "ঠিকানা হালনাগাদ করা হবে"},
	keyPaymentTitle:          {EN: "Proceeding to payment", BN: "পেমেন্টে এগিয়ে যাচ্ছে"},
	keyPaymentDesc:           {EN: "Please complete your payment", BN: "অনুগ্রহ করে আপনার পেমেন্ট সম্পন্ন করুন"},
	keyCancelledTitle:        {EN: "Booking Cancelled", BN: "বুকিং বাতিল হয়েছে"},
	keyCancelledDesc:         {EN: "Your booking has been cancelled", BN: "আপনার বুকিং বাতিল করা হয়েছে"},
	keyLocationGrantedTitle:  {EN: "Location access granted", BN: "অবস্থান অ্যাক্সেস অনুমোদিত"},
	keyLocationGrantedDesc:   {EN: "We can now find nurses near you", BN: "এখন আমরা আপনার কাছের নার্স খুঁজে পাব"},
	keyLocationDeniedTitle:   {EN: "Location access denied", BN: "অবস্থান অ্যাক্সেস প্রত্যাখ্যাত"},
	keyLocationDeniedDesc:    {EN: "Please enable location services to find nearby nurses", BN: "কাছের নার্স খুঁজতে অনুগ্রহ করে লোকেশন সার্ভিস চালু করুন"},
	keyNurseHiredTitle:       {EN: "Emergency nurse hired!", BN: "জরুরি নার্স নিয়োগ করা হয়েছে!"},
	keyNurseHiredDesc:        {EN: "%s will arrive in approximately %d minutes", BN: "%s আনুমানিক %d মিনিটের মধ্যে পৌঁছাবেন"},
	keyDetectedLocation:      {EN: "Current location (detected)", BN: "বর্তমান অবস্থান (সনাক্ত করা হয়েছে)"},
}

package catalog

import "github.com/zatekoja/nursecare/backend/internal/domain/entities"

// DefaultCategories returns the storefront's service categories
func DefaultCategories() []entities.ServiceCategory {
	return []entities.ServiceCategory{
		{
			ID:       "home-care",
			Name:     entities.LocalizedText{EN: "Home Care", BN: "হোম কেয়ার"},
			Icon:     "👩‍⚕️",
			HasPromo: true,
			Details: []entities.ServiceLineItem{
				{ID: "cannula", Name: entities.LocalizedText{EN: "Cannula Insertion", BN: "ক্যানুলা স্থাপন"}, Price: 200},
				{ID: "saline", Name: entities.LocalizedText{EN: "Saline Push", BN: "স্যালাইন পুশ"}, Price: 300},
				{ID: "injection", Name: entities.LocalizedText{EN: "Injection Push", BN: "ইনজেকশন পুশ"}, Price: 100},
				{ID: "bp-check", Name: entities.LocalizedText{EN: "Blood Pressure Check", BN: "রক্তচাপ পরীক্ষা"}, Price: 150},
				{ID: "blood-sugar", Name: entities.LocalizedText{EN: "Blood Sugar Test", BN: "রক্তের সুগার পরীক্ষা"}, Price: 150},
			},
		},
		{
			ID:   "wound-care",
			Name: entities.LocalizedText{EN: "Wound Care", BN: "ক্ষত পরিচর্যা"},
			Icon: "🩹",
			Details: []entities.ServiceLineItem{
				{ID: "dressing", Name: entities.LocalizedText{EN: "Wound Dressing", BN: "ক্ষত ড্রেসিং"}, Price: 350},
				{ID: "suture-removal", Name: entities.LocalizedText{EN: "Stitch Removal", BN: "সেলাই কাটা"}, Price: 300},
			},
		},
		{
			ID:   "personal-care",
			Name: entities.LocalizedText{EN: "Personal Care", BN: "ব্যক্তিগত যত্ন"},
			Icon: "👥",
			Details: []entities.ServiceLineItem{
				{ID: "bathing", Name: entities.LocalizedText{EN: "Patient Bathing", BN: "রোগীর গোসল"}, Price: 400},
			},
		},
		{
			ID:   "medication",
			Name: entities.LocalizedText{EN: "Medication", BN: "ঔষধ প্রয়োগ"},
			Icon: "💊",
			Details: []entities.ServiceLineItem{
				{ID: "injection", Name: entities.LocalizedText{EN: "Injection Push", BN: "ইনজেকশন পুশ"}, Price: 100},
				{ID: "nebulization", Name: entities.LocalizedText{EN: "Nebulization", BN: "নেবুলাইজেশন"}, Price: 250},
			},
		},
		{
			ID:   "elderly-care",
			Name: entities.LocalizedText{EN: "Elderly Care", BN: "বয়স্ক সেবা"},
			Icon: "👵",
		},
		{
			ID:   "post-operative",
			Name: entities.LocalizedText{EN: "Post-Operative", BN: "অপারেশন পরবর্তী"},
			Icon: "🏥",
		},
		{
			ID:   "baby-care",
			Name: entities.LocalizedText{EN: "Baby Care", BN: "শিশু যত্ন"},
			Icon: "👶",
		},
		{
			ID:   "hourly-nurse",
			Name: entities.LocalizedText{EN: "Hourly", BN: "ঘণ্টাভিত্তিক"},
			Icon: "⏱️",
		},
		{
			ID:   "night-duty",
			Name: entities.LocalizedText{EN: "Night Duty", BN: "রাতের ডিউটি"},
			Icon: "🌙",
		},
	}
}

// DefaultNurses returns the nurse pool
func DefaultNurses() []entities.NurseRecord {
	return []entities.NurseRecord{
		{
			ID:         "1",
			Name:       "Ayesha Karim",
			DistanceKm: 1.2,
			Rating:     4.6,
			HourlyRate: 550,
			Available:  true,
			ImageURL:   "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=500&auto=format&fit=crop&q=60",
			Languages:  []string{"Bangla", "English"},
		},
		{
			ID:         "2",
			Name:       "Meena Rahman",
			DistanceKm: 3.5,
			Rating:     4.8,
			HourlyRate: 550,
			Available:  true,
			ImageURL:   "https://images.unsplash.com/photo-1614608682850-e0d6ed316d47?w=500&auto=format&fit=crop&q=60",
			Languages:  []string{"Bangla", "Hindi", "English"},
		},
		{
			ID:         "3",
			Name:       "Nusrat Hossain",
			DistanceKm: 1.5,
			Rating:     4.4,
			HourlyRate: 320,
			Available:  true,
			ImageURL:   "https://images.unsplash.com/photo-1651008376811-b90baee60c1f?w=500&auto=format&fit=crop&q=60",
			Languages:  []string{"Bangla", "English"},
		},
		{
			ID:         "4",
			Name:       "Tahmina Begum",
			DistanceKm: 2.8,
			Rating:     4.2,
			HourlyRate: 400,
			Available:  false,
			ImageURL:   "https://images.unsplash.com/photo-1622253692010-333f2da6031d?w=500&auto=format&fit=crop&q=60",
			Languages:  []string{"Bangla"},
		},
	}
}

// DemoBookings returns the bookings the collection is seeded with
func DemoBookings() []entities.Booking {
	return []entities.Booking{
		{
			ID:           "BK123456",
			Services:     []string{"Blood Pressure Check", "Diabetes Care"},
			Date:         "2025-05-22",
			Time:         "10:00",
			Price:        1200,
			Status:       entities.BookingStatusPending,
			CareProvider: entities.CareProviderFemale,
		},
		{
			ID:           "BK123457",
			Services:     []string{"IV Therapy", "Wound Care"},
			Date:         "2025-05-23",
			Time:         "14:30",
			Price:        1500,
			Status:       entities.BookingStatusProcessed,
			CareProvider: entities.CareProviderMale,
		},
		{
			ID:           "BK123458",
			Services:     []string{"Post-Surgery Care"},
			Date:         "2025-05-20",
			Time:         "16:00",
			Price:        2000,
			Status:       entities.BookingStatusCancelled,
			CareProvider: entities.CareProviderFemale,
		},
	}
}

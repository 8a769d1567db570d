package i18n

var en = Translation{
	LanguageName: "English",
	Navigation: Navigation{
		Home:     "Home",
		Storage:  "Storage",
		Delivery: "Delivery",
		Partner:  "Partner",
		Account:  "Account",
	},
	Footer: Footer{
		About:        "About Lockerlink",
		Contact:      "Contact",
		Privacy:      "Privacy Policy",
		Terms:        "Terms of Service",
		Partner:      "Partner With Us",
		Rights:       "© 2024 Lockerlink. All rights reserved.",
		ContactPhone: "+86 21 8888 6666",
		ContactMail:  "hello@lockerlink.com",
	},
	PartnerHighlight: PartnerHighlight{
		Title:    "Unlock new revenue from unused space",
		Subtitle: "Hotels, malls and transit hubs trust Lockerlink to digitise luggage services in days.",
		Cta:      "Become a partner",
	},
	Common: Common{
		FeatureSection: &FeatureSection{
			Title:    "One platform for luggage freedom",
			Subtitle: "Choose lockers, transfers or concierge support with the same polished experience.",
			Cards: []FeatureCard{
				{
					ID:          "locker",
					Title:       "Smart locker storage",
					Description: "24/7 access near landmarks with climate control, CCTV and instant mobile unlocks.",
					LinkLabel:   "Explore storage",
					Icon:        "lock",
				},
				{
					ID:          "transfer",
					Title:       "Same-day luggage transfer",
					Description: "Door-to-door delivery between airports, hotels and homes backed by insured couriers.",
					LinkLabel:   "Plan a transfer",
					Icon:        "route",
				},
				{
					ID:          "concierge",
					Title:       "Hotel concierge network",
					Description: "Certified partners extend storage and transfer services to every guest with seamless signage.",
					LinkLabel:   "Partner benefits",
					Icon:        "hotel",
				},
			},
		},
		SearchSection: &SearchSection{
			Title:               "Search availability in your city",
			LocationLabel:       "City or landmark",
			LocationPlaceholder: "Try Shanghai Tower, Shibuya, Myeongdong…",
			DateLabel:           "Drop-off date",
			ActionLabel:         "Search",
		},
		MapSection: &MapSection{
			Title:        "Coverage built for city explorers",
			Subtitle:     "Tap a city to preview hero locations.",
			Callout:      "Each marker is a verified Lockerlink venue.",
			ExploreLabel: "See city guide",
			Cities: []MapCity{
				{
					ID:          "shanghai",
					Name:        "Shanghai",
					Headline:    "Line 2 coverage from Bund to Pudong",
					Description: "Lockers inside metro hubs, business districts and Disneyland keep your day flexible.",
					Highlight:   "Hot tip: Nanjing Road lockers fill up by 10:00 am—book ahead.",
				},
				{
					ID:          "tokyo",
					Name:        "Tokyo",
					Headline:    "Seamless hops across the Yamanote Line",
					Description: "Concierge partners in Shinjuku and Ginza greet early arrivals and late departures.",
					Highlight:   "Enable auto-transfer to send bags straight to your hotel lobby.",
				},
				{
					ID:          "seoul",
					Name:        "Seoul",
					Headline:    "Enjoy Hongdae nights hands free",
					Description: "Store near street markets while couriers deliver to Incheon or your stay.",
					Highlight:   "Express transfers average a 90-minute turnaround.",
				},
			},
		},
		HowItWorks: &HowItWorks{
			Title:    "How Lockerlink works",
			Subtitle: "Three simple steps to lighter travel.",
			Footnote: "Every booking includes insurance, delay protection and 24/7 support.",
			Steps: []HowItWorksStep{
				{
					ID:          "search",
					Title:       "Search & select",
					Description: "Pick the locker size or transfer slot that matches your itinerary.",
				},
				{
					ID:          "confirm",
					Title:       "Confirm & pay",
					Description: "Checkout with Apple Pay, Alipay or card and receive instant access codes.",
				},
				{
					ID:          "enjoy",
					Title:       "Drop, track & enjoy",
					Description: "Unlock in seconds or hand off to a courier while you focus on the journey.",
				},
			},
		},
		Testimonials: &Testimonials{
			Title:    "Trusted by travellers and partners",
			Subtitle: "Real stories from people who rely on Lockerlink every week.",
			Entries: []Testimonial{
				{
					ID:       "emma",
					Name:     "Emma Sato",
					Role:     "Product designer",
					Location: "Tokyo, Japan",
					Quote:    "I land, store my bag near the station and start exploring with a coffee in hand.",
					Rating:   5,
				},
				{
					ID:       "li-wei",
					Name:     "Li Wei",
					Role:     "Hotel operations lead",
					Location: "Shanghai, China",
					Quote:    "Lockerlink keeps our lobby calm even on peak days. Guests love the polished flow.",
					Rating:   5,
				},
				{
					ID:       "minji",
					Name:     "Minji Park",
					Role:     "Travel blogger",
					Location: "Seoul, South Korea",
					Quote:    "Handing bags to the courier means I can shoot content all afternoon, hands free.",
					Rating:   5,
				},
			},
		},
		PartnerBanner: &PartnerBanner{
			Title:        "Unlock new revenue with Lockerlink",
			Subtitle:     "Our team helps hotels, malls and transit hubs deploy smart lockers in days.",
			PrimaryCta:   Cta{Label: "Talk to the team", Href: "/partner"},
			SecondaryCta: Cta{Label: "Download partner kit", Href: "#download-partner-kit"},
		},
	},
	Pages: map[PageID]PageContent{
		PageHome: {
			Meta: Meta{
				Title:       "Lockerlink | Travel Light. Store Smart.",
				Description: "Premium luggage storage and transfer services across Asia with smart lockers, insured couriers and partner hotels.",
			},
			Hero: HeroContent{
				Eyebrow:      "Lockerlink",
				Title:        "Travel light. Store smart.",
				Subtitle:     "Reserve storage or schedule delivery in under a minute.",
				Description:  "Smart lockers, insured couriers and partner hotels keep every journey effortless.",
				PrimaryCta:   Cta{Label: "Book storage", Href: "/storage", EventID: "home_store_click"},
				SecondaryCta: Cta{Label: "Arrange transfer", Href: "/delivery", EventID: "home_transfer_click"},
				Highlights: []HeroHighlight{
					{Label: "Cities covered", Value: "36"},
					{Label: "Average check-in", Value: "45s"},
					{Label: "Customer rating", Value: "4.9 / 5"},
				},
			},
		},
		PageStorage: {
			Meta: Meta{
				Title:       "Lockerlink Storage | Smart lockers across Asia",
				Description: "Contactless lockers with insurance, CCTV security and flexible extensions whenever you need them.",
			},
			Hero: HeroContent{
				Eyebrow:      "Storage",
				Title:        "Contactless lockers wherever you land.",
				Subtitle:     "Choose the right size, unlock with a tap and extend remotely.",
				Description:  "24/7 coverage, CCTV security and travel-friendly insurance come standard.",
				PrimaryCta:   Cta{Label: "Find lockers", Href: "#locker-search", EventID: "storage_primary_click"},
				SecondaryCta: Cta{Label: "See pricing", Href: "#services", EventID: "storage_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "Average unlock", Value: "12s"},
					{Label: "Insurance coverage", Value: "¥5,000"},
					{Label: "Uptime", Value: "99.8%"},
				},
			},
		},
		PageDelivery: {
			Meta: Meta{
				Title:       "Lockerlink Delivery | Insured luggage transfers",
				Description: "Book door-to-door luggage delivery with live tracking, insured couriers and flexible rerouting.",
			},
			Hero: HeroContent{
				Eyebrow:      "Delivery",
				Title:        "Your bags take the miles. You take the moments.",
				Subtitle:     "Book door-to-door transfers with live tracking and insured couriers.",
				Description:  "Plan seamless hand-offs between airports, hotels and homes across the city.",
				PrimaryCta:   Cta{Label: "Schedule transfer", Href: "#locker-search", EventID: "delivery_primary_click"},
				SecondaryCta: Cta{Label: "View routes", Href: "#map", EventID: "delivery_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "Guaranteed window", Value: "60m"},
					{Label: "Courier partners", Value: "480+"},
					{Label: "On-time rate", Value: "99.6%"},
				},
			},
		},
		PagePartner: {
			Meta: Meta{
				Title:       "Lockerlink Partners | Monetise unused space",
				Description: "Join hotels, malls and stations who unlock new revenue with Lockerlink smart lockers and transfer services.",
			},
			Hero: HeroContent{
				Eyebrow:      "Partners",
				Title:        "Turn unused space into a hero service.",
				Subtitle:     "Join hotels, malls and stations boosting guest happiness and revenue.",
				Description:  "We install lockers, train staff and provide analytics so you launch in days.",
				PrimaryCta:   Cta{Label: "Book a consultation", Href: "#partner-banner", EventID: "partner_primary_click"},
				SecondaryCta: Cta{Label: "See case studies", Href: "#testimonials", EventID: "partner_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "Revenue uplift", Value: "+28%"},
					{Label: "Go-live speed", Value: "72h"},
					{Label: "NPS lift", Value: "+18"},
				},
			},
		},
		PageAccount: {
			Meta: Meta{
				Title:       "Lockerlink Account | Manage every booking",
				Description: "Sign in to extend locker time, track transfers, invite companions and unlock loyalty perks.",
			},
			Hero: HeroContent{
				Eyebrow:      "Account",
				Title:        "One dashboard for every locker and delivery.",
				Subtitle:     "Extend bookings, share access and stay notified in real time.",
				Description:  "Lockerlink keeps travellers, assistants and families aligned across devices.",
				PrimaryCta:   Cta{Label: "Sign in", Href: "#locker-search", EventID: "account_primary_click"},
				SecondaryCta: Cta{Label: "Create account", Href: "#services", EventID: "account_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "Active members", Value: "120K+"},
					{Label: "Average savings", Value: "22%"},
					{Label: "Support response", Value: "<30s"},
				},
			},
		},
	},
}

package i18n

var ko = Translation{
	LanguageName: "한국어",
	Navigation: Navigation{
		Home:     "홈",
		Storage:  "보관 서비스",
		Delivery: "배송 서비스",
		Partner:  "파트너",
		Account:  "내 계정",
	},
	Footer: Footer{
		About:        "Lockerlink 소개",
		Contact:      "문의하기",
		Privacy:      "개인정보 처리방침",
		Terms:        "이용약관",
		Partner:      "파트너 신청",
		Rights:       "© 2024 Lockerlink. All rights reserved.",
		ContactPhone: "+82 2 123 4567",
		ContactMail:  "kr@lockerlink.com",
	},
	PartnerHighlight: PartnerHighlight{
		Title:    "남는 공간으로 새로운 수익을",
		Subtitle: "호텔과 상업시설, 교통 허브가 Lockerlink로 며칠 만에 서비스를 구축합니다.",
		Cta:      "파트너 되기",
	},
	Common: Common{
		FeatureSection: &FeatureSection{
			Title:    "수하물을 자유롭게 하는 올인원 플랫폼",
			Subtitle: "보관, 당일 배송, 컨시어지 협력을 모두 동일한 프리미엄 경험으로 제공합니다.",
			Cards: []FeatureCard{
				{
					ID:          "locker",
					Title:       "스마트 보관함",
					Description: "주요 명소 인근 24시간 이용, 온도 관리와 CCTV, 모바일 즉시 개방 지원.",
					LinkLabel:   "보관 서비스 보기",
					Icon:        "lock",
				},
				{
					ID:          "transfer",
					Title:       "당일 수하물 배송",
					Description: "공항·호텔·숙소 간 문앞까지 보험이 포함된 배송으로 연결합니다.",
					LinkLabel:   "배송 계획하기",
					Icon:        "route",
				},
				{
					ID:          "concierge",
					Title:       "호텔 컨시어지 네트워크",
					Description: "인증 파트너가 모든 고객에게 보관과 배송 서비스를 매끄럽게 제공합니다.",
					LinkLabel:   "파트너 혜택",
					Icon:        "hotel",
				},
			},
		},
		SearchSection: &SearchSection{
			Title:               "도시에서 이용 가능 여부 검색",
			LocationLabel:       "도시 또는 랜드마크",
			LocationPlaceholder: "예: 상하이 타워, 시부야, 명동…",
			DateLabel:           "보관 날짜",
			ActionLabel:         "검색",
		},
		MapSection: &MapSection{
			Title:        "도시 여행자를 위한 커버리지",
			Subtitle:     "도시를 탭하면 핵심 위치를 미리 볼 수 있습니다.",
			Callout:      "모든 마커는 인증된 Lockerlink 지점입니다.",
			ExploreLabel: "도시 가이드 보기",
			Cities: []MapCity{
				{
					ID:          "shanghai",
					Name:        "상하이",
					Headline:    "외탄에서 푸둥까지 2호선 전역 커버",
					Description: "지하철 허브, 비즈니스 지구, 디즈니까지 보관함을 배치해 일정을 유연하게.",
					Highlight:   "Tip: 난징루 지점은 오전 10시 전에 마감되니 미리 예약하세요.",
				},
				{
					ID:          "tokyo",
					Name:        "도쿄",
					Headline:    "야마노테선 전역을 끊김 없이 이동",
					Description: "신주쿠·긴자 컨시어지가 이른 체크인과 늦은 체크아웃을 지원합니다.",
					Highlight:   "자동 배송을 켜면 짐이 바로 호텔 로비로 도착합니다.",
				},
				{
					ID:          "seoul",
					Name:        "서울",
					Headline:    "홍대의 밤을 두 손 자유롭게",
					Description: "야시장 근처에 맡기는 동안 배송 기사가 인천공항이나 숙소로 운반합니다.",
					Highlight:   "익스프레스 배송 평균 소요 시간은 90분입니다.",
				},
			},
		},
		HowItWorks: &HowItWorks{
			Title:    "Lockerlink 이용 방법",
			Subtitle: "세 단계면 가벼운 여행이 완성됩니다.",
			Footnote: "모든 예약에 보험, 지연 보장, 24시간 지원이 포함됩니다.",
			Steps: []HowItWorksStep{
				{
					ID:          "search",
					Title:       "검색하고 선택",
					Description: "일정에 맞는 보관함 크기나 배송 시간을 고릅니다.",
				},
				{
					ID:          "confirm",
					Title:       "확인 및 결제",
					Description: "Apple Pay, 카드 등으로 결제하고 즉시 액세스 코드를 받습니다.",
				},
				{
					ID:          "enjoy",
					Title:       "맡기고 즐기기",
					Description: "몇 초 만에 보관하거나 배송 기사가 인수해 여행에 집중할 수 있습니다.",
				},
			},
		},
		Testimonials: &Testimonials{
			Title:    "여행자와 파트너가 함께 선택",
			Subtitle: "매주 Lockerlink를 이용하는 사람들의 이야기입니다.",
			Entries: []Testimonial{
				{
					ID:       "emma",
					Name:     "에마 사토",
					Role:     "프로덕트 디자이너",
					Location: "일본 도쿄",
					Quote:    "역 근처에 짐을 맡기고 커피를 들고 바로 도시 탐험을 시작합니다.",
					Rating:   5,
				},
				{
					ID:       "li-wei",
					Name:     "리웨이",
					Role:     "호텔 운영 책임자",
					Location: "중국 상하이",
					Quote:    "피크 시간에도 로비가 한결 여유로워졌고, 고객 만족도도 높아졌습니다.",
					Rating:   5,
				},
				{
					ID:       "minji",
					Name:     "박민지",
					Role:     "여행 블로거",
					Location: "대한민국 서울",
					Quote:    "짐을 배송 기사에게 맡기면 하루 종일 콘텐츠 제작에 집중할 수 있어요.",
					Rating:   5,
				},
			},
		},
		PartnerBanner: &PartnerBanner{
			Title:        "Lockerlink로 새로운 수익원을",
			Subtitle:     "호텔, 쇼핑몰, 교통 허브가 며칠 만에 스마트 보관함을 구축합니다.",
			PrimaryCta:   Cta{Label: "팀과 상담하기", Href: "/partner"},
			SecondaryCta: Cta{Label: "파트너 자료 받기", Href: "#download-partner-kit"},
		},
	},
	Pages: map[PageID]PageContent{
		PageHome: {
			Meta: Meta{
				Title:       "Lockerlink | 가볍게 여행하고 똑똑하게 보관하기",
				Description: "아시아 주요 도시에서 이용 가능한 스마트 보관과 수하물 배송 서비스.",
			},
			Hero: HeroContent{
				Eyebrow:      "Lockerlink",
				Title:        "가볍게 여행하고 걱정 없이 보관하세요",
				Subtitle:     "1분 안에 보관 또는 배송을 예약하세요.",
				Description:  "스마트 보관함과 보험이 포함된 배송, 호텔 파트너가 여행을 더욱 편하게 만듭니다.",
				PrimaryCta:   Cta{Label: "보관 예약", Href: "/storage", EventID: "home_store_click"},
				SecondaryCta: Cta{Label: "배송 요청", Href: "/delivery", EventID: "home_transfer_click"},
				Highlights: []HeroHighlight{
					{Label: "서비스 도시", Value: "36"},
					{Label: "평균 처리", Value: "45초"},
					{Label: "고객 평점", Value: "4.9 / 5"},
				},
			},
		},
		PageStorage: {
			Meta: Meta{
				Title:       "Lockerlink 보관 | 스마트 보관함",
				Description: "24시간 운영, CCTV 보안, 보험 포함으로 언제든 안심하고 맡기세요.",
			},
			Hero: HeroContent{
				Eyebrow:      "보관 서비스",
				Title:        "도착 즉시 맡기고 바로 이동",
				Subtitle:     "맞춤 크기를 선택하고 터치 한 번으로 개방, 원격 연장까지 지원합니다.",
				Description:  "연중무휴 운영과 보안 감시, 여행자 보험이 기본입니다.",
				PrimaryCta:   Cta{Label: "보관함 찾기", Href: "#locker-search", EventID: "storage_primary_click"},
				SecondaryCta: Cta{Label: "요금 보기", Href: "#services", EventID: "storage_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "평균 개방", Value: "12초"},
					{Label: "보험 한도", Value: "¥5,000"},
					{Label: "가동률", Value: "99.8%"},
				},
			},
		},
		PageDelivery: {
			Meta: Meta{
				Title:       "Lockerlink 배송 | 보험 포함 수하물 이동",
				Description: "실시간 추적과 보험이 포함된 배송으로 공항·호텔·숙소를 이어줍니다.",
			},
			Hero: HeroContent{
				Eyebrow:      "배송 서비스",
				Title:        "짐은 이동하고, 당신은 순간을 즐기세요",
				Subtitle:     "실시간 추적과 보험이 포함된 배송을 예약하세요.",
				Description:  "공항과 호텔, 자택 사이의 매끄러운 인도를 미리 계획할 수 있습니다.",
				PrimaryCta:   Cta{Label: "배송 예약", Href: "#locker-search", EventID: "delivery_primary_click"},
				SecondaryCta: Cta{Label: "노선 보기", Href: "#map", EventID: "delivery_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "보장 시간", Value: "60분"},
					{Label: "배송 파트너", Value: "480+"},
					{Label: "정시율", Value: "99.6%"},
				},
			},
		},
		PagePartner: {
			Meta: Meta{
				Title:       "Lockerlink 파트너 | 유휴 공간 수익화",
				Description: "호텔, 쇼핑몰, 역이 Lockerlink로 스마트 보관과 배송 서비스를 도입해 수익을 높입니다.",
			},
			Hero: HeroContent{
				Eyebrow:      "파트너",
				Title:        "남는 공간을 대표 서비스로",
				Subtitle:     "호텔·쇼핑몰·역이 고객 만족과 수익을 동시에 높이고 있습니다.",
				Description:  "락커 설치, 직원 교육, 분석 도구까지 며칠 만에 지원합니다.",
				PrimaryCta:   Cta{Label: "상담 예약", Href: "#partner-banner", EventID: "partner_primary_click"},
				SecondaryCta: Cta{Label: "사례 보기", Href: "#testimonials", EventID: "partner_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "매출 증가", Value: "+28%"},
					{Label: "도입 속도", Value: "72시간"},
					{Label: "NPS 향상", Value: "+18"},
				},
			},
		},
		PageAccount: {
			Meta: Meta{
				Title:       "Lockerlink 계정 | 예약 통합 관리",
				Description: "보관 연장, 배송 추적, 동행자 공유, 멤버 혜택까지 한 계정으로 관리하세요.",
			},
			Hero: HeroContent{
				Eyebrow:      "내 계정",
				Title:        "모든 보관과 배송을 한눈에",
				Subtitle:     "예약을 연장하고 접근 권한을 공유하며 실시간으로 알림을 받으세요.",
				Description:  "Lockerlink가 여행자, 비서, 가족을 기기 간에 연결합니다.",
				PrimaryCta:   Cta{Label: "로그인", Href: "#locker-search", EventID: "account_primary_click"},
				SecondaryCta: Cta{Label: "계정 만들기", Href: "#services", EventID: "account_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "활성 회원", Value: "120K+"},
					{Label: "평균 절감", Value: "22%"},
					{Label: "응답 속도", Value: "<30초"},
				},
			},
		},
	},
}

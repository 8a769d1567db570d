package i18n

var ja = Translation{
	LanguageName: "日本語",
	Navigation: Navigation{
		Home:     "ホーム",
		Storage:  "寄預かり",
		Delivery: "転送",
		Partner:  "パートナー",
		Account:  "アカウント",
	},
	Footer: Footer{
		About:        "Lockerlink について",
		Contact:      "お問い合わせ",
		Privacy:      "プライバシーポリシー",
		Terms:        "利用規約",
		Partner:      "パートナー募集",
		Rights:       "© 2024 Lockerlink. All rights reserved.",
		ContactPhone: "+81 3 1234 5678",
		ContactMail:  "jp@lockerlink.com",
	},
	PartnerHighlight: PartnerHighlight{
		Title:    "遊休スペースで新収益を",
		Subtitle: "ホテル・商業施設・交通ハブが Lockerlink を信頼して数日で導入。",
		Cta:      "パートナーになる",
	},
	Common: Common{
		FeatureSection: &FeatureSection{
			Title:    "荷物の自由を叶えるワンプラットフォーム",
			Subtitle: "ロッカー、荷物転送、コンシェルジュ連携まで同じ上質な体験で提供します。",
			Cards: []FeatureCard{
				{
					ID:          "locker",
					Title:       "スマートロッカー",
					Description: "主要スポットに24時間設置。温度管理と監視カメラ、モバイル解錠に対応。",
					LinkLabel:   "ロッカーを確認",
					Icon:        "lock",
				},
				{
					ID:          "transfer",
					Title:       "当日荷物転送",
					Description: "空港・ホテル・自宅をつなぐドアツードア配送。保険付きで安心です。",
					LinkLabel:   "転送を計画",
					Icon:        "route",
				},
				{
					ID:          "concierge",
					Title:       "ホテルコンシェルジュネットワーク",
					Description: "認定パートナーが全てのゲストに寄存と転送サービスを提供します。",
					LinkLabel:   "パートナーの強み",
					Icon:        "hotel",
				},
			},
		},
		SearchSection: &SearchSection{
			Title:               "都市で空き状況を検索",
			LocationLabel:       "都市またはランドマーク",
			LocationPlaceholder: "例：上海タワー、渋谷、明洞…",
			DateLabel:           "預け日",
			ActionLabel:         "検索",
		},
		MapSection: &MapSection{
			Title:        "都市を自由に楽しむためのカバレッジ",
			Subtitle:     "都市をタップして主要スポットをプレビュー。",
			Callout:      "マーカーはすべて認定された Lockerlink 拠点です。",
			ExploreLabel: "都市ガイドを見る",
			Cities: []MapCity{
				{
					ID:          "shanghai",
					Name:        "上海",
					Headline:    "外灘から浦東まで地下鉄2号線をカバー",
					Description: "主要駅、ビジネス街、ディズニーにロッカーを配置し、予定に柔軟に対応。",
					Highlight:   "豆知識：南京路のロッカーは午前10時までに埋まることが多いので要予約。",
				},
				{
					ID:          "tokyo",
					Name:        "東京",
					Headline:    "山手線エリアをシームレスに移動",
					Description: "新宿・銀座のコンシェルジュが早着・遅発のゲストをサポート。",
					Highlight:   "自動転送を有効にすると荷物がホテルロビーに直接届きます。",
				},
				{
					ID:          "seoul",
					Name:        "ソウル",
					Headline:    "弘大の夜も手ぶらで満喫",
					Description: "市場周辺で預けている間に、宅配が仁川空港や宿泊先へお届け。",
					Highlight:   "特急転送は平均90分で完了します。",
				},
			},
		},
		HowItWorks: &HowItWorks{
			Title:    "Lockerlink の使い方",
			Subtitle: "3ステップで軽やかな旅を実現。",
			Footnote: "すべての予約に保険・遅延保証・24時間サポートが含まれます。",
			Steps: []HowItWorksStep{
				{
					ID:          "search",
					Title:       "検索して選択",
					Description: "旅程に合わせて最適なロッカーサイズや転送枠を選びます。",
				},
				{
					ID:          "confirm",
					Title:       "確認と支払い",
					Description: "Apple Pay、クレジットカードなどで決済し、解錠コードを即時受け取ります。",
				},
				{
					ID:          "enjoy",
					Title:       "預けて楽しむ",
					Description: "数秒で解錠、もしくは宅配に引き渡し、旅に集中できます。",
				},
			},
		},
		Testimonials: &Testimonials{
			Title:    "旅人とパートナーに信頼されています",
			Subtitle: "毎週 Lockerlink に頼る人々の声。",
			Entries: []Testimonial{
				{
					ID:       "emma",
					Name:     "佐藤エマ",
					Role:     "プロダクトデザイナー",
					Location: "日本・東京",
					Quote:    "駅近くで荷物を預け、コーヒー片手にすぐ街歩きを始められます。",
					Rating:   5,
				},
				{
					ID:       "li-wei",
					Name:     "李偉",
					Role:     "ホテル運営責任者",
					Location: "中国・上海",
					Quote:    "ピーク時でもロビーが落ち着いており、お客様の満足度も高まっています。",
					Rating:   5,
				},
				{
					ID:       "minji",
					Name:     "ミンジ・パク",
					Role:     "トラベルブロガー",
					Location: "韓国・ソウル",
					Quote:    "荷物を宅配に預ければ、撮影に集中できて手ぶらで動けます。",
					Rating:   5,
				},
			},
		},
		PartnerBanner: &PartnerBanner{
			Title:        "Lockerlink で新たな収益を",
			Subtitle:     "ホテル・商業施設・交通ハブが数日でスマートロッカーを導入できます。",
			PrimaryCta:   Cta{Label: "チームへ相談", Href: "/partner"},
			SecondaryCta: Cta{Label: "パートナー資料を入手", Href: "#download-partner-kit"},
		},
	},
	Pages: map[PageID]PageContent{
		PageHome: {
			Meta: Meta{
				Title:       "Lockerlink | 軽やかに旅し、スマートに預ける",
				Description: "アジア主要都市で利用できるラゲッジストレージと転送サービス。スマートロッカーと保険付き配送で安心。",
			},
			Hero: HeroContent{
				Eyebrow:      "Lockerlink",
				Title:        "荷物は軽く、旅はもっと自由に",
				Subtitle:     "1分以内で寄預かりや転送を予約。",
				Description:  "スマートロッカー、保険付き宅配、提携ホテルが旅を支えます。",
				PrimaryCta:   Cta{Label: "寄預かりを予約", Href: "/storage", EventID: "home_store_click"},
				SecondaryCta: Cta{Label: "転送を手配", Href: "/delivery", EventID: "home_transfer_click"},
				Highlights: []HeroHighlight{
					{Label: "対応都市", Value: "36"},
					{Label: "平均手続き", Value: "45秒"},
					{Label: "評価", Value: "4.9 / 5"},
				},
			},
		},
		PageStorage: {
			Meta: Meta{
				Title:       "Lockerlink ストレージ | スマートロッカー",
				Description: "24時間利用可能な非接触ロッカー。監視と保険付きで安心して預けられます。",
			},
			Hero: HeroContent{
				Eyebrow:      "ストレージ",
				Title:        "どこへ到着してもすぐに預ける",
				Subtitle:     "サイズを選び、ワンタップで解錠、遠隔延長も可能。",
				Description:  "24時間体制の監視と旅行者向け保険が標準搭載。",
				PrimaryCta:   Cta{Label: "ロッカーを探す", Href: "#locker-search", EventID: "storage_primary_click"},
				SecondaryCta: Cta{Label: "料金を見る", Href: "#services", EventID: "storage_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "平均解錠", Value: "12秒"},
					{Label: "保険補償", Value: "¥5,000"},
					{Label: "稼働率", Value: "99.8%"},
				},
			},
		},
		PageDelivery: {
			Meta: Meta{
				Title:       "Lockerlink デリバリー | 安心の荷物転送",
				Description: "ライブトラッキングと保険付きの宅配で、空港・ホテル・自宅をシームレスにつなぎます。",
			},
			Hero: HeroContent{
				Eyebrow:      "デリバリー",
				Title:        "荷物は移動を担当、あなたは瞬間を楽しむ",
				Subtitle:     "ライブ追跡と保険付きの宅配を予約。",
				Description:  "都市内の空港、ホテル、自宅間でスムーズに受け渡しが可能です。",
				PrimaryCta:   Cta{Label: "転送を予約", Href: "#locker-search", EventID: "delivery_primary_click"},
				SecondaryCta: Cta{Label: "ルートを見る", Href: "#map", EventID: "delivery_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "保証時間", Value: "60分"},
					{Label: "宅配パートナー", Value: "480+"},
					{Label: "準時率", Value: "99.6%"},
				},
			},
		},
		PagePartner: {
			Meta: Meta{
				Title:       "Lockerlink パートナー | 空きスペースの価値化",
				Description: "ホテルや商業施設、駅が Lockerlink で収益と顧客満足度を同時に向上。",
			},
			Hero: HeroContent{
				Eyebrow:      "パートナー",
				Title:        "空きスペースを特別なサービスへ",
				Subtitle:     "ホテル・商業施設・駅がゲスト満足度と収益を高めています。",
				Description:  "ロッカー設置、スタッフ研修、分析ツールまで数日で導入完了。",
				PrimaryCta:   Cta{Label: "相談を予約", Href: "#partner-banner", EventID: "partner_primary_click"},
				SecondaryCta: Cta{Label: "事例を見る", Href: "#testimonials", EventID: "partner_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "売上増", Value: "+28%"},
					{Label: "導入期間", Value: "72時間"},
					{Label: "NPS向上", Value: "+18"},
				},
			},
		},
		PageAccount: {
			Meta: Meta{
				Title:       "Lockerlink アカウント | 予約を一括管理",
				Description: "ロッカー延長、転送追跡、同行者共有、特典管理までワンアカウントで完結。",
			},
			Hero: HeroContent{
				Eyebrow:      "アカウント",
				Title:        "ロッカーも転送も1つのダッシュボードで",
				Subtitle:     "予約延長、アクセス共有、リアルタイム通知を実現。",
				Description:  "旅人もアシスタントも家族も、Lockerlink がデバイスをまたいで連携します。",
				PrimaryCta:   Cta{Label: "ログイン", Href: "#locker-search", EventID: "account_primary_click"},
				SecondaryCta: Cta{Label: "アカウント作成", Href: "#services", EventID: "account_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "アクティブ会員", Value: "120K+"},
					{Label: "平均節約", Value: "22%"},
					{Label: "サポート応答", Value: "<30秒"},
				},
			},
		},
	},
}

package i18n

var zh = Translation{
	LanguageName: "简体中文",
	Navigation: Navigation{
		Home:     "首页",
		Storage:  "存包服务",
		Delivery: "转运服务",
		Partner:  "合作伙伴",
		Account:  "我的账户",
	},
	Footer: Footer{
		About:        "关于 Lockerlink",
		Contact:      "联系我们",
		Privacy:      "隐私政策",
		Terms:        "使用条款",
		Partner:      "我要合作",
		Rights:       "© 2024 Lockerlink. 保留所有权利。",
		ContactPhone: "400-666-8888",
		ContactMail:  "support@lockerlink.com",
	},
	PartnerHighlight: PartnerHighlight{
		Title:    "让闲置空间产生新收入",
		Subtitle: "酒店、商场与交通枢纽信任 Lockerlink，几天内即可完成数字化升级。",
		Cta:      "申请合作",
	},
	Common: Common{
		FeatureSection: &FeatureSection{
			Title:    "一站式行李自由平台",
			Subtitle: "同样极致的体验，囊括寄存柜、行李转运与礼宾合作服务。",
			Cards: []FeatureCard{
				{
					ID:          "locker",
					Title:       "智能寄存柜",
					Description: "地标旁 24 小时可取，恒温、防护与手机秒开一应俱全。",
					LinkLabel:   "了解寄存服务",
					Icon:        "lock",
				},
				{
					ID:          "transfer",
					Title:       "当日行李转运",
					Description: "机场、酒店、民宿之间的门到门配送，全程保险守护。",
					LinkLabel:   "规划转运",
					Icon:        "route",
				},
				{
					ID:          "concierge",
					Title:       "酒店礼宾网络",
					Description: "认证合作伙伴将寄存与转运延伸到每一位客人，指引清晰。",
					LinkLabel:   "合作亮点",
					Icon:        "hotel",
				},
			},
		},
		SearchSection: &SearchSection{
			Title:               "在所在城市快速查找",
			LocationLabel:       "城市或地标",
			LocationPlaceholder: "试试 上海外滩、涩谷站、明洞…",
			DateLabel:           "寄存日期",
			ActionLabel:         "搜索",
		},
		MapSection: &MapSection{
			Title:        "覆盖高频旅途动线",
			Subtitle:     "点击城市即可预览核心站点。",
			Callout:      "每一个标记点都是经过认证的 Lockerlink 服务点。",
			ExploreLabel: "查看城市指南",
			Cities: []MapCity{
				{
					ID:          "shanghai",
					Name:        "上海",
					Headline:    "2 号线贯通外滩与浦东",
					Description: "地铁枢纽、商务区与迪士尼均设寄存柜，行程更灵活。",
					Highlight:   "提示：南京路步行街点位常在上午 10 点前售罄，请提前预订。",
				},
				{
					ID:          "tokyo",
					Name:        "东京",
					Headline:    "山手线沿线无缝衔接",
					Description: "新宿与银座礼宾合作点，轻松应对早到晚走的旅客。",
					Highlight:   "开启自动转运，行李可直送酒店大堂。",
				},
				{
					ID:          "seoul",
					Name:        "首尔",
					Headline:    "弘大夜生活也能轻松享受",
					Description: "夜市附近寄存，骑手即可送往仁川机场或下榻住所。",
					Highlight:   "加急转运平均 90 分钟完成。",
				},
			},
		},
		HowItWorks: &HowItWorks{
			Title:    "Lockerlink 如何运作",
			Subtitle: "三步即可享受轻装旅程。",
			Footnote: "每笔订单均含保险、延误保障与 24 小时客服。",
			Steps: []HowItWorksStep{
				{
					ID:          "search",
					Title:       "搜索并选择",
					Description: "根据行程选择合适的寄存柜或转运时段。",
				},
				{
					ID:          "confirm",
					Title:       "确认并支付",
					Description: "支持 Apple Pay、支付宝或银行卡，即刻获取开箱码。",
				},
				{
					ID:          "enjoy",
					Title:       "轻松寄存与追踪",
					Description: "几秒完成寄存或交接行李，旅途中时刻掌握动态。",
				},
			},
		},
		Testimonials: &Testimonials{
			Title:    "旅客与合作伙伴的共同信赖",
			Subtitle: "真实故事来自每周使用 Lockerlink 的人们。",
			Entries: []Testimonial{
				{
					ID:       "emma",
					Name:     "佐藤惠美",
					Role:     "产品设计师",
					Location: "日本 东京",
					Quote:    "落地后把行李寄存在车站旁，拿着咖啡就能直接开启探索。",
					Rating:   5,
				},
				{
					ID:       "li-wei",
					Name:     "李伟",
					Role:     "酒店运营负责人",
					Location: "中国 上海",
					Quote:    "Lockerlink 让我们即便在高峰时段也能保持大堂井然有序。",
					Rating:   5,
				},
				{
					ID:       "minji",
					Name:     "朴敏智",
					Role:     "旅行博主",
					Location: "韩国 首尔",
					Quote:    "把行李交给骑手后，我就能安心拍摄内容，彻底解放双手。",
					Rating:   5,
				},
			},
		},
		PartnerBanner: &PartnerBanner{
			Title:        "用 Lockerlink 解锁新收益",
			Subtitle:     "我们的团队帮助酒店、商场与交通枢纽在数日内落地智能寄存。",
			PrimaryCta:   Cta{Label: "联系团队", Href: "/partner"},
			SecondaryCta: Cta{Label: "下载合作资料", Href: "#download-partner-kit"},
		},
	},
	Pages: map[PageID]PageContent{
		PageHome: {
			Meta: Meta{
				Title:       "Lockerlink | 轻装上阵 智慧寄存",
				Description: "Lockerlink 覆盖亚洲核心城市，提供智能寄存与转运服务，轻松预订，全程可视化保障。",
			},
			Hero: HeroContent{
				Eyebrow:      "Lockerlink",
				Title:        "轻装上阵，智慧出行",
				Subtitle:     "一分钟内完成寄存或转运预订。",
				Description:  "智能寄存柜、保险骑手与合作酒店让每段旅程更轻松。",
				PrimaryCta:   Cta{Label: "立即寄存", Href: "/storage", EventID: "home_store_click"},
				SecondaryCta: Cta{Label: "预约转运", Href: "/delivery", EventID: "home_transfer_click"},
				Highlights: []HeroHighlight{
					{Label: "覆盖城市", Value: "36"},
					{Label: "平均办理", Value: "45 秒"},
					{Label: "用户评分", Value: "4.9 / 5"},
				},
			},
		},
		PageStorage: {
			Meta: Meta{
				Title:       "Lockerlink 寄存服务 | 智能寄存柜",
				Description: "恒温防护、监控保障、随时延长时长，Lockerlink 寄存让旅途更自由。",
			},
			Hero: HeroContent{
				Eyebrow:      "寄存服务",
				Title:        "随落地随寄存",
				Subtitle:     "挑选合适规格，扫码秒开，随时延长。",
				Description:  "24 小时运营、实时监控与旅客专属保险全面守护。",
				PrimaryCta:   Cta{Label: "查找寄存点", Href: "#locker-search", EventID: "storage_primary_click"},
				SecondaryCta: Cta{Label: "查看价格", Href: "#services", EventID: "storage_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "平均开箱", Value: "12 秒"},
					{Label: "保险额度", Value: "¥5,000"},
					{Label: "设备在线", Value: "99.8%"},
				},
			},
		},
		PageDelivery: {
			Meta: Meta{
				Title:       "Lockerlink 转运服务 | 门到门行李配送",
				Description: "实时追踪、保险保障与灵活改派，行李转运交给 Lockerlink。",
			},
			Hero: HeroContent{
				Eyebrow:      "转运服务",
				Title:        "让行李跑远路，你专注精彩瞬间",
				Subtitle:     "预约门到门转运，实时追踪并由保险骑手护航。",
				Description:  "覆盖机场、酒店与住所的无缝交接，轻松规划。",
				PrimaryCta:   Cta{Label: "安排转运", Href: "#locker-search", EventID: "delivery_primary_click"},
				SecondaryCta: Cta{Label: "查看线路", Href: "#map", EventID: "delivery_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "承诺时窗", Value: "60 分钟"},
					{Label: "合作骑手", Value: "480+"},
					{Label: "准点率", Value: "99.6%"},
				},
			},
		},
		PagePartner: {
			Meta: Meta{
				Title:       "Lockerlink 合作伙伴 | 空间增值方案",
				Description: "酒店、商场与交通枢纽借助 Lockerlink 快速上线智能寄存服务，实现收益与口碑双提升。",
			},
			Hero: HeroContent{
				Eyebrow:      "合作伙伴",
				Title:        "让闲置空间成为明星服务",
				Subtitle:     "加入正在提升客户满意度与收入的酒店、商场与车站。",
				Description:  "Lockerlink 负责设备安装、人员培训与数据分析，数日即可上线。",
				PrimaryCta:   Cta{Label: "预约顾问", Href: "#partner-banner", EventID: "partner_primary_click"},
				SecondaryCta: Cta{Label: "查看案例", Href: "#testimonials", EventID: "partner_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "营收提升", Value: "+28%"},
					{Label: "上线速度", Value: "72 小时"},
					{Label: "NPS 提升", Value: "+18"},
				},
			},
		},
		PageAccount: {
			Meta: Meta{
				Title:       "Lockerlink 账户 | 管理全部预订",
				Description: "延长寄存、追踪转运、邀请同行与享受会员福利，一切在一个账户完成。",
			},
			Hero: HeroContent{
				Eyebrow:      "我的账户",
				Title:        "所有寄存与转运，一目了然",
				Subtitle:     "实时延长预订、共享权限并接收即时提醒。",
				Description:  "Lockerlink 让旅客、助理与家人跨设备无缝协作。",
				PrimaryCta:   Cta{Label: "登录", Href: "#locker-search", EventID: "account_primary_click"},
				SecondaryCta: Cta{Label: "创建账户", Href: "#services", EventID: "account_secondary_click"},
				Highlights: []HeroHighlight{
					{Label: "活跃会员", Value: "120K+"},
					{Label: "平均节省", Value: "22%"},
					{Label: "客服响应", Value: "<30 秒"},
				},
			},
		},
	},
}

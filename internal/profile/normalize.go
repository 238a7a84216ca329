package profile

// Normalize приводит сырой ответ maxframe API к каноническому профилю.
// Возвращает nil, если канала нет в базе: у записи без имени и без
// подписчиков сервису нечего показать. Порядок источников в цепочках
// приоритетов фиксирован — источники расходятся между собой, и порядок
// кодирует степень доверия.
func Normalize(data *Payload) *ChannelProfile {
	if data == nil {
		return nil
	}

	info := data.ChannelInfo
	if info == nil {
		info = &ChannelInfo{}
	}
	metrics := data.Metrics
	if metrics == nil {
		metrics = &PublicationsMetrics{}
	}
	ads := data.AdsData
	if ads == nil {
		ads = &AdsData{}
	}
	extra := data.ExtraData
	if extra == nil {
		extra = &ExtraChannelData{}
	}

	// Последняя запись истории — запасной источник актуальных данных
	var latest *HistoryEntry
	if data.HistoryData != nil && len(data.HistoryData.History) > 0 {
		latest = &data.HistoryData.History[len(data.HistoryData.History)-1]
	}

	var latestFollowers int64
	var latestName, latestAvatar string
	if latest != nil {
		latestFollowers = latest.FollowersCnt
		latestName = latest.ChannelName
		latestAvatar = latest.Avatar
	}

	subscribers := firstNonZero(info.Subscribers, info.ParticipantsCount, latestFollowers)
	channelName := firstNonEmpty(info.Title, info.Name, latestName)

	// Пустое имя и отсутствие подписчиков — канала нет в базе
	if channelName == "" && subscribers == nil {
		return nil
	}

	dynamics := Dynamics{}
	if extra.Growth != nil {
		dynamics.Today = ParseGrowth(extra.Growth.H24)
		dynamics.Week = ParseGrowth(extra.Growth.Week)
		dynamics.Month = ParseGrowth(extra.Growth.Month)
	}

	p := &ChannelProfile{
		ChannelID:     info.MaxChannelID,
		ChannelName:   channelName,
		ChannelAvatar: firstNonEmpty(latestAvatar, info.Avatar),
		Description:   info.Description,
		Link:          info.Link,
		Subscribers:   subscribers,
		IsPublic:      info.IsPublic,
		Categories:    categories(info.Category, info.Category2),
		IsSuspicious:  info.IsFraud || info.IsFollowersFraud || info.IsOwnerFraud,
		Dynamics:      dynamics,
		AvgViews:      firstNonZero(metrics.AvgViews1d, metrics.AvgViewsDay),
		Views24h:      firstNonZero(metrics.AvgViews1d),
		Views48h:      firstNonZero(metrics.AvgViews7d),
		ER:            firstNonZeroFloat(extra.ERMetric, info.ER, info.EngagementRate),
		Mentions: Mentions{
			From: firstNonZeroInt(info.MentionsFrom, info.MentionedBy),
			To:   firstNonZeroInt(info.MentionsTo, info.Mentions),
		},
		ChartData: data.HistoryData,
	}

	if ads.Advertisers != nil {
		p.Advertisers = ads.Advertisers.Data
		p.AdvertisersTotal = ads.Advertisers.TotalCount
	}
	if ads.Advertised != nil {
		p.Advertised = ads.Advertised.Data
		p.AdvertisedTotal = ads.Advertised.TotalCount
	}

	return p
}

func categories(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// firstNonZero возвращает первое ненулевое значение; нулевой счётчик из API
// означает "данных нет" и проваливается дальше по цепочке.
func firstNonZero(values ...int64) *int64 {
	for _, v := range values {
		if v != 0 {
			n := v
			return &n
		}
	}
	return nil
}

func firstNonZeroInt(values ...int64) int64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstNonZeroFloat(values ...float64) *float64 {
	for _, v := range values {
		if v != 0 {
			f := v
			return &f
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

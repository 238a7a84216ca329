package profile

// unknownChannelName подпись для рекламной записи без названия.
const unknownChannelName = "Неизвестный канал"

// MapAdvertisers приводит сырые рекламные записи к единому виду.
// Для каждого поля действует цепочка альтернативных имён — берётся первое
// заполненное, полностью пустые поля получают значения по умолчанию.
func MapAdvertisers(raw []AdvertiserRaw) []AdvertiserEntry {
	if len(raw) == 0 {
		return nil
	}

	entries := make([]AdvertiserEntry, 0, len(raw))
	for _, item := range raw {
		// Дата последнего поста — "дд.мм" либо явный прочерк, никогда
		// не пустая строка
		lastPost := "—"
		if !item.DateLastPost.IsZero() {
			lastPost = item.DateLastPost.UTC().Format("02.01")
		}

		posts := firstNonZeroInt(item.CntPub, item.PostsCount, item.Posts)
		if posts == 0 {
			posts = 1
		}

		entries = append(entries, AdvertiserEntry{
			Name:     firstNonEmpty(item.LinkedTitle, item.Title, item.Name, unknownChannelName),
			Avatar:   firstNonEmpty(item.LinkedAvatar, item.Avatar),
			Posts:    posts,
			Subs:     firstNonZeroInt(item.LinkedFollowersCnt, item.Subscribers, item.Subs),
			LastPost: lastPost,
			Link:     firstNonEmpty(item.LinkedLink, item.Link),
			IsFraud:  item.IsFraud,
		})
	}

	return entries
}

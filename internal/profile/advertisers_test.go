package profile

import "testing"

func TestMapAdvertisersDefaults(t *testing.T) {
	entries := MapAdvertisers([]AdvertiserRaw{{}})
	if len(entries) != 1 {
		t.Fatalf("записей: %d, want 1", len(entries))
	}

	e := entries[0]
	if e.Name != "Неизвестный канал" {
		t.Errorf("Name = %q, want %q", e.Name, "Неизвестный канал")
	}
	if e.LastPost != "—" {
		t.Errorf("LastPost = %q, want прочерк, не пустую строку", e.LastPost)
	}
	if e.Posts != 1 {
		t.Errorf("Posts = %d, want 1", e.Posts)
	}
	if e.Subs != 0 {
		t.Errorf("Subs = %d, want 0", e.Subs)
	}
	if e.IsFraud {
		t.Error("IsFraud = true, want false")
	}
}

func TestMapAdvertisersFieldPriority(t *testing.T) {
	entries := MapAdvertisers([]AdvertiserRaw{{
		LinkedTitle:        "Связанный",
		Title:              "Обычный",
		LinkedFollowersCnt: 1000,
		Subscribers:        500,
		CntPub:             3,
		Posts:              9,
		DateLastPost:       ts(2026, 8, 5),
		LinkedLink:         "https://example.com/a",
		Link:               "https://example.com/b",
	}})

	e := entries[0]
	if e.Name != "Связанный" {
		t.Errorf("Name = %q, want %q", e.Name, "Связанный")
	}
	if e.Subs != 1000 {
		t.Errorf("Subs = %d, want 1000", e.Subs)
	}
	if e.Posts != 3 {
		t.Errorf("Posts = %d, want 3", e.Posts)
	}
	if e.LastPost != "05.08" {
		t.Errorf("LastPost = %q, want %q", e.LastPost, "05.08")
	}
	if e.Link != "https://example.com/a" {
		t.Errorf("Link = %q, want приоритет linked_link", e.Link)
	}
}

func TestMapAdvertisersEmpty(t *testing.T) {
	if got := MapAdvertisers(nil); got != nil {
		t.Errorf("MapAdvertisers(nil) = %v, want nil", got)
	}
	if got := MapAdvertisers([]AdvertiserRaw{}); got != nil {
		t.Errorf("MapAdvertisers([]) = %v, want nil", got)
	}
}

package goquery

import (
	"strings"

	"github.com/kitanime/animedex"
)

// listingBlobSelector matches the item elements of an ongoing or
// complete listing. The matched elements are serialized into a blob and
// re-parsed, so the same item scrapers work on a full page and on the
// front page's per-section slices.
const listingBlobSelector = ".venutama .rseries .rapi .venz ul li"

// ScrapeOngoing extracts ongoing-listing items from a serialized item
// blob. The .epztipe badge carries the weekly release day on ongoing
// templates.
func ScrapeOngoing(markup string) []animedex.ListingItem {
	return scrapeItems(markup, func(card *Document, item *animedex.ListingItem) {
		item.ReleaseDay = strings.TrimSpace(card.First(".epztipe").Text())
	})
}

// ScrapeComplete extracts complete-listing items from a serialized item
// blob. The .epztipe badge carries the rating on complete templates.
func ScrapeComplete(markup string) []animedex.ListingItem {
	return scrapeItems(markup, func(card *Document, item *animedex.ListingItem) {
		item.Rating = strings.TrimSpace(card.First(".epztipe").Text())
	})
}

// scrapeItems walks the item elements of a listing blob. A malformed
// item yields partial fields rather than aborting the list.
func scrapeItems(markup string, mapBadge func(*Document, *animedex.ListingItem)) []animedex.ListingItem {
	var items []animedex.ListingItem
	for _, card := range Load(markup).Select("li") {
		url := card.First(".thumb a").Attr("href")
		item := animedex.ListingItem{
			Title:       strings.TrimSpace(card.First(".jdlflm").Text()),
			Poster:      card.First(".thumbz img").Attr("src"),
			Episode:     strings.TrimSpace(card.First(".epz").Text()),
			ReleaseDate: strings.TrimSpace(card.First(".newnime").Text()),
			URL:         url,
		}
		if slug := animedex.Slug(url); slug != url {
			item.Slug = slug
		}
		mapBadge(card, &item)
		items = append(items, item)
	}
	return items
}

// ScrapeHome splits the front page into its ongoing and complete
// sections. The sections are the first and last .rapi containers; a
// page with a single container feeds both lists, matching the source
// template's degenerate case.
func ScrapeHome(markup string) *animedex.Home {
	d := Load(markup)
	sections := d.Select(".venutama .rseries .rapi")

	home := &animedex.Home{}
	if len(sections) == 0 {
		return home
	}
	home.Ongoing = ScrapeOngoing(sectionBlob(sections[0]))
	home.Complete = ScrapeComplete(sectionBlob(sections[len(sections)-1]))
	return home
}

func sectionBlob(section *Document) string {
	return concat(section.Select(".venz ul li"))
}

// ScrapeOngoingPage extracts one paginated ongoing-listing page.
func ScrapeOngoingPage(markup string) *animedex.ListingPage {
	d := Load(markup)
	return &animedex.ListingPage{
		Pagination: ScrapePagination(markup),
		Items:      ScrapeOngoing(concat(d.Select(listingBlobSelector))),
	}
}

// ScrapeCompletePage extracts one paginated complete-listing page.
func ScrapeCompletePage(markup string) *animedex.ListingPage {
	d := Load(markup)
	return &animedex.ListingPage{
		Pagination: ScrapePagination(markup),
		Items:      ScrapeComplete(concat(d.Select(listingBlobSelector))),
	}
}

// ScrapeGenreAnime extracts one page of a genre-filtered listing. Genre
// pages use the column-card template rather than the .venz items.
func ScrapeGenreAnime(markup string) *animedex.ListingPage {
	d := Load(markup)

	var items []animedex.ListingItem
	for _, card := range d.Select(".col-anime") {
		url := card.First(".col-anime-title a").Attr("href")
		item := animedex.ListingItem{
			Title:       strings.TrimSpace(card.First(".col-anime-title a").Text()),
			Poster:      card.First(".col-anime-cover img").Attr("src"),
			Episode:     strings.TrimSpace(card.First(".col-anime-eps").Text()),
			Rating:      strings.TrimSpace(card.First(".col-anime-rating").Text()),
			ReleaseDate: strings.TrimSpace(card.First(".col-anime-date").Text()),
			URL:         url,
		}
		if slug := animedex.Slug(url); slug != url {
			item.Slug = slug
		}
		items = append(items, item)
	}

	return &animedex.ListingPage{
		Pagination: ScrapePagination(markup),
		Items:      items,
	}
}

package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopgrep"
)

// CardConfig defines the CSS selectors for one storefront's product cards.
// Card locates the repeated result container; the remaining selectors are
// evaluated relative to each card. Empty selectors are skipped.
type CardConfig struct {
	Card         string
	Title        string
	Price        string
	Rating       string
	Discount     string
	Availability string
	Link         string
	Image        string
}

// SelectProductsWithConfig extracts products from listing HTML using the
// provided card configuration. Cards without a usable title are skipped,
// implausible prices are dropped, duplicates collapse first-seen, and the
// query's price and keyword gates are applied.
func SelectProductsWithConfig(html string, query shopgrep.Query, cfg CardConfig) ([]*shopgrep.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, shopgrep.Errorf(shopgrep.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var products []*shopgrep.Product

	doc.Find(cfg.Card).Each(func(i int, card *goquery.Selection) {
		title := collapseText(card.Find(cfg.Title).First().Text())
		if len(strings.Fields(title)) < shopgrep.MinTitleTokens {
			return
		}

		p := &shopgrep.Product{
			Title:    title,
			Position: i,
		}

		if cfg.Price != "" {
			p.Price = parsePrice(card.Find(cfg.Price).First().Text())
		}
		if cfg.Rating != "" {
			p.Rating = collapseText(card.Find(cfg.Rating).First().Text())
		}
		if cfg.Discount != "" {
			p.Discount = collapseText(card.Find(cfg.Discount).First().Text())
		}
		if cfg.Availability != "" {
			p.Availability = collapseText(card.Find(cfg.Availability).First().Text())
		}
		if cfg.Link != "" {
			if href, exists := card.Find(cfg.Link).First().Attr("href"); exists {
				p.Link = strings.TrimSpace(href)
			}
		}
		if cfg.Image != "" {
			img := card.Find(cfg.Image).First()
			if src, exists := img.Attr("src"); exists {
				p.Image = strings.TrimSpace(src)
			} else if src, exists := img.Attr("data-src"); exists {
				p.Image = strings.TrimSpace(src)
			}
		}

		if !query.AllowsPrice(p.Price) || !query.MatchesTitle(p.Title) {
			return
		}

		key := p.Key()
		if seen[key] {
			return
		}
		seen[key] = true
		products = append(products, p)
	})

	return products, nil
}

// priceDigitsRe matches the integer part of a displayed price. A decimal
// point terminates the match, so "₹12,999.00" yields "12,999".
var priceDigitsRe = regexp.MustCompile(`\d[\d,]*`)

// parsePrice extracts a whole-currency price from displayed text.
// Returns nil when no plausible price is present.
func parsePrice(text string) *int {
	m := priceDigitsRe.FindString(text)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return nil
	}
	if n < shopgrep.PriceMin || n > shopgrep.PriceMax {
		return nil
	}
	return shopgrep.PriceOf(n)
}

// collapseText trims a selection's text and collapses internal whitespace.
func collapseText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

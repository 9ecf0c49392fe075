package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopgrep"
)

var _ shopgrep.ProductSelector = (*GenericSelector)(nil)

// maxPriceClimb is how many ancestor levels the generic selector searches
// for a price near a candidate anchor.
const maxPriceClimb = 3

// GenericSelector extracts products from listing pages without relying on
// storefront-specific markup. It treats every anchor with a title-like
// text as a candidate and looks for a price in the anchor's nearest
// ancestors, which is how most product cards are laid out regardless of
// class naming.
type GenericSelector struct{}

// NewGenericSelector creates a new GenericSelector.
func NewGenericSelector() *GenericSelector {
	return &GenericSelector{}
}

// Name returns the selector's identifier.
func (s *GenericSelector) Name() string {
	return "generic"
}

// SelectProducts parses listing HTML and returns products passing the
// query gate, deduplicated first-seen.
func (s *GenericSelector) SelectProducts(html string, query shopgrep.Query) ([]*shopgrep.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, shopgrep.Errorf(shopgrep.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var products []*shopgrep.Product

	doc.Find("a[href]").Each(func(i int, anchor *goquery.Selection) {
		title := collapseText(anchor.Text())
		if len(strings.Fields(title)) < shopgrep.MinTitleTokens {
			return
		}

		href, _ := anchor.Attr("href")
		if isNonHTTPLink(href) {
			return
		}

		p := &shopgrep.Product{
			Title:    title,
			Link:     strings.TrimSpace(href),
			Position: i,
			Price:    nearbyPrice(anchor),
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

// nearbyPrice searches the anchor's ancestors for displayed price text.
// The anchor's own text is excluded so a price inside the link itself
// still counts via the parent's combined text.
func nearbyPrice(anchor *goquery.Selection) *int {
	node := anchor.Parent()
	for range maxPriceClimb {
		if node.Length() == 0 {
			return nil
		}
		if p := parsePriceToken(node.Text()); p != nil {
			return p
		}
		node = node.Parent()
	}
	return nil
}

// parsePriceToken parses a price only when it carries a currency marker,
// so review counts and model numbers in surrounding text do not register.
func parsePriceToken(text string) *int {
	m := currencyPriceRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return parsePrice(m[1])
}

package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/shopgrep"
	"golang.org/x/sync/errgroup"
)

// batchSeparator joins block texts inside one model request. The model is
// told each item is delimited by it.
const batchSeparator = "\n\n-----\n\n"

// runBatches packs price-bearing blocks into batches, dispatches them to
// the generator concurrently, and unions the surviving candidates in
// batch order. It returns the candidates plus the attempted and failed
// batch counts.
//
// A failed batch (transport error, rate limit, unparseable response)
// contributes zero candidates and never aborts its siblings, which is why
// this uses a plain errgroup rather than errgroup.WithContext.
func (p *Pipeline) runBatches(ctx context.Context, blocks []Block, query shopgrep.Query) ([]*shopgrep.Product, int, int) {
	if p.Generator == nil {
		return nil, 0, 0
	}

	batches := packBatches(blocks, p.batchCharBudget())
	if len(batches) == 0 {
		return nil, 0, 0
	}

	results := make([][]*shopgrep.Product, len(batches))
	failures := make([]bool, len(batches))

	g := new(errgroup.Group)
	g.SetLimit(p.concurrency())
	for i, batch := range batches {
		g.Go(func() error {
			products, err := p.extractBatch(ctx, batch, query)
			if err != nil {
				failures[i] = true
				return nil
			}
			results[i] = products
			return nil
		})
	}
	_ = g.Wait()

	var candidates []*shopgrep.Product
	failed := 0
	for i := range batches {
		if failures[i] {
			failed++
			continue
		}
		candidates = append(candidates, results[i]...)
	}
	return candidates, len(batches), failed
}

func (p *Pipeline) extractBatch(ctx context.Context, batch []Block, query shopgrep.Query) ([]*shopgrep.Product, error) {
	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx); err != nil {
			return nil, shopgrep.Errorf(shopgrep.EUNAVAILABLE, "rate limit wait: %v", err)
		}
	}

	resp, err := p.Generator.Generate(ctx, BuildPrompt(batch, query), shopgrep.GenerateOptions{
		Temperature:   p.temperature(),
		ContextBudget: p.batchCharBudget(),
	})
	if err != nil {
		return nil, err
	}

	products, err := ParseProducts(resp)
	if err != nil {
		return nil, err
	}

	// Keyword relevance applies per object here; the rest of the final
	// filtering waits for Finalize so both strategies share it.
	relevant := products[:0]
	for _, product := range products {
		if query.MatchesTitle(product.Title) {
			relevant = append(relevant, product)
		}
	}
	return relevant, nil
}

// packBatches greedily fills batches with price-bearing blocks up to the
// character budget, preserving document order. A single block over budget
// gets a batch of its own rather than being dropped.
func packBatches(blocks []Block, budget int) [][]Block {
	var batches [][]Block
	var cur []Block
	size := 0

	for _, b := range blocks {
		if !hasContent(b.Text) || !priceTokenRe.MatchString(b.Text) {
			continue
		}
		n := len(b.Text) + len(batchSeparator)
		if len(cur) > 0 && size+n > budget {
			batches = append(batches, cur)
			cur = nil
			size = 0
		}
		cur = append(cur, b)
		size += n
	}
	if len(cur) > 0 {
		batches = append(batches, cur)
	}
	return batches
}

// BuildPrompt renders the extraction instruction for one batch. The
// response contract is a bare JSON array of product objects; the parser
// tolerates prose around the array but nothing else.
func BuildPrompt(batch []Block, query shopgrep.Query) string {
	var sb strings.Builder

	sb.WriteString("Extract every product listed in the text below into a JSON array.\n")
	sb.WriteString("Each array element is an object with these keys:\n")
	sb.WriteString(`  "title" (string, required), "price" (number, omit if absent),` + "\n")
	sb.WriteString(`  "rating" (string), "discounts" (string), "offers" (string),` + "\n")
	sb.WriteString(`  "quantity" (string), "tags" (array of strings),` + "\n")
	sb.WriteString(`  "category_properties" (object of string to string).` + "\n")
	if len(query.Keywords) > 0 {
		sb.WriteString("Only include products relevant to: ")
		sb.WriteString(strings.Join(query.Keywords, ", "))
		sb.WriteString(".\n")
	}
	if query.MaxPrice > query.MinPrice {
		fmt.Fprintf(&sb, "Prefer products priced between %d and %d.\n", query.MinPrice, query.MaxPrice)
	}
	sb.WriteString("Respond with ONLY the JSON array, no prose and no code fences.\n")
	sb.WriteString("Items are separated by \"-----\".\n\n")

	for i, b := range batch {
		if i > 0 {
			sb.WriteString(batchSeparator)
		}
		sb.WriteString(b.Text)
	}

	return sb.String()
}

// ParseProducts decodes a model response into product candidates. It
// first tries the whole trimmed response as a JSON array, then scans for
// the first bracketed span that parses as an array of objects. Responses
// with no such span fail the whole batch.
func ParseProducts(resp string) ([]*shopgrep.Product, error) {
	trimmed := strings.TrimSpace(resp)

	var raw []map[string]any
	if strings.HasPrefix(trimmed, "[") && json.Unmarshal([]byte(trimmed), &raw) == nil {
		return coerceProducts(raw), nil
	}

	span, ok := findArraySpan(trimmed)
	if !ok {
		return nil, shopgrep.Errorf(shopgrep.EINVALID, "no JSON array of objects in model response")
	}
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, shopgrep.Errorf(shopgrep.EINVALID, "model response array does not parse: %v", err)
	}
	return coerceProducts(raw), nil
}

// findArraySpan locates the first balanced [...] span that contains an
// object. Bracket depth is tracked outside JSON strings so quoted
// brackets do not confuse the scan.
func findArraySpan(s string) (string, bool) {
	for start := 0; start < len(s); start++ {
		if s[start] != '[' {
			continue
		}

		depth := 0
		inString := false
		escaped := false
		sawObject := false
		for i := start; i < len(s); i++ {
			c := s[i]
			if inString {
				switch {
				case escaped:
					escaped = false
				case c == '\\':
					escaped = true
				case c == '"':
					inString = false
				}
				continue
			}
			switch c {
			case '"':
				inString = true
			case '{':
				sawObject = true
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					if sawObject && json.Valid([]byte(s[start:i+1])) {
						return s[start : i+1], true
					}
					i = len(s)
				}
			}
		}
	}
	return "", false
}

// coerceProducts converts decoded objects into candidates, tolerating the
// type drift models produce: numeric prices as strings, missing keys,
// mixed-type tag arrays. Objects with no usable title are dropped.
func coerceProducts(raw []map[string]any) []*shopgrep.Product {
	var products []*shopgrep.Product
	for _, obj := range raw {
		title := strings.Join(strings.Fields(asString(obj["title"])), " ")
		if title == "" {
			continue
		}
		products = append(products, &shopgrep.Product{
			Title:      title,
			Price:      coercePrice(obj["price"]),
			Rating:     asString(obj["rating"]),
			Discount:   asString(obj["discounts"]),
			Offers:     asString(obj["offers"]),
			Quantity:   asString(obj["quantity"]),
			Tags:       asStrings(obj["tags"]),
			Properties: asStringMap(obj["category_properties"]),
		})
	}
	return products
}

func coercePrice(v any) *int {
	switch t := v.(type) {
	case float64:
		if n := int(t); n > 0 {
			return &n
		}
	case string:
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, strings.SplitN(t, ".", 2)[0])
		if n, err := strconv.Atoi(digits); err == nil && n > 0 {
			return &n
		}
	}
	return nil
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

func asStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asStringMap(v any) map[string]string {
	obj, ok := v.(map[string]any)
	if !ok || len(obj) == 0 {
		return nil
	}
	out := make(map[string]string, len(obj))
	for k, val := range obj {
		if s := asString(val); s != "" {
			out[k] = s
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

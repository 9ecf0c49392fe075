package extract_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/shopgrep"
	"github.com/fwojciec/shopgrep/extract"
	"github.com/fwojciec/shopgrep/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProducts(t *testing.T) {
	t.Parallel()

	t.Run("parses a bare JSON array", func(t *testing.T) {
		t.Parallel()

		resp := `[{"title": "Widget Pro 128GB", "price": 12999}]`

		products, err := extract.ParseProducts(resp)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Widget Pro 128GB", products[0].Title)
		require.NotNil(t, products[0].Price)
		assert.Equal(t, 12999, *products[0].Price)
	})

	t.Run("recovers an array wrapped in prose and code fences", func(t *testing.T) {
		t.Parallel()

		resp := "Here are the products:\n```json\n[{\"title\": \"Widget Pro 128GB\"}]\n```\nLet me know if you need more."

		products, err := extract.ParseProducts(resp)

		require.NoError(t, err)
		require.Len(t, products, 1)
	})

	t.Run("skips bracketed spans without objects", func(t *testing.T) {
		t.Parallel()

		resp := `The tags were [fast, cheap] overall. Products: [{"title": "Widget Pro 128GB"}]`

		products, err := extract.ParseProducts(resp)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Widget Pro 128GB", products[0].Title)
	})

	t.Run("ignores brackets inside JSON strings", func(t *testing.T) {
		t.Parallel()

		resp := `Sure: [{"title": "Widget [Pro] 128GB ]tricky["}]`

		products, err := extract.ParseProducts(resp)

		require.NoError(t, err)
		require.Len(t, products, 1)
	})

	t.Run("fails when no array exists", func(t *testing.T) {
		t.Parallel()

		_, err := extract.ParseProducts("I could not find any products in the text.")

		require.Error(t, err)
		assert.Equal(t, shopgrep.EINVALID, shopgrep.ErrorCode(err))
	})

	t.Run("coerces string prices and drops untitled objects", func(t *testing.T) {
		t.Parallel()

		resp := `[{"title": "Widget Pro 128GB", "price": "₹12,999.00"}, {"price": 500}, {"title": ""}]`

		products, err := extract.ParseProducts(resp)

		require.NoError(t, err)
		require.Len(t, products, 1)
		require.NotNil(t, products[0].Price)
		assert.Equal(t, 12999, *products[0].Price)
	})

	t.Run("coerces tags and category properties", func(t *testing.T) {
		t.Parallel()

		resp := `[{"title": "Widget Pro 128GB", "tags": ["flagship", 5, "sale"], "category_properties": {"color": "black", "weight": ""}}]`

		products, err := extract.ParseProducts(resp)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, []string{"flagship", "5", "sale"}, products[0].Tags)
		assert.Equal(t, map[string]string{"color": "black"}, products[0].Properties)
	})

	t.Run("empty array is not an error", func(t *testing.T) {
		t.Parallel()

		products, err := extract.ParseProducts("[]")

		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes keywords price range and blocks", func(t *testing.T) {
		t.Parallel()

		batch := []extract.Block{
			{Text: "## Widget Pro 128GB\n₹12,999"},
			{Text: "## Widget Air 64GB\n₹8,499"},
		}
		query := shopgrep.Query{Keywords: []string{"widget", "pro"}, MinPrice: 5000, MaxPrice: 20000}

		prompt := extract.BuildPrompt(batch, query)

		assert.Contains(t, prompt, "widget, pro")
		assert.Contains(t, prompt, "between 5000 and 20000")
		assert.Contains(t, prompt, "Widget Pro 128GB")
		assert.Contains(t, prompt, "Widget Air 64GB")
		assert.Contains(t, prompt, "-----")
	})

	t.Run("omits the keyword clause for open queries", func(t *testing.T) {
		t.Parallel()

		prompt := extract.BuildPrompt([]extract.Block{{Text: "x"}}, shopgrep.Query{})

		assert.NotContains(t, prompt, "relevant to:")
	})
}

func TestPipeline_BatchDispatch(t *testing.T) {
	t.Parallel()

	// Two blocks big enough that a small budget forces separate batches.
	blockA := "## Widget Pro 128GB with fast charging and a premium aluminium unibody design\nRs. 12,999 inclusive of all taxes"
	blockB := "## Widget Air 64GB lightweight edition with an all-day battery backup\nRs. 8,499 inclusive of all taxes"
	query := shopgrep.Query{Keywords: []string{"widget"}, MaxPrice: 100000}

	t.Run("one failed batch does not poison the others", func(t *testing.T) {
		t.Parallel()

		gen := routeGenerator(map[string]response{
			"Widget Pro": {text: `[{"title": "Widget Pro 128GB", "price": 12999}]`},
			"Widget Air": {err: shopgrep.Errorf(shopgrep.EUNAVAILABLE, "model overloaded")},
		})
		p := &extract.Pipeline{Generator: gen, BatchCharBudget: 150}

		var stats shopgrep.Stats
		p.Stats = func(_ *shopgrep.Document, s shopgrep.Stats) { stats = s }

		doc := &shopgrep.Document{Content: blockA + "\n\n" + blockB}
		products, err := p.ExtractProducts(t.Context(), doc, query)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Widget Pro 128GB", products[0].Title)
		assert.Equal(t, 2, stats.ModelBatches)
		assert.Equal(t, 1, stats.FailedBatches)
	})

	t.Run("unparseable response fails only its batch", func(t *testing.T) {
		t.Parallel()

		gen := routeGenerator(map[string]response{
			"Widget Pro": {text: "no products here, sorry"},
			"Widget Air": {text: `[{"title": "Widget Air 64GB Lightweight", "price": 8499}]`},
		})
		p := &extract.Pipeline{Generator: gen, BatchCharBudget: 150}

		products, err := p.ExtractProducts(t.Context(), &shopgrep.Document{Content: blockA + "\n\n" + blockB}, query)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Widget Air 64GB Lightweight", products[0].Title)
	})

	t.Run("drops irrelevant objects per batch", func(t *testing.T) {
		t.Parallel()

		gen := routeGenerator(map[string]response{
			"Widget Pro": {text: `[{"title": "Widget Pro 128GB", "price": 12999}, {"title": "Gadget Basic 32GB Starter", "price": 2999}]`},
		})
		p := &extract.Pipeline{Generator: gen}

		products, err := p.ExtractProducts(t.Context(), &shopgrep.Document{Content: blockA}, query)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Widget Pro 128GB", products[0].Title)
	})
}

type response struct {
	text string
	err  error
}

// routeGenerator answers by prompt substring so batch-order
// nondeterminism cannot flake the tests.
func routeGenerator(responses map[string]response) *mock.Generator {
	return &mock.Generator{GenerateFn: func(_ context.Context, prompt string, _ shopgrep.GenerateOptions) (string, error) {
		for key, r := range responses {
			if strings.Contains(prompt, key) {
				return r.text, r.err
			}
		}
		return "[]", nil
	}}
}

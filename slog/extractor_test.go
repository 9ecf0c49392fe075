package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/shopgrep"
	"github.com/fwojciec/shopgrep/mock"
	sgslog "github.com/fwojciec/shopgrep/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingProductExtractor_ExtractProducts(t *testing.T) {
	t.Parallel()

	t.Run("logs url product count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ProductExtractor{
			ExtractProductsFn: func(ctx context.Context, doc *shopgrep.Document, query shopgrep.Query) ([]*shopgrep.Product, error) {
				return []*shopgrep.Product{{Title: "Widget Pro 128GB"}}, nil
			},
		}

		extractor := sgslog.NewLoggingProductExtractor(inner, logger)
		products, err := extractor.ExtractProducts(context.Background(), &shopgrep.Document{SourceURL: "https://shop.example.com/page/1", Content: "x"}, shopgrep.Query{})

		require.NoError(t, err)
		assert.Len(t, products, 1)
		output := buf.String()
		assert.Contains(t, output, "extract products")
		assert.Contains(t, output, "url=https://shop.example.com/page/1")
		assert.Contains(t, output, "products=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ProductExtractor{
			ExtractProductsFn: func(ctx context.Context, doc *shopgrep.Document, query shopgrep.Query) ([]*shopgrep.Product, error) {
				return nil, shopgrep.Errorf(shopgrep.EINVALID, "bad query")
			},
		}

		extractor := sgslog.NewLoggingProductExtractor(inner, logger)
		_, err := extractor.ExtractProducts(context.Background(), nil, shopgrep.Query{MinPrice: -1})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "bad query")
	})
}

func TestLoggingProductExtractor_ExtractProductsMany(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ProductExtractor{
		ExtractProductsManyFn: func(ctx context.Context, docs []*shopgrep.Document, query shopgrep.Query) ([]*shopgrep.Product, error) {
			return []*shopgrep.Product{{Title: "Widget Pro 128GB"}, {Title: "Widget Air 64GB"}}, nil
		},
	}

	extractor := sgslog.NewLoggingProductExtractor(inner, logger)
	products, err := extractor.ExtractProductsMany(context.Background(), make([]*shopgrep.Document, 3), shopgrep.Query{})

	require.NoError(t, err)
	assert.Len(t, products, 2)
	output := buf.String()
	assert.Contains(t, output, "extract products many")
	assert.Contains(t, output, "documents=3")
	assert.Contains(t, output, "products=2")
}

func TestStatsLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fn := sgslog.StatsLogger(logger)
	fn(&shopgrep.Document{SourceURL: "https://shop.example.com/page/1"}, shopgrep.Stats{
		RawBlocks:      10,
		FilteredBlocks: 4,
		ModelBatches:   2,
		FinalProducts:  3,
	})

	output := buf.String()
	assert.Contains(t, output, "pipeline stats")
	assert.Contains(t, output, "raw_blocks=10")
	assert.Contains(t, output, "filtered_blocks=4")
	assert.Contains(t, output, "model_batches=2")
	assert.Contains(t, output, "final_products=3")
}

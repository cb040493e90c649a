// Package scan drives the per-page number extraction across a whole
// document and selects maxima from the merged results.
package scan

import (
	"context"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/filingscan/internal/model"
	"github.com/sells-group/filingscan/internal/numscan"
)

// pageOutput holds one page's extraction results before the ordered merge.
type pageOutput struct {
	page    int
	base    []model.BaseNumber
	records []model.NumberRecord
}

// Pages runs base and contextual extraction over every page and merges the
// results in ascending page order. Pages are independent, so up to
// concurrency pages are processed in parallel; the merge is single-threaded
// and deterministic. concurrency values below 2 mean sequential processing.
func Pages(ctx context.Context, pages []model.PageText, concurrency int) (*model.ScanResult, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	outputs := make([]pageOutput, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, pt := range pages {
		i, pt := i, pt
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			values := numscan.ExtractLiterals(pt.Text)
			base := make([]model.BaseNumber, 0, len(values))
			for _, v := range values {
				base = append(base, model.BaseNumber{Value: v, Page: pt.Page})
			}

			outputs[i] = pageOutput{
				page:    pt.Page,
				base:    base,
				records: numscan.ScanPage(pt.Text, pt.Page),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "scan: page processing")
	}

	sort.SliceStable(outputs, func(i, j int) bool { return outputs[i].page < outputs[j].page })

	result := &model.ScanResult{
		Pages:     make(model.PageResults, len(pages)),
		PageCount: len(pages),
	}
	for _, out := range outputs {
		result.Base = append(result.Base, out.base...)
		result.Pages[out.page] = out.records
	}

	zap.L().Debug("scan: document processed",
		zap.Int("pages", result.PageCount),
		zap.Int("base_numbers", len(result.Base)),
		zap.Int("contextual_records", result.TotalRecords()),
	)

	return result, nil
}

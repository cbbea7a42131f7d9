// Package ranker applies extraction and scoring to a lead batch and returns
// the batch sorted by descending priority score.
package ranker

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"lead-insights-go/internal/extractor"
	"lead-insights-go/internal/logger"
	"lead-insights-go/internal/scoring"
	"lead-insights-go/internal/types"
)

// DefaultConcurrency bounds parallel model calls to stay inside upstream
// rate limits.
const DefaultConcurrency = 4

type Ranker struct {
	ex          *extractor.Extractor
	concurrency int
	log         *logrus.Entry
}

func New(ex *extractor.Extractor, concurrency int, log *logger.Logger) *Ranker {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Ranker{
		ex:          ex,
		concurrency: concurrency,
		log:         log.WithComponent("ranker"),
	}
}

// Rank extracts and scores every lead, then sorts by score descending. Leads
// are independent, so extraction runs concurrently; each result lands in its
// input slot, and the stable sort keeps input order for equal scores. The
// input slice is not mutated. Duplicate ids pass through untouched.
func (r *Ranker) Rank(ctx context.Context, leads []types.Lead) []types.ScoredLead {
	scored := make([]types.ScoredLead, len(leads))

	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)
	for i, lead := range leads {
		g.Go(func() error {
			insights := r.ex.Extract(ctx, lead.Transcript)
			breakdown := scoring.Calculate(insights, lead.PriceEstimation)
			scored[i] = types.ScoredLead{
				Lead:     lead,
				Insights: insights,
				Score:    breakdown.Total,
				IsHot:    scoring.IsHot(breakdown.Total),
			}
			return nil
		})
	}
	// Extract never fails outward, so Wait only synchronizes.
	_ = g.Wait()

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	r.log.WithField("leads", len(scored)).Info("lead batch ranked")
	return scored
}

package usecase

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
)

// Report holds both PageRank estimates of one corpus.
type Report struct {
	Corpus   entity.Corpus
	Samples  int
	Sampled  entity.Distribution
	Iterated entity.Distribution
}

type RankUseCase interface {
	Rank(fsys fs.FS) (*Report, error)
}

type corpusCrawler interface {
	Crawl(fsys fs.FS) (entity.Corpus, error)
}

type rankEstimator interface {
	Sample(corpus entity.Corpus) (entity.Distribution, error)
	Iterate(corpus entity.Corpus) (entity.Distribution, error)
	Samples() int
}

type rankUseCase struct {
	logger *slog.Logger

	crawler   corpusCrawler
	estimator rankEstimator
}

func NewRankUseCase(logger *slog.Logger, crawler corpusCrawler, estimator rankEstimator) RankUseCase {
	return &rankUseCase{
		logger:    logger.With("component", "rank_usecase"),
		crawler:   crawler,
		estimator: estimator,
	}
}

// Rank - crawls the corpus and estimates PageRank by sampling and by
// iteration.
func (that *rankUseCase) Rank(fsys fs.FS) (*Report, error) {
	log := that.logger.With("method", "Rank")

	corpus, err := that.crawler.Crawl(fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to crawl corpus: %w", err)
	}

	sampled, err := that.estimator.Sample(corpus)
	if err != nil {
		return nil, fmt.Errorf("failed to rank by sampling: %w", err)
	}

	iterated, err := that.estimator.Iterate(corpus)
	if err != nil {
		return nil, fmt.Errorf("failed to rank by iteration: %w", err)
	}

	log.Info("corpus ranked", "pages", len(corpus))

	return &Report{
		Corpus:   corpus,
		Samples:  that.estimator.Samples(),
		Sampled:  sampled,
		Iterated: iterated,
	}, nil
}

package usecase

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-pagerank/mocks/usecase"
	"github.com/rocketscienceinc/tictactoe-pagerank/testing/suite"
)

var (
	errSomeError = errors.New("some error")
	errDiskFull  = errors.New("disk full")
)

func TestRankUseCase_Rank(t *testing.T) {
	fsys := fstest.MapFS{}
	corpus := entity.NewCorpus(map[string][]string{
		"a.html": {"b.html"},
		"b.html": {"a.html"},
	})

	t.Run("Returns both estimates", func(t *testing.T) {
		// Given: a crawler returning a corpus and an estimator ranking it
		mockCrawler := mockedUseCase.NewMockcorpusCrawler(t)
		mockEstimator := mockedUseCase.NewMockrankEstimator(t)
		useCaseInstance := NewRankUseCase(suite.New(t).Logger, mockCrawler, mockEstimator)

		sampled := entity.Distribution{"a.html": 0.49, "b.html": 0.51}
		iterated := entity.Distribution{"a.html": 0.5, "b.html": 0.5}

		mockCrawler.EXPECT().Crawl(mock.Anything).Return(corpus, nil).Once()
		mockEstimator.EXPECT().Sample(corpus).Return(sampled, nil).Once()
		mockEstimator.EXPECT().Iterate(corpus).Return(iterated, nil).Once()
		mockEstimator.EXPECT().Samples().Return(10000).Once()

		// When: the corpus is ranked
		report, err := useCaseInstance.Rank(fsys)

		// Then: the report should carry the corpus and both estimates
		require.NoError(t, err)
		assert.Equal(t, &Report{
			Corpus:   corpus,
			Samples:  10000,
			Sampled:  sampled,
			Iterated: iterated,
		}, report)
	})

	t.Run("Returns error if crawling fails", func(t *testing.T) {
		// Given: a crawler that fails
		mockCrawler := mockedUseCase.NewMockcorpusCrawler(t)
		mockEstimator := mockedUseCase.NewMockrankEstimator(t)
		useCaseInstance := NewRankUseCase(suite.New(t).Logger, mockCrawler, mockEstimator)

		mockCrawler.EXPECT().Crawl(mock.Anything).Return(nil, errDiskFull).Once()

		// When: the corpus is ranked
		report, err := useCaseInstance.Rank(fsys)

		// Then: the crawler error should be returned and nothing estimated
		require.ErrorIs(t, err, errDiskFull)
		assert.Nil(t, report)
	})

	t.Run("Returns error if sampling fails", func(t *testing.T) {
		mockCrawler := mockedUseCase.NewMockcorpusCrawler(t)
		mockEstimator := mockedUseCase.NewMockrankEstimator(t)
		useCaseInstance := NewRankUseCase(suite.New(t).Logger, mockCrawler, mockEstimator)

		mockCrawler.EXPECT().Crawl(mock.Anything).Return(corpus, nil).Once()
		mockEstimator.EXPECT().Sample(corpus).Return(nil, errSomeError).Once()

		_, err := useCaseInstance.Rank(fsys)
		require.ErrorIs(t, err, errSomeError)
	})

	t.Run("Returns error if iteration fails", func(t *testing.T) {
		mockCrawler := mockedUseCase.NewMockcorpusCrawler(t)
		mockEstimator := mockedUseCase.NewMockrankEstimator(t)
		useCaseInstance := NewRankUseCase(suite.New(t).Logger, mockCrawler, mockEstimator)

		mockCrawler.EXPECT().Crawl(mock.Anything).Return(corpus, nil).Once()
		mockEstimator.EXPECT().Sample(corpus).Return(entity.Distribution{}, nil).Once()
		mockEstimator.EXPECT().Iterate(corpus).Return(nil, errSomeError).Once()

		_, err := useCaseInstance.Rank(fsys)
		require.ErrorIs(t, err, errSomeError)
	})
}

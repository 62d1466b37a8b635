package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidMark  = errors.New("invalid player mark")

	ErrEmptyCorpus        = errors.New("corpus has no pages")
	ErrInvalidDamping     = errors.New("damping factor must be within [0, 1]")
	ErrInvalidSampleCount = errors.New("sample count must be positive")
	ErrInvalidThreshold   = errors.New("convergence threshold must be positive")
	ErrNotConverged       = errors.New("pagerank did not converge")

	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUsage         = errors.New("usage: pagerank corpus")
)

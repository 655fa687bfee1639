package models

import (
	"errors"
)

var (
	ErrNoOptions         = errors.New("no initialized model options")
	ErrNoTrainingData    = errors.New("no training data")
	ErrTargetLenMismatch = errors.New("target length does not match training length")
	ErrWeightLenMismatch = errors.New("weight length does not match training length")
	ErrInsufficientData  = errors.New("need at least 2 training points for a linear fit")
	ErrSingularFit       = errors.New("weighted normal equations are singular")
	ErrUntrainedModel    = errors.New("model has not been fit yet")
)

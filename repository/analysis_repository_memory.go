package repository

import (
	"sync"

	"credit-compare/domain"
)

// maxStoredAnalyses bounds the in-memory history.
const maxStoredAnalyses = 100

// AnalysisRepositoryMemory is an in-memory implementation of AnalysisRepository.
type AnalysisRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.AnalysisResult
}

// NewAnalysisRepositoryMemory creates a new in-memory analysis repository.
func NewAnalysisRepositoryMemory() *AnalysisRepositoryMemory {
	return &AnalysisRepositoryMemory{
		data: []domain.AnalysisResult{},
	}
}

// Save stores the analysis result in memory, dropping the oldest entry once
// the history is full.
func (r *AnalysisRepositoryMemory) Save(
	input domain.AnalysisInput,
	result domain.AnalysisResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, result)
	if len(r.data) > maxStoredAnalyses {
		r.data = r.data[len(r.data)-maxStoredAnalyses:]
	}
	return nil
}

// Last returns the most recently saved analysis.
func (r *AnalysisRepositoryMemory) Last() (domain.AnalysisResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.data) == 0 {
		return domain.AnalysisResult{}, false
	}
	return r.data[len(r.data)-1], true
}

func (r *AnalysisRepositoryMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

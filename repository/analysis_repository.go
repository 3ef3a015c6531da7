package repository

import "credit-compare/domain"

type AnalysisRepository interface {
	Save(input domain.AnalysisInput, result domain.AnalysisResult) error
	Last() (domain.AnalysisResult, bool)
}

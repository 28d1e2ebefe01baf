package survey

import (
	"context"

	"github.com/google/uuid"
)

var _ Repository = &mockSurveyRepository{}

type mockSurveyRepository struct {
	CreateSurveyFunc  func(ctx context.Context, s Survey) (Survey, error)
	GetSurveyFunc     func(ctx context.Context, id uuid.UUID) (Survey, error)
	ListSurveysFunc   func(ctx context.Context, offset, limit int) ([]Survey, int, error)
	UpdateSurveyFunc  func(ctx context.Context, s Survey) (Survey, error)
	DeleteSurveyFunc  func(ctx context.Context, id uuid.UUID) error
	SearchSurveysFunc func(ctx context.Context, params SearchParams) ([]Survey, error)
}

func (m *mockSurveyRepository) CreateSurvey(ctx context.Context, s Survey) (Survey, error) {
	if m.CreateSurveyFunc != nil {
		return m.CreateSurveyFunc(ctx, s)
	}
	return s, nil
}

func (m *mockSurveyRepository) GetSurvey(ctx context.Context, id uuid.UUID) (Survey, error) {
	if m.GetSurveyFunc != nil {
		return m.GetSurveyFunc(ctx, id)
	}
	return Survey{}, NewSurveyDoesNotExistError("not found", nil)
}

func (m *mockSurveyRepository) ListSurveys(ctx context.Context, offset, limit int) ([]Survey, int, error) {
	if m.ListSurveysFunc != nil {
		return m.ListSurveysFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockSurveyRepository) UpdateSurvey(ctx context.Context, s Survey) (Survey, error) {
	if m.UpdateSurveyFunc != nil {
		return m.UpdateSurveyFunc(ctx, s)
	}
	return s, nil
}

func (m *mockSurveyRepository) DeleteSurvey(ctx context.Context, id uuid.UUID) error {
	if m.DeleteSurveyFunc != nil {
		return m.DeleteSurveyFunc(ctx, id)
	}
	return nil
}

func (m *mockSurveyRepository) SearchSurveys(ctx context.Context, params SearchParams) ([]Survey, error) {
	if m.SearchSurveysFunc != nil {
		return m.SearchSurveysFunc(ctx, params)
	}
	return nil, nil
}

package api

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/assettrack/subscription-api/slices"
	"github.com/assettrack/subscription-api/survey"
)

const surveyNotFoundMessage = "Customer survey not found"

func (a *API) PostCustomerSurvey(ctx context.Context, request PostCustomerSurveyRequestObject) (PostCustomerSurveyResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	if request.Body == nil {
		logger.Warn("Nil body for customer survey")

		return PostCustomerSurvey400JSONResponse{
			Code:    EmptyBody,
			Message: "Must specify a body",
		}, nil
	}

	pairs, err := apiQuestionsAnswers(*request.Body)
	if err != nil {
		logger.Warn("Invalid questions for customer survey", slog.String("error", err.Error()))

		return PostCustomerSurvey400JSONResponse(surveyInputError(err)), nil
	}

	params := survey.SurveyParams{
		Name:             deref(request.Body.Name),
		CompanyName:      deref(request.Body.CompanyName),
		Designation:      deref(request.Body.Designation),
		Email:            deref(request.Body.Email),
		Mobile:           deref(request.Body.Mobile),
		URL:              deref(request.Body.Url),
		QuestionsAnswers: pairs,
	}

	created, err := survey.CreateSurvey(ctx, params, a.surveys)
	if err != nil {
		switch {
		case survey.HasReason(err, survey.REASON_INVALID_INPUT):
			logger.Warn("Invalid customer survey", slog.String("error", err.Error()))

			return PostCustomerSurvey400JSONResponse(surveyInputError(err)), nil
		case survey.HasReason(err, survey.REASON_SURVEY_ALREADY_EXISTS):
			logger.Warn("Customer survey already exists", slog.String("email", params.Email))

			return PostCustomerSurvey400JSONResponse{
				Code:    AlreadyExists,
				Message: "Customer with this email already exists",
			}, nil
		}

		logger.Error("Failed to create customer survey", slog.String("error", err.Error()))

		return PostCustomerSurvey500JSONResponse{
			Code:    InternalError,
			Message: "Failed to submit customer survey",
		}, nil
	}

	logger.Info("Customer survey created", slog.String("survey-id", created.ID.String()))

	return PostCustomerSurvey201JSONResponse{
		Message: "Customer survey submitted successfully",
		Success: true,
		Data:    surveyToApi(created),
	}, nil
}

func (a *API) GetCustomerSurveys(ctx context.Context, request GetCustomerSurveysRequestObject) (GetCustomerSurveysResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	page := queryInt(request.Params.Page, 1)
	limit := queryInt(request.Params.Limit, survey.DEFAULT_PAGE_SIZE)

	result, err := survey.ListSurveys(ctx, page, limit, a.surveys)
	if err != nil {
		logger.Error("Failed to list customer surveys", slog.String("error", err.Error()))

		return GetCustomerSurveys500JSONResponse{
			Code:    InternalError,
			Message: "Failed to fetch customer surveys",
		}, nil
	}

	return GetCustomerSurveys200JSONResponse{
		Success: true,
		Data:    slices.Map(result.Surveys, surveyToApi),
		Pagination: Pagination{
			CurrentPage:  result.CurrentPage,
			TotalPages:   result.TotalPages,
			TotalRecords: result.TotalRecords,
			PerPage:      result.PerPage,
		},
	}, nil
}

func (a *API) GetCustomerSurveysSearch(ctx context.Context, request GetCustomerSurveysSearchRequestObject) (GetCustomerSurveysSearchResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	found, err := survey.SearchSurveys(ctx, survey.SearchParams{
		Query:       deref(request.Params.Q),
		Company:     deref(request.Params.Company),
		Designation: deref(request.Params.Designation),
	}, a.surveys)
	if err != nil {
		logger.Error("Failed to search customer surveys", slog.String("error", err.Error()))

		return GetCustomerSurveysSearch500JSONResponse{
			Code:    InternalError,
			Message: "Failed to search customer surveys",
		}, nil
	}

	return GetCustomerSurveysSearch200JSONResponse{
		Success: true,
		Data:    slices.Map(found, surveyToApi),
		Count:   len(found),
	}, nil
}

func (a *API) GetCustomerSurveyId(ctx context.Context, request GetCustomerSurveyIdRequestObject) (GetCustomerSurveyIdResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx).With(slog.String("survey-id", request.Id.String()))

	s, err := survey.GetSurvey(ctx, request.Id, a.surveys)
	if err != nil {
		if survey.HasReason(err, survey.REASON_SURVEY_DOES_NOT_EXIST) {
			logger.Warn("Customer survey not found")

			return GetCustomerSurveyId404JSONResponse{
				Code:    NotFound,
				Message: surveyNotFoundMessage,
			}, nil
		}

		logger.Error("Failed to fetch customer survey", slog.String("error", err.Error()))

		return GetCustomerSurveyId500JSONResponse{
			Code:    InternalError,
			Message: "Failed to fetch customer survey",
		}, nil
	}

	return GetCustomerSurveyId200JSONResponse{
		Success: true,
		Data:    surveyToApi(s),
	}, nil
}

func (a *API) PutCustomerSurveyId(ctx context.Context, request PutCustomerSurveyIdRequestObject) (PutCustomerSurveyIdResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx).With(slog.String("survey-id", request.Id.String()))

	if request.Body == nil {
		logger.Warn("Nil body for customer survey update")

		return PutCustomerSurveyId400JSONResponse{
			Code:    EmptyBody,
			Message: "Must specify a body",
		}, nil
	}

	update := survey.SurveyUpdate{
		Name:        request.Body.Name,
		CompanyName: request.Body.CompanyName,
		Designation: request.Body.Designation,
		Email:       request.Body.Email,
		Mobile:      request.Body.Mobile,
		URL:         request.Body.Url,
	}
	if hasQuestions(*request.Body) {
		pairs, err := apiQuestionsAnswers(*request.Body)
		if err != nil {
			logger.Warn("Invalid questions for customer survey update", slog.String("error", err.Error()))

			return PutCustomerSurveyId400JSONResponse(surveyInputError(err)), nil
		}
		update.QuestionsAnswers = pairs
	}

	updated, err := survey.UpdateSurvey(ctx, request.Id, update, a.surveys)
	if err != nil {
		switch {
		case survey.HasReason(err, survey.REASON_SURVEY_DOES_NOT_EXIST):
			logger.Warn("Customer survey not found for update")

			return PutCustomerSurveyId404JSONResponse{
				Code:    NotFound,
				Message: surveyNotFoundMessage,
			}, nil
		case survey.HasReason(err, survey.REASON_INVALID_INPUT):
			logger.Warn("Invalid customer survey update", slog.String("error", err.Error()))

			return PutCustomerSurveyId400JSONResponse(surveyInputError(err)), nil
		case survey.HasReason(err, survey.REASON_SURVEY_ALREADY_EXISTS):
			logger.Warn("Customer survey email already taken")

			return PutCustomerSurveyId400JSONResponse{
				Code:    AlreadyExists,
				Message: "Customer with this email already exists",
			}, nil
		}

		logger.Error("Failed to update customer survey", slog.String("error", err.Error()))

		return PutCustomerSurveyId500JSONResponse{
			Code:    InternalError,
			Message: "Failed to update customer survey",
		}, nil
	}

	logger.Info("Customer survey updated")

	return PutCustomerSurveyId200JSONResponse{
		Message: "Customer survey updated successfully",
		Success: true,
		Data:    surveyToApi(updated),
	}, nil
}

func (a *API) DeleteCustomerSurveyId(ctx context.Context, request DeleteCustomerSurveyIdRequestObject) (DeleteCustomerSurveyIdResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx).With(slog.String("survey-id", request.Id.String()))

	err := survey.DeleteSurvey(ctx, request.Id, a.surveys)
	if err != nil {
		if survey.HasReason(err, survey.REASON_SURVEY_DOES_NOT_EXIST) {
			logger.Warn("Customer survey not found for delete")

			return DeleteCustomerSurveyId404JSONResponse{
				Code:    NotFound,
				Message: surveyNotFoundMessage,
			}, nil
		}

		logger.Error("Failed to delete customer survey", slog.String("error", err.Error()))

		return DeleteCustomerSurveyId500JSONResponse{
			Code:    InternalError,
			Message: "Failed to delete customer survey",
		}, nil
	}

	logger.Info("Customer survey deleted")

	return DeleteCustomerSurveyId200JSONResponse{
		Message: "Customer survey deleted successfully",
		Success: true,
	}, nil
}

func hasQuestions(body SurveyRequest) bool {
	return body.QuestionsAnswers != nil || body.Questions != nil || body.Answers != nil
}

// apiQuestionsAnswers accepts either the paired questions_answers list or the
// parallel questions and answers arrays. The paired list wins when both are
// sent.
func apiQuestionsAnswers(body SurveyRequest) ([]survey.QA, error) {
	if len(body.QuestionsAnswers) > 0 {
		return slices.Map(body.QuestionsAnswers, func(qa QuestionAnswer) survey.QA {
			return survey.QA{Question: qa.Question, Answer: deref(qa.Answer)}
		}), nil
	}
	if body.Questions == nil && body.Answers == nil {
		return nil, nil
	}
	return survey.PairQuestions(body.Questions, body.Answers)
}

func surveyInputError(err error) Error {
	message := err.Error()
	var surveyErr *survey.Error
	if errors.As(err, &surveyErr) {
		message = surveyErr.Message
	}
	return Error{
		Code:    InputValidationError,
		Message: message,
	}
}

func surveyToApi(s survey.Survey) Survey {
	return Survey{
		Id:          s.ID,
		Name:        s.Name,
		CompanyName: s.CompanyName,
		Designation: s.Designation,
		Email:       s.Email,
		Mobile:      s.Mobile,
		Url:         s.URL,
		Questions:   slices.Map(s.QuestionsAnswers, func(qa survey.QA) string { return qa.Question }),
		Answers:     slices.Map(s.QuestionsAnswers, func(qa survey.QA) string { return qa.Answer }),
		QuestionsAnswers: slices.Map(s.QuestionsAnswers, func(qa survey.QA) SurveyQuestionAnswer {
			return SurveyQuestionAnswer{Question: qa.Question, Answer: qa.Answer}
		}),
		TotalQuestions: len(s.QuestionsAnswers),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// queryInt treats values that are not integers as absent.
func queryInt(v *string, fallback int) int {
	if v == nil {
		return fallback
	}
	i, err := strconv.Atoi(*v)
	if err != nil {
		return fallback
	}
	return i
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package survey

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DEFAULT_PAGE_SIZE = 10
	MAX_PAGE_SIZE     = 100
	SEARCH_LIMIT      = 50

	// MAX_PAGE keeps the row offset of the deepest page inside int32.
	MAX_PAGE = 1_000_000
)

var (
	emailPattern  = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
	urlPattern    = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)
)

type Repository interface {
	CreateSurvey(ctx context.Context, s Survey) (Survey, error)
	GetSurvey(ctx context.Context, id uuid.UUID) (Survey, error)
	// ListSurveys returns a newest first page of surveys and the total number
	// of stored surveys.
	ListSurveys(ctx context.Context, offset, limit int) ([]Survey, int, error)
	UpdateSurvey(ctx context.Context, s Survey) (Survey, error)
	DeleteSurvey(ctx context.Context, id uuid.UUID) error
	SearchSurveys(ctx context.Context, params SearchParams) ([]Survey, error)
}

type QA struct {
	Question string
	Answer   string
}

type Survey struct {
	ID               uuid.UUID
	Name             string
	CompanyName      string
	Designation      string
	Email            string
	Mobile           string
	URL              string
	QuestionsAnswers []QA
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type SurveyParams struct {
	Name             string
	CompanyName      string
	Designation      string
	Email            string
	Mobile           string
	URL              string
	QuestionsAnswers []QA
}

// SurveyUpdate holds the fields to change. Nil fields are left as they are.
type SurveyUpdate struct {
	Name             *string
	CompanyName      *string
	Designation      *string
	Email            *string
	Mobile           *string
	URL              *string
	QuestionsAnswers []QA
}

type SearchParams struct {
	Query       string
	Company     string
	Designation string
	Limit       int
}

type Page struct {
	Surveys      []Survey
	CurrentPage  int
	TotalPages   int
	TotalRecords int
	PerPage      int
}

// PairQuestions zips parallel question and answer lists. A nil answer
// becomes an empty string.
func PairQuestions(questions []string, answers []*string) ([]QA, error) {
	if len(questions) == 0 {
		return nil, NewInvalidInputError("questions must be a non-empty array")
	}
	if len(answers) == 0 {
		return nil, NewInvalidInputError("answers must be a non-empty array")
	}
	if len(questions) != len(answers) {
		return nil, NewInvalidInputError("Number of questions and answers must be equal")
	}

	pairs := make([]QA, len(questions))
	for i, q := range questions {
		pairs[i].Question = q
		if answers[i] != nil {
			pairs[i].Answer = *answers[i]
		}
	}
	return pairs, nil
}

func CreateSurvey(ctx context.Context, params SurveyParams, repo Repository) (Survey, error) {
	s := normalize(Survey{
		ID:               uuid.New(),
		Name:             params.Name,
		CompanyName:      params.CompanyName,
		Designation:      params.Designation,
		Email:            params.Email,
		Mobile:           params.Mobile,
		URL:              params.URL,
		QuestionsAnswers: params.QuestionsAnswers,
	})

	err := validate(s)
	if err != nil {
		return Survey{}, err
	}

	return repo.CreateSurvey(ctx, s)
}

func GetSurvey(ctx context.Context, id uuid.UUID, repo Repository) (Survey, error) {
	return repo.GetSurvey(ctx, id)
}

func ListSurveys(ctx context.Context, page, limit int, repo Repository) (Page, error) {
	if page < 1 {
		page = 1
	}
	page = min(page, MAX_PAGE)
	if limit < 1 {
		limit = DEFAULT_PAGE_SIZE
	}
	limit = min(limit, MAX_PAGE_SIZE)

	surveys, total, err := repo.ListSurveys(ctx, (page-1)*limit, limit)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Surveys:      surveys,
		CurrentPage:  page,
		TotalPages:   (total + limit - 1) / limit,
		TotalRecords: total,
		PerPage:      limit,
	}, nil
}

func UpdateSurvey(ctx context.Context, id uuid.UUID, update SurveyUpdate, repo Repository) (Survey, error) {
	s, err := repo.GetSurvey(ctx, id)
	if err != nil {
		return Survey{}, err
	}

	applyUpdate(&s, update)
	s = normalize(s)

	err = validate(s)
	if err != nil {
		return Survey{}, err
	}

	return repo.UpdateSurvey(ctx, s)
}

func DeleteSurvey(ctx context.Context, id uuid.UUID, repo Repository) error {
	return repo.DeleteSurvey(ctx, id)
}

func SearchSurveys(ctx context.Context, params SearchParams, repo Repository) ([]Survey, error) {
	params.Query = strings.TrimSpace(params.Query)
	params.Company = strings.TrimSpace(params.Company)
	params.Designation = strings.TrimSpace(params.Designation)
	if params.Limit < 1 || params.Limit > SEARCH_LIMIT {
		params.Limit = SEARCH_LIMIT
	}

	return repo.SearchSurveys(ctx, params)
}

func applyUpdate(s *Survey, update SurveyUpdate) {
	if update.Name != nil {
		s.Name = *update.Name
	}
	if update.CompanyName != nil {
		s.CompanyName = *update.CompanyName
	}
	if update.Designation != nil {
		s.Designation = *update.Designation
	}
	if update.Email != nil {
		s.Email = *update.Email
	}
	if update.Mobile != nil {
		s.Mobile = *update.Mobile
	}
	if update.URL != nil {
		s.URL = *update.URL
	}
	if update.QuestionsAnswers != nil {
		s.QuestionsAnswers = update.QuestionsAnswers
	}
}

func normalize(s Survey) Survey {
	s.Name = strings.TrimSpace(s.Name)
	s.CompanyName = strings.TrimSpace(s.CompanyName)
	s.Designation = strings.TrimSpace(s.Designation)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.Mobile = strings.TrimSpace(s.Mobile)
	s.URL = strings.TrimSpace(s.URL)
	return s
}

func validate(s Survey) error {
	if s.CompanyName == "" || s.Designation == "" || s.Email == "" || s.Mobile == "" || len(s.QuestionsAnswers) == 0 {
		return NewInvalidInputError("Required fields: company_name, designation, email, mobile, questions, answers")
	}

	if !emailPattern.MatchString(s.Email) {
		return NewInvalidInputError("Please enter a valid email")
	}

	if !mobilePattern.MatchString(s.Mobile) {
		return NewInvalidInputError("Please enter a valid 10-digit mobile number")
	}

	if s.URL != "" && !urlPattern.MatchString(s.URL) {
		return NewInvalidInputError("Please enter a valid URL")
	}

	for i, qa := range s.QuestionsAnswers {
		if strings.TrimSpace(qa.Question) == "" {
			return NewInvalidInputError(fmt.Sprintf("Question is required for item %d", i+1))
		}
	}

	return nil
}

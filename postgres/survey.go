package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/assettrack/subscription-api/slices"
	"github.com/assettrack/subscription-api/survey"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var _ survey.Repository = &DB{}

const surveyColumns = `id, name, company_name, designation, email, mobile, url, questions, answers, created_at, updated_at`

type surveyRow struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	CompanyName string         `db:"company_name"`
	Designation string         `db:"designation"`
	Email       string         `db:"email"`
	Mobile      string         `db:"mobile"`
	URL         string         `db:"url"`
	Questions   pq.StringArray `db:"questions"`
	Answers     pq.StringArray `db:"answers"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func surveyToRow(s survey.Survey) surveyRow {
	return surveyRow{
		ID:          s.ID,
		Name:        s.Name,
		CompanyName: s.CompanyName,
		Designation: s.Designation,
		Email:       s.Email,
		Mobile:      s.Mobile,
		URL:         s.URL,
		Questions:   slices.Map(s.QuestionsAnswers, func(qa survey.QA) string { return qa.Question }),
		Answers:     slices.Map(s.QuestionsAnswers, func(qa survey.QA) string { return qa.Answer }),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func rowToSurvey(row surveyRow) survey.Survey {
	pairs := make([]survey.QA, len(row.Questions))
	for i, q := range row.Questions {
		pairs[i].Question = q
		if i < len(row.Answers) {
			pairs[i].Answer = row.Answers[i]
		}
	}

	return survey.Survey{
		ID:               row.ID,
		Name:             row.Name,
		CompanyName:      row.CompanyName,
		Designation:      row.Designation,
		Email:            row.Email,
		Mobile:           row.Mobile,
		URL:              row.URL,
		QuestionsAnswers: pairs,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

// Postgres keeps microseconds.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (d *DB) CreateSurvey(ctx context.Context, s survey.Survey) (survey.Survey, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	s.CreatedAt = now()
	s.UpdatedAt = s.CreatedAt

	_, err := d.db.NamedExecContext(ctx, `
		INSERT INTO customer_survey (`+surveyColumns+`)
		VALUES (:id, :name, :company_name, :designation, :email, :mobile, :url, :questions, :answers, :created_at, :updated_at)`,
		surveyToRow(s))
	if err != nil {
		if isUniqueViolation(err) {
			return survey.Survey{}, survey.NewSurveyAlreadyExistsError("Customer with this email already exists", err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return survey.Survey{}, survey.NewTimeoutError("CreateSurvey timed out")
		}
		return survey.Survey{}, survey.NewFailedToWriteError("Failed to insert customer survey", err)
	}

	return s, nil
}

func (d *DB) GetSurvey(ctx context.Context, id uuid.UUID) (survey.Survey, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	var row surveyRow
	err := d.db.GetContext(ctx, &row, `SELECT `+surveyColumns+` FROM customer_survey WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return survey.Survey{}, survey.NewSurveyDoesNotExistError(fmt.Sprintf("Customer survey %s not found", id), nil)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return survey.Survey{}, survey.NewTimeoutError("GetSurvey timed out")
		}
		return survey.Survey{}, survey.NewFailedToFetchError(fmt.Sprintf("Failed to fetch customer survey %s", id), err)
	}

	return rowToSurvey(row), nil
}

func (d *DB) ListSurveys(ctx context.Context, offset, limit int) ([]survey.Survey, int, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	var rows []surveyRow
	err := d.db.SelectContext(ctx, &rows, `
		SELECT `+surveyColumns+` FROM customer_survey
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, 0, survey.NewTimeoutError("ListSurveys timed out")
		}
		return nil, 0, survey.NewFailedToFetchError("Failed to list customer surveys", err)
	}

	var total int
	err = d.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM customer_survey`)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, 0, survey.NewTimeoutError("ListSurveys timed out")
		}
		return nil, 0, survey.NewFailedToFetchError("Failed to count customer surveys", err)
	}

	return slices.Map(rows, rowToSurvey), total, nil
}

func (d *DB) UpdateSurvey(ctx context.Context, s survey.Survey) (survey.Survey, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	s.UpdatedAt = now()
	row := surveyToRow(s)

	var updated surveyRow
	err := d.db.GetContext(ctx, &updated, `
		UPDATE customer_survey SET
			name = $2,
			company_name = $3,
			designation = $4,
			email = $5,
			mobile = $6,
			url = $7,
			questions = $8,
			answers = $9,
			updated_at = $10
		WHERE id = $1
		RETURNING `+surveyColumns,
		row.ID, row.Name, row.CompanyName, row.Designation, row.Email, row.Mobile, row.URL, row.Questions, row.Answers, row.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return survey.Survey{}, survey.NewSurveyDoesNotExistError(fmt.Sprintf("Customer survey %s not found", s.ID), nil)
		} else if isUniqueViolation(err) {
			return survey.Survey{}, survey.NewSurveyAlreadyExistsError("Customer with this email already exists", err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return survey.Survey{}, survey.NewTimeoutError("UpdateSurvey timed out")
		}
		return survey.Survey{}, survey.NewFailedToWriteError(fmt.Sprintf("Failed to update customer survey %s", s.ID), err)
	}

	return rowToSurvey(updated), nil
}

func (d *DB) DeleteSurvey(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	res, err := d.db.ExecContext(ctx, `DELETE FROM customer_survey WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return survey.NewTimeoutError("DeleteSurvey timed out")
		}
		return survey.NewFailedToWriteError(fmt.Sprintf("Failed to delete customer survey %s", id), err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return survey.NewFailedToWriteError(fmt.Sprintf("Failed to delete customer survey %s", id), err)
	}
	if deleted == 0 {
		return survey.NewSurveyDoesNotExistError(fmt.Sprintf("Customer survey %s not found", id), nil)
	}

	return nil
}

func (d *DB) SearchSurveys(ctx context.Context, params survey.SearchParams) ([]survey.Survey, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	var conds []string
	var args []any
	bind := func(term string) int {
		args = append(args, "%"+escapeLike(term)+"%")
		return len(args)
	}

	if params.Query != "" {
		n := bind(params.Query)
		conds = append(conds, fmt.Sprintf(`(name ILIKE $%[1]d
			OR email ILIKE $%[1]d
			OR company_name ILIKE $%[1]d
			OR EXISTS (SELECT 1 FROM unnest(questions) AS q WHERE q ILIKE $%[1]d)
			OR EXISTS (SELECT 1 FROM unnest(answers) AS a WHERE a ILIKE $%[1]d))`, n))
	}
	if params.Company != "" {
		conds = append(conds, fmt.Sprintf("company_name ILIKE $%d", bind(params.Company)))
	}
	if params.Designation != "" {
		conds = append(conds, fmt.Sprintf("designation ILIKE $%d", bind(params.Designation)))
	}

	query := `SELECT ` + surveyColumns + ` FROM customer_survey`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, params.Limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC, id LIMIT $%d`, len(args))

	var rows []surveyRow
	err := d.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, survey.NewTimeoutError("SearchSurveys timed out")
		}
		return nil, survey.NewFailedToFetchError("Failed to search customer surveys", err)
	}

	return slices.Map(rows, rowToSurvey), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

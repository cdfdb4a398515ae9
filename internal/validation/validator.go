package validation

import (
	"math"
	"strconv"
	"strings"

	"learnpath/internal/domain"
	"learnpath/internal/dto"
	"learnpath/internal/util"
)

const (
	maxScore  = 1000
	maxTime   = 10000
	maxTopics = 20
)

// Validator provides request validation functionality
type Validator struct {
	categories []string
}

// NewValidator creates a new validator instance. categories lists the
// accepted values of the type parameter.
func NewValidator(categories []string) *Validator {
	return &Validator{categories: categories}
}

// ValidateDataRequest normalizes the /data query. Missing parameters take
// their neutral value: score 0, no topics, time 0 and type "all".
func (v *Validator) ValidateDataRequest(req dto.DataRequest) (domain.FilterRequest, domain.ValidationErrors) {
	var errors domain.ValidationErrors
	out := domain.FilterRequest{Type: "all"}

	if s := strings.TrimSpace(req.Score); s != "" {
		score, err := strconv.ParseFloat(s, 64)
		switch {
		case err != nil || math.IsNaN(score) || math.IsInf(score, 0):
			errors = append(errors, domain.NewInvalidFormatError("score", req.Score))
		case score < 0 || score > maxScore:
			errors = append(errors, domain.NewOutOfRangeError("score", score, 0, maxScore))
		default:
			out.Score = score
		}
	}

	out.Topics = util.SplitList(req.Topic)
	if len(out.Topics) > maxTopics {
		errors = append(errors, domain.NewOutOfRangeError("topic", len(out.Topics), 0, maxTopics))
	}
	for _, topic := range out.Topics {
		if !domain.ValidTopic(topic) {
			errors = append(errors, domain.NewInvalidFormatError("topic", topic))
		}
	}

	if s := strings.TrimSpace(req.Time); s != "" {
		t, err := strconv.ParseFloat(s, 64)
		switch {
		case err != nil || math.IsNaN(t) || math.IsInf(t, 0):
			errors = append(errors, domain.NewInvalidFormatError("time", req.Time))
		case t < 0 || t > maxTime:
			errors = append(errors, domain.NewOutOfRangeError("time", t, 0, maxTime))
		default:
			out.Time = t
		}
	}

	if t := strings.TrimSpace(req.Type); t != "" {
		canonical, ok := v.category(t)
		if !ok {
			errors = append(errors, domain.ValidationError{
				Code:    domain.CodeInvalidCategory,
				Field:   "type",
				Message: "must be one of " + strings.Join(v.categories, ", "),
				Value:   t,
			})
		} else {
			out.Type = canonical
		}
	}

	return out, errors
}

// ValidateQuestionIndex parses the path index. Negative values pass; they
// simply address no question.
func (v *Validator) ValidateQuestionIndex(raw string) (int, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError("index")}
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("index", raw)}
	}
	return index, nil
}

// category matches s case-insensitively and returns the configured spelling.
func (v *Validator) category(s string) (string, bool) {
	if len(v.categories) == 0 {
		return s, true
	}
	for _, c := range v.categories {
		if strings.EqualFold(c, s) {
			return c, true
		}
	}
	return "", false
}

package quizflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"learnpath/internal/contract"
	"learnpath/internal/dto"
)

// ErrNoQuestion reports that the source has no question at the requested
// index.
var ErrNoQuestion = errors.New("no question at index")

const maxBodyBytes = 1 << 20

// Source supplies questions by zero-based index.
type Source interface {
	Question(ctx context.Context, index int) (*dto.QuestionResponse, error)
}

// HTTPSource fetches questions from GET {base}/quiz/question/{index}.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates an HTTPSource. A nil client means http.DefaultClient.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Question implements Source. Non-200 responses are ErrNoQuestion; payloads
// failing schema validation are returned as decode errors.
func (s *HTTPSource) Question(ctx context.Context, index int) (*dto.QuestionResponse, error) {
	u := s.baseURL + "/quiz/question/" + url.PathEscape(strconv.Itoa(index))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build question request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch question %d: %w", index, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read question %d: %w", index, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w %d: status %d", ErrNoQuestion, index, resp.StatusCode)
	}
	return contract.DecodeQuestion(body)
}

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"qgcalc/internal/domain"
	"qgcalc/internal/engine"
)

// StatusError is returned for a non-2xx response that is not an evaluation
// failure.
type StatusError struct {
	Method, Path string
	Status       int
	Code         string
	Message      string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("calcd %s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

type Client struct {
	Base string
	HTTP *http.Client
}

var _ domain.Evaluator = (*Client)(nil)

// New returns a client for the service at base. A nil hc selects
// http.DefaultClient.
func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// Evaluate asks the service to evaluate expression without recording it.
func (c *Client) Evaluate(ctx context.Context, expression string) (float64, error) {
	return c.eval(ctx, domain.EvalRequest{Expression: expression, DryRun: true})
}

// Calculate evaluates expression and records it in the service's history.
func (c *Client) Calculate(ctx context.Context, expression string) (float64, error) {
	return c.eval(ctx, domain.EvalRequest{Expression: expression})
}

func (c *Client) eval(ctx context.Context, req domain.EvalRequest) (float64, error) {
	var out domain.EvalResponse
	if err := c.do(ctx, http.MethodPost, "/eval", req, &out); err != nil {
		return 0, err
	}
	return out.Result, nil
}

// AppendHistory stores rec as the most recent record.
func (c *Client) AppendHistory(ctx context.Context, rec domain.HistoryRecord) error {
	return c.do(ctx, http.MethodPost, "/history", rec, nil)
}

// History returns up to limit records, most recent last. A non-positive
// limit returns everything.
func (c *Client) History(ctx context.Context, limit int) ([]domain.HistoryRecord, error) {
	path := "/history"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []domain.HistoryRecord
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ClearHistory(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/history", nil, nil)
}

// Health reports whether the service answers.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return decodeError(method, path, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(method, path string, resp *http.Response) error {
	var er domain.ErrorResponse
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(b, &er) != nil {
		er.Message = strings.TrimSpace(string(b))
	}
	if resp.StatusCode == http.StatusUnprocessableEntity {
		if sentinel := engine.FromKind(er.Error); sentinel != nil {
			return fmt.Errorf("%w (calcd: %s)", sentinel, er.Message)
		}
	}
	return &StatusError{Method: method, Path: path, Status: resp.StatusCode, Code: er.Error, Message: er.Message}
}

// IsStatus reports whether err is a StatusError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

// Package submit posts task-assignment forms to a RoomHub server. It derives
// the target house from the page the form lives on, serializes the form
// fields, and reports where the client should navigate on success.
package submit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/BenjaminLindeen/RoomHub/internal/platform/logger"
)

// ErrServerRejected indicates the server answered the submission with a
// non-2xx status. The page state is left alone; no navigation target is
// returned.
var ErrServerRejected = errors.New("server rejected task assignment")

// ErrNoHouseID indicates no house identifier could be derived from the page
// URL's trailing path segment.
var ErrNoHouseID = errors.New("page URL has no house identifier")

// Submitter sends task-assignment form submissions to the server.
type Submitter struct {
	client  *http.Client
	baseURL string
	token   string
}

// New creates a Submitter for the server at baseURL. A nil client selects a
// default with a 10 second timeout.
func New(baseURL string, client *http.Client) *Submitter {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Submitter{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// WithToken returns a Submitter that sends the given bearer token in the
// Authorization header of every submission. The assign-task route only
// accepts authenticated requests.
func (s *Submitter) WithToken(token string) *Submitter {
	clone := *s
	clone.token = token
	return &clone
}

// HouseIDFromPage extracts the house identifier from the trailing path
// segment of a page URL. Returns ErrNoHouseID when the segment is missing
// or not numeric.
func HouseIDFromPage(pageURL string) (int64, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoHouseID, err)
	}

	path := strings.TrimRight(parsed.Path, "/")
	segment := path[strings.LastIndex(path, "/")+1:]
	if segment == "" {
		return 0, ErrNoHouseID
	}

	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: trailing segment %q is not numeric", ErrNoHouseID, segment)
	}
	return id, nil
}

// Submit posts the form fields for the house identified by the page URL and
// returns the path the client should navigate to on success.
//
// Exactly one request is issued per call. A non-2xx response is logged and
// reported as ErrServerRejected; a transport failure is wrapped and
// returned rather than dropped.
func (s *Submitter) Submit(ctx context.Context, pageURL string, fields url.Values) (string, error) {
	houseID, err := HouseIDFromPage(pageURL)
	if err != nil {
		return "", err
	}
	return s.SubmitForHouse(ctx, houseID, fields)
}

// SubmitForHouse is Submit with an already-resolved house identifier.
func (s *Submitter) SubmitForHouse(ctx context.Context, houseID int64, fields url.Values) (string, error) {
	log := logger.FromContext(ctx)

	endpoint := fmt.Sprintf("%s/assign-task/%d", s.baseURL, houseID)
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		endpoint,
		strings.NewReader(fields.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("failed to build task assignment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error("task assignment request failed",
			"house_id", houseID,
			"error", err)
		return "", fmt.Errorf("task assignment request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Error("task assignment rejected",
			"house_id", houseID,
			"status", resp.StatusCode,
			"body", string(body))
		return "", fmt.Errorf("%w: %s", ErrServerRejected, resp.Status)
	}

	return fmt.Sprintf("/house/%d", houseID), nil
}

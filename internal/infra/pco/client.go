package pco

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/observability/tracing"
)

const (
	userAgent = "PCO-Integration/2.5"

	DefaultPlanCount = 5

	serviceTypesPerPage = 200
	itemsPerPage        = 100
	planTimesPerPage    = 50
	maxResponseBytes    = 8 << 20
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	location   *time.Location
}

func NewClient(baseURL string, timeout time.Duration, location *time.Location) *Client {
	if location == nil {
		location = time.UTC
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		location: location,
	}
}

func (c *Client) CheckConnection(ctx context.Context, creds Credentials) error {
	query := url.Values{}
	query.Set("per_page", "1")

	var doc document
	return c.get(ctx, creds, "check_connection", "/service_types", query, &doc)
}

// ListServiceTypes returns service types de-duplicated by id and sorted by
// case-insensitive name.
func (c *Client) ListServiceTypes(ctx context.Context, creds Credentials) ([]ServiceType, error) {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(serviceTypesPerPage))
	query.Set("order", "name")

	var doc document
	if err := c.get(ctx, creds, "service_types", "/service_types", query, &doc); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(doc.Data))
	types := make([]ServiceType, 0, len(doc.Data))
	for _, r := range doc.Data {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}

		var attrs serviceTypeAttributes
		if err := r.decodeAttributes(&attrs); err != nil {
			return nil, fmt.Errorf("%w: service type %s: %v", ErrInvalidResponse, r.ID, err)
		}
		types = append(types, ServiceType{ID: r.ID, Name: attrs.Name})
	}

	slices.SortStableFunc(types, func(a, b ServiceType) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return types, nil
}

func (c *Client) ListFuturePlans(ctx context.Context, creds Credentials, serviceTypeID string, count int) ([]Plan, error) {
	if count <= 0 {
		count = DefaultPlanCount
	}

	query := url.Values{}
	query.Set("filter", "future")
	query.Set("order", "sort_date")
	query.Set("per_page", strconv.Itoa(count))

	var doc document
	path := "/service_types/" + url.PathEscape(serviceTypeID) + "/plans"
	if err := c.get(ctx, creds, "plans", path, query, &doc); err != nil {
		return nil, err
	}

	plans := make([]Plan, 0, len(doc.Data))
	for _, r := range doc.Data {
		var attrs planAttributes
		if err := r.decodeAttributes(&attrs); err != nil {
			return nil, fmt.Errorf("%w: plan %s: %v", ErrInvalidResponse, r.ID, err)
		}
		plans = append(plans, Plan{
			ID:       r.ID,
			Title:    attrs.Title,
			SortDate: attrs.SortDate,
			Label:    PlanLabel(attrs.SortDate, attrs.Title),
		})
	}

	return plans, nil
}

// ListPlanTimes returns the plan's times ordered by start, those without a
// start last. A plan with no times yields a single default record.
func (c *Client) ListPlanTimes(ctx context.Context, creds Credentials, serviceTypeID, planID string) ([]domain.PlanTime, error) {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(planTimesPerPage))

	var doc document
	if err := c.get(ctx, creds, "plan_times", planPath(serviceTypeID, planID)+"/plan_times", query, &doc); err != nil {
		return nil, err
	}

	times := make([]domain.PlanTime, 0, len(doc.Data))
	for _, r := range doc.Data {
		var attrs planTimeAttributes
		if err := r.decodeAttributes(&attrs); err != nil {
			return nil, fmt.Errorf("%w: plan time %s: %v", ErrInvalidResponse, r.ID, err)
		}
		startsAt := parseTimestamp(attrs.StartsAt)
		times = append(times, domain.NewPlanTime(r.ID, PlanTimeLabel(attrs.Name, startsAt, c.location), startsAt))
	}

	if len(times) == 0 {
		return []domain.PlanTime{domain.NewPlanTime(DefaultPlanTimeID, DefaultPlanTimeLabel, time.Time{})}, nil
	}

	slices.SortStableFunc(times, func(a, b domain.PlanTime) int {
		switch {
		case a.HasStart() && b.HasStart():
			return a.StartsAt.Compare(b.StartsAt)
		case a.HasStart():
			return -1
		case b.HasStart():
			return 1
		default:
			return 0
		}
	})

	return times, nil
}

// ListCues expands the selected plan times into their running order. For
// each time, in the order given, its item times are sorted by live start
// (falling back to scheduled start); excluded entries and items that are
// not songs or regular items are skipped.
func (c *Client) ListCues(ctx context.Context, creds Credentials, serviceTypeID, planID string, timeIDs []string) ([]domain.PlanTime, error) {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(itemsPerPage))
	query.Set("include", "item_times")

	var doc document
	if err := c.get(ctx, creds, "items", planPath(serviceTypeID, planID)+"/items", query, &doc); err != nil {
		return nil, err
	}

	items := make(map[string]itemAttributes, len(doc.Data))
	for _, r := range doc.Data {
		var attrs itemAttributes
		if err := r.decodeAttributes(&attrs); err != nil {
			return nil, fmt.Errorf("%w: item %s: %v", ErrInvalidResponse, r.ID, err)
		}
		items[r.ID] = attrs
	}

	type itemTime struct {
		id      string
		itemID  string
		sortKey string
		attrs   itemTimeAttributes
	}

	byTime := make(map[string][]itemTime, len(timeIDs))
	for _, r := range doc.Included {
		if r.Type != "ItemTime" {
			continue
		}
		timeID, ok := r.relatedID("plan_time")
		if !ok {
			continue
		}
		var attrs itemTimeAttributes
		if err := r.decodeAttributes(&attrs); err != nil {
			return nil, fmt.Errorf("%w: item time %s: %v", ErrInvalidResponse, r.ID, err)
		}
		itemID, _ := r.relatedID("item")
		byTime[timeID] = append(byTime[timeID], itemTime{
			id:      r.ID,
			itemID:  itemID,
			sortKey: cmp.Or(attrs.LiveStartAt, attrs.StartsAt),
			attrs:   attrs,
		})
	}

	cues := make([]domain.PlanTime, 0)
	for _, timeID := range timeIDs {
		entries := byTime[timeID]
		slices.SortStableFunc(entries, func(a, b itemTime) int {
			return strings.Compare(a.sortKey, b.sortKey)
		})

		for _, it := range entries {
			if it.attrs.Exclude || it.itemID == "" {
				continue
			}
			item, ok := items[it.itemID]
			if !ok {
				continue
			}
			if item.ItemType != "item" && item.ItemType != "song" {
				continue
			}
			cues = append(cues, domain.NewPlanTime(it.id, CueLabel(item.Title), parseTimestamp(it.sortKey)))
		}
	}

	slog.DebugContext(ctx, "expanded plan times into cues",
		slog.String("plan_id", planID),
		slog.Int("time_count", len(timeIDs)),
		slog.Int("cue_count", len(cues)),
	)

	return cues, nil
}

func planPath(serviceTypeID, planID string) string {
	return "/service_types/" + url.PathEscape(serviceTypeID) + "/plans/" + url.PathEscape(planID)
}

func (c *Client) get(ctx context.Context, creds Credentials, operation, path string, query url.Values, out any) error {
	if !creds.Valid() {
		return ErrMissingCredentials
	}

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	u.RawQuery = query.Encode()

	ctx, span := tracing.StartExternalAPISpan(ctx, operation, u.String())
	defer span.End()

	slog.DebugContext(ctx, "fetching from planning center",
		slog.String("operation", operation),
		slog.String("url", u.String()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		tracing.RecordExternalAPIResult(span, 0, err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(creds.AppID, creds.Secret)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrRequestFailed, err)
		tracing.RecordExternalAPIResult(span, 0, err)
		slog.ErrorContext(ctx, "failed to send request to planning center",
			slog.String("operation", operation),
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := statusError(resp.StatusCode)
		tracing.RecordExternalAPIResult(span, resp.StatusCode, err)
		slog.ErrorContext(ctx, "unexpected status code from planning center",
			slog.String("operation", operation),
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		err = fmt.Errorf("%w: failed to read response body: %v", ErrRequestFailed, err)
		tracing.RecordExternalAPIResult(span, resp.StatusCode, err)
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		tracing.RecordExternalAPIResult(span, resp.StatusCode, err)
		slog.ErrorContext(ctx, "failed to decode response from planning center",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
		return err
	}

	tracing.RecordExternalAPIResult(span, resp.StatusCode, nil)
	return nil
}

func statusError(code int) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", ErrUnauthorized, code)
	default:
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, code)
	}
}

package bento

import (
	"context"
	"encoding/json"
	"net/url"
)

// Statistics endpoints return free-form JSON documents whose shape the API
// may extend; results are passed through as raw JSON.

// SiteStats fetches site-wide statistics.
func (c *Client) SiteStats(ctx context.Context) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.apiClient.Do(ctx, "GET", "/stats/site", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// SegmentStats fetches statistics for a segment.
func (c *Client) SegmentStats(ctx context.Context, segmentID string) (json.RawMessage, error) {
	if err := validateRequired(segmentID, ErrInvalidSegmentID); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("segment_id", segmentID)

	var result json.RawMessage
	if err := c.apiClient.Do(ctx, "GET", "/stats/segment", query, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ReportStats fetches statistics for a report.
func (c *Client) ReportStats(ctx context.Context, reportID string) (json.RawMessage, error) {
	if err := validateRequired(reportID, ErrInvalidRequest); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("report_id", reportID)

	var result json.RawMessage
	if err := c.apiClient.Do(ctx, "GET", "/stats/report", query, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

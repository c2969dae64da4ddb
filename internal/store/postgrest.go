package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPClient lets tests substitute the transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{Timeout: timeout}
}

// PostgREST reads view rows over Supabase's REST interface. Filters map
// directly onto PostgREST operators: eq., in.(...), ilike.*v*.
type PostgREST struct {
	c       HTTPClient
	baseURL string
	apiKey  string
}

func NewPostgREST(c HTTPClient, baseURL, apiKey string) *PostgREST {
	return &PostgREST{c: c, baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey}
}

func (p *PostgREST) Select(ctx context.Context, view string, filters ...Filter) ([]Row, error) {
	q := url.Values{}
	q.Set("select", "*")
	for _, f := range filters {
		switch f.Op {
		case OpEq:
			q.Add(f.Column, "eq."+fmt.Sprint(f.Value))
		case OpIn:
			q.Add(f.Column, "in.("+strings.Join(f.Values, ",")+")")
		case OpILike:
			q.Add(f.Column, "ilike.*"+fmt.Sprint(f.Value)+"*")
		default:
			return nil, fmt.Errorf("unsupported filter op %q", f.Op)
		}
	}

	u := p.baseURL + "/rest/v1/" + view + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("view %s: non-2xx: %d body=%s", view, resp.StatusCode, string(b))
	}

	var rows []Row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("view %s: decode: %w", view, err)
	}
	return rows, nil
}

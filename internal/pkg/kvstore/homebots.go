package kvstore

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

const DefaultHomebotsURL = "https://store.homebots.io"

type HomebotsConfig struct {
	// BaseURL is the root of the store service, e.g. https://store.homebots.io
	BaseURL string
	StoreID string
	// Resource is the kind of resource items are stored under.
	Resource string
	// Timeout bounds every request made to the store.
	Timeout time.Duration
	// UserAgent is sent as the client name.
	UserAgent string
}

// Homebots is a Resource backed by the homebots JSON store REST API:
//
//	GET    /{store}/{resource}/      list
//	GET    /{store}/{resource}/{id}  get
//	PUT    /{store}/{resource}/{id}  set
//	DELETE /{store}/{resource}/{id}  remove
//	DELETE /{store}/{resource}/      remove all
type Homebots struct {
	client      *fasthttp.Client
	storeURL    string
	resourceURL string
	timeout     time.Duration
}

var _ Resource = (*Homebots)(nil)

func NewHomebots(conf HomebotsConfig) (*Homebots, error) {
	if strings.TrimSpace(conf.StoreID) == "" {
		return nil, errors.New("kvstore: homebots: store id is missing")
	}
	if strings.TrimSpace(conf.Resource) == "" {
		return nil, errors.New("kvstore: homebots: resource name is missing")
	}
	base := strings.TrimSpace(conf.BaseURL)
	if base == "" {
		base = DefaultHomebotsURL
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, errors.Wrap(err, "kvstore: homebots: invalid base url")
	}
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	storeURL := strings.TrimRight(base, "/") + "/" + url.PathEscape(conf.StoreID)
	return &Homebots{
		client: &fasthttp.Client{
			Name:                conf.UserAgent,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,

			DisablePathNormalizing: true,
		},
		storeURL:    storeURL,
		resourceURL: storeURL + "/" + url.PathEscape(conf.Resource) + "/",
		timeout:     timeout,
	}, nil
}

func (h *Homebots) Backend() string { return BackendHomebots }

// itemURL addresses id as a single path segment; "/" inside id is escaped.
func (h *Homebots) itemURL(id string) string {
	return h.resourceURL + url.PathEscape(id)
}

// do executes req, bounded by both the context deadline and the client timeout.
// The returned body is a copy owned by the caller.
func (h *Homebots) do(ctx context.Context, method, uri string, body []byte) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	// keep %2F inside item ids escaped on the wire
	req.URI().DisablePathNormalizing = true
	req.Header.SetMethod(method)
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	deadline := time.Now().Add(h.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := h.client.DoDeadline(req, resp, deadline); err != nil {
		return 0, nil, errors.Wrapf(err, "kvstore: homebots: %s %s", method, uri)
	}

	return resp.StatusCode(), append([]byte(nil), resp.Body()...), nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func (h *Homebots) Ping(ctx context.Context) error {
	status, _, err := h.do(ctx, fasthttp.MethodGet, h.storeURL, nil)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return &StatusError{Op: "ping", Code: status}
	}
	return nil
}

func (h *Homebots) List(ctx context.Context) ([][]byte, error) {
	status, body, err := h.do(ctx, fasthttp.MethodGet, h.resourceURL, nil)
	if err != nil {
		log.Warn().
			Err(err).
			Str("evt.name", "kvstore.homebots.list.failed").
			Msg("failed to list resource; reporting it as empty")
		return [][]byte{}, nil
	}
	if !isSuccess(status) {
		log.Warn().
			Int("status", status).
			Str("evt.name", "kvstore.homebots.list.rejected").
			Msg("store rejected list; reporting it as empty")
		return [][]byte{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		log.Warn().
			Err(err).
			Str("evt.name", "kvstore.homebots.list.decode").
			Msg("failed to decode list response; reporting it as empty")
		return [][]byte{}, nil
	}

	out := make([][]byte, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out, nil
}

func (h *Homebots) Get(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, ErrIDMissing
	}
	status, body, err := h.do(ctx, fasthttp.MethodGet, h.itemURL(id), nil)
	if err != nil {
		return nil, err
	}
	if status == fasthttp.StatusNotFound {
		return nil, ErrNotFound
	}
	if !isSuccess(status) {
		return nil, &StatusError{Op: "get", Code: status}
	}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return nil, ErrNotFound
	}
	return body, nil
}

func (h *Homebots) Set(ctx context.Context, id string, value []byte) error {
	if id == "" {
		return ErrIDMissing
	}
	if value == nil {
		value = []byte("{}")
	}
	status, _, err := h.do(ctx, fasthttp.MethodPut, h.itemURL(id), value)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return &StatusError{Op: "set", Code: status}
	}
	return nil
}

func (h *Homebots) Remove(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDMissing
	}
	status, _, err := h.do(ctx, fasthttp.MethodDelete, h.itemURL(id), nil)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return &StatusError{Op: "remove", Code: status}
	}
	return nil
}

func (h *Homebots) RemoveAll(ctx context.Context) error {
	status, _, err := h.do(ctx, fasthttp.MethodDelete, h.resourceURL, nil)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return &StatusError{Op: "remove_all", Code: status}
	}
	return nil
}

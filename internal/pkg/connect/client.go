package connect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/dghubble/sling"
	"github.com/tidwall/gjson"

	"github.com/kcctl/kcctl/internal/pkg/errors"
	"github.com/kcctl/kcctl/internal/pkg/log"
	"github.com/kcctl/kcctl/internal/pkg/utils"
)

const (
	DefaultTimeout   = time.Second * 10
	defaultUserAgent = "kcctl"
)

// Client is the subset of the Kafka Connect REST API kcctl works with.
type Client interface {
	WorkerInfo(ctx context.Context) (*WorkerInfo, error)
	ListConnectors(ctx context.Context) ([]string, error)
	ConnectorConfig(ctx context.Context, name string) (ConnectorConfig, error)
	ConnectorStatus(ctx context.Context, name string) (*ConnectorStatus, error)
	PutConnectorConfig(ctx context.Context, name string, config ConnectorConfig) (*PutResult, error)
	DeleteConnector(ctx context.Context, name string) error
}

type Params struct {
	URL       string
	Username  string
	Password  string
	Timeout   time.Duration
	UserAgent string
	Logger    *log.Logger

	// HTTPClient replaces the default client built from Timeout.
	HTTPClient *http.Client
}

// RESTClient talks to one Kafka Connect worker. It never retries.
type RESTClient struct {
	url        string
	httpClient *http.Client
	sling      *sling.Sling
	logger     *log.Logger
}

var _ Client = (*RESTClient)(nil)

// NewRESTClient creates a client bound to a cluster URL. Basic auth is only sent when both username and password are set.
func NewRESTClient(params *Params) (*RESTClient, error) {
	base, err := url.Parse(params.URL)
	if err != nil || base.Host == "" || (base.Scheme != "http" && base.Scheme != "https") {
		return nil, errors.Errorf("invalid Kafka Connect URL \"%s\"", params.URL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	httpClient := params.HTTPClient
	if httpClient == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := params.Logger
	if logger == nil {
		logger = log.New()
	}
	userAgent := params.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	s := sling.New().
		Base(base.String()).
		Set("Accept", "application/json").
		Set("User-Agent", userAgent)
	if params.Username != "" && params.Password != "" {
		s = s.SetBasicAuth(params.Username, params.Password)
	}
	return &RESTClient{
		url:        params.URL,
		httpClient: httpClient,
		sling:      s,
		logger:     logger.Named("connect"),
	}, nil
}

// URL is the cluster URL the client was created for.
func (c *RESTClient) URL() string {
	return c.url
}

func (c *RESTClient) WorkerInfo(ctx context.Context) (*WorkerInfo, error) {
	info := new(WorkerInfo)
	if _, err := c.do(ctx, c.sling.New().Get(""), "", info); err != nil {
		return nil, err
	}
	return info, nil
}

func (c *RESTClient) ListConnectors(ctx context.Context) ([]string, error) {
	var names []string
	if _, err := c.do(ctx, c.sling.New().Get("connectors"), "", &names); err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (c *RESTClient) ConnectorConfig(ctx context.Context, name string) (ConnectorConfig, error) {
	config := ConnectorConfig{}
	if _, err := c.do(ctx, c.sling.New().Get(connectorPath(name, "config")), name, &config); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *RESTClient) ConnectorStatus(ctx context.Context, name string) (*ConnectorStatus, error) {
	status := new(ConnectorStatus)
	if _, err := c.do(ctx, c.sling.New().Get(connectorPath(name, "status")), name, status); err != nil {
		return nil, err
	}
	return status, nil
}

// PutConnectorConfig creates or replaces the configuration of a connector.
// A rejected configuration comes back as a *ValidationError.
func (c *RESTClient) PutConnectorConfig(ctx context.Context, name string, config ConnectorConfig) (*PutResult, error) {
	result := &PutResult{}
	status, err := c.do(ctx, c.sling.New().Put(connectorPath(name, "config")).BodyJSON(config), name, &result.Info)
	if err != nil {
		return nil, err
	}
	result.Created = status == http.StatusCreated
	return result, nil
}

func (c *RESTClient) DeleteConnector(ctx context.Context, name string) error {
	_, err := c.do(ctx, c.sling.New().Delete(connectorPath(name, "")), name, nil)
	return err
}

func connectorPath(name, sub string) string {
	path := "connectors/" + url.PathEscape(name)
	if sub != "" {
		path += "/" + sub
	}
	return path
}

// do executes the request and decodes a 2xx body into success. connector names the connector the request is about,
// so that a 404 can be reported as that connector missing.
func (c *RESTClient) do(ctx context.Context, s *sling.Sling, connector string, success interface{}) (int, error) {
	req, err := s.Request()
	if err != nil {
		return 0, errors.Wrap(err, "unable to build request")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if c.logger.GetLevel() >= log.TRACE {
		ctx = utils.HTTPTracedContext(ctx, c.logger)
	}
	req = req.WithContext(ctx)

	c.logger.Debugf("%s %s", req.Method, req.URL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debugf("%s %s failed: %v", req.Method, req.URL, err)
		return 0, &errors.ClusterUnreachableError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, &errors.ClusterUnreachableError{URL: c.url, Err: err}
	}
	c.logger.Tracef("%s %s returned %d: %s", req.Method, req.URL, resp.StatusCode, body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if success != nil && len(bytes.TrimSpace(body)) > 0 {
			if err := json.Unmarshal(body, success); err != nil {
				c.logger.Debugf("%+v", err)
				return resp.StatusCode, &errors.ServerError{
					StatusCode: resp.StatusCode,
					Message:    fmt.Sprintf(errors.MalformedResponseErrorMsg, req.URL.Path),
				}
			}
		}
		return resp.StatusCode, nil
	}
	return resp.StatusCode, mapError(resp.StatusCode, body, connector)
}

func mapError(status int, body []byte, connector string) error {
	if status == http.StatusNotFound && connector != "" {
		return &errors.ConnectorNotFoundError{Name: connector}
	}
	if status == http.StatusBadRequest {
		if fieldErrors := parseFieldErrors(body); len(fieldErrors) > 0 {
			return &ValidationError{Connector: connector, Errors: fieldErrors}
		}
	}
	return &errors.ServerError{StatusCode: status, Message: errorMessage(body)}
}

// errorMessage extracts the "message" of a Connect error body, falling back to the raw body.
func errorMessage(body []byte) string {
	if gjson.ValidBytes(body) {
		if message := gjson.GetBytes(body, "message"); message.Exists() {
			return message.String()
		}
	}
	return strings.TrimSpace(string(body))
}

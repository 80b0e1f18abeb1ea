package mir4

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mir4scope-backend/lib/restyutil"
	"mir4scope-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const DefaultBaseUrl = "https://webapi.mir4global.com/nft"

type Client struct {
	Http *resty.Client
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// the marketplace API presents a certificate chain that does not
	// always verify, this opts into skipping verification
	InsecureTLS bool
	// retry count for transient failures, defaults to 1
	Retries int
	Timeout time.Duration
}

func NewClient(opts ClientOptions) *Client {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Retries == 0 {
		opts.Retries = 1
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetQueryParam("languageCode", "en")
	client.SetHeader("user-agent", "mir4scope-backend/1.0")
	client.SetTimeout(opts.Timeout)

	// retries cover connection errors and server-side failures only,
	// a body that fails to decode is never retried
	client.SetRetryCount(opts.Retries)
	client.SetRetryWaitTime(time.Millisecond * 500)
	client.AddRetryCondition(func(res *resty.Response, err error) bool {
		if err != nil {
			return true
		}
		return res.StatusCode() >= 500
	})

	if opts.InsecureTLS {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "scrapers/mir4/http")

	return &Client{Http: client}
}

func (c *Client) SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.Http, output)
}

// StatusError is a non-2xx response, it is permanent unless the
// status is server-side.
type StatusError struct {
	Code int
	Url  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Url, e.Code)
}

// DecodeError is a 2xx response whose body did not match the expected
// shape, it is always permanent.
type DecodeError struct {
	Url string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response of %s: %s", e.Url, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func get[T any](ctx context.Context, c *Client, path string, query map[string]string) (T, error) {
	var out T

	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return out, err
	}
	if res.StatusCode() != http.StatusOK {
		return out, &StatusError{Code: res.StatusCode(), Url: res.Request.URL}
	}

	err = json.Unmarshal(res.Body(), &out)
	if err != nil {
		return out, &DecodeError{Url: res.Request.URL, Err: err}
	}
	return out, nil
}

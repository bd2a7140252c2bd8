package cpi

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"github.com/cpilink/support-calculator/internal/domain"
)

const (
	// DefaultAPIBaseURL is the Central Bureau of Statistics price index
	// endpoint.
	DefaultAPIBaseURL = "https://api.cbs.gov.il/index/data/price"

	// CPIResourceID identifies the general consumer price index series.
	CPIResourceID = "120010"

	defaultRequestTimeout = 10 * time.Second
)

// CBSClient fetches consumer price index observations from the bureau's
// public API. Any failure, from transport errors to a missing DateMonth
// element, resolves to the unavailable quote.
type CBSClient struct {
	BaseURL    string
	ResourceID string
	Timeout    time.Duration
	Client     *fasthttp.Client
}

// NewCBSClient creates a client against the public bureau endpoint.
func NewCBSClient() *CBSClient {
	return &CBSClient{
		BaseURL:    DefaultAPIBaseURL,
		ResourceID: CPIResourceID,
		Timeout:    defaultRequestTimeout,
		Client:     &fasthttp.Client{},
	}
}

// Quote implements Provider.
func (c *CBSClient) Quote(ctx context.Context, period domain.CpiPeriod) domain.CpiQuote {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(fasthttp.MethodGet)
	req.SetRequestURI(fmt.Sprintf("%s?id=%s&format=xml&download=false&period=%04d%02d",
		c.BaseURL, c.ResourceID, period.Year, period.Month))

	deadline := time.Now().Add(c.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.Client.DoDeadline(req, resp, deadline); err != nil {
		return domain.UnavailableQuote()
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return domain.UnavailableQuote()
	}

	return parseQuote(resp.Body(), period)
}

// cbsDateMonth mirrors one DateMonth element of the bureau's XML payload.
type cbsDateMonth struct {
	Year     int `xml:"year"`
	Month    int `xml:"month"`
	CurrBase struct {
		Value    string `xml:"value"`
		BaseDesc string `xml:"baseDesc"`
	} `xml:"currBase"`
}

// parseQuote scans the payload for the DateMonth element matching the
// requested period. The element may sit at any depth, so the decoder
// walks tokens rather than assuming a fixed document shape.
func parseQuote(payload []byte, period domain.CpiPeriod) domain.CpiQuote {
	decoder := xml.NewDecoder(bytes.NewReader(payload))
	for {
		token, err := decoder.Token()
		if err != nil {
			return domain.UnavailableQuote()
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "DateMonth" {
			continue
		}

		var dm cbsDateMonth
		if err := decoder.DecodeElement(&dm, &start); err != nil {
			return domain.UnavailableQuote()
		}
		if dm.Year != period.Year || dm.Month != period.Month {
			continue
		}

		value, err := decimal.NewFromString(strings.TrimSpace(dm.CurrBase.Value))
		baseDesc := strings.TrimSpace(dm.CurrBase.BaseDesc)
		if err != nil || baseDesc == "" {
			return domain.UnavailableQuote()
		}
		return domain.PublishedQuote(value, baseDesc, period.String())
	}
}

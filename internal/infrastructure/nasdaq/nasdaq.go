package nasdaq

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/vitos/nordic_stock_data/internal/domain"
)

// DefaultBaseURL is the Nasdaq OMX Nordic DataFeedProxy endpoint.
const DefaultBaseURL = "http://www.nasdaqomxnordic.com/webproxy/DataFeedProxy.aspx"

// Adapter queries the DataFeedProxy API. Instrument listings come back as
// XML, price history as JSON; both are decoded into domain records here so
// the services never see the wire format.
type Adapter struct {
	baseURL string
	client  *http.Client
}

func NewAdapter(baseURL string, timeout time.Duration) *Adapter {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Adapter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (a *Adapter) get(ctx context.Context, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	return body, nil
}

// FetchMarketInstruments lists the instruments currently trading on a market.
func (a *Adapter) FetchMarketInstruments(ctx context.Context, market domain.Market) ([]domain.Instrument, error) {
	params := url.Values{
		"Exchange":  {"NMF"},
		"SubSystem": {"Prices"},
		"Action":    {"GetMarket"},
		"app":       {"/osakkeet"},
		"Market":    {market.Code()},
	}

	body, err := a.get(ctx, params)
	if err != nil {
		return nil, err
	}

	return decodeInstruments(body)
}

type marketXML struct {
	Name        string    `xml:"nm,attr"`
	Instruments []instXML `xml:"instruments>inst"`
}

type instXML struct {
	ID          string `xml:"id,attr"`
	Name        string `xml:"nm,attr"`
	FullName    string `xml:"fnm,attr"`
	Bid         string `xml:"bp,attr"`
	Ask         string `xml:"ap,attr"`
	Last        string `xml:"lp,attr"`
	TotalVolume string `xml:"tv,attr"`
}

// decodeInstruments walks the response for <market> elements wherever the
// provider nests them. A record missing its identifier attributes fails the
// whole decode; nothing partial is ever returned.
func decodeInstruments(body []byte) ([]domain.Instrument, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))

	var instruments []domain.Instrument
	marketCount := 0

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode market listing: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "market" {
			continue
		}

		var m marketXML
		if err := dec.DecodeElement(&m, &start); err != nil {
			return nil, fmt.Errorf("decode market element: %w", err)
		}
		marketCount++

		for _, in := range m.Instruments {
			if in.ID == "" || in.Name == "" || in.FullName == "" {
				return nil, fmt.Errorf("market %s: instrument missing identifier attributes", m.Name)
			}

			bid, err := parseQuote(in.Bid)
			if err != nil {
				return nil, fmt.Errorf("instrument %s: bad bid price %q", in.ID, in.Bid)
			}
			ask, err := parseQuote(in.Ask)
			if err != nil {
				return nil, fmt.Errorf("instrument %s: bad ask price %q", in.ID, in.Ask)
			}
			last, err := parseQuote(in.Last)
			if err != nil {
				return nil, fmt.Errorf("instrument %s: bad last price %q", in.ID, in.Last)
			}
			volume, err := parseQuote(in.TotalVolume)
			if err != nil {
				return nil, fmt.Errorf("instrument %s: bad total volume %q", in.ID, in.TotalVolume)
			}

			instruments = append(instruments, domain.Instrument{
				ID:          in.ID,
				Name:        in.Name,
				FullName:    in.FullName,
				Market:      m.Name,
				BidPrice:    bid,
				AskPrice:    ask,
				LastPrice:   last,
				TotalVolume: volume,
			})
		}
	}

	if marketCount == 0 {
		return nil, errors.New("no markets in response")
	}

	return instruments, nil
}

// parseQuote parses a numeric attribute. The provider omits quote values
// outside trading hours, so the empty string decodes as zero.
func parseQuote(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// FetchPriceHistory queries the adjusted close series of an instrument for
// [from, to].
func (a *Adapter) FetchPriceHistory(ctx context.Context, instrumentID string, from, to time.Time) (*domain.PriceSeries, error) {
	params := url.Values{
		"SubSystem":       {"History"},
		"Action":          {"GetChartData"},
		"FromDate":        {from.Format(domain.DateLayout)},
		"ToDate":          {to.Format(domain.DateLayout)},
		"json":            {"true"},
		"showAdjusted":    {"true"},
		"app":             {"/osakkeet/historiallisetkurssitiedot-HistoryChar"},
		"DefaultDecimals": {"false"},
		"Instrument":      {instrumentID},
	}

	body, err := a.get(ctx, params)
	if err != nil {
		return nil, err
	}

	return decodeChartData(body)
}

func decodeChartData(body []byte) (*domain.PriceSeries, error) {
	var payload struct {
		Status json.Number `json:"@status"`
		Data   []struct {
			InstData struct {
				Name     string `json:"@nm"`
				FullName string `json:"@fnm"`
			} `json:"instData"`
			ChartData struct {
				CP [][]float64 `json:"cp"`
			} `json:"chartData"`
		} `json:"data"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode chart data: %w", err)
	}

	if payload.Status.String() != "1" {
		return nil, fmt.Errorf("provider rejected query, status %s", payload.Status)
	}
	if len(payload.Data) == 0 {
		return nil, errors.New("chart data missing from response")
	}

	data := payload.Data[0]

	series := &domain.PriceSeries{
		Stock:   data.InstData.Name,
		Company: data.InstData.FullName,
	}

	for _, point := range data.ChartData.CP {
		if len(point) < 2 {
			return nil, fmt.Errorf("malformed chart point %v", point)
		}
		// Timestamps arrive as epoch milliseconds.
		ts := time.Unix(int64(point[0])/1000, 0)
		series.Observations = append(series.Observations, domain.PriceObservation{
			Time:  ts,
			Value: point[1],
		})
	}

	sort.Slice(series.Observations, func(i, j int) bool {
		return series.Observations[i].Time.Before(series.Observations[j].Time)
	})

	// Drop duplicate timestamps, keeping the first occurrence.
	deduped := series.Observations[:0]
	for i, o := range series.Observations {
		if i > 0 && o.Time.Equal(series.Observations[i-1].Time) {
			continue
		}
		deduped = append(deduped, o)
	}
	series.Observations = deduped

	return series, nil
}

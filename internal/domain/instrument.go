package domain

import "time"

// Instrument is a tradable security as listed on a market. Instruments are
// value-comparable by ID.
type Instrument struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	FullName    string  `json:"full_name"`
	Market      string  `json:"market"`
	BidPrice    float64 `json:"bid_price"`
	AskPrice    float64 `json:"ask_price"`
	LastPrice   float64 `json:"last_price"`
	TotalVolume float64 `json:"total_volume"`
}

// PriceObservation is a single point of a price series.
type PriceObservation struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// PriceSeries holds the price history of one instrument, ordered by time
// ascending with no duplicate timestamps.
type PriceSeries struct {
	Stock        string             `json:"stock"`
	Company      string             `json:"company"`
	Observations []PriceObservation `json:"observations"`
}

// Slice returns a copy of the series restricted to [from, to]. The To bound
// is inclusive of the whole end day.
func (s *PriceSeries) Slice(from, to time.Time) *PriceSeries {
	end := to.AddDate(0, 0, 1)
	out := &PriceSeries{Stock: s.Stock, Company: s.Company}
	for _, o := range s.Observations {
		if !o.Time.Before(from) && o.Time.Before(end) {
			out.Observations = append(out.Observations, o)
		}
	}
	return out
}

// Rows returns the tabular (unix timestamp, value) view of the series.
func (s *PriceSeries) Rows() [][2]float64 {
	rows := make([][2]float64, len(s.Observations))
	for i, o := range s.Observations {
		rows[i] = [2]float64{float64(o.Time.Unix()), o.Value}
	}
	return rows
}

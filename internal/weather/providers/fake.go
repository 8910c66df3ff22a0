package providers

import (
	"context"
	"encoding/json"

	"github.com/openmatrix/ledweather/internal/weather"
)

// fakeOneCall is a captured One Call response: a snowy February afternoon.
// It drives the panel in test mode without touching the network.
const fakeOneCall = `{
  "lat": 37.2135,
  "lon": -80.0374,
  "timezone": "America/New_York",
  "timezone_offset": -18000,
  "current": {
    "dt": 1739992024,
    "sunrise": 1739966652,
    "sunset": 1740006242,
    "temp": 45.61,
    "weather": [
      {"id": 601, "main": "Snow", "description": "snow", "icon": "13d"}
    ]
  },
  "daily": [
    {
      "sunrise": 1739966652,
      "sunset": 1740006242,
      "temp": {"day": 25.2, "min": 40.36, "max": 60.72}
    }
  ]
}`

// FakeProvider serves the canned fixture. It satisfies the same Provider
// contract as the real source, so the loop and composer never know the
// difference.
type FakeProvider struct{}

func NewFakeProvider() *FakeProvider {
	return &FakeProvider{}
}

func (p *FakeProvider) Name() string { return "fake" }

func (p *FakeProvider) Fetch(ctx context.Context) (weather.Reading, error) {
	var payload oneCallResponse
	if err := json.Unmarshal([]byte(fakeOneCall), &payload); err != nil {
		return weather.Reading{}, weather.NewFetchError(weather.FetchParse, err)
	}
	return readingFromOneCall(payload), nil
}

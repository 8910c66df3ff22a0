package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/openmatrix/ledweather/internal/weather"
)

// OpenWeatherProvider fetches current conditions from the OpenWeather
// One Call API in imperial units.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	lat     float64
	lon     float64
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string, lat, lon float64) *OpenWeatherProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherProvider{
		name:    "openweather",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/3.0/onecall",
		lat:     lat,
		lon:     lon,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// oneCallResponse mirrors the slice of the One Call payload the panel uses.
type oneCallResponse struct {
	Current struct {
		Dt      int64   `json:"dt"`
		Sunrise int64   `json:"sunrise"`
		Sunset  int64   `json:"sunset"`
		Temp    float64 `json:"temp"`
		Weather []struct {
			Icon string `json:"icon"`
		} `json:"weather"`
	} `json:"current"`
	Daily []struct {
		Temp struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"temp"`
	} `json:"daily"`
}

func (p *OpenWeatherProvider) Fetch(ctx context.Context) (weather.Reading, error) {
	if p.apiKey == "" {
		return weather.Reading{}, weather.NewFetchError(weather.FetchAuth, fmt.Errorf("openweather api key is not configured"))
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", fmt.Sprintf("%f", p.lat))
		values.Set("lon", fmt.Sprintf("%f", p.lon))
		values.Set("units", "imperial")
		values.Set("exclude", "minutely,hourly,alerts")
		values.Set("appid", p.apiKey)

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Reading{}, classifyFetchError(err)
	}
	defer resp.Body.Close()

	var payload oneCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, weather.NewFetchError(weather.FetchParse, err)
	}

	return readingFromOneCall(payload), nil
}

func readingFromOneCall(payload oneCallResponse) weather.Reading {
	r := weather.Reading{
		TemperatureF: int(payload.Current.Temp),
		Condition:    weather.ConditionUnknown,
		Sunrise:      payload.Current.Sunrise,
		Sunset:       payload.Current.Sunset,
		FetchedAt:    time.Now().UTC(),
	}
	if len(payload.Current.Weather) > 0 {
		r.Condition = mapIconCode(payload.Current.Weather[0].Icon)
	}
	if len(payload.Daily) > 0 {
		r.MinF = int(payload.Daily[0].Temp.Min)
		r.MaxF = int(payload.Daily[0].Temp.Max)
	}
	return r.Normalize()
}

// mapIconCode maps an OpenWeather icon code like "13d" onto the normalized
// condition set. The trailing d/n is dropped; day/night is derived from the
// clock instead so the panel stays correct between fetches.
func mapIconCode(code string) weather.Condition {
	if len(code) < 2 {
		return weather.ConditionUnknown
	}
	switch code[:2] {
	case "01":
		return weather.ConditionClear
	case "02":
		return weather.ConditionPartlyCloudy
	case "03", "04":
		return weather.ConditionCloudy
	case "09", "10":
		return weather.ConditionRain
	case "11":
		return weather.ConditionStorm
	case "13":
		return weather.ConditionSnow
	case "50":
		return weather.ConditionMist
	default:
		return weather.ConditionUnknown
	}
}

package geocode

import (
	"net/http"
	"net/url"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// ItfGeocode resolves a free-text address into coordinates. The upstream
// service is best-effort: any failure is reported as ok=false, never an error,
// so a create/update can always proceed with null coordinates.
type ItfGeocode interface {
	Resolve(ctx context.Context, address string) (lat float64, lng float64, ok bool)
}

type geocodeClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *logrus.Logger
}

func New(log *logrus.Logger) ItfGeocode {
	baseURL := os.Getenv("GEOCODE_BASE_URL")
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com/maps/api"
	}

	return &geocodeClient{
		baseURL: baseURL,
		apiKey:  os.Getenv("GEOCODE_API_KEY"),
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		log: log,
	}
}

// NewWithBaseURL points the client at a custom endpoint, used by tests.
func NewWithBaseURL(log *logrus.Logger, baseURL string, apiKey string) ItfGeocode {
	return &geocodeClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		log: log,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *geocodeClient) Resolve(ctx context.Context, address string) (float64, float64, bool) {
	parameters := url.Values{}
	parameters.Add("address", address)
	parameters.Add("key", g.apiKey)

	endpoint := g.baseURL + "/geocode/json?" + parameters.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		g.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Failed to build geocoding request")
		return 0, 0, false
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Geocoding request failed")
		return 0, 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
		}).Warn("Geocoding service returned non-OK status")
		return 0, 0, false
	}

	var body geocodeResponse
	if err := jsoniter.NewDecoder(resp.Body).Decode(&body); err != nil {
		g.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Failed to decode geocoding response")
		return 0, 0, false
	}

	if body.Status != "OK" || len(body.Results) == 0 {
		g.log.WithFields(logrus.Fields{
			"geocode_status": body.Status,
		}).Warn("Geocoding returned no results")
		return 0, 0, false
	}

	location := body.Results[0].Geometry.Location
	return location.Lat, location.Lng, true
}

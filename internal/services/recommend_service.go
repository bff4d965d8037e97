package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// RecommendService calls the external gift-recommendation API. The upstream
// model can be slow, so calls run under a long deadline; on timeout or any
// other failure the caller gets a static fallback payload instead of an
// error. Placeholder data beats a hard failure here.
type RecommendService struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	client  *http.Client
}

// NewRecommendService creates a RecommendService.
func NewRecommendService(baseURL, apiKey string, timeout time.Duration) *RecommendService {
	return &RecommendService{
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
		client:  &http.Client{},
	}
}

// RecommendRequest describes what kind of gifts the campaign needs.
type RecommendRequest struct {
	Motion    string   `json:"motion"`
	Budget    float64  `json:"budget"`
	Currency  string   `json:"currency"`
	Interests []string `json:"interests,omitempty"`
}

// Recommendation is one suggested gift idea.
type Recommendation struct {
	Name      string  `json:"name"`
	Reason    string  `json:"reason"`
	PriceFrom float64 `json:"price_from"`
	PriceTo   float64 `json:"price_to"`
}

// RecommendResponse is what the campaign builder renders.
type RecommendResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	Fallback        bool             `json:"fallback"`
}

// Recommend fetches gift ideas, degrading to the fallback payload on any
// failure. It never returns an error.
func (s *RecommendService) Recommend(ctx context.Context, req RecommendRequest) RecommendResponse {
	if s.baseURL == "" {
		return fallbackRecommendations(req)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		log.Printf("[Recommend] failed to encode request: %v", err)
		return fallbackRecommendations(req)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/recommendations", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Recommend] failed to build request: %v", err)
		return fallbackRecommendations(req)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		log.Printf("[Recommend] request failed: %v", err)
		return fallbackRecommendations(req)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Recommend] unexpected status: %d", resp.StatusCode)
		return fallbackRecommendations(req)
	}

	var result RecommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("[Recommend] failed to decode response: %v", err)
		return fallbackRecommendations(req)
	}

	return result
}

func fallbackRecommendations(req RecommendRequest) RecommendResponse {
	budget := req.Budget
	if budget <= 0 {
		budget = 50
	}

	return RecommendResponse{
		Fallback: true,
		Recommendations: []Recommendation{
			{
				Name:      "Premium coffee sampler",
				Reason:    "Broadly liked, ships well, and fits most budgets.",
				PriceFrom: budget * 0.4,
				PriceTo:   budget * 0.8,
			},
			{
				Name:      "Insulated travel tumbler",
				Reason:    fmt.Sprintf("A practical desk staple for %s campaigns.", displayMotion(req.Motion)),
				PriceFrom: budget * 0.3,
				PriceTo:   budget * 0.6,
			},
			{
				Name:      "Artisan snack box",
				Reason:    "A safe crowd-pleaser when interests are unknown.",
				PriceFrom: budget * 0.5,
				PriceTo:   budget,
			},
		},
	}
}

func displayMotion(motion string) string {
	if motion == "" {
		return "outreach"
	}
	return motion
}

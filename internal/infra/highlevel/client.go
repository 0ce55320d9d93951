package highlevel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dashboard-gateway/internal/domain/plans"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://services.leadconnectorhq.com"
	apiVersion     = "2021-07-28"

	planFieldKey  = "subscription_plan"
	planTagPrefix = "plan-"
)

// Client is a read-only GoHighLevel client: the only operation this service
// needs is the duplicate-contact search that carries the plan field.
type Client struct {
	apiKey     string
	locationID string
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(apiKey, locationID string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		apiKey:     apiKey,
		locationID: locationID,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Contact is the slice of a GoHighLevel contact record this service reads.
type Contact struct {
	ID           string        `json:"id"`
	Email        string        `json:"email"`
	Tags         []string      `json:"tags"`
	CustomFields []CustomField `json:"customFields"`
}

type CustomField struct {
	ID    string `json:"id,omitempty"`
	Key   string `json:"key,omitempty"`
	Value string `json:"field_value,omitempty"`
}

// SearchContact looks a contact up by email. A clean "not found" returns
// (nil, nil); only transport or API failures return an error.
func (c *Client) SearchContact(ctx context.Context, email string) (*Contact, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("locationId", c.locationID)
	reqURL := fmt.Sprintf("%s/contacts/search/duplicate?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search contact (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		Contact *Contact `json:"contact"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return result.Contact, nil
}

// LookupPlan reads the contact's plan signal: the subscription_plan custom
// field first, then a plan-<tier> tag. Missing contact, missing plan, an
// explicit "free", or a string that does not parse as a tier all mean no
// signal. CRM is secondary truth and can only ever add a paid tier.
func (c *Client) LookupPlan(ctx context.Context, email string) (plans.Tier, error) {
	contact, err := c.SearchContact(ctx, email)
	if err != nil {
		return "", fmt.Errorf("highlevel: %w", err)
	}
	if contact == nil {
		return "", plans.ErrNoSignal
	}

	raw := contact.planValue()
	tier, ok := plans.ParseTier(raw)
	if !ok {
		if raw != "" {
			c.log.Debug("crm contact carries unrecognized plan value",
				zap.String("email", email),
				zap.String("plan", raw))
		}
		return "", plans.ErrNoSignal
	}
	if tier == plans.TierFree {
		return "", plans.ErrNoSignal
	}
	return tier, nil
}

func (ct *Contact) planValue() string {
	for _, f := range ct.CustomFields {
		if f.Key == planFieldKey && f.Value != "" {
			return f.Value
		}
	}
	for _, tag := range ct.Tags {
		if v, ok := strings.CutPrefix(strings.TrimSpace(tag), planTagPrefix); ok {
			return v
		}
	}
	return ""
}

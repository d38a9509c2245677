package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// SMSClient talks to the SMS gateway (form-POST API). With DryRun set the
// client logs instead of calling out, which keeps local setups quiet.
type SMSClient struct {
	APIKey  string
	Sender  string // optional sender id
	GateURL string
	DryRun  bool
}

type sendSMSResponse struct {
	Code int `json:"code"`
	Data struct {
		MessageID string `json:"messageId"`
	} `json:"data"`
}

func NewSMSClient(apiKey, sender, gateURL string, dryRun bool) *SMSClient {
	return &SMSClient{APIKey: apiKey, Sender: sender, GateURL: gateURL, DryRun: dryRun}
}

// SendSMS delivers a single text message (or fakes it in dry-run mode).
func (c *SMSClient) SendSMS(to, text string) error {
	if c.DryRun || c.APIKey == "" {
		fmt.Printf("[sms][dry-run] to=%s sender=%q text=%q\n", to, c.Sender, text)
		return nil
	}

	form := url.Values{
		"apiKey":    {c.APIKey},
		"recipient": {to},
		"text":      {text},
	}
	if c.Sender != "" {
		form.Set("from", c.Sender)
	}

	resp, err := http.PostForm(c.GateURL, form)
	if err != nil {
		return fmt.Errorf("send SMS request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var result sendSMSResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parse SMS gateway response: %w", err)
	}
	if result.Code != 0 {
		return fmt.Errorf("SMS gateway returned error code: %d", result.Code)
	}
	return nil
}

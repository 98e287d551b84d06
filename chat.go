package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// This file implements the chat proxy's upstream client. The inference
// credential stays server-side; the dashboard only ever sees the reply
// text. The provider is abstracted behind a ChatService interface so the
// handler can be tested without a live inference endpoint.

// chatFallbackReply is returned when the inference call succeeds but the
// response body does not have the expected shape. A shape mismatch is not
// an error to the caller; the dashboard shows this apology instead.
const chatFallbackReply = "Sorry, I couldn’t generate a response."

// ChatService produces a reply for a free-text message.
type ChatService interface {
	Reply(message string) (string, error)
}

// HuggingFaceChatService forwards messages to a hosted text-generation
// model on the Hugging Face inference API.
type HuggingFaceChatService struct {
	apiURL     string
	model      string
	apiKey     string
	httpClient *http.Client
}

func NewHuggingFaceChatService(apiURL, model, apiKey string, httpClient *http.Client) *HuggingFaceChatService {
	return &HuggingFaceChatService{
		apiURL:     apiURL,
		model:      model,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Reply sends the message to the inference API and extracts the first
// generated-text field. Transport and upstream failures are errors; a
// well-formed call whose body lacks generated text yields the fallback
// apology.
func (s *HuggingFaceChatService) Reply(message string) (string, error) {
	payload, err := json.Marshal(map[string]string{"inputs": message})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL+s.model, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inference API returned non-200 status: %s", resp.Status)
	}

	var generations []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&generations); err != nil {
		return chatFallbackReply, nil
	}
	if len(generations) == 0 || generations[0].GeneratedText == "" {
		return chatFallbackReply, nil
	}

	return generations[0].GeneratedText, nil
}

package service

import (
	"bufio"
	"bytes"
	"couple_coach_backend/internal/config"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{config: cfg}
}

// UpdateConfig swaps the provider settings, used by the config hot-reload.
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

func (s *AIService) settings() config.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
		Delta   AIChatMessage `json:"delta"` // streaming responses
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const defaultCoachInstruction = "You are a warm, supportive relationship coach. " +
	"Ground your advice in the context you are given about this couple; never invent facts about them. " +
	"Be concrete and kind, suggest small actionable steps, and never take sides between the partners. " +
	"If the user describes abuse or a safety concern, encourage them to seek professional help."

func (s *AIService) buildMessages(prompt, context string, history []AIChatMessage) []AIChatMessage {
	systemContent := defaultCoachInstruction
	if context != "" {
		systemContent = fmt.Sprintf("%s\n\nWhat you know about this couple:\n\n%s", defaultCoachInstruction, context)
	}

	messages := []AIChatMessage{{Role: "system", Content: systemContent}}
	messages = append(messages, history...)
	messages = append(messages, AIChatMessage{Role: "user", Content: prompt})
	return messages
}

func (s *AIService) ChatStream(prompt string, context string, history []AIChatMessage) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)

	cfg := s.settings()
	reqBody := map[string]interface{}{
		"model":    cfg.Model,
		"messages": s.buildMessages(prompt, context, history),
		"stream":   true,
	}

	jsonData, _ := json.Marshal(reqBody)

	go func() {
		defer close(out)
		defer close(errChan)

		req, err := http.NewRequest("POST", cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
		if err != nil {
			errChan <- err
			return
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			errChan <- err
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			errChan <- fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
			return
		}

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err != io.EOF {
					errChan <- err
				}
				break
			}

			line = strings.TrimSpace(line)
			if line == "" || !strings.HasPrefix(line, "data: ") {
				continue
			}

			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				break
			}

			var streamResp ChatCompletionResponse
			if err := json.Unmarshal([]byte(data), &streamResp); err != nil {
				continue
			}

			if len(streamResp.Choices) > 0 {
				content := streamResp.Choices[0].Delta.Content
				if content != "" {
					out <- content
				}
			}
		}
	}()

	return out, errChan
}

func (s *AIService) Chat(prompt string, context string, history []AIChatMessage) (string, error) {
	cfg := s.settings()
	reqBody := ChatCompletionRequest{
		Model:    cfg.Model,
		Messages: s.buildMessages(prompt, context, history),
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}

package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ask-astro/internal/domain/chat"
	"ask-astro/internal/platform/httpclient"

	"github.com/samber/lo"
)

const repliesPath = "/v1/replies"

// Provider pide la respuesta a un backend de inferencia por HTTP.
type Provider struct {
	client *httpclient.Client
}

type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// Transport permite inyectar un RoundTripper (tests).
	Transport http.RoundTripper
}

func NewProvider(opts Options) (*Provider, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, errors.New("remote provider: base url is required")
	}

	headers := map[string]string{"User-Agent": "ask-astro"}
	if opts.APIKey != "" {
		headers["Authorization"] = "Bearer " + opts.APIKey
	}

	c, err := httpclient.New(httpclient.Options{
		BaseURL:   opts.BaseURL,
		Timeout:   opts.Timeout,
		Transport: opts.Transport,
		Headers:   headers,
	})
	if err != nil {
		return nil, fmt.Errorf("remote provider: %w", err)
	}
	return &Provider{client: c}, nil
}

type turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type replyRequest struct {
	UserID    string `json:"user_id"`
	Question  string `json:"question"`
	FirstName string `json:"first_name,omitempty"`
	Sign      string `json:"sign,omitempty"`
	History   []turn `json:"history"`
}

type replyResponse struct {
	Reply string `json:"reply"`
}

func (p *Provider) Reply(ctx context.Context, in chat.Prompt) (string, error) {
	req := replyRequest{
		UserID:    in.UserID,
		Question:  in.Text,
		FirstName: in.FirstName,
		Sign:      in.Sign,
		History: lo.Map(in.History, func(m chat.Message, _ int) turn {
			return turn{Role: string(m.Role), Content: m.Content}
		}),
	}

	var resp replyResponse
	if err := p.client.DoJSON(ctx, http.MethodPost, repliesPath, req, &resp); err != nil {
		return "", err
	}

	reply := strings.TrimSpace(resp.Reply)
	if reply == "" {
		return "", errors.New("remote provider: empty reply")
	}
	return reply, nil
}

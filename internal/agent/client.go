package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"brandlens-cli/internal/config"
)

const (
	chatPath   = "/v3/inference/chat/"
	uploadPath = "/v3/assets/upload"

	// Research runs crawl dozens of sites per brand; the platform can take
	// minutes to answer.
	callTimeout = 5 * time.Minute
)

type Client struct {
	restyClient *resty.Client
	log         *zap.Logger
}

func NewClient(log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	client := resty.New()
	client.SetBaseURL(config.GetBaseURL())
	client.SetTimeout(callTimeout)
	return &Client{restyClient: client, log: log}
}

func (c *Client) getAuthHeader() map[string]string {
	apiKey := config.GetAPIKey()
	if apiKey == "" {
		return nil
	}
	return map[string]string{"x-api-key": apiKey}
}

// CallAgent submits a research message to the configured agent and returns the
// decoded envelope. The envelope is returned even on agent-reported failure so
// callers can inspect it.
func (c *Client) CallAgent(ctx context.Context, message string) (*AgentResponse, error) {
	agentID := config.GetAgentID()
	if agentID == "" {
		return nil, &APICallError{Message: "no agent id configured; run: brandlens config set-agent <AGENT_ID>"}
	}

	sessionID := fmt.Sprintf("%s-%s", agentID, uuid.NewString())
	body := map[string]any{
		"user_id":    config.GetUserID(),
		"agent_id":   agentID,
		"session_id": sessionID,
		"message":    message,
	}

	start := time.Now()
	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetHeaders(c.getAuthHeader()).
		SetBody(body).
		Post(chatPath)
	if err != nil {
		return nil, &APICallError{Message: "agent call failed", Cause: err}
	}

	c.log.Debug("agent call finished",
		zap.String("session_id", sessionID),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("took", time.Since(start)),
		zap.Int("bytes", len(resp.Body())))

	if resp.IsError() {
		if resp.StatusCode() == 401 || resp.StatusCode() == 403 {
			return nil, &APICallError{Message: "API key is invalid or expired. Configure it with: brandlens config set-key <YOUR_API_KEY>"}
		}
		return nil, &APICallError{Message: fmt.Sprintf("API error: %s", resp.Status())}
	}

	parsed := ParseAgentResponse(resp.Body())
	if !parsed.Success {
		msg := parsed.Error
		if msg == "" {
			msg = parsed.Message()
		}
		if msg == "" {
			msg = "agent reported failure without a message"
		}
		return parsed, &APICallError{Message: msg}
	}
	return parsed, nil
}

// UploadFiles sends a local file to the agent platform and returns the asset
// ids to reference in a research message.
func (c *Client) UploadFiles(ctx context.Context, path string) (*UploadResult, error) {
	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetHeaders(c.getAuthHeader()).
		SetFile("file", path).
		Post(uploadPath)
	if err != nil {
		return nil, &UploadError{Message: "upload failed", Cause: err}
	}
	if resp.IsError() {
		return nil, &UploadError{Message: fmt.Sprintf("upload failed with status: %s", resp.Status())}
	}

	var result UploadResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &UploadError{Message: "could not parse upload response", Cause: err}
	}
	if !result.Success {
		return nil, &UploadError{Message: "upload rejected by the platform"}
	}
	return &result, nil
}

// DownloadFile downloads a file from url to destPath
func (c *Client) DownloadFile(url string, destPath string) error {
	resp, err := c.restyClient.R().SetOutput(destPath).Get(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("download failed with status: %s", resp.Status())
	}
	return nil
}

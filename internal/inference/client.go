// Package inference wraps the gRPC connection to the Python-side language
// model sidecar.
package inference

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/abdulmannaan502/thermal-copilot/gen/copilotpb"
)

// #region config
// GenerateConfig controls the sampling parameters sent with every request.
type GenerateConfig struct {
	MaxTokens   int32
	Temperature float32
}

// DefaultGenerateConfig returns the production sampling parameters. The
// temperature is kept low so the guardrail parser sees stable phrasing.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		MaxTokens:   350,
		Temperature: 0.2,
	}
}

// #endregion config

// #region client-struct
// Client wraps the gRPC connection to the inference service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.InferenceServiceClient
	config GenerateConfig
}

// #endregion client-struct

// #region constructor
// NewClient connects to the inference gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewInferenceServiceClient(conn),
		config: DefaultGenerateConfig(),
	}, nil
}

// NewClientWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.InferenceServiceClient) *Client {
	return &Client{client: svc, config: DefaultGenerateConfig()}
}

// SetConfig overrides the sampling parameters for subsequent requests.
func (c *Client) SetConfig(config GenerateConfig) {
	c.config = config
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection. Safe on injected-service clients.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region generate
// Generate sends a prompt to the inference service and returns the raw
// model text. The text is untrusted until it passes the guardrail parser.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Generate(ctx, &pb.GenerateRequest{
		Prompt:      prompt,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate rpc: %w", err)
	}
	return resp.Text, nil
}

// #endregion generate

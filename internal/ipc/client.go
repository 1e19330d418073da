package ipc

import (
	"context"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"time"

	"textanalyzer/internal/textutil"
)

const dialTimeout = 2 * time.Second

// Client provides RPC access to the daemon.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, dialTimeout)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Stop requests the daemon process to shut down.
func (c *Client) Stop(ctx context.Context) (*StopResponse, error) {
	var resp StopResponse
	if err := c.call(ctx, "Stop", StopRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status retrieves the daemon status.
func (c *Client) Status(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.call(ctx, "Status", StatusRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Analyze runs text analysis in the daemon.
func (c *Client) Analyze(ctx context.Context, text string) (*AnalyzeResponse, error) {
	var resp AnalyzeResponse
	if err := c.call(ctx, "Analyze", AnalyzeRequest{Text: text}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Similarity scores two texts in the daemon.
func (c *Client) Similarity(ctx context.Context, text1, text2 string) (*SimilarityResponse, error) {
	var resp SimilarityResponse
	if err := c.call(ctx, "Similarity", SimilarityRequest{Text1: text1, Text2: text2}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) call(ctx context.Context, method string, args, reply any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	call := c.client.Go(serviceName+"."+method, args, reply, make(chan *rpc.Call, 1))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case done := <-call.Done:
		return translateError(done.Error)
	}
}

// translateError restores textutil sentinels from server error strings.
func translateError(err error) error {
	serverErr, ok := err.(rpc.ServerError)
	if !ok {
		return err
	}
	msg := string(serverErr)
	for _, sentinel := range []error{textutil.ErrInvalidInput, textutil.ErrDegenerateInput} {
		prefix := sentinel.Error()
		if msg == prefix || strings.HasPrefix(msg, prefix+":") {
			return fmt.Errorf("%w%s", sentinel, strings.TrimPrefix(msg, prefix))
		}
	}
	return err
}

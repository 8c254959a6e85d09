package executor

import (
	"context"
	"errors"
	"fmt"
	"io"

	pb "github.com/mhollis/gridscan/gen/executorpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region client-struct

// Client is a Target backed by the executor gRPC service. One RunChunk call
// maps to one RPC: the chunk goes out in a single message and completion
// acknowledgments come back as a server stream, so control traffic across
// the expensive boundary is amortized over the chunk.
type Client struct {
	conn   *grpc.ClientConn
	client pb.ExecutorClient
}

// #endregion client-struct

// #region constructor

// NewClient connects to an executor gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, client: pb.NewExecutorClient(conn)}, nil
}

// NewClientWithService creates a Client with an injected service stub.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.ExecutorClient) *Client {
	return &Client{client: svc}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion constructor

// #region capabilities

// MaxAxes queries the server for the highest axis count it supports.
func (c *Client) MaxAxes(ctx context.Context) (int, error) {
	reply, err := c.client.Capabilities(ctx, &pb.CapabilitiesRequest{})
	if err != nil {
		return 0, fmt.Errorf("executor capabilities: %w", err)
	}
	return int(reply.MaxAxes), nil
}

// #endregion capabilities

// #region run-chunk

// RunChunk sends one chunk and consumes the per-point acknowledgment stream.
// Acks must arrive strictly in order; an out-of-order or short stream is a
// protocol error.
func (c *Client) RunChunk(ctx context.Context, axes [][]float64, done func(results PointResults)) error {
	numPoints := 0
	if len(axes) > 0 {
		numPoints = len(axes[0])
	}
	if numPoints == 0 {
		return nil
	}

	chunk := &pb.Chunk{Axes: make([]*pb.AxisBlock, len(axes))}
	for i, vs := range axes {
		if len(vs) != numPoints {
			return fmt.Errorf("executor chunk: axis %d has %d values, want %d", i, len(vs), numPoints)
		}
		chunk.Axes[i] = &pb.AxisBlock{Values: vs}
	}

	stream, err := c.client.RunChunk(ctx, chunk)
	if err != nil {
		return fmt.Errorf("executor run chunk: %w", err)
	}

	next := 0
	for {
		ack, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("executor ack stream: %w", err)
		}
		if int(ack.Index) != next {
			return fmt.Errorf("executor ack out of order: got point %d, want %d", ack.Index, next)
		}
		if len(ack.ChannelNames) != len(ack.ChannelValues) {
			return fmt.Errorf("executor ack for point %d: %d channel names, %d values",
				ack.Index, len(ack.ChannelNames), len(ack.ChannelValues))
		}
		results := make(PointResults, len(ack.ChannelNames))
		for i, name := range ack.ChannelNames {
			results[name] = ack.ChannelValues[i]
		}
		done(results)
		next++
	}

	if next != numPoints {
		return fmt.Errorf("executor acknowledged %d of %d points", next, numPoints)
	}
	return nil
}

// #endregion run-chunk

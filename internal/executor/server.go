package executor

import (
	"context"
	"log"
	"sort"

	pb "github.com/mhollis/gridscan/gen/executorpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// #region server

// Server exposes a point function as the executor gRPC service. It executes
// each point of a chunk in order and streams one acknowledgment per point,
// so the coordinating side can deliver results and checkpoint progress
// without extra round trips.
type Server struct {
	pb.UnimplementedExecutorServer

	fn      PointFunc
	maxAxes int
}

// NewServer creates a Server around fn. maxAxes of 0 means unbounded.
func NewServer(fn PointFunc, maxAxes int) *Server {
	return &Server{fn: fn, maxAxes: maxAxes}
}

// Capabilities reports the supported axis count.
func (s *Server) Capabilities(ctx context.Context, req *pb.CapabilitiesRequest) (*pb.CapabilitiesReply, error) {
	return &pb.CapabilitiesReply{MaxAxes: uint32(s.maxAxes)}, nil
}

// RunChunk executes every point of the chunk head-first, streaming an
// in-order acknowledgment per point.
func (s *Server) RunChunk(chunk *pb.Chunk, stream pb.Executor_RunChunkServer) error {
	if len(chunk.Axes) == 0 {
		return status.Error(codes.InvalidArgument, "chunk has no axes")
	}
	if s.maxAxes > 0 && len(chunk.Axes) > s.maxAxes {
		return status.Errorf(codes.InvalidArgument, "%d axes exceeds supported maximum %d", len(chunk.Axes), s.maxAxes)
	}
	numPoints := len(chunk.Axes[0].Values)
	for i, block := range chunk.Axes {
		if len(block.Values) != numPoints {
			return status.Errorf(codes.InvalidArgument, "axis %d has %d values, want %d", i, len(block.Values), numPoints)
		}
	}

	ctx := stream.Context()
	log.Printf("[EXEC] chunk: %d points x %d axes", numPoints, len(chunk.Axes))

	for i := 0; i < numPoints; i++ {
		if err := ctx.Err(); err != nil {
			return status.FromContextError(err).Err()
		}
		point := make([]float64, len(chunk.Axes))
		for a, block := range chunk.Axes {
			point[a] = block.Values[i]
		}
		results, err := s.fn(ctx, point)
		if err != nil {
			return status.Errorf(codes.Internal, "point %d: %v", i, err)
		}
		if err := stream.Send(pointResultMessage(i, results)); err != nil {
			return err
		}
	}
	return nil
}

// #endregion server

// #region helpers

// pointResultMessage flattens a result map into the wire form, with channel
// names sorted so the encoding is deterministic.
func pointResultMessage(index int, results PointResults) *pb.PointResult {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	msg := &pb.PointResult{Index: uint32(index)}
	for _, name := range names {
		msg.ChannelNames = append(msg.ChannelNames, name)
		msg.ChannelValues = append(msg.ChannelValues, results[name])
	}
	return msg
}

// #endregion helpers

// executord serves the executor gRPC service: it runs scan point chunks
// against the built-in synthetic measurement and streams per-point
// completion acks back in order. scanrun --executor points at it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"

	"google.golang.org/grpc"

	pb "github.com/mhollis/gridscan/gen/executorpb"
	"github.com/mhollis/gridscan/internal/executor"
)

// #region main

func main() {
	addr := flag.String("addr", envOr("EXECUTOR_ADDR", "localhost:50061"), "listen address")
	maxAxes := flag.Int("max-axes", 3, "highest axis count served (0 = unbounded)")
	flag.Parse()

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("listen on %s: %v", *addr, err)
	}

	srv := grpc.NewServer()
	pb.RegisterExecutorServer(srv, executor.NewServer(syntheticPeak, *maxAxes))

	fmt.Printf("executord listening on %s (max axes %d)\n", *addr, *maxAxes)
	if err := srv.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// syntheticPeak mirrors scanrun's built-in measurement: a unit peak at the
// origin of the scanned coordinates.
func syntheticPeak(ctx context.Context, point []float64) (executor.PointResults, error) {
	var sq float64
	for _, v := range point {
		sq += v * v
	}
	return executor.PointResults{"readout": 1 / (1 + sq)}, nil
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
// #endregion helpers

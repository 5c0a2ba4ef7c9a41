// memkitdemo composes memkit's policies into a runnable allocator and
// exercises a set of non-core dependencies around it: a gRPC
// introspection service, two alternate event-publishing transports,
// and a pebble-backed snapshot store. None of this lives inside the
// memkit library itself — alloc and block stay file-, wire-, and
// network-free.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"

	"memkit/alloc"
	"memkit/cmd/memkitdemo/broadcaster"
	"memkit/cmd/memkitdemo/eventlog"
	"memkit/cmd/memkitdemo/introspect"
	"memkit/cmd/memkitdemo/snapshot"
)

func main() {
	var (
		grpcAddr   = flag.String("grpc-addr", ":50061", "introspection gRPC listen address")
		snapDir    = flag.String("snapshot-dir", "./memkitdemo_snapshots", "pebble directory for stats snapshots")
		kafkaTopic = flag.String("kafka-topic", "memkit-allocations", "topic for allocation events")
		brokers    = flag.String("brokers", "localhost:9092", "comma-separated broker list")
		transport  = flag.String("event-transport", "sarama", "sarama or kafka-go")
	)
	flag.Parse()

	// ---------------- Allocator stack ----------------
	//
	// Arena(4096) fronted by a size-class free list, falling back to the
	// heap when the arena is exhausted, wrapped in Stats for
	// observability: a stack arena backed by a heap fallback, fronted by
	// a free list, wrapped in instrumentation.
	fb := &alloc.Fallback[*alloc.Arena, alloc.Heap]{
		Primary:  alloc.NewArena(4096),
		Fallback: alloc.NewHeap(),
	}
	fl := alloc.NewFreeList(fb, 16, 256, 64)
	stats := alloc.NewStats(fl, 256)
	defer stats.Close()
	defer fl.Close()

	// ---------------- Snapshot store ----------------

	store, err := snapshot.Open(*snapDir)
	if err != nil {
		log.Fatalf("snapshot store init failed: %v", err)
	}
	defer store.Close()

	// ---------------- Event transport ----------------

	brokerList := []string{*brokers}

	var publish func(pool string, size int64)
	switch *transport {
	case "kafka-go":
		prod := eventlog.NewProducer(brokerList, *kafkaTopic)
		defer prod.Close()
		publish = func(pool string, size int64) {
			ev := eventlog.AllocationEvent{Pool: pool, Size: size, At: time.Now().UnixNano()}
			if err := prod.Publish(context.Background(), ev); err != nil {
				log.Printf("[eventlog] publish failed: %v", err)
			}
		}
	default:
		bc, err := broadcaster.New(brokerList, *kafkaTopic)
		if err != nil {
			log.Fatalf("broadcaster init failed: %v", err)
		}
		defer bc.Close()
		publish = func(pool string, size int64) {
			bc.Publish(broadcaster.Event{Pool: pool, Size: size, At: time.Now().UnixNano()})
		}
	}

	// ---------------- Shared demonstration ----------------
	//
	// A Shared allocator adds no synchronization of its own. Two demo
	// goroutines below share one Arena-backed pool under a
	// caller-supplied mutex: a producer allocates and retires Blocks
	// into ring, a consumer drains ring on a ticker and calls
	// Deallocate, and the mutex is what makes both sides of that split
	// safe.
	shared := alloc.NewShared[*alloc.Arena]("memkitdemo-pool", func() *alloc.Arena {
		return alloc.NewArena(8192)
	})
	var sharedMu sync.Mutex
	ring := newRetireRing(1 << 12)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				drainRetired(shared, &sharedMu, ring)
			}
		}
	}()

	// Produces the contention drainRetired above consumes: each tick
	// takes sharedMu to allocate from the shared pool, then retires the
	// block into ring instead of deallocating it inline.
	go func() {
		for i := 0; ; i++ {
			sharedMu.Lock()
			b := shared.Allocate(int64(16 + (i % 32)))
			sharedMu.Unlock()

			if !b.Empty() && !ring.enqueue(b) {
				sharedMu.Lock()
				shared.Deallocate(&b)
				sharedMu.Unlock()
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()

	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := store.Put(snapshot.Entry{
					At:             snapshot.Now(),
					TotalAllocated: stats.TotalAllocated(),
					RecordCount:    stats.StatsListSize(),
				}); err != nil {
					log.Printf("[snapshot] put failed: %v", err)
				}
			}
		}
	}()

	// Simulate hot-path allocation traffic so Stats and the event
	// transport have something to observe.
	go func() {
		for i := 0; ; i++ {
			b, err := alloc.Allocate(stats, int64(32+(i%64)))
			if err == nil {
				publish("memkitdemo", b.Size)
				alloc.Deallocate(stats, &b)
			}
			time.Sleep(10 * time.Millisecond)
		}
	}()

	// ---------------- gRPC introspection ----------------

	lis, err := net.Listen("tcp", *grpcAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	grpcSrv.RegisterService(&introspect.ServiceDesc, introspect.NewServer(stats))

	fmt.Printf("memkitdemo introspection service running on %s\n", *grpcAddr)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}

// drainRetired returns every Block currently sitting in ring to shared,
// serialized by mu since Shared itself provides no locking.
func drainRetired(shared *alloc.Shared[*alloc.Arena], mu *sync.Mutex, ring *retireRing) {
	mu.Lock()
	defer mu.Unlock()
	for {
		b, ok := ring.dequeue()
		if !ok {
			return
		}
		shared.Deallocate(&b)
	}
}

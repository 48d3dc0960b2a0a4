// Package main implements livemem_eg - demonstrates the read-through
// cache against an in-process fake target: a cold read that captures
// live bytes, a warm read that hits the cache, and a degraded read over
// an unmapped hole.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pafh99/livemem/addrs"
	"github.com/pafh99/livemem/cache"
	"github.com/pafh99/livemem/target"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "livemem_eg: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)

	ram := addrs.MemorySpace("ram")

	// A fake live target with 64 bytes of RAM mapped at 0x1000 and a
	// 16-byte unmapped hole at 0x1040.
	fake := target.NewFakeTarget()
	live := make([]byte, 64)
	for i := range live {
		live[i] = byte(i)
	}
	fake.Seed(ram, 0x1000, live)
	fake.Seed(ram, 0x1050, []byte{0xFE, 0xED, 0xFA, 0xCE})
	fake.SetLatency(5 * time.Millisecond)

	piece := cache.NewStatePiece(fake.Access(), target.Fills(target.WithLogger(log)))
	ctx := context.Background()

	// Cold read: nothing cached yet, every byte is captured live.
	data, err := piece.Read(ctx, ram, 0x1000, 16)
	if err != nil {
		return err
	}
	log.Infof("cold read  0x1000: % X", data)

	// Warm read: same range, no target traffic this time.
	data, err = piece.Read(ctx, ram, 0x1000, 16)
	if err != nil {
		return err
	}
	log.Infof("warm read  0x1000: % X", data)

	// Degraded read: [0x1040,0x1050) is unmapped on the target, so the
	// cache warns and returns placeholder zeros for the hole.
	data, err = piece.Read(ctx, ram, 0x1038, 32)
	if err != nil {
		return err
	}
	log.Infof("holed read 0x1038: % X", data)

	return nil
}

package main

import (
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/avdeyev/tlog"
)

const (
	numProducers    = 50
	logsPerProducer = 1000
)

var levels = []tlog.Level{
	tlog.LevelTrace,
	tlog.LevelDebug,
	tlog.LevelInfo,
	tlog.LevelWarning,
	tlog.LevelError,
	tlog.LevelCritical,
}

// Concurrent-producer stress run: N goroutines hammer one sink, then a
// clean shutdown must leave every accepted message on disk.
func main() {
	fmt.Println("--- Sink Stress Test ---")

	logger, err := tlog.NewBuilder().
		Level(tlog.LevelTrace).
		Target(tlog.TargetFile).
		FilePath("./logs/stress.log").
		TimestampSuffix(true).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()

	var wg sync.WaitGroup
	for p := 0; p < numProducers; p++ {
		wg.Add(1)
		go func(producerID int) {
			defer wg.Done()
			for i := 0; i < logsPerProducer; i++ {
				level := levels[rand.Intn(len(levels))]
				logger.Log(level,
					fmt.Sprintf("producer=%d seq=%d", producerID, i),
					"stress", 0)
			}
		}(p)
	}
	wg.Wait()

	submitted := time.Since(start)
	fmt.Printf("Submitted %d messages in %v\n", numProducers*logsPerProducer, submitted)

	if err := logger.Shutdown(30 * time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Drained and shut down in %v total\n", time.Since(start))
}

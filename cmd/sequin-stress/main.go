package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/sequin/animator"
	"github.com/plus3/sequin/easing"
	"github.com/plus3/sequin/tween"
)

var curves = []easing.Easing{
	easing.Linear{},
	easing.Powi(2),
	easing.Powi(3),
	easing.Powf(1.5),
	easing.DefaultBack(),
	easing.EaseOut(easing.Powi(2)),
	easing.EaseOut(easing.DefaultBack()),
	easing.EaseInOut(easing.Powi(3)),
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	sequenceCount := flag.Int("sequences", 10000, "The number of sequences kept alive at all times.")
	stageCount := flag.Int("stages", 4, "The maximum number of stages per sequence.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if err := validateFlags(*duration, *sequenceCount, *stageCount); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	log.Println("Starting sequence stress test...")

	// 1. Populate the animator
	anim := animator.New()
	log.Printf("Populating animator with %d sequences...\n", *sequenceCount)
	for i := 0; i < *sequenceCount; i++ {
		anim.Add(RandomSequence(rand.Intn(*stageCount) + 1))
	}
	log.Println("Population complete.")

	// 2. Run the update loop
	report := &Report{
		Duration:  *duration,
		Sequences: *sequenceCount,
		Stages:    *stageCount,
		Curves:    len(curves),

		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			anim.Once(float32(deltaTime.Seconds()))

			// Keep the population constant by replacing what finished
			if pruned := anim.Prune(); pruned > 0 {
				report.Completed += int64(pruned)
				for i := 0; i < pruned; i++ {
					anim.Add(RandomSequence(rand.Intn(*stageCount) + 1))
				}
			}
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.AnimatorStats = *anim.Stats()
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

func validateFlags(duration time.Duration, sequences, stages int) error {
	switch {
	case duration <= 0:
		return fmt.Errorf("-duration must be positive, got %s", duration)
	case sequences < 1:
		return fmt.Errorf("-sequences must be at least 1, got %d", sequences)
	case stages < 1:
		return fmt.Errorf("-stages must be at least 1, got %d", stages)
	}
	return nil
}

// RandomSequence builds a 2D sequence with the given number of stages, mixing
// tweens and waits with durations between 50ms and 2s.
func RandomSequence(stages int) *tween.Sequence[tween.Vec2] {
	seq := tween.NewSequence(randomPoint())
	for i := 0; i < stages; i++ {
		d := 0.05 + rand.Float32()*1.95
		if rand.Intn(4) == 0 {
			seq.Wait(d)
			continue
		}
		seq.Tween(d, randomPoint(), curves[rand.Intn(len(curves))])
	}
	return seq
}

func randomPoint() tween.Vec2 {
	return tween.Vec2{X: rand.Float32() * 1000, Y: rand.Float32() * 1000}
}

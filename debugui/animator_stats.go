package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sequin/animator"
)

// AnimatorStatsWindow shows animator counters and a rolling frame time graph.
type AnimatorStatsWindow struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewAnimatorStatsWindow keeps the last historyFrames frame times, at least one.
func NewAnimatorStatsWindow(historyFrames int) *AnimatorStatsWindow {
	historyFrames = max(historyFrames, 1)
	return &AnimatorStatsWindow{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record stores a frame time in seconds, overwriting the oldest entry.
func (w *AnimatorStatsWindow) Record(deltaTime float32) {
	w.frameHistory[w.frameIndex] = deltaTime * 1000.0
	w.frameIndex = (w.frameIndex + 1) % w.historyFrames
}

// AverageFrameTime is the mean of the recorded history in milliseconds.
func (w *AnimatorStatsWindow) AverageFrameTime() float32 {
	var total float32
	for _, ft := range w.frameHistory {
		total += ft
	}
	return total / float32(w.historyFrames)
}

// Render records deltaTime and draws the window for a.
func (w *AnimatorStatsWindow) Render(a *animator.Animator, deltaTime float32) {
	if !imgui.BeginV("Animator Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	w.Record(deltaTime)

	stats := a.Stats()

	imgui.Text(fmt.Sprintf("Live: %d", stats.Live))
	imgui.Text(fmt.Sprintf("Finished: %d", stats.Finished))
	imgui.Text(fmt.Sprintf("Pruned: %d", stats.Pruned))
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Tick cost: %s avg, %s max", stats.AvgDuration, stats.MaxDuration))

	avgFrameTime := w.AverageFrameTime()

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &w.frameHistory[0], int32(len(w.frameHistory)))

	imgui.End()
}

// FrameTimer measures wall time between frames.
type FrameTimer struct {
	lastFrameTime time.Time
}

// NewFrameTimer starts timing from now.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// GetDeltaTime returns the seconds since the previous call and restarts the
// measurement.
func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}

// Package debugui provides Dear ImGui windows for inspecting sequences and the
// animator while a host application is running.
package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/sequin/tween"
)

const curveSamples = 64

// SequenceInspector shows the stages, playhead and current value of a
// sequence, and lets the user pause, step or reset it. The host reads Paused
// and StepRequested to decide how to advance the sequence.
type SequenceInspector[T any] struct {
	Title  string
	Paused bool

	step          bool
	selectedStage int
	curve         []float32
	curveStage    int
}

// NewSequenceInspector creates an inspector window with the given title.
func NewSequenceInspector[T any](title string) *SequenceInspector[T] {
	return &SequenceInspector[T]{
		Title:      title,
		curveStage: -1,
	}
}

// StepRequested reports, once, that the Step button was pressed.
func (si *SequenceInspector[T]) StepRequested() bool {
	step := si.step
	si.step = false
	return step
}

// Render draws the window for seq. It never advances the sequence.
func (si *SequenceInspector[T]) Render(seq *tween.Sequence[T]) {
	if !imgui.BeginV(si.Title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := TakeSnapshot(seq)

	imgui.Checkbox("Paused", &si.Paused)
	imgui.SameLine()
	if imgui.Button("Step") {
		si.step = true
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		seq.Reset()
	}

	imgui.Separator()
	if snap.Finished {
		imgui.Text(fmt.Sprintf("Finished (%.2fs total)", snap.Total))
	} else {
		imgui.Text(fmt.Sprintf("Stage %d/%d  %.2fs in", snap.Active+1, len(snap.Stages), snap.Elapsed))
	}
	imgui.ProgressBarV(snap.Progress, imgui.NewVec2(-1, 0), fmt.Sprintf("%.0f%%", snap.Progress*100))

	for _, line := range snap.Value {
		imgui.Text(fmt.Sprintf("%s: %s", line.Path, line.Value))
	}

	if imgui.TreeNodeStr("Stages") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("StageTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("#")
			imgui.TableSetupColumn("Duration")
			imgui.TableSetupColumn("Easing")
			imgui.TableSetupColumn("State")
			imgui.TableHeadersRow()

			for _, row := range snap.Stages {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				if imgui.SelectableBool(fmt.Sprintf("%d", row.Index)) {
					si.selectedStage = row.Index
				}
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.2fs", row.Duration))
				imgui.TableNextColumn()
				imgui.Text(row.Easing)
				imgui.TableNextColumn()
				switch {
				case row.Active:
					imgui.Text("active")
				case row.Done:
					imgui.Text("done")
				default:
					imgui.Text("pending")
				}
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if si.selectedStage < len(snap.Stages) && imgui.TreeNodeStr("Curve") {
		si.renderCurve(seq, si.selectedStage)
		imgui.TreePop()
	}

	imgui.End()
}

func (si *SequenceInspector[T]) renderCurve(seq *tween.Sequence[T], stage int) {
	st := seq.Stages()[stage]
	if si.curveStage != stage || si.curve == nil {
		si.curve = SampleEasing(st.Easing, curveSamples)
		si.curveStage = stage
	}

	title := fmt.Sprintf("Stage %d: %s", stage, DescribeEasing(st.Easing))
	if implot.BeginPlotV(title, imgui.NewVec2(-1, 200), 0) {
		implot.SetupAxesV("sample", "eased", implot.AxisFlagsAutoFit, implot.AxisFlagsAutoFit)
		implot.PlotLineFloatPtrInt("ease", &si.curve[0], int32(len(si.curve)))
		implot.EndPlot()
	}
}

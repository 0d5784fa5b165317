package plot

import (
	"math"
	"strconv"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

// ComputePanelDimensions applies the width/height clamp rules used for panels.
// windowW is the window width in pixels; grid figures split it over two columns.
func ComputePanelDimensions(windowW int, grid bool) (int, int) {
	w := windowW
	if grid {
		w = windowW/2 - 12
	}
	if w < 400 {
		w = 400
	}
	h := int(float32(w) * 0.66)
	if h < 260 {
		h = 260
	}
	if h > 640 {
		h = 640
	}
	return w, h
}

// pow10Floor returns 10^floor(log10(x)) safeguarding tiny values.
func pow10Floor(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Pow(10, math.Floor(math.Log10(x)))
}

// round6 rounds to 6 decimal places to stabilize labels.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// BuildNumericTicks generates up to n tick marks spanning [min,max] using a 1,2,2.5,5 step pattern.
// The first and last ticks enclose the input interval.
func BuildNumericTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	if max <= min {
		max = min + math.Max(1, math.Abs(min)*0.05)
	}
	span := max - min
	if !(span > 0) || math.IsInf(span, 0) {
		return nil
	}
	mag := pow10Floor(span / float64(n-1))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if count < 2 {
			count = 2
		}
		diff := math.Abs(count - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []float64
	for v := start; v <= end+bestStep*0.5; v += bestStep {
		out = append(out, round6(v))
		if len(out) > 4*n {
			break
		}
	}
	if len(out) < 2 {
		out = []float64{min, max}
	}
	return out
}

// FormatNumericTick provides a compact label.
func FormatNumericTick(v float64) string {
	av := math.Abs(v)
	switch {
	case v == 0:
		return "0"
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}

// valueAxis returns an explicit range and ticks for data in [min,max]. With
// no finite data it falls back to [0,1].
func valueAxis(min, max float64, n int) (*chart.ContinuousRange, []chart.Tick) {
	vals := BuildNumericTicks(min, max, n)
	if len(vals) < 2 {
		vals = []float64{0, 0.5, 1}
	}
	ticks := make([]chart.Tick, len(vals))
	for i, v := range vals {
		ticks[i] = chart.Tick{Value: v, Label: FormatNumericTick(v)}
	}
	return &chart.ContinuousRange{Min: vals[0], Max: vals[len(vals)-1]}, ticks
}

// pickTimeStep selects a readable step and label format for a given time span.
func pickTimeStep(span time.Duration) (time.Duration, string) {
	switch {
	case span <= 10*time.Second:
		return 1 * time.Second, "15:04:05"
	case span <= 30*time.Second:
		return 5 * time.Second, "15:04:05"
	case span <= 2*time.Minute:
		return 20 * time.Second, "15:04:05"
	case span <= 10*time.Minute:
		return 2 * time.Minute, "15:04"
	case span <= 30*time.Minute:
		return 5 * time.Minute, "15:04"
	case span <= 2*time.Hour:
		return 20 * time.Minute, "15:04"
	case span <= 6*time.Hour:
		return 1 * time.Hour, "Jan 2 15:04"
	case span <= 24*time.Hour:
		return 4 * time.Hour, "Jan 2 15:04"
	case span <= 3*24*time.Hour:
		return 12 * time.Hour, "Jan 2 15:04"
	case span <= 14*24*time.Hour:
		return 2 * 24 * time.Hour, "Jan 2"
	default:
		return 7 * 24 * time.Hour, "Jan 2"
	}
}

// makeNiceTimeTicks returns step-aligned ticks covering [minT,maxT], labelled in UTC.
func makeNiceTimeTicks(minT, maxT time.Time, step time.Duration, labelFmt string) []chart.Tick {
	if step <= 0 {
		return nil
	}
	st := int64(step / time.Second)
	if st <= 0 {
		st = 1
	}
	s := minT.UTC().Unix()
	aligned := time.Unix((s/st)*st, 0).UTC()
	var ticks []chart.Tick
	for t := aligned; !t.After(maxT.UTC().Add(step)); t = t.Add(step) {
		ticks = append(ticks, chart.Tick{Value: float64(chart.TimeToFloat64(t)), Label: t.Format(labelFmt)})
		if len(ticks) > 20 {
			break
		}
	}
	return ticks
}

// timeAxis builds an x axis over the finite times; a single instant is
// widened by one step so the range is never empty.
func timeAxis(name string, times []time.Time) chart.XAxis {
	var minT, maxT time.Time
	for _, t := range times {
		if t.IsZero() {
			continue
		}
		if minT.IsZero() || t.Before(minT) {
			minT = t
		}
		if maxT.IsZero() || t.After(maxT) {
			maxT = t
		}
	}
	if minT.IsZero() {
		return chart.XAxis{Name: name}
	}
	step, labFmt := pickTimeStep(maxT.Sub(minT))
	if !maxT.After(minT) {
		maxT = minT.Add(step)
	}
	ticks := makeNiceTimeTicks(minT, maxT, step, labFmt)
	minF := float64(chart.TimeToFloat64(minT))
	maxF := float64(chart.TimeToFloat64(maxT))
	if len(ticks) > 0 {
		minF = math.Min(minF, ticks[0].Value)
		maxF = math.Max(maxF, ticks[len(ticks)-1].Value)
	}
	return chart.XAxis{Name: name, Ticks: ticks, Range: &chart.ContinuousRange{Min: minF, Max: maxF}}
}

// indexAxis builds an x axis over row numbers 0..rows-1.
func indexAxis(rows int) chart.XAxis {
	hi := float64(rows - 1)
	if hi < 1 {
		hi = 1
	}
	rng, ticks := valueAxis(0, hi, 6)
	return chart.XAxis{Name: "index", Ticks: ticks, Range: rng}
}

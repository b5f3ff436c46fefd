package web

import (
	"strconv"

	"github.com/ironsheep/vision-demos/internal/imaging"
	"github.com/ironsheep/vision-demos/internal/playground"
)

// field is one input of an operation's parameter form.
type field struct {
	Name  string
	Label string
	Type  string // number, range or text
	Min   string
	Max   string
	Step  string
	Value string
}

func numberField(name, label string, value int) field {
	return field{Name: name, Label: label, Type: "number", Value: strconv.Itoa(value)}
}

func minField(name, label string, value, min int) field {
	f := numberField(name, label, value)
	f.Min = strconv.Itoa(min)
	return f
}

func boundedField(name, label string, value, min, max int) field {
	f := minField(name, label, value, min)
	f.Max = strconv.Itoa(max)
	return f
}

func sliderField(name, label string, value, min, max, step int) field {
	return field{
		Name:  name,
		Label: label,
		Type:  "range",
		Min:   strconv.Itoa(min),
		Max:   strconv.Itoa(max),
		Step:  strconv.Itoa(step),
		Value: strconv.Itoa(value),
	}
}

func colorFields(p playground.Params) []field {
	return []field{
		sliderField("r", "Red (Color)", p.R, 0, 255, 1),
		sliderField("g", "Green (Color)", p.G, 0, 255, 1),
		sliderField("b", "Blue (Color)", p.B, 0, 255, 1),
	}
}

// formFields lists the inputs of op, prefilled from p.
func formFields(op playground.Operation, p playground.Params) []field {
	switch op {
	case playground.OpResize:
		return []field{
			boundedField("width", "Width", p.Width, 1, imaging.MaxDimension),
			boundedField("height", "Height", p.Height, 1, imaging.MaxDimension),
		}
	case playground.OpShift:
		return []field{
			numberField("dx", "X-axis Shift (pixels)", p.DX),
			numberField("dy", "Y-axis Shift (pixels)", p.DY),
		}
	case playground.OpDrawLine:
		fields := []field{
			numberField("start_x", "Start X", p.StartX),
			numberField("start_y", "Start Y", p.StartY),
			numberField("end_x", "End X", p.EndX),
			numberField("end_y", "End Y", p.EndY),
		}
		fields = append(fields, colorFields(p)...)
		return append(fields, boundedField("thickness", "Thickness", p.Thickness, 1, imaging.MaxThickness))
	case playground.OpDrawCircle:
		fields := []field{
			numberField("center_x", "Center X", p.CenterX),
			numberField("center_y", "Center Y", p.CenterY),
			minField("radius", "Radius", p.Radius, 1),
		}
		fields = append(fields, colorFields(p)...)
		return append(fields, boundedField("thickness", "Thickness", p.Thickness, 1, imaging.MaxThickness))
	case playground.OpGaussianBlur:
		return []field{sliderField("kernel_size", "Kernel Size (odd number)", p.KernelSize, 1, imaging.MaxKernelSize, 2)}
	case playground.OpThreshold:
		return []field{
			sliderField("threshold", "Threshold Value", p.Threshold, 0, 255, 1),
			sliderField("max_value", "Max Value", p.MaxValue, 0, 255, 1),
		}
	case playground.OpCanny:
		return []field{
			sliderField("lower_threshold", "Lower Threshold", p.LowerThreshold, 0, 255, 1),
			sliderField("upper_threshold", "Upper Threshold", p.UpperThreshold, 0, 255, 1),
		}
	case playground.OpPutText:
		fields := []field{
			{Name: "text", Label: "Text to Write", Type: "text", Value: p.Text},
			numberField("x", "Position X", p.X),
			numberField("y", "Position Y", p.Y),
			{
				Name:  "font_scale",
				Label: "Font Scale",
				Type:  "range",
				Min:   strconv.FormatFloat(imaging.MinFontScale, 'f', -1, 64),
				Max:   strconv.FormatFloat(imaging.MaxFontScale, 'f', -1, 64),
				Step:  "0.1",
				Value: strconv.FormatFloat(p.FontScale, 'f', -1, 64),
			},
		}
		fields = append(fields, colorFields(p)...)
		return append(fields, boundedField("thickness", "Thickness", p.Thickness, 1, imaging.MaxThickness))
	}
	return nil
}

var applyLabels = map[playground.Operation]string{
	playground.OpResize:       "Apply Resize",
	playground.OpShift:        "Apply Shift",
	playground.OpDrawLine:     "Draw Line",
	playground.OpDrawCircle:   "Draw Circle",
	playground.OpGaussianBlur: "Apply Blur",
	playground.OpThreshold:    "Apply Threshold",
	playground.OpCanny:        "Apply Edge Detection",
	playground.OpPutText:      "Write Text",
}

// applyLabel is the submit button text for op.
func applyLabel(op playground.Operation) string {
	if l, ok := applyLabels[op]; ok {
		return l
	}
	return "Show Image"
}

// menuOption is one entry of the operation select box.
type menuOption struct {
	Value    string
	Label    string
	Selected bool
}

// menuGroup holds the options of one menu entry. Label is set only for
// entries with sub-choices, such as "Draw Shape".
type menuGroup struct {
	Label   string
	Options []menuOption
}

// menuGroups renders the playground menu with selected marked.
func menuGroups(selected playground.Operation) []menuGroup {
	groups := make([]menuGroup, 0, len(playground.Menu))
	for _, entry := range playground.Menu {
		g := menuGroup{}
		if len(entry.Operations) > 1 {
			g.Label = entry.Label
		}
		for _, op := range entry.Operations {
			label := op.Label()
			if g.Label == "" {
				label = entry.Label
			}
			g.Options = append(g.Options, menuOption{
				Value:    string(op),
				Label:    label,
				Selected: op == selected,
			})
		}
		groups = append(groups, g)
	}
	return groups
}

package figure

import "reflect"

// A Dataset is one singular data-like object. Grouping places no
// requirement on the element type; drawing does: line and scatter methods
// need a plotter.XYer, image methods need a plotter.GridXYZ, the segments
// projection needs a *SegmentSet. A Dataset that is already a plot.Plotter
// is added to its axes as-is.
type Dataset = interface{}

// An Input is one data argument to New: a Dataset, a List or a Dict.
type Input = interface{}

// A List is an ordered collection of datasets destined for one axes.
type List []Dataset

// A Dict is an ordered mapping of datasets. Its values end up together on
// one axes, in insertion order.
type Dict []DictEntry

// A DictEntry is one key/value pair of a Dict.
type DictEntry struct {
	Key   string
	Value Dataset
}

// Values returns the dict values in insertion order.
func (d Dict) Values() []Dataset {
	vs := make([]Dataset, len(d))
	for i, e := range d {
		vs[i] = e.Value
	}
	return vs
}

// A Group is the ordered set of datasets rendered together on one axes.
// Groups are assigned to the grid left-to-right, top-to-bottom.
type Group []Dataset

// A Tristate is a bool with an additional "unset" state. The zero value is
// Auto.
type Tristate uint8

const (
	Auto Tristate = iota
	On
	Off
)

// groupInputs splits the flat input list into one Group per axes.
//
// With separate == Auto the split is inferred: any List or Dict input, or
// inputs of differing concrete type, force one group per singular input.
// Otherwise all singular inputs join a single group. List inputs always
// form their own group, Dict inputs their own group of values.
//
//	groupInputs([]Input{1, 2}, Off)  ->  [[1 2]]
//	groupInputs([]Input{1, 2}, On)   ->  [[1] [2]]
//	groupInputs([]Input{List{1, 2}, 3}, Auto)  ->  [[1 2] [3]]
func groupInputs(inputs []Input, separate Tristate) []Group {
	if separate == Auto && len(inputs) > 0 {
		for _, in := range inputs {
			switch in.(type) {
			case List, Dict:
				separate = On
			}
		}
		// Inputs of differing concrete type default to separate axes.
		if separate == Auto {
			first := reflect.TypeOf(inputs[0])
			for _, in := range inputs[1:] {
				if reflect.TypeOf(in) != first {
					separate = On
					break
				}
			}
		}
	}

	var out []Group
	for _, in := range inputs {
		switch v := in.(type) {
		case Dict:
			out = append(out, Group(v.Values()))
		case List:
			out = append(out, Group(v))
		default:
			if separate == On || len(out) == 0 {
				out = append(out, Group{v})
			} else {
				out[len(out)-1] = append(out[len(out)-1], v)
			}
		}
	}
	return out
}

// flattenInputs returns the concatenation of all groups in order,
// discarding the grouping. It is used to probe properties that hold across
// the whole figure, like a common x-axis unit.
func flattenInputs(inputs []Input) []Dataset {
	var flat []Dataset
	for _, g := range groupInputs(inputs, Auto) {
		flat = append(flat, g...)
	}
	return flat
}

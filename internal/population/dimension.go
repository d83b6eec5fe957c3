package population

import (
	"strconv"

	"github.com/abhisek/lipredict/internal/features"
)

// ChartKind selects how a table is drawn.
type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// Dimension describes one demographic column and how to present it.
type Dimension struct {
	Column  string
	Title   string
	Axis    string
	Kind    ChartKind
	Caption string
	label   func(key float64) string
}

// Label returns the readable group label for a raw key.
func (d Dimension) Label(key float64) string {
	if d.label != nil {
		return d.label(key)
	}
	return formatKey(key)
}

// Dimensions are the six population breakdowns in display order.
var Dimensions = []Dimension{
	{
		Column:  features.FieldIncome,
		Title:   "Income Level",
		Axis:    "Income Level",
		Kind:    ChartBar,
		Caption: "The data suggests higher income levels are showing a greater likelihood of LinkedIn usage.",
		label:   optionLabel(features.IncomeLabel),
	},
	{
		Column:  features.FieldEducation,
		Title:   "Education Level",
		Axis:    "Education Level",
		Kind:    ChartBar,
		Caption: "The data shows LinkedIn usage increases as education levels increase.",
		label:   optionLabel(features.EducationLabel),
	},
	{
		Column:  features.FieldAge,
		Title:   "Age",
		Axis:    "Age",
		Kind:    ChartLine,
		Caption: "The data shows LinkedIn usage is highest among individuals in early and mid career stages and decreases at older ages.",
	},
	{
		Column:  features.FieldParent,
		Title:   "Parent Status",
		Axis:    "Parent Status",
		Kind:    ChartBar,
		Caption: "Parent status shows only small differences in LinkedIn usage.",
		label:   binaryLabel("Non Parent", "Parent"),
	},
	{
		Column:  features.FieldMarried,
		Title:   "Marital Status",
		Axis:    "Marital Status",
		Kind:    ChartBar,
		Caption: "Marital status shows minimal variation in LinkedIn usage behavior.",
		label:   binaryLabel("Not Married", "Married"),
	},
	{
		Column:  features.FieldFemale,
		Title:   "Gender",
		Axis:    "Gender",
		Kind:    ChartBar,
		Caption: "Gender does not show a strong influence on LinkedIn usage patterns in this dataset.",
		label:   binaryLabel("Male", "Female"),
	},
}

// DimensionFor returns the dimension for a column name.
func DimensionFor(column string) (Dimension, bool) {
	for _, d := range Dimensions {
		if d.Column == column {
			return d, true
		}
	}
	return Dimension{}, false
}

func binaryLabel(zero, one string) func(float64) string {
	return func(key float64) string {
		switch key {
		case 0:
			return zero
		case 1:
			return one
		default:
			return formatKey(key)
		}
	}
}

func optionLabel(lookup func(int) (string, bool)) func(float64) string {
	return func(key float64) string {
		if key == float64(int(key)) {
			if l, ok := lookup(int(key)); ok {
				return l
			}
		}
		return formatKey(key)
	}
}

func formatKey(key float64) string {
	return strconv.FormatFloat(key, 'f', -1, 64)
}

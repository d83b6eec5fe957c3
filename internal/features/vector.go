package features

import "fmt"

// Field names in the order the classifier was trained on.
const (
	FieldIncome    = "income"
	FieldEducation = "education"
	FieldParent    = "parent"
	FieldMarried   = "married"
	FieldFemale    = "female"
	FieldAge       = "age"
)

// Names is the canonical feature order. Vector.Values and the model's
// coefficients both follow it.
var Names = []string{FieldIncome, FieldEducation, FieldParent, FieldMarried, FieldFemale, FieldAge}

// DisplayNames are the chart labels for Names, index for index.
var DisplayNames = []string{"Income", "Education", "Parent", "Married", "Female", "Age"}

// Count is the number of features in a Vector.
const Count = 6

// Age bounds accepted by the form and the encoder.
const (
	MinAge     = 18
	MaxAge     = 98
	DefaultAge = 28
)

// Vector is the numeric encoding of one person's selections.
type Vector struct {
	Income    int `json:"income"`
	Education int `json:"education"`
	Parent    int `json:"parent"`
	Married   int `json:"married"`
	Female    int `json:"female"`
	Age       int `json:"age"`
}

// Values returns the vector as floats in canonical order.
func (v Vector) Values() []float64 {
	return []float64{
		float64(v.Income),
		float64(v.Education),
		float64(v.Parent),
		float64(v.Married),
		float64(v.Female),
		float64(v.Age),
	}
}

// Validate checks every field against its documented range.
func (v Vector) Validate() error {
	checks := []struct {
		field    string
		val      int
		min, max int
	}{
		{FieldIncome, v.Income, 1, len(IncomeOptions)},
		{FieldEducation, v.Education, 1, len(EducationOptions)},
		{FieldParent, v.Parent, 0, 1},
		{FieldMarried, v.Married, 0, 1},
		{FieldFemale, v.Female, 0, 1},
		{FieldAge, v.Age, MinAge, MaxAge},
	}
	for _, c := range checks {
		if c.val < c.min || c.val > c.max {
			return &ErrInvalidSelection{
				Field:  c.field,
				Value:  fmt.Sprint(c.val),
				Reason: fmt.Sprintf("must be between %d and %d", c.min, c.max),
			}
		}
	}
	return nil
}

func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d, %d, %d)",
		v.Income, v.Education, v.Parent, v.Married, v.Female, v.Age)
}

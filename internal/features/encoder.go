package features

import (
	"fmt"
	"strconv"
)

// Selections holds the raw, human-readable answers from the form.
type Selections struct {
	Income    string `json:"income"`
	Education string `json:"education"`
	Parent    string `json:"parent"`  // "Yes" or "No"
	Married   string `json:"married"` // "Married" or "Not Married"
	Gender    string `json:"gender"`  // "Female" or "Male"
	Age       int    `json:"age"`
}

// DefaultSelections returns the form's initial state: first option of every
// list and the default slider age.
func DefaultSelections() Selections {
	return Selections{
		Income:    IncomeOptions[0].Label,
		Education: EducationOptions[0].Label,
		Parent:    ParentOptions[0].Label,
		Married:   MaritalOptions[0].Label,
		Gender:    GenderOptions[0].Label,
		Age:       DefaultAge,
	}
}

// Encode maps selections to the model's feature vector.
//
// The binary fields use a fixed truth mapping:
//
//	parent:  "Yes"     -> 1, "No"          -> 0
//	married: "Married" -> 1, "Not Married" -> 0
//	female:  "Female"  -> 1, "Male"        -> 0
//
// Swapping any of these flips the sign interpretation of the matching
// coefficient. Age is passed through and must lie in [MinAge, MaxAge].
func Encode(sel Selections) (Vector, error) {
	var v Vector
	var ok bool

	if v.Income, ok = IncomeCode(sel.Income); !ok {
		return Vector{}, &ErrInvalidSelection{Field: FieldIncome, Value: sel.Income, Reason: "unknown income bracket"}
	}
	if v.Education, ok = EducationCode(sel.Education); !ok {
		return Vector{}, &ErrInvalidSelection{Field: FieldEducation, Value: sel.Education, Reason: "unknown education level"}
	}
	if v.Parent, ok = codeFor(ParentOptions, sel.Parent); !ok {
		return Vector{}, &ErrInvalidSelection{Field: FieldParent, Value: sel.Parent, Reason: `want "Yes" or "No"`}
	}
	if v.Married, ok = codeFor(MaritalOptions, sel.Married); !ok {
		return Vector{}, &ErrInvalidSelection{Field: FieldMarried, Value: sel.Married, Reason: `want "Married" or "Not Married"`}
	}
	if v.Female, ok = codeFor(GenderOptions, sel.Gender); !ok {
		return Vector{}, &ErrInvalidSelection{Field: FieldFemale, Value: sel.Gender, Reason: `want "Female" or "Male"`}
	}
	if sel.Age < MinAge || sel.Age > MaxAge {
		return Vector{}, &ErrInvalidSelection{
			Field:  FieldAge,
			Value:  strconv.Itoa(sel.Age),
			Reason: fmt.Sprintf("must be between %d and %d", MinAge, MaxAge),
		}
	}
	v.Age = sel.Age

	return v, nil
}

// Decode turns a valid vector back into form selections.
func Decode(v Vector) (Selections, error) {
	if err := v.Validate(); err != nil {
		return Selections{}, err
	}
	income, _ := IncomeLabel(v.Income)
	education, _ := EducationLabel(v.Education)
	parent, _ := labelFor(ParentOptions, v.Parent)
	married, _ := labelFor(MaritalOptions, v.Married)
	gender, _ := labelFor(GenderOptions, v.Female)
	return Selections{
		Income:    income,
		Education: education,
		Parent:    parent,
		Married:   married,
		Gender:    gender,
		Age:       v.Age,
	}, nil
}

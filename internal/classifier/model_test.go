package classifier

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lipredict/internal/features"
)

// testCoefficients resemble a model fitted on the Pew social media survey.
var testCoefficients = []float64{0.34, 0.39, -0.02, 0.05, -0.07, -0.03}

const testIntercept = -3.0

func writeArtifact(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testModel(t *testing.T) *Model {
	t.Helper()
	m, err := New(testCoefficients, testIntercept, DefaultThreshold)
	require.NoError(t, err)
	return m
}

func allVectors() []features.Vector {
	var out []features.Vector
	for inc := 1; inc <= 9; inc++ {
		for edu := 1; edu <= 8; edu++ {
			for bits := 0; bits < 8; bits++ {
				for _, age := range []int{18, 30, 45, 70, 98} {
					out = append(out, features.Vector{
						Income:    inc,
						Education: edu,
						Parent:    bits & 1,
						Married:   (bits >> 1) & 1,
						Female:    (bits >> 2) & 1,
						Age:       age,
					})
				}
			}
		}
	}
	return out
}

func TestLoad_Valid(t *testing.T) {
	path := writeArtifact(t, `{
		"features": ["income","education","parent","married","female","age"],
		"coefficients": [0.34, 0.39, -0.02, 0.05, -0.07, -0.03],
		"intercept": -3.0
	}`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, testCoefficients, m.Coefficients())
	assert.Equal(t, testIntercept, m.Intercept())
	assert.Equal(t, DefaultThreshold, m.Threshold())
}

func TestLoad_CustomThreshold(t *testing.T) {
	path := writeArtifact(t, `{"coefficients":[1,1,1,1,1,1],"intercept":0,"threshold":0.4}`)
	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.4, m.Threshold())
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") }},
		{"corrupt json", func(t *testing.T) string { return writeArtifact(t, `{"coefficients": [1,2`) }},
		{"too few coefficients", func(t *testing.T) string {
			return writeArtifact(t, `{"coefficients":[1,2,3,4,5],"intercept":0}`)
		}},
		{"too many coefficients", func(t *testing.T) string {
			return writeArtifact(t, `{"coefficients":[1,2,3,4,5,6,7],"intercept":0}`)
		}},
		{"feature order mismatch", func(t *testing.T) string {
			return writeArtifact(t, `{"features":["age","income","education","parent","married","female"],"coefficients":[1,2,3,4,5,6],"intercept":0}`)
		}},
		{"threshold out of range", func(t *testing.T) string {
			return writeArtifact(t, `{"coefficients":[1,2,3,4,5,6],"intercept":0,"threshold":1.5}`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			var loadErr *ErrModelLoad
			require.ErrorAs(t, err, &loadErr)
			assert.NotEmpty(t, loadErr.Path)
		})
	}
}

func TestLoad_MissingFileUnwrapsToNotExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestNew_RejectsNonFinite(t *testing.T) {
	_, err := New([]float64{1, 2, math.NaN(), 4, 5, 6}, 0, DefaultThreshold)
	assert.Error(t, err)
	_, err = New([]float64{1, 2, 3, 4, 5, 6}, math.Inf(1), DefaultThreshold)
	assert.Error(t, err)
}

func TestPredictProba_MatchesLogistic(t *testing.T) {
	m := testModel(t)
	v := features.Vector{Income: 9, Education: 8, Parent: 1, Married: 1, Female: 1, Age: 65}

	z := testIntercept
	for i, x := range v.Values() {
		z += testCoefficients[i] * x
	}
	want := 1 / (1 + math.Exp(-z))

	assert.InDelta(t, want, m.PredictProba(v), 1e-12)
	assert.InDelta(t, z, m.Decision(v), 1e-12)
}

func TestPredict_AgreesWithProbability(t *testing.T) {
	m := testModel(t)
	for _, v := range allVectors() {
		p := m.PredictProba(v)
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 1.0)
		if m.Predict(v) == ClassUser {
			require.GreaterOrEqual(t, p, 0.5, "vector %s", v)
		} else {
			require.Less(t, p, 0.5, "vector %s", v)
		}

		res, err := m.Classify(v)
		require.NoError(t, err)
		require.Equal(t, m.Predict(v), res.Class)
		require.Equal(t, p, res.Probability)
	}
}

func TestPredict_ExactThresholdIsPositive(t *testing.T) {
	m, err := New(make([]float64, features.Count), 0, DefaultThreshold)
	require.NoError(t, err)

	v := features.Vector{Income: 1, Education: 1, Age: 18}
	assert.Equal(t, 0.5, m.PredictProba(v))
	assert.Equal(t, ClassUser, m.Predict(v))
}

func TestClassify_Idempotent(t *testing.T) {
	m := testModel(t)
	v := features.Vector{Income: 5, Education: 4, Parent: 0, Married: 1, Female: 0, Age: 37}

	first, err := m.Classify(v)
	require.NoError(t, err)
	second, err := m.Classify(v)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClassify_RejectsInvalidVector(t *testing.T) {
	m := testModel(t)
	_, err := m.Classify(features.Vector{Income: 1, Education: 1, Age: 17})
	var invalid *features.ErrInvalidSelection
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, features.FieldAge, invalid.Field)
}

func TestCoefficients_ReturnsCopy(t *testing.T) {
	m := testModel(t)
	c := m.Coefficients()
	c[0] = 100
	assert.Equal(t, testCoefficients[0], m.Coefficients()[0])
}

func TestSigmoid_ExtremeValues(t *testing.T) {
	assert.Equal(t, 1.0, sigmoid(1000))
	assert.Equal(t, 0.0, sigmoid(-1000))
	assert.False(t, math.IsNaN(sigmoid(-745)))
}

func TestResult_Label(t *testing.T) {
	assert.Equal(t, "LinkedIn User", Result{Class: ClassUser, Probability: 0.71}.Label())
	assert.Equal(t, "Not a User", Result{Class: ClassNonUser, Probability: 0.2}.Label())
	assert.Equal(t, "0.710", Result{Probability: 0.71}.ProbabilityText())
}

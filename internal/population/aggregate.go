package population

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Group is the empirical usage rate of one value of a dimension.
type Group struct {
	Key   float64
	Label string
	Count int
	Rate  float64 // mean of the usage label, in [0, 1]
}

// Percent returns Rate as a percentage.
func (g Group) Percent() float64 { return g.Rate * 100 }

// Table is the grouped usage rates for one dimension, ascending by key.
type Table struct {
	Dimension Dimension
	Groups    []Group
}

// Aggregate computes a Table for every entry in Dimensions.
func Aggregate(ds *Dataset) []Table {
	tables := make([]Table, 0, len(Dimensions))
	for _, dim := range Dimensions {
		tables = append(tables, AggregateBy(ds, dim))
	}
	return tables
}

// AggregateBy groups the dataset by dim's raw column value and averages the
// usage label within each group.
func AggregateBy(ds *Dataset, dim Dimension) Table {
	keys := ds.Column(dim.Column)
	labels := ds.Column(LabelColumn)

	buckets := make(map[float64][]float64)
	for i, k := range keys {
		buckets[k] = append(buckets[k], labels[i])
	}

	groups := make([]Group, 0, len(buckets))
	for k, ys := range buckets {
		groups = append(groups, Group{
			Key:   k,
			Label: dim.Label(k),
			Count: len(ys),
			Rate:  stat.Mean(ys, nil),
		})
	}
	slices.SortFunc(groups, func(a, b Group) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		default:
			return 0
		}
	})

	return Table{Dimension: dim, Groups: groups}
}

// Overall returns the usage rate across the whole dataset, or 0 if empty.
func Overall(ds *Dataset) float64 {
	if ds.Len() == 0 {
		return 0
	}
	return stat.Mean(ds.Column(LabelColumn), nil)
}

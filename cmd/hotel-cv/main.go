/*
Command hotel-cv cross-validates booking-cancellation classifiers over
the hotel bookings dataset and reports accuracy summaries per model.
*/
package main

import (
	"encoding"
	"flag"
	"fmt"
	"os"

	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/zorros/zlog"

	"go-ml.dev/pkg/tabeval/feature"
	"go-ml.dev/pkg/tabeval/model"
	"go-ml.dev/pkg/tabeval/split"
	"go-ml.dev/pkg/tabeval/tables"
	"go-ml.dev/pkg/tabeval/trees"
)

var bookingSchema = feature.Schema{
	Numeric: []string{
		"lead_time", "stays_in_weekend_nights", "stays_in_week_nights",
		"adults", "children", "babies", "is_repeated_guest",
		"previous_cancellations", "previous_bookings_not_canceled",
		"booking_changes", "days_in_waiting_list", "adr",
		"required_car_parking_spaces", "total_of_special_requests",
	},
	Categorical: []string{
		"hotel", "arrival_date_month", "meal", "market_segment",
		"distribution_channel", "reserved_room_type", "deposit_type",
		"customer_type",
	},
	Label: "is_canceled",
}

func main() {
	data := flag.String("data", "hotel_bookings.csv", "CSV dataset, .xz accepted")
	sqlite := flag.String("sqlite", "", "SQLite database to load instead of CSV")
	query := flag.String("query", "SELECT * FROM bookings", "query for -sqlite")
	k := flag.Int("k", 5, "count of cross-validation folds")
	seed := flag.Uint64("seed", 42, "shuffle seed")
	shuffle := flag.Bool("shuffle", true, "shuffle rows before folding")
	nTrees := flag.Int("trees", 100, "random forest size")
	depth := flag.Int("depth", 12, "tree depth limit, 0 for none")
	save := flag.String("save", "", "store the best model under this name after CV")
	flag.Parse()

	t, err := load(*sqlite, *query, *data)
	if err != nil {
		fail(err)
	}
	labels, err := feature.Labels(t, bookingSchema.Label)
	if err != nil {
		fail(err)
	}
	zlog.Info(fmt.Sprintf("loaded %d bookings", t.Len()))

	ds := model.Dataset{Source: t, Labels: labels, Schema: bookingSchema}
	classifiers := []model.NamedClassifier{
		{Name: "majority", New: func() model.Classifier { return &model.Majority{} }},
		{Name: "decision-tree", New: func() model.Classifier {
			return trees.NewDecisionTree(trees.WithMaxDepth(*depth), trees.WithSeed(*seed))
		}},
		{Name: "random-forest", New: func() model.Classifier {
			return &trees.RandomForest{Trees: *nTrees, MaxDepth: *depth, Seed: *seed}
		}},
	}
	e := model.Experiment{
		Classifiers: classifiers,
		Split:       split.Config{K: *k, Shuffle: *shuffle, Seed: *seed},
		Verbose:     func(s string) { zlog.Info(s) },
	}
	results, err := e.Run(ds)
	if err != nil {
		fail(err)
	}

	fmt.Printf("%-15s %8s %8s %8s %8s\n", "classifier", "mean", "std", "min", "max")
	for _, c := range classifiers {
		r := results[c.Name]
		fmt.Printf("%-15s %8.4f %8.4f %8.4f %8.4f\n", c.Name, r.Mean, r.Std, r.Min, r.Max)
	}

	if *save != "" {
		if err = saveBest(*save, classifiers, results, ds); err != nil {
			fail(err)
		}
	}
}

func load(sqlite, query, data string) (*tables.Table, error) {
	if sqlite != "" {
		db, err := tables.OpenSQLite(sqlite)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return tables.ReadSQL(db, query)
	}
	return tables.ReadCSVFile(data)
}

// saveBest refits the best-scoring classifier on the whole dataset and
// stores its binary snapshot in the model cache.
func saveBest(name string, classifiers []model.NamedClassifier, results map[string]*model.Result, ds model.Dataset) error {
	best := classifiers[0]
	for _, c := range classifiers[1:] {
		if results[c.Name].Mean > results[best.Name].Mean {
			best = c
		}
	}
	fitted, err := feature.Preprocessor{}.Fit(ds.Source, ds.Schema)
	if err != nil {
		return err
	}
	x, err := fitted.Transform(ds.Source)
	if err != nil {
		return err
	}
	c := best.New()
	if err = c.Fit(x, ds.Labels); err != nil {
		return err
	}
	m, ok := c.(encoding.BinaryMarshaler)
	if !ok {
		zlog.Warning(fmt.Sprintf("`%v` is not persistable, skipping -save", best.Name))
		return nil
	}
	path := model.Path(name)
	if err = model.Save(iokit.File(path), m); err != nil {
		return err
	}
	zlog.Info(fmt.Sprintf("saved `%v` model to %v", best.Name, path))
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

package main

import (
	"fmt"

	"github.com/Mr-Dark-debug/augur/internal/database"
	"github.com/Mr-Dark-debug/augur/internal/prediction"
)

// seedFields are the demo predictions shown on startup.
var seedFields = []prediction.Fields{
	{ID: 0, Title: "Culinary prediction", Description: "The cheese will be good", Certainty: 0.4},
	{ID: 1, Title: "Economic prediction", Description: "I will win the lotto", Certainty: 0.1},
}

// loadSeed validates the demo predictions, stores them and reads them
// back in display order.
func loadSeed(store database.Store, clock prediction.Clock) ([]prediction.Prediction, error) {
	records := make([]prediction.Record, 0, len(seedFields))
	for _, f := range seedFields {
		p, err := prediction.New(clock, f)
		if err != nil {
			return nil, fmt.Errorf("building seed prediction %d: %w", f.ID, err)
		}
		records = append(records, p.Record())
	}

	if err := store.BatchInsertPredictions(records); err != nil {
		return nil, fmt.Errorf("storing seed predictions: %w", err)
	}
	predictions, err := store.ListPredictions()
	if err != nil {
		return nil, fmt.Errorf("loading predictions: %w", err)
	}
	if len(predictions) == 0 {
		return nil, fmt.Errorf("no predictions to show")
	}
	return predictions, nil
}

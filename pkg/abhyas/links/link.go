package links

import "github.com/mikepea/abhyas/pkg/abhyas/models"

// Link is a stored practice item as seen by callers of the store
type Link struct {
	URL         string
	SolvedCount int64
	Status      models.Status
}

// Counts is a snapshot of the table grouped by status
type Counts struct {
	Total     int64
	Completed int64
	Skipped   int64
}

// Incomplete returns the number of links that are neither solved nor skipped
func (c Counts) Incomplete() int64 {
	return c.Total - c.Completed - c.Skipped
}

func fromModel(m models.Link) Link {
	return Link{
		URL:         m.URL,
		SolvedCount: m.SolvedCount,
		Status:      m.Status(),
	}
}

func fromModels(rows []models.Link) []Link {
	result := make([]Link, len(rows))
	for i, row := range rows {
		result[i] = fromModel(row)
	}
	return result
}

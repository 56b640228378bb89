package links

import (
	"errors"
	"fmt"

	"github.com/mikepea/abhyas/pkg/abhyas/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// importBatchSize keeps one insert below SQLite's bound variable limit
// (four columns per row).
const importBatchSize = 200

// Store owns the links table. Every method runs a single statement.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on an open database
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AddLink inserts url as a new incomplete link with a zero solved count
func (s *Store) AddLink(url string) error {
	if url == "" {
		return fmt.Errorf("%w: empty link", ErrInvalidInput)
	}

	link := models.Link{URL: url}
	link.SetStatus(models.StatusIncomplete)

	if err := s.db.Create(&link).Error; err != nil {
		if isDuplicate(err) {
			return ErrDuplicateKey
		}
		return queryError("add link", err)
	}
	return nil
}

// DeleteLink removes url. Deleting a url that is not stored is not an error.
func (s *Store) DeleteLink(url string) error {
	if err := s.db.Where("link = ?", url).Delete(&models.Link{}).Error; err != nil {
		return queryError("delete link", err)
	}
	return nil
}

// ListURLs returns every stored url in insertion order
func (s *Store) ListURLs() ([]string, error) {
	urls := []string{}
	if err := s.db.Model(&models.Link{}).Order("rowid").Pluck("link", &urls).Error; err != nil {
		return nil, queryError("list urls", err)
	}
	return urls, nil
}

// ListAll returns every link in insertion order.
// An empty table yields an empty, non-nil slice.
func (s *Store) ListAll() ([]Link, error) {
	var rows []models.Link
	if err := s.db.Order("rowid").Find(&rows).Error; err != nil {
		return nil, queryError("list links", err)
	}
	return fromModels(rows), nil
}

// ListByStatus returns the links currently in status, in insertion order
func (s *Store) ListByStatus(status models.Status) ([]Link, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %d", ErrInvalidInput, status)
	}

	query, args := models.StatusFilter(status)

	var rows []models.Link
	if err := s.db.Where(query, args...).Order("rowid").Find(&rows).Error; err != nil {
		return nil, queryError("list "+status.String()+" links", err)
	}
	return fromModels(rows), nil
}

// NextIncomplete returns the oldest link that is neither solved nor skipped.
// ok is false when there is none.
func (s *Store) NextIncomplete() (link Link, ok bool, err error) {
	query, args := models.StatusFilter(models.StatusIncomplete)

	var row models.Link
	err = s.db.Where(query, args...).Order("rowid").Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Link{}, false, nil
	}
	if err != nil {
		return Link{}, false, queryError("next incomplete link", err)
	}
	return fromModel(row), true, nil
}

// Lookup returns the stored record of url
func (s *Store) Lookup(url string) (Link, error) {
	var row models.Link
	err := s.db.Where("link = ?", url).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Link{}, ErrNotFound
	}
	if err != nil {
		return Link{}, queryError("lookup link", err)
	}
	return fromModel(row), nil
}

// LookupCount returns how many times url has been marked complete
func (s *Store) LookupCount(url string) (int64, error) {
	var counts []int64
	if err := s.db.Model(&models.Link{}).Where("link = ?", url).Limit(1).Pluck("solved_count", &counts).Error; err != nil {
		return 0, queryError("lookup solved count", err)
	}
	if len(counts) == 0 {
		return 0, ErrNotFound
	}
	return counts[0], nil
}

// MarkComplete increments the solved count of url and moves it to solved
func (s *Store) MarkComplete(url string) error {
	isSolved, isSkipped := models.StatusColumns(models.StatusSolved)
	return s.transition("mark complete", url, map[string]interface{}{
		"solved_count": gorm.Expr("solved_count + 1"),
		"is_solved":    isSolved,
		"is_skipped":   isSkipped,
	})
}

// SkipLink moves url to skipped
func (s *Store) SkipLink(url string) error {
	isSolved, isSkipped := models.StatusColumns(models.StatusSkipped)
	return s.transition("skip link", url, map[string]interface{}{
		"is_solved":  isSolved,
		"is_skipped": isSkipped,
	})
}

func (s *Store) transition(op, url string, values map[string]interface{}) error {
	result := s.db.Model(&models.Link{}).Where("link = ?", url).Updates(values)
	if result.Error != nil {
		return queryError(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetSkipped moves every skipped link back to incomplete and returns how many moved
func (s *Store) ResetSkipped() (int64, error) {
	result := s.db.Model(&models.Link{}).Where("is_skipped = ?", true).Update("is_skipped", false)
	if result.Error != nil {
		return 0, queryError("reset skipped links", result.Error)
	}
	return result.RowsAffected, nil
}

// ResetCompleted moves every solved link back to incomplete and returns how
// many moved. Solved counts are kept.
func (s *Store) ResetCompleted() (int64, error) {
	result := s.db.Model(&models.Link{}).Where("is_solved = ?", true).Update("is_solved", false)
	if result.Error != nil {
		return 0, queryError("reset completed links", result.Error)
	}
	return result.RowsAffected, nil
}

// BulkImport inserts every url not already stored and returns the number of
// new rows. Duplicates, within urls or against the table, are skipped
// silently; the first occurrence wins. Empty strings are ignored.
// The import is not atomic: batches inserted before a failure stay.
func (s *Store) BulkImport(urls []string) (int64, error) {
	rows := make([]models.Link, 0, len(urls))
	for _, url := range urls {
		if url == "" {
			continue
		}
		link := models.Link{URL: url}
		link.SetStatus(models.StatusIncomplete)
		rows = append(rows, link)
	}

	var inserted int64
	for start := 0; start < len(rows); start += importBatchSize {
		end := start + importBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]

		result := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "link"}},
			DoNothing: true,
		}).Create(&batch)
		if result.Error != nil {
			return inserted, queryError("import links", result.Error)
		}
		inserted += result.RowsAffected
	}
	return inserted, nil
}

// Status counts all, solved and skipped links in one statement so the three
// numbers come from the same snapshot.
func (s *Store) Status() (Counts, error) {
	var counts Counts
	err := s.db.Model(&models.Link{}).
		Select("COUNT(*) AS total, " +
			"COALESCE(SUM(CASE WHEN is_solved THEN 1 ELSE 0 END), 0) AS completed, " +
			"COALESCE(SUM(CASE WHEN is_skipped AND NOT is_solved THEN 1 ELSE 0 END), 0) AS skipped").
		Scan(&counts).Error
	if err != nil {
		return Counts{}, queryError("status", err)
	}
	return counts, nil
}

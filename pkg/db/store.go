package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// maxContextsPerLink caps the example sentences stored for one morpheme in one source.
const maxContextsPerLink = 5

// isUniqueConstraintErr returns true when the error indicates a unique/constraint violation
func isUniqueConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unique") || strings.Contains(s, "constraint failed")
}

// CreateOrGetMorpheme returns the id of the (text, tag) morpheme, inserting it if needed.
// A non-baseline oov status replaces the stored one so the latest server verdict wins.
func CreateOrGetMorpheme(db DBExecutor, text, tag, oov string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("morpheme text must be non-empty")
	}
	if tag == "" {
		return 0, fmt.Errorf("morpheme tag must be non-empty")
	}
	if oov == "" {
		oov = "IN_WORD_EMBEDDING"
	}

	var id int64
	query := `INSERT INTO morphemes (text, tag, oov)
			  VALUES (?, ?, ?)
			  ON CONFLICT(text, tag)
			  DO UPDATE SET
			    oov = CASE WHEN excluded.oov = 'IN_WORD_EMBEDDING' THEN morphemes.oov ELSE excluded.oov END
			  RETURNING id`
	if err := db.QueryRow(query, text, tag, oov).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert morpheme: %w", err)
	}
	return id, nil
}

// CreateOrGetSource returns existing source id or inserts a new source and returns its id.
func CreateOrGetSource(db DBExecutor, sourceType, title, author, website, url, meta string) (int64, error) {
	trimmedSourceType := strings.TrimSpace(sourceType)
	if trimmedSourceType == "" {
		return 0, fmt.Errorf("sourceType must be non-empty")
	}

	const maxRetries = 3

	var id int64
	for attempt := 0; attempt < maxRetries; attempt++ {
		err := db.QueryRow(
			`SELECT id FROM sources WHERE IFNULL(url, '') = ? AND IFNULL(title, '') = ? AND IFNULL(author, '') = ?`,
			url, title, author,
		).Scan(&id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, err
		}

		res, err := db.Exec(
			`INSERT INTO sources (source_type, title, author, website, url, meta) VALUES (?, ?, ?, ?, ?, ?)`,
			trimmedSourceType, title, author, website, url, meta,
		)
		if err != nil {
			// Lost a race with a concurrent insert of the same source.
			if isUniqueConstraintErr(err) {
				continue
			}
			return 0, err
		}
		return res.LastInsertId()
	}

	return 0, fmt.Errorf("could not create or get source after %d retries", maxRetries)
}

// SetSourceDomain records which custom dictionary domain the source was analyzed with.
func SetSourceDomain(db DBExecutor, sourceID int64, domain string) error {
	_, err := db.Exec(`UPDATE sources SET domain = ? WHERE id = ?`, domain, sourceID)
	return err
}

func getOrCreateSentence(db DBExecutor, text string) (int64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, nil
	}
	var id int64
	if err := db.QueryRow(`SELECT id FROM sentences WHERE text = ?`, trimmed).Scan(&id); err == nil {
		return id, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	if _, err := db.Exec(`INSERT OR IGNORE INTO sentences (text) VALUES (?)`, trimmed); err != nil {
		return 0, err
	}
	if err := db.QueryRow(`SELECT id FROM sentences WHERE text = ?`, trimmed).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// LinkMorphemeToSource records incrementAmount occurrences of the morpheme in the source.
// The context sentence is kept as the latest example and added to the capped context list.
func LinkMorphemeToSource(db DBExecutor, morphemeID, sourceID int64, context string, incrementAmount int) error {
	if morphemeID <= 0 {
		return fmt.Errorf("morphemeID must be positive")
	}
	if sourceID <= 0 {
		return fmt.Errorf("sourceID must be positive")
	}
	if incrementAmount < 1 {
		return fmt.Errorf("incrementAmount must be positive, got %d", incrementAmount)
	}

	ctxID, err := getOrCreateSentence(db, context)
	if err != nil {
		return fmt.Errorf("get/create context sentence: %w", err)
	}

	var linkID int64
	err = db.QueryRow(`INSERT INTO morpheme_sources (morpheme_id, source_id, context_sentence_id, occurrence_count, first_seen_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(morpheme_id, source_id) DO UPDATE SET
	  occurrence_count = morpheme_sources.occurrence_count + excluded.occurrence_count,
	  context_sentence_id = COALESCE(excluded.context_sentence_id, morpheme_sources.context_sentence_id)
	RETURNING id`, morphemeID, sourceID, nullableInt64(ctxID), incrementAmount, time.Now()).Scan(&linkID)
	if err != nil {
		return fmt.Errorf("upsert morpheme source: %w", err)
	}
	if ctxID == 0 {
		return nil
	}

	_, err = db.Exec(`
		INSERT INTO morpheme_contexts (morpheme_source_id, sentence_id)
		SELECT ?, ?
		WHERE (SELECT COUNT(*) FROM morpheme_contexts WHERE morpheme_source_id = ?) < ?
		ON CONFLICT DO NOTHING`,
		linkID, ctxID, linkID, maxContextsPerLink)
	return err
}

// nullableInt64 returns nil for 0 (meaning no sentence) else the value.
func nullableInt64(v int64) interface{} {
	if v == 0 {
		return nil
	}
	return v
}

// GetMorphemesBySource returns the morphemes of a source, most frequent first.
func GetMorphemesBySource(db DBExecutor, sourceID int64) ([]SourceMorpheme, error) {
	rows, err := db.Query(`SELECT m.id, m.text, m.tag, m.oov, ms.occurrence_count, IFNULL(s.text, ''), ms.first_seen_at
		FROM morphemes m
		JOIN morpheme_sources ms ON ms.morpheme_id = m.id
		LEFT JOIN sentences s ON s.id = ms.context_sentence_id
		WHERE ms.source_id = ?
		ORDER BY ms.occurrence_count DESC, m.id`, sourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SourceMorpheme
	for rows.Next() {
		var sm SourceMorpheme
		var firstSeen sql.NullTime
		if err := rows.Scan(&sm.ID, &sm.Text, &sm.Tag, &sm.OOV, &sm.OccurrenceCount, &sm.Context, &firstSeen); err != nil {
			return nil, err
		}
		if firstSeen.Valid {
			sm.FirstSeenAt = firstSeen.Time
		}
		out = append(out, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMorphemeContexts returns the stored example sentences for a morpheme in a source.
func GetMorphemeContexts(db DBExecutor, morphemeID, sourceID int64) ([]string, error) {
	rows, err := db.Query(`SELECT s.text FROM morpheme_contexts mc
		JOIN morpheme_sources ms ON ms.id = mc.morpheme_source_id
		JOIN sentences s ON s.id = mc.sentence_id
		WHERE ms.morpheme_id = ? AND ms.source_id = ?
		ORDER BY s.id`, morphemeID, sourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// OOVCandidates returns out-of-vocabulary morphemes with one of the given tags
// seen at least minCount times across all sources, most frequent first.
func OOVCandidates(db DBExecutor, tags []string, minCount int) ([]Candidate, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(tags)), ",")
	args := make([]interface{}, 0, len(tags)+1)
	for _, t := range tags {
		args = append(args, t)
	}
	args = append(args, minCount)

	rows, err := db.Query(`SELECT m.text, m.tag, SUM(ms.occurrence_count) AS total, COUNT(ms.source_id)
		FROM morphemes m
		JOIN morpheme_sources ms ON ms.morpheme_id = m.id
		WHERE m.oov = 'OUT_OF_VOCAB' AND m.tag IN (`+placeholders+`)
		GROUP BY m.id
		HAVING total >= ?
		ORDER BY total DESC, m.text`, args...)
	if err != nil {
		return nil, fmt.Errorf("query oov candidates: %w", err)
	}
	defer rows.Close()
	var out []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.Text, &c.Tag, &c.Occurrences, &c.Sources); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetSourceProgress returns the last processed sentence index for a source,
// -1 before any sentence is stored.
func GetSourceProgress(db DBExecutor, sourceID int64) (int, error) {
	var index int
	err := db.QueryRow("SELECT last_processed_sentence FROM sources WHERE id = ?", sourceID).Scan(&index)
	if err != nil {
		return 0, err
	}
	return index, nil
}

// UpdateSourceProgress updates the last processed sentence index.
func UpdateSourceProgress(db DBExecutor, sourceID int64, index int) error {
	_, err := db.Exec("UPDATE sources SET last_processed_sentence = ? WHERE id = ?", index, sourceID)
	return err
}

// GetSource loads a source by id.
func GetSource(db DBExecutor, sourceID int64) (Source, error) {
	var s Source
	var title, author, website, url, meta, domain sql.NullString
	var added sql.NullTime
	err := db.QueryRow(`SELECT id, source_type, title, author, website, url, meta, domain, added_at FROM sources WHERE id = ?`, sourceID).
		Scan(&s.ID, &s.SourceType, &title, &author, &website, &url, &meta, &domain, &added)
	if err != nil {
		return Source{}, err
	}
	s.Title = title.String
	s.Author = author.String
	s.Website = website.String
	s.URL = url.String
	s.Meta = meta.String
	s.Domain = domain.String
	if added.Valid {
		s.AddedAt = added.Time
	}
	return s, nil
}

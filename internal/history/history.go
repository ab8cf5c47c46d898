package history

import (
	"database/sql"
	"fmt"
	"time"

	"blackjackround/internal/game"
	"blackjackround/internal/report"
)

// Record is a round as it was dealt in a chat
type Record struct {
	ID          string
	ChatID      int64
	PlayerCards string
	DealerCards string
	PlayerScore int
	DealerScore int
	Result      string
	TiePolicy   string
	CreatedAt   time.Time
}

// Stats are the totals for a chat
type Stats struct {
	ChatID     int64
	Rounds     int
	PlayerWins int
	DealerWins int
	Pushes     int
	WinRate    float64
}

type Repository interface {
	Save(rec *Record) error
	StatsFor(chatID int64) (Stats, error)
	Recent(chatID int64, limit int) ([]Record, error)
}

// NewRecord captures the round for storage
func NewRecord(chatID int64, r *game.Round) *Record {
	return &Record{
		ID:          r.ID.String(),
		ChatID:      chatID,
		PlayerCards: report.Cards(r.Player.Cards()),
		DealerCards: report.Cards(r.Dealer.Cards()),
		PlayerScore: r.Player.Value(),
		DealerScore: r.Dealer.Value(),
		Result:      r.Result.String(),
		TiePolicy:   r.Tie.String(),
	}
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(rec *Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(`
		INSERT INTO rounds (id, chat_id, player_cards, dealer_cards, player_score, dealer_score, result, tie_policy, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.ChatID, rec.PlayerCards, rec.DealerCards,
		rec.PlayerScore, rec.DealerScore, rec.Result, rec.TiePolicy, rec.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) StatsFor(chatID int64) (Stats, error) {
	s := Stats{ChatID: chatID}

	err := r.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN result = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN result = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN result = ? THEN 1 ELSE 0 END), 0)
		FROM rounds WHERE chat_id = ?
	`, game.ResultPlayerWin.String(), game.ResultDealerWin.String(), game.ResultPush.String(), chatID).Scan(
		&s.Rounds, &s.PlayerWins, &s.DealerWins, &s.Pushes,
	)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}

	if s.Rounds > 0 {
		s.WinRate = float64(s.PlayerWins) / float64(s.Rounds) * 100
	}

	return s, nil
}

func (r *SQLiteRepository) Recent(chatID int64, limit int) ([]Record, error) {
	rows, err := r.db.Query(`
		SELECT id, chat_id, player_cards, dealer_cards, player_score, dealer_score, result, tie_policy, created_at
		FROM rounds
		WHERE chat_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, chatID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.ChatID, &rec.PlayerCards, &rec.DealerCards,
			&rec.PlayerScore, &rec.DealerScore, &rec.Result, &rec.TiePolicy, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

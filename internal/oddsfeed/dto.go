package oddsfeed

import "time"

// Game é um jogo cru do endpoint de odds, uma entrada por partida
// com mercados moneyline (h2h) e totais por bookmaker.
type Game struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	SportTitle   string      `json:"sport_title"`
	CommenceTime time.Time   `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

type Market struct {
	Key      string    `json:"key"` // "h2h" | "totals"
	Outcomes []Outcome `json:"outcomes"`
}

type Outcome struct {
	Name  string   `json:"name"`
	Price *int     `json:"price,omitempty"` // odd americana; nil quando o mercado não cotou
	Point *float64 `json:"point,omitempty"` // linha de pontos dos totais
}

// rawScore é o registro cru do endpoint de placares. O shape varia:
// às vezes vem a lista nomeada scores[], às vezes home_score/away_score diretos.
type rawScore struct {
	ID           string          `json:"id"`
	SportKey     string          `json:"sport_key"`
	CommenceTime time.Time       `json:"commence_time"`
	Completed    bool            `json:"completed"`
	HomeTeam     string          `json:"home_team"`
	AwayTeam     string          `json:"away_team"`
	Scores       []rawScoreEntry `json:"scores"`
	HomeScore    *float64        `json:"home_score"`
	AwayScore    *float64        `json:"away_score"`
}

type rawScoreEntry struct {
	Name  string `json:"name"`
	Score string `json:"score"`
}

// GameResult é o registro de placar já normalizado na borda do feed,
// shape único consumido pelo resolver de liquidação.
type GameResult struct {
	SportKey     string
	HomeTeam     string
	AwayTeam     string
	HomeScore    float64
	AwayScore    float64
	Completed    bool
	CommenceTime time.Time
}

package oddsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client consome o feed externo de odds e placares (The Odds API).
// Cada chamada cobre um único sport_key; falhas são isoladas pelo chamador.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Odds busca os jogos com mercados h2h e totals de um esporte.
func (c *Client) Odds(ctx context.Context, sportKey string) ([]Game, error) {
	q := url.Values{}
	q.Set("regions", "us")
	q.Set("markets", "h2h,totals")
	q.Set("oddsFormat", "american")
	q.Set("apiKey", c.apiKey)

	u := fmt.Sprintf("%s/sports/%s/odds?%s", c.baseURL, sportKey, q.Encode())

	var games []Game
	if err := c.getJSON(ctx, u, &games); err != nil {
		return nil, fmt.Errorf("fetch odds %s: %w", sportKey, err)
	}
	return games, nil
}

// Scores busca os placares recentes de um esporte (janela de 3 dias) e
// normaliza o shape variável do feed em GameResult antes de devolver.
func (c *Client) Scores(ctx context.Context, sportKey string) ([]GameResult, error) {
	q := url.Values{}
	q.Set("daysFrom", "3")
	q.Set("apiKey", c.apiKey)

	u := fmt.Sprintf("%s/sports/%s/scores/?%s", c.baseURL, sportKey, q.Encode())

	var raw []rawScore
	if err := c.getJSON(ctx, u, &raw); err != nil {
		return nil, fmt.Errorf("fetch scores %s: %w", sportKey, err)
	}

	out := make([]GameResult, 0, len(raw))
	for _, r := range raw {
		out = append(out, normalizeScore(r))
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feed http %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// normalizeScore reduz os dois shapes possíveis do feed a um registro único:
// prefere a lista nomeada scores[], cai para home_score/away_score, faltante vira 0.
func normalizeScore(r rawScore) GameResult {
	g := GameResult{
		SportKey:     r.SportKey,
		HomeTeam:     r.HomeTeam,
		AwayTeam:     r.AwayTeam,
		Completed:    r.Completed,
		CommenceTime: r.CommenceTime,
	}

	if len(r.Scores) > 0 {
		home := strings.ToLower(r.HomeTeam)
		away := strings.ToLower(r.AwayTeam)
		for _, s := range r.Scores {
			v, err := strconv.ParseFloat(strings.TrimSpace(s.Score), 64)
			if err != nil {
				continue
			}
			switch strings.ToLower(s.Name) {
			case home:
				g.HomeScore = v
			case away:
				g.AwayScore = v
			}
		}
		return g
	}

	if r.HomeScore != nil {
		g.HomeScore = *r.HomeScore
	}
	if r.AwayScore != nil {
		g.AwayScore = *r.AwayScore
	}
	return g
}

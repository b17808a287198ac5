package codebook

// Range é o intervalo fechado de códigos reservado a um esporte.
type Range struct {
	Start int
	End   int
}

// Ranges mapeia sport_key para seu intervalo de códigos.
// Os intervalos precisam ser disjuntos; um esporte novo exige reservar outro intervalo.
var Ranges = map[string]Range{
	"baseball_mlb":         {Start: 100, End: 199},
	"basketball_nba":       {Start: 200, End: 299},
	"americanfootball_nfl": {Start: 300, End: 399},
	"icehockey_nhl":        {Start: 400, End: 499},
}

// SportKeys retorna os esportes configurados em ordem estável de intervalo.
func SportKeys() []string {
	return []string{"baseball_mlb", "basketball_nba", "americanfootball_nfl", "icehockey_nhl"}
}

// NextCode devolve o menor código livre do intervalo do esporte.
// Retorna false para esporte desconhecido ou intervalo esgotado (capacidade, não erro).
// O chamador é responsável por marcar o código como usado antes da próxima alocação;
// um mesmo set used não pode ser compartilhado por chamadores concorrentes.
func NextCode(sportKey string, used map[int]struct{}) (int, bool) {
	r, ok := Ranges[sportKey]
	if !ok {
		return 0, false
	}
	for c := r.Start; c <= r.End; c++ {
		if _, taken := used[c]; !taken {
			return c, true
		}
	}
	return 0, false
}

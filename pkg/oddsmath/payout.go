package oddsmath

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Payout calcula o retorno total (stake + lucro) de uma aposta em odds americanas.
// price > 0: lucro de price% do stake a cada 100 apostados.
// price < 0: lucro de 100/|price| por unidade apostada.
// price == 0 não é uma odd americana válida; tratado como push, retorna o stake.
func Payout(stake decimal.Decimal, price int) decimal.Decimal {
	switch {
	case price > 0:
		profit := stake.Mul(decimal.NewFromInt(int64(price))).Div(hundred)
		return stake.Add(profit)
	case price < 0:
		profit := stake.Mul(hundred).Div(decimal.NewFromInt(int64(-price)))
		return stake.Add(profit)
	default:
		return stake
	}
}

// Profit retorna apenas o lucro implícito de uma aposta vencedora.
func Profit(stake decimal.Decimal, price int) decimal.Decimal {
	return Payout(stake, price).Sub(stake)
}

// Package simulating projeta quanto falta aplicar em cada produto para atingir as metas por classe.
package simulating

import (
	"sort"

	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/pkg/utils"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Input reúne o que a simulação precisa; ConfirmedByProduct deve conter apenas alocações confirmadas
type Input struct {
	Month              string
	ClassGoals         []*domain.ClassGoal
	Products           []*domain.Product
	ConfirmedByProduct map[string]decimal.Decimal
	ActiveRevenue      decimal.Decimal
	RecurringRevenue   decimal.Decimal
	BonusRevenue       decimal.Decimal
}

type classBucket struct {
	goal     decimal.Decimal
	products []*domain.Product
}

// Simulate distribui a meta de cada classe igualmente entre seus produtos com ROA positivo
// e calcula o valor que ainda precisa ser aplicado em cada um.
// Sem metas por classe o resultado é vazio e zerado.
func Simulate(in Input) *domain.GoalSimulation {
	result := &domain.GoalSimulation{
		Month:            in.Month,
		Suggestions:      []domain.ProductSuggestion{},
		TotalClassGoals:  decimal.Zero,
		ActiveRevenue:    decimal.Zero,
		RecurringRevenue: decimal.Zero,
		BonusRevenue:     decimal.Zero,
		ExpectedRevenue:  decimal.Zero,
		RealizedRevenue:  decimal.Zero,
		Gap:              decimal.Zero,
	}

	buckets := make(map[string]*classBucket)
	for _, goal := range in.ClassGoals {
		if goal == nil || !goal.TargetRevenue.IsPositive() {
			continue
		}

		class := utils.NormalizeText(goal.ProductClass)
		if class == "" {
			continue
		}

		bucket, ok := buckets[class]
		if !ok {
			bucket = &classBucket{goal: decimal.Zero}
			buckets[class] = bucket
		}
		bucket.goal = bucket.goal.Add(goal.TargetRevenue)
		result.TotalClassGoals = result.TotalClassGoals.Add(goal.TargetRevenue)
	}

	if len(buckets) == 0 {
		return result
	}

	for _, product := range in.Products {
		if product == nil || !product.ROAPct.IsPositive() {
			continue
		}
		if bucket, ok := buckets[utils.NormalizeText(product.Class)]; ok {
			bucket.products = append(bucket.products, product)
		}
	}

	for _, bucket := range buckets {
		if len(bucket.products) == 0 {
			continue
		}

		productGoal := bucket.goal.Div(decimal.NewFromInt(int64(len(bucket.products))))
		for _, product := range bucket.products {
			result.Suggestions = append(result.Suggestions, suggest(product, bucket.goal, productGoal, in.ConfirmedByProduct[product.ID]))
		}
	}

	sortSuggestions(result.Suggestions)

	result.ActiveRevenue = in.ActiveRevenue
	result.RecurringRevenue = in.RecurringRevenue
	result.BonusRevenue = in.BonusRevenue
	result.ExpectedRevenue = in.ActiveRevenue.Add(in.RecurringRevenue)
	result.RealizedRevenue = result.ExpectedRevenue.Add(in.BonusRevenue)
	result.Gap = utils.NonNegative(result.TotalClassGoals.Sub(result.ExpectedRevenue))

	return result
}

func suggest(product *domain.Product, classGoal, productGoal, applied decimal.Decimal) domain.ProductSuggestion {
	needed := productGoal.Div(product.ROAPct.Div(hundred))

	return domain.ProductSuggestion{
		ProductID:           product.ID,
		ProductName:         product.Name,
		ProductClass:        product.Class,
		ROAPct:              product.ROAPct,
		ClassGoal:           classGoal,
		ProductGoal:         productGoal,
		ValueNeeded:         needed,
		ValueAlreadyApplied: applied,
		ValueRemaining:      utils.NonNegative(needed.Sub(applied)),
	}
}

// sortSuggestions ordena por classe e, dentro da classe, do maior ROA para o menor
func sortSuggestions(suggestions []domain.ProductSuggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		ci, cj := utils.NormalizeText(suggestions[i].ProductClass), utils.NormalizeText(suggestions[j].ProductClass)
		if ci != cj {
			return ci < cj
		}
		if c := suggestions[i].ROAPct.Cmp(suggestions[j].ROAPct); c != 0 {
			return c > 0
		}
		return suggestions[i].ProductID < suggestions[j].ProductID
	})
}

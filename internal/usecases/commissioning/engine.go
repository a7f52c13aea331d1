// Package commissioning calcula a receita de escritório e do assessor de uma alocação.
// Todas as funções são puras e nunca falham: entradas inválidas resultam em zero.
package commissioning

import (
	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/pkg/utils"
	"github.com/shopspring/decimal"
)

const rendaFixaDigital = "RENDA FIXA DIGITAL"

var (
	hundred      = decimal.NewFromInt(100)
	advisorShare = decimal.RequireFromString("0.80")
	splitHigh    = decimal.RequireFromString("0.50")
	splitDefault = decimal.RequireFromString("0.35")
)

var feeBasedClasses = []string{
	rendaFixaDigital,
	"Offshore",
	"Seguro de Vida",
	"Consórcio",
}

// eligibleClasses lista, por modelo de cliente, as classes que geram receita de escritório.
// Modelos ausentes do mapa aceitam qualquer classe.
var eligibleClasses = map[domain.ClientModel]map[string]struct{}{
	domain.ClientModelFeeBased:     classSet(feeBasedClasses...),
	domain.ClientModelFeeBasedNoRV: classSet(append(feeBasedClasses, "Produto Estruturado", "Renda Variável (mesa)")...),
}

func classSet(classes ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		set[utils.NormalizeText(c)] = struct{}{}
	}
	return set
}

// Revenue é o resultado do cálculo de comissão de uma alocação
type Revenue struct {
	Office  decimal.Decimal `json:"office"`
	Advisor decimal.Decimal `json:"advisor"`
	Base    decimal.Decimal `json:"base"`
}

// IsEligible indica se a classe do produto gera receita para o modelo do cliente
func IsEligible(model domain.ClientModel, productClass string) bool {
	allowed, restricted := eligibleClasses[model]
	if !restricted {
		return true
	}

	_, ok := allowed[utils.NormalizeText(productClass)]
	return ok
}

// SplitRate resolve o percentual de repasse aplicado. Renda Fixa Digital sempre usa 50%.
func SplitRate(repasse int, productClass string) decimal.Decimal {
	if utils.NormalizeText(productClass) == rendaFixaDigital {
		return splitHigh
	}

	if domain.NormalizeRepasse(repasse) == domain.RepasseHigh {
		return splitHigh
	}

	return splitDefault
}

// BaseRevenue é amount * roaPct / 100
func BaseRevenue(amount, roaPct decimal.Decimal) decimal.Decimal {
	if roaPct.IsNegative() {
		return decimal.Zero
	}
	return amount.Mul(roaPct).Div(hundred)
}

// AdvisorFromOffice aplica a participação de 80% e o repasse sobre a receita de escritório
func AdvisorFromOffice(office, split decimal.Decimal) decimal.Decimal {
	return office.Mul(advisorShare).Mul(split)
}

// OfficeFromAdvisor faz o caminho inverso de AdvisorFromOffice. Split zero resulta em zero.
func OfficeFromAdvisor(advisor, split decimal.Decimal) decimal.Decimal {
	if advisor.IsZero() || !split.IsPositive() {
		return decimal.Zero
	}
	return advisor.Div(advisorShare).Div(split)
}

// Compute calcula as receitas de uma alocação.
// Quando o par (modelo, classe) não é elegível a receita base ainda é devolvida para exibição.
func Compute(amount, roaPct decimal.Decimal, repasse int, model domain.ClientModel, productClass string) Revenue {
	base := BaseRevenue(amount, roaPct)

	if !IsEligible(model, productClass) {
		return Revenue{Office: decimal.Zero, Advisor: decimal.Zero, Base: base}
	}

	split := SplitRate(repasse, productClass)

	return Revenue{
		Office:  base,
		Advisor: AdvisorFromOffice(base, split),
		Base:    base,
	}
}

// ForAllocation calcula a receita de uma alocação a partir do cliente e do produto vinculados.
// Cliente ausente assume modelo TRADICIONAL e repasse padrão; produto ausente resulta em zero.
func ForAllocation(allocation *domain.Allocation, client *domain.Client, product *domain.Product) Revenue {
	if allocation == nil || product == nil {
		return Revenue{Office: decimal.Zero, Advisor: decimal.Zero, Base: decimal.Zero}
	}

	model := domain.ClientModelTraditional
	repasse := domain.RepasseDefault
	if client != nil {
		model = domain.NormalizeClientModel(string(client.Model))
		repasse = client.Repasse
	}

	return Compute(allocation.Amount, product.ROAPct, repasse, model, product.Class)
}

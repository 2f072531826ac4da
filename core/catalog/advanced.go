package catalog

import (
	"fmt"

	"github.com/huangsam/mktcalc/schema"
)

// advancedMetrics cover acquisition cost, retention and loyalty.
var advancedMetrics = []schema.Metric{
	{
		ID:          "customerAcquisitionCost",
		Group:       schema.AdvancedGroup,
		Name:        "Custo de Aquisição de Cliente (CAC)",
		Description: "Calcula o custo total para adquirir um novo cliente, incluindo marketing e vendas.",
		Explanation: "O CAC considera todos os custos envolvidos na aquisição de clientes, incluindo salários, ferramentas e despesas gerais.",
		Fields: []schema.MetricField{
			{ID: "totalCosts", Label: "Custos Totais (R$)", Placeholder: "Ex: 50000"},
			{ID: "newCustomers", Label: "Novos Clientes", Placeholder: "Ex: 100"},
		},
		Formula: "totalCosts / newCustomers",
		Calculate: func(in schema.Values) float64 {
			return in.Get("totalCosts") / in.Get("newCustomers")
		},
		Format: schema.CurrencyFormat,
		Tiers: []schema.Tier{
			atMost(200, schema.ExcellentLevel, "CAC eficiente! Continue otimizando."),
			otherwise(schema.PoorLevel, "CAC alto. Revise seus processos de aquisição."),
		},
		Analysis: &schema.AnalysisSpec{
			Tiers: []schema.Tier{
				atMost(200, schema.ExcellentLevel, "eficiente"),
				atMost(500, schema.FairLevel, "moderado"),
				otherwise(schema.PoorLevel, "alto"),
			},
			Overview: func(r float64, label string, in schema.Values) string {
				return fmt.Sprintf("Seu CAC de R$ %s está %s. Você investiu R$ %s para adquirir %s novos clientes.",
					fixed(r, 2), label, fixed(in.Get("totalCosts"), 2), num(in.Get("newCustomers")))
			},
			Insights: func(_ float64, label string, in schema.Values) []string {
				return []string{
					"Eficiência de aquisição: " + title(label),
					"Custo mensal médio: R$ " + fixed(in.Get("totalCosts")/12, 2),
					"Clientes por mês: " + num(round(in.Get("newCustomers")/12)),
				}
			},
			Recommendations: []string{
				"Otimize seus canais de aquisição mais eficientes",
				"Analise o funil de vendas para identificar gargalos",
				"Implemente estratégias de retenção para maximizar o valor do cliente",
				"Considere automatizar processos para reduzir custos operacionais",
			},
		},
	},
	{
		ID:          "customerRetentionRate",
		Group:       schema.AdvancedGroup,
		Name:        "Taxa de Retenção de Clientes",
		Description: "Mede a capacidade de manter clientes ativos ao longo do tempo.",
		Explanation: "Uma alta taxa de retenção indica satisfação dos clientes e eficiência nas estratégias de fidelização.",
		Fields: []schema.MetricField{
			{ID: "endCustomers", Label: "Clientes no Final do Período", Placeholder: "Ex: 900"},
			{ID: "newCustomers", Label: "Novos Clientes no Período", Placeholder: "Ex: 100"},
			{ID: "startCustomers", Label: "Clientes no Início do Período", Placeholder: "Ex: 1000"},
		},
		Formula: "((endCustomers - newCustomers) / startCustomers) × 100",
		Calculate: func(in schema.Values) float64 {
			return ((in.Get("endCustomers") - in.Get("newCustomers")) / in.Get("startCustomers")) * 100
		},
		Format: schema.PercentFormat,
		// The comment only distinguishes two tiers while the analysis label has three.
		Tiers: []schema.Tier{
			atLeast(80, schema.ExcellentLevel, "Excelente retenção!"),
			otherwise(schema.PoorLevel, "Considere melhorar suas estratégias de retenção."),
		},
		Analysis: &schema.AnalysisSpec{
			Tiers: []schema.Tier{
				atLeast(80, schema.ExcellentLevel, "excelente"),
				atLeast(60, schema.GoodLevel, "boa"),
				otherwise(schema.PoorLevel, "precisa melhorar"),
			},
			Overview: func(r float64, label string, _ schema.Values) string {
				return fmt.Sprintf("Sua taxa de retenção de %s%% está %s. A taxa de churn é de %s%%.",
					fixed(r, 2), label, fixed(100-r, 2))
			},
			Insights: func(r float64, _ string, in schema.Values) []string {
				return []string{
					"Clientes mantidos: " + num(in.Get("endCustomers")-in.Get("newCustomers")),
					"Novos clientes: " + num(in.Get("newCustomers")),
					fmt.Sprintf("Taxa de churn: %s%%", fixed(100-r, 2)),
				}
			},
			Recommendations: []string{
				"Implemente um programa de fidelidade",
				"Melhore o suporte ao cliente",
				"Colete feedback regularmente",
				"Desenvolva estratégias de engajamento contínuo",
			},
		},
	},
	{
		ID:          "netPromoterScore",
		Group:       schema.AdvancedGroup,
		Name:        "Net Promoter Score (NPS)",
		Description: "Mede a satisfação e lealdade dos clientes.",
		Explanation: "O NPS varia de -100 a 100, onde valores acima de 0 são considerados bons e acima de 50 são excelentes.",
		Fields: []schema.MetricField{
			{ID: "promoters", Label: "Número de Promotores", Placeholder: "Ex: 70"},
			{ID: "detractors", Label: "Número de Detratores", Placeholder: "Ex: 20"},
			{ID: "total", Label: "Total de Respondentes", Placeholder: "Ex: 100"},
		},
		Formula: "((promoters - detractors) / total) × 100",
		Calculate: func(in schema.Values) float64 {
			return ((in.Get("promoters") - in.Get("detractors")) / in.Get("total")) * 100
		},
		Format: schema.ScoreFormat,
		Tiers: []schema.Tier{
			atLeast(50, schema.ExcellentLevel, "NPS excelente!"),
			atLeast(0, schema.GoodLevel, "NPS bom, mas pode melhorar."),
			otherwise(schema.PoorLevel, "NPS negativo. Ação necessária."),
		},
		Analysis: &schema.AnalysisSpec{
			Tiers: []schema.Tier{
				atLeast(50, schema.ExcellentLevel, "excelente"),
				atLeast(0, schema.GoodLevel, "bom"),
				otherwise(schema.PoorLevel, "precisa melhorar"),
			},
			Overview: func(r float64, label string, _ schema.Values) string {
				return fmt.Sprintf("Seu NPS de %s está %s. Isso indica o nível de satisfação e lealdade dos seus clientes.",
					fixed(r, 0), label)
			},
			Insights: func(_ float64, _ string, in schema.Values) []string {
				promoters := (in.Get("promoters") / in.Get("total")) * 100
				detractors := (in.Get("detractors") / in.Get("total")) * 100
				passive := 100 - promoters - detractors
				return []string{
					fmt.Sprintf("Promotores: %s%%", fixed(promoters, 1)),
					fmt.Sprintf("Neutros: %s%%", fixed(passive, 1)),
					fmt.Sprintf("Detratores: %s%%", fixed(detractors, 1)),
				}
			},
			Recommendations: []string{
				"Identifique os motivos de insatisfação dos detratores",
				"Implemente melhorias baseadas no feedback recebido",
				"Desenvolva estratégias para converter neutros em promotores",
				"Mantenha contato regular com promotores para fortalecer o relacionamento",
			},
		},
	},
}

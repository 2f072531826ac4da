package catalog

import (
	"fmt"

	"github.com/huangsam/mktcalc/schema"
)

// commonMetrics are the ten everyday marketing metrics, in display order.
var commonMetrics = []schema.Metric{
	{
		ID:          "ctr",
		Group:       schema.CommonGroup,
		Name:        "Taxa de Cliques (CTR)",
		Description: "Mede a proporção de pessoas que clicaram no seu anúncio em relação ao total de impressões.",
		Explanation: "Um CTR de 2% significa que a cada 100 pessoas que viram seu anúncio, 2 clicaram nele. Um CTR maior indica que seu anúncio é mais relevante para o público-alvo.",
		Fields: []schema.MetricField{
			{ID: "clicks", Label: "Número de Cliques", Placeholder: "Ex: 100"},
			{ID: "impressions", Label: "Número de Impressões", Placeholder: "Ex: 1000"},
		},
		Formula: "(clicks / impressions) × 100",
		Calculate: func(in schema.Values) float64 {
			return (in.Get("clicks") / in.Get("impressions")) * 100
		},
		Format: schema.PercentFormat,
		Tiers: []schema.Tier{
			atLeast(2, schema.ExcellentLevel, "Ótimo CTR! Seus anúncios estão muito relevantes."),
			atLeast(1, schema.FairLevel, "CTR razoável. Há espaço para melhorias no texto e segmentação."),
			otherwise(schema.PoorLevel, "CTR baixo. Revise a relevância dos anúncios para o público-alvo."),
		},
		Analysis: &schema.AnalysisSpec{
			Tiers: []schema.Tier{
				atLeast(2, schema.ExcellentLevel, "excelente"),
				atLeast(1, schema.FairLevel, "regular"),
				otherwise(schema.PoorLevel, "abaixo do esperado"),
			},
			Overview: func(r float64, label string, in schema.Values) string {
				clickRate := (in.Get("clicks") / in.Get("impressions")) * 100
				return fmt.Sprintf("Seu CTR está %s com %s%%. Isso significa que de cada 100 impressões, %s pessoas clicam no seu anúncio.",
					label, fixed(r, 2), fixed(clickRate, 1))
			},
			Insights: func(r float64, _ string, in schema.Values) []string {
				engagement := "Alta"
				switch {
				case r < 1:
					engagement = "Baixa"
				case r < 2:
					engagement = "Média"
				}
				value := "Precisa melhorar"
				switch {
				case r >= 2:
					value = "Ótimo"
				case r >= 1:
					value = "Regular"
				}
				return []string{
					"Taxa de engajamento: " + engagement,
					fmt.Sprintf("Eficiência do anúncio: %s cliques obtidos de %s impressões", num(in.Get("clicks")), num(in.Get("impressions"))),
					"Custo-benefício: " + value,
				}
			},
			Recommendations: []string{
				"Teste diferentes títulos e descrições para aumentar a relevância",
				"Refine a segmentação do público-alvo",
				"Analise os horários de melhor performance",
				"Considere ajustar o orçamento para horários mais eficientes",
			},
		},
	},
	{
		ID:          "cpc",
		Group:       schema.CommonGroup,
		Name:        "Custo por Clique (CPC)",
		Description: "Calcula quanto você está pagando, em média, por cada clique em seus anúncios.",
		Explanation: "Um CPC de R$ 2,00 significa que você paga R$ 2,00 cada vez que alguém clica no seu anúncio. Quanto menor o CPC, mais eficiente é seu investimento em anúncios.",
		Fields: []schema.MetricField{
			{ID: "cost", Label: "Custo Total da Campanha (R$)", Placeholder: "Ex: 1000"},
			{ID: "clicks", Label: "Número Total de Cliques", Placeholder: "Ex: 500"},
		},
		Formula: "cost / clicks",
		Calculate: func(in schema.Values) float64 {
			return in.Get("cost") / in.Get("clicks")
		},
		Format: schema.CurrencyFormat,
		Tiers: []schema.Tier{
			atMost(2, schema.ExcellentLevel, "Excelente! Seu CPC está muito competitivo."),
			atMost(5, schema.FairLevel, "CPC dentro da média do mercado."),
			otherwise(schema.PoorLevel, "Atenção! Considere otimizar seus anúncios para reduzir o CPC."),
		},
		Analysis: &schema.AnalysisSpec{
			Tiers: []schema.Tier{
				atMost(2, schema.ExcellentLevel, "muito eficiente"),
				atMost(5, schema.FairLevel, "moderadamente eficiente"),
				otherwise(schema.PoorLevel, "pouco eficiente"),
			},
			Overview: func(r float64, label string, in schema.Values) string {
				return fmt.Sprintf("Seu CPC de R$ %s está %s. Você investiu R$ %s para obter %s cliques.",
					fixed(r, 2), label, fixed(in.Get("cost"), 2), num(in.Get("clicks")))
			},
			Insights: func(r float64, label string, _ schema.Values) []string {
				expected := "Baixo"
				switch {
				case r <= 2:
					expected = "Alto"
				case r <= 5:
					expected = "Médio"
				}
				return []string{
					"Eficiência do investimento: " + title(label),
					"Custo total por mil cliques: R$ " + fixed(r*1000, 2),
					"Retorno esperado: " + expected,
				}
			},
			Recommendations: []string{
				"Otimize suas palavras-chave para melhorar a relevância",
				"Ajuste os lances máximos por clique",
				"Teste diferentes segmentações de público",
				"Analise os horários de menor CPC",
			},
		},
	},
	{
		ID:          "conversionRate",
		Group:       schema.CommonGroup,
		Name:        "Taxa de Conversão",
		Description: "Calcula a porcentagem de visitantes que realizaram uma ação desejada.",
		Explanation: "Uma taxa de conversão de 5% significa que 5 em cada 100 visitantes realizam a ação desejada (como uma compra). Quanto maior a taxa, mais eficiente é seu funil de vendas.",
		Fields: []schema.MetricField{
			{ID: "conversions", Label: "Número de Conversões", Placeholder: "Ex: 50"},
			{ID: "visitors", Label: "Número Total de Visitantes", Placeholder: "Ex: 1000"},
		},
		Formula: "(conversions / visitors) × 100",
		Calculate: func(in schema.Values) float64 {
			return (in.Get("conversions") / in.Get("visitors")) * 100
		},
		Format: schema.PercentFormat,
		Tiers: []schema.Tier{
			atLeast(3, schema.ExcellentLevel, "Excelente taxa de conversão! Continue otimizando o funil."),
			atLeast(1, schema.FairLevel, "Taxa de conversão dentro da média. Considere A/B tests."),
			otherwise(schema.PoorLevel, "Taxa de conversão baixa. Analise possíveis pontos de atrito no funil."),
		},
		Analysis: &schema.AnalysisSpec{
			Tiers: []schema.Tier{
				atLeast(3, schema.ExcellentLevel, "excelente"),
				atLeast(1, schema.FairLevel, "regular"),
				otherwise(schema.PoorLevel, "baixa"),
			},
			Overview: func(r float64, label string, _ schema.Values) string {
				return fmt.Sprintf("Sua taxa de conversão de %s%% está %s. De cada 100 visitantes, %s realizam a ação desejada.",
					fixed(r, 2), label, fixed(r, 1))
			},
			Insights: func(r float64, label string, in schema.Values) []string {
				potential := "Baixo"
				switch {
				case r < 1:
					potential = "Alto"
				case r < 3:
					potential = "Médio"
				}
				return []string{
					"Performance do funil: " + title(label),
					fmt.Sprintf("Total de conversões: %s de %s visitantes", num(in.Get("conversions")), num(in.Get("visitors"))),
					"Potencial de melhoria: " + potential,
				}
			},
			Recommendations: []string{
				"Realize testes A/B para otimizar páginas de conversão",
				"Analise o funil de vendas para identificar pontos de abandono",
				"Melhore a experiência do usuário no processo de conversão",
				"Implemente retargeting para visitantes não convertidos",
			},
		},
	},
	{
		ID:          "roi",
		Group:       schema.CommonGroup,
		Name:        "Retorno sobre Investimento (ROI)",
		Description: "Calcula o retorno financeiro obtido em relação ao investimento realizado.",
		Explanation: "Um ROI de 200% significa que para cada R$ 1,00 investido, você obteve R$ 2,00 de lucro. ROI positivo indica que sua campanha está gerando lucro.",
		Fields: []schema.MetricField{
			{ID: "revenue", Label: "Receita Total (R$)", Placeholder: "Ex: 10000"},
			{ID: "cost", Label: "Custo Total (R$)", Placeholder: "Ex: 5000"},
		},
		Formula: "((revenue - cost) / cost) × 100",
		Calculate: func(in schema.Values) float64 {
			return ((in.Get("revenue") - in.Get("cost")) / in.Get("cost")) * 100
		},
		Format: schema.PercentFormat,
		Tiers: []schema.Tier{
			atLeast(200, schema.ExcellentLevel, "ROI excepcional! Sua campanha está muito lucrativa."),
			atLeast(100, schema.GoodLevel, "Bom ROI. Sua campanha está gerando lucro."),
			above(0, schema.FairLevel, "ROI positivo, mas há espaço para melhorias."),
			otherwise(schema.PoorLevel, "ROI negativo. Reavalie a estratégia da campanha."),
		},
		Analysis: &schema.AnalysisSpec{
			Tiers: []schema.Tier{
				atLeast(200, schema.ExcellentLevel, "excepcional"),
				atLeast(100, schema.GoodLevel, "bom"),
				above(0, schema.FairLevel, "moderado"),
				otherwise(schema.PoorLevel, "negativo"),
			},
			Overview: func(r float64, label string, in schema.Values) string {
				profit := in.Get("revenue") - in.Get("cost")
				return fmt.Sprintf("Seu ROI de %s%% está %s. Você obteve um lucro de R$ %s sobre um investimento de R$ %s.",
					fixed(r, 2), label, fixed(profit, 2), fixed(in.Get("cost"), 2))
			},
			Insights: func(_ float64, label string, in schema.Values) []string {
				profit := in.Get("revenue") - in.Get("cost")
				return []string{
					"Lucratividade: " + title(label),
					"Lucro total: R$ " + fixed(profit, 2),
					"Retorno por real investido: R$ " + fixed(profit/in.Get("cost"), 2),
				}
			},
			Recommendations: []string{
				"Identifique os canais mais rentáveis",
				"Otimize campanhas com melhor performance",
				"Reduza investimento em canais de baixo retorno",
				"Teste novas estratégias em escala controlada",
			},
		},
	},
	{
		ID:          "cpa",
		Group:       schema.CommonGroup,
		Name:        "Custo por Aquisição (CPA)",
		Description: "Mostra quanto você gasta, em média, para adquirir um novo cliente.",
		Explanation: "Um CPA de R$ 50,00 significa que você investe R$ 50,00 para conseguir cada novo cliente. Compare este valor com o lucro médio por cliente para avaliar a viabilidade.",
		Fields: []schema.MetricField{
			{ID: "cost", Label: "Custo Total da Campanha (R$)", Placeholder: "Ex: 5000"},
			{ID: "acquisitions", Label: "Número de Aquisições", Placeholder: "Ex: 100"},
		},
		Formula: "cost / acquisitions",
		Calculate: func(in schema.Values) float64 {
			return in.Get("cost") / in.Get("acquisitions")
		},
		Format: schema.CurrencyFormat,
		Tiers: []schema.Tier{
			atMost(50, schema.ExcellentLevel, "CPA muito bom! Sua campanha está eficiente."),
			atMost(100, schema.FairLevel, "CPA aceitável. Monitore o ROI."),
			otherwise(schema.PoorLevel, "CPA alto. Verifique se está alinhado com seu ticket médio."),
		},
		Analysis: &schema.AnalysisSpec{
			Tiers: []schema.Tier{
				atMost(50, schema.ExcellentLevel, "muito eficiente"),
				atMost(100, schema.FairLevel, "aceitável"),
				otherwise(schema.PoorLevel, "alto"),
			},
			Overview: func(r float64, label string, in schema.Values) string {
				return fmt.Sprintf("Seu CPA de R$ %s está %s. Você investiu R$ %s para adquirir %s clientes.",
					fixed(r, 2), label, fixed(in.Get("cost"), 2), num(in.Get("acquisitions")))
			},
			Insights: func(_ float64, label string, in schema.Values) []string {
				return []string{
					"Eficiência de aquisição: " + title(label),
					"Custo total mensal: R$ " + fixed(in.Get("cost")/12, 2),
					"Aquisições mensais: " + num(round(in.Get("acquisitions")/12)),
				}
			},
			Recommendations: []string{
				"Compare o CPA com o valor médio do cliente",
				"Otimize canais de aquisição mais eficientes",
				"Teste diferentes estratégias de targeting",
				"Implemente automação de marketing",
			},
		},
	},
	{
		ID:          "cpl",
		Group:       schema.CommonGroup,
		Name:        "Custo por Lead (CPL)",
		Description: "Indica quanto você gasta, em média, para gerar um novo lead.",
		Explanation: "Um CPL de R$ 15,00 significa que você investe R$ 15,00 para cada lead gerado. Avalie este custo considerando a taxa de conversão de leads em clientes.",
		Fields: []schema.MetricField{
			{ID: "cost", Label: "Custo Total da Campanha (R$)", Placeholder: "Ex: 3000"},
			{ID: "leads", Label: "Número de Leads Gerados", Placeholder: "Ex: 200"},
		},
		Formula: "cost / leads",
		Calculate: func(in schema.Values) float64 {
			return in.Get("cost") / in.Get("leads")
		},
		Format: schema.CurrencyFormat,
		Tiers: []schema.Tier{
			atMost(15, schema.ExcellentLevel, "Ótimo CPL! Continue com a estratégia atual."),
			atMost(30, schema.FairLevel, "CPL aceitável. Busque otimizações graduais."),
			otherwise(schema.PoorLevel, "CPL alto. Considere revisar sua estratégia de captação."),
		},
		Analysis: &schema.AnalysisSpec{
			Tiers: []schema.Tier{
				atMost(15, schema.ExcellentLevel, "ótimo"),
				atMost(30, schema.FairLevel, "aceitável"),
				otherwise(schema.PoorLevel, "alto"),
			},
			Overview: func(r float64, label string, in schema.Values) string {
				return fmt.Sprintf("Seu CPL de R$ %s está %s. Você investiu R$ %s para gerar %s leads.",
					fixed(r, 2), label, fixed(in.Get("cost"), 2), num(in.Get("leads")))
			},
			Insights: func(_ float64, label string, in schema.Values) []string {
				return []string{
					"Eficiência de geração: " + title(label),
					"Leads por dia: " + num(round(in.Get("leads")/30)),
					"Custo diário: R$ " + fixed(in.Get("cost")/30, 2),
				}
			},
			Recommendations: []string{
				"Otimize suas landing pages",
				"Teste diferentes ofertas e calls-to-action",
				"Melhore a qualificação dos leads",
				"Implemente nurturing de leads",
			},
		},
	},
	{
		ID:          "bounceRate",
		Group:       schema.CommonGroup,
		Name:        "Taxa de Rejeição",
		Description: "Mede a porcentagem de visitantes que saem do site após visualizar apenas uma página.",
		Explanation: "Uma taxa de rejeição de 60% significa que 60% dos visitantes saem do site sem interagir. Quanto menor a taxa, melhor a qualidade do tráfego e do conteúdo.",
		Fields: []schema.MetricField{
			{ID: "bounces", Label: "Número de Rejeições", Placeholder: "Ex: 300"},
			{ID: "sessions", Label: "Número Total de Sessões", Placeholder: "Ex: 1000"},
		},
		Formula: "(bounces / sessions) × 100",
		Calculate: func(in schema.Values) float64 {
			return (in.Get("bounces") / in.Get("sessions")) * 100
		},
		Format: schema.PercentFormat,
		Tiers: []schema.Tier{
			atMost(40, schema.ExcellentLevel, "Taxa de rejeição excelente! Seu conteúdo está muito relevante."),
			atMost(70, schema.FairLevel, "Taxa de rejeição dentro da média. Busque melhorias graduais."),
			otherwise(schema.PoorLevel, "Taxa de rejeição alta. Revise a qualidade do tráfego e conteúdo."),
		},
		Analysis: &schema.AnalysisSpec{
			Tiers: []schema.Tier{
				atMost(40, schema.ExcellentLevel, "excelente"),
				atMost(70, schema.FairLevel, "média"),
				otherwise(schema.PoorLevel, "alta"),
			},
			Overview: func(r float64, label string, in schema.Values) string {
				return fmt.Sprintf("Sua taxa de rejeição de %s%% está %s. De %s sessões, %s foram rejeições.",
					fixed(r, 2), label, num(in.Get("sessions")), num(in.Get("bounces")))
			},
			Insights: func(r float64, _ string, in schema.Values) []string {
				quality, engagement := "Baixa", "Fraco"
				switch {
				case r <= 40:
					quality, engagement = "Alta", "Forte"
				case r <= 70:
					quality, engagement = "Média", "Moderado"
				}
				return []string{
					"Qualidade do tráfego: " + quality,
					"Engajamento: " + engagement,
					"Sessões engajadas: " + num(in.Get("sessions")-in.Get("bounces")),
				}
			},
			Recommendations: []string{
				"Melhore a relevância do conteúdo",
				"Otimize a velocidade de carregamento",
				"Aprimore a experiência mobile",
				"Revise as fontes de tráfego",
			},
		},
	},
	{
		ID:          "customerLifetimeValue",
		Group:       schema.CommonGroup,
		Name:        "Valor do Cliente (LTV)",
		Description: "Calcula o valor médio que um cliente gera durante todo seu relacionamento com a empresa.",
		Explanation: "Um LTV de R$ 2.400,00 significa que cada cliente gera em média R$ 2.400,00 em receita ao longo do relacionamento. Use este valor para definir quanto investir na aquisição.",
		Fields: []schema.MetricField{
			{ID: "averageValue", Label: "Valor Médio por Compra (R$)", Placeholder: "Ex: 200"},
			{ID: "frequency", Label: "Frequência Anual de Compras", Placeholder: "Ex: 4"},
			{ID: "lifespan", Label: "Anos de Relacionamento", Placeholder: "Ex: 3"},
		},
		Formula: "averageValue × frequency × lifespan",
		Calculate: func(in schema.Values) float64 {
			return in.Get("averageValue") * in.Get("frequency") * in.Get("lifespan")
		},
		Format: schema.CurrencyFormat,
		Tiers: []schema.Tier{
			atLeast(2000, schema.ExcellentLevel, "LTV excelente! Seus clientes são muito valiosos."),
			atLeast(1000, schema.FairLevel, "Bom LTV. Foque em estratégias de retenção."),
			otherwise(schema.PoorLevel, "LTV baixo. Considere aumentar ticket médio ou frequência de compra."),
		},
		Analysis: &schema.AnalysisSpec{
			Tiers: []schema.Tier{
				atLeast(2000, schema.ExcellentLevel, "excelente"),
				atLeast(1000, schema.FairLevel, "bom"),
				otherwise(schema.PoorLevel, "baixo"),
			},
			Overview: func(r float64, label string, in schema.Values) string {
				annual := in.Get("averageValue") * in.Get("frequency")
				return fmt.Sprintf("Seu LTV de R$ %s está %s. Cada cliente gera R$ %s por ano durante %s anos.",
					fixed(r, 2), label, fixed(annual, 2), num(in.Get("lifespan")))
			},
			Insights: func(_ float64, _ string, in schema.Values) []string {
				annual := in.Get("averageValue") * in.Get("frequency")
				return []string{
					"Valor anual por cliente: R$ " + fixed(annual, 2),
					fmt.Sprintf("Frequência de compra: %s vezes por ano", num(in.Get("frequency"))),
					"Ticket médio: R$ " + fixed(in.Get("averageValue"), 2),
				}
			},
			Recommendations: []string{
				"Desenvolva programas de fidelidade",
				"Aumente o ticket médio com cross-selling",
				"Melhore a frequência de compra com remarketing",
				"Implemente estratégias de retenção",
			},
		},
	},
	{
		ID:          "engagementRate",
		Group:       schema.CommonGroup,
		Name:        "Taxa de Engajamento",
		Description: "Mede o nível de interação dos usuários com seu conteúdo.",
		Explanation: "Uma taxa de 5% significa que 5% dos seus seguidores interagem com seu conteúdo. Taxas mais altas indicam conteúdo mais relevante e audiência mais ativa.",
		Fields: []schema.MetricField{
			{ID: "interactions", Label: "Número de Interações", Placeholder: "Ex: 500"},
			{ID: "followers", Label: "Número de Seguidores", Placeholder: "Ex: 10000"},
		},
		Formula: "(interactions / followers) × 100",
		Calculate: func(in schema.Values) float64 {
			return (in.Get("interactions") / in.Get("followers")) * 100
		},
		Format: schema.PercentFormat,
		Tiers: []schema.Tier{
			atLeast(5, schema.ExcellentLevel, "Ótima taxa de engajamento! Seu conteúdo está muito relevante."),
			atLeast(2, schema.FairLevel, "Engajamento razoável. Continue melhorando o conteúdo."),
			otherwise(schema.PoorLevel, "Engajamento baixo. Revise sua estratégia de conteúdo."),
		},
		Analysis: &schema.AnalysisSpec{
			Tiers: []schema.Tier{
				atLeast(5, schema.ExcellentLevel, "excelente"),
				atLeast(2, schema.FairLevel, "razoável"),
				otherwise(schema.PoorLevel, "baixo"),
			},
			Overview: func(r float64, label string, in schema.Values) string {
				return fmt.Sprintf("Sua taxa de engajamento de %s%% está %s. De %s seguidores, %s interagiram com seu conteúdo.",
					fixed(r, 2), label, num(in.Get("followers")), num(in.Get("interactions")))
			},
			Insights: func(r float64, label string, in schema.Values) []string {
				return []string{
					"Nível de engajamento: " + title(label),
					"Interações por seguidor: " + fixed(in.Get("interactions")/in.Get("followers"), 3),
					fmt.Sprintf("Alcance efetivo: %s seguidores ativos", num(round(in.Get("followers")*(r/100)))),
				}
			},
			Recommendations: []string{
				"Analise os tipos de conteúdo mais engajadores",
				"Teste diferentes horários de postagem",
				"Melhore a qualidade visual do conteúdo",
				"Incentive interações com calls-to-action",
			},
		},
	},
	{
		ID:          "averageTimeOnPage",
		Group:       schema.CommonGroup,
		Name:        "Tempo Médio na Página",
		Description: "Calcula o tempo médio que os visitantes permanecem em uma página.",
		Explanation: "Um tempo médio de 3 minutos indica boa qualidade de conteúdo. Páginas com conteúdo relevante tendem a manter os visitantes por mais tempo.",
		Fields: []schema.MetricField{
			{ID: "totalTime", Label: "Tempo Total (minutos)", Placeholder: "Ex: 3000"},
			{ID: "visitors", Label: "Número de Visitantes", Placeholder: "Ex: 500"},
		},
		Formula: "totalTime / visitors",
		Calculate: func(in schema.Values) float64 {
			return in.Get("totalTime") / in.Get("visitors")
		},
		Format: schema.MinutesFormat,
		Tiers: []schema.Tier{
			atLeast(3, schema.ExcellentLevel, "Excelente tempo de permanência! Seu conteúdo está envolvente."),
			atLeast(1, schema.FairLevel, "Tempo de permanência razoável. Considere enriquecer o conteúdo."),
			otherwise(schema.PoorLevel, "Tempo de permanência baixo. Revise a qualidade do conteúdo."),
		},
		Analysis: &schema.AnalysisSpec{
			Tiers: []schema.Tier{
				atLeast(3, schema.ExcellentLevel, "excelente"),
				atLeast(1, schema.FairLevel, "razoável"),
				otherwise(schema.PoorLevel, "baixo"),
			},
			Overview: func(r float64, label string, in schema.Values) string {
				return fmt.Sprintf("Seu tempo médio de %s minutos por página está %s. Total de %s minutos distribuídos entre %s visitantes.",
					fixed(r, 2), label, num(in.Get("totalTime")), num(in.Get("visitors")))
			},
			Insights: func(r float64, label string, in schema.Values) []string {
				return []string{
					"Qualidade do conteúdo: " + title(label),
					fmt.Sprintf("Tempo total de engajamento: %s minutos", num(in.Get("totalTime"))),
					fmt.Sprintf("Média por sessão: %s minutos", fixed(r, 2)),
				}
			},
			Recommendations: []string{
				"Crie conteúdo mais aprofundado e relevante",
				"Adicione elementos interativos",
				"Otimize a estrutura do conteúdo",
				"Implemente links internos estratégicos",
			},
		},
	},
}
